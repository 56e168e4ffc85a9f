package feedback

const (
	// DefaultQueueLimit bounds undrained events per session
	DefaultQueueLimit = 50

	LogMsgFeedback = "Shelf feedback"
)
