package session

import "time"

// Registry defaults
const (
	DefaultSize = 1024
	DefaultTTL  = 30 * time.Minute
)

// Log messages
const (
	LogMsgSessionOpened  = "Shelf session opened"
	LogMsgSessionClosed  = "Shelf session closed"
	LogMsgInitialLoadErr = "Initial shelf load failed"
)
