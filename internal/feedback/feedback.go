// Package feedback delivers operation outcomes to the presentation layer.
package feedback

import (
	"log/slog"
	"sync"
	"time"
)

// Kind classifies a notification
type Kind string

const (
	KindSuccess Kind = "success"
	KindError   Kind = "error"
	KindWarning Kind = "warning"
	KindInfo    Kind = "info"
)

// Notifier receives exactly one message per user-initiated operation outcome
type Notifier interface {
	Notify(message string, kind Kind)
}

// Event is a delivered notification
type Event struct {
	Message string    `json:"message"`
	Kind    Kind      `json:"kind"`
	At      time.Time `json:"at"`
}

// Queue buffers events until they are drained. The oldest events are
// dropped once the buffer is full.
type Queue struct {
	mu     sync.Mutex
	events []Event
	limit  int
}

// NewQueue creates a queue that holds at most limit events
func NewQueue(limit int) *Queue {
	if limit <= 0 {
		limit = DefaultQueueLimit
	}
	return &Queue{limit: limit}
}

// Notify appends an event
func (q *Queue) Notify(message string, kind Kind) {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.events = append(q.events, Event{Message: message, Kind: kind, At: time.Now().UTC()})
	if over := len(q.events) - q.limit; over > 0 {
		// Copy so the dropped events are not pinned by the old backing array
		kept := make([]Event, q.limit)
		copy(kept, q.events[over:])
		q.events = kept
	}
}

// Drain returns and clears all pending events. It never returns nil.
func (q *Queue) Drain() []Event {
	q.mu.Lock()
	defer q.mu.Unlock()

	out := q.events
	q.events = nil
	if out == nil {
		out = []Event{}
	}
	return out
}

// Len returns the number of pending events
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.events)
}

// LogNotifier writes notifications to a structured logger
type LogNotifier struct {
	log *slog.Logger
}

// NewLogNotifier creates a notifier that logs through l, or the default
// logger when l is nil
func NewLogNotifier(l *slog.Logger) *LogNotifier {
	if l == nil {
		l = slog.Default()
	}
	return &LogNotifier{log: l}
}

// Notify logs the message at a level matching its kind
func (n *LogNotifier) Notify(message string, kind Kind) {
	switch kind {
	case KindError:
		n.log.Error(LogMsgFeedback, "kind", kind, "message", message)
	case KindWarning:
		n.log.Warn(LogMsgFeedback, "kind", kind, "message", message)
	default:
		n.log.Info(LogMsgFeedback, "kind", kind, "message", message)
	}
}

// Multi fans a notification out to several notifiers
type Multi []Notifier

// Notify forwards to every notifier in order
func (m Multi) Notify(message string, kind Kind) {
	for _, n := range m {
		if n != nil {
			n.Notify(message, kind)
		}
	}
}

// Discard drops every notification
type Discard struct{}

func (Discard) Notify(string, Kind) {}
