// Package session keeps one shelf controller per signed-in owner. A session
// is created on first use and discarded on sign-out, on eviction by newer
// sessions, or once it is older than the configured TTL.
package session

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/SmartShelf_Go/internal/concurrency"
	"github.com/osse101/SmartShelf_Go/internal/feedback"
	"github.com/osse101/SmartShelf_Go/internal/logger"
	"github.com/osse101/SmartShelf_Go/internal/metrics"
	"github.com/osse101/SmartShelf_Go/internal/query"
	"github.com/osse101/SmartShelf_Go/internal/shelf"
)

// Config configures a Registry
type Config struct {
	Size            int
	TTL             time.Duration
	FeedbackLimit   int
	DefaultDeviceID string
	// Logger also receives every feedback event when set
	Logger *slog.Logger
}

// Session is one owner's controller and the feedback it has produced.
// Operations on a session run one at a time.
type Session struct {
	OwnerID    string
	Controller *shelf.Controller
	OpenedAt   time.Time

	mu     sync.Mutex
	events *feedback.Queue
}

// Run executes fn against the controller and returns the feedback events it
// produced
func (s *Session) Run(fn func(c *shelf.Controller) error) ([]feedback.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := fn(s.Controller)
	return s.events.Drain(), err
}

// Stats reports registry usage
type Stats struct {
	Hits   int64
	Misses int64
	Size   int
}

// Registry maps owner ids to sessions
type Registry struct {
	client    *query.Client
	cfg       Config
	validator *shelf.Validator

	lru *expirable.LRU[string, *Session]
	// opening is keyed by owner so an owner never gets two controllers
	opening *concurrency.LockManager

	hits   atomic.Int64
	misses atomic.Int64
}

// NewRegistry creates a registry whose controllers query through client
func NewRegistry(client *query.Client, cfg Config) *Registry {
	if cfg.Size <= 0 {
		cfg.Size = DefaultSize
	}
	if cfg.TTL <= 0 {
		cfg.TTL = DefaultTTL
	}
	if cfg.FeedbackLimit <= 0 {
		cfg.FeedbackLimit = feedback.DefaultQueueLimit
	}

	r := &Registry{
		client:    client,
		cfg:       cfg,
		validator: shelf.NewValidator(cfg.DefaultDeviceID),
		opening:   concurrency.NewLockManager(),
	}
	r.lru = expirable.NewLRU[string, *Session](cfg.Size, r.onEvict, cfg.TTL)
	return r
}

// onEvict runs under the cache lock; it must not call back into the cache
func (r *Registry) onEvict(ownerID string, _ *Session) {
	metrics.ActiveSessions.Dec()
	slog.Default().Info(LogMsgSessionClosed, "owner_id", ownerID)
}

// Get returns the owner's session if it is open
func (r *Registry) Get(ownerID string) (*Session, bool) {
	s, ok := r.lru.Get(ownerID)
	if ok {
		r.hits.Add(1)
	} else {
		r.misses.Add(1)
	}
	return s, ok
}

// Acquire returns the owner's session, opening it and loading the shelf if
// none is open. A failed initial load still opens the session; the
// projections report the error state and the error is returned.
func (r *Registry) Acquire(ctx context.Context, ownerID string) (*Session, error) {
	s, _, err := r.Attach(ctx, ownerID)
	return s, err
}

// Attach is Acquire that also reports whether this call opened the session,
// meaning its shelf was loaded just now
func (r *Registry) Attach(ctx context.Context, ownerID string) (*Session, bool, error) {
	if s, ok := r.Get(ownerID); ok {
		return s, false, nil
	}

	s, created, err := r.open(ctx, ownerID)
	if err != nil {
		return nil, false, err
	}
	if !created {
		return s, false, nil
	}
	// A new session is returned locked so no request runs before the load
	defer s.mu.Unlock()

	if err := s.Controller.LoadAll(ctx); err != nil {
		logger.FromContext(ctx).Warn(LogMsgInitialLoadErr, "owner_id", ownerID, "error", err)
		return s, true, err
	}
	return s, true, nil
}

// open creates and registers a session, returning it locked. If another
// request opened one first, that session is returned unlocked instead.
func (r *Registry) open(ctx context.Context, ownerID string) (*Session, bool, error) {
	unlock := r.opening.Lock(ownerID)
	defer unlock()

	if s, ok := r.lru.Peek(ownerID); ok {
		return s, false, nil
	}

	events := feedback.NewQueue(r.cfg.FeedbackLimit)
	var notifier feedback.Notifier = events
	if r.cfg.Logger != nil {
		notifier = feedback.Multi{events, feedback.NewLogNotifier(r.cfg.Logger.With("owner_id", ownerID))}
	}

	ctrl, err := shelf.NewController(ownerID, r.client, notifier, shelf.WithValidator(r.validator))
	if err != nil {
		return nil, false, err
	}
	s := &Session{
		OwnerID:    ownerID,
		Controller: ctrl,
		OpenedAt:   time.Now(),
		events:     events,
	}
	s.mu.Lock()

	r.lru.Add(ownerID, s)
	metrics.ActiveSessions.Inc()
	logger.FromContext(ctx).Info(LogMsgSessionOpened, "owner_id", ownerID)
	return s, true, nil
}

// SignOut discards the owner's session. It reports whether one was open.
func (r *Registry) SignOut(ownerID string) bool {
	return r.lru.Remove(ownerID)
}

// Len returns the number of open sessions
func (r *Registry) Len() int {
	return r.lru.Len()
}

// Close discards every session
func (r *Registry) Close() {
	r.lru.Purge()
}

// GetStats returns hit and miss counts and the current size
func (r *Registry) GetStats() Stats {
	return Stats{
		Hits:   r.hits.Load(),
		Misses: r.misses.Load(),
		Size:   r.lru.Len(),
	}
}
