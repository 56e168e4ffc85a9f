// Package concurrency provides per-key locking.
package concurrency

import "sync"

// LockManager hands out one mutex per key. A key's entry is dropped once no
// caller holds or waits on it, so the map only grows with active keys.
type LockManager struct {
	mu    sync.Mutex
	locks map[string]*keyedLock
}

type keyedLock struct {
	sync.Mutex
	refs int
}

// NewLockManager creates a new LockManager
func NewLockManager() *LockManager {
	return &LockManager{locks: make(map[string]*keyedLock)}
}

// Lock blocks until key is free and returns the function that releases it
func (lm *LockManager) Lock(key string) (unlock func()) {
	lm.mu.Lock()
	l, ok := lm.locks[key]
	if !ok {
		l = &keyedLock{}
		lm.locks[key] = l
	}
	l.refs++
	lm.mu.Unlock()

	l.Lock()
	return func() {
		l.Unlock()

		lm.mu.Lock()
		l.refs--
		if l.refs == 0 {
			delete(lm.locks, key)
		}
		lm.mu.Unlock()
	}
}

// Len returns the number of keys currently held or waited on
func (lm *LockManager) Len() int {
	lm.mu.Lock()
	defer lm.mu.Unlock()
	return len(lm.locks)
}
