// Package leaktest checks that tests do not leave goroutines behind.
package leaktest

import (
	"runtime"
	"testing"
	"time"
)

// settleTimeout bounds how long Check waits for goroutines to exit
const settleTimeout = time.Second

// GoroutineChecker compares the goroutine count against a baseline
type GoroutineChecker struct {
	t      testing.TB
	before int
}

// NewGoroutineChecker records the current goroutine count as the baseline
func NewGoroutineChecker(t testing.TB) *GoroutineChecker {
	t.Helper()
	return &GoroutineChecker{t: t, before: settledCount()}
}

// Check fails the test if more than tolerance goroutines remain above the
// baseline once settleTimeout has passed
func (g *GoroutineChecker) Check(tolerance int) {
	g.t.Helper()

	limit := g.before + tolerance
	deadline := time.Now().Add(settleTimeout)
	after := runtime.NumGoroutine()
	for after > limit && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
		after = runtime.NumGoroutine()
	}

	if after > limit {
		g.t.Errorf("goroutine leak: before=%d after=%d tolerance=%d", g.before, after, tolerance)
	}
}

// Run fails the test if fn leaves any goroutine running
func Run(t testing.TB, fn func()) {
	t.Helper()
	checker := NewGoroutineChecker(t)
	fn()
	checker.Check(0)
}

// settledCount waits for the count to stop changing so goroutines started
// by earlier tests are not attributed to the next one
func settledCount() int {
	prev := runtime.NumGoroutine()
	for i := 0; i < 5; i++ {
		runtime.Gosched()
		time.Sleep(5 * time.Millisecond)
		n := runtime.NumGoroutine()
		if n == prev {
			return n
		}
		prev = n
	}
	return prev
}
