// Package testutil provides shared test doubles: a controllable wall
// clock and a scripted AI client.
package testutil

import (
	"sync"
	"time"
)

// Clock is a controllable wall clock for tests.
//
// Production code takes a now func() time.Time; tests pass clock.Now and
// move time explicitly with Advance. Classification boundaries and notice
// expiry become deterministic this way.
//
// Thread-safety: all methods are safe for concurrent use via internal
// mutex, though the application only reads time from one logical thread.
type Clock struct {
	mu  sync.Mutex
	now time.Time
}

// NewClock creates a clock frozen at the given instant.
func NewClock(now time.Time) *Clock {
	return &Clock{now: now}
}

// Now returns the current frozen instant.
func (c *Clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Advance moves the clock forward by d. Negative d moves it backward;
// tests use that to probe boundary behavior, nothing forbids it.
func (c *Clock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// Set jumps the clock to a specific instant.
func (c *Clock) Set(now time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = now
}
