package testutil

import "time"

// Clock is a manually advanced clock for deterministic timer and service
// tests. It satisfies the timer.Clock interface.
type Clock struct {
	now time.Time
}

// NewClock creates a Clock frozen at the given instant.
func NewClock(now time.Time) *Clock {
	return &Clock{now: now}
}

func (c *Clock) Now() time.Time { return c.now }

// Advance moves the clock forward by d.
func (c *Clock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}

// Set jumps the clock to the given instant.
func (c *Clock) Set(t time.Time) {
	c.now = t
}
