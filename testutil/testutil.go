package testutil

import (
	"sync"
	"time"
)

// Clock is a deterministic clock that advances by Step on every reading.
type Clock struct {
	mu   sync.Mutex
	now  time.Time
	Step time.Duration
}

// NewClock returns a clock starting at start, in UTC.
func NewClock(start time.Time, step time.Duration) *Clock {
	return &Clock{now: start.UTC(), Step: step}
}

// Now returns the current reading and advances the clock.
func (c *Clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := c.now
	c.now = c.now.Add(c.Step)
	return t
}
