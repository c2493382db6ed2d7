// Package hostclock provides a millisecond tick source for interval timers
// running in a regular Go process.
package hostclock

import (
	"time"

	"code.cloudfoundry.org/clock"
)

// Clock counts milliseconds since it was created, wrapping at 2^32 like a
// firmware tick counter.
type Clock struct {
	clock  clock.Clock
	epoch  time.Time
	offset uint32
}

// New returns a Clock reading c. A nil c selects the wall clock.
func New(c clock.Clock) *Clock {
	return NewWithOffset(c, 0)
}

// NewWithOffset returns a Clock whose first tick is offset. Starting close to
// 2^32 exercises counter wraparound within minutes instead of weeks.
func NewWithOffset(c clock.Clock, offset uint32) *Clock {
	if c == nil {
		c = clock.NewClock()
	}
	return &Clock{
		clock:  c,
		epoch:  c.Now(),
		offset: offset,
	}
}

// Ticks returns the milliseconds elapsed since creation plus the offset
func (c *Clock) Ticks() uint32 {
	ms := c.clock.Since(c.epoch) / time.Millisecond
	if ms < 0 {
		// Wall clock stepped backwards
		ms = 0
	}
	return c.offset + uint32(uint64(ms))
}
