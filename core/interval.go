package core

// IntervalTimer reports whether a number of ticks has elapsed since it was
// started. It never blocks and holds no resources: the owner polls it from
// its main loop.
//
// Elapsed time is computed as now - start in uint32 arithmetic, so expiry is
// detected correctly across a wrap of the tick counter as long as the real
// interval is shorter than the counter period.
//
// A duration of 0 marks the timer inactive. An inactive timer still answers
// IsExpired relative to its start tick, so callers that care check IsActive
// first.
type IntervalTimer struct {
	clock     Clock
	startTick uint32
	duration  uint32
}

// NewIntervalTimer returns an inactive timer reading ticks from clock.
// A nil clock selects SystemClock.
func NewIntervalTimer(clock Clock) IntervalTimer {
	return IntervalTimer{clock: clock}
}

func (t *IntervalTimer) now() uint32 {
	if t.clock == nil {
		return GetTime()
	}
	return t.clock.Ticks()
}

// Begin sets the interval and starts counting from the current tick
func (t *IntervalTimer) Begin(duration uint32) {
	t.duration = duration
	t.startTick = t.now()
}

// Reset restarts counting from the current tick, keeping the interval
func (t *IntervalTimer) Reset() {
	t.startTick = t.now()
}

// IsActive returns true if the timer has a nonzero interval
func (t *IntervalTimer) IsActive() bool {
	return t.duration > 0
}

// IsExpired returns true once more than the configured interval has elapsed.
// At exactly the interval it is not yet expired.
func (t *IntervalTimer) IsExpired() bool {
	return t.now()-t.startTick > t.duration
}

// IsExpiredAfter is IsExpired against duration instead of the configured
// interval. The timer is not modified.
func (t *IntervalTimer) IsExpiredAfter(duration uint32) bool {
	return t.now()-t.startTick > duration
}

// Elapsed returns the ticks since the last Begin or Reset
func (t *IntervalTimer) Elapsed() uint32 {
	return t.now() - t.startTick
}

// Remaining returns the ticks left until the timer expires, or 0 if it has.
// Saturates at 0xFFFFFFFF when a maximum interval has just started.
func (t *IntervalTimer) Remaining() uint32 {
	elapsed := t.now() - t.startTick
	if elapsed > t.duration {
		return 0
	}
	left := t.duration - elapsed
	if left == 0xFFFFFFFF {
		return left
	}
	// Expiry is the first tick past duration
	return left + 1
}

// Duration returns the configured interval
func (t *IntervalTimer) Duration() uint32 {
	return t.duration
}

// StartTick returns the tick captured by the last Begin or Reset
func (t *IntervalTimer) StartTick() uint32 {
	return t.startTick
}
