package core

import "time"

// TickFreq is the rate of the system tick counter in ticks per second.
// The reference platform counts milliseconds.
const (
	TickFreq = 1000
)

var (
	systemTicks uint32
	bootTicks   uint32 // Tick count captured by TimerInit
)

// Clock is a monotonic tick source. The count wraps to zero after 2^32-1.
type Clock interface {
	Ticks() uint32
}

// ClockFunc adapts a plain function to the Clock interface
type ClockFunc func() uint32

// Ticks calls f
func (f ClockFunc) Ticks() uint32 {
	return f()
}

// SystemClock reads the process-wide tick counter maintained by the platform
// through SetTime and AdvanceTime.
type SystemClock struct{}

// Ticks returns GetTime()
func (SystemClock) Ticks() uint32 {
	return GetTime()
}

// GetTime returns the current system time in ticks
func GetTime() uint32 {
	return getSystemTicks()
}

// SetTime sets the current system time (for testing/hardware integration)
func SetTime(ticks uint32) {
	setSystemTicks(ticks)
}

// AdvanceTime adds delta ticks to the system time, wrapping at 2^32.
// Called from a periodic tick interrupt on targets without a readable counter.
func AdvanceTime(delta uint32) {
	addSystemTicks(delta)
}

// GetUptime returns the ticks elapsed since TimerInit
func GetUptime() uint32 {
	return GetTime() - bootTicks
}

// TicksFromMS converts milliseconds to ticks
func TicksFromMS(ms uint32) uint32 {
	return uint32(uint64(ms) * TickFreq / 1000)
}

// TicksToMS converts ticks to milliseconds
func TicksToMS(ticks uint32) uint32 {
	return uint32(uint64(ticks) * 1000 / TickFreq)
}

// TicksFromDuration converts d to ticks, clamping to the range of uint32.
// Negative durations yield 0.
func TicksFromDuration(d time.Duration) uint32 {
	if d <= 0 {
		return 0
	}
	ticks := uint64(d) / uint64(time.Second/TickFreq)
	if ticks > 0xFFFFFFFF {
		return 0xFFFFFFFF
	}
	return uint32(ticks)
}

// TimerInit records the boot tick so GetUptime starts at zero
func TimerInit() {
	bootTicks = GetTime()
}
