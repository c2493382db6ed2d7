//go:build rp2040

package main

import (
	"runtime/volatile"
	"unsafe"

	"ticktimer/core"
)

// RP2040 Timer peripheral memory map
const (
	timerBase     = 0x40054000
	timerTIMERAWH = timerBase + 0x24 // Raw timer high word
	timerTIMERAWL = timerBase + 0x28 // Raw timer low word
)

var (
	timerRAWH = (*volatile.Register32)(unsafe.Pointer(uintptr(timerTIMERAWH)))
	timerRAWL = (*volatile.Register32)(unsafe.Pointer(uintptr(timerTIMERAWL)))
)

// hardwareClock ticks in milliseconds derived from the 1MHz hardware timer.
// Truncating the 64-bit millisecond count keeps the 2^32 wrap exact.
var hardwareClock = core.ClockFunc(func() uint32 {
	return uint32(GetHardwareUptime() / 1000)
})

// GetHardwareUptime reads the full 64-bit microsecond counter
func GetHardwareUptime() uint64 {
	// Read high, low, high again to detect a carry between the reads
	for {
		high1 := timerRAWH.Get()
		low := timerRAWL.Get()
		high2 := timerRAWH.Get()

		if high1 == high2 {
			return (uint64(high1) << 32) | uint64(low)
		}
	}
}

// UpdateSystemTime copies the hardware tick count into core's system time
// Called once per main loop iteration
func UpdateSystemTime() {
	core.SetTime(hardwareClock.Ticks())
}
