//go:build tinygo

package core

import "sync/atomic"

// getSystemTicks returns the current system ticks
func getSystemTicks() uint32 {
	return atomic.LoadUint32(&systemTicks)
}

// setSystemTicks sets the system ticks
func setSystemTicks(ticks uint32) {
	atomic.StoreUint32(&systemTicks, ticks)
}

// addSystemTicks advances the system ticks; safe to call from an interrupt handler
func addSystemTicks(delta uint32) {
	atomic.AddUint32(&systemTicks, delta)
}
