package core

import (
	"testing"
	"time"
)

func TestSystemClockAdvanceWraps(t *testing.T) {
	saved := GetTime()
	defer SetTime(saved)

	SetTime(0xFFFFFFFA)
	AdvanceTime(10)
	if got := (SystemClock{}).Ticks(); got != 4 {
		t.Errorf("Expected wrapped time 4, got %d", got)
	}
}

func TestUptime(t *testing.T) {
	saved := GetTime()
	defer SetTime(saved)

	SetTime(0xFFFFFF00)
	TimerInit()
	AdvanceTime(0x200)
	if got := GetUptime(); got != 0x200 {
		t.Errorf("Expected uptime 0x200 across wrap, got %#x", got)
	}
}

func TestTickConversions(t *testing.T) {
	testCases := []struct {
		d     time.Duration
		ticks uint32
	}{
		{-time.Second, 0},
		{0, 0},
		{time.Microsecond, 0},
		{time.Millisecond, 1},
		{1500 * time.Millisecond, 1500},
		{time.Hour, 3600000},
		{time.Duration(1<<62), 0xFFFFFFFF},
	}

	for _, tc := range testCases {
		if got := TicksFromDuration(tc.d); got != tc.ticks {
			t.Errorf("TicksFromDuration(%v) = %d, expected %d", tc.d, got, tc.ticks)
		}
	}

	for _, ms := range []uint32{0, 1, 999, 4000000000} {
		if got := TicksToMS(TicksFromMS(ms)); got != ms {
			t.Errorf("Round trip of %dms gave %d", ms, got)
		}
	}
}
