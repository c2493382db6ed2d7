//go:build rp2040

package main

import (
	"machine"
	"runtime"

	"ticktimer/core"
)

// Intervals in milliseconds
const (
	blinkInterval  = 500
	sampleInterval = 100
	reportInterval = 1000
	// Keep the LED dark this long after a failed sensor init
	sensorRetryInterval = 5000
)

var (
	led    = machine.LED
	blinks uint32
	ledOn  bool
	status core.Status
)

func main() {
	led.Configure(machine.PinConfig{Mode: machine.PinOutput})

	UpdateSystemTime()
	core.TimerInit()

	core.SetDebugWriter(writeLine)
	core.SetDebugEnabled(true)
	writeLine("ticktimer rp2040 ready")

	blink := core.NewIntervalTimer(hardwareClock)
	sample := core.NewIntervalTimer(hardwareClock)
	retry := core.NewIntervalTimer(hardwareClock)
	report := core.NewIntervalTimer(hardwareClock)

	blink.Begin(core.TicksFromMS(blinkInterval))
	report.Begin(core.TicksFromMS(reportInterval))

	accel, err := initAccel()
	if err != nil {
		core.DebugPrintln("[ACCEL] init failed: " + err.Error())
		retry.Begin(core.TicksFromMS(sensorRetryInterval))
	} else {
		sample.Begin(core.TicksFromMS(sampleInterval))
	}

	for {
		UpdateSystemTime()

		if blink.IsExpired() {
			ledOn = !ledOn
			led.Set(ledOn)
			if ledOn {
				blinks++
			}
			blink.Reset()
		}

		if retry.IsActive() && retry.IsExpired() {
			if accel, err = initAccel(); err == nil {
				retry.Begin(0)
				sample.Begin(core.TicksFromMS(sampleInterval))
			} else {
				retry.Reset()
			}
		}

		if sample.IsActive() && sample.IsExpired() {
			status.AccelX, status.AccelY, status.AccelZ = accel.sample()
			status.HaveAccel = true
			sample.Reset()
		}

		if report.IsExpired() {
			status.Uptime = core.GetUptime()
			status.Blinks = blinks
			writeLine(core.FormatStatus(status))
			core.DebugTimer("blink", &blink)
			report.Reset()
		}

		runtime.Gosched()
	}
}

// writeLine writes s and CRLF to the USB console
func writeLine(s string) {
	machine.Serial.Write([]byte(s))
	machine.Serial.Write([]byte("\r\n"))
}
