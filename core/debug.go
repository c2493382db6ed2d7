package core

// DebugWriter is a function type for writing debug messages
type DebugWriter func(string)

var (
	// debugPrintln is the global debug print function (can be set by platform code)
	debugPrintln DebugWriter = func(s string) {} // No-op by default

	// debugEnabled controls whether debug output is active
	debugEnabled bool = false
)

// SetDebugWriter sets the platform-specific debug output function
// This allows platforms to redirect debug output to UART, USB, etc.
func SetDebugWriter(writer DebugWriter) {
	debugPrintln = writer
}

// SetDebugEnabled enables or disables debug output
func SetDebugEnabled(enabled bool) {
	debugEnabled = enabled
}

// IsDebugEnabled returns whether debug output is enabled
func IsDebugEnabled() bool {
	return debugEnabled
}

// DebugPrintln writes a debug message using the platform-specific writer
func DebugPrintln(msg string) {
	if debugEnabled && debugPrintln != nil {
		debugPrintln(msg)
	}
}

// DebugTimer writes the state of a timer as "[TIMER] name active=.. elapsed=.. duration=.."
func DebugTimer(name string, t *IntervalTimer) {
	if !IsDebugEnabled() {
		return
	}
	active := "0"
	if t.IsActive() {
		active = "1"
	}
	DebugPrintln("[TIMER] " + name +
		" active=" + active +
		" elapsed=" + utoa(t.Elapsed()) +
		" duration=" + utoa(t.Duration()))
}
