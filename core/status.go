package core

// Status is the periodic report a board prints on its console, one line per
// report:
//
//	status uptime=<ticks> blinks=<n> accel="<x> <y> <z>"
//
// The accel field is omitted when no sample has been taken.
type Status struct {
	Uptime    uint32
	Blinks    uint32
	HaveAccel bool
	AccelX    int32
	AccelY    int32
	AccelZ    int32
}

// StatusPrefix starts every status line
const StatusPrefix = "status"

// FormatStatus renders s as a status line without a trailing newline
func FormatStatus(s Status) string {
	line := StatusPrefix +
		" uptime=" + utoa(s.Uptime) +
		" blinks=" + utoa(s.Blinks)
	if s.HaveAccel {
		line += " accel=\"" + itoa(s.AccelX) + " " + itoa(s.AccelY) + " " + itoa(s.AccelZ) + "\""
	}
	return line
}
