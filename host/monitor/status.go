package monitor

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/shlex"

	"ticktimer/core"
)

// ErrNotStatus is returned by ParseStatus for console lines that are not
// status reports
var ErrNotStatus = errors.New("not a status line")

// ParseStatus parses a line produced by core.FormatStatus
func ParseStatus(line string) (core.Status, error) {
	var status core.Status

	fields, err := shlex.Split(line)
	if err != nil {
		return status, fmt.Errorf("failed to split status line: %w", err)
	}
	if len(fields) == 0 || fields[0] != core.StatusPrefix {
		return status, ErrNotStatus
	}

	for _, field := range fields[1:] {
		key, value, ok := strings.Cut(field, "=")
		if !ok {
			return status, fmt.Errorf("malformed field %q", field)
		}

		switch key {
		case "uptime":
			status.Uptime, err = parseUint32(value)
		case "blinks":
			status.Blinks, err = parseUint32(value)
		case "accel":
			err = parseAccel(value, &status)
		default:
			// Newer firmware may add fields
			continue
		}
		if err != nil {
			return status, fmt.Errorf("field %s: %w", key, err)
		}
	}

	return status, nil
}

func parseUint32(s string) (uint32, error) {
	v, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, err
	}
	return uint32(v), nil
}

func parseAccel(s string, status *core.Status) error {
	parts := strings.Fields(s)
	if len(parts) != 3 {
		return fmt.Errorf("expected 3 axes, got %d", len(parts))
	}

	var axes [3]int32
	for i, part := range parts {
		v, err := strconv.ParseInt(part, 10, 32)
		if err != nil {
			return err
		}
		axes[i] = int32(v)
	}

	status.HaveAccel = true
	status.AccelX, status.AccelY, status.AccelZ = axes[0], axes[1], axes[2]
	return nil
}
