package serial

import (
	"errors"
	"fmt"
	"io"
)

// ErrNilConfig is returned by Open when no configuration is given
var ErrNilConfig = errors.New("config cannot be nil")

// Port represents a serial port interface
// Native ports use github.com/tarm/serial; tests substitute in-memory ports.
type Port interface {
	io.ReadWriteCloser

	// Flush flushes any buffered data
	Flush() error
}

// Config holds serial port configuration
type Config struct {
	// Device path (e.g., "/dev/ttyACM0", "COM3")
	Device string

	// Baud rate (USB CDC consoles ignore this)
	Baud int

	// Read timeout in milliseconds (0 = blocking)
	// A nonzero timeout lets the caller poll its timers between reads.
	ReadTimeout int
}

// DefaultConfig returns the configuration for a TinyGo board console
func DefaultConfig(device string) *Config {
	return &Config{
		Device:      device,
		Baud:        115200, // TinyGo default UART rate
		ReadTimeout: 50,
	}
}

// Validate checks that cfg can be used to open a port
func (c *Config) Validate() error {
	if c == nil {
		return ErrNilConfig
	}
	if c.Device == "" {
		return fmt.Errorf("device path is empty")
	}
	if c.Baud <= 0 {
		return fmt.Errorf("invalid baud rate %d", c.Baud)
	}
	if c.ReadTimeout < 0 {
		return fmt.Errorf("invalid read timeout %dms", c.ReadTimeout)
	}
	return nil
}
