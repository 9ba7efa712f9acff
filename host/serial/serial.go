// Package serial abstracts the host end of the keyboard's diagnostic link.
package serial

import (
	"io"
)

// Port represents a serial port. The abstraction leaves room for a mock
// implementation in tests alongside the native one.
type Port interface {
	io.ReadWriteCloser
}

// Config holds serial port configuration
type Config struct {
	// Device path (e.g., "/dev/ttyUSB0", "COM3")
	Device string

	// Baud rate of the mirror UART
	Baud int

	// Read timeout in milliseconds (0 = blocking)
	ReadTimeout int
}

// DefaultConfig returns the configuration matching the firmware's mirror
// UART settings. Reads block: a timed-out read surfaces as a zero-byte
// EOF, which a monitor sitting on an idle link must not mistake for the
// port going away.
func DefaultConfig(device string) *Config {
	return &Config{
		Device:      device,
		Baud:        115200,
		ReadTimeout: 0,
	}
}
