package core

// Pin identifies a physical GPIO by port index and bit position within the
// port. Pins are statically allocated configuration data; they are never
// constructed at runtime.
type Pin struct {
	Port uint8
	Bit  uint8
}

// PullMode describes the resistor configuration biasing an input pin.
// The external variants bias the line the same way as the internal ones;
// they exist so a target driver can skip enabling its internal resistor
// when the board already carries one.
type PullMode uint8

const (
	PullNone PullMode = iota // Hi-Z, no defined idle level
	PullUp
	PullDown
	PullUpExternal
	PullDownExternal
)

// PressedLevel returns the electrical level a closed switch produces on an
// input biased with this pull mode: pull-up wiring reads low when pressed,
// pull-down wiring reads high. PullNone has no defined pressed level and
// must not be used for matrix rows.
func (m PullMode) PressedLevel() bool {
	switch m {
	case PullUp, PullUpExternal:
		return false
	default:
		return true
	}
}

// Internal reports whether the target driver should enable its on-chip
// resistor for this mode.
func (m PullMode) Internal() bool {
	return m == PullUp || m == PullDown
}

// GPIODriver is the abstract GPIO interface that core code uses.
// Platform-specific implementations handle actual hardware control. Every
// call is O(1) and non-blocking. Read results are raw electrical levels;
// translating a level into a semantic "pressed" is the caller's job because
// the mapping depends on the pull configuration.
type GPIODriver interface {
	// ConfigureInput configures a pin as a digital input with the given
	// pull configuration.
	ConfigureInput(pin Pin, pull PullMode) error

	// ConfigureOutput configures a pin as a digital output
	ConfigureOutput(pin Pin) error

	// SetPin drives the pin high (true) or low (false)
	SetPin(pin Pin, level bool) error

	// TogglePin inverts the pin's driven level
	TogglePin(pin Pin) error

	// GetPin reads the current electrical level of the pin
	GetPin(pin Pin) (bool, error)

	// ReadPin reads the current pin level (convenience wrapper for GetPin)
	ReadPin(pin Pin) bool
}

// Global singleton used by core code.
var gpioDriver GPIODriver

// SetGPIODriver is called by target-specific code to register its driver.
func SetGPIODriver(d GPIODriver) {
	gpioDriver = d
}

// MustGPIO returns the configured driver or panics if missing.
func MustGPIO() GPIODriver {
	if gpioDriver == nil {
		panic("GPIO driver not configured")
	}
	return gpioDriver
}
