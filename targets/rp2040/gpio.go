//go:build rp2040

package main

import (
	"errors"
	"machine"

	"gokey/core"
)

// RPGPIODriver implements core.GPIODriver on the RP2040. The chip has a
// single GPIO bank, so the descriptor's port index must be zero and the bit
// position maps straight onto the GPIO number.
type RPGPIODriver struct {
	// Track configured pins to prevent conflicts
	configuredPins map[core.Pin]machine.Pin
	// Last driven level per output, for TogglePin
	levels map[core.Pin]bool
}

var errBadPort = errors.New("rp2040: only port 0 exists")

// NewRPGPIODriver creates a new RP2040 GPIO driver
func NewRPGPIODriver() *RPGPIODriver {
	return &RPGPIODriver{
		configuredPins: make(map[core.Pin]machine.Pin),
		levels:         make(map[core.Pin]bool),
	}
}

func (d *RPGPIODriver) machinePin(pin core.Pin) (machine.Pin, error) {
	if pin.Port != 0 {
		return machine.NoPin, errBadPort
	}
	return machine.Pin(pin.Bit), nil
}

// ConfigureInput configures a pin as a digital input with the given pull.
// The external pull variants leave the on-chip resistor disabled; the board
// already biases the line.
func (d *RPGPIODriver) ConfigureInput(pin core.Pin, pull core.PullMode) error {
	machinePin, err := d.machinePin(pin)
	if err != nil {
		return err
	}

	mode := machine.PinInput
	if pull.Internal() {
		if pull == core.PullUp {
			mode = machine.PinInputPullup
		} else {
			mode = machine.PinInputPulldown
		}
	}
	machinePin.Configure(machine.PinConfig{Mode: mode})

	d.configuredPins[pin] = machinePin
	return nil
}

// ConfigureOutput configures a pin as a digital output
func (d *RPGPIODriver) ConfigureOutput(pin core.Pin) error {
	machinePin, err := d.machinePin(pin)
	if err != nil {
		return err
	}

	machinePin.Configure(machine.PinConfig{Mode: machine.PinOutput})

	d.configuredPins[pin] = machinePin
	return nil
}

// SetPin drives the pin high (true) or low (false)
func (d *RPGPIODriver) SetPin(pin core.Pin, level bool) error {
	machinePin, exists := d.configuredPins[pin]
	if !exists {
		if err := d.ConfigureOutput(pin); err != nil {
			return err
		}
		machinePin = d.configuredPins[pin]
	}

	machinePin.Set(level)
	d.levels[pin] = level
	return nil
}

// TogglePin inverts the driven level of an output
func (d *RPGPIODriver) TogglePin(pin core.Pin) error {
	return d.SetPin(pin, !d.levels[pin])
}

// GetPin reads the current pin level
func (d *RPGPIODriver) GetPin(pin core.Pin) (bool, error) {
	machinePin, exists := d.configuredPins[pin]
	if !exists {
		return false, errors.New("rp2040: pin not configured")
	}
	return machinePin.Get(), nil
}

// ReadPin reads the current pin level (convenience wrapper around GetPin)
func (d *RPGPIODriver) ReadPin(pin core.Pin) bool {
	level, _ := d.GetPin(pin)
	return level
}
