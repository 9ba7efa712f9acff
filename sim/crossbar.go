// Package sim provides a host-side electrical model of a keyswitch matrix
// implementing the core GPIO driver contract. Tests and the keysim tool use
// it in place of real hardware.
package sim

import (
	"errors"

	"gokey/core"
)

// Crossbar models a diode-less switch matrix: a closed switch conducts both
// ways between its row and column, so current can travel multi-hop sneak
// paths through other closed switches. A column that has been driven clamps
// its level and conduction stops there; a column left floating relays
// whatever level reaches it. A row input idles at its pull bias and reads
// the opposite level when any driven column at that level is reachable.
//
// The classic three-corner ghost is therefore representable: it shows up
// when the scanner leaves inactive columns floating, and is suppressed only
// because the scanner parks every inactive column at a driven level.
type Crossbar struct {
	rowPins []core.Pin
	colPins []core.Pin

	rowIndex map[core.Pin]int
	colIndex map[core.Pin]int

	closed [][]bool

	pulls    map[core.Pin]core.PullMode
	driven   map[core.Pin]bool // configured outputs
	levels   map[core.Pin]bool // driven level; absent means floating
	inputs   map[core.Pin]bool // configured inputs
	ReadsLog int               // row reads performed, for scan-order assertions
}

var (
	errUnknownPin  = errors.New("sim: pin not part of the crossbar")
	errNotInput    = errors.New("sim: read of a pin not configured as input")
	errFloatingPin = errors.New("sim: read of an output never driven")
)

// NewCrossbar builds a crossbar over the given row and column pins with
// every switch open.
func NewCrossbar(rowPins, colPins []core.Pin) *Crossbar {
	x := &Crossbar{
		rowPins:  rowPins,
		colPins:  colPins,
		rowIndex: make(map[core.Pin]int, len(rowPins)),
		colIndex: make(map[core.Pin]int, len(colPins)),
		pulls:    make(map[core.Pin]core.PullMode),
		driven:   make(map[core.Pin]bool),
		levels:   make(map[core.Pin]bool),
		inputs:   make(map[core.Pin]bool),
	}
	for i, p := range rowPins {
		x.rowIndex[p] = i
	}
	for i, p := range colPins {
		x.colIndex[p] = i
	}
	x.closed = make([][]bool, len(rowPins))
	for r := range x.closed {
		x.closed[r] = make([]bool, len(colPins))
	}
	return x
}

// Press closes the switch at (row, col).
func (x *Crossbar) Press(row, col int) {
	x.closed[row][col] = true
}

// Release opens the switch at (row, col).
func (x *Crossbar) Release(row, col int) {
	x.closed[row][col] = false
}

// ReleaseAll opens every switch.
func (x *Crossbar) ReleaseAll() {
	for r := range x.closed {
		for c := range x.closed[r] {
			x.closed[r][c] = false
		}
	}
}

// ConfigureInput implements core.GPIODriver. Only row pins are sensed.
func (x *Crossbar) ConfigureInput(pin core.Pin, pull core.PullMode) error {
	if _, ok := x.rowIndex[pin]; !ok {
		return errUnknownPin
	}
	x.inputs[pin] = true
	x.pulls[pin] = pull
	delete(x.driven, pin)
	return nil
}

// ConfigureOutput implements core.GPIODriver. Only column pins drive. The
// pin floats until the first SetPin.
func (x *Crossbar) ConfigureOutput(pin core.Pin) error {
	if _, ok := x.colIndex[pin]; !ok {
		return errUnknownPin
	}
	x.driven[pin] = true
	delete(x.levels, pin)
	delete(x.inputs, pin)
	return nil
}

// SetPin implements core.GPIODriver.
func (x *Crossbar) SetPin(pin core.Pin, level bool) error {
	if !x.driven[pin] {
		return errUnknownPin
	}
	x.levels[pin] = level
	return nil
}

// TogglePin implements core.GPIODriver. A floating output toggles from low,
// matching the zero-value tracking hardware drivers use.
func (x *Crossbar) TogglePin(pin core.Pin) error {
	if !x.driven[pin] {
		return errUnknownPin
	}
	x.levels[pin] = !x.levels[pin]
	return nil
}

// GetPin implements core.GPIODriver. Reading a row resolves the conduction
// network; reading back a driven column returns its set level.
func (x *Crossbar) GetPin(pin core.Pin) (bool, error) {
	r, ok := x.rowIndex[pin]
	if !ok {
		if x.driven[pin] {
			level, set := x.levels[pin]
			if !set {
				return false, errFloatingPin
			}
			return level, nil
		}
		return false, errUnknownPin
	}
	if !x.inputs[pin] {
		return false, errNotInput
	}
	x.ReadsLog++
	return x.rowLevel(r), nil
}

// rowLevel floods the switch network from one row. A reachable driven
// column at the level opposite the row's pull bias pulls the row to that
// level; driven columns at the bias level clamp their node and cut the
// path; floating columns conduct onward through every other closed switch.
// Contention (active and bias sources both reachable) resolves toward the
// active level, the press-favoring idealization.
func (x *Crossbar) rowLevel(r int) bool {
	bias := !x.pulls[x.rowPins[r]].PressedLevel()

	seenRows := make([]bool, len(x.rowPins))
	seenCols := make([]bool, len(x.colPins))

	var fromRow func(int) bool
	fromRow = func(r int) bool {
		if seenRows[r] {
			return false
		}
		seenRows[r] = true
		for c, colPin := range x.colPins {
			if !x.closed[r][c] || seenCols[c] {
				continue
			}
			seenCols[c] = true
			if level, set := x.levels[colPin]; set {
				if level != bias {
					return true
				}
				continue // clamped at bias, conduction stops here
			}
			for r2 := range x.rowPins {
				if x.closed[r2][c] && fromRow(r2) {
					return true
				}
			}
		}
		return false
	}

	if fromRow(r) {
		return !bias
	}
	return bias
}

// ReadPin implements core.GPIODriver.
func (x *Crossbar) ReadPin(pin core.Pin) bool {
	level, _ := x.GetPin(pin)
	return level
}
