package core

import "errors"

// Capacity limits for the statically sized scan state. The target
// environment has no heap, so the debounce store is a fixed array and the
// configured geometry is an occupancy count into it.
const (
	MaxRows = 8
	MaxCols = 24
)

// MatrixConfig is the static electrical description of a keyswitch matrix:
// which pin drives each row and column, and which pull convention the rows
// are wired with. The column active level is derived from the row pull:
// pull-up rows are strobed low, pull-down rows are strobed high.
type MatrixConfig struct {
	RowPins []Pin
	ColPins []Pin

	// RowPull is the bias applied to every row input. Must not be PullNone:
	// a floating row has no defined idle level to debounce against.
	RowPull PullMode

	// DebounceTicks is the settle window in milliseconds. A transition is
	// committed only after the raw reading holds for this long.
	DebounceTicks uint32

	// Settle, when non-nil, runs after a column is activated and before its
	// rows are read, giving the lines time to charge. Targets typically
	// install a short busy-wait; host builds leave it nil.
	Settle func()
}

// Matrix scans a row/column keyswitch matrix through the GPIO driver and
// maintains the debounced pressed state of every cell.
type Matrix struct {
	rowPins [MaxRows]Pin
	colPins [MaxCols]Pin
	numRows uint8
	numCols uint8

	pressedLevel bool // row level that means pressed
	colActive    bool // column drive level that lets a press register
	colInactive  bool

	debounceTicks uint32
	settle        func()

	cells [MaxRows][MaxCols]cellState
}

var (
	ErrMatrixGeometry = errors.New("matrix: row/column count out of range")
	ErrMatrixPull     = errors.New("matrix: rows need a defined pull mode")
	ErrMatrixPinReuse = errors.New("matrix: pin assigned to both a row and a column")
)

// Configure validates the geometry, derives the electrical convention, and
// programs every pin through the GPIO driver: rows as inputs with the
// configured pull, columns as outputs parked at the inactive level.
func (m *Matrix) Configure(cfg MatrixConfig) error {
	if len(cfg.RowPins) == 0 || len(cfg.RowPins) > MaxRows ||
		len(cfg.ColPins) == 0 || len(cfg.ColPins) > MaxCols {
		return ErrMatrixGeometry
	}
	if cfg.RowPull == PullNone {
		return ErrMatrixPull
	}
	for _, rp := range cfg.RowPins {
		for _, cp := range cfg.ColPins {
			if rp == cp {
				return ErrMatrixPinReuse
			}
		}
	}

	m.numRows = uint8(len(cfg.RowPins))
	m.numCols = uint8(len(cfg.ColPins))
	copy(m.rowPins[:], cfg.RowPins)
	copy(m.colPins[:], cfg.ColPins)

	// A press connects the row to the strobed column, so the column's
	// active level is the level the row reads when pressed.
	m.pressedLevel = cfg.RowPull.PressedLevel()
	m.colActive = m.pressedLevel
	m.colInactive = !m.pressedLevel

	m.debounceTicks = cfg.DebounceTicks
	m.settle = cfg.Settle

	drv := MustGPIO()
	for r := uint8(0); r < m.numRows; r++ {
		if err := drv.ConfigureInput(m.rowPins[r], cfg.RowPull); err != nil {
			return err
		}
	}
	for c := uint8(0); c < m.numCols; c++ {
		if err := drv.ConfigureOutput(m.colPins[c]); err != nil {
			return err
		}
		if err := drv.SetPin(m.colPins[c], m.colInactive); err != nil {
			return err
		}
	}

	for r := range m.cells {
		for c := range m.cells[r] {
			m.cells[r][c].reset()
		}
	}
	return nil
}

// Scan performs one complete pass over the matrix at timebase value now.
// Columns are strobed one at a time in a fixed order, and each column is
// returned to its inactive level before the next is activated; two
// simultaneously active columns would corrupt readings on shared rows.
func (m *Matrix) Scan(now uint32) {
	drv := MustGPIO()
	for c := uint8(0); c < m.numCols; c++ {
		drv.SetPin(m.colPins[c], m.colActive)
		if m.settle != nil {
			m.settle()
		}
		for r := uint8(0); r < m.numRows; r++ {
			raw := drv.ReadPin(m.rowPins[r]) == m.pressedLevel
			m.cells[r][c].observe(raw, now, m.debounceTicks)
		}
		drv.SetPin(m.colPins[c], m.colInactive)
	}
}

// Pressed reports the debounced state of one cell.
func (m *Matrix) Pressed(row, col uint8) bool {
	if row >= m.numRows || col >= m.numCols {
		return false
	}
	return m.cells[row][col].stable
}

// ForEachPressed calls fn for every debounced pressed cell in scan order
// (row-major within each column, columns in strobe order).
func (m *Matrix) ForEachPressed(fn func(row, col uint8)) {
	for c := uint8(0); c < m.numCols; c++ {
		for r := uint8(0); r < m.numRows; r++ {
			if m.cells[r][c].stable {
				fn(r, c)
			}
		}
	}
}

// Rows returns the configured row count.
func (m *Matrix) Rows() uint8 { return m.numRows }

// Cols returns the configured column count.
func (m *Matrix) Cols() uint8 { return m.numCols }
