package core

import "errors"

// ReportSink is the boundary with the USB collaborator: the keyboard
// deposits a completed input report and the sink owns delivery to the host.
type ReportSink interface {
	Send(r *Report) error
}

// KeyboardConfig bundles the compile-time configuration surface: matrix
// wiring, key layout, scan cadence, and the report consumer.
type KeyboardConfig struct {
	Matrix MatrixConfig
	Keymap Keymap

	// ScanPeriodTicks is the matrix scan period in milliseconds.
	ScanPeriodTicks uint32

	Sink ReportSink
}

// Keyboard ties the scan pipeline together: matrix scan, momentary layer
// resolution, keycode translation, report assembly, and handoff to the
// sink. All methods run from main-line code only.
type Keyboard struct {
	matrix Matrix
	keymap Keymap
	sink   ReportSink

	scanPeriod uint32
	layer      uint8

	report   Report
	lastSent Report
}

var ErrSchedulerFull = errors.New("keyboard: no free scheduler slot")

// Configure validates the layout against the matrix geometry and programs
// the matrix pins. Must be called before the first scan.
func (k *Keyboard) Configure(cfg KeyboardConfig) error {
	if err := k.matrix.Configure(cfg.Matrix); err != nil {
		return err
	}
	if err := cfg.Keymap.Validate(k.matrix.Rows(), k.matrix.Cols()); err != nil {
		return err
	}
	k.keymap = cfg.Keymap
	k.sink = cfg.Sink
	k.scanPeriod = cfg.ScanPeriodTicks
	k.layer = 0
	k.report.Clear()
	k.lastSent.Clear()
	return nil
}

// RegisterTasks claims a scheduler slot for the periodic scan.
func (k *Keyboard) RegisterTasks(s *Scheduler) (*Task, error) {
	t := s.Create(k.Task, k.scanPeriod)
	if t == nil {
		return nil, ErrSchedulerFull
	}
	return t, nil
}

// Task runs one scan pass and publishes a report when the pressed set
// changed. Layer keys are resolved from the base layer first so the layer
// they select applies to every other key in the same pass.
func (k *Keyboard) Task(now uint32) {
	k.matrix.Scan(now)

	layer := uint8(0)
	k.matrix.ForEachPressed(func(row, col uint8) {
		if kc := k.keymap.Lookup(0, row, col); kc.IsLayer() {
			layer = kc.Layer()
		}
	})
	k.layer = layer

	k.report.Clear()
	k.matrix.ForEachPressed(func(row, col uint8) {
		k.report.AddKey(k.keymap.Lookup(layer, row, col))
	})

	if k.report != k.lastSent {
		if k.sink != nil {
			if err := k.sink.Send(&k.report); err != nil {
				DebugPrintln("keyboard: send failed: " + err.Error())
			}
		}
		k.lastSent = k.report
	}
}

// Layer returns the layer resolved by the most recent scan pass.
func (k *Keyboard) Layer() uint8 {
	return k.layer
}

// Report returns a copy of the most recent report.
func (k *Keyboard) Report() Report {
	return k.report
}

// Matrix exposes the scan state for status display code.
func (k *Keyboard) Matrix() *Matrix {
	return &k.matrix
}
