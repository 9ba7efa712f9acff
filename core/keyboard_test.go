package core_test

import (
	"testing"

	"gokey/core"
	"gokey/sim"
)

type captureSink struct {
	sends   int
	lastLen int
	last    core.Report
}

func (s *captureSink) Send(r *core.Report) error {
	s.sends++
	s.last = *r
	s.lastLen = len(s.last.Keys())
	return nil
}

func padKeymap() core.Keymap {
	return core.Keymap{
		{
			{core.Key1, core.Key2, core.Key3},
			{core.Key4, core.Key5, core.Key6},
			{core.Key7, core.Key8, core.Key9},
			{core.LayerKey(1), core.Key0, core.KeyEnter},
		},
		{
			{core.KeyF1, core.KeyF2, core.KeyF3},
			{core.KeyF4, core.KeyF5, core.KeyF6},
			{core.KeyF7, core.KeyF8, core.KeyF9},
			{core.LayerKey(1), core.KeyF10, core.KeyF11},
		},
	}
}

func newTestKeyboard(t *testing.T, sink core.ReportSink) (*core.Keyboard, *sim.Crossbar) {
	t.Helper()
	crossbar := sim.NewCrossbar(testRowPins, testColPins)
	core.SetGPIODriver(crossbar)

	var kbd core.Keyboard
	err := kbd.Configure(core.KeyboardConfig{
		Matrix: core.MatrixConfig{
			RowPins:       testRowPins,
			ColPins:       testColPins,
			RowPull:       core.PullUp,
			DebounceTicks: 5,
		},
		Keymap:          padKeymap(),
		ScanPeriodTicks: 1,
		Sink:            sink,
	})
	if err != nil {
		t.Fatalf("Configure: %v", err)
	}
	return &kbd, crossbar
}

func TestKeyboardConfigureRejectsMismatchedKeymap(t *testing.T) {
	core.SetGPIODriver(sim.NewCrossbar(testRowPins, testColPins))
	var kbd core.Keyboard
	err := kbd.Configure(core.KeyboardConfig{
		Matrix: core.MatrixConfig{
			RowPins: testRowPins, ColPins: testColPins, RowPull: core.PullUp,
		},
		Keymap: core.Keymap{{{core.KeyA}}},
	})
	if err != core.ErrKeymapShape {
		t.Errorf("keymap smaller than matrix accepted: %v", err)
	}
}

func TestKeyboardPressReportedAfterDebounce(t *testing.T) {
	var sink captureSink
	kbd, crossbar := newTestKeyboard(t, &sink)

	crossbar.Press(0, 0)
	kbd.Task(0) // transition observed here
	for tick := uint32(1); tick < 5; tick++ {
		kbd.Task(tick)
		if sink.sends != 0 {
			t.Fatalf("report sent at tick %d, inside the settle window", tick)
		}
	}

	kbd.Task(5)
	if sink.sends != 1 {
		t.Fatalf("sends = %d after window closed, want 1", sink.sends)
	}
	keys := sink.last.Keys()
	if len(keys) != 1 || keys[0] != core.Key1.Usage() {
		t.Errorf("report keys = %v, want [Key1]", keys)
	}

	// Stable hold: no further traffic.
	for tick := uint32(6); tick < 20; tick++ {
		kbd.Task(tick)
	}
	if sink.sends != 1 {
		t.Errorf("sends = %d while held, want 1", sink.sends)
	}

	crossbar.Release(0, 0)
	for tick := uint32(20); tick <= 25; tick++ {
		kbd.Task(tick)
	}
	if sink.sends != 2 {
		t.Errorf("sends = %d after release, want 2", sink.sends)
	}
	if sink.lastLen != 0 {
		t.Errorf("release report still carries keys: %v", sink.last.Keys())
	}
}

func TestKeyboardMomentaryLayer(t *testing.T) {
	var sink captureSink
	kbd, crossbar := newTestKeyboard(t, &sink)

	// Layer key at (3,0); with it held, (0,0) produces F1 instead of 1.
	crossbar.Press(3, 0)
	crossbar.Press(0, 0)
	for tick := uint32(0); tick <= 5; tick++ {
		kbd.Task(tick)
	}

	if kbd.Layer() != 1 {
		t.Fatalf("Layer = %d, want 1", kbd.Layer())
	}
	keys := sink.last.Keys()
	if len(keys) != 1 || keys[0] != core.KeyF1.Usage() {
		t.Errorf("report keys = %v, want [KeyF1]", keys)
	}

	// Releasing the layer key drops back to the base layer; the held key
	// retranslates on the next committed scan.
	crossbar.Release(3, 0)
	for tick := uint32(6); tick <= 12; tick++ {
		kbd.Task(tick)
	}
	if kbd.Layer() != 0 {
		t.Errorf("Layer = %d after release, want 0", kbd.Layer())
	}
	keys = sink.last.Keys()
	if len(keys) != 1 || keys[0] != core.Key1.Usage() {
		t.Errorf("report keys = %v, want [Key1]", keys)
	}
}

func TestKeyboardOverflowDropsInScanOrder(t *testing.T) {
	var sink captureSink
	kbd, crossbar := newTestKeyboard(t, &sink)

	// Seven keys down; the scan walks columns outer, rows inner, so the
	// last cell of column 1 is the one that loses its slot.
	cells := [][2]int{{0, 0}, {1, 0}, {2, 0}, {0, 1}, {1, 1}, {2, 1}, {3, 1}}
	for _, cell := range cells {
		crossbar.Press(cell[0], cell[1])
	}
	for tick := uint32(0); tick <= 5; tick++ {
		kbd.Task(tick)
	}

	want := []byte{
		core.Key1.Usage(), core.Key4.Usage(), core.Key7.Usage(),
		core.Key2.Usage(), core.Key5.Usage(), core.Key8.Usage(),
	}
	keys := sink.last.Keys()
	if len(keys) != core.ReportKeys {
		t.Fatalf("report keys = %v, want %d entries", keys, core.ReportKeys)
	}
	for i, w := range want {
		if keys[i] != w {
			t.Errorf("slot %d = %#x, want %#x", i, keys[i], w)
		}
	}
}

func TestKeyboardScheduledScan(t *testing.T) {
	var sink captureSink
	kbd, crossbar := newTestKeyboard(t, &sink)

	core.SetTicks(0)
	var sched core.Scheduler
	task, err := kbd.RegisterTasks(&sched)
	if err != nil {
		t.Fatalf("RegisterTasks: %v", err)
	}
	if task == nil {
		t.Fatal("RegisterTasks returned a nil task")
	}

	crossbar.Press(2, 2)
	for i := 0; i < 10; i++ {
		core.AdvanceTicks(1)
		sched.RunOnce()
	}

	if sink.sends != 1 {
		t.Fatalf("sends = %d, want 1", sink.sends)
	}
	keys := sink.last.Keys()
	if len(keys) != 1 || keys[0] != core.Key9.Usage() {
		t.Errorf("report keys = %v, want [Key9]", keys)
	}
}
