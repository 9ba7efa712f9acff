package core

// cellState tracks debounce for one matrix cell. Two states: stable, or
// settling after a raw transition. A cell commits a new stable value only
// once the raw reading has held unchanged for the full debounce window;
// another flip mid-settle restarts the window from the new transition.
// Mutated only by the matrix scanner, never from interrupt context.
type cellState struct {
	lastRaw   bool
	stable    bool
	settling  bool
	changedAt uint32 // timebase value of the last raw transition
}

// observe feeds one raw reading into the state machine. window is the
// debounce time in ticks; elapsed-time math is wrap-safe.
func (s *cellState) observe(raw bool, now, window uint32) {
	if raw != s.lastRaw {
		s.lastRaw = raw
		s.changedAt = now
		s.settling = raw != s.stable
		return
	}
	if s.settling && Elapsed(now, s.changedAt) >= window {
		s.stable = raw
		s.settling = false
	}
}

// reset forces the cell back to the released stable state.
func (s *cellState) reset() {
	*s = cellState{}
}
