package core

// ReportKeys is the number of non-modifier key slots in a boot-protocol
// keyboard report.
const ReportKeys = 6

// Report is the 8-byte HID boot keyboard input report: modifier bitmask,
// reserved zero byte, then up to six concurrent key usages. It never grows;
// presses beyond the slot count are dropped for that report.
type Report [8]byte

// Clear zeroes the report (no keys pressed).
func (r *Report) Clear() {
	*r = Report{}
}

// AddKey folds one keycode into the report. Modifiers OR into the bitmask
// and always land; normal usages claim the first free slot in scan order.
// Returns false when a usage had to be dropped because all six slots are
// taken. KeyNone and layer-select codes are ignored.
func (r *Report) AddKey(k Keycode) bool {
	if k == KeyNone || k.IsLayer() {
		return true
	}
	if k.IsModifier() {
		r[0] |= k.ModifierBit()
		return true
	}
	usage := k.Usage()
	for i := 2; i < len(r); i++ {
		if r[i] == usage {
			return true
		}
		if r[i] == 0 {
			r[i] = usage
			return true
		}
	}
	return false
}

// Modifiers returns the modifier bitmask byte.
func (r *Report) Modifiers() uint8 {
	return r[0]
}

// Keys returns the occupied key slots.
func (r *Report) Keys() []byte {
	n := 2
	for n < len(r) && r[n] != 0 {
		n++
	}
	return r[2:n]
}

// String renders the report for diagnostic output without pulling fmt into
// firmware builds.
func (r *Report) String() string {
	s := "mod=" + htoa(r[0]) + " keys=["
	for i, u := range r.Keys() {
		if i > 0 {
			s += " "
		}
		s += UsageName(u)
	}
	return s + "]"
}
