//go:build !tinygo

package core

// AdvanceTicks advances the timebase by n milliseconds. Host builds use
// this in place of a timer interrupt; tests and the simulator drive the
// whole engine through it.
func AdvanceTicks(n uint32) {
	tickCounter += n
}
