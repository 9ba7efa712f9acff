package core

// TickerDriver is the abstract 1ms tick source that drives the timebase.
// Platform-specific code (a hardware timer interrupt on real targets, a
// goroutine or manual tick injection on host builds) implements it and
// registers it with SetTickerDriver.
type TickerDriver interface {
	// Init configures the underlying periodic source for a 1ms period
	// without starting it.
	Init() error

	// Start begins generating ticks. Each tick must call Tick exactly once.
	Start() error

	// Stop halts tick generation.
	Stop() error
}

// Global singleton used by core code.
var tickerDriver TickerDriver

// tickCounter is the free-running millisecond counter. Written only by
// Tick (interrupt side); read everywhere else through GetTicks.
var tickCounter uint32

// SetTickerDriver is called by target-specific code to register its tick source.
func SetTickerDriver(d TickerDriver) {
	tickerDriver = d
}

// MustTicker returns the configured driver or panics if missing.
func MustTicker() TickerDriver {
	if tickerDriver == nil {
		panic("ticker driver not configured")
	}
	return tickerDriver
}

// TimebaseInit configures the tick source without starting it.
func TimebaseInit() error {
	return MustTicker().Init()
}

// TimebaseStart begins tick generation.
func TimebaseStart() error {
	return MustTicker().Start()
}

// TimebaseStop halts tick generation. The counter keeps its value.
func TimebaseStop() error {
	return MustTicker().Stop()
}

// Tick increments the millisecond counter by exactly one. It is the sole
// writer of the counter and runs at interrupt priority on hardware, so it
// must stay minimal to bound interrupt latency.
func Tick() {
	tickCounter++
}

// GetTicks returns the current timebase value in milliseconds. The counter
// is wider than the bus on 8-bit targets, so the read is done with
// interrupts masked for a handful of instructions to rule out torn values.
// The counter wraps silently; compare values only through Elapsed.
func GetTicks() uint32 {
	state := disableInterrupts()
	t := tickCounter
	restoreInterrupts(state)
	return t
}

// SetTicks sets the timebase value (for testing and hardware integration).
func SetTicks(ticks uint32) {
	state := disableInterrupts()
	tickCounter = ticks
	restoreInterrupts(state)
}

// Elapsed returns the number of ticks from since to now. Unsigned
// subtraction keeps the result correct across counter wraparound, including
// the instant the counter rolls from the maximum value to zero.
func Elapsed(now, since uint32) uint32 {
	return now - since
}
