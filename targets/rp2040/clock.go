//go:build rp2040

package main

import (
	"time"

	"gokey/core"
)

// msTicker drives the 1ms timebase. The TinyGo machine package exposes no
// portable timer-interrupt API on the RP2040, so the tick source is a
// goroutine that sleeps on the hardware timer toward absolute millisecond
// deadlines, calling Tick once per elapsed period.
type msTicker struct {
	stop chan struct{}
}

func (t *msTicker) Init() error {
	// Period is fixed at 1ms by the sleep in run; nothing to program.
	return nil
}

func (t *msTicker) Start() error {
	if t.stop != nil {
		return nil
	}
	t.stop = make(chan struct{})
	go t.run(t.stop)
	return nil
}

func (t *msTicker) Stop() error {
	if t.stop != nil {
		close(t.stop)
		t.stop = nil
	}
	return nil
}

func (t *msTicker) run(stop chan struct{}) {
	// Deadlines are absolute, anchored to the hardware timer behind
	// time.Now. Sleep overshoot and loop overhead are repaid by ticking
	// once per elapsed period instead of accumulating as drift.
	next := time.Now().Add(time.Millisecond)
	for {
		select {
		case <-stop:
			return
		default:
		}
		if d := time.Until(next); d > 0 {
			time.Sleep(d)
		}
		for !time.Now().Before(next) {
			core.Tick()
			next = next.Add(time.Millisecond)
		}
	}
}
