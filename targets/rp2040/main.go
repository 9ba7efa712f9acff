//go:build rp2040

package main

import (
	"machine"
	"time"

	"gokey/core"
)

func main() {
	// Debug output rides the USB CDC interface TinyGo keeps alongside HID.
	core.SetDebugWriter(func(s string) { println(s) })
	core.SetDebugEnabled(true)

	core.SetGPIODriver(NewRPGPIODriver())
	core.SetTickerDriver(&msTicker{})

	if err := core.TimebaseInit(); err != nil {
		fatal(err)
	}
	if err := core.TimebaseStart(); err != nil {
		fatal(err)
	}

	// Report mirror UART for the keymon host tool.
	uart := machine.UART0
	err := uart.Configure(machine.UARTConfig{
		BaudRate: 115200,
		TX:       machine.UART0_TX_PIN,
		RX:       machine.UART0_RX_PIN,
	})
	if err != nil {
		fatal(err)
	}

	cfg := defaultConfig()
	cfg.Sink = newMirrorSink(newUSBHIDSink(), uart)

	var kbd core.Keyboard
	if err := kbd.Configure(cfg); err != nil {
		fatal(err)
	}

	var sched core.Scheduler
	if _, err := kbd.RegisterTasks(&sched); err != nil {
		fatal(err)
	}

	if leds, err := newBacklight(&kbd, machine.Pin(ledPin)); err == nil {
		sched.Create(leds.task, 16)
	} else {
		core.DebugPrintln("backlight disabled: " + err.Error())
	}
	if status, err := newStatusDisplay(&kbd, machine.Pin(oledSDA), machine.Pin(oledSCL)); err == nil {
		sched.Create(status.task, 100)
	} else {
		core.DebugPrintln("status display disabled: " + err.Error())
	}

	for {
		sched.RunOnce()
		// Yield so the tick goroutine gets scheduled.
		time.Sleep(100 * time.Microsecond)
	}
}

// fatal is the unrecoverable path: stop the timebase and park. There is no
// error channel on a headless board; continuing past a broken invariant is
// worse than requiring a power cycle.
func fatal(err error) {
	println("fatal: " + err.Error())
	core.TimebaseStop()

	led := machine.LED
	led.Configure(machine.PinConfig{Mode: machine.PinOutput})
	for {
		led.High()
		time.Sleep(100 * time.Millisecond)
		led.Low()
		time.Sleep(400 * time.Millisecond)
	}
}
