//go:build rp2040

package main

import (
	"time"

	"gokey/core"
)

// Board wiring for the 4x3 macropad build: columns strobed on GPIO5-7,
// rows read on GPIO8-11 with the on-chip pull-downs, WS2812B chain on
// GPIO2, status OLED on I2C0 (GPIO12/13), report mirror on UART0 (GPIO0/1).
const (
	numRows = 4
	numCols = 3

	ledPin  = 2
	oledSDA = 12
	oledSCL = 13
)

var (
	rowPins = []core.Pin{{Bit: 8}, {Bit: 9}, {Bit: 10}, {Bit: 11}}
	colPins = []core.Pin{{Bit: 5}, {Bit: 6}, {Bit: 7}}
)

// settle gives the strobed column time to charge the row lines before they
// are sampled.
func settle() {
	time.Sleep(5 * time.Microsecond)
}

// defaultConfig is the compiled-in keyboard configuration: a number pad on
// the base layer, F-keys on the held layer.
func defaultConfig() core.KeyboardConfig {
	return core.KeyboardConfig{
		Matrix: core.MatrixConfig{
			RowPins:       rowPins,
			ColPins:       colPins,
			RowPull:       core.PullDown,
			DebounceTicks: 5,
			Settle:        settle,
		},
		Keymap: core.Keymap{
			{
				{core.Key7, core.Key8, core.Key9},
				{core.Key4, core.Key5, core.Key6},
				{core.Key1, core.Key2, core.Key3},
				{core.LayerKey(1), core.Key0, core.KeyEnter},
			},
			{
				{core.KeyF7, core.KeyF8, core.KeyF9},
				{core.KeyF4, core.KeyF5, core.KeyF6},
				{core.KeyF1, core.KeyF2, core.KeyF3},
				{core.LayerKey(1), core.KeyF10, core.KeyEsc},
			},
		},
		ScanPeriodTicks: 1,
	}
}
