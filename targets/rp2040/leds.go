//go:build rp2040

package main

import (
	"image/color"
	"machine"

	pio "github.com/tinygo-org/pio/rp2-pio"
	"github.com/tinygo-org/pio/rp2-pio/piolib"

	"gokey/core"
)

var (
	ledOff     = color.RGBA{}
	ledPressed = color.RGBA{R: 0x20, G: 0x20, B: 0x20}
	ledLayer   = color.RGBA{R: 0x20, G: 0x08, B: 0x00}
)

// backlight drives the per-key WS2812B chain from the debounced matrix
// state: pressed keys light white, the whole board shifts amber while a
// higher layer is held.
type backlight struct {
	kbd    *core.Keyboard
	ws     *piolib.WS2812B
	colors []color.RGBA
}

func newBacklight(kbd *core.Keyboard, pin machine.Pin) (*backlight, error) {
	sm, err := pio.PIO0.ClaimStateMachine()
	if err != nil {
		return nil, err
	}
	ws, err := piolib.NewWS2812B(sm, pin)
	if err != nil {
		return nil, err
	}
	ws.EnableDMA(true)

	m := kbd.Matrix()
	return &backlight{
		kbd:    kbd,
		ws:     ws,
		colors: make([]color.RGBA, int(m.Rows())*int(m.Cols())),
	}, nil
}

// task refreshes the chain; registered with the scheduler at roughly the
// LED strip's frame rate.
func (b *backlight) task(now uint32) {
	m := b.kbd.Matrix()

	idle := ledOff
	if b.kbd.Layer() != 0 {
		idle = ledLayer
	}
	for i := range b.colors {
		b.colors[i] = idle
	}
	m.ForEachPressed(func(row, col uint8) {
		b.colors[int(row)*int(m.Cols())+int(col)] = ledPressed
	})

	for _, c := range b.colors {
		b.ws.PutColor(c)
	}
}
