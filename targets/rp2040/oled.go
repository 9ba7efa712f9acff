//go:build rp2040

package main

import (
	"image/color"
	"machine"
	"strconv"

	"tinygo.org/x/drivers/ssd1306"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/freemono"

	"gokey/core"
)

var oledWhite = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}

// statusDisplay shows the active layer and pressed-key count on a small
// I2C OLED.
type statusDisplay struct {
	kbd     *core.Keyboard
	display ssd1306.Device
}

func newStatusDisplay(kbd *core.Keyboard, sda, scl machine.Pin) (*statusDisplay, error) {
	i2c := machine.I2C0
	err := i2c.Configure(machine.I2CConfig{
		Frequency: 400 * machine.KHz,
		SDA:       sda,
		SCL:       scl,
	})
	if err != nil {
		return nil, err
	}

	d := ssd1306.NewI2C(i2c)
	d.Configure(ssd1306.Config{
		Address: 0x3C,
		Width:   128,
		Height:  64,
	})
	d.ClearDisplay()

	return &statusDisplay{kbd: kbd, display: d}, nil
}

// task redraws the status lines; registered with the scheduler at a slow
// period so it cannot crowd out the scan task.
func (s *statusDisplay) task(now uint32) {
	pressed := 0
	s.kbd.Matrix().ForEachPressed(func(row, col uint8) {
		pressed++
	})

	s.display.ClearBuffer()
	tinyfont.WriteLine(&s.display, &freemono.Regular9pt7b, 0, 14,
		"layer "+strconv.Itoa(int(s.kbd.Layer())), oledWhite)
	tinyfont.WriteLine(&s.display, &freemono.Regular9pt7b, 0, 34,
		"keys "+strconv.Itoa(pressed), oledWhite)
	s.display.Display()
}
