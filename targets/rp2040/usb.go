//go:build rp2040

package main

import (
	tgk "machine/usb/hid/keyboard"

	"gokey/core"
)

// usbHIDSink delivers reports to the host through TinyGo's USB HID
// keyboard endpoint. The endpoint API is press/release oriented, so the
// sink diffs each report against the previous one and issues Down/Up calls
// for the changes.
type usbHIDSink struct {
	kb   *tgk.Keyboard
	prev core.Report
}

func newUSBHIDSink() *usbHIDSink {
	return &usbHIDSink{kb: tgk.Port()}
}

// Send implements core.ReportSink.
func (s *usbHIDSink) Send(r *core.Report) error {
	// Modifier bitmask changes.
	changed := s.prev[0] ^ r[0]
	for bit := uint8(0); bit < 8; bit++ {
		mask := uint8(1) << bit
		if changed&mask == 0 {
			continue
		}
		kc, ok := modifierKeycodes[bit]
		if !ok {
			// Noted on every send that flips the bit, since there is no
			// per-key state to remember the first miss.
			core.DebugPrintln("usb: no endpoint keycode for " + core.UsageName(0xE0+bit))
			continue
		}
		if r[0]&mask != 0 {
			s.kb.Down(kc)
		} else {
			s.kb.Up(kc)
		}
	}

	// Released usages: in the previous report but gone now.
	for _, u := range s.prev.Keys() {
		if !containsUsage(r, u) {
			if kc, ok := hidKeycodes[u]; ok {
				s.kb.Up(kc)
			}
		}
	}
	// Newly pressed usages.
	for _, u := range r.Keys() {
		if !containsUsage(&s.prev, u) {
			kc, ok := hidKeycodes[u]
			if !ok {
				core.DebugPrintln("usb: no endpoint keycode for usage " + core.UsageName(u))
				continue
			}
			s.kb.Down(kc)
		}
	}

	s.prev = *r
	return nil
}

func containsUsage(r *core.Report, usage byte) bool {
	for _, u := range r.Keys() {
		if u == usage {
			return true
		}
	}
	return false
}

// modifierKeycodes maps report modifier bits onto endpoint keycodes.
var modifierKeycodes = map[uint8]tgk.Keycode{
	0: tgk.KeyLeftCtrl,
	1: tgk.KeyLeftShift,
	2: tgk.KeyLeftAlt,
	4: tgk.KeyRightCtrl,
	5: tgk.KeyRightShift,
	6: tgk.KeyRightAlt,
}

// hidKeycodes maps HID usage bytes onto the endpoint's keycode constants.
var hidKeycodes = map[uint8]tgk.Keycode{
	core.KeyA.Usage(): tgk.KeyA, core.KeyB.Usage(): tgk.KeyB,
	core.KeyC.Usage(): tgk.KeyC, core.KeyD.Usage(): tgk.KeyD,
	core.KeyE.Usage(): tgk.KeyE, core.KeyF.Usage(): tgk.KeyF,
	core.KeyG.Usage(): tgk.KeyG, core.KeyH.Usage(): tgk.KeyH,
	core.KeyI.Usage(): tgk.KeyI, core.KeyJ.Usage(): tgk.KeyJ,
	core.KeyK.Usage(): tgk.KeyK, core.KeyL.Usage(): tgk.KeyL,
	core.KeyM.Usage(): tgk.KeyM, core.KeyN.Usage(): tgk.KeyN,
	core.KeyO.Usage(): tgk.KeyO, core.KeyP.Usage(): tgk.KeyP,
	core.KeyQ.Usage(): tgk.KeyQ, core.KeyR.Usage(): tgk.KeyR,
	core.KeyS.Usage(): tgk.KeyS, core.KeyT.Usage(): tgk.KeyT,
	core.KeyU.Usage(): tgk.KeyU, core.KeyV.Usage(): tgk.KeyV,
	core.KeyW.Usage(): tgk.KeyW, core.KeyX.Usage(): tgk.KeyX,
	core.KeyY.Usage(): tgk.KeyY, core.KeyZ.Usage(): tgk.KeyZ,
	core.Key1.Usage(): tgk.Key1, core.Key2.Usage(): tgk.Key2,
	core.Key3.Usage(): tgk.Key3, core.Key4.Usage(): tgk.Key4,
	core.Key5.Usage(): tgk.Key5, core.Key6.Usage(): tgk.Key6,
	core.Key7.Usage(): tgk.Key7, core.Key8.Usage(): tgk.Key8,
	core.Key9.Usage(): tgk.Key9, core.Key0.Usage(): tgk.Key0,
	core.KeyEnter.Usage():     tgk.KeyEnter,
	core.KeyEsc.Usage():       tgk.KeyEsc,
	core.KeyBackspace.Usage(): tgk.KeyBackspace,
	core.KeyTab.Usage():       tgk.KeyTab,
	core.KeySpace.Usage():     tgk.KeySpace,
	core.KeyF1.Usage():        tgk.KeyF1, core.KeyF2.Usage(): tgk.KeyF2,
	core.KeyF3.Usage(): tgk.KeyF3, core.KeyF4.Usage(): tgk.KeyF4,
	core.KeyF5.Usage(): tgk.KeyF5, core.KeyF6.Usage(): tgk.KeyF6,
	core.KeyF7.Usage(): tgk.KeyF7, core.KeyF8.Usage(): tgk.KeyF8,
	core.KeyF9.Usage(): tgk.KeyF9, core.KeyF10.Usage(): tgk.KeyF10,
	core.KeyF11.Usage(): tgk.KeyF11, core.KeyF12.Usage(): tgk.KeyF12,
	core.KeyUp.Usage():    tgk.KeyUp,
	core.KeyDown.Usage():  tgk.KeyDown,
	core.KeyLeft.Usage():  tgk.KeyLeft,
	core.KeyRight.Usage(): tgk.KeyRight,
}
