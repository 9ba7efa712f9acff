package core

// Keycode carries a HID Keyboard/Keypad page usage in its low byte.
// Usages 0xE0-0xE7 are the modifier keys and map onto the report's modifier
// bitmask instead of a key slot. Values with the layer flag set are not HID
// usages at all: they select a momentary layer while held and never leave
// the device.
type Keycode uint16

// Layer-select keycodes.
const layerFlag Keycode = 0x1000

// LayerKey returns the keycode that activates layer n while held.
func LayerKey(n uint8) Keycode {
	return layerFlag | Keycode(n)
}

// IsLayer reports whether k is a layer-select keycode.
func (k Keycode) IsLayer() bool {
	return k&layerFlag != 0
}

// Layer returns the layer index a layer-select keycode targets.
func (k Keycode) Layer() uint8 {
	return uint8(k &^ layerFlag)
}

// IsModifier reports whether k is one of the eight HID modifier usages.
func (k Keycode) IsModifier() bool {
	return k >= KeyLeftCtrl && k <= KeyRightGUI
}

// ModifierBit returns the report byte-0 mask bit for a modifier usage.
func (k Keycode) ModifierBit() uint8 {
	return 1 << uint8(k-KeyLeftCtrl)
}

// Usage returns the HID usage byte placed in a report key slot.
func (k Keycode) Usage() uint8 {
	return uint8(k)
}

// HID Keyboard/Keypad page usage IDs (USB HID Usage Tables ch. 10).
const (
	KeyNone Keycode = 0x00

	KeyA Keycode = 0x04 + iota - 1
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ

	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9
	Key0

	KeyEnter
	KeyEsc
	KeyBackspace
	KeyTab
	KeySpace
	KeyMinus
	KeyEqual
	KeyLeftBrace
	KeyRightBrace
	KeyBackslash
	KeyHash
	KeySemicolon
	KeyApostrophe
	KeyGrave
	KeyComma
	KeyDot
	KeySlash
	KeyCapsLock

	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12

	KeyPrintScreen
	KeyScrollLock
	KeyPause
	KeyInsert
	KeyHome
	KeyPageUp
	KeyDelete
	KeyEnd
	KeyPageDown
	KeyRight
	KeyLeft
	KeyDown
	KeyUp

	KeyNumLock
	KeypadSlash
	KeypadAsterisk
	KeypadMinus
	KeypadPlus
	KeypadEnter
	Keypad1
	Keypad2
	Keypad3
	Keypad4
	Keypad5
	Keypad6
	Keypad7
	Keypad8
	Keypad9
	Keypad0
	KeypadDot
)

// Modifier usages.
const (
	KeyLeftCtrl Keycode = 0xE0 + iota
	KeyLeftShift
	KeyLeftAlt
	KeyLeftGUI
	KeyRightCtrl
	KeyRightShift
	KeyRightAlt
	KeyRightGUI
)

// keycodeNames maps the symbolic names used by layout files and diagnostic
// output onto keycodes. Layer keys are named "layer1".."layer3".
var keycodeNames = map[string]Keycode{
	"none": KeyNone,
	"a":    KeyA, "b": KeyB, "c": KeyC, "d": KeyD, "e": KeyE, "f": KeyF,
	"g": KeyG, "h": KeyH, "i": KeyI, "j": KeyJ, "k": KeyK, "l": KeyL,
	"m": KeyM, "n": KeyN, "o": KeyO, "p": KeyP, "q": KeyQ, "r": KeyR,
	"s": KeyS, "t": KeyT, "u": KeyU, "v": KeyV, "w": KeyW, "x": KeyX,
	"y": KeyY, "z": KeyZ,
	"1": Key1, "2": Key2, "3": Key3, "4": Key4, "5": Key5,
	"6": Key6, "7": Key7, "8": Key8, "9": Key9, "0": Key0,
	"enter": KeyEnter, "esc": KeyEsc, "backspace": KeyBackspace,
	"tab": KeyTab, "space": KeySpace, "minus": KeyMinus, "equal": KeyEqual,
	"leftbrace": KeyLeftBrace, "rightbrace": KeyRightBrace,
	"backslash": KeyBackslash, "semicolon": KeySemicolon,
	"apostrophe": KeyApostrophe, "grave": KeyGrave, "comma": KeyComma,
	"dot": KeyDot, "slash": KeySlash, "capslock": KeyCapsLock,
	"f1": KeyF1, "f2": KeyF2, "f3": KeyF3, "f4": KeyF4, "f5": KeyF5,
	"f6": KeyF6, "f7": KeyF7, "f8": KeyF8, "f9": KeyF9, "f10": KeyF10,
	"f11": KeyF11, "f12": KeyF12,
	"printscreen": KeyPrintScreen, "scrolllock": KeyScrollLock,
	"pause": KeyPause, "insert": KeyInsert, "home": KeyHome,
	"pageup": KeyPageUp, "delete": KeyDelete, "end": KeyEnd,
	"pagedown": KeyPageDown,
	"right": KeyRight, "left": KeyLeft, "down": KeyDown, "up": KeyUp,
	"numlock": KeyNumLock,
	"kp_slash": KeypadSlash, "kp_asterisk": KeypadAsterisk,
	"kp_minus": KeypadMinus, "kp_plus": KeypadPlus, "kp_enter": KeypadEnter,
	"kp_1": Keypad1, "kp_2": Keypad2, "kp_3": Keypad3, "kp_4": Keypad4,
	"kp_5": Keypad5, "kp_6": Keypad6, "kp_7": Keypad7, "kp_8": Keypad8,
	"kp_9": Keypad9, "kp_0": Keypad0, "kp_dot": KeypadDot,
	"leftctrl": KeyLeftCtrl, "leftshift": KeyLeftShift,
	"leftalt": KeyLeftAlt, "leftgui": KeyLeftGUI,
	"rightctrl": KeyRightCtrl, "rightshift": KeyRightShift,
	"rightalt": KeyRightAlt, "rightgui": KeyRightGUI,
	"layer1": LayerKey(1), "layer2": LayerKey(2), "layer3": LayerKey(3),
}

// usageNames is the reverse mapping for diagnostic output, indexed by HID
// usage byte. Built once at startup from keycodeNames.
var usageNames [256]string

func init() {
	for name, kc := range keycodeNames {
		if !kc.IsLayer() {
			usageNames[kc.Usage()] = name
		}
	}
}

// ParseKeycode resolves a symbolic key name from a layout file.
func ParseKeycode(name string) (Keycode, bool) {
	kc, ok := keycodeNames[name]
	return kc, ok
}

// UsageName returns the symbolic name for a HID usage byte, or its decimal
// value when the usage has no name here.
func UsageName(usage uint8) string {
	if n := usageNames[usage]; n != "" {
		return n
	}
	return utoa(uint32(usage))
}
