package core

import "errors"

// MaxLayers bounds the layer dimension of a keymap.
const MaxLayers = 4

// Keymap is the static layer x row x column keycode table. It is read-only
// at runtime and indexed with the same coordinates as the debounce store.
type Keymap [][][]Keycode

var ErrKeymapShape = errors.New("keymap: table shape does not match matrix geometry")

// Validate checks the table against the matrix geometry: at least one
// layer, no more than MaxLayers, and every layer a full rows x cols grid.
func (km Keymap) Validate(rows, cols uint8) error {
	if len(km) == 0 || len(km) > MaxLayers {
		return ErrKeymapShape
	}
	for _, layer := range km {
		if len(layer) != int(rows) {
			return ErrKeymapShape
		}
		for _, row := range layer {
			if len(row) != int(cols) {
				return ErrKeymapShape
			}
		}
	}
	return nil
}

// Lookup returns the keycode bound to a cell on the given layer. A layer
// index beyond the table falls back to the base layer, so a sparse keymap
// still types; out-of-range coordinates yield KeyNone.
func (km Keymap) Lookup(layer, row, col uint8) Keycode {
	if int(layer) >= len(km) {
		layer = 0
	}
	l := km[layer]
	if int(row) >= len(l) || int(col) >= len(l[row]) {
		return KeyNone
	}
	return l[row][col]
}
