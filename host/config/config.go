// Package config loads keyboard layout files for the host tools. The
// firmware itself carries its configuration as compile-time Go data; the
// YAML schema here mirrors that surface so keysim can run arbitrary
// layouts without a rebuild.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"gokey/core"
)

// File is the top-level YAML document.
type File struct {
	Keyboard Keyboard `yaml:"keyboard"`
}

// Keyboard describes one matrix and its layout.
type Keyboard struct {
	RowPins []PinRef `yaml:"row_pins"`
	ColPins []PinRef `yaml:"col_pins"`

	// RowPull: pull_up, pull_down, external_pull_up, external_pull_down.
	RowPull string `yaml:"row_pull"`

	DebounceMs   uint32 `yaml:"debounce_ms"`
	ScanPeriodMs uint32 `yaml:"scan_period_ms"`

	// Layers are grids of key names, outermost slice is the layer index.
	Layers [][][]string `yaml:"layers"`
}

// PinRef names a pin by port and bit.
type PinRef struct {
	Port uint8 `yaml:"port"`
	Bit  uint8 `yaml:"bit"`
}

// Load reads and parses a layout file.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Parse parses a layout document, applies defaults, and validates it.
func Parse(data []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse layout: %w", err)
	}
	applyDefaults(&f.Keyboard)
	if err := validate(&f.Keyboard); err != nil {
		return nil, err
	}
	return &f, nil
}

// applyDefaults fills in missing values with the firmware defaults.
func applyDefaults(k *Keyboard) {
	if k.RowPull == "" {
		k.RowPull = "pull_up"
	}
	if k.DebounceMs == 0 {
		k.DebounceMs = 5
	}
	if k.ScanPeriodMs == 0 {
		k.ScanPeriodMs = 1
	}
}

var pullModes = map[string]core.PullMode{
	"pull_up":            core.PullUp,
	"pull_down":          core.PullDown,
	"external_pull_up":   core.PullUpExternal,
	"external_pull_down": core.PullDownExternal,
}

func validate(k *Keyboard) error {
	if len(k.RowPins) == 0 || len(k.RowPins) > core.MaxRows {
		return fmt.Errorf("layout: need 1..%d row pins, have %d", core.MaxRows, len(k.RowPins))
	}
	if len(k.ColPins) == 0 || len(k.ColPins) > core.MaxCols {
		return fmt.Errorf("layout: need 1..%d column pins, have %d", core.MaxCols, len(k.ColPins))
	}
	if _, ok := pullModes[k.RowPull]; !ok {
		return fmt.Errorf("layout: unknown row_pull %q", k.RowPull)
	}
	if len(k.Layers) == 0 || len(k.Layers) > core.MaxLayers {
		return fmt.Errorf("layout: need 1..%d layers, have %d", core.MaxLayers, len(k.Layers))
	}
	for li, layer := range k.Layers {
		if len(layer) != len(k.RowPins) {
			return fmt.Errorf("layout: layer %d has %d rows, matrix has %d", li, len(layer), len(k.RowPins))
		}
		for ri, row := range layer {
			if len(row) != len(k.ColPins) {
				return fmt.Errorf("layout: layer %d row %d has %d keys, matrix has %d columns", li, ri, len(row), len(k.ColPins))
			}
			for ci, name := range row {
				if _, ok := core.ParseKeycode(name); !ok {
					return fmt.Errorf("layout: layer %d row %d col %d: unknown key %q", li, ri, ci, name)
				}
			}
		}
	}
	return nil
}

// Pins converts the pin references to core descriptors.
func (k *Keyboard) Pins() (rows, cols []core.Pin) {
	rows = make([]core.Pin, len(k.RowPins))
	for i, p := range k.RowPins {
		rows[i] = core.Pin{Port: p.Port, Bit: p.Bit}
	}
	cols = make([]core.Pin, len(k.ColPins))
	for i, p := range k.ColPins {
		cols[i] = core.Pin{Port: p.Port, Bit: p.Bit}
	}
	return rows, cols
}

// Build translates the document into the core configuration surface.
// The returned config has no sink or settle hook; the caller wires those.
func (k *Keyboard) Build() (core.KeyboardConfig, error) {
	rows, cols := k.Pins()
	km := make(core.Keymap, len(k.Layers))
	for li, layer := range k.Layers {
		km[li] = make([][]core.Keycode, len(layer))
		for ri, row := range layer {
			km[li][ri] = make([]core.Keycode, len(row))
			for ci, name := range row {
				kc, _ := core.ParseKeycode(name)
				km[li][ri][ci] = kc
			}
		}
	}
	return core.KeyboardConfig{
		Matrix: core.MatrixConfig{
			RowPins:       rows,
			ColPins:       cols,
			RowPull:       pullModes[k.RowPull],
			DebounceTicks: k.DebounceMs,
		},
		Keymap:          km,
		ScanPeriodTicks: k.ScanPeriodMs,
	}, nil
}
