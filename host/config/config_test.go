package config

import (
	"strings"
	"testing"

	"gokey/core"
)

const goodLayout = `
keyboard:
  row_pins:
    - {port: 0, bit: 8}
    - {port: 0, bit: 9}
  col_pins:
    - {port: 0, bit: 5}
    - {port: 0, bit: 6}
  row_pull: pull_down
  debounce_ms: 8
  scan_period_ms: 2
  layers:
    - - [a, b]
      - [layer1, enter]
    - - [f1, f2]
      - [layer1, f3]
`

func TestParseGoodLayout(t *testing.T) {
	f, err := Parse([]byte(goodLayout))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	k := f.Keyboard
	if len(k.RowPins) != 2 || k.RowPins[1].Bit != 9 {
		t.Errorf("row pins = %v", k.RowPins)
	}
	if k.DebounceMs != 8 || k.ScanPeriodMs != 2 {
		t.Errorf("timings = %d/%d, want 8/2", k.DebounceMs, k.ScanPeriodMs)
	}
	if len(k.Layers) != 2 {
		t.Errorf("layers = %d, want 2", len(k.Layers))
	}
}

func TestParseDefaults(t *testing.T) {
	doc := `
keyboard:
  row_pins: [{bit: 1}]
  col_pins: [{bit: 2}]
  layers:
    - - [space]
`
	f, err := Parse([]byte(doc))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	k := f.Keyboard
	if k.RowPull != "pull_up" {
		t.Errorf("default pull = %q, want pull_up", k.RowPull)
	}
	if k.DebounceMs != 5 || k.ScanPeriodMs != 1 {
		t.Errorf("default timings = %d/%d, want 5/1", k.DebounceMs, k.ScanPeriodMs)
	}
}

func TestParseRejections(t *testing.T) {
	cases := []struct {
		name string
		doc  string
		want string
	}{
		{
			"no rows",
			`keyboard: {col_pins: [{bit: 2}], layers: [[[a]]]}`,
			"row pins",
		},
		{
			"bad pull",
			`keyboard: {row_pins: [{bit: 1}], col_pins: [{bit: 2}], row_pull: floating, layers: [[[a]]]}`,
			"row_pull",
		},
		{
			"no layers",
			`keyboard: {row_pins: [{bit: 1}], col_pins: [{bit: 2}]}`,
			"layers",
		},
		{
			"layer shape",
			`keyboard: {row_pins: [{bit: 1}], col_pins: [{bit: 2}], layers: [[[a], [b]]]}`,
			"rows",
		},
		{
			"row width",
			`keyboard: {row_pins: [{bit: 1}], col_pins: [{bit: 2}], layers: [[[a, b]]]}`,
			"columns",
		},
		{
			"unknown key",
			`keyboard: {row_pins: [{bit: 1}], col_pins: [{bit: 2}], layers: [[[frobnicate]]]}`,
			"unknown key",
		},
		{
			"not yaml",
			`{{{`,
			"parse layout",
		},
	}
	for _, tc := range cases {
		_, err := Parse([]byte(tc.doc))
		if err == nil {
			t.Errorf("%s: accepted", tc.name)
			continue
		}
		if !strings.Contains(err.Error(), tc.want) {
			t.Errorf("%s: error %q does not mention %q", tc.name, err, tc.want)
		}
	}
}

func TestBuild(t *testing.T) {
	f, err := Parse([]byte(goodLayout))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	cfg, err := f.Keyboard.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	if cfg.Matrix.RowPull != core.PullDown {
		t.Errorf("pull = %v, want PullDown", cfg.Matrix.RowPull)
	}
	if cfg.Matrix.DebounceTicks != 8 || cfg.ScanPeriodTicks != 2 {
		t.Errorf("timings = %d/%d, want 8/2", cfg.Matrix.DebounceTicks, cfg.ScanPeriodTicks)
	}
	if got := cfg.Keymap.Lookup(0, 0, 0); got != core.KeyA {
		t.Errorf("Lookup(0,0,0) = %v, want KeyA", got)
	}
	if got := cfg.Keymap.Lookup(0, 1, 0); !got.IsLayer() || got.Layer() != 1 {
		t.Errorf("Lookup(0,1,0) = %v, want layer 1", got)
	}
	if got := cfg.Keymap.Lookup(1, 0, 1); got != core.KeyF2 {
		t.Errorf("Lookup(1,0,1) = %v, want KeyF2", got)
	}
	if err := cfg.Keymap.Validate(2, 2); err != nil {
		t.Errorf("built keymap invalid: %v", err)
	}
}
