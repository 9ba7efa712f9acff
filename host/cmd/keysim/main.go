// keysim runs the scan engine on the host against a simulated switch
// matrix. It reads a small script from stdin:
//
//	press ROW COL      close a switch
//	release ROW COL    open a switch
//	run N              advance the timebase N ms, dispatching tasks each tick
//	quit
//
// Every report the engine emits is printed with the tick it was sent at.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"gokey/core"
	"gokey/host/config"
	"gokey/sim"
)

// manualTicker satisfies the timebase HAL on the host; the script's run
// command injects ticks directly.
type manualTicker struct{ running bool }

func (t *manualTicker) Init() error  { return nil }
func (t *manualTicker) Start() error { t.running = true; return nil }
func (t *manualTicker) Stop() error  { t.running = false; return nil }

// stdoutSink prints each report the keyboard publishes.
type stdoutSink struct{}

func (stdoutSink) Send(r *core.Report) error {
	fmt.Printf("tick %d: %s\n", core.GetTicks(), r.String())
	return nil
}

func main() {
	path := flag.String("config", "", "layout YAML (default: built-in 4x3 macropad)")
	flag.Parse()

	kb := defaultLayout()
	if *path != "" {
		f, err := config.Load(*path)
		if err != nil {
			log.Fatalf("keysim: %v", err)
		}
		kb = f.Keyboard
	}

	rows, cols := kb.Pins()
	crossbar := sim.NewCrossbar(rows, cols)
	core.SetGPIODriver(crossbar)
	core.SetTickerDriver(&manualTicker{})

	cfg, err := kb.Build()
	if err != nil {
		log.Fatalf("keysim: %v", err)
	}
	cfg.Sink = stdoutSink{}

	var keyboard core.Keyboard
	if err := keyboard.Configure(cfg); err != nil {
		log.Fatalf("keysim: %v", err)
	}

	var sched core.Scheduler
	if _, err := keyboard.RegisterTasks(&sched); err != nil {
		log.Fatalf("keysim: %v", err)
	}

	if err := core.TimebaseInit(); err != nil {
		log.Fatalf("keysim: %v", err)
	}
	if err := core.TimebaseStart(); err != nil {
		log.Fatalf("keysim: %v", err)
	}

	fmt.Printf("keysim: %dx%d matrix, debounce %d ms, scan every %d ms\n",
		len(rows), len(cols), kb.DebounceMs, kb.ScanPeriodMs)

	if err := runScript(os.Stdin, crossbar, &sched, len(rows), len(cols)); err != nil {
		log.Fatalf("keysim: %v", err)
	}
}

func runScript(in *os.File, crossbar *sim.Crossbar, sched *core.Scheduler, rows, cols int) error {
	scanner := bufio.NewScanner(in)
	line := 0
	for scanner.Scan() {
		line++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
			continue
		}
		switch fields[0] {
		case "press", "release":
			r, c, err := parseCell(fields, rows, cols)
			if err != nil {
				return fmt.Errorf("line %d: %w", line, err)
			}
			if fields[0] == "press" {
				crossbar.Press(r, c)
			} else {
				crossbar.Release(r, c)
			}
		case "run":
			if len(fields) != 2 {
				return fmt.Errorf("line %d: run needs a tick count", line)
			}
			n, err := strconv.Atoi(fields[1])
			if err != nil || n < 0 {
				return fmt.Errorf("line %d: bad tick count %q", line, fields[1])
			}
			for i := 0; i < n; i++ {
				core.AdvanceTicks(1)
				sched.RunOnce()
			}
		case "quit":
			return nil
		default:
			return fmt.Errorf("line %d: unknown command %q", line, fields[0])
		}
	}
	return scanner.Err()
}

func parseCell(fields []string, rows, cols int) (int, int, error) {
	if len(fields) != 3 {
		return 0, 0, fmt.Errorf("%s needs ROW COL", fields[0])
	}
	r, err := strconv.Atoi(fields[1])
	if err != nil || r < 0 || r >= rows {
		return 0, 0, fmt.Errorf("bad row %q", fields[1])
	}
	c, err := strconv.Atoi(fields[2])
	if err != nil || c < 0 || c >= cols {
		return 0, 0, fmt.Errorf("bad col %q", fields[2])
	}
	return r, c, nil
}

// defaultLayout is the same 4x3 macropad the rp2040 target ships with.
func defaultLayout() config.Keyboard {
	return config.Keyboard{
		RowPins: []config.PinRef{{Bit: 8}, {Bit: 9}, {Bit: 10}, {Bit: 11}},
		ColPins: []config.PinRef{{Bit: 5}, {Bit: 6}, {Bit: 7}},
		RowPull: "pull_down",
		Layers: [][][]string{
			{
				{"7", "8", "9"},
				{"4", "5", "6"},
				{"1", "2", "3"},
				{"layer1", "0", "enter"},
			},
			{
				{"f7", "f8", "f9"},
				{"f4", "f5", "f6"},
				{"f1", "f2", "f3"},
				{"layer1", "f10", "esc"},
			},
		},
		DebounceMs:   5,
		ScanPeriodMs: 1,
	}
}
