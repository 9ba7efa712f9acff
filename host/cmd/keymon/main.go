// keymon watches the keyboard's serial diagnostic link and prints every
// HID report the firmware mirrors onto it.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"gokey/core"
	"gokey/host/serial"
	"gokey/protocol"
)

func main() {
	device := flag.String("device", "/dev/ttyUSB0", "serial device of the mirror UART")
	baud := flag.Int("baud", 115200, "baud rate")
	flag.Parse()

	cfg := serial.DefaultConfig(*device)
	cfg.Baud = *baud

	port, err := serial.Open(cfg)
	if err != nil {
		log.Fatalf("keymon: %v", err)
	}
	defer port.Close()

	fmt.Printf("keymon: listening on %s @ %d\n", *device, *baud)
	monitor(port, os.Stdout)
}

// monitor decodes frames from r until the stream ends.
func monitor(r io.Reader, w io.Writer) {
	dec := protocol.NewDecoder()
	buf := make([]byte, 64)
	for {
		n, err := r.Read(buf)
		for _, b := range buf[:n] {
			payload, ok := dec.Feed(b)
			if !ok {
				continue
			}
			printReport(w, payload)
		}
		if err != nil {
			if err != io.EOF {
				log.Printf("keymon: read: %v", err)
			}
			return
		}
	}
}

func printReport(w io.Writer, payload []byte) {
	if len(payload) != len(core.Report{}) {
		fmt.Fprintf(w, "%s unknown frame (%d bytes)\n", time.Now().Format("15:04:05.000"), len(payload))
		return
	}
	var rpt core.Report
	copy(rpt[:], payload)
	fmt.Fprintf(w, "%s %s\n", time.Now().Format("15:04:05.000"), rpt.String())
}
