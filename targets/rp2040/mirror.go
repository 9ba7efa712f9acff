//go:build rp2040

package main

import (
	"machine"

	"gokey/core"
	"gokey/protocol"
)

// mirrorSink wraps the primary sink and copies every report onto a UART as
// a diagnostic frame for the keymon host tool. The frame buffer is
// preallocated; Send does not allocate.
type mirrorSink struct {
	next core.ReportSink
	uart *machine.UART
	buf  []byte
}

func newMirrorSink(next core.ReportSink, uart *machine.UART) *mirrorSink {
	return &mirrorSink{
		next: next,
		uart: uart,
		buf:  make([]byte, 0, protocol.FrameLengthMax),
	}
}

// Send implements core.ReportSink.
func (s *mirrorSink) Send(r *core.Report) error {
	s.buf = protocol.EncodeFrame(s.buf[:0], r[:])
	s.uart.Write(s.buf)
	return s.next.Send(r)
}
