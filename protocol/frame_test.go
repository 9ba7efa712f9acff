package protocol

import (
	"bytes"
	"testing"
)

// feedAll pushes a byte stream through the decoder and collects every
// completed payload.
func feedAll(d *Decoder, stream []byte) [][]byte {
	var out [][]byte
	for _, b := range stream {
		if payload, ok := d.Feed(b); ok {
			cp := make([]byte, len(payload))
			copy(cp, payload)
			out = append(out, cp)
		}
	}
	return out
}

func TestFrameRoundTrip(t *testing.T) {
	payload := []byte{0x00, 0x00, 0x04, 0x05, 0x06, 0x00, 0x00, 0x00}
	frame := EncodeFrame(nil, payload)

	if len(frame) != len(payload)+FrameHeaderSize+FrameTrailerSize {
		t.Fatalf("frame length = %d", len(frame))
	}
	if frame[0] != byte(len(frame)) {
		t.Errorf("length byte = %d, want %d", frame[0], len(frame))
	}
	if frame[len(frame)-1] != SyncByte {
		t.Errorf("trailer = %#x, want sync", frame[len(frame)-1])
	}

	got := feedAll(NewDecoder(), frame)
	if len(got) != 1 || !bytes.Equal(got[0], payload) {
		t.Errorf("decoded %v, want %v", got, payload)
	}
}

func TestFrameEmptyPayload(t *testing.T) {
	frame := EncodeFrame(nil, nil)
	got := feedAll(NewDecoder(), frame)
	if len(got) != 1 || len(got[0]) != 0 {
		t.Errorf("decoded %v, want one empty payload", got)
	}
}

func TestFrameBackToBack(t *testing.T) {
	var stream []byte
	stream = EncodeFrame(stream, []byte{0x01})
	stream = EncodeFrame(stream, []byte{0x02, 0x03})
	stream = EncodeFrame(stream, []byte{0x04})

	got := feedAll(NewDecoder(), stream)
	if len(got) != 3 {
		t.Fatalf("decoded %d frames, want 3", len(got))
	}
	if got[0][0] != 0x01 || got[1][1] != 0x03 || got[2][0] != 0x04 {
		t.Errorf("payloads out of order: %v", got)
	}
}

func TestFrameIdleSyncIgnored(t *testing.T) {
	stream := []byte{SyncByte, SyncByte}
	stream = EncodeFrame(stream, []byte{0x0A})
	stream = append(stream, SyncByte)

	got := feedAll(NewDecoder(), stream)
	if len(got) != 1 || got[0][0] != 0x0A {
		t.Errorf("decoded %v, want one frame", got)
	}
}

func TestFrameCorruptionResync(t *testing.T) {
	var stream []byte
	stream = EncodeFrame(stream, []byte{0x01})
	stream = EncodeFrame(stream, []byte{0x02})
	stream = EncodeFrame(stream, []byte{0x03})

	// Flip a payload bit in the first frame. The decoder consumes the whole
	// frame before the checksum fails, then hunts for a sync byte; the
	// second frame is sacrificed to resynchronization and the third decodes
	// cleanly.
	stream[1] ^= 0x80
	got := feedAll(NewDecoder(), stream)
	if len(got) != 1 || got[0][0] != 0x03 {
		t.Errorf("decoded %v, want only the third frame", got)
	}
}

func TestFrameBadLengthResync(t *testing.T) {
	stream := []byte{0xFF, 0x00, 0x00, SyncByte}
	stream = EncodeFrame(stream, []byte{0x07})

	got := feedAll(NewDecoder(), stream)
	if len(got) != 1 || got[0][0] != 0x07 {
		t.Errorf("decoded %v, want recovery after a bad length byte", got)
	}
}

func TestFrameSplitDelivery(t *testing.T) {
	frame := EncodeFrame(nil, []byte{0x11, 0x22, 0x33})
	d := NewDecoder()

	// One byte per call, checking no payload surfaces early.
	for i, b := range frame {
		payload, ok := d.Feed(b)
		if i < len(frame)-1 && ok {
			t.Fatalf("payload surfaced after %d of %d bytes", i+1, len(frame))
		}
		if i == len(frame)-1 {
			if !ok || !bytes.Equal(payload, []byte{0x11, 0x22, 0x33}) {
				t.Fatalf("final byte produced %v, %v", payload, ok)
			}
		}
	}
}

func TestFrameOversizedPayloadTruncated(t *testing.T) {
	long := make([]byte, MaxPayload+8)
	for i := range long {
		long[i] = byte(i)
	}
	frame := EncodeFrame(nil, long)
	if len(frame) != FrameLengthMax {
		t.Fatalf("frame length = %d, want %d", len(frame), FrameLengthMax)
	}

	got := feedAll(NewDecoder(), frame)
	if len(got) != 1 || !bytes.Equal(got[0], long[:MaxPayload]) {
		t.Errorf("decoded %v, want the first %d bytes", got, MaxPayload)
	}
}
