package protocol

// Frame layout: length byte (whole frame), payload, CRC16 big-endian over
// length+payload, trailing sync byte. The trailing sync lets a receiver
// that lost its place resynchronize on the next frame boundary.
const (
	FrameHeaderSize  = 1
	FrameTrailerSize = 3
	FrameLengthMin   = FrameHeaderSize + FrameTrailerSize
	FrameLengthMax   = 16
	SyncByte         = 0x7E
)

// MaxPayload is the largest payload a single frame carries. Sized for the
// 8-byte HID report with headroom for future diagnostic records.
const MaxPayload = FrameLengthMax - FrameHeaderSize - FrameTrailerSize

// EncodeFrame appends one framed payload to dst and returns the extended
// slice. Payloads longer than MaxPayload are truncated; the mirror link is
// best-effort diagnostics, not a reliable transport.
func EncodeFrame(dst []byte, payload []byte) []byte {
	if len(payload) > MaxPayload {
		payload = payload[:MaxPayload]
	}
	start := len(dst)
	dst = append(dst, byte(len(payload)+FrameHeaderSize+FrameTrailerSize))
	dst = append(dst, payload...)
	crc := CRC16(dst[start:])
	return append(dst, byte(crc>>8), byte(crc), SyncByte)
}

// Decoder reassembles frames from a byte stream one byte at a time, with a
// fixed buffer and no allocation. It starts synchronized; any malformed
// frame drops it back to hunting for a sync byte.
type Decoder struct {
	buf    [FrameLengthMax]byte
	n      int
	synced bool
}

// NewDecoder returns a decoder ready for a stream that begins on a frame
// boundary.
func NewDecoder() *Decoder {
	return &Decoder{synced: true}
}

// Feed consumes one byte. When the byte completes a valid frame, Feed
// returns its payload and true; the returned slice aliases the decoder's
// buffer and is only valid until the next call.
func (d *Decoder) Feed(b byte) ([]byte, bool) {
	if !d.synced {
		if b == SyncByte {
			d.synced = true
			d.n = 0
		}
		return nil, false
	}

	if d.n == 0 && b == SyncByte {
		// Idle sync between frames.
		return nil, false
	}

	d.buf[d.n] = b
	d.n++

	if d.n == 1 {
		if int(b) < FrameLengthMin || int(b) > FrameLengthMax {
			d.drop()
		}
		return nil, false
	}

	total := int(d.buf[0])
	if d.n < total {
		return nil, false
	}

	if d.buf[total-1] != SyncByte {
		d.drop()
		return nil, false
	}
	want := uint16(d.buf[total-3])<<8 | uint16(d.buf[total-2])
	if CRC16(d.buf[:total-FrameTrailerSize]) != want {
		d.drop()
		return nil, false
	}

	d.n = 0
	return d.buf[FrameHeaderSize : total-FrameTrailerSize], true
}

// drop discards the partial frame and hunts for the next sync byte.
func (d *Decoder) drop() {
	d.n = 0
	d.synced = false
}
