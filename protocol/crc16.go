// Package protocol implements the framed codec used on the keyboard's
// serial diagnostic link. The firmware mirrors every HID report it hands to
// the USB side as one frame; host tooling decodes the stream to watch key
// events live.
package protocol

// CRC16 computes the CCITT checksum carried in every frame trailer.
func CRC16(data []byte) uint16 {
	crc := uint16(0xFFFF)
	for _, b := range data {
		b = b ^ uint8(crc&0xFF)
		b = b ^ (b << 4)
		b16 := uint16(b)
		crc = (b16<<8 | crc>>8) ^ (b16 >> 4) ^ (b16 << 3)
	}
	return crc
}
