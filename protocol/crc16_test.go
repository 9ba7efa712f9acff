package protocol

import "testing"

func TestCRC16KnownValues(t *testing.T) {
	if got := CRC16(nil); got != 0xFFFF {
		t.Errorf("CRC16(nil) = %#x, want 0xffff", got)
	}
	if got := CRC16([]byte{0x01}); got != 0x1E0E {
		t.Errorf("CRC16({01}) = %#x, want 0x1e0e", got)
	}
}

func TestCRC16DetectsCorruption(t *testing.T) {
	data := []byte{0x09, 0x00, 0x00, 0x04, 0x05, 0x06}
	ref := CRC16(data)

	for i := range data {
		for bit := 0; bit < 8; bit++ {
			mutated := make([]byte, len(data))
			copy(mutated, data)
			mutated[i] ^= 1 << bit
			if CRC16(mutated) == ref {
				t.Errorf("bit flip at byte %d bit %d not detected", i, bit)
			}
		}
	}
}

func TestCRC16OrderSensitive(t *testing.T) {
	a := CRC16([]byte{0x01, 0x02})
	b := CRC16([]byte{0x02, 0x01})
	if a == b {
		t.Error("swapped bytes produced the same checksum")
	}
}
