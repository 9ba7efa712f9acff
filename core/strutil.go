package core

// utoa converts an unsigned integer to a decimal string without pulling
// fmt into firmware builds.
func utoa(n uint32) string {
	if n == 0 {
		return "0"
	}

	temp := n
	digits := 0
	for temp > 0 {
		digits++
		temp /= 10
	}

	buf := make([]byte, digits)
	pos := digits - 1
	for n > 0 {
		buf[pos] = byte('0' + n%10)
		n /= 10
		pos--
	}
	return string(buf)
}

// htoa renders a byte as two hex digits.
func htoa(b uint8) string {
	const hex = "0123456789abcdef"
	return string([]byte{'0', 'x', hex[b>>4], hex[b&0xF]})
}
