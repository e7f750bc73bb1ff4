package limbs

const digits = "0123456789abcdefghijklmnopqrstuvwxyz"

// Format returns x as an unsigned number in the given base, which must be in
// [2, 36]. Digits above 9 are lower case.
func Format(x Vec, base int) string {
	if x.IsZero() {
		return "0"
	}
	var buf [Bits]byte
	i := len(buf)
	for !x.IsZero() {
		var r uint32
		x, r = DivWord(x, uint32(base))
		i--
		buf[i] = digits[r]
	}
	return string(buf[i:])
}

// Digit returns the value of c as a digit, or 255 if it isn't one.
func Digit(c byte) uint8 {
	switch {
	case '0' <= c && c <= '9':
		return c - '0'
	case 'a' <= c && c <= 'z':
		return c - 'a' + 10
	case 'A' <= c && c <= 'Z':
		return c - 'A' + 10
	}
	return 255
}
