package prim

const hexDigits = "0123456789abcdef"

func hexValue(c byte) byte {
	switch {
	case c >= '0' && c <= '9':
		return c - '0'
	case c >= 'A' && c <= 'F':
		return 10 + c - 'A'
	case c >= 'a' && c <= 'f':
		return 10 + c - 'a'
	default:
		return 0
	}
}

// HexDigits resolves the number of hex digits a pack directive emits.
func HexDigits(srcLen, count int) int {
	if count < 0 {
		return srcLen
	}
	return count
}

// HexSize returns the bytes needed to hold digits hex digits.
func HexSize(digits int) int {
	return (digits + 1) / 2
}

// PutHex packs up to digits hex characters of src into dst, two per byte.
// Missing digits are zero; dst must be HexSize(digits) bytes.
func PutHex(dst []byte, src string, digits int, lowFirst bool) {
	first, second := uint(4), uint(0)
	if lowFirst {
		first, second = 0, 4
	}

	avail := min(len(src), digits)
	si := 0
	for i := range dst {
		var a, b byte
		if si < avail {
			a = hexValue(src[si])
			si++
		}
		if si < avail {
			b = hexValue(src[si])
			si++
		}
		dst[i] = a<<first | b<<second
	}
}

// ReadHex renders up to count nibbles of src as lowercase hex digits.
// A negative count renders every nibble. It returns the digits and the bytes consumed.
func ReadHex(src []byte, count int, lowFirst bool) (string, int) {
	first, second := uint(4), uint(0)
	if lowFirst {
		first, second = 0, 4
	}
	if count < 0 {
		count = len(src) * 2
	}

	out := make([]byte, 0, min(count, len(src)*2))
	i := 0
	for i < len(src) && count > 0 {
		c := src[i]
		i++
		out = append(out, hexDigits[(c>>first)&0x0f])
		count--
		if count > 0 {
			out = append(out, hexDigits[(c>>second)&0x0f])
			count--
		}
	}
	return string(out), i
}
