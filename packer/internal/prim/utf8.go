package prim

import (
	"fmt"

	"github.com/wippyai/binpack/errors"
)

// MaxRune is the first codepoint the encoder rejects.
const MaxRune = 0x200000

// Minimum codepoint for each sequence length; anything below is overlong.
var utf8Limits = [...]uint64{
	0x0,        // 1
	0x80,       // 2
	0x800,      // 3
	0x10000,    // 4
	0x200000,   // 5
	0x4000000,  // 6
	0x80000000, // 7
}

// RuneLen returns the encoded length of c, or -1 when c >= MaxRune.
func RuneLen(c uint32) int {
	switch {
	case c < 0x80:
		return 1
	case c < 0x800:
		return 2
	case c < 0x10000:
		return 3
	case c < MaxRune:
		return 4
	default:
		return -1
	}
}

// PutRune encodes c into dst, which must be exactly RuneLen(c) bytes.
func PutRune(dst []byte, c uint32) {
	switch len(dst) {
	case 1:
		dst[0] = byte(c)
	case 2:
		dst[0] = byte(0xC0 | c>>6)
		dst[1] = byte(0x80 | c&0x3F)
	case 3:
		dst[0] = byte(0xE0 | c>>12)
		dst[1] = byte(0x80 | (c>>6)&0x3F)
		dst[2] = byte(0x80 | c&0x3F)
	case 4:
		dst[0] = byte(0xF0 | c>>18)
		dst[1] = byte(0x80 | (c>>12)&0x3F)
		dst[2] = byte(0x80 | (c>>6)&0x3F)
		dst[3] = byte(0x80 | c&0x3F)
	}
}

// DecodeRune decodes one sequence from the front of src, which must not be empty.
// It returns the codepoint and the number of bytes consumed.
func DecodeRune(src []byte) (uint64, int, error) {
	uv := uint64(src[0])
	if uv&0x80 == 0 {
		return uv, 1, nil
	}
	if uv&0x40 == 0 {
		return 0, 0, malformed()
	}

	var n int
	switch {
	case uv&0x20 == 0:
		n, uv = 2, uv&0x1f
	case uv&0x10 == 0:
		n, uv = 3, uv&0x0f
	case uv&0x08 == 0:
		n, uv = 4, uv&0x07
	case uv&0x04 == 0:
		n, uv = 5, uv&0x03
	case uv&0x02 == 0:
		n, uv = 6, uv&0x01
	default:
		return 0, 0, malformed()
	}

	if n > len(src) {
		return 0, 0, errors.New(errors.PhaseUnpack, errors.KindArgument).
			Detail("malformed UTF-8 character (expected %d bytes, given %d bytes)", n, len(src)).
			Value(n).
			Build()
	}

	for i := 1; i < n; i++ {
		c := src[i]
		if c&0xc0 != 0x80 {
			return 0, 0, malformed()
		}
		uv = uv<<6 | uint64(c&0x3f)
	}

	if uv < utf8Limits[n-1] {
		return 0, 0, errors.New(errors.PhaseUnpack, errors.KindArgument).
			Detail("redundant UTF-8 sequence").
			Value(fmt.Sprintf("% x", src[:n])).
			Build()
	}
	return uv, n, nil
}

func malformed() error {
	return errors.Argument(errors.PhaseUnpack, "malformed UTF-8 character")
}
