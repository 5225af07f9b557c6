package template

import (
	"strings"

	"github.com/wippyai/binpack/errors"
)

// modifierTypes lists the characters that accept '_', '!', '<' and '>'.
const modifierTypes = "sSiIlLqQjJ"

type entry struct {
	op    Op
	elem  Elem
	width int
	flags Flags
}

var directives = map[byte]entry{
	'C': {OpInt1, ElemInteger, 1, 0},
	'c': {OpInt1, ElemInteger, 1, FlagSigned},
	'S': {OpInt2, ElemInteger, 2, 0},
	's': {OpInt2, ElemInteger, 2, FlagSigned},
	'n': {OpInt2, ElemInteger, 2, FlagBigEndian},
	'v': {OpInt2, ElemInteger, 2, FlagLittleEndian},
	'L': {OpInt4, ElemInteger, 4, 0},
	'l': {OpInt4, ElemInteger, 4, FlagSigned},
	'N': {OpInt4, ElemInteger, 4, FlagBigEndian},
	'V': {OpInt4, ElemInteger, 4, FlagLittleEndian},
	'Q': {OpInt8, ElemInteger, 8, 0},
	'q': {OpInt8, ElemInteger, 8, FlagSigned},
	'D': {OpFloat64, ElemFloat, 8, 0},
	'd': {OpFloat64, ElemFloat, 8, 0},
	'E': {OpFloat64, ElemFloat, 8, FlagLittleEndian},
	'G': {OpFloat64, ElemFloat, 8, FlagBigEndian},
	'F': {OpFloat32, ElemFloat, 4, 0},
	'f': {OpFloat32, ElemFloat, 4, 0},
	'e': {OpFloat32, ElemFloat, 4, FlagLittleEndian},
	'g': {OpFloat32, ElemFloat, 4, FlagBigEndian},
	'U': {OpUTF8, ElemInteger, 0, 0},
	'A': {OpStrBlock, ElemString, 0, FlagWidthIsCount | FlagDirectWidth},
	'a': {OpStrBlock, ElemString, 0, FlagWidthIsCount | FlagDirectWidth | FlagNullPad},
	'Z': {OpStrBlock, ElemString, 0, FlagWidthIsCount | FlagDirectWidth | FlagNullPad | FlagAppendNul},
	'H': {OpHexBlock, ElemString, 0, FlagDirectWidth},
	'h': {OpHexBlock, ElemString, 0, FlagDirectWidth | FlagLowNibbleFirst},
	'm': {OpBase64Block, ElemString, 0, FlagWidthIsCount},
	'x': {OpSkip, ElemNone, 0, 0},
}

// alias maps a native-width character onto its canonical directive.
type alias struct {
	what  string // C type named in UnsupportedPlatform errors
	size  func(Platform) int
	upper bool
}

var aliases = map[byte]alias{
	'I': {"int", intSize, true},
	'i': {"int", intSize, false},
	'J': {"intptr_t", pointerSize, true},
	'j': {"intptr_t", pointerSize, false},
}

func intSize(p Platform) int     { return p.IntSize }
func pointerSize(p Platform) int { return p.PointerSize }

// widthChar returns the fixed-width integer character for size bytes.
func widthChar(size int, upper bool) (byte, bool) {
	var c byte
	switch size {
	case 2:
		c = 'S'
	case 4:
		c = 'L'
	case 8:
		c = 'Q'
	default:
		return 0, false
	}
	if !upper {
		c += 'a' - 'A'
	}
	return c, true
}

// resolve maps a source character through the alias table.
func resolve(c byte, p Platform) (byte, error) {
	a, ok := aliases[c]
	if !ok {
		return c, nil
	}
	size := a.size(p)
	canon, ok := widthChar(size, a.upper)
	if !ok {
		return 0, errors.UnsupportedPlatform(a.what, size)
	}
	return canon, nil
}

func allowsModifier(c byte) bool {
	return strings.IndexByte(modifierTypes, c) >= 0
}
