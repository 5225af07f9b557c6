package template

import (
	"fmt"
	"strconv"
	"strings"
)

// ToEnd is the count of a '*' suffix: use all remaining input.
const ToEnd = -1

// Op is the operation a directive performs.
type Op uint8

const (
	OpInvalid Op = iota
	OpInt1
	OpInt2
	OpInt4
	OpInt8
	OpFloat32
	OpFloat64
	OpUTF8
	OpStrBlock
	OpHexBlock
	OpBase64Block
	OpSkip
)

func (o Op) String() string {
	switch o {
	case OpInvalid:
		return "invalid"
	case OpInt1:
		return "int8"
	case OpInt2:
		return "int16"
	case OpInt4:
		return "int32"
	case OpInt8:
		return "int64"
	case OpFloat32:
		return "float32"
	case OpFloat64:
		return "float64"
	case OpUTF8:
		return "utf8"
	case OpStrBlock:
		return "str"
	case OpHexBlock:
		return "hex"
	case OpBase64Block:
		return "base64"
	case OpSkip:
		return "skip"
	default:
		return fmt.Sprintf("op(%d)", uint8(o))
	}
}

// Elem is the value kind a directive consumes on pack and produces on unpack.
type Elem uint8

const (
	ElemNone Elem = iota
	ElemInteger
	ElemFloat
	ElemString
)

func (e Elem) String() string {
	switch e {
	case ElemInteger:
		return "integer"
	case ElemFloat:
		return "float"
	case ElemString:
		return "string"
	default:
		return "none"
	}
}

// Flags modify how a directive is encoded.
type Flags uint16

const (
	FlagNativeSize     Flags = 1 << iota // '_' or '!'
	FlagNullPad                          // a, Z
	FlagAppendNul                        // Z
	FlagSigned                           // lowercase integers
	FlagBigEndian                        // '>' or a big-endian letter
	FlagLittleEndian                     // '<' or a little-endian letter
	FlagWidthIsCount                     // count 0 still runs the directive
	FlagDirectWidth                      // count is a byte or digit width
	FlagLowNibbleFirst                   // h
)

// Has reports whether every bit of f is set.
func (fl Flags) Has(f Flags) bool {
	return fl&f == f
}

// Directive is one parsed template unit.
type Directive struct {
	Char         byte // canonical character after alias resolution
	Source       byte // character as written
	Op           Op
	Elem         Elem
	Width        int // bytes per unit, 0 when variable
	Count        int // ToEnd or >= 0
	Flags        Flags
	LittleEndian bool
	Pos          int // byte offset of Source in the format
}

// Signed reports whether integer values are sign-extended on unpack.
func (d Directive) Signed() bool {
	return d.Flags.Has(FlagSigned)
}

// Location identifies the directive in error paths, e.g. "U@3".
func (d Directive) Location() string {
	return string(d.Source) + "@" + strconv.Itoa(d.Pos)
}

// String renders the directive in canonical template form.
// Invalid directives render as the empty string.
func (d Directive) String() string {
	if d.Op == OpInvalid {
		return ""
	}
	var b strings.Builder
	b.WriteByte(d.Source)
	if d.Flags.Has(FlagNativeSize) {
		b.WriteByte('_')
	}
	if allowsModifier(d.Source) {
		switch {
		case d.Flags.Has(FlagLittleEndian):
			b.WriteByte('<')
		case d.Flags.Has(FlagBigEndian):
			b.WriteByte('>')
		}
	}
	switch d.Count {
	case ToEnd:
		b.WriteByte('*')
	case 1:
	default:
		b.WriteString(strconv.Itoa(d.Count))
	}
	return b.String()
}
