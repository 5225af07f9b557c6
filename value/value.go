package value

import (
	"math"
	"strconv"
)

// Kind identifies which member of the union a Value holds.
type Kind uint8

const (
	KindAbsent Kind = iota
	KindInteger
	KindFloat
	KindString
)

func (k Kind) String() string {
	switch k {
	case KindInteger:
		return "integer"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	default:
		return "absent"
	}
}

// Value is an integer, a float, a byte string, or absent (nil).
// The zero Value is absent.
type Value struct {
	s    string
	i    int64
	f    float64
	kind Kind
}

// Int returns an integer value.
func Int(i int64) Value {
	return Value{kind: KindInteger, i: i}
}

// Float returns a float value.
func Float(f float64) Value {
	return Value{kind: KindFloat, f: f}
}

// String returns a string value holding the raw bytes of s.
func String(s string) Value {
	return Value{kind: KindString, s: s}
}

// Bytes returns a string value holding a copy of b.
func Bytes(b []byte) Value {
	return Value{kind: KindString, s: string(b)}
}

// Nil returns the absent value.
func Nil() Value {
	return Value{}
}

func (v Value) Kind() Kind     { return v.kind }
func (v Value) IsNil() bool    { return v.kind == KindAbsent }
func (v Value) Int() int64     { return v.i }
func (v Value) Float() float64 { return v.f }
func (v Value) Str() string    { return v.s }

// Bytes returns a copy of the string payload.
func (v Value) Bytes() []byte {
	return []byte(v.s)
}

// ClassName returns the host class name of the value, used in error messages.
func (v Value) ClassName() string {
	switch v.kind {
	case KindInteger:
		return "Integer"
	case KindFloat:
		return "Float"
	case KindString:
		return "String"
	default:
		return "NilClass"
	}
}

// Interface returns the value as int64, float64, string or nil.
func (v Value) Interface() any {
	switch v.kind {
	case KindInteger:
		return v.i
	case KindFloat:
		return v.f
	case KindString:
		return v.s
	default:
		return nil
	}
}

// String renders the value as a literal: 42, 1.5, "ab\x00", nil.
func (v Value) String() string {
	switch v.kind {
	case KindInteger:
		return strconv.FormatInt(v.i, 10)
	case KindFloat:
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	case KindString:
		return strconv.Quote(v.s)
	default:
		return "nil"
	}
}

// Equal reports whether two values have the same kind and payload.
// NaN floats compare equal to each other.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindInteger:
		return v.i == o.i
	case KindFloat:
		return v.f == o.f || (math.IsNaN(v.f) && math.IsNaN(o.f))
	case KindString:
		return v.s == o.s
	default:
		return true
	}
}

// EqualSlices reports whether two sequences are element-wise equal.
func EqualSlices(a, b []Value) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}
