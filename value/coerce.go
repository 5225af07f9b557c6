package value

import (
	"fmt"
	"math"

	"github.com/wippyai/binpack/errors"
)

// Of converts a Go value into a Value.
// Integers, floats, strings, byte slices, nil and Value itself are accepted.
func Of(v any) (Value, error) {
	switch x := v.(type) {
	case nil:
		return Nil(), nil
	case Value:
		return x, nil
	case int:
		return Int(int64(x)), nil
	case int8:
		return Int(int64(x)), nil
	case int16:
		return Int(int64(x)), nil
	case int32:
		return Int(int64(x)), nil
	case int64:
		return Int(x), nil
	case uint:
		return ofUint(uint64(x))
	case uint8:
		return Int(int64(x)), nil
	case uint16:
		return Int(int64(x)), nil
	case uint32:
		return Int(int64(x)), nil
	case uint64:
		return ofUint(x)
	case float32:
		return Float(float64(x)), nil
	case float64:
		return Float(x), nil
	case string:
		return String(x), nil
	case []byte:
		return Bytes(x), nil
	default:
		return Value{}, errors.Type(errors.PhasePack, v, fmt.Sprintf("unsupported value type %T", v))
	}
}

func ofUint(u uint64) (Value, error) {
	if u > math.MaxInt64 {
		return Value{}, errors.Range(errors.PhasePack, u, fmt.Sprintf("integer %d too big to convert", u))
	}
	return Int(int64(u)), nil
}

// OfAll converts a list of Go values.
func OfAll(vs ...any) ([]Value, error) {
	out := make([]Value, len(vs))
	for i, v := range vs {
		c, err := Of(v)
		if err != nil {
			return nil, errors.At(err, fmt.Sprintf("[%d]", i))
		}
		out[i] = c
	}
	return out, nil
}

// ToInt coerces v to an integer. Floats truncate toward zero.
func (v Value) ToInt() (int64, error) {
	switch v.kind {
	case KindInteger:
		return v.i, nil
	case KindFloat:
		f := v.f
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return 0, errors.Range(errors.PhasePack, f, fmt.Sprintf("float %v out of range of integer", f))
		}
		t := math.Trunc(f)
		if t < math.MinInt64 || t >= math.MaxInt64 {
			return 0, errors.Range(errors.PhasePack, f, fmt.Sprintf("float %v out of range of integer", f))
		}
		return int64(t), nil
	default:
		return 0, errors.Type(errors.PhasePack, v.ClassName(),
			fmt.Sprintf("can't convert %s into Integer", v.ClassName()))
	}
}

// ToFloat coerces v to a float.
func (v Value) ToFloat() (float64, error) {
	switch v.kind {
	case KindFloat:
		return v.f, nil
	case KindInteger:
		return float64(v.i), nil
	default:
		return 0, errors.Type(errors.PhasePack, v.ClassName(),
			fmt.Sprintf("can't convert %s into Float", v.ClassName()))
	}
}

// ToStr requires v to be a string.
func (v Value) ToStr() (string, error) {
	if v.kind != KindString {
		return "", errors.Type(errors.PhasePack, v.ClassName(),
			fmt.Sprintf("cannot convert %s to expected string type", v.ClassName()))
	}
	return v.s, nil
}
