package packer

import (
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/wippyai/binpack/errors"
	"github.com/wippyai/binpack/internal/host"
	"github.com/wippyai/binpack/packer/internal/prim"
	"github.com/wippyai/binpack/template"
	"github.com/wippyai/binpack/value"
)

// Decoder unpacks bytes into values.
type Decoder struct {
	base64  *host.Base64Table
	minInt  int64
	maxInt  int64
	maxFill int
}

// NewDecoder creates a decoder for a 64-bit host integer.
func NewDecoder() *Decoder {
	return newDecoder(host.Probe().Base64, 64, DefaultMaxFill)
}

func newDecoder(table *host.Base64Table, intBits, maxFill int) *Decoder {
	if intBits == 32 {
		return &Decoder{base64: table, minInt: math.MinInt32, maxInt: math.MaxInt32, maxFill: maxFill}
	}
	return &Decoder{base64: table, minInt: math.MinInt64, maxInt: math.MaxInt64, maxFill: maxFill}
}

// Decode runs every directive of t against data.
// With single set it stops after the first directive that produces values.
func (dec *Decoder) Decode(t *template.Template, data []byte, single bool) ([]value.Value, error) {
	out := make([]value.Value, 0, len(t.Directives))
	r := byteReader{data: data}

	for _, d := range t.Directives {
		var err error
		out, err = dec.step(&r, d, out, t.Format)
		if err != nil {
			return nil, err
		}
		if single && d.Op != template.OpInvalid && d.Op != template.OpSkip {
			break
		}
	}
	return out, nil
}

// DecodeGroups is Decode with the values split per directive.
// The result has one entry per directive of t, nil for directives that produce nothing.
func (dec *Decoder) DecodeGroups(t *template.Template, data []byte) ([][]value.Value, error) {
	groups := make([][]value.Value, len(t.Directives))
	r := byteReader{data: data}

	for i, d := range t.Directives {
		g, err := dec.step(&r, d, nil, t.Format)
		if err != nil {
			return nil, err
		}
		groups[i] = g
	}
	return groups, nil
}

func (dec *Decoder) step(r *byteReader, d template.Directive, out []value.Value, format string) ([]value.Value, error) {
	traceDirective("unpack directive", d, r.pos)
	out, err := dec.decodeDirective(r, d, out)
	if err != nil {
		err = errors.At(err, d.Location())
		Logger().Debug("unpack failed", zap.String("template", format), zap.Error(err))
		return nil, err
	}
	return out, nil
}

func (dec *Decoder) decodeDirective(r *byteReader, d template.Directive, out []value.Value) ([]value.Value, error) {
	switch d.Op {
	case template.OpInvalid:
		return out, nil

	case template.OpSkip:
		if d.Count == template.ToEnd {
			r.advance(r.remaining())
			return out, nil
		}
		if r.remaining() < d.Count {
			return out, errors.New(errors.PhaseUnpack, errors.KindArgument).
				Detail("x outside of string").
				Value(d.Count).
				Build()
		}
		r.advance(d.Count)
		return out, nil

	case template.OpStrBlock:
		s, n := prim.ReadStr(r.rest(), d.Count, padMode(d))
		r.advance(n)
		return append(out, value.String(s)), nil

	case template.OpHexBlock:
		s, n := prim.ReadHex(r.rest(), d.Count, d.Flags.Has(template.FlagLowNibbleFirst))
		r.advance(n)
		return append(out, value.String(s)), nil

	case template.OpBase64Block:
		b, n := prim.DecodeBase64(r.rest(), dec.base64)
		r.advance(n)
		return append(out, value.Bytes(b)), nil

	case template.OpUTF8:
		for count := d.Count; count != 0; {
			rest := r.rest()
			if len(rest) == 0 {
				break
			}
			c, n, err := prim.DecodeRune(rest)
			if err != nil {
				return out, err
			}
			out = append(out, value.Int(int64(c)))
			r.advance(n)
			if count > 0 {
				count--
			}
		}
		return out, nil

	case template.OpInt1, template.OpInt2, template.OpInt4, template.OpInt8,
		template.OpFloat32, template.OpFloat64:
		for count := d.Count; count != 0; {
			rest := r.rest()
			if len(rest) < d.Width {
				return dec.fillNil(r, out, count)
			}
			v, err := dec.decodeFixed(d, rest[:d.Width])
			if err != nil {
				return out, err
			}
			out = append(out, v)
			r.advance(d.Width)
			if count > 0 {
				count--
			}
		}
		return out, nil

	default:
		return out, errors.Runtime(errors.PhaseUnpack, fmt.Sprintf("unreachable directive %s", d.Op))
	}
}

// fillNil appends one absent value per remaining counted repetition.
// The nil values of one call are bounded by maxFill.
func (dec *Decoder) fillNil(r *byteReader, out []value.Value, count int) ([]value.Value, error) {
	if count <= 0 {
		return out, nil
	}
	if count > dec.maxFill-r.filled {
		return out, errors.Range(errors.PhaseUnpack, count,
			fmt.Sprintf("unpacked value count exceeds limit %d", dec.maxFill))
	}
	r.filled += count
	for ; count > 0; count-- {
		out = append(out, value.Nil())
	}
	return out, nil
}

func (dec *Decoder) decodeFixed(d template.Directive, src []byte) (value.Value, error) {
	switch d.Op {
	case template.OpFloat32:
		return value.Float(float64(prim.Float32(src, d.LittleEndian))), nil
	case template.OpFloat64:
		return value.Float(prim.Float64(src, d.LittleEndian)), nil
	}

	u := prim.Uint(src, d.LittleEndian)
	if d.Signed() {
		i := prim.SignExtend(u, d.Width)
		if i < dec.minInt || i > dec.maxInt {
			return value.Value{}, overflow(i)
		}
		return value.Int(i), nil
	}
	if u > uint64(dec.maxInt) {
		return value.Value{}, overflow(u)
	}
	return value.Int(int64(u)), nil
}

func overflow(v any) error {
	return errors.Range(errors.PhaseUnpack, v, fmt.Sprintf("cannot unpack to native integer: %d", v))
}
