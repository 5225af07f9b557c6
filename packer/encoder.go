package packer

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/wippyai/binpack/errors"
	"github.com/wippyai/binpack/packer/internal/prim"
	"github.com/wippyai/binpack/template"
	"github.com/wippyai/binpack/value"
)

// Encoder packs values into bytes.
type Encoder struct {
	initCap int
	limit   int
}

// NewEncoder creates an encoder with default buffer sizes.
func NewEncoder() *Encoder {
	return &Encoder{initCap: DefaultInitialBufferSize, limit: DefaultMaxSize}
}

// Encode runs every directive of t against values and returns the packed bytes.
// Values are drawn in order by a single cursor shared across directives.
func (e *Encoder) Encode(t *template.Template, values []value.Value) ([]byte, error) {
	buf := newBuffer(e.initCap, e.limit)
	defer buf.release()

	in := valueCursor{values: values}
	for _, d := range t.Directives {
		traceDirective("pack directive", d, len(buf.data))
		if err := e.encodeDirective(buf, &in, d); err != nil {
			err = errors.At(err, d.Location())
			Logger().Debug("pack failed", zap.String("template", t.Format), zap.Error(err))
			return nil, err
		}
	}
	return buf.bytes(), nil
}

func (e *Encoder) encodeDirective(buf *buffer, in *valueCursor, d template.Directive) error {
	switch d.Op {
	case template.OpInvalid:
		return nil

	case template.OpSkip:
		if d.Count == template.ToEnd {
			return nil
		}
		_, err := buf.reserve(d.Count)
		return err

	case template.OpStrBlock, template.OpHexBlock, template.OpBase64Block:
		if d.Count == 0 && !d.Flags.Has(template.FlagWidthIsCount) {
			return nil
		}
		v, ok := in.next()
		if !ok {
			return nil
		}
		s, err := v.ToStr()
		if err != nil {
			return err
		}
		switch d.Op {
		case template.OpStrBlock:
			return encodeStr(buf, d, s)
		case template.OpHexBlock:
			return encodeHex(buf, d, s)
		default:
			return encodeBase64(buf, d, s)
		}

	case template.OpInt1, template.OpInt2, template.OpInt4, template.OpInt8,
		template.OpFloat32, template.OpFloat64, template.OpUTF8:
		for count := d.Count; count != 0; {
			v, ok := in.next()
			if !ok {
				break
			}
			if err := encodeNumber(buf, d, v); err != nil {
				return err
			}
			if count > 0 {
				count--
			}
		}
		return nil

	default:
		return errors.Runtime(errors.PhasePack, fmt.Sprintf("unreachable directive %s", d.Op))
	}
}

func encodeNumber(buf *buffer, d template.Directive, v value.Value) error {
	switch d.Op {
	case template.OpFloat32, template.OpFloat64:
		f, err := v.ToFloat()
		if err != nil {
			return err
		}
		w, err := buf.reserve(d.Width)
		if err != nil {
			return err
		}
		if d.Op == template.OpFloat32 {
			prim.PutFloat32(w, float32(f), d.LittleEndian)
		} else {
			prim.PutFloat64(w, f, d.LittleEndian)
		}
		return nil

	case template.OpUTF8:
		return encodeRune(buf, v)

	default:
		i, err := v.ToInt()
		if err != nil {
			return err
		}
		w, err := buf.reserve(d.Width)
		if err != nil {
			return err
		}
		prim.PutUint(w, uint64(i), d.LittleEndian)
		return nil
	}
}

func encodeRune(buf *buffer, v value.Value) error {
	if v.Kind() == value.KindFloat {
		return errors.Range(errors.PhasePack, v.Float(), "pack(U): value out of range")
	}
	i, err := v.ToInt()
	if err != nil {
		return err
	}
	if i < 0 || i >= prim.MaxRune {
		return errors.Range(errors.PhasePack, i, "pack(U): value out of range")
	}
	c := uint32(i)
	w, err := buf.reserve(prim.RuneLen(c))
	if err != nil {
		return err
	}
	prim.PutRune(w, c)
	return nil
}

func padMode(d template.Directive) prim.PadMode {
	switch {
	case d.Flags.Has(template.FlagAppendNul):
		return prim.PadNulTerminated
	case d.Flags.Has(template.FlagNullPad):
		return prim.PadNul
	default:
		return prim.PadSpace
	}
}

func encodeStr(buf *buffer, d template.Directive, s string) error {
	mode := padMode(d)
	copyLen, padLen := prim.StrSize(len(s), d.Count, mode)
	w, err := buf.reserve(copyLen + padLen)
	if err != nil {
		return err
	}
	prim.PutStr(w, s, copyLen, mode)
	return nil
}

func encodeHex(buf *buffer, d template.Directive, s string) error {
	digits := prim.HexDigits(len(s), d.Count)
	w, err := buf.reserve(prim.HexSize(digits))
	if err != nil {
		return err
	}
	prim.PutHex(w, s, digits, d.Flags.Has(template.FlagLowNibbleFirst))
	return nil
}

func encodeBase64(buf *buffer, d template.Directive, s string) error {
	lineLen := prim.Base64LineLen(d.Count)
	w, err := buf.reserve(prim.Base64Size(len(s), lineLen))
	if err != nil {
		return err
	}
	prim.PutBase64(w, []byte(s), lineLen)
	return nil
}
