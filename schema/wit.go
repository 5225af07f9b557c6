package schema

import (
	"fmt"
	"strings"

	"go.bytecodealliance.org/wit"

	"github.com/wippyai/binpack/errors"
	"github.com/wippyai/binpack/template"
)

// MaxTupleFields bounds the tuple Describe will expand counted directives into.
const MaxTupleFields = 1024

// ElemType returns the WIT type of a single value produced by d, or nil
// for directives that produce nothing.
func ElemType(d template.Directive) wit.Type {
	switch d.Op {
	case template.OpInt1:
		if d.Signed() {
			return wit.S8{}
		}
		return wit.U8{}
	case template.OpInt2:
		if d.Signed() {
			return wit.S16{}
		}
		return wit.U16{}
	case template.OpInt4:
		if d.Signed() {
			return wit.S32{}
		}
		return wit.U32{}
	case template.OpInt8:
		if d.Signed() {
			return wit.S64{}
		}
		return wit.U64{}
	case template.OpFloat32:
		return wit.F32{}
	case template.OpFloat64:
		return wit.F64{}
	case template.OpUTF8:
		return wit.Char{}
	case template.OpStrBlock, template.OpHexBlock:
		return wit.String{}
	case template.OpBase64Block:
		return &wit.TypeDef{Kind: &wit.List{Type: wit.U8{}}}
	default:
		return nil
	}
}

// Describe returns the WIT tuple type that unpacking t yields.
// A counted numeric directive contributes count elements and a '*' numeric
// directive contributes one list.
func Describe(t *template.Template) (wit.Type, error) {
	var fields []wit.Type
	for _, d := range t.Directives {
		elem := ElemType(d)
		if elem == nil {
			continue
		}
		switch {
		case d.Elem == template.ElemString:
			fields = append(fields, elem)
		case d.Count == template.ToEnd:
			fields = append(fields, &wit.TypeDef{Kind: &wit.List{Type: elem}})
		default:
			if len(fields)+d.Count > MaxTupleFields {
				return nil, errors.New(errors.PhaseSchema, errors.KindInvalidInput).
					Path(d.Location()).
					Detail("template yields more than %d values", MaxTupleFields).
					Build()
			}
			for i := 0; i < d.Count; i++ {
				fields = append(fields, elem)
			}
		}
	}
	return &wit.TypeDef{Kind: &wit.Tuple{Types: fields}}, nil
}

// TypeString renders a WIT type in WIT syntax, e.g. "tuple<u8, list<s16>>".
func TypeString(t wit.Type) string {
	switch v := t.(type) {
	case wit.Bool:
		return "bool"
	case wit.U8:
		return "u8"
	case wit.S8:
		return "s8"
	case wit.U16:
		return "u16"
	case wit.S16:
		return "s16"
	case wit.U32:
		return "u32"
	case wit.S32:
		return "s32"
	case wit.U64:
		return "u64"
	case wit.S64:
		return "s64"
	case wit.F32:
		return "f32"
	case wit.F64:
		return "f64"
	case wit.Char:
		return "char"
	case wit.String:
		return "string"
	case *wit.TypeDef:
		if v.Name != nil {
			return *v.Name
		}
		switch k := v.Kind.(type) {
		case *wit.List:
			return "list<" + TypeString(k.Type) + ">"
		case *wit.Tuple:
			parts := make([]string, len(k.Types))
			for i, e := range k.Types {
				parts[i] = TypeString(e)
			}
			return "tuple<" + strings.Join(parts, ", ") + ">"
		default:
			return fmt.Sprintf("%T", k)
		}
	default:
		return fmt.Sprintf("%T", t)
	}
}
