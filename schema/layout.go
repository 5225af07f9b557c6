package schema

import (
	"bytes"
	"fmt"
	"os"
	"reflect"
	"sort"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/wippyai/binpack/errors"
	"github.com/wippyai/binpack/packer"
	"github.com/wippyai/binpack/template"
	"github.com/wippyai/binpack/value"
)

// LayoutDef is a named record layout as written in a layouts file.
//
//	layouts:
//	  - name: header
//	    template: "n C a4"
//	    fields: [length, flags, tag]
type LayoutDef struct {
	Name        string   `yaml:"name"`
	Description string   `yaml:"description,omitempty"`
	Template    string   `yaml:"template"`
	Fields      []string `yaml:"fields"`
}

type layoutFile struct {
	Layouts []LayoutDef `yaml:"layouts"`
}

// field binds a name to the directive that produces its value.
type field struct {
	name  string
	index int  // directive index in the template
	multi bool // the value is a list
	count int  // list length for counted directives, ToEnd otherwise
}

// Layout is a compiled record layout.
type Layout struct {
	LayoutDef
	codec  *packer.Codec
	tmpl   *template.Template
	fields []field
}

// Registry holds compiled layouts by name.
type Registry struct {
	layouts map[string]*Layout
}

// LoadLayouts reads and compiles a YAML layouts file.
func LoadLayouts(path string, codec *packer.Codec) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.PhaseSchema, errors.KindInvalidInput, err, "read layouts file")
	}
	return ParseLayouts(data, codec)
}

// ParseLayouts compiles every layout of a YAML document. Unknown keys are rejected.
func ParseLayouts(data []byte, codec *packer.Codec) (*Registry, error) {
	var file layoutFile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil {
		return nil, errors.Wrap(errors.PhaseSchema, errors.KindInvalidInput, err, "parse layouts")
	}

	reg := &Registry{layouts: make(map[string]*Layout, len(file.Layouts))}
	for i, def := range file.Layouts {
		if def.Name == "" {
			return nil, errors.New(errors.PhaseSchema, errors.KindInvalidInput).
				Path(fmt.Sprintf("layouts[%d]", i)).
				Detail("layout has no name").
				Build()
		}
		if _, dup := reg.layouts[def.Name]; dup {
			return nil, errors.New(errors.PhaseSchema, errors.KindInvalidInput).
				Path(def.Name).
				Detail("duplicate layout").
				Build()
		}
		l, err := Compile(def, codec)
		if err != nil {
			return nil, err
		}
		reg.layouts[def.Name] = l
	}

	Logger().Debug("layouts loaded", zap.Int("count", len(reg.layouts)))
	return reg, nil
}

// Get returns the layout with the given name.
func (r *Registry) Get(name string) (*Layout, bool) {
	l, ok := r.layouts[name]
	return l, ok
}

// Names returns the layout names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.layouts))
	for name := range r.layouts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Compile parses a layout's template and binds its fields.
// Each directive that consumes or produces values takes one field name. A
// directive with a count other than 1 binds a list; a '*' list must be the
// last field because it consumes every remaining value.
func Compile(def LayoutDef, codec *packer.Codec) (*Layout, error) {
	tmpl, err := codec.Parse(def.Template)
	if err != nil {
		return nil, errors.At(err, def.Name)
	}

	var fields []field
	for i, d := range tmpl.Directives {
		if !bindsField(d) {
			continue
		}
		if len(fields) > 0 && fields[len(fields)-1].multi && fields[len(fields)-1].count == template.ToEnd {
			return nil, errors.New(errors.PhaseSchema, errors.KindInvalidInput).
				Path(def.Name, d.Location()).
				Detail("directive follows a '*' list and would receive no values").
				Build()
		}
		multi := d.Elem != template.ElemString && d.Count != 1
		fields = append(fields, field{index: i, multi: multi, count: d.Count})
	}

	if len(fields) != len(def.Fields) {
		return nil, errors.New(errors.PhaseSchema, errors.KindInvalidInput).
			Path(def.Name).
			Detail("template %q binds %d fields, %d named", def.Template, len(fields), len(def.Fields)).
			Build()
	}
	seen := make(map[string]bool, len(def.Fields))
	for i, name := range def.Fields {
		if name == "" || seen[name] {
			return nil, errors.New(errors.PhaseSchema, errors.KindInvalidInput).
				Path(def.Name).
				Detail("field %d: empty or duplicate name %q", i, name).
				Build()
		}
		seen[name] = true
		fields[i].name = name
	}

	return &Layout{LayoutDef: def, codec: codec, tmpl: tmpl, fields: fields}, nil
}

func bindsField(d template.Directive) bool {
	switch d.Op {
	case template.OpInvalid, template.OpSkip:
		return false
	}
	return d.Count != 0 || d.Flags.Has(template.FlagWidthIsCount)
}

// Template returns the parsed template.
func (l *Layout) Template() *template.Template {
	return l.tmpl
}

// Describe returns the WIT type of the layout's unpacked values.
func (l *Layout) Describe() (string, error) {
	t, err := Describe(l.tmpl)
	if err != nil {
		return "", err
	}
	return TypeString(t), nil
}

// Pack packs a record. List fields take a slice of exactly the directive's count.
func (l *Layout) Pack(record map[string]any) ([]byte, error) {
	var vals []value.Value
	for _, f := range l.fields {
		raw, ok := record[f.name]
		if !ok {
			return nil, errors.New(errors.PhaseSchema, errors.KindInvalidInput).
				Path(l.Name, f.name).
				Detail("missing field").
				Build()
		}
		if !f.multi {
			v, err := value.Of(raw)
			if err != nil {
				return nil, errors.At(err, l.Name, f.name)
			}
			vals = append(vals, v)
			continue
		}

		items, err := listOf(raw)
		if err != nil {
			return nil, errors.At(err, l.Name, f.name)
		}
		if f.count != template.ToEnd && len(items) != f.count {
			return nil, errors.New(errors.PhaseSchema, errors.KindInvalidInput).
				Path(l.Name, f.name).
				Detail("needs %d values, got %d", f.count, len(items)).
				Build()
		}
		vals = append(vals, items...)
	}
	return l.codec.PackTemplate(l.tmpl, vals)
}

// Unpack decodes a record into a map of field names to values.
// Scalars are int64, float64, string or nil; list fields are []any.
func (l *Layout) Unpack(data []byte) (map[string]any, error) {
	groups, err := l.codec.UnpackGroups(l.tmpl, data)
	if err != nil {
		return nil, errors.At(err, l.Name)
	}

	out := make(map[string]any, len(l.fields))
	for _, f := range l.fields {
		g := groups[f.index]
		if f.multi {
			items := make([]any, len(g))
			for i, v := range g {
				items[i] = v.Interface()
			}
			out[f.name] = items
			continue
		}
		if len(g) == 0 {
			out[f.name] = nil
			continue
		}
		out[f.name] = g[0].Interface()
	}
	return out, nil
}

func listOf(raw any) ([]value.Value, error) {
	if vs, ok := raw.([]value.Value); ok {
		return vs, nil
	}
	rv := reflect.ValueOf(raw)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, errors.Type(errors.PhaseSchema, raw, fmt.Sprintf("expected a list, got %T", raw))
	}
	if _, isBytes := raw.([]byte); isBytes {
		return nil, errors.Type(errors.PhaseSchema, raw, "expected a list, got []uint8")
	}
	out := make([]value.Value, rv.Len())
	for i := range out {
		v, err := value.Of(rv.Index(i).Interface())
		if err != nil {
			return nil, errors.At(err, fmt.Sprintf("[%d]", i))
		}
		out[i] = v
	}
	return out, nil
}
