package schema

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"go.bytecodealliance.org/wit"

	"github.com/wippyai/binpack/errors"
	"github.com/wippyai/binpack/packer"
	"github.com/wippyai/binpack/template"
)

func newCodec(t *testing.T) *packer.Codec {
	t.Helper()
	c, err := packer.NewCodecWithConfig(&packer.Config{Endian: packer.EndianLittle})
	if err != nil {
		t.Fatal(err)
	}
	return c
}

func TestDescribe(t *testing.T) {
	tests := []struct {
		format string
		want   string
	}{
		{"n C2 a4 s*", "tuple<u16, u8, u8, string, list<s16>>"},
		{"cSlQ", "tuple<s8, u16, s32, u64>"},
		{"q", "tuple<s64>"},
		{"EF", "tuple<f64, f32>"},
		{"U2", "tuple<char, char>"},
		{"Hm", "tuple<string, list<u8>>"},
		{"Z*A0", "tuple<string, string>"},
		{"x3C0", "tuple<>"},
		{"", "tuple<>"},
	}

	c := newCodec(t)
	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			tmpl, err := c.Parse(tt.format)
			if err != nil {
				t.Fatal(err)
			}
			ty, err := Describe(tmpl)
			if err != nil {
				t.Fatal(err)
			}
			if got := TypeString(ty); got != tt.want {
				t.Errorf("Describe(%q) = %s, want %s", tt.format, got, tt.want)
			}
		})
	}
}

func TestDescribeTooLarge(t *testing.T) {
	tmpl, err := template.Parse("C2000", template.HostPlatform())
	if err != nil {
		t.Fatal(err)
	}
	if _, err := Describe(tmpl); !errors.IsKind(err, errors.KindInvalidInput) {
		t.Errorf("err = %v, want invalid_input", err)
	}
}

func TestTypeStringNamed(t *testing.T) {
	name := "point"
	if got := TypeString(&wit.TypeDef{Name: &name}); got != "point" {
		t.Errorf("TypeString = %s", got)
	}
	if got := TypeString(wit.Bool{}); got != "bool" {
		t.Errorf("TypeString = %s", got)
	}
}

const layoutsYAML = `
layouts:
  - name: reading
    description: sensor reading
    template: "C n g"
    fields: [channel, sequence, celsius]
  - name: packet
    template: "a4 C2 x2 S<*"
    fields: [tag, flags, samples]
`

func TestLayoutRoundTrip(t *testing.T) {
	reg, err := ParseLayouts([]byte(layoutsYAML), newCodec(t))
	if err != nil {
		t.Fatal(err)
	}
	if got := reg.Names(); !reflect.DeepEqual(got, []string{"packet", "reading"}) {
		t.Errorf("Names = %v", got)
	}

	tests := []struct {
		layout string
		record map[string]any
		packed string
		want   map[string]any
	}{
		{
			layout: "reading",
			record: map[string]any{"channel": 3, "sequence": 513, "celsius": -2.25},
			packed: "\x03\x02\x01\xc0\x10\x00\x00",
			want:   map[string]any{"channel": int64(3), "sequence": int64(513), "celsius": float64(-2.25)},
		},
		{
			layout: "packet",
			record: map[string]any{"tag": "abcd", "flags": []any{1, 2}, "samples": []int{1, 258}},
			packed: "abcd\x01\x02\x00\x00\x01\x00\x02\x01",
			want: map[string]any{
				"tag":     "abcd",
				"flags":   []any{int64(1), int64(2)},
				"samples": []any{int64(1), int64(258)},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.layout, func(t *testing.T) {
			l, ok := reg.Get(tt.layout)
			if !ok {
				t.Fatalf("layout %q not found", tt.layout)
			}
			b, err := l.Pack(tt.record)
			if err != nil {
				t.Fatal(err)
			}
			if string(b) != tt.packed {
				t.Errorf("Pack = %q, want %q", b, tt.packed)
			}
			got, err := l.Unpack(b)
			if err != nil {
				t.Fatal(err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Unpack = %#v, want %#v", got, tt.want)
			}
		})
	}
}

func TestLayoutShortData(t *testing.T) {
	reg, err := ParseLayouts([]byte(layoutsYAML), newCodec(t))
	if err != nil {
		t.Fatal(err)
	}
	l, _ := reg.Get("reading")
	got, err := l.Unpack([]byte{7})
	if err != nil {
		t.Fatal(err)
	}
	want := map[string]any{"channel": int64(7), "sequence": nil, "celsius": nil}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Unpack = %#v, want %#v", got, want)
	}

	s, err := l.Describe()
	if err != nil || s != "tuple<u8, u16, f32>" {
		t.Errorf("Describe = %q, %v", s, err)
	}
	if l.Template().Format != "C n g" {
		t.Errorf("Template = %q", l.Template().Format)
	}
}

func TestLayoutPackErrors(t *testing.T) {
	reg, err := ParseLayouts([]byte(layoutsYAML), newCodec(t))
	if err != nil {
		t.Fatal(err)
	}
	packet, _ := reg.Get("packet")
	reading, _ := reg.Get("reading")

	tests := []struct {
		name   string
		layout *Layout
		record map[string]any
		kind   errors.Kind
	}{
		{"missing", reading, map[string]any{"channel": 1, "sequence": 2}, errors.KindInvalidInput},
		{"short list", packet, map[string]any{"tag": "a", "flags": []any{1}, "samples": nil}, errors.KindInvalidInput},
		{"not a list", packet, map[string]any{"tag": "a", "flags": 3, "samples": []any{}}, errors.KindType},
		{"bytes not a list", packet, map[string]any{"tag": "a", "flags": []byte{1, 2}, "samples": []any{}}, errors.KindType},
		{"bad scalar", reading, map[string]any{"channel": true, "sequence": 2, "celsius": 1.0}, errors.KindType},
		{"string for number", reading, map[string]any{"channel": "x", "sequence": 2, "celsius": 1.0}, errors.KindType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.layout.Pack(tt.record)
			if !errors.IsKind(err, tt.kind) {
				t.Errorf("err = %v, want %s", err, tt.kind)
			}
		})
	}
}

func TestParseLayoutsErrors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		kind errors.Kind
	}{
		{"syntax", "layouts: [", errors.KindInvalidInput},
		{"unknown key", "layouts:\n  - name: a\n    template: C\n    fields: [x]\n    extra: 1\n", errors.KindInvalidInput},
		{"no name", "layouts:\n  - template: C\n    fields: [x]\n", errors.KindInvalidInput},
		{"duplicate", "layouts:\n  - {name: a, template: C, fields: [x]}\n  - {name: a, template: C, fields: [x]}\n", errors.KindInvalidInput},
		{"field count", "layouts:\n  - {name: a, template: CC, fields: [x]}\n", errors.KindInvalidInput},
		{"duplicate field", "layouts:\n  - {name: a, template: CC, fields: [x, x]}\n", errors.KindInvalidInput},
		{"after star", "layouts:\n  - {name: a, template: 'C*C', fields: [x, y]}\n", errors.KindInvalidInput},
		{"bad template", "layouts:\n  - {name: a, template: 'C!', fields: [x]}\n", errors.KindSuffixNotAllowed},
	}

	c := newCodec(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseLayouts([]byte(tt.yaml), c)
			if !errors.IsKind(err, tt.kind) {
				t.Errorf("err = %v, want %s", err, tt.kind)
			}
		})
	}
}

func TestCompileSkipsZeroCount(t *testing.T) {
	l, err := Compile(LayoutDef{Name: "z", Template: "C0 H0 A0 x2 C", Fields: []string{"pad", "v"}}, newCodec(t))
	if err != nil {
		t.Fatal(err)
	}
	b, err := l.Pack(map[string]any{"pad": "ignored", "v": 9})
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != "\x00\x00\x09" {
		t.Errorf("Pack = %q", b)
	}
}

func TestLoadLayouts(t *testing.T) {
	path := filepath.Join(t.TempDir(), "layouts.yaml")
	if err := os.WriteFile(path, []byte(layoutsYAML), 0o600); err != nil {
		t.Fatal(err)
	}
	reg, err := LoadLayouts(path, newCodec(t))
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := reg.Get("reading"); !ok {
		t.Error("reading layout missing")
	}

	if _, err := LoadLayouts(filepath.Join(t.TempDir(), "missing.yaml"), newCodec(t)); !errors.IsKind(err, errors.KindInvalidInput) {
		t.Errorf("missing file err = %v", err)
	}
}
