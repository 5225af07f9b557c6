package template

import (
	"strings"

	"github.com/wippyai/binpack/internal/host"
)

// Platform is the host description a template is resolved against.
type Platform struct {
	LittleEndian bool
	IntSize      int
	LongSize     int
	PointerSize  int
}

// HostPlatform describes the running process.
func HostPlatform() Platform {
	info := host.Probe()
	return Platform{
		LittleEndian: info.LittleEndian,
		IntSize:      info.IntSize,
		LongSize:     info.LongSize,
		PointerSize:  info.PointerSize,
	}
}

// Template is a parsed format string.
type Template struct {
	Format     string
	Directives []Directive
}

// Parse resolves every directive of format against p.
func Parse(format string, p Platform) (*Template, error) {
	t := &Template{Format: format}
	s := NewScanner(format, p)
	for {
		d, ok, err := s.Next()
		if err != nil {
			return nil, err
		}
		if !ok {
			return t, nil
		}
		t.Directives = append(t.Directives, d)
	}
}

// String renders the template in canonical form, dropping unrecognized characters.
func (t *Template) String() string {
	var b strings.Builder
	for _, d := range t.Directives {
		b.WriteString(d.String())
	}
	return b.String()
}
