package template

import (
	"math"

	"github.com/wippyai/binpack/errors"
)

// Scanner yields the directives of a format one at a time.
type Scanner struct {
	format   string
	platform Platform
	pos      int
}

// NewScanner creates a scanner over format for the given platform.
func NewScanner(format string, p Platform) *Scanner {
	return &Scanner{format: format, platform: p}
}

// Next returns the next directive. The boolean is false once the format is exhausted.
func (s *Scanner) Next() (Directive, bool, error) {
	if s.pos >= len(s.format) {
		return Directive{}, false, nil
	}

	start := s.pos
	src := s.format[s.pos]
	s.pos++

	canon, err := resolve(src, s.platform)
	if err != nil {
		return Directive{}, false, errors.At(err, Directive{Source: src, Pos: start}.Location())
	}

	e := directives[canon]
	d := Directive{
		Char:   canon,
		Source: src,
		Op:     e.op,
		Elem:   e.elem,
		Width:  e.width,
		Count:  1,
		Flags:  e.flags,
		Pos:    start,
	}

loop:
	for s.pos < len(s.format) {
		c := s.format[s.pos]
		switch {
		case c >= '0' && c <= '9':
			n, err := s.count()
			if err != nil {
				return Directive{}, false, errors.At(err, d.Location())
			}
			d.Count = n
			continue
		case c == '*':
			d.Count = ToEnd
		case c == '_' || c == '!' || c == '<' || c == '>':
			if !allowsModifier(src) {
				return Directive{}, false, errors.At(errors.SuffixNotAllowed(c, modifierTypes), d.Location())
			}
			switch c {
			case '<':
				d.Flags |= FlagLittleEndian
			case '>':
				d.Flags |= FlagBigEndian
			default:
				d.Flags |= FlagNativeSize
			}
		default:
			break loop
		}
		s.pos++
	}

	if d.Flags.Has(FlagNativeSize) && (src == 'L' || src == 'l') {
		switch s.platform.LongSize {
		case 4:
		case 8:
			d.Op, d.Width = OpInt8, 8
		default:
			return Directive{}, false, errors.At(errors.UnsupportedPlatform("long", s.platform.LongSize), d.Location())
		}
	}

	d.LittleEndian = d.Flags.Has(FlagLittleEndian) ||
		(!d.Flags.Has(FlagBigEndian) && s.platform.LittleEndian)

	return d, true, nil
}

// count reads a run of digits, rejecting values that do not fit in 31 bits.
func (s *Scanner) count() (int, error) {
	start := s.pos
	n := 0
	for s.pos < len(s.format) {
		c := s.format[s.pos]
		if c < '0' || c > '9' {
			break
		}
		digit := int(c - '0')
		if n > (math.MaxInt32-digit)/10 {
			return 0, errors.TemplateTooLarge(s.format[start : s.pos+1])
		}
		n = n*10 + digit
		s.pos++
	}
	return n, nil
}
