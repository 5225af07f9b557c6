package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseInit   Phase = "init"   // host probing
	PhaseParse  Phase = "parse"  // template parsing
	PhasePack   Phase = "pack"   // values to bytes
	PhaseUnpack Phase = "unpack" // bytes to values
	PhaseMemory Phase = "memory" // linear memory access
	PhaseSchema Phase = "schema" // layout loading and mapping
)

// Kind categorizes the error
type Kind string

const (
	KindArgument            Kind = "argument"
	KindSuffixNotAllowed    Kind = "suffix_not_allowed"
	KindRange               Kind = "range"
	KindType                Kind = "type"
	KindTemplateTooLarge    Kind = "template_too_large"
	KindUnsupportedPlatform Kind = "unsupported_platform"
	KindRuntime             Kind = "runtime"
	KindOutOfBounds         Kind = "out_of_bounds"
	KindInvalidInput        Kind = "invalid_input"
)

// Class is the host-level error class a Kind is reported as.
type Class string

const (
	ClassArgument Class = "ArgumentError"
	ClassRange    Class = "RangeError"
	ClassType     Class = "TypeError"
	ClassRuntime  Class = "RuntimeError"
)

// Class maps the kind onto its host error class.
func (k Kind) Class() Class {
	switch k {
	case KindRange:
		return ClassRange
	case KindType:
		return ClassType
	case KindTemplateTooLarge, KindUnsupportedPlatform, KindRuntime:
		return ClassRuntime
	default:
		return ClassArgument
	}
}

// Error is the structured error type used throughout binpack
type Error struct {
	Value  any
	Cause  error
	Phase  Phase
	Kind   Kind
	Detail string
	Path   []string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if len(e.Path) > 0 {
		b.WriteString(" at ")
		b.WriteString(strings.Join(e.Path, "."))
	}

	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Class returns the host error class of the error's kind.
func (e *Error) Class() Class {
	return e.Kind.Class()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error.
// The phase is compared only when the target sets one.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	if t.Phase != "" && t.Phase != e.Phase {
		return false
	}
	return e.Kind == t.Kind
}

// IsKind reports whether any error in err's chain is an *Error of the given kind.
func IsKind(err error, kind Kind) bool {
	var e *Error
	if !errors.As(err, &e) {
		return false
	}
	return e.Kind == kind
}

// ClassOf returns the host error class of err, or "" when err is not an *Error.
func ClassOf(err error) Class {
	var e *Error
	if !errors.As(err, &e) {
		return ""
	}
	return e.Class()
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// Path sets the location path
func (b *Builder) Path(path ...string) *Builder {
	b.err.Path = path
	return b
}

// Value sets the offending value
func (b *Builder) Value(v any) *Builder {
	b.err.Value = v
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// Argument creates an ArgumentError-class error
func Argument(phase Phase, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindArgument,
		Detail: detail,
	}
}

// Range creates a RangeError-class error
func Range(phase Phase, value any, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindRange,
		Detail: detail,
		Value:  value,
	}
}

// Type creates a TypeError-class error
func Type(phase Phase, value any, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindType,
		Detail: detail,
		Value:  value,
	}
}

// SuffixNotAllowed reports a modifier used after a directive that does not accept it.
func SuffixNotAllowed(suffix byte, allowed string) *Error {
	return &Error{
		Phase:  PhaseParse,
		Kind:   KindSuffixNotAllowed,
		Detail: fmt.Sprintf("'%c' allowed only after types %s", suffix, allowed),
		Value:  string(suffix),
	}
}

// TemplateTooLarge reports a count suffix that overflows.
func TemplateTooLarge(digits string) *Error {
	return &Error{
		Phase:  PhaseParse,
		Kind:   KindTemplateTooLarge,
		Detail: "too big template length",
		Value:  digits,
	}
}

// UnsupportedPlatform reports a native width the codec cannot map to a directive.
func UnsupportedPlatform(what string, size int) *Error {
	return &Error{
		Phase:  PhaseParse,
		Kind:   KindUnsupportedPlatform,
		Detail: fmt.Sprintf("binpack does not support sizeof(%s) == %d", what, size),
		Value:  size,
	}
}

// Runtime creates an internal-invariant error
func Runtime(phase Phase, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindRuntime,
		Detail: detail,
	}
}

// OutOfBounds creates an out of bounds error
func OutOfBounds(phase Phase, offset, length, size uint64) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindOutOfBounds,
		Detail: fmt.Sprintf("range [%d, %d) out of bounds (size %d)", offset, offset+length, size),
		Value:  offset,
	}
}

// InvalidInput creates an invalid input error
func InvalidInput(phase Phase, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidInput,
		Detail: detail,
	}
}

// Wrap wraps an existing error with additional context
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   kind,
		Detail: detail,
		Cause:  cause,
	}
}

// At returns a copy of err with path prefixed, leaving non-*Error values untouched.
func At(err error, path ...string) error {
	var e *Error
	if !errors.As(err, &e) {
		return err
	}
	cp := *e
	cp.Path = append(append([]string(nil), path...), e.Path...)
	return &cp
}
