package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseParse  Phase = "parse"  // template scanning
	PhasePack   Phase = "pack"   // values to bytes
	PhaseUnpack Phase = "unpack" // bytes to values
)

// Kind categorizes the error
type Kind string

const (
	KindArgument Kind = "argument" // malformed input data or directive placement
	KindRange    Kind = "range"    // value outside the representable range
	KindType     Kind = "type"     // input value of the wrong type
	KindRuntime  Kind = "runtime"  // unsupported configuration or internal invariant violation
)

// Error is the structured error type used throughout the library
type Error struct {
	Value     any
	Cause     error
	Phase     Phase
	Kind      Kind
	Detail    string
	Directive byte
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Directive != 0 {
		b.WriteString(" at '")
		b.WriteByte(e.Directive)
		b.WriteString("'")
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

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
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

// Directive sets the template directive character the error concerns
func (b *Builder) Directive(c byte) *Builder {
	b.err.Directive = c
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

// Argument creates an argument error
func Argument(phase Phase, detail string, args ...any) *Error {
	if len(args) > 0 {
		detail = fmt.Sprintf(detail, args...)
	}
	return &Error{
		Phase:  phase,
		Kind:   KindArgument,
		Detail: detail,
	}
}

// Range creates a range error
func Range(phase Phase, detail string, args ...any) *Error {
	if len(args) > 0 {
		detail = fmt.Sprintf(detail, args...)
	}
	return &Error{
		Phase:  phase,
		Kind:   KindRange,
		Detail: detail,
	}
}

// Type creates a type error for a value that cannot serve a directive
func Type(phase Phase, value any, want string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindType,
		Detail: fmt.Sprintf("can't convert %s into %s", typeName(value), want),
		Value:  value,
	}
}

// Runtime creates a runtime error
func Runtime(phase Phase, detail string, args ...any) *Error {
	if len(args) > 0 {
		detail = fmt.Sprintf(detail, args...)
	}
	return &Error{
		Phase:  phase,
		Kind:   KindRuntime,
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

// IsArgument reports whether err is an argument error from any phase
func IsArgument(err error) bool { return isKind(err, KindArgument) }

// IsRange reports whether err is a range error from any phase
func IsRange(err error) bool { return isKind(err, KindRange) }

// IsType reports whether err is a type error from any phase
func IsType(err error) bool { return isKind(err, KindType) }

// IsRuntime reports whether err is a runtime error from any phase
func IsRuntime(err error) bool { return isKind(err, KindRuntime) }

func isKind(err error, kind Kind) bool {
	for err != nil {
		if e, ok := err.(*Error); ok {
			return e.Kind == kind
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			return false
		}
		err = u.Unwrap()
	}
	return false
}

func typeName(value any) string {
	if value == nil {
		return "nil"
	}
	return fmt.Sprintf("%T", value)
}
