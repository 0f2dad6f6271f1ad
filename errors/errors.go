package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseAlloc   Phase = "alloc"   // arena and record allocation
	PhaseWrap    Phase = "wrap"    // wrapper construction
	PhaseExtract Phase = "extract" // value extraction utilities
	PhaseState   Phase = "state"   // module state lifecycle
)

// Kind categorizes the error
type Kind string

const (
	KindAllocation   Kind = "allocation"
	KindUnsupported  Kind = "unsupported"
	KindClosed       Kind = "closed"
	KindInvalidInput Kind = "invalid_input"
	KindNotFound     Kind = "not_found"
)

// Error is the structured error type used throughout the library
type Error struct {
	Value  any
	Cause  error
	Phase  Phase
	Kind   Kind
	GoType string
	Detail string
	Key    uintptr
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Key != 0 {
		fmt.Fprintf(&b, " key %#x", e.Key)
	}

	if e.GoType != "" {
		b.WriteString(": Go type ")
		b.WriteString(e.GoType)
	}

	if e.Detail != "" {
		if e.GoType != "" {
			b.WriteString(" - ")
		} else {
			b.WriteString(": ")
		}
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

// Key sets the native record key involved
func (b *Builder) Key(key uintptr) *Builder {
	b.err.Key = key
	return b
}

// GoType sets the Go type name
func (b *Builder) GoType(t string) *Builder {
	b.err.GoType = t
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

// Unsupported creates an unsupported-type error
func Unsupported(phase Phase, goType string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindUnsupported,
		GoType: goType,
		Detail: "type not supported",
	}
}

// AllocationFailed creates an allocation failure error
func AllocationFailed(phase Phase, size uint64) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindAllocation,
		Detail: fmt.Sprintf("failed to allocate %d bytes", size),
	}
}

// ConstructionFailed wraps a wrapper-construction failure for a record key
func ConstructionFailed(key uintptr, cause error) *Error {
	return &Error{
		Phase:  PhaseWrap,
		Kind:   KindAllocation,
		Key:    key,
		Detail: "wrapper construction failed",
		Cause:  cause,
	}
}

// Closed creates an error for operations on a closed state
func Closed(phase Phase) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindClosed,
		Detail: "state is closed",
	}
}
