package errors

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Phase indicates where in the bridge the error occurred
type Phase string

const (
	PhaseValidate  Phase = "validate"  // local argument validation
	PhaseInvoke    Phase = "invoke"    // command invocation
	PhaseTransport Phase = "transport" // wire transport
	PhaseEvent     Phase = "event"     // event subscription and emission
	PhaseResource  Phase = "resource"  // resource handle lifecycle
	PhaseDecode    Phase = "decode"    // response decoding
)

// Kind categorizes the error
type Kind string

const (
	KindInvalidVariant Kind = "invalid_variant"
	KindInvalidInput   Kind = "invalid_input"
	KindHost           Kind = "host"
	KindClosed         Kind = "closed"
	KindDecode         Kind = "decode"
	KindNotFound       Kind = "not_found"
)

// Error is the structured error type used throughout the bridge
type Error struct {
	Cause  error
	Phase  Phase
	Kind   Kind
	Cmd    string
	Detail string
	Raw    json.RawMessage
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Cmd != "" {
		b.WriteString(" at ")
		b.WriteString(e.Cmd)
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

// Cmd sets the command name
func (b *Builder) Cmd(cmd string) *Builder {
	b.err.Cmd = cmd
	return b
}

// Raw attaches the raw host payload
func (b *Builder) Raw(raw json.RawMessage) *Builder {
	b.err.Raw = raw
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

// Host creates an error from a host-signaled failure. The payload is
// host-defined: a JSON string or a structured value.
func Host(cmd string, raw json.RawMessage) *Error {
	detail := string(raw)
	var s string
	if json.Unmarshal(raw, &s) == nil {
		detail = s
	}
	return &Error{
		Phase:  PhaseInvoke,
		Kind:   KindHost,
		Cmd:    cmd,
		Detail: detail,
		Raw:    raw,
	}
}

// InvalidVariant creates an error for a value that is not one of the
// recognized tagged variants.
func InvalidVariant(cmd, detail string) *Error {
	return &Error{
		Phase:  PhaseValidate,
		Kind:   KindInvalidVariant,
		Cmd:    cmd,
		Detail: detail,
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

// Closed creates an error for an operation on a closed bridge or transport
func Closed(op string) *Error {
	return &Error{
		Phase:  PhaseTransport,
		Kind:   KindClosed,
		Detail: op + " on closed bridge",
	}
}

// Decode creates a response decoding error
func Decode(cmd string, cause error) *Error {
	return &Error{
		Phase: PhaseDecode,
		Kind:  KindDecode,
		Cmd:   cmd,
		Cause: cause,
	}
}

// Transport creates a transport-level error
func Transport(op string, cause error) *Error {
	return &Error{
		Phase:  PhaseTransport,
		Kind:   KindInvalidInput,
		Detail: op,
		Cause:  cause,
	}
}

// NotFound creates a not found error
func NotFound(phase Phase, what string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindNotFound,
		Detail: what,
	}
}
