package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in property resolution the error occurred
type Phase string

const (
	PhaseResolve Phase = "resolve" // installation / fluid file discovery
	PhaseConvert Phase = "convert" // unit translation
	PhaseSession Phase = "session" // engine lock and configuration
	PhaseFlash   Phase = "flash"   // constraint dispatch and interpolation
	PhaseEngine  Phase = "engine"  // native engine primitives
	PhaseCache   Phase = "cache"   // result cache access
)

// Kind categorizes the error
type Kind string

const (
	KindNotFound        Kind = "not_found"
	KindInvalidInput    Kind = "invalid_input"
	KindNonFinite       Kind = "non_finite"
	KindUnsupportedPair Kind = "unsupported_pair"
	KindUnknownOutput   Kind = "unknown_output"
	KindOutOfBounds     Kind = "out_of_bounds"
	KindEngineFailure   Kind = "engine_failure"
	KindLockPoisoned    Kind = "lock_poisoned"
	KindStorage         Kind = "storage"
)

// Error is the structured error type used throughout the module.
// Code carries the native engine's signed status verbatim when the
// error originates from an engine primitive.
type Error struct {
	Cause  error
	Phase  Phase
	Kind   Kind
	Op     string
	Detail string
	Code   int32
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Op != "" {
		b.WriteString(" in ")
		b.WriteString(e.Op)
	}

	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}

	if e.Code != 0 {
		b.WriteString(fmt.Sprintf(" (code %d)", e.Code))
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

// Is reports whether target matches this error on Phase and Kind
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// Convenience constructors for common error patterns

// NotFound creates a not-found error
func NotFound(phase Phase, what, name string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindNotFound,
		Detail: fmt.Sprintf("%s %q not found", what, name),
	}
}

// InvalidInput creates an invalid input error
func InvalidInput(phase Phase, detail string, args ...any) *Error {
	if len(args) > 0 {
		detail = fmt.Sprintf(detail, args...)
	}
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidInput,
		Detail: detail,
	}
}

// NonFinite reports a numeric input that is NaN or infinite.
func NonFinite(name string, value float64) *Error {
	return &Error{
		Phase:  PhaseFlash,
		Kind:   KindNonFinite,
		Detail: fmt.Sprintf("%s must be a finite number, got %v", name, value),
	}
}

// UnsupportedPair reports a constraint-key pair with no flash route.
// The message names both keys and the full supported set.
func UnsupportedPair(key1, key2, supported string) *Error {
	return &Error{
		Phase:  PhaseFlash,
		Kind:   KindUnsupportedPair,
		Detail: fmt.Sprintf("unsupported input pair (%s, %s); supported: %s", key1, key2, supported),
	}
}

// UnknownOutput reports an unrecognized output property key.
func UnknownOutput(key, supported string) *Error {
	return &Error{
		Phase:  PhaseFlash,
		Kind:   KindUnknownOutput,
		Detail: fmt.Sprintf("unknown output property %q; supported: %s", key, supported),
	}
}

// OutOfBounds creates an out of bounds error
func OutOfBounds(phase Phase, detail string, args ...any) *Error {
	if len(args) > 0 {
		detail = fmt.Sprintf(detail, args...)
	}
	return &Error{
		Phase:  phase,
		Kind:   KindOutOfBounds,
		Detail: detail,
	}
}

// EngineFailure wraps a positive status code reported by a native
// engine primitive. The code and message are carried verbatim.
func EngineFailure(op string, code int32, message string) *Error {
	return &Error{
		Phase:  PhaseEngine,
		Kind:   KindEngineFailure,
		Op:     op,
		Code:   code,
		Detail: message,
	}
}

// LockPoisoned reports that the global engine session is unusable
// because a previous holder terminated abnormally inside the critical
// section. Fatal until the session is explicitly reset.
func LockPoisoned() *Error {
	return &Error{
		Phase:  PhaseSession,
		Kind:   KindLockPoisoned,
		Detail: "engine session is poisoned (a previous holder panicked); reset the session to continue",
	}
}

// Storage wraps a cache persistence failure.
func Storage(op string, cause error) *Error {
	return &Error{
		Phase: PhaseCache,
		Kind:  KindStorage,
		Op:    op,
		Cause: cause,
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
