// Package errors provides structured error types for property
// resolution. Every error carries a Phase (where it happened) and a
// Kind (what went wrong); errors.Is matches on that pair so callers
// can branch on taxonomy without string inspection. Engine failures
// additionally carry the native engine's signed status code verbatim.
package errors
