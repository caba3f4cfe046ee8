package errors

import (
	"errors"
	"strings"
	"testing"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		contains []string
	}{
		{
			name: "engine failure with code",
			err: &Error{
				Phase:  PhaseEngine,
				Kind:   KindEngineFailure,
				Op:     "flash TP",
				Code:   249,
				Detail: "temperature out of range",
			},
			contains: []string{"[engine]", "engine_failure", "flash TP", "temperature out of range", "code 249"},
		},
		{
			name: "minimal error",
			err: &Error{
				Phase: PhaseFlash,
				Kind:  KindUnsupportedPair,
			},
			contains: []string{"[flash]", "unsupported_pair"},
		},
		{
			name: "error with cause",
			err: &Error{
				Phase:  PhaseCache,
				Kind:   KindStorage,
				Detail: "insert result",
				Cause:  errors.New("disk full"),
			},
			contains: []string{"[cache]", "storage", "insert result", "caused by", "disk full"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !strings.Contains(msg, s) {
					t.Errorf("error message %q does not contain %q", msg, s)
				}
			}
		})
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := Storage("lookup", cause)

	if !errors.Is(errors.Unwrap(err), cause) {
		t.Error("errors.Unwrap did not return cause")
	}
}

func TestError_Is(t *testing.T) {
	err := UnsupportedPair("T", "T", "(T,P) (T,D)")

	if !errors.Is(err, &Error{Phase: PhaseFlash, Kind: KindUnsupportedPair}) {
		t.Error("expected match on phase and kind")
	}
	if errors.Is(err, &Error{Phase: PhaseEngine, Kind: KindUnsupportedPair}) {
		t.Error("unexpected match with different phase")
	}
	if errors.Is(err, errors.New("other")) {
		t.Error("unexpected match with plain error")
	}
}

func TestConstructors(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		phase    Phase
		kind     Kind
		contains string
	}{
		{"NotFound", NotFound(PhaseResolve, "fluid file", "R134A"), PhaseResolve, KindNotFound, `fluid file "R134A" not found`},
		{"InvalidInput", InvalidInput(PhaseResolve, "got %d components", 0), PhaseResolve, KindInvalidInput, "got 0 components"},
		{"NonFinite", NonFinite("pressure", 0), PhaseFlash, KindNonFinite, "pressure must be a finite number"},
		{"UnknownOutput", UnknownOutput("X", "T P D"), PhaseFlash, KindUnknownOutput, `unknown output property "X"`},
		{"EngineFailure", EngineFailure("saturation T", 1, "bad input"), PhaseEngine, KindEngineFailure, "bad input"},
		{"LockPoisoned", LockPoisoned(), PhaseSession, KindLockPoisoned, "poisoned"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Phase != tt.phase || tt.err.Kind != tt.kind {
				t.Errorf("got phase %q kind %q, want %q %q", tt.err.Phase, tt.err.Kind, tt.phase, tt.kind)
			}
			if !strings.Contains(tt.err.Error(), tt.contains) {
				t.Errorf("message %q does not contain %q", tt.err.Error(), tt.contains)
			}
		})
	}
}
