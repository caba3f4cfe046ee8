package engine

import (
	"strings"

	"github.com/thermokit/fluidprop/errors"
	"github.com/thermokit/fluidprop/props"
)

// MaxComponents bounds the composition vector size accepted by the
// native engine.
const MaxComponents = 20

// PhaseCurve selects a saturation boundary. The numeric values match
// the native engine's phase flag.
type PhaseCurve int32

const (
	CurveBubble PhaseCurve = 1 // incipient vaporization (liquid saturated)
	CurveDew    PhaseCurve = 2 // incipient condensation (vapor saturated)
)

func (c PhaseCurve) String() string {
	switch c {
	case CurveBubble:
		return "bubble"
	case CurveDew:
		return "dew"
	default:
		return "unknown"
	}
}

// Primitive names one of the engine's flash procedures. The two
// letters give the argument order the primitive requires.
type Primitive int

const (
	FlashTP Primitive = iota
	FlashPH
	FlashPS
	FlashTD
	FlashPD
	FlashTH
	FlashTS
	FlashDH
	FlashDS
	FlashHS
)

func (p Primitive) String() string {
	switch p {
	case FlashTP:
		return "TP"
	case FlashPH:
		return "PH"
	case FlashPS:
		return "PS"
	case FlashTD:
		return "TD"
	case FlashPD:
		return "PD"
	case FlashTH:
		return "TH"
	case FlashTS:
		return "TS"
	case FlashDH:
		return "DH"
	case FlashDS:
		return "DS"
	case FlashHS:
		return "HS"
	default:
		return "invalid"
	}
}

// Config identifies one fluid configuration to push into the engine.
//
// Components lists component definition file names ("R134A.FLD"). A
// predefined mixture is expressed as a single ".MIX" entry with a nil
// Composition; the engine reads the composition from the mixture file.
type Config struct {
	Components  []string
	Composition []float64
}

// Mixture reports whether the config names a predefined mixture file.
func (c Config) Mixture() bool {
	return len(c.Components) == 1 && strings.HasSuffix(strings.ToUpper(c.Components[0]), ".MIX")
}

// Engine is the fixed primitive set the resolution layer consumes.
// Implementations are not safe for concurrent use; all access is
// serialized by the session package.
type Engine interface {
	// Configure pushes a fluid configuration into the engine,
	// replacing whatever was active before.
	Configure(cfg Config) error

	// Flash resolves a full state from the primitive's two ordered
	// arguments.
	Flash(prim Primitive, a, b float64) (props.ThermoState, error)

	// SaturationT returns the saturation locus at temperature t on the
	// selected curve.
	SaturationT(t float64, curve PhaseCurve) (props.SaturationState, error)

	// SaturationP returns the saturation locus at pressure p on the
	// selected curve.
	SaturationP(p float64, curve PhaseCurve) (props.SaturationState, error)

	// Properties evaluates all thermodynamic properties at (t, d).
	// There is no error path; out-of-range input produces a result
	// that may be physically meaningless.
	Properties(t, d float64) props.ThermoState

	// Transport returns viscosity and thermal conductivity at (t, d).
	Transport(t, d float64) (props.Transport, error)

	// CriticalPoint returns the critical constants of the active
	// configuration.
	CriticalPoint() (props.CriticalPoint, error)

	// MolarMass returns the composition-averaged molar mass of the
	// active configuration in g/mol.
	MolarMass() (float64, error)

	// Info returns the intrinsic constants of the i-th component of
	// the active configuration (1-based). There is no error path.
	Info(component int) props.FluidInfo
}

// CheckStatus maps a primitive's signed status code to the module's
// error convention: positive is a hard failure, negative is a warning
// that is logged but not surfaced, zero is success.
func CheckStatus(op string, code int32, message string) error {
	if code > 0 {
		return errors.EngineFailure(op, code, message)
	}
	if code < 0 {
		Logger().Sugar().Warnf("engine warning in %s (code %d): %s", op, code, message)
	}
	return nil
}
