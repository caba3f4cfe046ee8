package flash

import (
	"math"

	"github.com/thermokit/fluidprop/engine"
	"github.com/thermokit/fluidprop/errors"
	"github.com/thermokit/fluidprop/props"
)

// SupportedPairs names every accepted constraint pair, for error
// messages.
const SupportedPairs = "(T,P) (T,D) (T,H) (T,S) (T,Q) (P,D) (P,H) (P,S) (P,Q) (D,H) (D,S) (H,S)"

type pair struct{ a, b props.Key }

// primitives maps each supported non-quality pair, in the argument
// order the engine primitive requires, to that primitive.
var primitives = map[pair]engine.Primitive{
	{props.KeyTemperature, props.KeyPressure}: engine.FlashTP,
	{props.KeyTemperature, props.KeyDensity}:  engine.FlashTD,
	{props.KeyTemperature, props.KeyEnthalpy}: engine.FlashTH,
	{props.KeyTemperature, props.KeyEntropy}:  engine.FlashTS,
	{props.KeyPressure, props.KeyDensity}:     engine.FlashPD,
	{props.KeyPressure, props.KeyEnthalpy}:    engine.FlashPH,
	{props.KeyPressure, props.KeyEntropy}:     engine.FlashPS,
	{props.KeyDensity, props.KeyEnthalpy}:     engine.FlashDH,
	{props.KeyDensity, props.KeyEntropy}:      engine.FlashDS,
	{props.KeyEnthalpy, props.KeyEntropy}:     engine.FlashHS,
}

// ValidateValue rejects a non-finite engine input, naming the key it
// was supplied for.
func ValidateValue(k props.Key, v float64) error {
	if !isFinite(v) {
		return errors.NonFinite(k.String(), v)
	}
	return nil
}

// Validate checks a constraint pair without touching the engine: both
// values must be finite and the pair must have a flash route. Callers
// that hold shared engine state run this before acquiring it, so a
// doomed request cannot reconfigure the engine first.
func Validate(k1 props.Key, v1 float64, k2 props.Key, v2 float64) error {
	if err := ValidateValue(k1, v1); err != nil {
		return err
	}
	if err := ValidateValue(k2, v2); err != nil {
		return err
	}
	if !supported(k1, k2) {
		return errors.UnsupportedPair(k1.String(), k2.String(), SupportedPairs)
	}
	return nil
}

func supported(k1, k2 props.Key) bool {
	if _, ok := primitives[pair{k1, k2}]; ok {
		return true
	}
	if _, ok := primitives[pair{k2, k1}]; ok {
		return true
	}
	switch (pair{k1, k2}) {
	case pair{props.KeyTemperature, props.KeyQuality},
		pair{props.KeyQuality, props.KeyTemperature},
		pair{props.KeyPressure, props.KeyQuality},
		pair{props.KeyQuality, props.KeyPressure}:
		return true
	}
	return false
}

// State resolves the unordered constraint pair (k1,v1),(k2,v2) to a
// full thermodynamic state. Validation happens before any engine call.
func State(eng engine.Engine, k1 props.Key, v1 float64, k2 props.Key, v2 float64) (props.ThermoState, error) {
	if err := Validate(k1, v1, k2, v2); err != nil {
		return props.ThermoState{}, err
	}

	if prim, ok := primitives[pair{k1, k2}]; ok {
		return eng.Flash(prim, v1, v2)
	}
	if prim, ok := primitives[pair{k2, k1}]; ok {
		return eng.Flash(prim, v2, v1)
	}

	switch (pair{k1, k2}) {
	case pair{props.KeyTemperature, props.KeyQuality}:
		return qualityByT(eng, v1, v2)
	case pair{props.KeyQuality, props.KeyTemperature}:
		return qualityByT(eng, v2, v1)
	case pair{props.KeyPressure, props.KeyQuality}:
		return qualityByP(eng, v1, v2)
	case pair{props.KeyQuality, props.KeyPressure}:
		return qualityByP(eng, v2, v1)
	}

	return props.ThermoState{}, errors.UnsupportedPair(k1.String(), k2.String(), SupportedPairs)
}

// Value resolves a constraint pair and extracts one output property.
// Transport outputs cost one extra engine evaluation at the resolved
// (T, D) state point.
func Value(eng engine.Engine, output props.Key, k1 props.Key, v1 float64, k2 props.Key, v2 float64) (float64, error) {
	st, err := State(eng, k1, v1, k2, v2)
	if err != nil {
		return 0, err
	}

	switch output {
	case props.KeyViscosity:
		tr, err := eng.Transport(st.Temperature, st.Density)
		if err != nil {
			return 0, err
		}
		return tr.Viscosity, nil
	case props.KeyConductivity:
		tr, err := eng.Transport(st.Temperature, st.Density)
		if err != nil {
			return 0, err
		}
		return tr.Conductivity, nil
	default:
		v, ok := st.Field(output)
		if !ok {
			return 0, errors.UnknownOutput(output.String(), "T P D H S Q CV CP W E ETA TCX")
		}
		return v, nil
	}
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
