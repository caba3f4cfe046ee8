package flash

import (
	"github.com/thermokit/fluidprop/engine"
	"github.com/thermokit/fluidprop/props"
)

// curveFor picks the saturation boundary for a quality flash. For a
// zeotropic mixture the bubble and dew curves differ; querying the
// nearer one keeps the interpolation anchored. The 0.5 threshold is a
// fixed tie-break inherited from the reference behavior.
func curveFor(q float64) engine.PhaseCurve {
	if q >= 0.5 {
		return engine.CurveDew
	}
	return engine.CurveBubble
}

// qualityByT synthesizes a (T,Q) flash from a saturation lookup at t.
func qualityByT(eng engine.Engine, t, q float64) (props.ThermoState, error) {
	sat, err := eng.SaturationT(t, curveFor(q))
	if err != nil {
		return props.ThermoState{}, err
	}
	return interpolate(eng, t, sat.Pressure, sat.LiquidDensity, sat.VaporDensity, q), nil
}

// qualityByP synthesizes a (P,Q) flash from a saturation lookup at p.
func qualityByP(eng engine.Engine, p, q float64) (props.ThermoState, error) {
	sat, err := eng.SaturationP(p, curveFor(q))
	if err != nil {
		return props.ThermoState{}, err
	}
	return interpolate(eng, sat.Temperature, p, sat.LiquidDensity, sat.VaporDensity, q), nil
}

// interpolate builds the two-phase state at quality q between the
// saturated liquid (density dl) and vapor (density dv) at t.
//
// Pressure is always the saturation pressure p, never recomputed from
// the interpolated density: for zeotropic mixtures a (T, D) property
// evaluation can drift off the saturation locus.
func interpolate(eng engine.Engine, t, p, dl, dv, q float64) props.ThermoState {
	if q <= 0 {
		st := eng.Properties(t, dl)
		st.Quality = 0
		st.Pressure = p
		return st
	}
	if q >= 1 {
		st := eng.Properties(t, dv)
		st.Quality = 1
		st.Pressure = p
		return st
	}

	liq := eng.Properties(t, dl)
	vap := eng.Properties(t, dv)

	lerp := func(a, b float64) float64 { return a*(1-q) + b*q }

	return props.ThermoState{
		Temperature: t,
		Pressure:    p,
		// Density mixes by specific volume, not linearly.
		Density:        1 / ((1-q)/dl + q/dv),
		Enthalpy:       lerp(liq.Enthalpy, vap.Enthalpy),
		Entropy:        lerp(liq.Entropy, vap.Entropy),
		Cv:             lerp(liq.Cv, vap.Cv),
		Cp:             lerp(liq.Cp, vap.Cp),
		SoundSpeed:     lerp(liq.SoundSpeed, vap.SoundSpeed),
		Quality:        q,
		InternalEnergy: lerp(liq.InternalEnergy, vap.InternalEnergy),
	}
}
