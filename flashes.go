package fluidprop

import (
	"github.com/thermokit/fluidprop/engine"
	"github.com/thermokit/fluidprop/flash"
	"github.com/thermokit/fluidprop/props"
	"github.com/thermokit/fluidprop/session"
)

// state runs one flash under the session, converting the inputs to the
// native basis first and the resulting snapshot back after.
func (f *Fluid) state(k1 props.Key, v1 float64, k2 props.Key, v2 float64) (props.ThermoState, error) {
	n1 := f.conv.KeyToNative(k1, v1)
	n2 := f.conv.KeyToNative(k2, v2)

	if err := flash.Validate(k1, n1, k2, n2); err != nil {
		return props.ThermoState{}, err
	}

	var st props.ThermoState
	err := session.With(f.id, f.configure, func() error {
		var err error
		st, err = flash.State(f.eng, k1, n1, k2, n2)
		return err
	})
	if err != nil {
		return props.ThermoState{}, err
	}
	return f.conv.ThermoFromNative(st), nil
}

// PropsTP resolves the state at temperature and pressure.
func (f *Fluid) PropsTP(t, p float64) (props.ThermoState, error) {
	return f.state(props.KeyTemperature, t, props.KeyPressure, p)
}

// PropsPH resolves the state at pressure and enthalpy.
func (f *Fluid) PropsPH(p, h float64) (props.ThermoState, error) {
	return f.state(props.KeyPressure, p, props.KeyEnthalpy, h)
}

// PropsPS resolves the state at pressure and entropy.
func (f *Fluid) PropsPS(p, s float64) (props.ThermoState, error) {
	return f.state(props.KeyPressure, p, props.KeyEntropy, s)
}

// PropsTQ resolves the two-phase state at temperature and quality.
func (f *Fluid) PropsTQ(t, q float64) (props.ThermoState, error) {
	return f.state(props.KeyTemperature, t, props.KeyQuality, q)
}

// PropsPQ resolves the two-phase state at pressure and quality.
func (f *Fluid) PropsPQ(p, q float64) (props.ThermoState, error) {
	return f.state(props.KeyPressure, p, props.KeyQuality, q)
}

// PropsTD resolves the state at temperature and density.
func (f *Fluid) PropsTD(t, d float64) (props.ThermoState, error) {
	return f.state(props.KeyTemperature, t, props.KeyDensity, d)
}

// PropsPD resolves the state at pressure and density.
func (f *Fluid) PropsPD(p, d float64) (props.ThermoState, error) {
	return f.state(props.KeyPressure, p, props.KeyDensity, d)
}

// PropsTH resolves the state at temperature and enthalpy.
func (f *Fluid) PropsTH(t, h float64) (props.ThermoState, error) {
	return f.state(props.KeyTemperature, t, props.KeyEnthalpy, h)
}

// PropsTS resolves the state at temperature and entropy.
func (f *Fluid) PropsTS(t, s float64) (props.ThermoState, error) {
	return f.state(props.KeyTemperature, t, props.KeyEntropy, s)
}

// PropsDH resolves the state at density and enthalpy.
func (f *Fluid) PropsDH(d, h float64) (props.ThermoState, error) {
	return f.state(props.KeyDensity, d, props.KeyEnthalpy, h)
}

// PropsDS resolves the state at density and entropy.
func (f *Fluid) PropsDS(d, s float64) (props.ThermoState, error) {
	return f.state(props.KeyDensity, d, props.KeyEntropy, s)
}

// PropsHS resolves the state at enthalpy and entropy.
func (f *Fluid) PropsHS(h, s float64) (props.ThermoState, error) {
	return f.state(props.KeyEnthalpy, h, props.KeyEntropy, s)
}

// SaturationT returns the bubble-curve saturation state at temperature
// t.
func (f *Fluid) SaturationT(t float64) (props.SaturationState, error) {
	nt := f.conv.TempToNative(t)
	if err := flash.ValidateValue(props.KeyTemperature, nt); err != nil {
		return props.SaturationState{}, err
	}

	var sat props.SaturationState
	err := session.With(f.id, f.configure, func() error {
		var err error
		sat, err = f.eng.SaturationT(nt, engine.CurveBubble)
		return err
	})
	if err != nil {
		return props.SaturationState{}, err
	}
	return f.conv.SaturationFromNative(sat), nil
}

// SaturationP returns the bubble-curve saturation state at pressure p.
func (f *Fluid) SaturationP(p float64) (props.SaturationState, error) {
	np := f.conv.PressureToNative(p)
	if err := flash.ValidateValue(props.KeyPressure, np); err != nil {
		return props.SaturationState{}, err
	}

	var sat props.SaturationState
	err := session.With(f.id, f.configure, func() error {
		var err error
		sat, err = f.eng.SaturationP(np, engine.CurveBubble)
		return err
	})
	if err != nil {
		return props.SaturationState{}, err
	}
	return f.conv.SaturationFromNative(sat), nil
}

// Transport returns viscosity and thermal conductivity at temperature
// and density.
func (f *Fluid) Transport(t, d float64) (props.Transport, error) {
	nt := f.conv.TempToNative(t)
	nd := f.conv.DensityToNative(d)
	if err := flash.ValidateValue(props.KeyTemperature, nt); err != nil {
		return props.Transport{}, err
	}
	if err := flash.ValidateValue(props.KeyDensity, nd); err != nil {
		return props.Transport{}, err
	}

	var tr props.Transport
	err := session.With(f.id, f.configure, func() error {
		var err error
		tr, err = f.eng.Transport(nt, nd)
		return err
	})
	if err != nil {
		return props.Transport{}, err
	}
	return props.Transport{
		Viscosity:    f.conv.ViscosityFromNative(tr.Viscosity),
		Conductivity: f.conv.ConductivityFromNative(tr.Conductivity),
	}, nil
}

// CriticalPoint returns the critical constants in the handle's units.
func (f *Fluid) CriticalPoint() (props.CriticalPoint, error) {
	var cp props.CriticalPoint
	err := session.With(f.id, f.configure, func() error {
		var err error
		cp, err = f.eng.CriticalPoint()
		return err
	})
	if err != nil {
		return props.CriticalPoint{}, err
	}
	return props.CriticalPoint{
		Temperature: f.conv.TempFromNative(cp.Temperature),
		Pressure:    f.conv.PressureFromNative(cp.Pressure),
		Density:     f.conv.DensityFromNative(cp.Density),
	}, nil
}

// Info returns the intrinsic constants of the i-th component (1-based)
// of the configuration. Static data is always in the engine's native
// basis, never unit-converted.
func (f *Fluid) Info(component int) (props.FluidInfo, error) {
	var info props.FluidInfo
	err := session.With(f.id, f.configure, func() error {
		info = f.eng.Info(component)
		return nil
	})
	return info, err
}
