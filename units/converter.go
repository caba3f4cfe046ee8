package units

import "github.com/thermokit/fluidprop/props"

const (
	kPaPerAtm = 101.325
	kPaPerPsi = 6.894757
)

// Converter performs conversions between a caller basis and the
// engine's native basis. MolarMass is the mixture-averaged molar mass
// in g/mol; it must be strictly positive for any mass-based unit.
type Converter struct {
	Units     UnitSystem
	MolarMass float64
}

// NewConverter combines a unit system with a molar mass.
func NewConverter(u UnitSystem, molarMass float64) *Converter {
	return &Converter{Units: u, MolarMass: molarMass}
}

// Identity returns a converter that performs no conversion at all.
// Molar mass is 1 so mass-based formulas remain formally valid.
func Identity() *Converter {
	return &Converter{Units: Native(), MolarMass: 1}
}

// Temperature

func (c *Converter) TempToNative(t float64) float64 {
	switch c.Units.Temperature {
	case Celsius:
		return t + 273.15
	case Fahrenheit:
		return (t-32)*5/9 + 273.15
	default:
		return t
	}
}

func (c *Converter) TempFromNative(t float64) float64 {
	switch c.Units.Temperature {
	case Celsius:
		return t - 273.15
	case Fahrenheit:
		return (t-273.15)*9/5 + 32
	default:
		return t
	}
}

// Pressure

func (c *Converter) PressureToNative(p float64) float64 {
	switch c.Units.Pressure {
	case Bar:
		return p * 100
	case MPa:
		return p * 1000
	case Pa:
		return p / 1000
	case Atm:
		return p * kPaPerAtm
	case Psi:
		return p * kPaPerPsi
	default:
		return p
	}
}

func (c *Converter) PressureFromNative(p float64) float64 {
	switch c.Units.Pressure {
	case Bar:
		return p / 100
	case MPa:
		return p / 1000
	case Pa:
		return p * 1000
	case Atm:
		return p / kPaPerAtm
	case Psi:
		return p / kPaPerPsi
	default:
		return p
	}
}

// Density

func (c *Converter) DensityToNative(d float64) float64 {
	if c.Units.Density == KgPerM3 {
		return d / c.MolarMass
	}
	return d
}

func (c *Converter) DensityFromNative(d float64) float64 {
	if c.Units.Density == KgPerM3 {
		return d * c.MolarMass
	}
	return d
}

// Energy (enthalpy, internal energy)

func (c *Converter) EnergyToNative(h float64) float64 {
	switch c.Units.Energy {
	case KJPerKg:
		return h * c.MolarMass
	case JPerKg:
		return h * c.MolarMass / 1000
	default:
		return h
	}
}

func (c *Converter) EnergyFromNative(h float64) float64 {
	switch c.Units.Energy {
	case KJPerKg:
		return h / c.MolarMass
	case JPerKg:
		return h * 1000 / c.MolarMass
	default:
		return h
	}
}

// Entropy (entropy, Cv, Cp)

func (c *Converter) EntropyToNative(s float64) float64 {
	switch c.Units.Entropy {
	case KJPerKgK:
		return s * c.MolarMass
	case JPerKgK:
		return s * c.MolarMass / 1000
	default:
		return s
	}
}

func (c *Converter) EntropyFromNative(s float64) float64 {
	switch c.Units.Entropy {
	case KJPerKgK:
		return s / c.MolarMass
	case JPerKgK:
		return s * 1000 / c.MolarMass
	default:
		return s
	}
}

// Viscosity

func (c *Converter) ViscosityToNative(eta float64) float64 {
	switch c.Units.Viscosity {
	case MilliPaS:
		return eta * 1000
	case PaS:
		return eta * 1e6
	default:
		return eta
	}
}

func (c *Converter) ViscosityFromNative(eta float64) float64 {
	switch c.Units.Viscosity {
	case MilliPaS:
		return eta / 1000
	case PaS:
		return eta / 1e6
	default:
		return eta
	}
}

// Thermal conductivity

func (c *Converter) ConductivityToNative(tcx float64) float64 {
	if c.Units.Conductivity == MilliWPerMK {
		return tcx / 1000
	}
	return tcx
}

func (c *Converter) ConductivityFromNative(tcx float64) float64 {
	if c.Units.Conductivity == MilliWPerMK {
		return tcx * 1000
	}
	return tcx
}

// ToNative converts a caller value of the given class to native units.
// ClassNone values (quality, sound speed) pass through unchanged.
func (c *Converter) ToNative(class props.Class, v float64) float64 {
	switch class {
	case props.ClassTemperature:
		return c.TempToNative(v)
	case props.ClassPressure:
		return c.PressureToNative(v)
	case props.ClassDensity:
		return c.DensityToNative(v)
	case props.ClassEnergy:
		return c.EnergyToNative(v)
	case props.ClassEntropy:
		return c.EntropyToNative(v)
	case props.ClassViscosity:
		return c.ViscosityToNative(v)
	case props.ClassConductivity:
		return c.ConductivityToNative(v)
	default:
		return v
	}
}

// FromNative converts a native value of the given class to caller
// units.
func (c *Converter) FromNative(class props.Class, v float64) float64 {
	switch class {
	case props.ClassTemperature:
		return c.TempFromNative(v)
	case props.ClassPressure:
		return c.PressureFromNative(v)
	case props.ClassDensity:
		return c.DensityFromNative(v)
	case props.ClassEnergy:
		return c.EnergyFromNative(v)
	case props.ClassEntropy:
		return c.EntropyFromNative(v)
	case props.ClassViscosity:
		return c.ViscosityFromNative(v)
	case props.ClassConductivity:
		return c.ConductivityFromNative(v)
	default:
		return v
	}
}

// KeyToNative converts an input value selected by property key.
func (c *Converter) KeyToNative(k props.Key, v float64) float64 {
	return c.ToNative(k.Class(), v)
}

// KeyFromNative converts an output value selected by property key.
func (c *Converter) KeyFromNative(k props.Key, v float64) float64 {
	return c.FromNative(k.Class(), v)
}

// ThermoFromNative converts a full state snapshot to caller units.
// Sound speed and quality are already basis-independent.
func (c *Converter) ThermoFromNative(s props.ThermoState) props.ThermoState {
	return props.ThermoState{
		Temperature:    c.TempFromNative(s.Temperature),
		Pressure:       c.PressureFromNative(s.Pressure),
		Density:        c.DensityFromNative(s.Density),
		Enthalpy:       c.EnergyFromNative(s.Enthalpy),
		Entropy:        c.EntropyFromNative(s.Entropy),
		Cv:             c.EntropyFromNative(s.Cv),
		Cp:             c.EntropyFromNative(s.Cp),
		SoundSpeed:     s.SoundSpeed,
		Quality:        s.Quality,
		InternalEnergy: c.EnergyFromNative(s.InternalEnergy),
	}
}

// SaturationFromNative converts a saturation snapshot to caller units.
func (c *Converter) SaturationFromNative(s props.SaturationState) props.SaturationState {
	return props.SaturationState{
		Temperature:   c.TempFromNative(s.Temperature),
		Pressure:      c.PressureFromNative(s.Pressure),
		LiquidDensity: c.DensityFromNative(s.LiquidDensity),
		VaporDensity:  c.DensityFromNative(s.VaporDensity),
	}
}
