package units

// Temp is a temperature unit.
type Temp int

const (
	Kelvin Temp = iota // native
	Celsius
	Fahrenheit
)

// Pressure is a pressure unit.
type Pressure int

const (
	KPa Pressure = iota // native
	Bar
	MPa
	Pa
	Atm
	Psi
)

// Density is a density unit.
type Density int

const (
	MolPerL Density = iota // native
	KgPerM3                // requires molar mass
)

// Energy is an enthalpy / internal-energy unit.
type Energy int

const (
	JPerMol Energy = iota // native
	KJPerKg               // requires molar mass
	JPerKg                // requires molar mass
)

// Entropy is an entropy / heat-capacity unit.
type Entropy int

const (
	JPerMolK Entropy = iota // native
	KJPerKgK                // requires molar mass
	JPerKgK                 // requires molar mass
)

// Viscosity is a dynamic viscosity unit.
type Viscosity int

const (
	MicroPaS Viscosity = iota // native
	MilliPaS
	PaS
)

// Conductivity is a thermal conductivity unit.
type Conductivity int

const (
	WPerMK Conductivity = iota // native
	MilliWPerMK
)

// UnitSystem records the unit the caller works in for each quantity
// class. The zero value is the native basis. Values are immutable; the
// With* builder methods return modified copies.
type UnitSystem struct {
	Temperature  Temp
	Pressure     Pressure
	Density      Density
	Energy       Energy
	Entropy      Entropy
	Viscosity    Viscosity
	Conductivity Conductivity
}

// Native returns the engine's own basis: K, kPa, mol/L, J/mol,
// J/(mol*K), uPa*s, W/(m*K).
func Native() UnitSystem {
	return UnitSystem{}
}

// Engineering returns the HVAC basis: degC, bar, kg/m3, kJ/kg,
// kJ/(kg*K).
func Engineering() UnitSystem {
	return UnitSystem{
		Temperature: Celsius,
		Pressure:    Bar,
		Density:     KgPerM3,
		Energy:      KJPerKg,
		Entropy:     KJPerKgK,
	}
}

// SI returns the strict SI basis: K, Pa, kg/m3, J/kg, J/(kg*K), Pa*s.
func SI() UnitSystem {
	return UnitSystem{
		Pressure:  Pa,
		Density:   KgPerM3,
		Energy:    JPerKg,
		Entropy:   JPerKgK,
		Viscosity: PaS,
	}
}

// Builder methods; each overrides a single quantity class.

func (u UnitSystem) WithTemperature(t Temp) UnitSystem { u.Temperature = t; return u }

func (u UnitSystem) WithPressure(p Pressure) UnitSystem { u.Pressure = p; return u }

func (u UnitSystem) WithDensity(d Density) UnitSystem { u.Density = d; return u }

func (u UnitSystem) WithEnergy(e Energy) UnitSystem { u.Energy = e; return u }

func (u UnitSystem) WithEntropy(e Entropy) UnitSystem { u.Entropy = e; return u }

func (u UnitSystem) WithViscosity(v Viscosity) UnitSystem { u.Viscosity = v; return u }

func (u UnitSystem) WithConductivity(c Conductivity) UnitSystem { u.Conductivity = c; return u }
