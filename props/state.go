package props

// ThermoState is the full state snapshot produced by one flash or
// interpolation. Quality is the molar vapor fraction; values outside
// [0,1] denote a single-phase state.
type ThermoState struct {
	Temperature    float64 // K
	Pressure       float64 // kPa
	Density        float64 // mol/L
	Enthalpy       float64 // J/mol
	Entropy        float64 // J/(mol*K)
	Cv             float64 // J/(mol*K)
	Cp             float64 // J/(mol*K)
	SoundSpeed     float64 // m/s
	Quality        float64
	InternalEnergy float64 // J/mol
}

// TwoPhase reports whether the state lies inside the vapor-liquid dome.
func (s ThermoState) TwoPhase() bool {
	return s.Quality >= 0 && s.Quality <= 1
}

// Field selects a state field by key. Transport keys are not state
// fields and report false; the dispatcher resolves them with an extra
// engine call.
func (s ThermoState) Field(k Key) (float64, bool) {
	switch k {
	case KeyTemperature:
		return s.Temperature, true
	case KeyPressure:
		return s.Pressure, true
	case KeyDensity:
		return s.Density, true
	case KeyEnthalpy:
		return s.Enthalpy, true
	case KeyEntropy:
		return s.Entropy, true
	case KeyQuality:
		return s.Quality, true
	case KeyCv:
		return s.Cv, true
	case KeyCp:
		return s.Cp, true
	case KeySoundSpeed:
		return s.SoundSpeed, true
	case KeyInternalEnergy:
		return s.InternalEnergy, true
	default:
		return 0, false
	}
}

// SaturationState holds one saturation locus on the bubble or dew
// curve.
type SaturationState struct {
	Temperature   float64 // K
	Pressure      float64 // kPa
	LiquidDensity float64 // mol/L
	VaporDensity  float64 // mol/L
}

// Transport holds transport properties at a (T, D) state point.
type Transport struct {
	Viscosity    float64 // uPa*s
	Conductivity float64 // W/(m*K)
}

// CriticalPoint holds the mixture critical constants.
type CriticalPoint struct {
	Temperature float64 // K
	Pressure    float64 // kPa
	Density     float64 // mol/L
}

// FluidInfo holds the intrinsic constants of one pure component.
// These describe the substance, not a state point, and are reported in
// the native basis regardless of any configured unit system.
type FluidInfo struct {
	MolarMass       float64 // g/mol
	TriplePointT    float64 // K
	BoilingPointT   float64 // K
	CriticalT       float64 // K
	CriticalP       float64 // kPa
	CriticalD       float64 // mol/L
	Compressibility float64 // critical Zc
	AcentricFactor  float64
	DipoleMoment    float64 // debye
	GasConstant     float64 // J/(mol*K)
}
