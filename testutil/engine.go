package testutil

import (
	"math"
	"path"
	"strings"
	"sync"

	"github.com/thermokit/fluidprop/engine"
	"github.com/thermokit/fluidprop/props"
)

// Model constants of the analytic property surface. Exported so tests
// can assert against closed-form expectations.
const (
	GasConstant = 8.314462618 // J/(mol*K); with mol/L densities P comes out in kPa
	CvMolar     = 25.0        // J/(mol*K)
	CpMolar     = CvMolar + GasConstant
	Attraction  = 150.0 // J*L/mol^2, density dependence of H and U

	refT = 273.15 // K
	refD = 1.0    // mol/L
)

// componentInfo is the registry of pure components the fake knows.
var componentInfo = map[string]props.FluidInfo{
	"R134A": {MolarMass: 102.032, TriplePointT: 169.85, BoilingPointT: 247.08, CriticalT: 374.21, CriticalP: 4059.28, CriticalD: 4.9788, Compressibility: 0.260, AcentricFactor: 0.32684, DipoleMoment: 2.058, GasConstant: 8.314471},
	"R32":   {MolarMass: 52.024, TriplePointT: 136.34, BoilingPointT: 221.50, CriticalT: 351.26, CriticalP: 5782.0, CriticalD: 8.1500, Compressibility: 0.243, AcentricFactor: 0.2769, DipoleMoment: 1.978, GasConstant: 8.314471},
	"R125":  {MolarMass: 120.0214, TriplePointT: 172.52, BoilingPointT: 225.06, CriticalT: 339.17, CriticalP: 3617.7, CriticalD: 4.7790, Compressibility: 0.268, AcentricFactor: 0.3052, DipoleMoment: 1.563, GasConstant: 8.314471},
	"CO2":   {MolarMass: 44.0098, TriplePointT: 216.59, BoilingPointT: 194.69, CriticalT: 304.13, CriticalP: 7377.3, CriticalD: 10.6249, Compressibility: 0.274, AcentricFactor: 0.22394, DipoleMoment: 0, GasConstant: 8.314472},
}

// predefinedMixtures expands a .MIX file into components and molar
// composition, as the native engine would when reading the file.
var predefinedMixtures = map[string]engine.Config{
	"R407C": {
		Components:  []string{"R32.FLD", "R125.FLD", "R134A.FLD"},
		Composition: []float64{0.381110, 0.179558, 0.439332},
	},
}

type satKey struct {
	curve engine.PhaseCurve
	value float64
}

// Canned saturation loci, keyed by fluid name then (curve, T) or
// (curve, P). Values reproduce published reference data closely
// enough for scenario tests.
var cannedSatT = map[string]map[satKey]props.SaturationState{
	"R134A": {
		// 0 degC: psat 2.928 bar, 1295 kg/m3 liquid, 14.4 kg/m3 vapor.
		{engine.CurveBubble, 273.15}: {Temperature: 273.15, Pressure: 292.8, LiquidDensity: 12.6921, VaporDensity: 0.141132},
		{engine.CurveDew, 273.15}:    {Temperature: 273.15, Pressure: 292.8, LiquidDensity: 12.6921, VaporDensity: 0.141132},
	},
	"R407C": {
		// 20 degC glide: bubble 10.38 bar, dew 8.80 bar.
		{engine.CurveBubble, 293.15}: {Temperature: 293.15, Pressure: 1038.0, LiquidDensity: 13.30, VaporDensity: 0.520},
		{engine.CurveDew, 293.15}:    {Temperature: 293.15, Pressure: 880.0, LiquidDensity: 12.85, VaporDensity: 0.430},
	},
}

var cannedSatP = map[string]map[satKey]props.SaturationState{
	"R134A": {
		{engine.CurveBubble, 292.8}: {Temperature: 273.15, Pressure: 292.8, LiquidDensity: 12.6921, VaporDensity: 0.141132},
		{engine.CurveDew, 292.8}:    {Temperature: 273.15, Pressure: 292.8, LiquidDensity: 12.6921, VaporDensity: 0.141132},
	},
}

// Engine is the in-memory fake. The zero value is not usable; call
// New.
type Engine struct {
	mu sync.Mutex

	// Invocation counters, readable by tests.
	ConfigureCalls int
	FlashCalls     int
	SatCalls       int
	PropsCalls     int
	TransportCalls int

	// ConfigureErr, when set, is returned by the next Configure call.
	ConfigureErr error

	name        string // canned-data key: fluid or mixture name
	components  []string
	composition []float64
}

var _ engine.Engine = (*Engine)(nil)

func New() *Engine {
	return &Engine{}
}

// ActiveComponents returns the expanded component list of the active
// configuration.
func (e *Engine) ActiveComponents() []string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]string(nil), e.components...)
}

func (e *Engine) Configure(cfg engine.Config) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.ConfigureCalls++

	if e.ConfigureErr != nil {
		err := e.ConfigureErr
		e.ConfigureErr = nil
		return err
	}

	if cfg.Mixture() {
		name := componentName(cfg.Components[0])
		mix, ok := predefinedMixtures[name]
		if !ok {
			return engine.CheckStatus("configure", 101, "mixture file "+cfg.Components[0]+" not found")
		}
		e.name = name
		e.components = toNames(mix.Components)
		e.composition = mix.Composition
		return nil
	}

	names := toNames(cfg.Components)
	for _, n := range names {
		if _, ok := componentInfo[n]; !ok {
			return engine.CheckStatus("configure", 101, "fluid file "+n+".FLD not found")
		}
	}
	e.components = names
	e.composition = cfg.Composition
	if len(names) == 1 {
		e.name = names[0]
	} else {
		e.name = ""
	}
	return nil
}

func componentName(file string) string {
	base := path.Base(strings.ReplaceAll(file, "\\", "/"))
	base = strings.TrimSuffix(strings.ToUpper(base), ".MIX")
	return strings.TrimSuffix(base, ".FLD")
}

func toNames(files []string) []string {
	out := make([]string, len(files))
	for i, f := range files {
		out[i] = componentName(f)
	}
	return out
}

// state evaluates the analytic surface at (t, d).
func (e *Engine) state(t, d float64) props.ThermoState {
	m := e.molarMass()
	return props.ThermoState{
		Temperature:    t,
		Pressure:       d * GasConstant * t,
		Density:        d,
		Enthalpy:       CpMolar*t - Attraction*d,
		Entropy:        CvMolar*math.Log(t/refT) - GasConstant*math.Log(d/refD),
		Cv:             CvMolar,
		Cp:             CpMolar,
		SoundSpeed:     math.Sqrt(CpMolar / CvMolar * 1000 * GasConstant * t / m),
		Quality:        -1,
		InternalEnergy: CvMolar*t - Attraction*d,
	}
}

func (e *Engine) molarMass() float64 {
	var m float64
	for i, c := range e.components {
		z := 1.0
		if i < len(e.composition) {
			z = e.composition[i]
		}
		m += z * componentInfo[c].MolarMass
	}
	if m == 0 {
		m = 1
	}
	return m
}

func (e *Engine) Flash(prim engine.Primitive, a, b float64) (props.ThermoState, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.FlashCalls++

	var t, d float64
	switch prim {
	case engine.FlashTP:
		t, d = a, b/(GasConstant*a)
	case engine.FlashTD:
		t, d = a, b
	case engine.FlashPD:
		t, d = a/(GasConstant*b), b
	case engine.FlashPH:
		// Cp*t^2 - h*t - Attraction*p/R = 0, positive root.
		p, h := a, b
		t = (h + math.Sqrt(h*h+4*CpMolar*Attraction*p/GasConstant)) / (2 * CpMolar)
		d = p / (GasConstant * t)
	case engine.FlashPS:
		p, s := a, b
		lnT := (s + CvMolar*math.Log(refT) + GasConstant*math.Log(p/(GasConstant*refD))) / (CvMolar + GasConstant)
		t = math.Exp(lnT)
		d = p / (GasConstant * t)
	case engine.FlashTH:
		t = a
		d = (CpMolar*a - b) / Attraction
		if d <= 0 {
			return props.ThermoState{}, engine.CheckStatus("flash TH", 240, "enthalpy out of range for temperature")
		}
	case engine.FlashTS:
		t = a
		d = refD * math.Exp((CvMolar*math.Log(a/refT)-b)/GasConstant)
	case engine.FlashDH:
		d = a
		t = (b + Attraction*a) / CpMolar
	case engine.FlashDS:
		d = a
		t = refT * math.Exp((b+GasConstant*math.Log(a/refD))/CvMolar)
	case engine.FlashHS:
		h, s := a, b
		d = refD
		for i := 0; i < 64; i++ {
			t = (h + Attraction*d) / CpMolar
			d = refD * math.Exp((CvMolar*math.Log(t/refT)-s)/GasConstant)
		}
		t = (h + Attraction*d) / CpMolar
	default:
		return props.ThermoState{}, engine.CheckStatus("flash", 1, "unknown primitive")
	}

	if t <= 0 || d <= 0 || math.IsNaN(t) || math.IsNaN(d) {
		return props.ThermoState{}, engine.CheckStatus("flash "+prim.String(), 249, "state out of range")
	}
	return e.state(t, d), nil
}

// glide applies a crude zeotropic split to the analytic saturation
// pressure when more than one component is active.
func (e *Engine) glide(curve engine.PhaseCurve) float64 {
	if len(e.components) <= 1 {
		return 1
	}
	if curve == engine.CurveBubble {
		return 1.05
	}
	return 0.95
}

// critical returns mole-averaged pseudo-critical constants.
func (e *Engine) critical() (tc, pc, dc float64) {
	for i, c := range e.components {
		z := 1.0
		if i < len(e.composition) {
			z = e.composition[i]
		}
		info := componentInfo[c]
		tc += z * info.CriticalT
		pc += z * info.CriticalP
		dc += z * info.CriticalD
	}
	if tc == 0 {
		tc, pc, dc = 300, 4000, 5
	}
	return tc, pc, dc
}

func (e *Engine) SaturationT(t float64, curve engine.PhaseCurve) (props.SaturationState, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.SatCalls++

	if canned, ok := cannedSatT[e.name][satKey{curve, t}]; ok {
		return canned, nil
	}

	tc, pc, dc := e.critical()
	if t <= 0 || t >= tc {
		return props.SaturationState{}, engine.CheckStatus("saturation T", 121, "temperature outside saturation range")
	}
	p := pc * math.Exp(7*(1-tc/t)) * e.glide(curve)
	return props.SaturationState{
		Temperature:   t,
		Pressure:      p,
		LiquidDensity: 3 * dc * (1 + math.Cbrt(1-t/tc)),
		VaporDensity:  p / (GasConstant * t),
	}, nil
}

func (e *Engine) SaturationP(p float64, curve engine.PhaseCurve) (props.SaturationState, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.SatCalls++

	if canned, ok := cannedSatP[e.name][satKey{curve, p}]; ok {
		return canned, nil
	}

	tc, pc, dc := e.critical()
	arg := math.Log(p / e.glide(curve) / pc)
	if p <= 0 || arg >= 0 {
		return props.SaturationState{}, engine.CheckStatus("saturation P", 141, "pressure outside saturation range")
	}
	t := tc / (1 - arg/7)
	return props.SaturationState{
		Temperature:   t,
		Pressure:      p,
		LiquidDensity: 3 * dc * (1 + math.Cbrt(1-t/tc)),
		VaporDensity:  p / (GasConstant * t),
	}, nil
}

func (e *Engine) Properties(t, d float64) props.ThermoState {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.PropsCalls++
	return e.state(t, d)
}

func (e *Engine) Transport(t, d float64) (props.Transport, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.TransportCalls++

	if t <= 0 {
		return props.Transport{}, engine.CheckStatus("transport", 301, "temperature out of range")
	}
	return props.Transport{
		Viscosity:    10 + 0.05*t + 0.8*d,
		Conductivity: 0.005 + 5e-5*t + 1e-3*d,
	}, nil
}

func (e *Engine) MolarMass() (float64, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if len(e.components) == 0 {
		return 0, engine.CheckStatus("molar mass", 1, "no active configuration")
	}
	return e.molarMass(), nil
}

func (e *Engine) CriticalPoint() (props.CriticalPoint, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	tc, pc, dc := e.critical()
	return props.CriticalPoint{Temperature: tc, Pressure: pc, Density: dc}, nil
}

func (e *Engine) Info(component int) props.FluidInfo {
	e.mu.Lock()
	defer e.mu.Unlock()

	if component < 1 || component > len(e.components) {
		return props.FluidInfo{}
	}
	return componentInfo[e.components[component-1]]
}
