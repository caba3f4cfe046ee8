package fluidprop

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/thermokit/fluidprop/cache"
	"github.com/thermokit/fluidprop/engine"
	"github.com/thermokit/fluidprop/errors"
	"github.com/thermokit/fluidprop/native"
	"github.com/thermokit/fluidprop/session"
	"github.com/thermokit/fluidprop/units"
)

// Component is one constituent of a custom mixture. Fraction is the
// molar fraction; fractions are passed to the engine as given, without
// re-normalization.
type Component struct {
	Name     string
	Fraction float64
}

// Option adjusts Fluid construction.
type Option func(*options)

type options struct {
	eng   engine.Engine
	path  string
	store *cache.Store
}

// WithEngine injects an engine directly, bypassing installation
// discovery and the registered driver.
func WithEngine(eng engine.Engine) Option {
	return func(o *options) { o.eng = eng }
}

// WithPath pins the engine installation directory, skipping discovery.
func WithPath(dir string) Option {
	return func(o *options) { o.path = dir }
}

// WithCache attaches a persistent result cache consulted by Get.
func WithCache(store *cache.Store) Option {
	return func(o *options) { o.store = store }
}

// Fluid is a handle on one fluid configuration. Handles share the
// process-global engine session; all methods are safe for concurrent
// use.
type Fluid struct {
	name  string
	eng   engine.Engine
	id    uint64
	cfg   engine.Config
	conv  *units.Converter
	store *cache.Store
	print string
}

// New loads a pure fluid or predefined mixture by name, in native
// units.
func New(name string, opts ...Option) (*Fluid, error) {
	return WithUnits(name, units.Native(), opts...)
}

// WithUnits loads a pure fluid or predefined mixture by name, with all
// inputs and outputs in the given unit system.
func WithUnits(name string, u units.UnitSystem, opts ...Option) (*Fluid, error) {
	o := gather(opts)

	eng, dir, err := o.engine()
	if err != nil {
		return nil, err
	}

	var cfg engine.Config
	if dir == "" {
		// Injected engine, no installation tree to consult: map the
		// name by convention and let the engine reject unknowns.
		cfg = configByName(name)
	} else {
		cfg, err = native.ResolveFluid(dir, name)
		if err != nil {
			return nil, err
		}
	}

	return newFluid(name, eng, cfg, u, o.store)
}

// Mixture loads a custom mixture from components and molar fractions,
// in native units.
func Mixture(components []Component, opts ...Option) (*Fluid, error) {
	return MixtureWithUnits(components, units.Native(), opts...)
}

// MixtureWithUnits loads a custom mixture with all inputs and outputs
// in the given unit system.
func MixtureWithUnits(components []Component, u units.UnitSystem, opts ...Option) (*Fluid, error) {
	if len(components) == 0 || len(components) > engine.MaxComponents {
		return nil, errors.OutOfBounds(errors.PhaseResolve,
			"component count %d outside 1..%d", len(components), engine.MaxComponents)
	}

	names := make([]string, len(components))
	fractions := make([]float64, len(components))
	for i, c := range components {
		if c.Name == "" {
			return nil, errors.InvalidInput(errors.PhaseResolve, "component %d has no name", i+1)
		}
		if math.IsNaN(c.Fraction) || math.IsInf(c.Fraction, 0) || c.Fraction <= 0 {
			return nil, errors.InvalidInput(errors.PhaseResolve,
				"component %s has non-positive fraction %v", c.Name, c.Fraction)
		}
		names[i] = c.Name
		fractions[i] = c.Fraction
	}

	o := gather(opts)
	eng, _, err := o.engine()
	if err != nil {
		return nil, err
	}

	cfg := engine.Config{
		Components:  native.ComponentFiles(names),
		Composition: fractions,
	}
	return newFluid(strings.Join(names, "/"), eng, cfg, u, o.store)
}

func gather(opts []Option) *options {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// engine returns the engine to use and, when discovery ran, the
// installation directory for fluid file resolution.
func (o *options) engine() (engine.Engine, string, error) {
	if o.eng != nil {
		return o.eng, "", nil
	}
	dir := o.path
	if dir == "" {
		var err error
		dir, err = native.FindInstallPath()
		if err != nil {
			return nil, "", err
		}
	}
	eng, err := engine.Open(dir)
	if err != nil {
		return nil, "", err
	}
	return eng, dir, nil
}

func configByName(name string) engine.Config {
	upper := strings.ToUpper(name)
	if strings.HasSuffix(upper, ".MIX") {
		return engine.Config{Components: []string{name}}
	}
	upper = strings.TrimSuffix(upper, ".FLD")
	return engine.Config{
		Components:  []string{upper + ".FLD"},
		Composition: []float64{1},
	}
}

func newFluid(name string, eng engine.Engine, cfg engine.Config, u units.UnitSystem, store *cache.Store) (*Fluid, error) {
	f := &Fluid{
		name:  name,
		eng:   eng,
		id:    session.NextID(),
		cfg:   cfg,
		store: store,
		print: fingerprint(cfg),
	}

	// Configure once up front and read the mixture molar mass; mass
	// based unit systems need it for every conversion.
	var mm float64
	err := session.With(f.id, f.configure, func() error {
		var err error
		mm, err = eng.MolarMass()
		return err
	})
	if err != nil {
		return nil, err
	}

	f.conv = units.NewConverter(u, mm)
	return f, nil
}

func (f *Fluid) configure() error {
	return f.eng.Configure(f.cfg)
}

// fingerprint identifies the configuration for cache keying.
func fingerprint(cfg engine.Config) string {
	var b strings.Builder
	b.WriteString(strings.Join(cfg.Components, "|"))
	b.WriteByte('@')
	for i, z := range cfg.Composition {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.FormatFloat(z, 'g', -1, 64))
	}
	return b.String()
}

// Name returns the name or component list the handle was built from.
func (f *Fluid) Name() string { return f.name }

// Converter exposes the handle's unit converter, including the
// mixture-averaged molar mass.
func (f *Fluid) Converter() *units.Converter { return f.conv }

// MolarMass returns the composition-averaged molar mass in g/mol.
func (f *Fluid) MolarMass() float64 { return f.conv.MolarMass }

// ResetSession clears a poisoned engine session and forgets the active
// configuration. Call only after the engine is known to be in a sane
// state again; the next operation on any handle reconfigures from
// scratch.
func ResetSession() { session.Reset() }

// String implements fmt.Stringer.
func (f *Fluid) String() string {
	return fmt.Sprintf("Fluid(%s, M=%.4f g/mol)", f.name, f.conv.MolarMass)
}
