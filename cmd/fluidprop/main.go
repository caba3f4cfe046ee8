package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/thermokit/fluidprop"
	"github.com/thermokit/fluidprop/cache"
	"github.com/thermokit/fluidprop/native"
	"github.com/thermokit/fluidprop/units"
)

func main() {
	var (
		fluidName   = flag.String("fluid", "", "Fluid or predefined mixture name (e.g. R134A, R407C)")
		mixture     = flag.String("mix", "", "Custom mixture as NAME:FRAC,NAME:FRAC (molar fractions)")
		unitsName   = flag.String("units", "", "Unit system: native, engineering, si (default from fluidprop.yaml, else engineering)")
		path        = flag.String("path", "", "Engine installation directory (overrides discovery)")
		cachePath   = flag.String("cache", "", "SQLite result cache file")
		output      = flag.String("out", "", "Output property (T P D H S Q CV CP W E ETA TCX)")
		in1         = flag.String("in1", "", "First constraint as KEY=VALUE, e.g. T=0")
		in2         = flag.String("in2", "", "Second constraint as KEY=VALUE, e.g. Q=1")
		satT        = flag.Float64("sat-t", math.NaN(), "Print saturation state at this temperature and exit")
		satP        = flag.Float64("sat-p", math.NaN(), "Print saturation state at this pressure and exit")
		crit        = flag.Bool("crit", false, "Print the critical point and exit")
		info        = flag.Bool("info", false, "Print component constants and exit")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
	)
	flag.Parse()

	if *fluidName == "" && *mixture == "" {
		fmt.Fprintln(os.Stderr, "Usage: fluidprop -fluid <name> -out <prop> -in1 K=V -in2 K=V")
		fmt.Fprintln(os.Stderr, "       fluidprop -fluid <name> -sat-t <T> | -sat-p <P> | -crit | -info")
		fmt.Fprintln(os.Stderr, "       fluidprop -fluid <name> -i  (interactive mode)")
		fmt.Fprintln(os.Stderr, "       fluidprop -mix R32:0.5,R125:0.5 -out D -in1 T=20 -in2 Q=1")
		os.Exit(1)
	}

	uName := *unitsName
	if uName == "" {
		uName = defaultUnits()
	}
	u, err := parseUnits(uName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	opts, closeCache, err := buildOptions(*path, *cachePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeCache()

	f, err := open(*fluidName, *mixture, u, opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if *interactive {
		if err := runInteractive(f, uName); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := run(f, *output, *in1, *in2, *satT, *satP, *crit, *info); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// defaultUnits consults the optional config file, falling back to
// engineering units.
func defaultUnits() string {
	if cfg, err := native.LoadConfig(); err == nil && cfg.Units != "" {
		return cfg.Units
	}
	return "engineering"
}

func parseUnits(name string) (units.UnitSystem, error) {
	switch strings.ToLower(name) {
	case "native", "":
		return units.Native(), nil
	case "engineering", "eng":
		return units.Engineering(), nil
	case "si":
		return units.SI(), nil
	default:
		return units.UnitSystem{}, fmt.Errorf("unknown unit system %q (native, engineering, si)", name)
	}
}

func buildOptions(path, cachePath string) ([]fluidprop.Option, func(), error) {
	var opts []fluidprop.Option
	closeCache := func() {}

	if path != "" {
		opts = append(opts, fluidprop.WithPath(path))
	}
	if cachePath != "" {
		store, err := cache.Open(cachePath)
		if err != nil {
			return nil, closeCache, err
		}
		opts = append(opts, fluidprop.WithCache(store))
		closeCache = func() { store.Close() }
	}
	return opts, closeCache, nil
}

func open(fluidName, mixture string, u units.UnitSystem, opts []fluidprop.Option) (*fluidprop.Fluid, error) {
	if mixture == "" {
		return fluidprop.WithUnits(fluidName, u, opts...)
	}

	var components []fluidprop.Component
	for _, part := range strings.Split(mixture, ",") {
		nv := strings.SplitN(part, ":", 2)
		if len(nv) != 2 {
			return nil, fmt.Errorf("malformed mixture component %q, want NAME:FRAC", part)
		}
		frac, err := strconv.ParseFloat(nv[1], 64)
		if err != nil {
			return nil, fmt.Errorf("malformed fraction in %q: %w", part, err)
		}
		components = append(components, fluidprop.Component{Name: nv[0], Fraction: frac})
	}
	return fluidprop.MixtureWithUnits(components, u, opts...)
}

func run(f *fluidprop.Fluid, output, in1, in2 string, satT, satP float64, crit, info bool) error {
	fmt.Printf("Fluid: %s (M = %.4f g/mol)\n", f.Name(), f.MolarMass())

	switch {
	case !math.IsNaN(satT):
		sat, err := f.SaturationT(satT)
		if err != nil {
			return err
		}
		fmt.Printf("Saturation at T = %g:\n", satT)
		fmt.Printf("  P       = %g\n", sat.Pressure)
		fmt.Printf("  D (liq) = %g\n", sat.LiquidDensity)
		fmt.Printf("  D (vap) = %g\n", sat.VaporDensity)
		return nil

	case !math.IsNaN(satP):
		sat, err := f.SaturationP(satP)
		if err != nil {
			return err
		}
		fmt.Printf("Saturation at P = %g:\n", satP)
		fmt.Printf("  T       = %g\n", sat.Temperature)
		fmt.Printf("  D (liq) = %g\n", sat.LiquidDensity)
		fmt.Printf("  D (vap) = %g\n", sat.VaporDensity)
		return nil

	case crit:
		cp, err := f.CriticalPoint()
		if err != nil {
			return err
		}
		fmt.Printf("Critical point:\n  T = %g\n  P = %g\n  D = %g\n", cp.Temperature, cp.Pressure, cp.Density)
		return nil

	case info:
		fi, err := f.Info(1)
		if err != nil {
			return err
		}
		fmt.Printf("Component 1 constants (native units):\n")
		fmt.Printf("  Molar mass      = %g g/mol\n", fi.MolarMass)
		fmt.Printf("  Triple point    = %g K\n", fi.TriplePointT)
		fmt.Printf("  Boiling point   = %g K\n", fi.BoilingPointT)
		fmt.Printf("  Critical T      = %g K\n", fi.CriticalT)
		fmt.Printf("  Critical P      = %g kPa\n", fi.CriticalP)
		fmt.Printf("  Critical D      = %g mol/L\n", fi.CriticalD)
		fmt.Printf("  Acentric factor = %g\n", fi.AcentricFactor)
		return nil
	}

	if output == "" || in1 == "" || in2 == "" {
		return fmt.Errorf("need -out, -in1 and -in2 (or one of -sat-t, -sat-p, -crit, -info, -i)")
	}

	k1, v1, err := parseConstraint(in1)
	if err != nil {
		return err
	}
	k2, v2, err := parseConstraint(in2)
	if err != nil {
		return err
	}

	v, err := f.Get(output, k1, v1, k2, v2)
	if err != nil {
		return err
	}
	fmt.Printf("%s(%s=%g, %s=%g) = %g\n", strings.ToUpper(output), k1, v1, k2, v2, v)
	return nil
}

func parseConstraint(s string) (string, float64, error) {
	kv := strings.SplitN(s, "=", 2)
	if len(kv) != 2 {
		return "", 0, fmt.Errorf("malformed constraint %q, want KEY=VALUE", s)
	}
	v, err := strconv.ParseFloat(kv[1], 64)
	if err != nil {
		return "", 0, fmt.Errorf("malformed value in %q: %w", s, err)
	}
	return kv[0], v, nil
}
