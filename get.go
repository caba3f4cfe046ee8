package fluidprop

import (
	"context"

	"github.com/thermokit/fluidprop/cache"
	"github.com/thermokit/fluidprop/engine"
	"github.com/thermokit/fluidprop/errors"
	"github.com/thermokit/fluidprop/flash"
	"github.com/thermokit/fluidprop/props"
	"github.com/thermokit/fluidprop/session"
)

const supportedOutputs = "T P D H S Q CV CP W E ETA TCX"

// Get resolves one output property from an unordered constraint pair,
// CoolProp style. Keys are case-insensitive and accept synonyms (RHO
// for D, U for E, VIS for ETA, ...). All values are in the handle's
// unit system.
//
//	d, err := f.Get("D", "T", 0.0, "Q", 1.0)
func (f *Fluid) Get(output, key1 string, val1 float64, key2 string, val2 float64) (float64, error) {
	out, err := props.ParseKey(output)
	if err != nil {
		return 0, errors.UnknownOutput(output, supportedOutputs)
	}
	k1, err := props.ParseKey(key1)
	if err != nil {
		return 0, err
	}
	k2, err := props.ParseKey(key2)
	if err != nil {
		return 0, err
	}

	n1 := f.conv.KeyToNative(k1, val1)
	n2 := f.conv.KeyToNative(k2, val2)

	// Reject doomed requests before taking the session: an invalid
	// call must not reconfigure the engine away from another handle.
	if err := flash.Validate(k1, n1, k2, n2); err != nil {
		return 0, err
	}

	ctx := context.Background()
	ck := cache.Key{
		Config: f.print,
		Output: out.String(),
		K1:     k1.String(), V1: n1,
		K2: k2.String(), V2: n2,
	}
	if f.store != nil {
		v, ok, err := f.store.Get(ctx, ck)
		switch {
		case err != nil:
			// Fall through to the engine, but leave a trace so a
			// corrupt cache file is diagnosable.
			engine.Logger().Sugar().Warnf("cache read failed, resolving via engine: %v", err)
		case ok:
			return f.conv.KeyFromNative(out, v), nil
		}
	}

	var raw float64
	err = session.With(f.id, f.configure, func() error {
		var err error
		raw, err = flash.Value(f.eng, out, k1, n1, k2, n2)
		return err
	})
	if err != nil {
		return 0, err
	}

	if f.store != nil {
		// A failed write never fails the lookup that produced the
		// value.
		_ = f.store.Put(ctx, ck, raw)
	}
	return f.conv.KeyFromNative(out, raw), nil
}
