package fluidprop

import (
	"math"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/thermokit/fluidprop/cache"
	"github.com/thermokit/fluidprop/engine"
	"github.com/thermokit/fluidprop/errors"
	"github.com/thermokit/fluidprop/testutil"
	"github.com/thermokit/fluidprop/units"
)

func TestNew_PureFluid(t *testing.T) {
	eng := testutil.New()
	f, err := New("R134A", WithEngine(eng))
	require.NoError(t, err)

	assert.Equal(t, "R134A", f.Name())
	assert.InDelta(t, 102.032, f.MolarMass(), 1e-9)
	assert.Equal(t, 1, eng.ConfigureCalls, "construction configures exactly once")
}

func TestNew_UnknownFluid(t *testing.T) {
	_, err := New("UNOBTAINIUM", WithEngine(testutil.New()))
	require.Error(t, err)
	assert.ErrorIs(t, err, &errors.Error{Phase: errors.PhaseEngine, Kind: errors.KindEngineFailure})
}

func TestGet_EngineeringUnits(t *testing.T) {
	f, err := WithUnits("R134A", units.Engineering(), WithEngine(testutil.New()))
	require.NoError(t, err)

	// R134A at 0 degC: 2.928 bar, 14.4 kg/m3 saturated vapor,
	// 1295 kg/m3 saturated liquid.
	p, err := f.Get("P", "T", 0.0, "Q", 1.0)
	require.NoError(t, err)
	assert.InDelta(t, 2.928, p, 1e-9)

	dv, err := f.Get("D", "T", 0.0, "Q", 1.0)
	require.NoError(t, err)
	assert.InDelta(t, 14.40, dv, 0.01)

	dl, err := f.Get("D", "T", 0.0, "Q", 0.0)
	require.NoError(t, err)
	assert.InDelta(t, 1295.0, dl, 0.5)
}

func TestGet_Commutative(t *testing.T) {
	f, err := New("R134A", WithEngine(testutil.New()))
	require.NoError(t, err)

	fwd, err := f.Get("H", "T", 300, "P", 500)
	require.NoError(t, err)
	rev, err := f.Get("H", "P", 500, "T", 300)
	require.NoError(t, err)
	assert.Equal(t, fwd, rev)
}

func TestGet_Synonyms(t *testing.T) {
	f, err := New("R134A", WithEngine(testutil.New()))
	require.NoError(t, err)

	u, err := f.Get("U", "T", 300, "D", 0.2)
	require.NoError(t, err)
	e, err := f.Get("E", "t", 300, "rho", 0.2)
	require.NoError(t, err)
	assert.Equal(t, u, e)
}

func TestGet_BadKeys(t *testing.T) {
	f, err := New("R134A", WithEngine(testutil.New()))
	require.NoError(t, err)

	_, err = f.Get("XYZZY", "T", 300, "P", 500)
	assert.ErrorIs(t, err, &errors.Error{Phase: errors.PhaseFlash, Kind: errors.KindUnknownOutput})

	_, err = f.Get("P", "T", 300, "XYZZY", 500)
	assert.ErrorIs(t, err, &errors.Error{Phase: errors.PhaseFlash, Kind: errors.KindInvalidInput})
}

func TestPropsTP_UnitRoundTrip(t *testing.T) {
	eng := testutil.New()
	nat, err := New("R134A", WithEngine(eng))
	require.NoError(t, err)
	engr, err := WithUnits("R134A", units.Engineering(), WithEngine(eng))
	require.NoError(t, err)

	raw, err := nat.PropsTP(300, 500)
	require.NoError(t, err)
	// Same state point addressed in engineering units.
	st, err := engr.PropsTP(300-273.15, 5.0)
	require.NoError(t, err)

	assert.InDelta(t, 300-273.15, st.Temperature, 1e-9)
	assert.InDelta(t, 5.0, st.Pressure, 1e-9)
	assert.InDelta(t, raw.Density*nat.MolarMass(), st.Density, 1e-9)
	assert.InDelta(t, raw.Enthalpy/nat.MolarMass(), st.Enthalpy, 1e-9)
	assert.InDelta(t, raw.SoundSpeed, st.SoundSpeed, 1e-9, "sound speed is basis-independent")
}

func TestPredefinedMixture_Glide(t *testing.T) {
	f, err := New("R407C.MIX", WithEngine(testutil.New()))
	require.NoError(t, err)

	assert.InDelta(t, 86.20, f.MolarMass(), 0.01)

	bubble, err := f.Get("P", "T", 293.15, "Q", 0.0)
	require.NoError(t, err)
	dew, err := f.Get("P", "T", 293.15, "Q", 1.0)
	require.NoError(t, err)

	assert.InDelta(t, 1038.0, bubble, 1e-9)
	assert.InDelta(t, 880.0, dew, 1e-9)
	assert.Greater(t, bubble, dew, "zeotropic glide")
}

func TestMixture_Custom(t *testing.T) {
	f, err := Mixture([]Component{
		{Name: "R32", Fraction: 0.7},
		{Name: "R125", Fraction: 0.3},
	}, WithEngine(testutil.New()))
	require.NoError(t, err)

	want := 0.7*52.024 + 0.3*120.0214
	assert.InDelta(t, want, f.MolarMass(), 1e-9)
	assert.Equal(t, "R32/R125", f.Name())
}

func TestMixture_Validation(t *testing.T) {
	eng := testutil.New()

	_, err := Mixture(nil, WithEngine(eng))
	assert.ErrorIs(t, err, &errors.Error{Phase: errors.PhaseResolve, Kind: errors.KindOutOfBounds})

	big := make([]Component, 21)
	for i := range big {
		big[i] = Component{Name: "CO2", Fraction: 1.0 / 21}
	}
	_, err = Mixture(big, WithEngine(eng))
	assert.ErrorIs(t, err, &errors.Error{Phase: errors.PhaseResolve, Kind: errors.KindOutOfBounds})

	_, err = Mixture([]Component{{Name: "CO2", Fraction: -1}}, WithEngine(eng))
	assert.ErrorIs(t, err, &errors.Error{Phase: errors.PhaseResolve, Kind: errors.KindInvalidInput})

	assert.Zero(t, eng.ConfigureCalls, "invalid mixtures never reach the engine")
}

func TestSession_ReconfigureOnHandleSwitch(t *testing.T) {
	eng := testutil.New()
	f1, err := New("R134A", WithEngine(eng))
	require.NoError(t, err)
	f2, err := New("CO2", WithEngine(eng))
	require.NoError(t, err)

	calls := eng.ConfigureCalls // one per construction

	// f2 configured last; repeated f2 operations reuse the setup.
	_, err = f2.PropsTP(300, 500)
	require.NoError(t, err)
	_, err = f2.PropsTP(310, 500)
	require.NoError(t, err)
	assert.Equal(t, calls, eng.ConfigureCalls)

	// Switching handles forces one reconfigure.
	_, err = f1.PropsTP(300, 500)
	require.NoError(t, err)
	assert.Equal(t, calls+1, eng.ConfigureCalls)

	// Reset forgets the active configuration.
	ResetSession()
	_, err = f1.PropsTP(300, 500)
	require.NoError(t, err)
	assert.Equal(t, calls+2, eng.ConfigureCalls)
}

func TestGet_InvalidInputLeavesActiveConfiguration(t *testing.T) {
	eng := testutil.New()
	f1, err := New("R134A", WithEngine(eng))
	require.NoError(t, err)
	f2, err := New("CO2", WithEngine(eng))
	require.NoError(t, err)

	// Make f1 the active configuration.
	_, err = f1.PropsTP(300, 500)
	require.NoError(t, err)
	calls := eng.ConfigureCalls
	flashes := eng.FlashCalls

	// A doomed request on the other handle must fail before the
	// session, leaving the engine configured for f1.
	_, err = f2.Get("P", "T", 300, "T", 310)
	assert.ErrorIs(t, err, &errors.Error{Phase: errors.PhaseFlash, Kind: errors.KindUnsupportedPair})
	assert.Equal(t, calls, eng.ConfigureCalls, "unsupported pair must not reconfigure the engine")

	_, err = f2.Get("D", "T", math.NaN(), "P", 500)
	assert.ErrorIs(t, err, &errors.Error{Phase: errors.PhaseFlash, Kind: errors.KindNonFinite})
	assert.Equal(t, calls, eng.ConfigureCalls, "non-finite input must not reconfigure the engine")

	_, err = f2.PropsTH(300, math.Inf(1))
	assert.ErrorIs(t, err, &errors.Error{Phase: errors.PhaseFlash, Kind: errors.KindNonFinite})
	assert.Equal(t, calls, eng.ConfigureCalls)
	assert.Equal(t, flashes, eng.FlashCalls, "rejected requests never reach the engine")

	// f1 is still active: its next operation needs no reconfigure.
	_, err = f1.PropsTP(310, 500)
	require.NoError(t, err)
	assert.Equal(t, calls, eng.ConfigureCalls)
}

func TestSaturationAndTransport_RejectNonFinite(t *testing.T) {
	eng := testutil.New()
	f, err := New("R134A", WithEngine(eng))
	require.NoError(t, err)
	calls := eng.ConfigureCalls

	_, err = f.SaturationT(math.NaN())
	assert.ErrorIs(t, err, &errors.Error{Phase: errors.PhaseFlash, Kind: errors.KindNonFinite})

	_, err = f.SaturationP(math.Inf(-1))
	assert.ErrorIs(t, err, &errors.Error{Phase: errors.PhaseFlash, Kind: errors.KindNonFinite})
	assert.Zero(t, eng.SatCalls, "non-finite saturation inputs never reach the engine")

	_, err = f.Transport(300, math.NaN())
	assert.ErrorIs(t, err, &errors.Error{Phase: errors.PhaseFlash, Kind: errors.KindNonFinite})
	assert.Zero(t, eng.TransportCalls)

	assert.Equal(t, calls, eng.ConfigureCalls)
}

func TestGet_CacheReadFailureFallsThrough(t *testing.T) {
	store, err := cache.Open(filepath.Join(t.TempDir(), "cache.db"))
	require.NoError(t, err)

	eng := testutil.New()
	f, err := New("R134A", WithEngine(eng), WithCache(store))
	require.NoError(t, err)

	// Break the cache: every read now errors.
	require.NoError(t, store.Close())

	core, logs := observer.New(zap.WarnLevel)
	engine.SetLogger(zap.New(core))
	defer engine.SetLogger(nil)

	v, err := f.Get("H", "T", 300, "P", 500)
	require.NoError(t, err, "a broken cache must not fail the lookup")
	assert.NotZero(t, v)
	assert.Equal(t, 1, eng.FlashCalls, "lookup must fall through to the engine")
	assert.GreaterOrEqual(t, logs.Len(), 1, "read failure must be logged")
}

func TestGet_CacheShortCircuitsEngine(t *testing.T) {
	store, err := cache.Open(filepath.Join(t.TempDir(), "cache.db"))
	require.NoError(t, err)
	defer store.Close()

	eng := testutil.New()
	f, err := New("R134A", WithEngine(eng), WithCache(store))
	require.NoError(t, err)

	first, err := f.Get("H", "T", 300, "P", 500)
	require.NoError(t, err)
	require.Equal(t, 1, eng.FlashCalls)

	second, err := f.Get("H", "T", 300, "P", 500)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, eng.FlashCalls, "repeat lookup must hit the cache")

	// The normalized cache key also serves the reversed argument
	// order.
	third, err := f.Get("H", "P", 500, "T", 300)
	require.NoError(t, err)
	assert.Equal(t, first, third)
	assert.Equal(t, 1, eng.FlashCalls)
}

func TestCache_IsolatedPerConfiguration(t *testing.T) {
	store, err := cache.Open(filepath.Join(t.TempDir(), "cache.db"))
	require.NoError(t, err)
	defer store.Close()

	eng := testutil.New()
	r134a, err := New("R134A", WithEngine(eng), WithCache(store))
	require.NoError(t, err)
	co2, err := New("CO2", WithEngine(eng), WithCache(store))
	require.NoError(t, err)

	_, err = r134a.Get("W", "T", 300, "P", 500)
	require.NoError(t, err)
	flashes := eng.FlashCalls

	// Same state point, different fluid: must not reuse the entry.
	_, err = co2.Get("W", "T", 300, "P", 500)
	require.NoError(t, err)
	assert.Equal(t, flashes+1, eng.FlashCalls)
}

func TestSaturationT_EngineeringUnits(t *testing.T) {
	f, err := WithUnits("R134A", units.Engineering(), WithEngine(testutil.New()))
	require.NoError(t, err)

	sat, err := f.SaturationT(0.0)
	require.NoError(t, err)
	assert.InDelta(t, 0.0, sat.Temperature, 1e-9)
	assert.InDelta(t, 2.928, sat.Pressure, 1e-9)
	assert.InDelta(t, 1295.0, sat.LiquidDensity, 0.5)
	assert.InDelta(t, 14.40, sat.VaporDensity, 0.01)
}

func TestInfo_NeverConverted(t *testing.T) {
	f, err := WithUnits("R134A", units.Engineering(), WithEngine(testutil.New()))
	require.NoError(t, err)

	info, err := f.Info(1)
	require.NoError(t, err)
	// Critical temperature stays in K even though the handle speaks
	// degC.
	assert.InDelta(t, 374.21, info.CriticalT, 1e-9)
	assert.InDelta(t, 102.032, info.MolarMass, 1e-9)
}

func TestCriticalPoint_Converted(t *testing.T) {
	eng := testutil.New()
	nat, err := New("R134A", WithEngine(eng))
	require.NoError(t, err)
	engr, err := WithUnits("R134A", units.Engineering(), WithEngine(eng))
	require.NoError(t, err)

	raw, err := nat.CriticalPoint()
	require.NoError(t, err)
	cp, err := engr.CriticalPoint()
	require.NoError(t, err)

	assert.InDelta(t, raw.Temperature-273.15, cp.Temperature, 1e-9)
	assert.InDelta(t, raw.Pressure/100, cp.Pressure, 1e-9)
	assert.InDelta(t, raw.Density*nat.MolarMass(), cp.Density, 1e-9)
}
