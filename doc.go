// Package fluidprop resolves thermodynamic and transport properties of
// pure fluids and mixtures on top of a stateful native property
// engine.
//
// The engine holds exactly one fluid configuration at a time and is
// not reentrant, so every Fluid handle shares one process-global
// session: each operation takes the session lock, reconfigures the
// engine only when a different handle held it last, runs its flash,
// and releases the lock. Handles are therefore cheap and safe to use
// from many goroutines, at the cost of serialized engine access.
//
// Values cross the API in the unit system chosen at construction
// (native molar SI, engineering, SI mass, or any per-class override);
// the engine always works in its native basis of K, kPa, mol/L and
// J/mol.
//
//	f, err := fluidprop.WithUnits("R134A", units.Engineering())
//	if err != nil { ... }
//	p, err := f.Get("P", "T", 0.0, "Q", 1.0) // bar at 0 degC dew point
//
// Construction discovers the engine installation (FLUIDPROP_PATH, an
// optional fluidprop.yaml, then conventional directories) and resolves
// the fluid name against its fluids/ and mixtures/ trees. Tests and
// embedders can bypass discovery with WithEngine.
package fluidprop
