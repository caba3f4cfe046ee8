// Package props defines the closed set of property keys understood by
// the flash dispatcher and the value snapshots produced by engine
// primitives. String keys are parsed once at the API boundary
// (case-insensitive, with synonym folding such as RHO -> density);
// everything below the boundary works on the typed enumeration.
//
// All snapshot values are in the engine's native basis: K, kPa, mol/L,
// J/mol, J/(mol*K), m/s, uPa*s, W/(m*K).
package props
