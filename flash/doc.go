// Package flash turns two named property constraints into a full
// thermodynamic state, or into a single output value.
//
// Constraint pairs are unordered: (T,P) and (P,T) route to the same
// engine primitive with arguments normalized into the primitive's
// required order, so reversed calls produce identical results.
// Quality-constrained pairs, (T,Q) and (P,Q), are not engine
// primitives; they are synthesized from a saturation lookup plus
// interpolation between the saturated liquid and vapor states.
//
// All values entering and leaving this package are in the engine's
// native basis. Callers must already hold the engine session.
package flash
