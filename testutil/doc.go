// Package testutil provides an in-memory engine.Engine for tests.
//
// The fake computes single-phase properties from a small analytic
// model that is internally consistent: every flash primitive inverts
// the same closed-form property surface, so commutativity and
// round-trip checks hold exactly. Saturation data comes from canned
// reference points (R134A at 0 degC, R407C glide at 20 degC) with an
// analytic Clausius-style fallback for arbitrary loci.
//
// The fake also counts primitive invocations so tests can assert that
// validation happens before any engine call and that reconfiguration
// is short-circuited.
package testutil
