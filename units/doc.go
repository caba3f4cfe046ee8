// Package units translates property values between a caller-chosen
// unit basis and the engine's native basis (K, kPa, mol/L, J/mol,
// J/(mol*K), uPa*s, W/(m*K)).
//
// A UnitSystem records one unit per quantity class; combine it with a
// molar mass to obtain a Converter. Mass-based units (kg/m3, kJ/kg)
// require the mixture-averaged molar mass for mol <-> kg translation;
// the Converter assumes a strictly positive molar mass was supplied at
// construction and does not re-validate per call.
//
// Three presets are provided:
//
//	Native()       K, kPa, mol/L, J/mol, J/(mol*K)
//	Engineering()  degC, bar, kg/m3, kJ/kg, kJ/(kg*K)
//	SI()           K, Pa, kg/m3, J/kg, J/(kg*K), Pa*s
package units
