package props

import (
	"strings"

	"github.com/thermokit/fluidprop/errors"
)

// Key identifies a thermodynamic or transport property.
type Key int

const (
	KeyInvalid Key = iota
	KeyTemperature
	KeyPressure
	KeyDensity
	KeyEnthalpy
	KeyEntropy
	KeyQuality
	KeyCv
	KeyCp
	KeySoundSpeed
	KeyInternalEnergy
	KeyViscosity
	KeyConductivity
)

// Class groups keys by physical dimension for unit conversion.
// ClassNone marks dimensionless or already-native quantities (quality,
// sound speed) that pass through conversion unchanged.
type Class int

const (
	ClassNone Class = iota
	ClassTemperature
	ClassPressure
	ClassDensity
	ClassEnergy
	ClassEntropy
	ClassViscosity
	ClassConductivity
)

// synonyms maps every accepted upper-cased spelling to its key.
var synonyms = map[string]Key{
	"T":      KeyTemperature,
	"P":      KeyPressure,
	"D":      KeyDensity,
	"RHO":    KeyDensity,
	"H":      KeyEnthalpy,
	"S":      KeyEntropy,
	"Q":      KeyQuality,
	"CV":     KeyCv,
	"CP":     KeyCp,
	"W":      KeySoundSpeed,
	"A":      KeySoundSpeed,
	"E":      KeyInternalEnergy,
	"U":      KeyInternalEnergy,
	"ETA":    KeyViscosity,
	"V":      KeyViscosity,
	"VIS":    KeyViscosity,
	"TCX":    KeyConductivity,
	"L":      KeyConductivity,
	"LAMBDA": KeyConductivity,
}

// ParseKey folds a caller-supplied property key into the closed
// enumeration. Matching is case-insensitive.
func ParseKey(s string) (Key, error) {
	if k, ok := synonyms[strings.ToUpper(s)]; ok {
		return k, nil
	}
	return KeyInvalid, errors.InvalidInput(errors.PhaseFlash, "unknown property key %q", s)
}

// String returns the canonical spelling of the key.
func (k Key) String() string {
	switch k {
	case KeyTemperature:
		return "T"
	case KeyPressure:
		return "P"
	case KeyDensity:
		return "D"
	case KeyEnthalpy:
		return "H"
	case KeyEntropy:
		return "S"
	case KeyQuality:
		return "Q"
	case KeyCv:
		return "CV"
	case KeyCp:
		return "CP"
	case KeySoundSpeed:
		return "W"
	case KeyInternalEnergy:
		return "E"
	case KeyViscosity:
		return "ETA"
	case KeyConductivity:
		return "TCX"
	default:
		return "invalid"
	}
}

// Class returns the unit class used to convert values of this key.
func (k Key) Class() Class {
	switch k {
	case KeyTemperature:
		return ClassTemperature
	case KeyPressure:
		return ClassPressure
	case KeyDensity:
		return ClassDensity
	case KeyEnthalpy, KeyInternalEnergy:
		return ClassEnergy
	case KeyEntropy, KeyCv, KeyCp:
		return ClassEntropy
	case KeyViscosity:
		return ClassViscosity
	case KeyConductivity:
		return ClassConductivity
	default:
		return ClassNone
	}
}
