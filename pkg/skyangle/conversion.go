package skyangle

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Float is the set of payload types an Angle may carry.
// Only 32-bit and 64-bit IEEE floats (and named types over them) qualify.
type Float interface {
	constraints.Float
}

// Ladder factors between neighbouring units.
const (
	ArcminPerDegree = 60
	ArcsecPerArcmin = 60
	MasPerArcsec    = 1000

	degToRad = math.Pi / 180
	radToDeg = 180 / math.Pi
	masToArc = 1e-3
)

// FromDegree converts an angle in degrees to radians.
func FromDegree[T Float](x T) T { return x * T(degToRad) }

// FromArcmin converts an angle in arcminutes to radians.
func FromArcmin[T Float](x T) T { return FromDegree(x / ArcminPerDegree) }

// FromArcsec converts an angle in arcseconds to radians.
func FromArcsec[T Float](x T) T { return FromArcmin(x / ArcsecPerArcmin) }

// FromMas converts an angle in milliarcseconds to radians.
func FromMas[T Float](x T) T { return FromArcsec(x * T(masToArc)) }

// ToDegree converts an angle in radians to degrees.
func ToDegree[T Float](x T) T { return x * T(radToDeg) }

// ToArcmin converts an angle in radians to arcminutes.
func ToArcmin[T Float](x T) T { return ArcminPerDegree * ToDegree(x) }

// ToArcsec converts an angle in radians to arcseconds.
func ToArcsec[T Float](x T) T { return ArcsecPerArcmin * ToArcmin(x) }

// ToMas converts an angle in radians to milliarcseconds.
func ToMas[T Float](x T) T { return MasPerArcsec * ToArcsec(x) }

// FromUnit converts x, expressed in u, to radians.
// An unrecognised unit is treated as radians.
func FromUnit[T Float](u Unit, x T) T {
	switch u {
	case UnitDegree:
		return FromDegree(x)
	case UnitArcminute:
		return FromArcmin(x)
	case UnitArcsecond:
		return FromArcsec(x)
	case UnitMilliArcsec:
		return FromMas(x)
	default:
		return x
	}
}

// ToUnit converts x, expressed in radians, to u.
// An unrecognised unit is treated as radians.
func ToUnit[T Float](u Unit, x T) T {
	switch u {
	case UnitDegree:
		return ToDegree(x)
	case UnitArcminute:
		return ToArcmin(x)
	case UnitArcsecond:
		return ToArcsec(x)
	case UnitMilliArcsec:
		return ToMas(x)
	default:
		return x
	}
}
