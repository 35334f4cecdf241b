package skyangle

import (
	"reflect"
	"strconv"
)

// Angle is an angular measurement tagged with its unit.
//
// Angles are immutable values: every method returns a new value or a bare
// number and leaves the receiver untouched. The zero value is Radian(0).
type Angle[T Float] struct {
	value T
	unit  Unit
}

// New tags v with u. An invalid unit is replaced by UnitRadian so that every
// Angle carries one of the five supported tags.
func New[T Float](u Unit, v T) Angle[T] {
	if !u.Valid() {
		u = UnitRadian
	}
	return Angle[T]{value: v, unit: u}
}

// Radian returns an angle of v radians.
func Radian[T Float](v T) Angle[T] { return Angle[T]{value: v, unit: UnitRadian} }

// Degree returns an angle of v degrees.
func Degree[T Float](v T) Angle[T] { return Angle[T]{value: v, unit: UnitDegree} }

// Arcminute returns an angle of v arcminutes.
func Arcminute[T Float](v T) Angle[T] { return Angle[T]{value: v, unit: UnitArcminute} }

// Arcsecond returns an angle of v arcseconds.
func Arcsecond[T Float](v T) Angle[T] { return Angle[T]{value: v, unit: UnitArcsecond} }

// MilliArcsec returns an angle of v milliarcseconds.
func MilliArcsec[T Float](v T) Angle[T] { return Angle[T]{value: v, unit: UnitMilliArcsec} }

// Value returns the payload in the angle's own unit.
func (a Angle[T]) Value() T { return a.value }

// Unit returns the unit tag.
func (a Angle[T]) Unit() Unit { return a.unit }

// Radians returns the payload expressed in radians.
func (a Angle[T]) Radians() T { return FromUnit(a.unit, a.value) }

// In re-expresses the angle in u. Conversion always goes through radians.
func (a Angle[T]) In(u Unit) Angle[T] {
	if !u.Valid() {
		u = UnitRadian
	}
	return Angle[T]{value: ToUnit(u, a.Radians()), unit: u}
}

// InRadian re-expresses the angle in radians.
func (a Angle[T]) InRadian() Angle[T] { return a.In(UnitRadian) }

// InDegree re-expresses the angle in degrees.
func (a Angle[T]) InDegree() Angle[T] { return a.In(UnitDegree) }

// InArcmin re-expresses the angle in arcminutes.
func (a Angle[T]) InArcmin() Angle[T] { return a.In(UnitArcminute) }

// InArcsec re-expresses the angle in arcseconds.
func (a Angle[T]) InArcsec() Angle[T] { return a.In(UnitArcsecond) }

// InMas re-expresses the angle in milliarcseconds.
func (a Angle[T]) InMas() Angle[T] { return a.In(UnitMilliArcsec) }

// String renders the payload alone, without a unit suffix, as the shortest
// decimal that round-trips at T's precision (e.g. Degree(180.0) → "180").
func (a Angle[T]) String() string {
	return strconv.FormatFloat(float64(a.value), 'f', -1, bitSize[T]())
}

// Add returns the sum of both angles in radians.
func (a Angle[T]) Add(rhs Angle[T]) T { return a.Radians() + rhs.Radians() }

// Sub returns the difference of both angles in radians.
func (a Angle[T]) Sub(rhs Angle[T]) T { return a.Radians() - rhs.Radians() }

// Div returns the dimensionless ratio a/rhs.
func (a Angle[T]) Div(rhs Angle[T]) T { return a.Radians() / rhs.Radians() }

// DivScalar returns the angle in radians divided by s.
func (a Angle[T]) DivScalar(s T) T { return a.Radians() / s }

// Mul returns the angle in radians multiplied by s.
func (a Angle[T]) Mul(s T) T { return a.Radians() * s }

func bitSize[T Float]() int {
	return reflect.TypeFor[T]().Bits()
}
