// Package skyangle represents angular measurements in the units commonly
// used in astronomy (radian, degree, arcminute, arcsecond, milliarcsecond)
// and converts between them.
//
// The package has two layers. The conversion functions (FromDegree,
// ToArcsec, ...) map bare numbers to and from radians, the canonical unit,
// along the ladder degree → arcminute → arcsecond → milliarcsecond. Each
// rung is computed from its neighbour so rounding stays consistent across
// units. Bulk variants (FromDegrees, ToArcsecs, ...) lift a conversion over
// a slice.
//
// Angle wraps a payload together with its unit tag:
//
//	a := skyangle.Arcsecond(1.25)
//	r := a.Radians()       // payload in radians
//	mas := a.InMas()       // same magnitude, tagged UnitMilliArcsec
//	fmt.Println(mas, r)
//
// Arithmetic on angles (Add, Sub, Div, DivScalar, Mul) converts operands to
// radians and returns a bare number. The result is never re-tagged; callers
// choose the unit explicitly with New or one of the constructors.
//
// Every function is pure. The scalar conversions and angle arithmetic do
// not allocate. The bulk functions allocate their result; Angle.String,
// ParseUnit and Units may allocate too. NaN and infinities propagate as
// IEEE arithmetic dictates.
package skyangle
