package skyangle

// Map applies f to every element of xs and returns the results in a newly
// allocated slice of the same length. xs is never modified. A nil or empty
// xs yields an empty, non-nil slice.
func Map[T Float](xs []T, f func(T) T) []T {
	out := make([]T, len(xs))
	for i, x := range xs {
		out[i] = f(x)
	}
	return out
}

// FromDegrees converts each element from degrees to radians.
func FromDegrees[T Float](xs []T) []T { return Map(xs, FromDegree[T]) }

// FromArcmins converts each element from arcminutes to radians.
func FromArcmins[T Float](xs []T) []T { return Map(xs, FromArcmin[T]) }

// FromArcsecs converts each element from arcseconds to radians.
func FromArcsecs[T Float](xs []T) []T { return Map(xs, FromArcsec[T]) }

// FromMasSlice converts each element from milliarcseconds to radians.
func FromMasSlice[T Float](xs []T) []T { return Map(xs, FromMas[T]) }

// ToDegrees converts each element from radians to degrees.
func ToDegrees[T Float](xs []T) []T { return Map(xs, ToDegree[T]) }

// ToArcmins converts each element from radians to arcminutes.
func ToArcmins[T Float](xs []T) []T { return Map(xs, ToArcmin[T]) }

// ToArcsecs converts each element from radians to arcseconds.
func ToArcsecs[T Float](xs []T) []T { return Map(xs, ToArcsec[T]) }

// ToMasSlice converts each element from radians to milliarcseconds.
func ToMasSlice[T Float](xs []T) []T { return Map(xs, ToMas[T]) }

// FromUnitSlice converts each element from u to radians.
func FromUnitSlice[T Float](u Unit, xs []T) []T {
	return Map(xs, func(x T) T { return FromUnit(u, x) })
}

// ToUnitSlice converts each element from radians to u.
func ToUnitSlice[T Float](u Unit, xs []T) []T {
	return Map(xs, func(x T) T { return ToUnit(u, x) })
}

// ConvertSlice re-expresses each element of xs from one unit in another,
// always passing through radians.
func ConvertSlice[T Float](from, to Unit, xs []T) []T {
	return Map(xs, func(x T) T { return ToUnit(to, FromUnit(from, x)) })
}
