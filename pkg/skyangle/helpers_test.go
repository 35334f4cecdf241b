package skyangle

import "math"

// Relative tolerances for round trips through radians.
const (
	tol64 = 1e-9
	tol32 = 1e-5
)

// relClose reports whether got is within tol of want, relative to |want|.
// A zero want demands |got| <= tol.
func relClose(want, got, tol float64) bool {
	if want == got {
		return true
	}
	if want == 0 {
		return math.Abs(got) <= tol
	}
	return math.Abs(got-want) <= tol*math.Abs(want)
}

// bounded folds x into (-limit, limit) so quick-generated values stay far
// from overflow after scaling by 3.6e6.
func bounded(x, limit float64) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return 0
	}
	if math.Abs(x) >= limit {
		return math.Mod(x, limit)
	}
	return x
}

type conversionPair struct {
	unit Unit
	from func(float64) float64
	to   func(float64) float64
}

var ladder64 = []conversionPair{
	{UnitDegree, FromDegree[float64], ToDegree[float64]},
	{UnitArcminute, FromArcmin[float64], ToArcmin[float64]},
	{UnitArcsecond, FromArcsec[float64], ToArcsec[float64]},
	{UnitMilliArcsec, FromMas[float64], ToMas[float64]},
}
