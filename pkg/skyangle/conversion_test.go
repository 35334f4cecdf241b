package skyangle

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromDegree(t *testing.T) {
	tests := []struct {
		name     string
		degrees  float64
		expected float64
	}{
		{name: "zero", degrees: 0, expected: 0},
		{name: "right angle", degrees: 90, expected: math.Pi / 2},
		{name: "half turn", degrees: 180, expected: math.Pi},
		{name: "full turn", degrees: 360, expected: 2 * math.Pi},
		{name: "negative", degrees: -45, expected: -math.Pi / 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, FromDegree(tt.degrees), 1e-15)
		})
	}
}

func TestToDegree(t *testing.T) {
	assert.InDelta(t, 180.0, ToDegree(math.Pi), 1e-12)
	assert.InDelta(t, -90.0, ToDegree(-math.Pi/2), 1e-12)
	assert.Equal(t, 0.0, ToDegree(0.0))
}

func TestLadderDefinitions(t *testing.T) {
	inputs := []float64{0, 1, -1, 0.5, 17.25, 3600, 1e-9, 123456.789, -98765.4321}

	for _, x := range inputs {
		// Each rung must reproduce the composition of its neighbours exactly.
		assert.Equal(t, FromDegree(x/60), FromArcmin(x), "FromArcmin(%v)", x)
		assert.Equal(t, FromDegree(x/60/60), FromArcsec(x), "FromArcsec(%v)", x)
		assert.Equal(t, FromDegree(x*1e-3/60/60), FromMas(x), "FromMas(%v)", x)

		assert.Equal(t, 60*ToDegree(x), ToArcmin(x), "ToArcmin(%v)", x)
		assert.Equal(t, 60*(60*ToDegree(x)), ToArcsec(x), "ToArcsec(%v)", x)
		assert.Equal(t, 1000*(60*(60*ToDegree(x))), ToMas(x), "ToMas(%v)", x)
	}
}

func TestKnownValues(t *testing.T) {
	tests := []struct {
		name     string
		unit     Unit
		value    float64
		expected float64
	}{
		{name: "one degree", unit: UnitDegree, value: 1, expected: math.Pi / 180},
		{name: "sixty arcminutes", unit: UnitArcminute, value: 60, expected: math.Pi / 180},
		{name: "one arcsecond", unit: UnitArcsecond, value: 1, expected: math.Pi / 648000},
		{name: "one thousand mas", unit: UnitMilliArcsec, value: 1000, expected: math.Pi / 648000},
		{name: "radian identity", unit: UnitRadian, value: 1.25, expected: 1.25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FromUnit(tt.unit, tt.value)
			assert.True(t, relClose(tt.expected, got, 1e-12), "got %v want %v", got, tt.expected)
			assert.True(t, relClose(tt.value, ToUnit(tt.unit, got), tol64))
		})
	}
}

func TestFromUnitMatchesLadder(t *testing.T) {
	x := 42.125
	for _, p := range ladder64 {
		t.Run(p.unit.String(), func(t *testing.T) {
			assert.Equal(t, p.from(x), FromUnit(p.unit, x))
			assert.Equal(t, p.to(x), ToUnit(p.unit, x))
		})
	}
}

func TestUnknownUnitIsIdentity(t *testing.T) {
	assert.Equal(t, 3.5, FromUnit(Unit(42), 3.5))
	assert.Equal(t, 3.5, ToUnit(Unit(42), 3.5))
}

func TestNonFinitePropagates(t *testing.T) {
	for _, p := range ladder64 {
		t.Run(p.unit.String(), func(t *testing.T) {
			assert.True(t, math.IsNaN(p.from(math.NaN())))
			assert.True(t, math.IsNaN(p.to(math.NaN())))
			assert.True(t, math.IsInf(p.from(math.Inf(1)), 1))
			assert.True(t, math.IsInf(p.to(math.Inf(-1)), -1))
		})
	}
}

func TestFloat32Conversions(t *testing.T) {
	require.InDelta(t, float32(math.Pi), FromDegree(float32(180)), 1e-6)
	require.InDelta(t, float32(180), ToDegree(float32(math.Pi)), 1e-4)

	x := float32(12.5)
	assert.Equal(t, FromDegree(x/60), FromArcmin(x))
	assert.Equal(t, 1000*ToArcsec(x), ToMas(x))
}

func TestCrossWidthConsistency(t *testing.T) {
	// Values exactly representable in both widths.
	values := []float64{0, 0.5, 1, -2.25, 90, 180, 1234.5, 65536}

	for _, u := range Units()[1:] {
		for _, v := range values {
			wide := FromUnit(u, v)
			narrow := float64(FromUnit(u, float32(v)))
			assert.True(t, relClose(wide, narrow, tol32),
				"%s from %v: float64=%v float32=%v", u, v, wide, narrow)

			wideBack := ToUnit(u, v)
			narrowBack := float64(ToUnit(u, float32(v)))
			assert.True(t, relClose(wideBack, narrowBack, tol32),
				"%s to %v: float64=%v float32=%v", u, v, wideBack, narrowBack)
		}
	}
}

type catalogRadians float64

func TestNamedFloatTypes(t *testing.T) {
	got := ToArcsec(catalogRadians(1))
	assert.InDelta(t, 206264.80624709636, float64(got), 1e-6)
}
