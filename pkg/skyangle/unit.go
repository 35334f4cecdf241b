package skyangle

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownUnit indicates that a unit name did not match any supported unit.
var ErrUnknownUnit = errors.New("unknown angle unit")

// Unit tags the interpretation of an Angle payload.
// The zero value is UnitRadian, the canonical unit.
type Unit uint8

// Supported units, ordered from the canonical unit down the ladder.
const (
	UnitRadian Unit = iota
	UnitDegree
	UnitArcminute
	UnitArcsecond
	UnitMilliArcsec
)

// Units returns every supported unit in ladder order. The slice is a fresh
// copy on each call.
func Units() []Unit {
	return []Unit{UnitRadian, UnitDegree, UnitArcminute, UnitArcsecond, UnitMilliArcsec}
}

var unitNames = [...]string{
	UnitRadian:      "rad",
	UnitDegree:      "deg",
	UnitArcminute:   "arcmin",
	UnitArcsecond:   "arcsec",
	UnitMilliArcsec: "mas",
}

// unitAliases maps accepted spellings onto units; keys are lower case.
var unitAliases = map[string]Unit{
	"rad":             UnitRadian,
	"radian":          UnitRadian,
	"radians":         UnitRadian,
	"deg":             UnitDegree,
	"degree":          UnitDegree,
	"degrees":         UnitDegree,
	"arcmin":          UnitArcminute,
	"arcminute":       UnitArcminute,
	"arcminutes":      UnitArcminute,
	"arcsec":          UnitArcsecond,
	"arcsecond":       UnitArcsecond,
	"arcseconds":      UnitArcsecond,
	"mas":             UnitMilliArcsec,
	"milliarcsec":     UnitMilliArcsec,
	"milliarcsecond":  UnitMilliArcsec,
	"milliarcseconds": UnitMilliArcsec,
}

// String returns the short name of the unit (e.g. "arcsec").
func (u Unit) String() string {
	if !u.Valid() {
		return fmt.Sprintf("Unit(%d)", uint8(u))
	}
	return unitNames[u]
}

// Valid reports whether u is one of the five supported units.
func (u Unit) Valid() bool { return u <= UnitMilliArcsec }

// ParseUnit resolves a unit from its short or long name, ignoring case and
// surrounding whitespace. It does not parse angle values.
func ParseUnit(name string) (Unit, error) {
	u, ok := unitAliases[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownUnit, name)
	}
	return u, nil
}
