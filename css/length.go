// Package css provides unit-tagged CSS length values used by sprite helpers.
// A length is a magnitude plus an explicit unit tag, so rules like "exact
// zero is rendered without a unit" stay visible and testable instead of
// hiding inside string formatting.
package css

import (
	"strconv"
)

// Unit is the category of a CSS length value.
type Unit int

const (
	UnitNone    Unit = iota // bare number, also exact-zero results
	UnitPx                  // pixel length
	UnitPercent             // percentage
)

// String returns the CSS suffix for the unit.
func (u Unit) String() string {
	switch u {
	case UnitPx:
		return "px"
	case UnitPercent:
		return "%"
	default:
		return ""
	}
}

// Length represents a CSS length or percentage value.
type Length struct {
	Value float64
	Unit  Unit
}

// Px returns a pixel-tagged length.
func Px(v float64) Length {
	return Length{Value: v, Unit: UnitPx}
}

// Percent returns a percentage-tagged length.
func Percent(v float64) Length {
	return Length{Value: v, Unit: UnitPercent}
}

// LengthOf returns a length tagged with the given unit, except that an exact
// zero magnitude drops the unit entirely ("0", never "0px" or "0%").
func LengthOf(v float64, u Unit) Length {
	if v == 0 {
		return Length{}
	}
	return Length{Value: v, Unit: u}
}

// IsZero reports whether the length is an exact zero.
func (l Length) IsZero() bool {
	return l.Value == 0
}

// String renders the length as CSS text: shortest exact decimal followed by
// the unit suffix, e.g. "-7px", "12.5%", "0".
func (l Length) String() string {
	if l.Value == 0 {
		return "0"
	}
	return strconv.FormatFloat(l.Value, 'f', -1, 64) + l.Unit.String()
}
