// Package funcs registers sprite helper functions for use by a style-sheet
// expression evaluator. Each helper validates its arguments, converts
// between evaluator values and unit-tagged lengths, and delegates the real
// work to the sprite.Map collaborator.
package funcs

import (
	"strconv"
	"strings"

	"spritefn/css"
	"spritefn/sprite"
)

// Value is an evaluator value passed to or returned from a helper function.
type Value interface {
	// CSS renders the value as CSS text.
	CSS() string
	// kind names the value type for error messages.
	kind() string
}

// Number is a numeric value with an optional unit.
type Number struct {
	L css.Length
}

func (n Number) CSS() string  { return n.L.String() }
func (n Number) kind() string { return "a number" }

// Str is a string value. Quoted strings render with single quotes,
// unquoted strings (identifiers, url() expressions) render verbatim.
type Str struct {
	Val    string
	Quoted bool
}

func (s Str) CSS() string {
	if s.Quoted {
		return "'" + strings.ReplaceAll(s.Val, "'", `\'`) + "'"
	}
	return s.Val
}
func (s Str) kind() string { return "a string" }

// Bool is a boolean value.
type Bool bool

func (b Bool) CSS() string  { return strconv.FormatBool(bool(b)) }
func (b Bool) kind() string { return "a boolean" }

// List is a sequence of values, space-separated by default.
type List struct {
	Items []Value
	Comma bool
}

func (l List) CSS() string {
	sep := " "
	if l.Comma {
		sep = ", "
	}
	parts := make([]string, 0, len(l.Items))
	for _, it := range l.Items {
		parts = append(parts, it.CSS())
	}
	return strings.Join(parts, sep)
}
func (l List) kind() string { return "a list" }

// SpriteMap wraps a sprite.Map collaborator as an evaluator value.
type SpriteMap struct {
	Map sprite.Map
}

func (m SpriteMap) CSS() string  { return m.Map.Name() }
func (m SpriteMap) kind() string { return "a sprite map" }
