package sprite

import (
	"fmt"
	"strings"
)

// NotASpriteMapError signals that a value passed where a sprite map was
// expected is something else entirely.
type NotASpriteMapError struct {
	Got string // description of what was actually received
}

func (e *NotASpriteMapError) Error() string {
	return fmt.Sprintf("%s isn't a sprite map", e.Got)
}

// UnknownSpriteError signals a sprite name absent from a map. The message
// enumerates valid names so a typo is easy to spot.
type UnknownSpriteError struct {
	Sprite string
	Map    string
	Valid  []string // natural-sorted sprite names of the map
}

func (e *UnknownSpriteError) Error() string {
	return fmt.Sprintf("no sprite called %q found in sprite map %q, valid sprites are: %s",
		e.Sprite, e.Map, strings.Join(e.Valid, ", "))
}

// InvalidArgumentTypeError signals that a helper function argument has the
// wrong type or unit.
type InvalidArgumentTypeError struct {
	Fn       string // helper function name
	Arg      string // argument name
	Expected string
	Got      string
}

func (e *InvalidArgumentTypeError) Error() string {
	return fmt.Sprintf("%s: argument %q must be %s, got %s", e.Fn, e.Arg, e.Expected, e.Got)
}
