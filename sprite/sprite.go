// Package sprite models sprite sheet layouts and computes the CSS
// background-position values needed to display individual sprites from a
// composite sheet. Producing the sheet itself (packing, encoding, cache
// busting) is someone else's job; this package only consumes the resulting
// layout metadata.
package sprite

import (
	"sort"

	"github.com/gosimple/slug"
	"github.com/maruel/natural"
)

// Sprite is a single source image within a sheet: its pixel dimensions and
// the offset of its top-left corner from the sheet's top-left corner.
type Sprite struct {
	Name   string `yaml:"name"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Left   int    `yaml:"left"`
	Top    int    `yaml:"top"`
}

// Sheet is the layout of a composite sprite image: total pixel dimensions
// plus the per-sprite entries in source order.
type Sheet struct {
	Name    string   `yaml:"name"`
	Width   int      `yaml:"width"`
	Height  int      `yaml:"height"`
	Sprites []Sprite `yaml:"sprites"`
}

// Find returns the entry with the given name.
func (s Sheet) Find(name string) (Sprite, bool) {
	for _, sp := range s.Sprites {
		if sp.Name == name {
			return sp, true
		}
	}
	return Sprite{}, false
}

// Names returns all sprite names in natural sort order (icon2 before
// icon10), the order used in error messages and generated output.
func (s Sheet) Names() []string {
	names := make([]string, 0, len(s.Sprites))
	for _, sp := range s.Sprites {
		names = append(names, sp.Name)
	}
	sort.Sort(natural.StringSlice(names))
	return names
}

// CSSClass converts a sprite name to a CSS class identifier, prefixed with
// the sheet name: sheet "icons" + sprite "new message" -> "icons-new-message".
func CSSClass(sheetName, spriteName string) string {
	return slug.Make(sheetName) + "-" + slug.Make(spriteName)
}
