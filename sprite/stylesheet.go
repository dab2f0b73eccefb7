package sprite

import (
	"fmt"
	"io"

	"spritefn/css"
)

// WriteCSS writes one rule per sprite to w, selecting each sprite from the
// composite image via background-position. The prefix replaces the sheet
// name in generated class names when non-empty. Sprites are emitted in
// natural name order for deterministic output.
func WriteCSS(w io.Writer, m Map, prefix string) (int64, error) {
	sheet := m.Layout()
	if prefix == "" {
		prefix = sheet.Name
	}

	var total int64
	names := m.Names()
	for i, name := range names {
		entry, ok := m.Find(name)
		if !ok {
			// Names came from the map itself
			continue
		}
		pos := PositionOf(sheet, entry, css.Length{}, css.Length{}, false)
		n, err := fmt.Fprintf(w, ".%s {\n  background: url('%s') no-repeat %s;\n  width: %dpx;\n  height: %dpx;\n}\n",
			CSSClass(prefix, name), m.URL(), pos, entry.Width, entry.Height)
		total += int64(n)
		if err != nil {
			return total, err
		}
		if i < len(names)-1 {
			n, err = fmt.Fprint(w, "\n")
			total += int64(n)
			if err != nil {
				return total, err
			}
		}
	}
	return total, nil
}
