package sprite

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/multierr"
	yaml "gopkg.in/yaml.v3"
)

// Map is the collaborator contract the helper functions are written against.
// The sprite-packing engine that produces sheets implements it; LayoutMap is
// the manifest-backed implementation used here. Implementations must be safe
// for concurrent use.
type Map interface {
	// Name identifies the map (usually the sheet's base name).
	Name() string
	// Layout returns the sheet dimensions and per-sprite entries.
	Layout() Sheet
	// Find resolves a sprite name to its entry.
	Find(name string) (Sprite, bool)
	// Names returns all sprite names, natural-sorted.
	Names() []string
	// URL returns the address of the composite image, cache buster included.
	URL() string
	// Data returns the encoded bytes of the composite image.
	Data() ([]byte, error)
	// HasSelector reports whether a state variant of a sprite exists
	// (e.g. "new" + "hover" when the sheet contains "new_hover").
	HasSelector(sprite, state string) bool
}

// LayoutMap is a Map backed by a sheet layout manifest. It carries layout
// metadata only; the composite image referenced by the manifest was produced
// elsewhere.
type LayoutMap struct {
	sheet Sheet
	url   string
	image string // optional path to the encoded sheet, for inlining
}

// layoutManifest is the YAML shape of a sheet layout file.
type layoutManifest struct {
	Sheet `yaml:",inline"`
	URL   string `yaml:"url,omitempty"`
	Image string `yaml:"image,omitempty"`
}

// LoadLayout reads a sheet layout manifest from a YAML file. Unknown fields
// are rejected so manifest typos fail loudly.
func LoadLayout(path string) (*LayoutMap, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("unable to read sheet layout: %w", err)
	}
	m, err := ParseLayout(data)
	if err != nil {
		return nil, fmt.Errorf("unable to parse sheet layout %q: %w", path, err)
	}
	if m.sheet.Name == "" {
		m.sheet.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	if m.image != "" && !filepath.IsAbs(m.image) {
		// image path is relative to the manifest
		m.image = filepath.Join(filepath.Dir(path), m.image)
	}
	return m, nil
}

// ParseLayout parses a sheet layout manifest from YAML data.
func ParseLayout(data []byte) (*LayoutMap, error) {
	var manifest layoutManifest
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&manifest); err != nil {
		return nil, fmt.Errorf("failed to decode layout manifest: %w", err)
	}
	if err := validateSheet(manifest.Sheet); err != nil {
		return nil, err
	}
	return &LayoutMap{sheet: manifest.Sheet, url: manifest.URL, image: manifest.Image}, nil
}

// validateSheet checks a parsed sheet and reports all problems at once.
func validateSheet(s Sheet) (err error) {
	if s.Width < 0 || s.Height < 0 {
		err = multierr.Append(err, fmt.Errorf("sheet dimensions must be non-negative, got %dx%d", s.Width, s.Height))
	}
	seen := make(map[string]struct{}, len(s.Sprites))
	for i, sp := range s.Sprites {
		if sp.Name == "" {
			err = multierr.Append(err, fmt.Errorf("sprite %d has no name", i))
			continue
		}
		if _, dup := seen[sp.Name]; dup {
			err = multierr.Append(err, fmt.Errorf("duplicate sprite name %q", sp.Name))
		}
		seen[sp.Name] = struct{}{}
		if sp.Width < 0 || sp.Height < 0 {
			err = multierr.Append(err, fmt.Errorf("sprite %q dimensions must be non-negative, got %dx%d", sp.Name, sp.Width, sp.Height))
		}
		if sp.Left < 0 || sp.Top < 0 {
			err = multierr.Append(err, fmt.Errorf("sprite %q offsets must be non-negative, got (%d,%d)", sp.Name, sp.Left, sp.Top))
		}
	}
	return err
}

func (m *LayoutMap) Name() string { return m.sheet.Name }

func (m *LayoutMap) Layout() Sheet { return m.sheet }

func (m *LayoutMap) Find(name string) (Sprite, bool) { return m.sheet.Find(name) }

func (m *LayoutMap) Names() []string { return m.sheet.Names() }

func (m *LayoutMap) URL() string { return m.url }

// Data returns the encoded composite image named by the manifest.
func (m *LayoutMap) Data() ([]byte, error) {
	if m.image == "" {
		return nil, fmt.Errorf("sheet layout %q names no image file", m.sheet.Name)
	}
	data, err := os.ReadFile(m.image)
	if err != nil {
		return nil, fmt.Errorf("unable to read sheet image: %w", err)
	}
	return data, nil
}

// HasSelector reports whether the sheet contains a state variant of the
// sprite, under either the "name_state" or "name-state" convention.
func (m *LayoutMap) HasSelector(sprite, state string) bool {
	if _, ok := m.sheet.Find(sprite + "_" + state); ok {
		return true
	}
	_, ok := m.sheet.Find(sprite + "-" + state)
	return ok
}
