package sprite_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"spritefn/sprite"
)

func TestLoadLayout(t *testing.T) {
	m, err := sprite.LoadLayout(filepath.Join("testdata", "icons.yaml"))
	if err != nil {
		t.Fatalf("LoadLayout() error = %v", err)
	}

	if m.Name() != "icons" {
		t.Errorf("Name() = %q, want %q", m.Name(), "icons")
	}
	sheet := m.Layout()
	if sheet.Width != 100 || sheet.Height != 50 {
		t.Errorf("sheet dimensions = %dx%d, want 100x50", sheet.Width, sheet.Height)
	}
	if len(sheet.Sprites) != 5 {
		t.Fatalf("sprite count = %d, want 5", len(sheet.Sprites))
	}

	entry, ok := m.Find("new")
	if !ok {
		t.Fatal("expected sprite \"new\"")
	}
	if entry.Left != 10 || entry.Top != 5 || entry.Width != 20 || entry.Height != 10 {
		t.Errorf("sprite \"new\" = %+v, want left=10 top=5 w=20 h=10", entry)
	}

	if m.URL() != "/images/icons-s1a2b3c4d5.png" {
		t.Errorf("URL() = %q", m.URL())
	}
}

func TestLoadLayout_NameDefaultsToFileName(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "toolbar.yaml")
	manifest := "width: 10\nheight: 10\nsprites:\n  - {name: a, width: 5, height: 5, left: 0, top: 0}\n"
	if err := os.WriteFile(path, []byte(manifest), 0644); err != nil {
		t.Fatalf("failed to write manifest: %v", err)
	}

	m, err := sprite.LoadLayout(path)
	if err != nil {
		t.Fatalf("LoadLayout() error = %v", err)
	}
	if m.Name() != "toolbar" {
		t.Errorf("Name() = %q, want %q", m.Name(), "toolbar")
	}
}

func TestParseLayout_RejectsUnknownFields(t *testing.T) {
	_, err := sprite.ParseLayout([]byte("name: x\nwidth: 1\nheight: 1\nbogus: true\n"))
	if err == nil {
		t.Fatal("expected error for unknown manifest field")
	}
}

func TestParseLayout_ReportsAllProblems(t *testing.T) {
	manifest := `name: broken
width: -1
height: 10
sprites:
  - {name: a, width: 5, height: 5, left: 0, top: 0}
  - {name: a, width: 5, height: 5, left: -3, top: 0}
  - {width: 5, height: 5, left: 0, top: 0}
`
	_, err := sprite.ParseLayout([]byte(manifest))
	if err == nil {
		t.Fatal("expected validation errors")
	}
	msg := err.Error()
	for _, want := range []string{"non-negative", "duplicate sprite name", "has no name"} {
		if !strings.Contains(msg, want) {
			t.Errorf("error %q does not mention %q", msg, want)
		}
	}
}

func TestNames_NaturalOrder(t *testing.T) {
	m, err := sprite.LoadLayout(filepath.Join("testdata", "icons.yaml"))
	if err != nil {
		t.Fatalf("LoadLayout() error = %v", err)
	}
	names := m.Names()
	want := []string{"edit", "icon2", "icon10", "new", "new_hover"}
	if len(names) != len(want) {
		t.Fatalf("Names() = %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("Names() = %v, want %v", names, want)
		}
	}
}

func TestHasSelector(t *testing.T) {
	m, err := sprite.LoadLayout(filepath.Join("testdata", "icons.yaml"))
	if err != nil {
		t.Fatalf("LoadLayout() error = %v", err)
	}
	if !m.HasSelector("new", "hover") {
		t.Error("expected hover selector for sprite \"new\"")
	}
	if m.HasSelector("edit", "hover") {
		t.Error("unexpected hover selector for sprite \"edit\"")
	}
	if m.HasSelector("new", "active") {
		t.Error("unexpected active selector for sprite \"new\"")
	}
}

func TestLayoutMap_DataWithoutImage(t *testing.T) {
	m, err := sprite.LoadLayout(filepath.Join("testdata", "icons.yaml"))
	if err != nil {
		t.Fatalf("LoadLayout() error = %v", err)
	}
	if _, err := m.Data(); err == nil {
		t.Error("expected error from Data() when manifest names no image")
	}
}

func TestUnknownSpriteError_Message(t *testing.T) {
	err := error(&sprite.UnknownSpriteError{
		Sprite: "nwe",
		Map:    "icons",
		Valid:  []string{"edit", "new"},
	})
	want := `no sprite called "nwe" found in sprite map "icons", valid sprites are: edit, new`
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
	var unknown *sprite.UnknownSpriteError
	if !errors.As(err, &unknown) {
		t.Error("errors.As failed for UnknownSpriteError")
	}
}

func TestCSSClass(t *testing.T) {
	tests := []struct {
		sheet, name, want string
	}{
		{"icons", "new", "icons-new"},
		{"icons", "new_hover", "icons-new_hover"},
		{"My Icons", "big star", "my-icons-big-star"},
	}
	for _, tt := range tests {
		if got := sprite.CSSClass(tt.sheet, tt.name); got != tt.want {
			t.Errorf("CSSClass(%q, %q) = %q, want %q", tt.sheet, tt.name, got, tt.want)
		}
	}
}
