package sprite_test

import (
	"path/filepath"
	"strings"
	"testing"

	"spritefn/sprite"
)

func TestWriteCSS(t *testing.T) {
	m, err := sprite.LoadLayout(filepath.Join("testdata", "icons.yaml"))
	if err != nil {
		t.Fatalf("LoadLayout() error = %v", err)
	}

	var sb strings.Builder
	if _, err := sprite.WriteCSS(&sb, m, ""); err != nil {
		t.Fatalf("WriteCSS() error = %v", err)
	}
	out := sb.String()

	want := `.icons-new {
  background: url('/images/icons-s1a2b3c4d5.png') no-repeat -10px -5px;
  width: 20px;
  height: 10px;
}`
	if !strings.Contains(out, want) {
		t.Errorf("generated CSS missing rule for sprite \"new\":\n%s", out)
	}

	// one rule per sprite, natural name order
	if got := strings.Count(out, "background:"); got != 5 {
		t.Errorf("rule count = %d, want 5", got)
	}
	if strings.Index(out, ".icons-icon2 ") > strings.Index(out, ".icons-icon10 ") {
		t.Error("expected icon2 rule before icon10 rule (natural order)")
	}
}

func TestWriteCSS_Prefix(t *testing.T) {
	m, err := sprite.LoadLayout(filepath.Join("testdata", "icons.yaml"))
	if err != nil {
		t.Fatalf("LoadLayout() error = %v", err)
	}

	var sb strings.Builder
	if _, err := sprite.WriteCSS(&sb, m, "tb"); err != nil {
		t.Fatalf("WriteCSS() error = %v", err)
	}
	if !strings.Contains(sb.String(), ".tb-edit {") {
		t.Errorf("expected prefixed class names, got:\n%s", sb.String())
	}
}
