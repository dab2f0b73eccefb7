package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadConfiguration_NoFile(t *testing.T) {
	cfg, err := LoadConfiguration("")
	if err != nil {
		t.Fatalf("LoadConfiguration() with empty path error = %v", err)
	}

	if cfg == nil {
		t.Fatal("LoadConfiguration() returned nil config")
	}

	if cfg.Version != 1 {
		t.Errorf("Default config version = %d, want 1", cfg.Version)
	}
	if cfg.Logging.ConsoleLogger.Level != "normal" {
		t.Errorf("Default console log level = %q, want %q", cfg.Logging.ConsoleLogger.Level, "normal")
	}
	if cfg.Logging.FileLogger.Level != "none" {
		t.Errorf("Default file log level = %q, want %q", cfg.Logging.FileLogger.Level, "none")
	}
}

func TestLoadConfiguration_WithFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	configContent := `version: 1
sprites:
  selector_prefix: tb
logging:
  console:
    level: debug
  file:
    level: none
`

	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	cfg, err := LoadConfiguration(configPath)
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}

	if cfg.Sprites.SelectorPrefix != "tb" {
		t.Errorf("SelectorPrefix = %q, want %q", cfg.Sprites.SelectorPrefix, "tb")
	}
	if cfg.Logging.ConsoleLogger.Level != "debug" {
		t.Errorf("Console log level = %q, want %q", cfg.Logging.ConsoleLogger.Level, "debug")
	}
}

func TestLoadConfiguration_UnknownField(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	if err := os.WriteFile(configPath, []byte("version: 1\nbogus: true\n"), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	if _, err := LoadConfiguration(configPath); err == nil {
		t.Fatal("expected error for unknown configuration field")
	}
}

func TestDump(t *testing.T) {
	cfg, err := LoadConfiguration("")
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}
	data, err := Dump(cfg)
	if err != nil {
		t.Fatalf("Dump() error = %v", err)
	}
	if !strings.Contains(string(data), "version: 1") {
		t.Errorf("dumped config missing version:\n%s", data)
	}
}
