package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Storage.DBPath == "" {
		t.Error("default db_path should be set")
	}
	if cfg.UI.Theme != "mocha" {
		t.Errorf("default theme = %q, want mocha", cfg.UI.Theme)
	}
	if cfg.UI.TimeFormat != TimeFormatCompact {
		t.Errorf("default time_format = %q, want %q", cfg.UI.TimeFormat, TimeFormatCompact)
	}
}

func TestLoadFromMissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("LoadFrom() error: %v", err)
	}
	if cfg.UI.Theme != "mocha" {
		t.Errorf("theme = %q, want default mocha", cfg.UI.Theme)
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[storage]
db_path = "/tmp/aula-test.db"

[ui]
theme = "latte"
time_format = "12h"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom() error: %v", err)
	}
	if cfg.Storage.DBPath != "/tmp/aula-test.db" {
		t.Errorf("db_path = %q, want /tmp/aula-test.db", cfg.Storage.DBPath)
	}
	if cfg.UI.Theme != "latte" {
		t.Errorf("theme = %q, want latte", cfg.UI.Theme)
	}
	if cfg.UI.TimeFormat != TimeFormat12h {
		t.Errorf("time_format = %q, want 12h", cfg.UI.TimeFormat)
	}
}

func TestLoadFromEnvOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[ui]
theme = "latte"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	t.Setenv("AULA_DB_PATH", "/tmp/env.db")
	t.Setenv("AULA_UI_THEME", "frappe")
	t.Setenv("AULA_UI_TIME_FORMAT", "12h")

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom() error: %v", err)
	}
	if cfg.Storage.DBPath != "/tmp/env.db" {
		t.Errorf("db_path = %q, env should win", cfg.Storage.DBPath)
	}
	if cfg.UI.Theme != "frappe" {
		t.Errorf("theme = %q, env should win over the file", cfg.UI.Theme)
	}
	if cfg.UI.TimeFormat != TimeFormat12h {
		t.Errorf("time_format = %q, want 12h", cfg.UI.TimeFormat)
	}
}

func TestLoadFromInvalidTimeFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[ui]
time_format = "24h"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadFrom(path); err == nil {
		t.Error("LoadFrom() with bad time_format should fail validation")
	}
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}
	if got := expandPath("~/aula.db"); got != filepath.Join(home, "aula.db") {
		t.Errorf("expandPath(~/aula.db) = %q", got)
	}
	if got := expandPath("/abs/aula.db"); got != "/abs/aula.db" {
		t.Errorf("expandPath should leave absolute paths alone, got %q", got)
	}
}

func TestSaveToRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")

	cfg := Default()
	cfg.UI.Theme = "macchiato"
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo() error: %v", err)
	}

	loaded, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom() error: %v", err)
	}
	if loaded.UI.Theme != "macchiato" {
		t.Errorf("round-tripped theme = %q, want macchiato", loaded.UI.Theme)
	}
}
