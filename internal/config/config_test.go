package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFrom(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := `default_roster = "class"

[rosters]
class = "/data/class"
tutoring = "/data/tutoring"

[ui]
accent = "39"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if cfg.DefaultRoster != "class" {
		t.Errorf("DefaultRoster = %q", cfg.DefaultRoster)
	}
	if cfg.UI.Accent != "39" {
		t.Errorf("Accent = %q", cfg.UI.Accent)
	}

	got, err := cfg.GetRosterPath("")
	if err != nil || got != "/data/class" {
		t.Errorf("GetRosterPath(\"\") = %q, %v", got, err)
	}
	got, err = cfg.GetRosterPath("tutoring")
	if err != nil || got != "/data/tutoring" {
		t.Errorf("GetRosterPath(tutoring) = %q, %v", got, err)
	}
	if _, err := cfg.GetRosterPath("nope"); err == nil {
		t.Error("unknown roster name should fail")
	}
}

func TestLoadFromInvalid(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, []byte("default_roster = ["), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFrom(path); err == nil {
		t.Error("invalid TOML should fail to load")
	}
}

func TestGetRosterPathFallsBackToDefaultDir(t *testing.T) {
	cfg := &Config{}
	got, err := cfg.GetRosterPath("")
	if err != nil {
		t.Fatalf("GetRosterPath: %v", err)
	}
	if got == "" {
		t.Error("empty fallback roster dir")
	}
}
