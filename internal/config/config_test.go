package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg != Default() {
		t.Errorf("expected defaults, got %+v", cfg)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	data := `
db_path = "/tmp/sheet.db"
autosave = false

[theme]
cursor = "201"
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.DBPath != "/tmp/sheet.db" {
		t.Errorf("DBPath = %q", cfg.DBPath)
	}
	if cfg.Autosave {
		t.Error("autosave should be false")
	}
	if cfg.Theme.Cursor != "201" {
		t.Errorf("Theme.Cursor = %q", cfg.Theme.Cursor)
	}
	// untouched keys keep their defaults
	if cfg.Theme.Error != Default().Theme.Error {
		t.Errorf("Theme.Error = %q", cfg.Theme.Error)
	}
}

func TestLoadRejectsMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("db_path = ["), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected error for malformed toml")
	}
}
