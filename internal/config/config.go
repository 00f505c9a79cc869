// Package config loads the decagrid CLI configuration file.
package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Theme holds terminal color overrides (ANSI or hex color strings).
type Theme struct {
	Cursor string `toml:"cursor"`
	Error  string `toml:"error"`
	Header string `toml:"header"`
}

// Config is the decagrid CLI configuration.
type Config struct {
	// DBPath is the SQLite sheet database. Empty means no persistence.
	DBPath string `toml:"db_path"`
	// Autosave mirrors every edit into the database as it happens.
	Autosave bool  `toml:"autosave"`
	Theme    Theme `toml:"theme"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Autosave: true,
		Theme: Theme{
			Cursor: "212",
			Error:  "9",
			Header: "12",
		},
	}
}

// DefaultPath returns the conventional config file location,
// e.g. ~/.config/decagrid/config.toml.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "decagrid", "config.toml"), nil
}

// DefaultDBPath returns the conventional sheet database location.
func DefaultDBPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "decagrid", "sheet.db"), nil
}

// Load reads a config file over the defaults. A missing file is not an
// error; the defaults are returned unchanged.
func Load(path string) (Config, error) {
	cfg := Default()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
