// Package cmd implements the decagrid CLI.
package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"nickandperla.net/decagrid/internal/config"
	"nickandperla.net/decagrid/internal/style"
	"nickandperla.net/decagrid/pkg/decagrid"
)

var (
	flagDB     string
	flagConfig string
	flagNoSave bool
)

var rootCmd = &cobra.Command{
	Use:   "decagrid",
	Short: "A 10x10 spreadsheet with incremental formula recalculation",
	Long: `decagrid is a small spreadsheet engine: 100 cells (A1-J10), arithmetic
formulas with cell references, dependency tracking, and incremental
recalculation. Sheets persist to a SQLite database between runs.

Examples:
  decagrid set A1 5
  decagrid set B1 '=A1+3'
  decagrid get B1
  decagrid show
  decagrid tui`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the CLI and returns the process exit code.
func Execute() int {
	if err := rootCmd.Execute(); err != nil {
		style.PrintError("%v", err)
		return 1
	}
	return 0
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagDB, "db", "", "sheet database path (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "config file path")
	rootCmd.PersistentFlags().BoolVar(&flagNoSave, "no-save", false, "do not persist edits")
}

// loadConfig reads the configured or default config file.
func loadConfig() (config.Config, error) {
	path := flagConfig
	if path == "" {
		var err error
		path, err = config.DefaultPath()
		if err != nil {
			return config.Default(), err
		}
	}
	return config.Load(path)
}

// openSheet builds a sheet from flags and config. With persistence enabled
// the previous sheet contents are replayed before the first command runs.
func openSheet() (*decagrid.Sheet, config.Config, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, cfg, err
	}

	if flagNoSave {
		s, err := decagrid.New()
		return s, cfg, err
	}

	dbPath := flagDB
	if dbPath == "" {
		dbPath = cfg.DBPath
	}
	if dbPath == "" {
		dbPath, err = config.DefaultDBPath()
		if err != nil {
			return nil, cfg, err
		}
	}
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, cfg, fmt.Errorf("creating database directory: %w", err)
	}

	opts := []decagrid.Option{decagrid.WithSQLiteStore(dbPath)}
	if cfg.Autosave {
		opts = append(opts, decagrid.WithAutosave())
	}

	s, err := decagrid.New(opts...)
	return s, cfg, err
}
