package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"nickandperla.net/decagrid/internal/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Open the interactive grid",
	Long: `Open the sheet in a full-screen terminal grid.

Arrow keys move the cursor, enter edits the selected cell, backspace
clears it, q quits. Edits recalculate dependents immediately and are
persisted according to the autosave setting.`,
	Args: cobra.NoArgs,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, args []string) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return fmt.Errorf("tui requires a terminal")
	}

	sheet, cfg, err := openSheet()
	if err != nil {
		return err
	}
	defer sheet.Close()

	if err := tui.Run(sheet, cfg.Theme); err != nil {
		return err
	}

	if !flagNoSave && !cfg.Autosave {
		return sheet.Save()
	}
	return nil
}
