package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"nickandperla.net/decagrid/internal/style"
)

var setCmd = &cobra.Command{
	Use:   "set <cell> <value>",
	Short: "Set a cell's raw input",
	Long: `Set a cell to a literal or a formula and recalculate its dependents.

A value starting with '=' is a formula; quote it so the shell does not
interpret it.

Examples:
  decagrid set A1 5
  decagrid set B1 '=A1+3'`,
	Args: cobra.ExactArgs(2),
	RunE: runSet,
}

func init() {
	rootCmd.AddCommand(setCmd)
}

func runSet(cmd *cobra.Command, args []string) error {
	sheet, cfg, err := openSheet()
	if err != nil {
		return err
	}
	defer sheet.Close()

	id, raw := args[0], args[1]
	if err := sheet.Update(id, raw); err != nil {
		return err
	}
	if !flagNoSave && !cfg.Autosave {
		// explicit save covers the autosave=false configuration
		if err := sheet.Save(); err != nil {
			return err
		}
	}

	rec, err := sheet.Cell(id)
	if err != nil {
		return err
	}
	fmt.Printf("%s = %s\n", id, style.CellValue(rec.Display))
	if rec.IsError() {
		fmt.Printf("  %s\n", style.Dim.Render(rec.ErrorState))
	}
	return nil
}
