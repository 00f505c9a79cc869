package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var clearCmd = &cobra.Command{
	Use:   "clear [cell]",
	Short: "Clear one cell, or the whole sheet with --all",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runClear,
}

var clearAll bool

func init() {
	rootCmd.AddCommand(clearCmd)
	clearCmd.Flags().BoolVar(&clearAll, "all", false, "clear every cell")
}

func runClear(cmd *cobra.Command, args []string) error {
	if clearAll == (len(args) == 1) {
		return fmt.Errorf("specify either a cell or --all")
	}

	sheet, cfg, err := openSheet()
	if err != nil {
		return err
	}
	defer sheet.Close()

	if clearAll {
		if err := sheet.Reset(); err != nil {
			return err
		}
	} else {
		if err := sheet.Update(args[0], ""); err != nil {
			return err
		}
	}

	if !flagNoSave && !cfg.Autosave {
		return sheet.Save()
	}
	return nil
}
