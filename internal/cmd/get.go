package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"nickandperla.net/decagrid/internal/style"
)

var getRaw bool

var getCmd = &cobra.Command{
	Use:   "get <cell>",
	Short: "Display a cell's value",
	Args:  cobra.ExactArgs(1),
	RunE:  runGet,
}

func init() {
	rootCmd.AddCommand(getCmd)
	getCmd.Flags().BoolVar(&getRaw, "raw", false, "print the raw input instead of the display value")
}

func runGet(cmd *cobra.Command, args []string) error {
	sheet, _, err := openSheet()
	if err != nil {
		return err
	}
	defer sheet.Close()

	rec, err := sheet.Cell(args[0])
	if err != nil {
		return err
	}

	if getRaw {
		fmt.Println(rec.RawInput)
		return nil
	}

	fmt.Println(style.CellValue(rec.Display))
	if rec.IsError() {
		fmt.Printf("%s\n", style.Dim.Render(rec.ErrorState))
	}
	return nil
}
