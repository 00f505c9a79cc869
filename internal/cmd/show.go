package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"nickandperla.net/decagrid/internal/cell"
	"nickandperla.net/decagrid/internal/style"
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the whole grid",
	Args:  cobra.NoArgs,
	RunE:  runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
}

const showColWidth = 10

func runShow(cmd *cobra.Command, args []string) error {
	sheet, _, err := openSheet()
	if err != nil {
		return err
	}
	defer sheet.Close()

	cells := sheet.Cells()

	var header strings.Builder
	header.WriteString(strings.Repeat(" ", 4))
	for col := 0; col < cell.Columns; col++ {
		header.WriteString(fmt.Sprintf("%*c", showColWidth, 'A'+col))
	}
	fmt.Println(style.Header.Render(header.String()))

	for row := 0; row < cell.Rows; row++ {
		var line strings.Builder
		line.WriteString(style.Header.Render(fmt.Sprintf("%-4d", row+1)))
		for col := 0; col < cell.Columns; col++ {
			rec := cells[cell.At(col, row)]
			display := rec.Display
			if len(display) > showColWidth-1 {
				display = display[:showColWidth-1]
			}
			// pad before styling so ANSI escapes do not skew alignment
			padded := fmt.Sprintf("%*s", showColWidth, display)
			if rec.IsError() {
				padded = style.Error.Render(padded)
			}
			line.WriteString(padded)
		}
		fmt.Println(line.String())
	}
	return nil
}
