// Package style provides consistent terminal styling for decagrid output.
package style

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"nickandperla.net/decagrid/internal/cell"
)

var (
	// Error style for sentinel cell values and failures (red)
	Error = lipgloss.NewStyle().
		Foreground(lipgloss.Color("9")).
		Bold(true)

	// Header style for grid row and column labels (blue)
	Header = lipgloss.NewStyle().
		Foreground(lipgloss.Color("12")).
		Bold(true)

	// Dim style for secondary information (gray)
	Dim = lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))

	// Bold style for emphasis
	Bold = lipgloss.NewStyle().
		Bold(true)
)

// PrintError prints an error message with consistent formatting.
// The format and args work like fmt.Printf.
func PrintError(format string, args ...interface{}) {
	fmt.Printf("%s %s\n", Error.Render("error:"), fmt.Sprintf(format, args...))
}

// CellValue styles a display value: sentinels are rendered in the error
// style, everything else passes through unstyled.
func CellValue(display string) string {
	if display == cell.SentinelError || display == cell.SentinelCircular {
		return Error.Render(display)
	}
	return display
}
