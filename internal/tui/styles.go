// Package tui provides the interactive grid view for a decagrid sheet.
package tui

import (
	"github.com/charmbracelet/lipgloss"

	"nickandperla.net/decagrid/internal/config"
)

// styles holds the lipgloss styles for one TUI session, derived from the
// configured theme.
type styles struct {
	header   lipgloss.Style
	cell     lipgloss.Style
	cursor   lipgloss.Style
	errCell  lipgloss.Style
	status   lipgloss.Style
	errLabel lipgloss.Style
	help     lipgloss.Style
}

func newStyles(theme config.Theme) styles {
	base := lipgloss.NewStyle().Width(cellWidth).Align(lipgloss.Right)
	return styles{
		header: lipgloss.NewStyle().
			Width(cellWidth).
			Align(lipgloss.Center).
			Bold(true).
			Foreground(lipgloss.Color(theme.Header)),
		cell: base,
		cursor: base.
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color(theme.Cursor)).
			Bold(true),
		errCell: base.
			Foreground(lipgloss.Color(theme.Error)).
			Bold(true),
		status: lipgloss.NewStyle().Padding(0, 1),
		errLabel: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Error)).
			Bold(true),
		help: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Padding(0, 1),
	}
}
