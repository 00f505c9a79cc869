package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"nickandperla.net/decagrid/internal/cell"
	"nickandperla.net/decagrid/internal/config"
	"nickandperla.net/decagrid/pkg/decagrid"
)

// cellWidth is the rendered width of one grid column.
const cellWidth = 9

// Model is the bubbletea model for the grid TUI. It talks to the sheet
// through Update(id, raw) and per-cell snapshots only.
type Model struct {
	sheet *decagrid.Sheet

	// cursor position, zero-based
	col int
	row int

	editing bool
	input   textinput.Model

	keys   KeyMap
	styles styles
	width  int
	height int
}

// NewModel creates a grid TUI over an existing sheet.
func NewModel(sheet *decagrid.Sheet, theme config.Theme) *Model {
	input := textinput.New()
	input.CharLimit = 128
	input.Width = 40

	return &Model{
		sheet:  sheet,
		input:  input,
		keys:   DefaultKeyMap(),
		styles: newStyles(theme),
	}
}

// cursorID returns the identifier of the cell under the cursor.
func (m *Model) cursorID() cell.ID {
	return cell.At(m.col, m.row)
}

// Init initializes the model.
func (m *Model) Init() tea.Cmd {
	return tea.SetWindowTitle("decagrid")
}

// Update handles input events.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if m.editing {
			return m.updateEditing(msg)
		}
		return m.updateNavigating(msg)
	}

	return m, nil
}

func (m *Model) updateNavigating(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.row > 0 {
			m.row--
		}
	case key.Matches(msg, m.keys.Down):
		if m.row < cell.Rows-1 {
			m.row++
		}
	case key.Matches(msg, m.keys.Left):
		if m.col > 0 {
			m.col--
		}
	case key.Matches(msg, m.keys.Right):
		if m.col < cell.Columns-1 {
			m.col++
		}

	case key.Matches(msg, m.keys.Clear):
		m.sheet.Update(string(m.cursorID()), "")

	case key.Matches(msg, m.keys.Edit):
		rec, err := m.sheet.Cell(string(m.cursorID()))
		if err != nil {
			return m, nil
		}
		m.editing = true
		m.input.SetValue(rec.RawInput)
		m.input.CursorEnd()
		m.input.Focus()
		return m, textinput.Blink
	}

	return m, nil
}

func (m *Model) updateEditing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.editing = false
		m.input.Blur()
		return m, nil

	case key.Matches(msg, m.keys.Accept):
		raw := m.input.Value()
		m.editing = false
		m.input.Blur()
		m.sheet.Update(string(m.cursorID()), raw)
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View renders the grid, a status line for the selected cell, and either
// the edit prompt or a help line.
func (m *Model) View() string {
	cells := m.sheet.Cells()

	var b strings.Builder

	// column header row
	b.WriteString(m.styles.header.Render(""))
	for col := 0; col < cell.Columns; col++ {
		b.WriteString(m.styles.header.Render(string(rune('A' + col))))
	}
	b.WriteString("\n")

	for row := 0; row < cell.Rows; row++ {
		b.WriteString(m.styles.header.Render(fmt.Sprintf("%d", row+1)))
		for col := 0; col < cell.Columns; col++ {
			rec := cells[cell.At(col, row)]
			b.WriteString(m.renderCell(rec, col == m.col && row == m.row))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.statusLine(cells[m.cursorID()]))
	b.WriteString("\n")

	if m.editing {
		b.WriteString(m.styles.status.Render(fmt.Sprintf("%s = %s", m.cursorID(), m.input.View())))
	} else {
		b.WriteString(m.styles.help.Render("arrows move · enter edit · bksp clear · q quit"))
	}
	b.WriteString("\n")

	return b.String()
}

func (m *Model) renderCell(rec decagrid.Record, selected bool) string {
	display := rec.Display
	if len(display) > cellWidth-1 {
		display = display[:cellWidth-1]
	}

	switch {
	case selected:
		return m.styles.cursor.Render(display)
	case rec.IsError():
		return m.styles.errCell.Render(display)
	default:
		return m.styles.cell.Render(display)
	}
}

// statusLine shows the selected cell's raw input and any error reason.
func (m *Model) statusLine(rec decagrid.Record) string {
	line := fmt.Sprintf("%s: %s", m.cursorID(), rec.RawInput)
	if rec.IsError() {
		line += "  " + m.styles.errLabel.Render(rec.ErrorState)
	}
	return m.styles.status.Render(line)
}

// Run starts the TUI over the given sheet and blocks until exit.
func Run(sheet *decagrid.Sheet, theme config.Theme) error {
	p := tea.NewProgram(NewModel(sheet, theme), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
