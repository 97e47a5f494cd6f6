// SPDX-License-Identifier: MIT

package tui

import (
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// View renders the screen.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.showHelp {
		return m.helpText
	}

	var sb strings.Builder

	sb.WriteString(m.styles.Title.Render("transgrid"))
	sb.WriteString("\n")
	sb.WriteString(m.styles.Label.Render("Matrix size (N): "))
	sb.WriteString(m.input.View())
	sb.WriteString("\n")
	if m.inputErr != "" {
		sb.WriteString(m.styles.InputErr.Render(m.inputErr))
	}
	sb.WriteString("\n\n")

	if m.cols > 0 {
		sb.WriteString(m.renderGrid())
		sb.WriteString("\n")
	}

	if m.toast != "" {
		sb.WriteString(m.styles.Toast.Render(m.toast))
		sb.WriteString("\n")
	}

	sb.WriteString(m.styles.Footer.Render(m.footer()))

	return sb.String()
}

// renderGrid lays the snapshot out in N columns of bordered cells.
func (m Model) renderGrid() string {
	rows := make([]string, 0, m.cols)
	cells := make([]string, m.cols)
	for r := 0; r < len(m.cells)/m.cols; r++ {
		for c := 0; c < m.cols; c++ {
			pos := r*m.cols + c
			style := m.styles.Cell
			if pos == m.highlight[0] || pos == m.highlight[1] {
				style = m.styles.CellMoved
			}
			cells[c] = style.Render(strconv.Itoa(m.cells[pos]))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// footer lists the keys valid in the current state; transpose is offered
// only once a matrix is shown.
func (m Model) footer() string {
	parts := []string{"enter: go"}
	if m.ctrl.TransposeVisible() {
		if m.input.Focused() {
			parts = append(parts, "ctrl+t: transpose")
		} else {
			parts = append(parts, "t: transpose")
		}
	}
	parts = append(parts, "tab: focus")
	if !m.input.Focused() {
		parts = append(parts, "?: help", "q: quit")
	} else {
		parts = append(parts, "ctrl+c: quit")
	}

	return strings.Join(parts, " • ")
}

// Run starts the program on the alternate screen and blocks until exit.
func Run(m Model) error {
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
