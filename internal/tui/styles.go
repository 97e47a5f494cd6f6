// SPDX-License-Identifier: MIT

package tui

import "github.com/charmbracelet/lipgloss"

// Palette
var (
	colorAccent  = lipgloss.Color("#8BC34A")
	colorBorder  = lipgloss.Color("#2a3850")
	colorMuted   = lipgloss.Color("#6b7a90")
	colorDanger  = lipgloss.Color("#e53935")
	colorWarning = lipgloss.Color("#FFC107")
)

// Styles groups the lipgloss styles used by the view.
type Styles struct {
	Title     lipgloss.Style
	Label     lipgloss.Style
	InputErr  lipgloss.Style
	Cell      lipgloss.Style
	CellMoved lipgloss.Style
	Toast     lipgloss.Style
	Footer    lipgloss.Style
}

// DefaultStyles returns the default styles for cells of the given inner width.
func DefaultStyles(cellWidth int) Styles {
	cell := lipgloss.NewStyle().
		Width(cellWidth).
		Align(lipgloss.Center).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorBorder)

	return Styles{
		Title:     lipgloss.NewStyle().Bold(true).Foreground(colorAccent).MarginBottom(1),
		Label:     lipgloss.NewStyle().Bold(true),
		InputErr:  lipgloss.NewStyle().Foreground(colorDanger),
		Cell:      cell,
		CellMoved: cell.BorderForeground(colorAccent).Foreground(colorAccent).Bold(true),
		Toast:     lipgloss.NewStyle().Foreground(colorWarning).Italic(true),
		Footer:    lipgloss.NewStyle().Foreground(colorMuted).MarginTop(1),
	}
}
