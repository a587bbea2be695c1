package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/inferbench/inference-report/internal/cli"
)

// HeaderModel renders the top bar: title, version, row count and sort key.
type HeaderModel struct {
	version    string
	rows       int
	sortColumn string
	width      int
}

// NewHeaderModel creates a new header.
func NewHeaderModel(version string, rows int) HeaderModel {
	return HeaderModel{version: version, rows: rows}
}

// SetSortColumn records the column the table is ordered by.
func (h *HeaderModel) SetSortColumn(column string) {
	h.sortColumn = column
}

// SetWidth updates the available width.
func (h *HeaderModel) SetWidth(w int) {
	h.width = w
}

// View renders the header.
func (h HeaderModel) View() string {
	titleText := cli.ReportTitle
	if h.version != "" && h.version != "dev" {
		titleText += " " + h.version
	}
	pipe := dimStyle.Render(" | ")
	row := titleStyle.Render(titleText) +
		pipe + dimStyle.Render(fmt.Sprintf("%d runs", h.rows)) +
		pipe + dimStyle.Render("sorted by "+h.sortColumn+" ↓")

	style := headerStyle
	if h.width > 0 && lipgloss.Width(row) < h.width {
		style = style.Width(h.width)
	}
	return style.Render(row)
}
