package tui

import (
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/inferbench/inference-report/internal/ui"
)

// Style variables for the report browser, rebuilt from the ui theme by
// initTUIStyles.
var (
	headerStyle lipgloss.Style
	titleStyle  lipgloss.Style
	dimStyle    lipgloss.Style
	detailStyle lipgloss.Style
	keyStyle    lipgloss.Style
	trueStyle   lipgloss.Style
	falseStyle  lipgloss.Style
	tableStyles table.Styles
)

func init() {
	initTUIStyles()
}

// initTUIStyles rebuilds all styles from the current ui theme. Run calls it
// again after the theme has been chosen.
func initTUIStyles() {
	t := ui.GetCurrentTheme()

	headerStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Title).
		Padding(0, 1)

	titleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Title)

	dimStyle = lipgloss.NewStyle().
		Foreground(t.Dim)

	detailStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Padding(0, 1)

	keyStyle = lipgloss.NewStyle().
		Foreground(t.Index)

	trueStyle = lipgloss.NewStyle().
		Foreground(t.True)

	falseStyle = lipgloss.NewStyle().
		Foreground(t.False)

	tableStyles = table.DefaultStyles()
	tableStyles.Header = tableStyles.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(t.Border).
		BorderBottom(true).
		Foreground(t.Header).
		Bold(true)
	tableStyles.Selected = tableStyles.Selected.
		Foreground(t.Accent).
		Bold(true)
}
