package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/inferbench/inference-report/internal/cli"
	"github.com/inferbench/inference-report/internal/format"
	"github.com/inferbench/inference-report/internal/report"
	"github.com/inferbench/inference-report/internal/ui"
)

// Layout constants for the report browser.
const (
	headerHeight  = 1
	footerHeight  = 1
	minBodyHeight = 3
)

// LayoutManager holds the terminal dimensions.
type LayoutManager struct {
	width  int
	height int
}

// bodyHeight returns the rows left for the table once the header, the
// footer and the optional detail pane are placed.
func (l LayoutManager) bodyHeight(detailLines int) int {
	h := l.height - headerHeight - footerHeight - detailLines
	if h < minBodyHeight {
		h = minBodyHeight
	}
	return h
}

// Model is the bubbletea model of the report browser.
type Model struct {
	header HeaderModel
	table  table.Model
	help   help.Model
	keymap KeyMap

	rep         *report.Report
	columns     []string
	sortColumns []string
	sortIdx     int
	showDetails bool

	LayoutManager
}

// NewModel creates a browser over a copy of rep. includeComparison adds the
// baseline and speedup columns.
func NewModel(rep *report.Report, includeComparison bool, version string) Model {
	view, err := report.Concat(rep)
	if err != nil {
		view = rep
	}

	sortColumns := []string{report.ThroughputColumn, report.LatencyColumn, report.MemoryColumn}
	if includeComparison {
		sortColumns = append(sortColumns, report.SpeedupColumn)
	}

	m := Model{
		header:      NewHeaderModel(version, view.Len()),
		help:        help.New(),
		keymap:      DefaultKeyMap(),
		rep:         view,
		columns:     cli.DisplayColumns(includeComparison),
		sortColumns: sortColumns,
	}
	m.table = table.New(table.WithFocused(true))
	m.table.SetStyles(tableStyles)
	m.applySort()
	return m
}

// SortColumn returns the column the rows are ordered by.
func (m Model) SortColumn() string {
	return m.sortColumns[m.sortIdx]
}

// SelectedKey returns the experiment_hash of the highlighted row.
func (m Model) SelectedKey() string {
	row := m.table.SelectedRow()
	if len(row) == 0 {
		return ""
	}
	return row[0]
}

func (m *Model) applySort() {
	m.rep.SortDescending(m.SortColumn())
	m.header.SetSortColumn(m.SortColumn())

	titles := append([]string{m.rep.Index()}, m.columns...)
	widths := make([]int, len(titles))
	for i, t := range titles {
		widths[i] = lipgloss.Width(t)
	}

	rows := make([]table.Row, 0, m.rep.Len())
	for _, rec := range m.rep.Records() {
		row := table.Row{rec.Key}
		for _, col := range m.columns {
			row = append(row, format.FormatValue(rec.Value(col)))
		}
		for i, cell := range row {
			widths[i] = max(widths[i], lipgloss.Width(cell))
		}
		rows = append(rows, row)
	}

	cols := make([]table.Column, len(titles))
	for i, t := range titles {
		cols[i] = table.Column{Title: t, Width: widths[i]}
	}
	m.table.SetRows(nil)
	m.table.SetColumns(cols)
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keymap.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keymap.Sort):
		m.sortIdx = (m.sortIdx + 1) % len(m.sortColumns)
		m.applySort()
		return m, nil

	case key.Matches(msg, m.keymap.Details):
		m.showDetails = !m.showDetails
		m.layout()
		return m, nil

	case key.Matches(msg, m.keymap.Top):
		m.table.GotoTop()
		return m, nil

	case key.Matches(msg, m.keymap.Bottom):
		m.table.GotoBottom()
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m *Model) layout() {
	m.header.SetWidth(m.width)
	m.help.Width = m.width
	detail := 0
	if m.showDetails {
		detail = lipgloss.Height(m.detailView())
	}
	m.table.SetHeight(m.bodyHeight(detail))
}

// detailView lists every column of the selected run, including the config
// columns the table hides.
func (m Model) detailView() string {
	rec, ok := m.rep.Record(m.SelectedKey())
	if !ok {
		return detailStyle.Render(dimStyle.Render("no run selected"))
	}
	var b strings.Builder
	b.WriteString(keyStyle.Render(m.rep.Index() + ": " + rec.Key))
	for _, col := range rec.Columns() {
		b.WriteString("\n")
		v := rec.Value(col)
		text := v.String()
		if truth, isBool := v.Truth(); isBool {
			if truth {
				text = trueStyle.Render(ui.TrueGlyph)
			} else {
				text = falseStyle.Render(ui.FalseGlyph)
			}
		}
		fmt.Fprintf(&b, "%s %s", dimStyle.Render(col+":"), text)
	}
	return detailStyle.Render(b.String())
}

// View implements tea.Model.
func (m Model) View() string {
	parts := []string{m.header.View(), m.table.View()}
	if m.showDetails {
		parts = append(parts, m.detailView())
	}
	parts = append(parts, m.help.View(m.keymap))
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// Run opens the browser on the terminal and blocks until the user quits or
// ctx is cancelled.
func Run(ctx context.Context, rep *report.Report, includeComparison bool, version string) error {
	// Rebuild styles from the theme chosen by the app.
	initTUIStyles()

	p := tea.NewProgram(NewModel(rep, includeComparison, version), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("report browser: %w", err)
	}
	return nil
}
