package cli

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/muesli/termenv"

	"github.com/inferbench/inference-report/internal/format"
	"github.com/inferbench/inference-report/internal/orchestration"
	"github.com/inferbench/inference-report/internal/report"
	"github.com/inferbench/inference-report/internal/ui"
)

// ReportTitle is printed above the console table.
const ReportTitle = "Inference Benchmark Report"

// LevelSeparator splits column names into header levels.
const LevelSeparator = "."

// ReportPresenter renders reports as a console table.
type ReportPresenter struct{}

// Verify interface compliance.
var _ orchestration.ReportPresenter = ReportPresenter{}

// RenderReport writes the titled table for rep to out.
func (ReportPresenter) RenderReport(out io.Writer, rep *report.Report, includeComparison bool) error {
	_, err := io.WriteString(out, FormatReport(NewRenderer(out), rep, includeComparison)+"\n")
	return err
}

// NewRenderer returns a lipgloss renderer for out. Colors are dropped when
// the active theme disables them or out is not a terminal.
func NewRenderer(out io.Writer) *lipgloss.Renderer {
	re := lipgloss.NewRenderer(out)
	if !ui.ColorsEnabled() {
		re.SetColorProfile(termenv.Ascii)
	}
	return re
}

// DisplayColumns lists the measurement columns shown in the console table.
func DisplayColumns(includeComparison bool) []string {
	cols := []string{report.LatencyColumn, report.MemoryColumn, report.ThroughputColumn}
	if includeComparison {
		cols = append(cols, report.BaselineColumn, report.SpeedupColumn)
	}
	return cols
}

// HeaderLevels splits each name on "." and pads the shorter ones at the end
// with empty labels so every column has the same number of levels.
func HeaderLevels(names []string) [][]string {
	depth := 1
	levels := make([][]string, len(names))
	for i, name := range names {
		levels[i] = strings.Split(name, LevelSeparator)
		depth = max(depth, len(levels[i]))
	}
	for i := range levels {
		for len(levels[i]) < depth {
			levels[i] = append(levels[i], "")
		}
	}
	return levels
}

// FormatReport renders the title and table without writing anything.
func FormatReport(re *lipgloss.Renderer, rep *report.Report, includeComparison bool) string {
	return formatColumns(re, rep, DisplayColumns(includeComparison))
}

func formatColumns(re *lipgloss.Renderer, rep *report.Report, columns []string) string {
	theme := ui.GetCurrentTheme()

	// The top level goes in the table header; every deeper level becomes a
	// header-styled row above the body, with a blank index cell.
	levels := HeaderLevels(columns)
	depth := len(levels[0])
	headers := make([]string, 0, len(columns)+1)
	headers = append(headers, rep.Index())
	for _, lv := range levels {
		headers = append(headers, lv[0])
	}
	subRows := depth - 1
	rows := make([][]string, 0, subRows+rep.Len())
	for d := 1; d < depth; d++ {
		row := make([]string, 0, len(columns)+1)
		row = append(row, "")
		for _, lv := range levels {
			row = append(row, lv[d])
		}
		rows = append(rows, row)
	}

	records := rep.Records()
	bools := make([][]int, len(records))
	for r, rec := range records {
		row := make([]string, 0, len(columns)+1)
		row = append(row, rec.Key)
		flags := make([]int, len(columns)+1)
		for c, col := range columns {
			v := rec.Value(col)
			row = append(row, format.FormatValue(v))
			if b, ok := v.Truth(); ok {
				flags[c+1] = 1
				if !b {
					flags[c+1] = -1
				}
			}
		}
		rows = append(rows, row)
		bools[r] = flags
	}

	base := re.NewStyle().Padding(0, 1)
	headerStyle := base.Foreground(theme.Header).Bold(true)
	indexStyle := base.Foreground(theme.Index)
	trueStyle := base.Foreground(theme.True)
	falseStyle := base.Foreground(theme.False)

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(re.NewStyle().Foreground(theme.Border)).
		BorderRow(false).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow || row < subRows {
				return headerStyle
			}
			body := row - subRows
			switch {
			case col == 0:
				return indexStyle
			case bools[body][col] > 0:
				return trueStyle
			case bools[body][col] < 0:
				return falseStyle
			default:
				return base.Align(lipgloss.Right)
			}
		})

	title := re.NewStyle().Bold(true).Foreground(theme.Title).Render(ReportTitle)
	return title + "\n" + t.String()
}
