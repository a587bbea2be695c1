package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/inferbench/inference-report/internal/report"
	"github.com/inferbench/inference-report/internal/ui"
)

func browserReport(t *testing.T) *report.Report {
	t.Helper()
	rep := report.New(report.IndexColumn)
	rows := []struct {
		key        string
		throughput float64
		latency    float64
	}{
		{"fast", 30, 0.01},
		{"mid", 20, 0.5},
		{"slow", 10, 0.2},
	}
	for _, r := range rows {
		rec := report.NewRecord()
		rec.Key = r.key
		rec.Set("backend.name", report.Text("pytorch"))
		rec.Set(report.ThroughputColumn, report.Number(r.throughput))
		rec.Set(report.LatencyColumn, report.Number(r.latency))
		if err := rep.Append(rec); err != nil {
			t.Fatal(err)
		}
	}
	return rep
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return model, cmd
}

func TestNewModel(t *testing.T) {
	rep := browserReport(t)
	m := NewModel(rep, false, "dev")

	if got := m.SortColumn(); got != report.ThroughputColumn {
		t.Errorf("SortColumn = %q, want throughput", got)
	}
	if got := m.SelectedKey(); got != "fast" {
		t.Errorf("SelectedKey = %q, want fast", got)
	}
	if got := len(m.table.Rows()); got != 3 {
		t.Errorf("rows = %d, want 3", got)
	}
}

func TestModel_SortCyclesColumns(t *testing.T) {
	rep := browserReport(t)
	m := NewModel(rep, true, "dev")

	m, _ = update(t, m, keyRunes("s"))
	if got := m.SortColumn(); got != report.LatencyColumn {
		t.Fatalf("SortColumn = %q, want latency", got)
	}
	if got := m.SelectedKey(); got != "mid" {
		t.Errorf("top row by latency = %q, want mid", got)
	}

	for range m.sortColumns[1:] {
		m, _ = update(t, m, keyRunes("s"))
	}
	if got := m.SortColumn(); got != report.ThroughputColumn {
		t.Errorf("sort should wrap around to throughput, got %q", got)
	}

	if got := rep.Keys(); strings.Join(got, ",") != "fast,mid,slow" {
		t.Errorf("browser must not reorder the caller's report, got %v", got)
	}
}

func TestModel_NavigationAndDetails(t *testing.T) {
	orig := ui.GetCurrentTheme()
	ui.SetCurrentTheme(ui.NoColorTheme)
	initTUIStyles()
	t.Cleanup(func() {
		ui.SetCurrentTheme(orig)
		initTUIStyles()
	})

	m := NewModel(browserReport(t), false, "v1.2.3")
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	if got := m.SelectedKey(); got != "mid" {
		t.Fatalf("SelectedKey after down = %q, want mid", got)
	}

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	view := m.View()
	for _, want := range []string{"Inference Benchmark Report v1.2.3", "3 runs", "backend.name: pytorch", "experiment_hash: mid"} {
		if !strings.Contains(view, want) {
			t.Errorf("view should contain %q, got:\n%s", want, view)
		}
	}

	m, _ = update(t, m, keyRunes("G"))
	if got := m.SelectedKey(); got != "slow" {
		t.Errorf("SelectedKey after G = %q, want slow", got)
	}
	m, _ = update(t, m, keyRunes("g"))
	if got := m.SelectedKey(); got != "fast" {
		t.Errorf("SelectedKey after g = %q, want fast", got)
	}
}

func TestModel_HelpToggle(t *testing.T) {
	m := NewModel(browserReport(t), false, "dev")
	m, _ = update(t, m, keyRunes("?"))
	if !m.help.ShowAll {
		t.Error("? should expand the help")
	}
}

func TestModel_Quit(t *testing.T) {
	m := NewModel(browserReport(t), false, "dev")
	_, cmd := update(t, m, keyRunes("q"))
	if cmd == nil {
		t.Fatal("q should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q should quit")
	}
}
