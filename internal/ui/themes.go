package ui

import (
	"os"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// Glyphs used for boolean cells.
const (
	TrueGlyph  = "✔"
	FalseGlyph = "✘"
)

// Theme is a palette of lipgloss colors.
type Theme struct {
	// Name is the identifier of the theme.
	Name string
	// Title colors the report title.
	Title lipgloss.TerminalColor
	// Header colors the column header labels.
	Header lipgloss.TerminalColor
	// Border colors the table rules.
	Border lipgloss.TerminalColor
	// Index colors the experiment_hash column.
	Index lipgloss.TerminalColor
	// True colors the ✔ glyph.
	True lipgloss.TerminalColor
	// False colors the ✘ glyph.
	False lipgloss.TerminalColor
	// Dim is used for help text and inactive rows.
	Dim lipgloss.TerminalColor
	// Accent highlights the selected row in the interactive browser.
	Accent lipgloss.TerminalColor
}

var (
	// DarkTheme suits dark terminal backgrounds.
	DarkTheme = Theme{
		Name:   "dark",
		Title:  lipgloss.Color("#FF8C00"),
		Header: lipgloss.Color("#E0E0E0"),
		Border: lipgloss.Color("#666666"),
		Index:  lipgloss.Color("#4488FF"),
		True:   lipgloss.Color("#9ece6a"),
		False:  lipgloss.Color("#FF4444"),
		Dim:    lipgloss.Color("#666666"),
		Accent: lipgloss.Color("#FF6600"),
	}

	// LightTheme uses darker tones for light backgrounds.
	LightTheme = Theme{
		Name:   "light",
		Title:  lipgloss.Color("#AF5F00"),
		Header: lipgloss.Color("#303030"),
		Border: lipgloss.Color("#8A8A8A"),
		Index:  lipgloss.Color("#005FAF"),
		True:   lipgloss.Color("#008700"),
		False:  lipgloss.Color("#AF0000"),
		Dim:    lipgloss.Color("#8A8A8A"),
		Accent: lipgloss.Color("#D75F00"),
	}

	// NoColorTheme renders everything in the terminal's default colors.
	NoColorTheme = Theme{
		Name:   "none",
		Title:  lipgloss.NoColor{},
		Header: lipgloss.NoColor{},
		Border: lipgloss.NoColor{},
		Index:  lipgloss.NoColor{},
		True:   lipgloss.NoColor{},
		False:  lipgloss.NoColor{},
		Dim:    lipgloss.NoColor{},
		Accent: lipgloss.NoColor{},
	}

	currentTheme = DarkTheme
	themeMutex   sync.RWMutex
)

// GetCurrentTheme returns the active theme.
func GetCurrentTheme() Theme {
	themeMutex.RLock()
	defer themeMutex.RUnlock()
	return currentTheme
}

// SetCurrentTheme replaces the active theme. Tests use it to restore state.
func SetCurrentTheme(t Theme) {
	themeMutex.Lock()
	defer themeMutex.Unlock()
	currentTheme = t
}

// SetTheme activates a theme by name: "dark", "light" or "none".
// Unknown names select the dark theme.
func SetTheme(name string) {
	themeMutex.Lock()
	defer themeMutex.Unlock()

	switch name {
	case "light":
		currentTheme = LightTheme
	case "none":
		currentTheme = NoColorTheme
	default:
		currentTheme = DarkTheme
	}
}

// ColorsEnabled reports whether the active theme emits colors.
func ColorsEnabled() bool {
	return GetCurrentTheme().Name != NoColorTheme.Name
}

// InitTheme selects the theme at startup. Colors are disabled when noColor
// is set or when NO_COLOR is present in the environment
// (https://no-color.org/).
func InitTheme(noColor bool) {
	themeMutex.Lock()
	defer themeMutex.Unlock()

	if noColor {
		currentTheme = NoColorTheme
		return
	}
	if _, exists := os.LookupEnv("NO_COLOR"); exists {
		currentTheme = NoColorTheme
		return
	}
	currentTheme = DarkTheme
}
