package ui

import (
	"os"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestSetTheme(t *testing.T) {
	orig := GetCurrentTheme()
	t.Cleanup(func() { SetCurrentTheme(orig) })

	tests := []struct {
		name string
		want string
	}{
		{"dark", "dark"},
		{"light", "light"},
		{"none", "none"},
		{"unknown", "dark"},
	}
	for _, tt := range tests {
		SetTheme(tt.name)
		if got := GetCurrentTheme().Name; got != tt.want {
			t.Errorf("SetTheme(%q) => %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestInitTheme(t *testing.T) {
	orig := GetCurrentTheme()
	t.Cleanup(func() { SetCurrentTheme(orig) })

	t.Run("flag disables colors", func(t *testing.T) {
		InitTheme(true)
		if ColorsEnabled() {
			t.Error("colors should be disabled by --no-color")
		}
	})

	t.Run("NO_COLOR disables colors", func(t *testing.T) {
		t.Setenv("NO_COLOR", "1")
		InitTheme(false)
		if ColorsEnabled() {
			t.Error("colors should be disabled by NO_COLOR")
		}
	})

	t.Run("default is dark", func(t *testing.T) {
		t.Setenv("NO_COLOR", "")
		os.Unsetenv("NO_COLOR")
		InitTheme(false)
		if got := GetCurrentTheme().Name; got != "dark" {
			t.Errorf("theme = %q, want dark", got)
		}
	})
}

func TestNoColorThemeHasNoColors(t *testing.T) {
	colors := []lipgloss.TerminalColor{
		NoColorTheme.Title, NoColorTheme.Header, NoColorTheme.Border, NoColorTheme.Index,
		NoColorTheme.True, NoColorTheme.False, NoColorTheme.Dim, NoColorTheme.Accent,
	}
	for i, c := range colors {
		if _, ok := c.(lipgloss.NoColor); !ok {
			t.Errorf("color %d is %T, want lipgloss.NoColor", i, c)
		}
	}
}
