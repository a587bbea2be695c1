package tui

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
)

func TestDefaultKeyMap_AllBindingsDefined(t *testing.T) {
	km := DefaultKeyMap()

	bindings := []struct {
		name    string
		binding key.Binding
	}{
		{"Up", km.Up},
		{"Down", km.Down},
		{"PageUp", km.PageUp},
		{"PageDown", km.PageDown},
		{"Top", km.Top},
		{"Bottom", km.Bottom},
		{"Sort", km.Sort},
		{"Details", km.Details},
		{"Help", km.Help},
		{"Quit", km.Quit},
	}

	for _, b := range bindings {
		t.Run(b.name, func(t *testing.T) {
			if !b.binding.Enabled() {
				t.Errorf("expected %s binding to be enabled", b.name)
			}
			if len(b.binding.Keys()) == 0 {
				t.Errorf("expected %s binding to have at least one key", b.name)
			}
			if b.binding.Help().Key == "" {
				t.Errorf("expected %s binding to have help text", b.name)
			}
		})
	}
}

func TestDefaultKeyMap_QuitKeys(t *testing.T) {
	keys := DefaultKeyMap().Quit.Keys()
	want := map[string]bool{"q": false, "ctrl+c": false}
	for _, k := range keys {
		if _, ok := want[k]; ok {
			want[k] = true
		}
	}
	for k, found := range want {
		if !found {
			t.Errorf("expected Quit binding to include %q", k)
		}
	}
}

func TestKeyMap_HelpGroups(t *testing.T) {
	km := DefaultKeyMap()
	if len(km.ShortHelp()) == 0 {
		t.Error("short help should not be empty")
	}
	total := 0
	for _, group := range km.FullHelp() {
		total += len(group)
	}
	if total != 10 {
		t.Errorf("full help lists %d bindings, want 10", total)
	}
}
