// Package ui holds the color themes shared by the console report and the
// interactive browser. Themes are lipgloss colors; the active theme honours
// --no-color and the NO_COLOR environment variable.
package ui
