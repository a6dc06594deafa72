package main

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

var (
	// Color palette
	primaryColor = lipgloss.Color("#7D56F4")
	mutedColor   = lipgloss.Color("#666666")
	errorColor   = lipgloss.Color("#FF4B4B")

	labelStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor)

	mutedStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	warnStyle = lipgloss.NewStyle().
			Foreground(errorColor)
)

// configureStyles forces plain output when disabled. Otherwise lipgloss
// detects the terminal's color support.
func configureStyles(disabled bool) {
	if disabled {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
}

// label renders a "Name: " prefix.
func label(name string) string {
	return labelStyle.Render(name + ":")
}
