package cli

import "github.com/charmbracelet/lipgloss"

// Palette shared with the rest of the command output.
var (
	colourSuccess = lipgloss.Color("#A6E3A1")
	colourMuted   = lipgloss.Color("#6C7086")
)

var (
	successStyle = lipgloss.NewStyle().Foreground(colourSuccess)
	mutedStyle   = lipgloss.NewStyle().Foreground(colourMuted)
)

func success(s string) string { return successStyle.Render("✓ " + s) }

func muted(s string) string { return mutedStyle.Render(s) }
