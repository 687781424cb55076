package ui

import "github.com/charmbracelet/lipgloss"

// Semantic colors for status output, kept to the basic ANSI range so they
// respect the user's terminal theme.
const (
	ColorSuccess lipgloss.Color = "2" // Green
	ColorError   lipgloss.Color = "1" // Red
	ColorWarning lipgloss.Color = "3" // Yellow
	ColorMuted   lipgloss.Color = "8" // Gray (bright black)
)
