package monitor

import "github.com/charmbracelet/lipgloss"

// Dashboard color palette
const (
	// Background colors
	ColorSurfaceBg = lipgloss.Color("#12121A") // Dark surface
	ColorBorder    = lipgloss.Color("#2A2A4A") // Glass border (purple tint)

	// Semantic colors - neon style
	ColorLive    = lipgloss.Color("#39FF14") // Neon green
	ColorWaiting = lipgloss.Color("#FFAA00") // Electric amber
	ColorError   = lipgloss.Color("#FF0055") // Hot red-pink

	// Text colors
	ColorTextPrimary   = lipgloss.Color("#FFFFFF") // Pure white
	ColorTextSecondary = lipgloss.Color("#B4B4D0") // Lavender gray
	ColorTextMuted     = lipgloss.Color("#6B6B8D") // Purple-gray

	// Accent colors
	ColorAccent = lipgloss.Color("#FF2E97") // Neon pink

	// Graph color
	ColorGraph = lipgloss.Color("#00FFFF") // Neon cyan
)

// Base styles for the dashboard
var (
	HeaderStyle = lipgloss.NewStyle().
			Foreground(ColorTextPrimary).
			Background(ColorSurfaceBg).
			Bold(true).
			Padding(0, 1)

	FooterStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted).
			Padding(0, 1)

	CardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1).
			MarginRight(1).
			MarginBottom(1)

	CardSelectedStyle = CardStyle.
				BorderForeground(ColorAccent)

	JobNameStyle = lipgloss.NewStyle().
			Foreground(ColorTextPrimary).
			Bold(true)

	KindStyle = lipgloss.NewStyle().
			Foreground(ColorAccent)

	LabelStyle = lipgloss.NewStyle().
			Foreground(ColorTextSecondary)

	ValueStyle = lipgloss.NewStyle().
			Foreground(ColorTextPrimary)

	MutedStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted)

	StatusLiveStyle = lipgloss.NewStyle().
			Foreground(ColorLive)

	StatusWaitingStyle = lipgloss.NewStyle().
				Foreground(ColorWaiting)

	StatusStaleStyle = lipgloss.NewStyle().
				Foreground(ColorError)
)

// Status indicator characters
const (
	StatusLive    = "◉" // Data flowing
	StatusWaiting = "◐" // No data yet
	StatusStale   = "◌" // Remote file stopped updating
)
