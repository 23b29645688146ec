package tui

import "github.com/charmbracelet/lipgloss"

// Color palette
var (
	// ColorBlue for primary actions and the cursor
	ColorBlue = lipgloss.AdaptiveColor{Light: "#1F6FD1", Dark: "#2B8AEF"}

	// ColorRed for destructive actions
	ColorRed = lipgloss.AdaptiveColor{Light: "#D9363E", Dark: "#FF4D4F"}

	ColorWhite = lipgloss.AdaptiveColor{Light: "#262626", Dark: "#FFFFFF"}

	// ColorGray for secondary text and help
	ColorGray = lipgloss.AdaptiveColor{Light: "#767676", Dark: "#808080"}

	// ColorYellow for notices and the active field
	ColorYellow = lipgloss.AdaptiveColor{Light: "#D7AF00", Dark: "#FFD700"}
)

// Reusable styles
var (
	StyleNormal = lipgloss.NewStyle().Foreground(ColorWhite)

	// StyleHighlight is for the selected row
	StyleHighlight = lipgloss.NewStyle().
			Foreground(ColorBlue).
			Bold(true)

	// StyleMeta is the "author • year" line
	StyleMeta = lipgloss.NewStyle().Foreground(ColorGray)

	StyleHelp = lipgloss.NewStyle().Foreground(ColorGray)

	// StyleHeader is for the app title and dialog titles
	StyleHeader = lipgloss.NewStyle().
			Foreground(ColorWhite).
			Bold(true)

	StyleDanger = lipgloss.NewStyle().Foreground(ColorRed).Bold(true)

	StyleNotice = lipgloss.NewStyle().Foreground(ColorYellow).Bold(true)

	// StyleBorder is for the outer frame
	StyleBorder = lipgloss.NewStyle().
			Foreground(ColorGray).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(ColorGray)

	// StyleDialog frames a modal card
	StyleDialog = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(ColorBlue).
			Padding(1, 2)
)
