package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/balkashynov/studentcard/internal/models"
)

// Color constants for the studentcard TUI theme
const (
	// Base Colors
	ColorBorder = "#3A3F55" // Grey-blue

	// Text Colors
	ColorPrimaryText   = "#E6EAF2" // Field labels, user input, titles
	ColorSecondaryText = "#B1B8C7"
	ColorDisabledText  = "#6D7383" // Muted text, collapsed sections
	ColorPlaceholder   = "#B1B8C7"
	ColorHelpText      = "240" // Dark grey for help text
	ColorCardText      = "#1F2330" // Text on light priority cards

	// Accent Colors
	ColorAccentMain   = "#2563EB" // Headers, active borders
	ColorAccentBright = "#60A5FA" // Highlights, current step

	// State Colors
	ColorError   = "#EF4444" // Validation errors
	ColorSuccess = "#22C55E" // Confirmations
	ColorWarning = "#F59E0B"
)

// priorityStyle renders a task row on its priority card color
func priorityStyle(p models.Priority) lipgloss.Style {
	return lipgloss.NewStyle().
		Background(lipgloss.Color(p.Color())).
		Foreground(lipgloss.Color(ColorCardText))
}

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(ColorAccentBright))

	textStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorPrimaryText))

	mutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorDisabledText))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorHelpText)).
			Italic(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorError))

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorSuccess))

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(ColorBorder)).
			Padding(0, 1)

	selectedPanelStyle = panelStyle.
				BorderForeground(lipgloss.Color(ColorAccentMain))
)
