package tui

import "github.com/charmbracelet/lipgloss"

var (
	// Adaptive colors for dark/light terminals
	colorPrimary = lipgloss.AdaptiveColor{Light: "#111111", Dark: "#FFFFFF"}
	colorAccent  = lipgloss.AdaptiveColor{Light: "#B8860B", Dark: "#FFD700"}
	colorDim     = lipgloss.AdaptiveColor{Light: "#9B9B9B", Dark: "#626262"}
	colorUser    = lipgloss.AdaptiveColor{Light: "#5A56E0", Dark: "#7571F9"}
	colorBorder  = lipgloss.AdaptiveColor{Light: "#DBDBDB", Dark: "#383838"}

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorAccent).
			PaddingLeft(1)

	userLabelStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorUser)

	botLabelStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorAccent)

	messageStyle = lipgloss.NewStyle().
			Foreground(colorPrimary)

	buttonStyle = lipgloss.NewStyle().
			Foreground(colorAccent).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(0, 1)

	hintStyle = lipgloss.NewStyle().
			Foreground(colorDim).
			Italic(true)

	spinnerStyle = lipgloss.NewStyle().
			Foreground(colorAccent)

	inputPromptStyle = lipgloss.NewStyle().
				Foreground(colorAccent).
				Bold(true)
)
