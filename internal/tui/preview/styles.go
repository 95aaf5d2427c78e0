package preview

import "github.com/charmbracelet/lipgloss"

var (
	mutedColor  = lipgloss.Color("245")
	errorColor  = lipgloss.Color("196")
	activeColor = lipgloss.Color("212")

	heroBoxStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			Padding(1, 4).
			Align(lipgloss.Center)

	subtitleStyle = lipgloss.NewStyle().
			Faint(true).
			Align(lipgloss.Center)

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Align(lipgloss.Center).
			MarginTop(1).
			MarginBottom(1)

	secondaryStyle = lipgloss.NewStyle().
			Italic(true).
			Align(lipgloss.Center)

	countdownStyle = lipgloss.NewStyle().
			Bold(true).
			Align(lipgloss.Center).
			MarginTop(1)

	metaLabelStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	errorStyle = lipgloss.NewStyle().
			Foreground(errorColor).
			Bold(true)

	helpStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			MarginTop(1)

	spinnerStyle = lipgloss.NewStyle().
			Foreground(activeColor)
)
