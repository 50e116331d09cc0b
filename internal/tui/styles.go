package tui

import "github.com/charmbracelet/lipgloss"

// styles
var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Underline(true)
	labelStyle    = lipgloss.NewStyle().Bold(true)
	mutedStyle    = lipgloss.NewStyle().Faint(true)
	fallbackStyle = lipgloss.NewStyle().Italic(true).Faint(true)
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	paneStyle     = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	focusStyle    = paneStyle.BorderForeground(lipgloss.Color("12"))
)
