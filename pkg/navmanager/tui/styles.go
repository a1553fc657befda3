package tui

import "github.com/charmbracelet/lipgloss"

var (
	colorAccent = lipgloss.Color("#89b4fa")
	colorMuted  = lipgloss.Color("#6c7086")
	colorError  = lipgloss.Color("#f38ba8")
	colorBorder = lipgloss.Color("#45475a")

	breadcrumbStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Padding(0, 1)
	breadcrumbTopStyle = lipgloss.NewStyle().
				Foreground(colorAccent).
				Bold(true)
	breadcrumbSep = lipgloss.NewStyle().Foreground(colorBorder).Render(" › ")

	bodyStyle = lipgloss.NewStyle().Padding(1, 2)

	placeholderTitleStyle = lipgloss.NewStyle().Foreground(colorError).Bold(true)
	placeholderStyle      = lipgloss.NewStyle().Foreground(colorMuted)

	keyStyle      = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	helpDescStyle = lipgloss.NewStyle().Foreground(colorMuted)
	footerStyle   = lipgloss.NewStyle().Padding(0, 1)
)
