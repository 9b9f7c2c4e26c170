package tui

import "github.com/charmbracelet/lipgloss"

// Colors
var (
	ColorPrimary = lipgloss.Color("36")
	ColorAccent  = lipgloss.Color("214")
	ColorMuted   = lipgloss.Color("241")
	ColorDanger  = lipgloss.Color("196")
)

// Base styles
var (
	TitleStyle    = lipgloss.NewStyle().Bold(true).Foreground(ColorPrimary).Padding(0, 1)
	SubtitleStyle = lipgloss.NewStyle().Foreground(ColorMuted).Padding(0, 1)

	StatusBarStyle = lipgloss.NewStyle().Foreground(ColorMuted).Padding(0, 1)
	StatusKeyStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorAccent)

	TotalsStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorAccent).Padding(0, 1)

	DetailBorderStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(ColorPrimary).
				Padding(0, 1)
	DetailTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorPrimary)
	DetailLabelStyle = lipgloss.NewStyle().Foreground(ColorMuted).Width(20)
	DetailValueStyle = lipgloss.NewStyle().Bold(true)

	ErrorStyle   = lipgloss.NewStyle().Bold(true).Foreground(ColorDanger).Padding(1, 1)
	LoadingStyle = lipgloss.NewStyle().Foreground(ColorMuted).Padding(1, 1)
)
