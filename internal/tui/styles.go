package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/cashlyze/cashlyze/internal/theme"
)

var (
	greetingStyle    = lipgloss.NewStyle().Bold(true).Foreground(theme.TextLight)
	subGreetingStyle = lipgloss.NewStyle().Foreground(theme.SubtleTextLight)
	sectionStyle     = lipgloss.NewStyle().Bold(true).Foreground(theme.TextLight)
	linkStyle        = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	mutedStyle       = lipgloss.NewStyle().Foreground(theme.SubtleTextLight)
	amountStyle      = lipgloss.NewStyle().Bold(true).Foreground(theme.TextLight)
	deltaStyle       = lipgloss.NewStyle().Foreground(theme.Success)
	errorStyle       = lipgloss.NewStyle().Foreground(theme.Error)

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.DividerLight).
			Padding(0, 1)
	insightStyle = lipgloss.NewStyle().
			Foreground(theme.BackgroundLight).
			Background(theme.Primary).
			Bold(true).
			Padding(0, 2)

	toggleActiveStyle = lipgloss.NewStyle().
				Foreground(theme.BackgroundLight).
				Background(theme.Primary).
				Padding(0, 1)
	toggleInactiveStyle = lipgloss.NewStyle().
				Foreground(theme.SubtleTextLight).
				Padding(0, 1)

	headerBarStyle = lipgloss.NewStyle().
			Foreground(theme.BackgroundLight).
			Background(theme.BackgroundDark)
	appNameStyle = lipgloss.NewStyle().
			Foreground(theme.Primary).
			Background(theme.BackgroundDark).
			Bold(true).
			Padding(0, 1)
	activeTabStyle = lipgloss.NewStyle().
			Foreground(theme.Accent).
			Background(theme.DividerDark).
			Bold(true).
			Padding(0, 1)
	inactiveTabStyle = lipgloss.NewStyle().
				Foreground(theme.SubtleTextLight).
				Background(theme.BackgroundDark).
				Padding(0, 1)
	statusBarStyle = lipgloss.NewStyle().
			Foreground(theme.Success)

	counterValueStyle = lipgloss.NewStyle().Bold(true).Foreground(theme.TextLight).Padding(1, 0)
	primaryBtnStyle   = lipgloss.NewStyle().Foreground(theme.BackgroundLight).Background(theme.ButtonPrimary).Bold(true).Padding(0, 2)
	secondaryBtnStyle = lipgloss.NewStyle().Foreground(theme.BackgroundLight).Background(theme.ButtonSecondary).Bold(true).Padding(0, 2)
	outlineBtnStyle   = lipgloss.NewStyle().Foreground(theme.ButtonPrimary).Border(lipgloss.NormalBorder()).BorderForeground(theme.ButtonPrimary).Padding(0, 2)
)
