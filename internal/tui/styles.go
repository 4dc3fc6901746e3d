package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/dsubhasis934/task-management-tui/internal/config"
)

// Theme is a named lipgloss palette. Two are defined, matching the
// persisted theme preference; every view pulls its colors from the
// active one.
type Theme struct {
	Name config.Theme

	// Background colors
	BgHighlight lipgloss.Color

	// Foreground colors
	FgPrimary   lipgloss.Color
	FgSecondary lipgloss.Color
	FgMuted     lipgloss.Color

	// Accent colors
	Red     lipgloss.Color
	Green   lipgloss.Color
	Yellow  lipgloss.Color
	Blue    lipgloss.Color
	Magenta lipgloss.Color
	Cyan    lipgloss.Color

	// UI colors
	Border lipgloss.Color
}

// DarkTheme is a One Dark Pro derived palette
func DarkTheme() Theme {
	return Theme{
		Name:        config.ThemeDark,
		BgHighlight: lipgloss.Color("#2C313C"),
		FgPrimary:   lipgloss.Color("#ABB2BF"),
		FgSecondary: lipgloss.Color("#828997"),
		FgMuted:     lipgloss.Color("#636B78"),
		Red:         lipgloss.Color("#E06C75"),
		Green:       lipgloss.Color("#98C379"),
		Yellow:      lipgloss.Color("#E5C07B"),
		Blue:        lipgloss.Color("#61AFEF"),
		Magenta:     lipgloss.Color("#C678DD"),
		Cyan:        lipgloss.Color("#56B6C2"),
		Border:      lipgloss.Color("#3F4451"),
	}
}

// LightTheme is the same palette shifted for light terminals
func LightTheme() Theme {
	return Theme{
		Name:        config.ThemeLight,
		BgHighlight: lipgloss.Color("#E5E5E6"),
		FgPrimary:   lipgloss.Color("#383A42"),
		FgSecondary: lipgloss.Color("#696C77"),
		FgMuted:     lipgloss.Color("#A0A1A7"),
		Red:         lipgloss.Color("#E45649"),
		Green:       lipgloss.Color("#50A14F"),
		Yellow:      lipgloss.Color("#C18401"),
		Blue:        lipgloss.Color("#4078F2"),
		Magenta:     lipgloss.Color("#A626A4"),
		Cyan:        lipgloss.Color("#0184BC"),
		Border:      lipgloss.Color("#D4D4D4"),
	}
}

// ThemeFor returns the theme matching the persisted preference
func ThemeFor(pref config.Theme) Theme {
	if pref == config.ThemeDark {
		return DarkTheme()
	}
	return LightTheme()
}

// TitleStyle renders the app title in the chrome
func (t Theme) TitleStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Blue).Bold(true)
}

// SubtitleStyle renders secondary chrome text
func (t Theme) SubtitleStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.FgMuted)
}

// BoxStyle is the bordered container used for centered panels
func (t Theme) BoxStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Padding(1, 2)
}

// SelectedStyle highlights the selected row or field
func (t Theme) SelectedStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Background(t.BgHighlight).
		Foreground(t.FgPrimary).
		Bold(true).
		Padding(0, 1)
}

// ItemStyle renders an unselected row
func (t Theme) ItemStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.FgPrimary).Padding(0, 1)
}

// ErrorStyle renders error messages
func (t Theme) ErrorStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Red)
}

// NoticeStyle renders success notices
func (t Theme) NoticeStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Green)
}

// WarnStyle renders warnings and loading text
func (t Theme) WarnStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Yellow)
}

// LabelStyle renders form field labels and table headers
func (t Theme) LabelStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Magenta).Bold(true)
}

// HintStyle renders key hints at the bottom of views
func (t Theme) HintStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.FgMuted)
}

// StatusStyle renders a task status badge
func (t Theme) StatusStyle(completed, inProgress bool) lipgloss.Style {
	switch {
	case completed:
		return lipgloss.NewStyle().Foreground(t.Green)
	case inProgress:
		return lipgloss.NewStyle().Foreground(t.Yellow)
	default:
		return lipgloss.NewStyle().Foreground(t.FgSecondary)
	}
}
