// Package ui provides the visual styling for the habitcli terminal output:
// the color theme, the table renderer, and the dashboard bar chart.
package ui

import (
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	// Light mode colors (default)
	LightForeground = lipgloss.Color("#101F38") // Dark blue
	LightPrimary    = lipgloss.Color("#101F38")
	LightAccent     = lipgloss.Color("#8BC34A") // Lime green
	LightMuted      = lipgloss.Color("#9aa3ad")

	// Dark mode colors
	DarkForeground = lipgloss.Color("#f2f2f2")
	DarkPrimary    = lipgloss.Color("#8BC34A")
	DarkAccent     = lipgloss.Color("#101F38")
	DarkMuted      = lipgloss.Color("#6b7684")

	// Semantic colors (same in both modes)
	Destructive = lipgloss.Color("#e53935") // Red
	Success     = lipgloss.Color("#8BC34A") // Lime green
	Warning     = lipgloss.Color("#FFC107") // Yellow
	Info        = lipgloss.Color("#2196F3") // Blue

	// Bar chart color
	ChartBar = lipgloss.Color("#4db6ac") // Teal
)

// Theme holds the current color scheme.
type Theme struct {
	Foreground lipgloss.Color
	Primary    lipgloss.Color
	Accent     lipgloss.Color
	Muted      lipgloss.Color
	IsDark     bool
}

// LightTheme returns the light mode theme.
func LightTheme() Theme {
	return Theme{
		Foreground: LightForeground,
		Primary:    LightPrimary,
		Accent:     LightAccent,
		Muted:      LightMuted,
		IsDark:     false,
	}
}

// DarkTheme returns the dark mode theme.
func DarkTheme() Theme {
	return Theme{
		Foreground: DarkForeground,
		Primary:    DarkPrimary,
		Accent:     DarkAccent,
		Muted:      DarkMuted,
		IsDark:     true,
	}
}

// ThemeByName maps the config theme setting to a Theme. "auto" detects from
// the terminal; anything unrecognized falls back to light.
func ThemeByName(name string) Theme {
	switch name {
	case "dark":
		return DarkTheme()
	case "light":
		return LightTheme()
	default:
		return DetectTheme()
	}
}

// DetectTheme auto-detects based on terminal hints or returns light mode.
func DetectTheme() Theme {
	// COLORFGBG is "foreground;background"; low background indexes are dark.
	if colorTerm := os.Getenv("COLORFGBG"); colorTerm != "" {
		parts := strings.Split(colorTerm, ";")
		if len(parts) == 2 {
			if bgIdx, err := strconv.Atoi(parts[1]); err == nil {
				if (bgIdx >= 0 && bgIdx <= 6) || bgIdx == 8 {
					return DarkTheme()
				}
			}
		}
	}
	if os.Getenv("HABITCLI_DARK_MODE") == "1" {
		return DarkTheme()
	}
	return LightTheme()
}

// Styles holds the styled components used by the renderers.
type Styles struct {
	Theme Theme

	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Body     lipgloss.Style
	Muted    lipgloss.Style
	Bold     lipgloss.Style

	Prompt lipgloss.Style

	Success lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style
	Info    lipgloss.Style

	Bar lipgloss.Style
}

// NewStyles creates a Styles instance for the given theme.
func NewStyles(theme Theme) Styles {
	return Styles{
		Theme: theme,

		Title: lipgloss.NewStyle().
			Foreground(theme.Primary).
			Bold(true),

		Subtitle: lipgloss.NewStyle().
			Foreground(theme.Muted).
			Italic(true),

		Body: lipgloss.NewStyle().
			Foreground(theme.Foreground),

		Muted: lipgloss.NewStyle().
			Foreground(theme.Muted),

		Bold: lipgloss.NewStyle().
			Foreground(theme.Foreground).
			Bold(true),

		Prompt: lipgloss.NewStyle().
			Foreground(theme.Accent).
			Bold(true),

		Success: lipgloss.NewStyle().
			Foreground(Success).
			Bold(true),

		Error: lipgloss.NewStyle().
			Foreground(Destructive).
			Bold(true),

		Warning: lipgloss.NewStyle().
			Foreground(Warning).
			Bold(true),

		Info: lipgloss.NewStyle().
			Foreground(Info),

		Bar: lipgloss.NewStyle().
			Foreground(ChartBar),
	}
}

// DefaultStyles returns styles for the detected theme.
func DefaultStyles() Styles {
	return NewStyles(DetectTheme())
}
