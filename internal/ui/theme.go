package ui

import "github.com/charmbracelet/lipgloss"

// Theme defines the colors used across every page.
type Theme struct {
	Text    string
	Muted   string
	Accent  string
	Success string
	Warning string
	Danger  string
	Border  string
}

// DefaultTheme is the only built-in palette.
func DefaultTheme() Theme {
	return Theme{
		Text:    "#E6E6E6",
		Muted:   "#7A7A7A",
		Accent:  "#5FAFFF",
		Success: "#5FD75F",
		Warning: "#FFD75F",
		Danger:  "#FF5F5F",
		Border:  "#444444",
	}
}

// Styles holds the lipgloss styles derived from a theme.
type Styles struct {
	Title    lipgloss.Style
	Text     lipgloss.Style
	Muted    lipgloss.Style
	Accent   lipgloss.Style
	Success  lipgloss.Style
	Warning  lipgloss.Style
	Danger   lipgloss.Style
	Selected lipgloss.Style
	Card     lipgloss.Style
	Badge    lipgloss.Style
	Tab      lipgloss.Style
	TabHot   lipgloss.Style
}

// Styles derives the lipgloss styles for this theme.
func (t Theme) Styles() Styles {
	return Styles{
		Title:    lipgloss.NewStyle().Foreground(lipgloss.Color(t.Accent)).Bold(true),
		Text:     lipgloss.NewStyle().Foreground(lipgloss.Color(t.Text)),
		Muted:    lipgloss.NewStyle().Foreground(lipgloss.Color(t.Muted)),
		Accent:   lipgloss.NewStyle().Foreground(lipgloss.Color(t.Accent)),
		Success:  lipgloss.NewStyle().Foreground(lipgloss.Color(t.Success)),
		Warning:  lipgloss.NewStyle().Foreground(lipgloss.Color(t.Warning)),
		Danger:   lipgloss.NewStyle().Foreground(lipgloss.Color(t.Danger)),
		Selected: lipgloss.NewStyle().Foreground(lipgloss.Color(t.Accent)).Bold(true),
		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(t.Border)).
			Padding(0, 1),
		Badge: lipgloss.NewStyle().Foreground(lipgloss.Color(t.Warning)).Bold(true),
		Tab:   lipgloss.NewStyle().Foreground(lipgloss.Color(t.Muted)),
		TabHot: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)).
			Bold(true).
			Underline(true),
	}
}
