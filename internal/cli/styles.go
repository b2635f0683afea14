package cli

import "github.com/charmbracelet/lipgloss"

// Theme holds the color scheme for interactive output.
type Theme struct {
	User    lipgloss.Color
	Bot     lipgloss.Color
	Meta    lipgloss.Color
	Error   lipgloss.Color
	Hint    lipgloss.Color
	Success lipgloss.Color
}

// defaultTheme provides default colors.
var defaultTheme = Theme{
	User:    lipgloss.Color("#5FAFD7"), // light blue
	Bot:     lipgloss.Color("#D7D7D7"), // light gray
	Meta:    lipgloss.Color("#6C6C6C"), // dim gray
	Error:   lipgloss.Color("#FF005F"), // red
	Hint:    lipgloss.Color("#6C6C6C"), // dim gray
	Success: lipgloss.Color("#00D787"), // green
}

func (t Theme) userStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.User).Bold(true)
}

func (t Theme) botStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Bot)
}

func (t Theme) metaStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Meta).Italic(true)
}

func (t Theme) errorStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Error).Bold(true)
}

func (t Theme) hintStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Hint).Italic(true)
}

func (t Theme) successStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Success).Bold(true)
}
