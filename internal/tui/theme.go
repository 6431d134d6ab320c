package tui

import "github.com/charmbracelet/lipgloss"

type Theme struct {
	Name     string
	Base     lipgloss.Style
	Header   lipgloss.Style
	Preset   lipgloss.Style
	Selected lipgloss.Style
	Input    lipgloss.Style
	Clock    lipgloss.Style
	Flash    lipgloss.Style
	Message  lipgloss.Style
	Dim      lipgloss.Style
	Progress string // bar fill
}

var Themes = map[string]Theme{
	"default": {
		Name:     "Default",
		Base:     lipgloss.NewStyle().Margin(1, 2),
		Header:   lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		Preset:   lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Selected: lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		Input:    lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("205")).Padding(0, 1).Width(30),
		Clock:    lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Bold(true).Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("63")).Padding(1, 6),
		Flash:    lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true).Blink(true).Reverse(true).Border(lipgloss.DoubleBorder()).BorderForeground(lipgloss.Color("196")).Padding(1, 6),
		Message:  lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
		Dim:      lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Progress: "#FF7CCB",
	},
	"dracula": {
		Name:     "Dracula",
		Base:     lipgloss.NewStyle().Margin(1, 2),
		Header:   lipgloss.NewStyle().Foreground(lipgloss.Color("50")).Bold(true),
		Preset:   lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
		Selected: lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true),
		Input:    lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("50")).Padding(0, 1).Width(30),
		Clock:    lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true).Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("62")).Padding(1, 6),
		Flash:    lipgloss.NewStyle().Foreground(lipgloss.Color("210")).Bold(true).Blink(true).Reverse(true).Border(lipgloss.DoubleBorder()).BorderForeground(lipgloss.Color("210")).Padding(1, 6),
		Message:  lipgloss.NewStyle().Foreground(lipgloss.Color("215")),
		Dim:      lipgloss.NewStyle().Foreground(lipgloss.Color("60")),
		Progress: "#BD93F9",
	},
}

// CurrentTheme holds the currently active theme.
var CurrentTheme = Themes["default"]

// SetTheme switches the active theme; unknown names are ignored.
func SetTheme(name string) bool {
	if t, ok := Themes[name]; ok {
		CurrentTheme = t
		return true
	}
	return false
}
