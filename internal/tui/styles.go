package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/saadkhalil01/portfolio/internal/catalog"
)

var (
	nameStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15"))
	roleStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	mutedStyle   = lipgloss.NewStyle().Faint(true)
	headingStyle = lipgloss.NewStyle().Bold(true).Underline(true).MarginTop(1)
	linkStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Underline(true)
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("230")).Background(lipgloss.Color("62")).Padding(0, 1)

	menuStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("8")).
			Padding(0, 1).
			MarginLeft(2)
)

// discStyle renders an app's logo disc in its variant colour.
func discStyle(v catalog.Variant) lipgloss.Style {
	fg := lipgloss.Color("#000000")
	if v.Dark() {
		fg = lipgloss.Color("#ffffff")
	}
	return lipgloss.NewStyle().
		Background(lipgloss.Color(v.Background())).
		Foreground(fg).
		Bold(true).
		Padding(0, 2)
}
