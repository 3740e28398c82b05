package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/MKhiriev/internship-tracker/internal/config"
)

type styles struct {
	app      lipgloss.Style
	title    lipgloss.Style
	help     lipgloss.Style
	err      lipgloss.Style
	overlay  lipgloss.Style
	badge    lipgloss.Style
	selected lipgloss.Style
	header   lipgloss.Style
	actions  []lipgloss.Style
}

// newStyles derives every style from the theme accent. The hover shade of
// the accent highlights the selected row.
func newStyles(theme config.Theme) styles {
	theme = normalizeTheme(theme)
	accent := lipgloss.Color(theme.Color)

	fg := lipgloss.Color("#1f2937")
	bg := lipgloss.Color("#ffffff")
	faint := lipgloss.Color("#6b7280")
	if theme.Dark {
		fg = lipgloss.Color("#f3f4f6")
		bg = lipgloss.Color("#1e1e1e")
		faint = lipgloss.Color("#9ca3af")
	}

	s := styles{
		app:      lipgloss.NewStyle().Padding(1, 2).Foreground(fg).Background(bg),
		title:    lipgloss.NewStyle().Bold(true).Foreground(accent),
		help:     lipgloss.NewStyle().Foreground(faint),
		err:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#E50046")),
		overlay:  lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(accent).Padding(1, 2),
		badge:    lipgloss.NewStyle().Foreground(lipgloss.Color("#ffffff")).Background(accent).Padding(0, 1),
		selected: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(ShadeColor(theme.Color, -15))),
		header:   lipgloss.NewStyle().Bold(true).Underline(true),
	}
	for i := range 3 {
		s.actions = append(s.actions, lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(ActionColor(theme.Color, i))))
	}

	return s
}

// action renders the index-th action hint in its palette colour.
func (s styles) action(index int, text string) string {
	return s.actions[index%len(s.actions)].Render(text)
}
