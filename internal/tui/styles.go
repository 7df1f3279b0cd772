package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/habits/internal/theme"
)

// styles are derived from the theme once per model.
type styles struct {
	title   lipgloss.Style
	heading lipgloss.Style
	muted   lipgloss.Style
	banner  lipgloss.Style
	check   lipgloss.Style
	doc     lipgloss.Style
	welcome lipgloss.Style
}

func newStyles(th theme.Theme) styles {
	return styles{
		title: lipgloss.NewStyle().
			Foreground(th.Primary()).
			Bold(true).
			MarginBottom(1),
		heading: lipgloss.NewStyle().
			Foreground(th.Secondary()).
			Bold(true),
		muted: lipgloss.NewStyle().
			Foreground(th.Secondary()),
		banner: lipgloss.NewStyle().
			Foreground(th.Primary()).
			Background(th.SecondaryBackground()).
			Bold(true).
			Padding(0, 1),
		check: lipgloss.NewStyle().
			Foreground(th.Tint()).
			Bold(true),
		doc: lipgloss.NewStyle().
			Padding(1, 2),
		welcome: lipgloss.NewStyle().
			Foreground(th.Primary()).
			Bold(true),
	}
}
