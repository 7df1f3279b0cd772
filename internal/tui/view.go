package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/habits/internal/constants"
	"github.com/julianstephens/habits/internal/tui/components/palette"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string
	switch m.state {
	case constants.StateAddHabit, constants.StateConfirmDelete:
		content = lipgloss.JoinVertical(lipgloss.Left,
			m.styles.title.Render(constants.AppName),
			m.form.View(),
		)
	case constants.StatePalette:
		content = palette.View(m.theme)
	default:
		if len(m.habits) == 0 {
			content = m.viewWelcome()
		} else {
			content = lipgloss.JoinVertical(lipgloss.Left,
				m.viewHeader(),
				m.cards.View(m.theme, m.log, m.dates.Selected()),
			)
		}
	}

	return m.styles.doc.Render(lipgloss.JoinVertical(lipgloss.Left,
		content,
		"",
		m.help.View(m),
	))
}

// viewHeader is everything above the cards: title, summary grid, date
// selector and the banner when one is raised.
func (m Model) viewHeader() string {
	parts := []string{
		m.styles.title.Render(constants.AppName),
		m.styles.heading.Render("summary"),
		m.summary.View(m.theme, m.log, m.habits, m.dates.Selected()),
		"",
		m.dates.View(m.theme),
		"",
	}
	if m.banner != "" {
		parts = append(parts, m.styles.banner.Render(m.banner), "")
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m Model) viewWelcome() string {
	parts := []string{
		m.styles.check.Render("✔"),
		"",
		m.styles.welcome.Render("Welcome to Habits"),
		m.styles.muted.Render("Press 'a' to add your first habit."),
	}
	if m.banner != "" {
		parts = append(parts, "", m.styles.banner.Render(m.banner))
	}

	block := lipgloss.JoinVertical(lipgloss.Center, parts...)
	if m.width <= 0 || m.height <= 0 {
		return block
	}
	return lipgloss.Place(m.width-2*docPadX, max(lipgloss.Height(block), m.height-2*docPadY-2),
		lipgloss.Center, lipgloss.Center, block)
}
