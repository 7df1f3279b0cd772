// Package palette renders every habit state with its colour derivation, for
// checking the ramp under light and dark terminals.
package palette

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/habits/internal/models"
	"github.com/julianstephens/habits/internal/theme"
	"github.com/julianstephens/habits/internal/tui/components/swatch"
)

type Row struct {
	State       models.HabitState
	Label       string
	Description string
}

// Rows lists the states in canonical order.
func Rows() []Row {
	states := models.AllStates()
	rows := make([]Row, 0, len(states))
	for _, s := range states {
		rows = append(rows, Row{State: s, Label: s.Label(), Description: theme.Describe(s)})
	}
	return rows
}

func View(th theme.Theme) string {
	labelStyle := lipgloss.NewStyle().Bold(true).Width(6).Foreground(th.Primary())
	descStyle := lipgloss.NewStyle().Foreground(th.Secondary())

	lines := make([]string, 0, len(models.AllStates())+2)
	lines = append(lines, lipgloss.NewStyle().Bold(true).Foreground(th.Primary()).Render("palette"), "")
	for _, r := range Rows() {
		lines = append(lines, strings.Join([]string{
			swatch.Render(th, r.State, swatch.LargeCircle),
			labelStyle.Render(r.Label),
			descStyle.Render(r.Description),
		}, "  "))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
