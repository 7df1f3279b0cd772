// Package summary renders the recent-days grid: one row per habit, the
// newest day at the right edge.
package summary

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/julianstephens/habits/internal/constants"
	"github.com/julianstephens/habits/internal/models"
	"github.com/julianstephens/habits/internal/theme"
	"github.com/julianstephens/habits/internal/tui/components/swatch"
)

// StateReader is the read-only view of the habit log the grid needs.
type StateReader interface {
	RecentWindow(habitID string, end models.DateKey, n int) []models.HabitState
}

type Row struct {
	Habit  models.Habit
	States []models.HabitState
}

type KeyMap struct {
	Older key.Binding
	Newer key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Older: key.NewBinding(
			key.WithKeys("["),
			key.WithHelp("[", "older days"),
		),
		Newer: key.NewBinding(
			key.WithKeys("]"),
			key.WithHelp("]", "newer days"),
		),
	}
}

type Model struct {
	Keys   KeyMap
	days   int
	offset int
	width  int
}

// New creates a grid showing the given number of days per habit.
func New(days int) Model {
	if days < 1 {
		days = constants.DefaultWindowDays
	}
	return Model{
		Keys: DefaultKeyMap(),
		days: days,
	}
}

func (m Model) Days() int {
	return m.days
}

// Offset is how many days the strip is scrolled back from the end date.
func (m Model) Offset() int {
	return m.offset
}

// ScrollToEnd brings the end date back to the right edge.
func (m *Model) ScrollToEnd() {
	m.offset = 0
}

func (m *Model) SetWidth(width int) {
	m.width = width
	m.clampOffset()
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, m.Keys.Older):
			m.offset++
			m.clampOffset()
		case key.Matches(msg, m.Keys.Newer):
			m.offset--
			m.clampOffset()
		}
	}
	return m, nil
}

// VisibleDays is the number of cells that fit in the current width.
func (m Model) VisibleDays() int {
	if m.width <= 0 {
		return m.days
	}
	// border + padding on both sides, then the name column and its separator
	avail := m.width - 4 - constants.NameColumnWidth - 1
	n := (avail + constants.DayCellGap) / (1 + constants.DayCellGap)
	if n < 1 {
		n = 1
	}
	if n > m.days {
		n = m.days
	}
	return n
}

func (m *Model) clampOffset() {
	maxOffset := m.days - m.VisibleDays()
	if m.offset > maxOffset {
		m.offset = maxOffset
	}
	if m.offset < 0 {
		m.offset = 0
	}
}

// Rows projects each habit onto its window ending at end, oldest first.
func (m Model) Rows(log StateReader, habits []models.Habit, end models.DateKey) []Row {
	rows := make([]Row, 0, len(habits))
	for _, h := range habits {
		rows = append(rows, Row{Habit: h, States: log.RecentWindow(h.ID, end, m.days)})
	}
	return rows
}

// TruncateName fits a habit name into the fixed name column.
func TruncateName(name string) string {
	return ansi.Truncate(name, constants.NameColumnWidth, "…")
}

func (m Model) View(th theme.Theme, log StateReader, habits []models.Habit, end models.DateKey) string {
	bg := th.SecondaryBackground()
	base := lipgloss.NewStyle().Background(bg)
	nameStyle := base.Foreground(th.Primary()).Width(constants.NameColumnWidth)
	gap := base.Render(strings.Repeat(" ", constants.DayCellGap))

	visible := m.VisibleDays()
	lines := make([]string, 0, len(habits))
	for _, row := range m.Rows(log, habits, end) {
		shown := row.States[len(row.States)-visible-m.offset : len(row.States)-m.offset]

		cells := make([]string, 0, len(shown))
		for _, s := range shown {
			cells = append(cells, swatch.RenderOn(th, s, swatch.Square, bg))
		}
		lines = append(lines, nameStyle.Render(TruncateName(row.Habit.Name))+base.Render(" ")+strings.Join(cells, gap))
	}

	container := lipgloss.NewStyle().
		Background(bg).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(bg).
		Padding(0, 1)
	return container.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}
