// Package logcard renders the stack of per-habit cards for the selected day.
// Cards hold no state: toggles are reported to the owner as ToggleMsg.
package logcard

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/julianstephens/habits/internal/constants"
	"github.com/julianstephens/habits/internal/models"
	"github.com/julianstephens/habits/internal/theme"
	"github.com/julianstephens/habits/internal/tui/components/swatch"
)

const (
	// CardHeight is a bordered single-line card.
	CardHeight   = 3
	defaultWidth = 40
	minWidth     = 12
)

// ToggleMsg asks the owner to cycle the habit's state on the selected day.
type ToggleMsg struct {
	HabitID string
}

// StateReader is the read-only view of the habit log a card needs.
type StateReader interface {
	Get(habitID string, day models.DateKey) models.HabitState
}

type KeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Toggle key.Binding
	Jump   key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Toggle: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter/space", "cycle state"),
		),
		Jump: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
			key.WithHelp("1-9", "cycle habit N"),
		),
	}
}

type Model struct {
	Keys   KeyMap
	habits []models.Habit
	cursor int
	offset int
	width  int
	height int
}

func New() Model {
	return Model{Keys: DefaultKeyMap()}
}

// SetHabits replaces the cards, keeping the cursor in range.
func (m *Model) SetHabits(habits []models.Habit) {
	m.habits = habits
	m.clamp()
}

// SetSize sets the card width and the height available to the stack.
// A zero height shows every card.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.clamp()
}

func (m Model) Cursor() int {
	return m.cursor
}

// Selected returns the habit under the cursor.
func (m Model) Selected() (models.Habit, bool) {
	if m.cursor < 0 || m.cursor >= len(m.habits) {
		return models.Habit{}, false
	}
	return m.habits[m.cursor], true
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || len(m.habits) == 0 {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.Keys.Up):
		m.cursor--
		m.clamp()
	case key.Matches(keyMsg, m.Keys.Down):
		m.cursor++
		m.clamp()
	case key.Matches(keyMsg, m.Keys.Toggle):
		return m, m.toggle(m.cursor)
	case key.Matches(keyMsg, m.Keys.Jump):
		n := int(keyMsg.String()[0] - '0')
		if n > len(m.habits) {
			return m, nil
		}
		m.cursor = n - 1
		m.clamp()
		return m, m.toggle(m.cursor)
	}
	return m, nil
}

func (m Model) toggle(i int) tea.Cmd {
	if i < 0 || i >= len(m.habits) {
		return nil
	}
	id := m.habits[i].ID
	return func() tea.Msg { return ToggleMsg{HabitID: id} }
}

// HitTest maps a point relative to the top-left of the stack onto the
// swatch of a card and returns that card's habit.
func (m Model) HitTest(x, y int) (models.Habit, bool) {
	if x < 0 || y < 0 {
		return models.Habit{}, false
	}
	if h := m.viewportHeight(); h > 0 && y >= h {
		return models.Habit{}, false
	}

	i := m.offset + y/CardHeight
	if i >= len(m.habits) {
		return models.Habit{}, false
	}

	col := m.SwatchColumn()
	if x < col-1 || x > col+1 {
		return models.Habit{}, false
	}
	return m.habits[i], true
}

// SwatchColumn is the x position of the swatch glyph inside a card.
func (m Model) SwatchColumn() int {
	return m.cardWidth() - 2 - constants.CardPadding
}

func (m Model) cardWidth() int {
	switch {
	case m.width <= 0:
		return defaultWidth
	case m.width < minWidth:
		return minWidth
	default:
		return m.width
	}
}

func (m Model) visibleCards() int {
	if m.height <= 0 {
		return len(m.habits)
	}
	return max(1, m.height/CardHeight)
}

func (m Model) viewportHeight() int {
	if m.height <= 0 {
		return 0
	}
	return m.visibleCards() * CardHeight
}

// clamp keeps the cursor in range and scrolls so it stays visible.
func (m *Model) clamp() {
	if m.cursor >= len(m.habits) {
		m.cursor = len(m.habits) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}

	visible := m.visibleCards()
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+visible {
		m.offset = m.cursor - visible + 1
	}
	if maxOffset := len(m.habits) - visible; m.offset > maxOffset {
		m.offset = max(0, maxOffset)
	}
}

// Card renders a single card. focused draws the border in the primary colour.
func Card(th theme.Theme, habit models.Habit, state models.HabitState, width int, focused bool) string {
	bg := th.SecondaryBackground()
	base := lipgloss.NewStyle().Background(bg)

	inner := width - 2 - 2*constants.CardPadding
	name := ansi.Truncate(habit.Name, max(1, inner-2), "…")
	spacer := inner - lipgloss.Width(name) - 1

	line := base.Foreground(th.Primary()).Render(name) +
		base.Render(strings.Repeat(" ", max(1, spacer))) +
		swatch.RenderOn(th, state, swatch.Circle, bg)

	border := bg
	if focused {
		border = th.Primary()
	}
	return lipgloss.NewStyle().
		Background(bg).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(0, constants.CardPadding).
		Render(line)
}

// View renders the cards for day, scrolled so the cursor is visible.
func (m Model) View(th theme.Theme, log StateReader, day models.DateKey) string {
	if len(m.habits) == 0 {
		return ""
	}

	width := m.cardWidth()
	cards := make([]string, 0, len(m.habits))
	for i, h := range m.habits {
		cards = append(cards, Card(th, h, log.Get(h.ID, day), width, i == m.cursor))
	}
	content := lipgloss.JoinVertical(lipgloss.Left, cards...)

	height := m.viewportHeight()
	if height == 0 {
		return content
	}
	vp := viewport.New(width, height)
	vp.SetContent(content)
	vp.SetYOffset(m.offset * CardHeight)
	return vp.View()
}
