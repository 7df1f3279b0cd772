// Package dateselector shows the selected day with previous/next affordances.
package dateselector

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/habits/internal/models"
	"github.com/julianstephens/habits/internal/theme"
)

const (
	prevGlyph = "‹"
	nextGlyph = "›"
)

// ChangedMsg is sent after the selected date moves.
type ChangedMsg struct {
	Date models.DateKey
}

type KeyMap struct {
	Prev  key.Binding
	Next  key.Binding
	Today key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Prev: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "previous day"),
		),
		Next: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "next day"),
		),
		Today: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "today"),
		),
	}
}

type Model struct {
	Keys        KeyMap
	selected    models.DateKey
	today       models.DateKey
	allowFuture bool
}

// New selects today. Unless allowFuture is set, Next stops at today.
func New(today models.DateKey, allowFuture bool) Model {
	return Model{
		Keys:        DefaultKeyMap(),
		selected:    today,
		today:       today,
		allowFuture: allowFuture,
	}
}

func (m Model) Selected() models.DateKey {
	return m.selected
}

func (m Model) Today() models.DateKey {
	return m.today
}

// SetToday moves the clamp when the calendar day rolls over. The selection is kept.
func (m *Model) SetToday(today models.DateKey) {
	m.today = today
	if !m.allowFuture && m.selected.After(today) {
		m.selected = today
	}
}

// Select jumps to d, clamped like Next.
func (m *Model) Select(d models.DateKey) {
	if !m.allowFuture && d.After(m.today) {
		d = m.today
	}
	m.selected = d
}

func (m *Model) Prev() {
	m.selected = m.selected.AddDays(-1)
}

// Next advances one day and reports whether the date moved.
func (m *Model) Next() bool {
	if !m.CanNext() {
		return false
	}
	m.selected = m.selected.AddDays(1)
	return true
}

func (m Model) CanNext() bool {
	return m.allowFuture || m.selected.Before(m.today)
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	before := m.selected
	switch {
	case key.Matches(keyMsg, m.Keys.Prev):
		m.Prev()
	case key.Matches(keyMsg, m.Keys.Next):
		m.Next()
	case key.Matches(keyMsg, m.Keys.Today):
		m.selected = m.today
	}

	if m.selected == before {
		return m, nil
	}
	selected := m.selected
	return m, func() tea.Msg { return ChangedMsg{Date: selected} }
}

func (m Model) View(th theme.Theme) string {
	arrow := lipgloss.NewStyle().Foreground(th.Primary()).Bold(true)
	disabled := lipgloss.NewStyle().Foreground(th.Secondary())
	date := lipgloss.NewStyle().Foreground(th.Primary()).Bold(true).Padding(0, 2)

	next := arrow.Render(nextGlyph)
	if !m.CanNext() {
		next = disabled.Render(nextGlyph)
	}

	return lipgloss.JoinHorizontal(lipgloss.Center,
		arrow.Render(prevGlyph),
		date.Render(m.selected.Display()),
		next,
	)
}
