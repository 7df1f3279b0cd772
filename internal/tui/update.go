package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/habits/internal/constants"
	"github.com/julianstephens/habits/internal/logger"
	"github.com/julianstephens/habits/internal/tui/components/dateselector"
	"github.com/julianstephens/habits/internal/tui/components/logcard"
)

const (
	docPadX      = 2
	docPadY      = 1
	maxCardWidth = 60
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmd := m.update(msg)
	m.layout()
	return m, cmd
}

func (m *Model) update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return nil

	case tickMsg:
		m.dates.SetToday(m.today())
		return tick()

	case logcard.ToggleMsg:
		m.toggle(msg.HabitID)
		return nil

	case dateselector.ChangedMsg:
		// A new day always shows up at the right edge of the strip.
		m.summary.ScrollToEnd()
		return nil
	}

	switch m.state {
	case constants.StateAddHabit:
		return m.updateForm(msg, m.submitAddHabit)
	case constants.StateConfirmDelete:
		return m.updateForm(msg, m.submitConfirmDelete)
	case constants.StatePalette:
		return m.updatePalette(msg)
	default:
		return m.updateHome(msg)
	}
}

func (m *Model) updateHome(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return nil
		case key.Matches(msg, m.keys.Add):
			return m.startAddHabit()
		case key.Matches(msg, m.keys.Delete):
			return m.startConfirmDelete()
		case key.Matches(msg, m.keys.Palette):
			m.state = constants.StatePalette
			return nil
		case key.Matches(msg, m.keys.Back):
			m.banner = ""
			return nil
		}

	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			if h, ok := m.cards.HitTest(msg.X-docPadX, msg.Y-m.cardsTop()); ok {
				m.toggle(h.ID)
			}
		}
		return nil
	}

	var cmds []tea.Cmd
	var cmd tea.Cmd
	m.dates, cmd = m.dates.Update(msg)
	cmds = append(cmds, cmd)
	m.summary, cmd = m.summary.Update(msg)
	cmds = append(cmds, cmd)
	m.cards, cmd = m.cards.Update(msg)
	cmds = append(cmds, cmd)
	return tea.Batch(cmds...)
}

func (m *Model) updatePalette(msg tea.Msg) tea.Cmd {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return tea.Quit
		case key.Matches(msg, m.keys.Back), key.Matches(msg, m.keys.Palette):
			m.state = constants.StateHome
		}
	}
	return nil
}

// toggle cycles the habit on the selected day. A failed write keeps the new
// in-memory state and raises the banner.
func (m *Model) toggle(habitID string) {
	day := m.dates.Selected()
	state, err := m.log.Toggle(habitID, day)
	if err != nil {
		logger.Error("Failed to save habit state", "habit", habitID, "day", day.String(), "error", err)
		m.banner = "⚠ " + err.Error()
		return
	}
	logger.Debug("Toggled habit", "habit", habitID, "day", day.String(), "state", state.String())
	m.banner = ""
}

// layout sizes the children from the terminal size and the current header.
func (m *Model) layout() {
	if m.width <= 0 {
		return
	}
	content := max(0, m.width-2*docPadX)
	m.summary.SetWidth(content)
	m.help.Width = content

	height := 0
	if m.height > 0 {
		used := 2*docPadY + lipgloss.Height(m.viewHeader()) + lipgloss.Height(m.help.View(*m)) + 1
		height = max(logcard.CardHeight, m.height-used)
	}
	m.cards.SetSize(min(content, maxCardWidth), height)
}

// cardsTop is the screen row where the first card starts.
func (m Model) cardsTop() int {
	return docPadY + lipgloss.Height(m.viewHeader())
}
