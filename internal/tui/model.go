// Package tui is the interactive home screen: the summary grid, the date
// selector and the stack of log cards, all reading from one habit log.
package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/habits/internal/constants"
	"github.com/julianstephens/habits/internal/habitlog"
	"github.com/julianstephens/habits/internal/logger"
	"github.com/julianstephens/habits/internal/models"
	"github.com/julianstephens/habits/internal/storage"
	"github.com/julianstephens/habits/internal/theme"
	"github.com/julianstephens/habits/internal/tui/components/dateselector"
	"github.com/julianstephens/habits/internal/tui/components/logcard"
	"github.com/julianstephens/habits/internal/tui/components/summary"
)

// Options configure the home screen.
type Options struct {
	WindowDays  int
	AllowFuture bool
	Location    *time.Location
	Theme       theme.Theme
	// Now is the clock; nil means time.Now.
	Now func() time.Time
}

type HabitFormModel struct {
	Name string
}

type ConfirmFormModel struct {
	Confirmed bool
}

// tickMsg re-evaluates "today" so the clamp follows midnight.
type tickMsg time.Time

type Model struct {
	store   storage.Provider
	log     *habitlog.Log
	theme   theme.Theme
	styles  styles
	habits  []models.Habit
	state   constants.SessionState
	keys    KeyMap
	help    help.Model
	summary summary.Model
	dates   dateselector.Model
	cards   logcard.Model

	form          *huh.Form
	habitForm     *HabitFormModel
	confirmForm   *ConfirmFormModel
	habitToDelete *models.Habit

	banner   string
	loc      *time.Location
	now      func() time.Time
	width    int
	height   int
	quitting bool
}

// NewModel builds the home screen over store. log must already hold the
// persisted entries and write through to store.
func NewModel(store storage.Provider, log *habitlog.Log, opts Options) Model {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Location == nil {
		opts.Location = time.Local
	}
	if opts.WindowDays < 1 {
		opts.WindowDays = constants.DefaultWindowDays
	}

	today := models.DateKeyOf(opts.Now().In(opts.Location))
	m := Model{
		store:   store,
		log:     log,
		theme:   opts.Theme,
		styles:  newStyles(opts.Theme),
		state:   constants.StateHome,
		keys:    DefaultKeyMap(),
		help:    help.New(),
		summary: summary.New(opts.WindowDays),
		dates:   dateselector.New(today, opts.AllowFuture),
		cards:   logcard.New(),
		loc:     opts.Location,
		now:     opts.Now,
	}
	m.reloadHabits()
	return m
}

func (m Model) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(time.Minute, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Selected is the date the cards are bound to.
func (m Model) Selected() models.DateKey {
	return m.dates.Selected()
}

func (m Model) Habits() []models.Habit {
	return m.habits
}

func (m Model) State() constants.SessionState {
	return m.state
}

// Banner is the last non-blocking error shown above the cards, if any.
func (m Model) Banner() string {
	return m.banner
}

func (m *Model) today() models.DateKey {
	return models.DateKeyOf(m.now().In(m.loc))
}

func (m *Model) reloadHabits() {
	habits, err := m.store.GetAllHabits(false)
	if err != nil {
		logger.Error("Failed to load habits", "error", err)
		m.banner = "⚠ Could not load habits: " + err.Error()
		return
	}
	m.habits = habits
	m.cards.SetHabits(habits)
}

func (m Model) ShortHelp() []key.Binding {
	if m.state == constants.StatePalette {
		return []key.Binding{m.keys.Back, m.keys.Quit}
	}
	if len(m.habits) == 0 {
		return []key.Binding{m.keys.Add, m.keys.Palette, m.keys.Quit}
	}
	return []key.Binding{
		m.cards.Keys.Toggle,
		m.dates.Keys.Prev,
		m.dates.Keys.Next,
		m.keys.Add,
		m.keys.Quit,
		m.keys.Help,
	}
}

func (m Model) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{m.cards.Keys.Up, m.cards.Keys.Down, m.cards.Keys.Toggle, m.cards.Keys.Jump},
		{m.dates.Keys.Prev, m.dates.Keys.Next, m.dates.Keys.Today},
		{m.summary.Keys.Older, m.summary.Keys.Newer},
		{m.keys.Add, m.keys.Delete, m.keys.Palette, m.keys.Quit, m.keys.Help},
	}
}
