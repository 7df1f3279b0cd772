package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/google/uuid"

	"github.com/julianstephens/habits/internal/constants"
	"github.com/julianstephens/habits/internal/logger"
	"github.com/julianstephens/habits/internal/models"
)

func newHabitForm(fm *HabitFormModel, taken func(string) bool) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Habit Name").
				CharLimit(models.MaxHabitNameLen).
				Value(&fm.Name).
				Validate(func(s string) error {
					name := strings.TrimSpace(s)
					if name == "" {
						return fmt.Errorf("habit name cannot be empty")
					}
					if len([]rune(name)) > models.MaxHabitNameLen {
						return fmt.Errorf("habit name cannot be longer than %d characters", models.MaxHabitNameLen)
					}
					if taken(name) {
						return fmt.Errorf("a habit named %q already exists", name)
					}
					return nil
				}),
		),
	).WithTheme(huh.ThemeBase())
}

func newConfirmDeleteForm(fm *ConfirmFormModel, name string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(fmt.Sprintf("Delete %q?", name)).
				Description("Its history is kept; 'habits habit restore' brings it back.").
				Affirmative("Delete").
				Negative("Cancel").
				Value(&fm.Confirmed),
		),
	).WithTheme(huh.ThemeBase())
}

func (m *Model) startAddHabit() tea.Cmd {
	m.habitForm = &HabitFormModel{}
	m.form = newHabitForm(m.habitForm, m.nameTaken)
	m.state = constants.StateAddHabit
	return m.form.Init()
}

func (m *Model) startConfirmDelete() tea.Cmd {
	h, ok := m.cards.Selected()
	if !ok {
		return nil
	}
	m.habitToDelete = &h
	m.confirmForm = &ConfirmFormModel{}
	m.form = newConfirmDeleteForm(m.confirmForm, h.Name)
	m.state = constants.StateConfirmDelete
	return m.form.Init()
}

// updateForm drives the open form and calls submit once it completes.
func (m *Model) updateForm(msg tea.Msg, submit func()) tea.Cmd {
	if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEsc {
		m.closeForm()
		return nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		submit()
		m.closeForm()
	case huh.StateAborted:
		m.closeForm()
	}
	return cmd
}

func (m *Model) closeForm() {
	m.form = nil
	m.habitForm = nil
	m.confirmForm = nil
	m.habitToDelete = nil
	m.state = constants.StateHome
}

func (m *Model) submitAddHabit() {
	if err := m.addHabit(m.habitForm.Name); err != nil {
		m.banner = "⚠ " + err.Error()
	}
}

func (m *Model) submitConfirmDelete() {
	if !m.confirmForm.Confirmed || m.habitToDelete == nil {
		return
	}
	if err := m.deleteHabit(m.habitToDelete.ID); err != nil {
		m.banner = "⚠ " + err.Error()
	}
}

func (m *Model) nameTaken(name string) bool {
	_, err := m.store.GetHabitByName(name)
	return err == nil
}

// addHabit stores a new habit and refreshes the cards.
func (m *Model) addHabit(name string) error {
	habit := models.Habit{
		ID:        uuid.New().String(),
		Name:      strings.TrimSpace(name),
		CreatedAt: m.now(),
	}
	if err := m.store.AddHabit(habit); err != nil {
		logger.Error("Failed to add habit", "name", habit.Name, "error", err)
		return fmt.Errorf("failed to add habit: %w", err)
	}
	logger.Info("Added habit", "id", habit.ID, "name", habit.Name)
	m.reloadHabits()
	return nil
}

// deleteHabit soft-deletes the habit. Its log entries stay in place.
func (m *Model) deleteHabit(id string) error {
	if err := m.store.DeleteHabit(id); err != nil {
		logger.Error("Failed to delete habit", "id", id, "error", err)
		return fmt.Errorf("failed to delete habit: %w", err)
	}
	logger.Info("Deleted habit", "id", id)
	m.reloadHabits()
	return nil
}
