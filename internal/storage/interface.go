package storage

import (
	"errors"

	"github.com/julianstephens/habits/internal/models"
)

// ErrNotFound is returned when a habit or log entry does not exist.
var ErrNotFound = errors.New("not found")

// ErrDuplicateName is returned when a live habit already uses the name.
var ErrDuplicateName = errors.New("a habit with that name already exists")

type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Habits
	AddHabit(models.Habit) error
	GetHabit(id string) (models.Habit, error)
	GetHabitByName(name string) (models.Habit, error)
	GetAllHabits(includeDeleted bool) ([]models.Habit, error)
	DeleteHabit(id string) error
	RestoreHabit(id string) error

	// Habit log
	SaveEntry(models.LogEntry) error
	GetEntry(habitID string, day models.DateKey) (models.LogEntry, error)
	// GetEntriesForHabit returns the entries of one habit with start <= day <= end, oldest first.
	GetEntriesForHabit(habitID string, start, end models.DateKey) ([]models.LogEntry, error)
	GetAllEntries() ([]models.LogEntry, error)

	// Utils
	GetConfigPath() string
}
