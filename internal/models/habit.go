package models

import (
	"fmt"
	"strings"
	"time"
)

// MaxHabitNameLen bounds names so summary rows stay aligned
const MaxHabitNameLen = 64

// Habit represents a named recurring behaviour to track
type Habit struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	CreatedAt time.Time  `json:"created_at"`
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
}

func (h *Habit) Validate() error {
	if strings.TrimSpace(h.ID) == "" {
		return fmt.Errorf("habit id cannot be empty")
	}
	name := strings.TrimSpace(h.Name)
	if name == "" {
		return fmt.Errorf("habit name cannot be empty")
	}
	if len([]rune(name)) > MaxHabitNameLen {
		return fmt.Errorf("habit name cannot be longer than %d characters", MaxHabitNameLen)
	}
	return nil
}

func (h *Habit) IsDeleted() bool {
	return h.DeletedAt != nil
}

// LogEntry records the state of one habit on one day
type LogEntry struct {
	HabitID   string     `json:"habit_id"`
	Day       DateKey    `json:"day"`
	State     HabitState `json:"state"`
	UpdatedAt time.Time  `json:"updated_at"`
}
