// Package habitlog holds the in-memory mapping from (habit, day) to HabitState.
// It is the single source of truth for every view; writes go through to an
// optional Persister after the in-memory value has been updated.
package habitlog

import (
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/julianstephens/habits/internal/logger"
	"github.com/julianstephens/habits/internal/models"
)

// ErrPersist wraps failures of the persistence layer. The in-memory state is
// already updated when it is returned.
var ErrPersist = errors.New("failed to persist habit log entry")

// Persister durably records a single entry.
type Persister interface {
	SaveEntry(models.LogEntry) error
}

type entryKey struct {
	habitID string
	day     models.DateKey
}

type Log struct {
	mu      sync.Mutex
	entries map[entryKey]models.LogEntry
	persist Persister
	now     func() time.Time
}

// New creates an empty log. p may be nil for a purely in-memory log.
func New(p Persister) *Log {
	return &Log{
		entries: make(map[entryKey]models.LogEntry),
		persist: p,
		now:     time.Now,
	}
}

// Load replaces the in-memory contents with entries without persisting them.
func (l *Log) Load(entries []models.LogEntry) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.entries = make(map[entryKey]models.LogEntry, len(entries))
	for _, e := range entries {
		l.entries[entryKey{habitID: e.HabitID, day: e.Day}] = e
	}
}

// Get returns the state for (habitID, day). Days never written read as StateNo.
func (l *Log) Get(habitID string, day models.DateKey) models.HabitState {
	state, _ := l.Lookup(habitID, day)
	return state
}

// Lookup is Get plus whether an entry was ever written for (habitID, day).
// An explicit "no" and an untouched day both read as StateNo; only Lookup tells them apart.
func (l *Log) Lookup(habitID string, day models.DateKey) (models.HabitState, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	e, ok := l.entries[entryKey{habitID: habitID, day: day}]
	if !ok {
		return models.StateNo, false
	}
	return e.State, true
}

// Set records state for (habitID, day). Writing StateNo is recorded like any other state.
func (l *Log) Set(habitID string, day models.DateKey, state models.HabitState) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.setLocked(habitID, day, state)
}

// Toggle advances the state for (habitID, day) one step and returns the new state.
// The read, cycle and write happen under one lock.
func (l *Log) Toggle(habitID string, day models.DateKey) (models.HabitState, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	current := l.entries[entryKey{habitID: habitID, day: day}].State
	next := current.Next()
	err := l.setLocked(habitID, day, next)
	return next, err
}

func (l *Log) setLocked(habitID string, day models.DateKey, state models.HabitState) error {
	if !state.Valid() {
		return fmt.Errorf("%w: %d", models.ErrUnknownState, uint8(state))
	}

	entry := models.LogEntry{
		HabitID:   habitID,
		Day:       day,
		State:     state,
		UpdatedAt: l.now(),
	}
	l.entries[entryKey{habitID: habitID, day: day}] = entry

	if l.persist == nil {
		return nil
	}
	if err := l.persist.SaveEntry(entry); err != nil {
		logger.Warn("Habit log write not persisted", "habit", habitID, "day", day.String(), "error", err)
		return fmt.Errorf("%w: %v", ErrPersist, err)
	}
	return nil
}

// RecentWindow returns the states of the n calendar days ending at end, oldest first.
// The last element is always Get(habitID, end). It panics if n is negative.
func (l *Log) RecentWindow(habitID string, end models.DateKey, n int) []models.HabitState {
	if n < 0 {
		panic(fmt.Sprintf("habitlog: negative window size %d", n))
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	window := make([]models.HabitState, n)
	start := end.AddDays(-(n - 1))
	for i := 0; i < n; i++ {
		window[i] = l.entries[entryKey{habitID: habitID, day: start.AddDays(i)}].State
	}
	return window
}

// Entries returns every recorded entry, explicit "no" included, ordered by habit then day.
func (l *Log) Entries() []models.LogEntry {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]models.LogEntry, 0, len(l.entries))
	for _, e := range l.entries {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].HabitID != out[j].HabitID {
			return out[i].HabitID < out[j].HabitID
		}
		return out[i].Day.Before(out[j].Day)
	})
	return out
}

// Len returns the number of recorded entries.
func (l *Log) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}
