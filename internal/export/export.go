// Package export moves habits and their log between databases as JSON.
package export

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/julianstephens/habits/internal/logger"
	"github.com/julianstephens/habits/internal/models"
	"github.com/julianstephens/habits/internal/storage"
)

// FormatVersion is written to every snapshot; Read rejects anything newer.
const FormatVersion = 1

type Snapshot struct {
	Version    int       `json:"version"`
	ExportedAt time.Time `json:"exported_at"`
	Habits     []Habit   `json:"habits"`
	Entries    []Entry   `json:"entries"`
}

type Habit struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Entry carries the state as its token ("no", "kinda", "yes"); decoding fails on anything else.
type Entry struct {
	HabitID string            `json:"habit_id"`
	Day     models.DateKey    `json:"day"`
	State   models.HabitState `json:"state"`
}

// UnmarshalJSON requires the state key. A missing or null state would
// otherwise decode as the zero state, "no".
func (e *Entry) UnmarshalJSON(data []byte) error {
	var raw struct {
		HabitID string             `json:"habit_id"`
		Day     models.DateKey     `json:"day"`
		State   *models.HabitState `json:"state"`
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&raw); err != nil {
		return err
	}
	if raw.State == nil {
		return fmt.Errorf("%w: missing state for %s on %s", models.ErrUnknownState, raw.HabitID, raw.Day)
	}
	*e = Entry{HabitID: raw.HabitID, Day: raw.Day, State: *raw.State}
	return nil
}

// Source is the read side of a storage provider.
type Source interface {
	GetAllHabits(includeDeleted bool) ([]models.Habit, error)
	GetAllEntries() ([]models.LogEntry, error)
}

// Target is the write side of a storage provider.
type Target interface {
	GetHabit(id string) (models.Habit, error)
	GetHabitByName(name string) (models.Habit, error)
	AddHabit(models.Habit) error
	RestoreHabit(id string) error
	SaveEntry(models.LogEntry) error
}

var _ Source = storage.Provider(nil)
var _ Target = storage.Provider(nil)

// Build collects live habits and their entries. Entries of deleted habits are left out.
func Build(src Source, now time.Time) (Snapshot, error) {
	habits, err := src.GetAllHabits(false)
	if err != nil {
		return Snapshot{}, fmt.Errorf("failed to read habits: %w", err)
	}
	entries, err := src.GetAllEntries()
	if err != nil {
		return Snapshot{}, fmt.Errorf("failed to read habit log: %w", err)
	}

	snap := Snapshot{
		Version:    FormatVersion,
		ExportedAt: now.UTC(),
		Habits:     make([]Habit, 0, len(habits)),
		Entries:    make([]Entry, 0, len(entries)),
	}
	live := make(map[string]bool, len(habits))
	for _, h := range habits {
		live[h.ID] = true
		snap.Habits = append(snap.Habits, Habit{ID: h.ID, Name: h.Name})
	}
	for _, e := range entries {
		if !live[e.HabitID] {
			continue
		}
		snap.Entries = append(snap.Entries, Entry{HabitID: e.HabitID, Day: e.Day, State: e.State})
	}
	return snap, nil
}

func Write(w io.Writer, snap Snapshot) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(snap); err != nil {
		return fmt.Errorf("failed to encode export: %w", err)
	}
	return nil
}

// Read decodes and validates a snapshot. Any bad state token, date or
// dangling habit reference fails the whole read.
func Read(r io.Reader) (Snapshot, error) {
	var snap Snapshot
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&snap); err != nil {
		return Snapshot{}, fmt.Errorf("invalid export file: %w", err)
	}
	if err := snap.Validate(); err != nil {
		return Snapshot{}, err
	}
	return snap, nil
}

func (s Snapshot) Validate() error {
	if s.Version < 1 || s.Version > FormatVersion {
		return fmt.Errorf("unsupported export version %d (supported: %d)", s.Version, FormatVersion)
	}

	ids := make(map[string]bool, len(s.Habits))
	names := make(map[string]bool, len(s.Habits))
	for i, h := range s.Habits {
		mh := models.Habit{ID: h.ID, Name: h.Name}
		if err := mh.Validate(); err != nil {
			return fmt.Errorf("habit %d: %w", i, err)
		}
		if ids[h.ID] {
			return fmt.Errorf("habit %d: duplicate id %s", i, h.ID)
		}
		name := strings.TrimSpace(h.Name)
		if names[name] {
			return fmt.Errorf("habit %d: duplicate name %q", i, name)
		}
		ids[h.ID] = true
		names[name] = true
	}

	type key struct {
		habitID string
		day     models.DateKey
	}
	seen := make(map[key]bool, len(s.Entries))
	for i, e := range s.Entries {
		if !ids[e.HabitID] {
			return fmt.Errorf("entry %d: unknown habit id %s", i, e.HabitID)
		}
		if e.Day.IsZero() {
			return fmt.Errorf("entry %d: %w: missing day", i, models.ErrInvalidDate)
		}
		if !e.State.Valid() {
			return fmt.Errorf("entry %d: %w", i, models.ErrUnknownState)
		}
		k := key{habitID: e.HabitID, day: e.Day}
		if seen[k] {
			return fmt.Errorf("entry %d: duplicate entry for %s on %s", i, e.HabitID, e.Day)
		}
		seen[k] = true
	}
	return nil
}

type Result struct {
	HabitsAdded    int
	HabitsMatched  int
	HabitsRestored int
	Entries        int
}

// Apply upserts a validated snapshot into dst. Habits are matched by id, then
// by live name; unmatched habits are added. A habit matched by id that was
// deleted in dst is restored, unless a live habit has taken its name, in which
// case that live habit receives the entries. Entries overwrite existing ones.
func Apply(dst Target, snap Snapshot) (Result, error) {
	var res Result
	idMap := make(map[string]string, len(snap.Habits))

	for _, h := range snap.Habits {
		existing, err := dst.GetHabit(h.ID)
		switch {
		case err == nil && !existing.IsDeleted():
			idMap[h.ID] = existing.ID
			res.HabitsMatched++
			continue
		case err == nil:
			rerr := dst.RestoreHabit(existing.ID)
			if rerr == nil {
				logger.Info("Restored deleted habit on import", "id", existing.ID, "name", existing.Name)
				idMap[h.ID] = existing.ID
				res.HabitsRestored++
				continue
			}
			if !errors.Is(rerr, storage.ErrDuplicateName) {
				return res, fmt.Errorf("failed to restore habit %q: %w", existing.Name, rerr)
			}
		case !errors.Is(err, storage.ErrNotFound):
			return res, err
		}

		existing, err = dst.GetHabitByName(h.Name)
		switch {
		case err == nil:
			idMap[h.ID] = existing.ID
			res.HabitsMatched++
			continue
		case !errors.Is(err, storage.ErrNotFound):
			return res, err
		}

		if err := dst.AddHabit(models.Habit{ID: h.ID, Name: h.Name}); err != nil {
			return res, fmt.Errorf("failed to add habit %q: %w", h.Name, err)
		}
		idMap[h.ID] = h.ID
		res.HabitsAdded++
	}

	for _, e := range snap.Entries {
		entry := models.LogEntry{HabitID: idMap[e.HabitID], Day: e.Day, State: e.State}
		if err := dst.SaveEntry(entry); err != nil {
			return res, fmt.Errorf("failed to import entry for %s on %s: %w", entry.HabitID, e.Day, err)
		}
		res.Entries++
	}

	logger.Info("Imported snapshot",
		"habits_added", res.HabitsAdded,
		"habits_matched", res.HabitsMatched,
		"habits_restored", res.HabitsRestored,
		"entries", res.Entries)
	return res, nil
}
