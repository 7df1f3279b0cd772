package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/julianstephens/habits/internal/models"
	"github.com/julianstephens/habits/internal/storage"
)

const entryColumns = "habit_id, day, state, updated_at"

// SaveEntry upserts the state of one habit on one day.
func (s *Store) SaveEntry(e models.LogEntry) error {
	if !e.State.Valid() {
		return fmt.Errorf("%w: %d", models.ErrUnknownState, uint8(e.State))
	}
	if e.UpdatedAt.IsZero() {
		e.UpdatedAt = time.Now()
	}

	_, err := s.db.Exec(`
		INSERT INTO habit_log (habit_id, day, state, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (habit_id, day) DO UPDATE SET
			state = excluded.state,
			updated_at = excluded.updated_at`,
		e.HabitID, e.Day.String(), e.State.String(), formatTime(e.UpdatedAt))
	if err != nil {
		return fmt.Errorf("failed to save entry: %w", err)
	}
	return nil
}

func (s *Store) GetEntry(habitID string, day models.DateKey) (models.LogEntry, error) {
	row := s.db.QueryRow(`SELECT `+entryColumns+` FROM habit_log WHERE habit_id = ? AND day = ?`, habitID, day.String())
	return scanEntry(row)
}

func (s *Store) GetEntriesForHabit(habitID string, start, end models.DateKey) ([]models.LogEntry, error) {
	rows, err := s.db.Query(`
		SELECT `+entryColumns+` FROM habit_log
		WHERE habit_id = ? AND day >= ? AND day <= ?
		ORDER BY day`,
		habitID, start.String(), end.String())
	if err != nil {
		return nil, err
	}
	return collectEntries(rows)
}

func (s *Store) GetAllEntries() ([]models.LogEntry, error) {
	rows, err := s.db.Query(`SELECT ` + entryColumns + ` FROM habit_log ORDER BY habit_id, day`)
	if err != nil {
		return nil, err
	}
	return collectEntries(rows)
}

func collectEntries(rows *sql.Rows) ([]models.LogEntry, error) {
	defer rows.Close()

	var entries []models.LogEntry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func scanEntry(row scanner) (models.LogEntry, error) {
	var e models.LogEntry
	var day, state, updatedAt string

	if err := row.Scan(&e.HabitID, &day, &state, &updatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.LogEntry{}, storage.ErrNotFound
		}
		return models.LogEntry{}, err
	}

	var err error
	if e.Day, err = models.ParseDateKey(day); err != nil {
		return models.LogEntry{}, err
	}
	if e.State, err = models.ParseHabitState(state); err != nil {
		return models.LogEntry{}, err
	}
	if e.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return models.LogEntry{}, fmt.Errorf("failed to parse updated_at for %s on %s: %w", e.HabitID, day, err)
	}
	return e, nil
}
