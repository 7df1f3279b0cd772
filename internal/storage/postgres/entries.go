package postgres

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/julianstephens/habits/internal/models"
	"github.com/julianstephens/habits/internal/storage"
)

// day is read back as text so no timezone conversion touches the calendar date.
const entryColumns = "habit_id, to_char(day, 'YYYY-MM-DD'), state, updated_at"

func (s *Store) SaveEntry(e models.LogEntry) error {
	if !e.State.Valid() {
		return fmt.Errorf("%w: %d", models.ErrUnknownState, uint8(e.State))
	}
	if e.UpdatedAt.IsZero() {
		e.UpdatedAt = time.Now()
	}

	_, err := s.db.Exec(`
		INSERT INTO habit_log (habit_id, day, state, updated_at)
		VALUES ($1, $2::date, $3, $4)
		ON CONFLICT (habit_id, day) DO UPDATE SET
			state = EXCLUDED.state,
			updated_at = EXCLUDED.updated_at`,
		e.HabitID, e.Day.String(), e.State.String(), e.UpdatedAt.UTC())
	if err != nil {
		return fmt.Errorf("failed to save entry: %w", err)
	}
	return nil
}

func (s *Store) GetEntry(habitID string, day models.DateKey) (models.LogEntry, error) {
	row := s.db.QueryRow(`SELECT `+entryColumns+` FROM habit_log WHERE habit_id = $1 AND day = $2::date`, habitID, day.String())
	return scanEntry(row)
}

func (s *Store) GetEntriesForHabit(habitID string, start, end models.DateKey) ([]models.LogEntry, error) {
	rows, err := s.db.Query(`
		SELECT `+entryColumns+` FROM habit_log
		WHERE habit_id = $1 AND day BETWEEN $2::date AND $3::date
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
	var day, state string

	if err := row.Scan(&e.HabitID, &day, &state, &e.UpdatedAt); err != nil {
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
	return e, nil
}
