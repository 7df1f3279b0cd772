package postgres

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/julianstephens/habits/internal/models"
	"github.com/julianstephens/habits/internal/storage"
)

const habitColumns = "id, name, created_at, deleted_at"

func (s *Store) AddHabit(habit models.Habit) error {
	if err := habit.Validate(); err != nil {
		return err
	}
	habit.Name = strings.TrimSpace(habit.Name)

	// Only live habits need unique names.
	if !habit.IsDeleted() {
		if _, err := s.GetHabitByName(habit.Name); err == nil {
			return fmt.Errorf("%w: %q", storage.ErrDuplicateName, habit.Name)
		} else if !errors.Is(err, storage.ErrNotFound) {
			return err
		}
	}

	if habit.CreatedAt.IsZero() {
		habit.CreatedAt = time.Now()
	}
	var deletedAt *time.Time
	if habit.DeletedAt != nil {
		t := habit.DeletedAt.UTC()
		deletedAt = &t
	}

	_, err := s.db.Exec(`INSERT INTO habits (id, name, created_at, deleted_at) VALUES ($1, $2, $3, $4)`,
		habit.ID, habit.Name, habit.CreatedAt.UTC(), deletedAt)
	if err != nil {
		return fmt.Errorf("failed to add habit: %w", err)
	}
	return nil
}

func (s *Store) GetHabit(id string) (models.Habit, error) {
	return scanHabit(s.db.QueryRow(`SELECT `+habitColumns+` FROM habits WHERE id = $1`, id))
}

func (s *Store) GetHabitByName(name string) (models.Habit, error) {
	return scanHabit(s.db.QueryRow(`SELECT `+habitColumns+` FROM habits WHERE name = $1 AND deleted_at IS NULL`, strings.TrimSpace(name)))
}

func (s *Store) GetAllHabits(includeDeleted bool) ([]models.Habit, error) {
	query := "SELECT " + habitColumns + " FROM habits"
	if !includeDeleted {
		query += " WHERE deleted_at IS NULL"
	}
	query += " ORDER BY created_at, id"

	rows, err := s.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var habits []models.Habit
	for rows.Next() {
		h, err := scanHabit(rows)
		if err != nil {
			return nil, err
		}
		habits = append(habits, h)
	}
	return habits, rows.Err()
}

func (s *Store) DeleteHabit(id string) error {
	res, err := s.db.Exec(`UPDATE habits SET deleted_at = $1 WHERE id = $2 AND deleted_at IS NULL`, time.Now().UTC(), id)
	if err != nil {
		return fmt.Errorf("failed to delete habit: %w", err)
	}
	return requireAffected(res, "habit", id)
}

func (s *Store) RestoreHabit(id string) error {
	h, err := s.GetHabit(id)
	if err != nil {
		return err
	}
	if !h.IsDeleted() {
		return fmt.Errorf("habit %q is not deleted", h.Name)
	}
	if _, err := s.GetHabitByName(h.Name); err == nil {
		return fmt.Errorf("%w: %q", storage.ErrDuplicateName, h.Name)
	} else if !errors.Is(err, storage.ErrNotFound) {
		return err
	}

	res, err := s.db.Exec(`UPDATE habits SET deleted_at = NULL WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to restore habit: %w", err)
	}
	return requireAffected(res, "habit", id)
}

type scanner interface {
	Scan(dest ...any) error
}

func scanHabit(row scanner) (models.Habit, error) {
	var h models.Habit
	var deletedAt sql.NullTime

	if err := row.Scan(&h.ID, &h.Name, &h.CreatedAt, &deletedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Habit{}, storage.ErrNotFound
		}
		return models.Habit{}, err
	}
	if deletedAt.Valid {
		t := deletedAt.Time
		h.DeletedAt = &t
	}
	return h, nil
}

func requireAffected(res sql.Result, kind, id string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("%s %s: %w", kind, id, storage.ErrNotFound)
	}
	return nil
}
