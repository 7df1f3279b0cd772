package habitlog

import (
	"fmt"

	"github.com/julianstephens/habits/internal/models"
)

// Source supplies previously persisted entries.
type Source interface {
	GetAllEntries() ([]models.LogEntry, error)
}

// Store is a Source that can also persist writes, such as a storage provider.
type Store interface {
	Source
	Persister
}

// Open builds a Log from every entry in s and writes new entries back to s.
func Open(s Store) (*Log, error) {
	entries, err := s.GetAllEntries()
	if err != nil {
		return nil, fmt.Errorf("failed to load habit log: %w", err)
	}

	l := New(s)
	l.Load(entries)
	return l, nil
}
