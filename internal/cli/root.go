package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/julianstephens/habits/internal/backup"
	"github.com/julianstephens/habits/internal/config"
	"github.com/julianstephens/habits/internal/constants"
	"github.com/julianstephens/habits/internal/habitlog"
	"github.com/julianstephens/habits/internal/keyring"
	"github.com/julianstephens/habits/internal/logger"
	"github.com/julianstephens/habits/internal/models"
	"github.com/julianstephens/habits/internal/storage"
	"github.com/julianstephens/habits/internal/storage/postgres"
	"github.com/julianstephens/habits/internal/storage/sqlite"
	"github.com/julianstephens/habits/internal/theme"
)

type Context struct {
	Store  storage.Provider
	Config config.Config
	Theme  theme.Theme
	Loc    *time.Location
	Out    io.Writer
	In     io.Reader
	Now    func() time.Time
}

// NewContext resolves the configured database and timezone.
func NewContext(cfg config.Config) (*Context, error) {
	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}
	store, err := OpenStore(cfg.Database)
	if err != nil {
		return nil, err
	}
	return &Context{
		Store:  store,
		Config: cfg,
		Theme:  theme.New(cfg.Appearance),
		Loc:    loc,
		Out:    os.Stdout,
		In:     os.Stdin,
		Now:    time.Now,
	}, nil
}

// OpenStore picks the backend for database: "keyring" reads a PostgreSQL
// connection string from the OS keyring, a postgres:// URL or key=value DSN
// selects PostgreSQL, and anything else is a SQLite file path.
func OpenStore(database string) (storage.Provider, error) {
	switch {
	case database == constants.KeyringDatabase:
		connStr, err := keyring.GetConnectionString()
		if err != nil {
			if errors.Is(err, keyring.ErrNotFound) {
				return nil, fmt.Errorf("no connection string in the OS keyring, run 'habits keyring set' first")
			}
			return nil, err
		}
		// The keyring is encrypted, so a stored password is accepted.
		if err := postgres.ValidateConnString(connStr); err != nil && !errors.Is(err, postgres.ErrEmbeddedCredentials) {
			return nil, fmt.Errorf("connection string in keyring: %w", err)
		}
		return postgres.New(connStr), nil

	case isPostgres(database):
		if err := postgres.ValidateConnString(database); err != nil {
			if errors.Is(err, postgres.ErrEmbeddedCredentials) {
				return nil, fmt.Errorf("%w; use 'habits keyring set' with --database keyring, or ~/.pgpass", err)
			}
			return nil, err
		}
		return postgres.New(database), nil

	default:
		path, err := config.ExpandPath(database)
		if err != nil {
			return nil, err
		}
		return sqlite.NewStore(path), nil
	}
}

func isPostgres(database string) bool {
	return postgres.IsConnString(database) || strings.Contains(database, "host=")
}

// ConfigDir is where the lock file and logs live: next to a SQLite
// database, otherwise the default config directory.
func (c *Context) ConfigDir() string {
	if s, ok := c.Store.(*sqlite.Store); ok {
		return filepath.Dir(s.GetConfigPath())
	}
	dir, err := config.ExpandPath(constants.DefaultConfigDir)
	if err != nil {
		return "."
	}
	return dir
}

func (c *Context) Today() models.DateKey {
	return models.DateKeyOf(c.Now().In(c.Loc))
}

func (c *Context) Close() error {
	if c.Store == nil {
		return nil
	}
	return c.Store.Close()
}

// OpenLog loads the habit log, writing through to the store.
func (c *Context) OpenLog() (*habitlog.Log, error) {
	return habitlog.Open(c.Store)
}

// backupManager returns the backup manager for a SQLite store.
func (c *Context) backupManager() (*backup.Manager, error) {
	s, ok := c.Store.(*sqlite.Store)
	if !ok {
		return nil, fmt.Errorf("backups are only supported for SQLite databases")
	}
	return backup.NewManager(s.GetConfigPath()), nil
}

// PerformAutomaticBackup creates a backup and only logs failures.
func (c *Context) PerformAutomaticBackup() {
	mgr, err := c.backupManager()
	if err != nil {
		logger.Debug("Skipping automatic backup", "reason", err)
		return
	}
	if _, err := mgr.CreateBackup(); err != nil {
		logger.Warn("Automatic backup failed", "error", err)
	}
}

// resolveHabit finds a habit by id, then by live name.
func resolveHabit(store storage.Provider, ref string) (models.Habit, error) {
	if h, err := store.GetHabit(ref); err == nil {
		return h, nil
	} else if !errors.Is(err, storage.ErrNotFound) {
		return models.Habit{}, err
	}

	h, err := store.GetHabitByName(strings.TrimSpace(ref))
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return models.Habit{}, fmt.Errorf("habit not found: %s", ref)
		}
		return models.Habit{}, err
	}
	return h, nil
}

// parseDay accepts YYYY-MM-DD, "today" or "yesterday". Empty means today.
func parseDay(s string, today models.DateKey) (models.DateKey, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "today":
		return today, nil
	case "yesterday":
		return today.AddDays(-1), nil
	}
	d, err := models.ParseDateKey(s)
	if err != nil {
		return models.DateKey{}, fmt.Errorf("invalid date %q (expected YYYY-MM-DD, 'today' or 'yesterday'): %w", s, err)
	}
	return d, nil
}

// checkNotFuture rejects days after today unless allow_future is set.
func (c *Context) checkNotFuture(day models.DateKey) error {
	if !c.Config.AllowFuture && day.After(c.Today()) {
		return fmt.Errorf("cannot log %s: it is in the future (set allow_future to permit this)", day)
	}
	return nil
}
