package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/julianstephens/habits/internal/storage"
	"github.com/julianstephens/habits/internal/storage/sqlite"
)

type InitCmd struct {
	Force  bool   `help:"Delete an existing SQLite database before initializing."`
	Source string `help:"Database path or connection string to copy habits and history from."`
}

func (c *InitCmd) Run(ctx *Context) error {
	if c.Force {
		if err := c.removeExisting(ctx); err != nil {
			return err
		}
	}

	if err := ctx.Store.Init(); err != nil {
		return err
	}
	fmt.Fprintf(ctx.Out, "Initialized habits storage at: %s\n", ctx.Store.GetConfigPath())

	if c.Source != "" {
		fmt.Fprintf(ctx.Out, "Copying data from: %s\n", c.Source)
		if err := c.copyFrom(ctx); err != nil {
			return fmt.Errorf("copy failed: %w", err)
		}
		fmt.Fprintln(ctx.Out, "Copy completed successfully!")
	}
	return nil
}

func (c *InitCmd) removeExisting(ctx *Context) error {
	s, ok := ctx.Store.(*sqlite.Store)
	if !ok {
		return fmt.Errorf("--force is only supported for SQLite databases")
	}
	dbPath := s.GetConfigPath()

	if c.Source != "" {
		absDB, errDB := filepath.Abs(dbPath)
		absSource, errSource := filepath.Abs(c.Source)
		if errDB == nil && errSource == nil && absDB == absSource {
			return fmt.Errorf("cannot use --force when source and destination are the same: %s", dbPath)
		}
	}

	if _, err := os.Stat(dbPath); err == nil {
		if err := ctx.Store.Close(); err != nil {
			return fmt.Errorf("failed to close existing database: %w", err)
		}
		if err := os.Remove(dbPath); err != nil {
			return fmt.Errorf("failed to delete existing database: %w", err)
		}
		fmt.Fprintf(ctx.Out, "Deleted existing database at: %s\n", dbPath)
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("failed to access existing database: %w", err)
	}
	return nil
}

// copyFrom copies every habit, deleted ones included, and every log entry.
func (c *InitCmd) copyFrom(ctx *Context) error {
	source, err := OpenStore(c.Source)
	if err != nil {
		return err
	}
	if err := source.Load(); err != nil {
		return fmt.Errorf("failed to load source database: %w", err)
	}
	defer source.Close()

	return copyStore(ctx, source, ctx.Store)
}

func copyStore(ctx *Context, src, dst storage.Provider) error {
	fmt.Fprintln(ctx.Out, "  Copying habits...")
	habits, err := src.GetAllHabits(true)
	if err != nil {
		return fmt.Errorf("failed to get habits from source: %w", err)
	}
	// AddHabit keeps DeletedAt, so deleted habits stay deleted with their original time.
	for _, h := range habits {
		if err := dst.AddHabit(h); err != nil {
			return fmt.Errorf("failed to add habit %s: %w", h.ID, err)
		}
	}
	fmt.Fprintf(ctx.Out, "    Copied %d habits\n", len(habits))

	fmt.Fprintln(ctx.Out, "  Copying habit log...")
	entries, err := src.GetAllEntries()
	if err != nil {
		return fmt.Errorf("failed to get habit log from source: %w", err)
	}
	for _, e := range entries {
		if err := dst.SaveEntry(e); err != nil {
			return fmt.Errorf("failed to save entry %s/%s: %w", e.HabitID, e.Day, err)
		}
	}
	fmt.Fprintf(ctx.Out, "    Copied %d entries\n", len(entries))
	return nil
}
