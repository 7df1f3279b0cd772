package cli

import (
	"encoding/json"
	"fmt"

	"github.com/julianstephens/habits/internal/models"
	"github.com/julianstephens/habits/internal/storage/sqlite"
)

type DebugCmd struct {
	DBPath    DebugDBPathCmd    `cmd:"" name:"db-path" help:"Show database path."`
	DumpHabit DebugDumpHabitCmd `cmd:"" help:"Dump a habit and its log entries as JSON."`
}

type DebugDBPathCmd struct{}

func (cmd *DebugDBPathCmd) Run(ctx *Context) error {
	path := ctx.Store.GetConfigPath()
	backend := "postgres"
	if _, ok := ctx.Store.(*sqlite.Store); ok {
		backend = "sqlite"
	}

	return writeJSON(ctx, map[string]string{
		"backend": backend,
		"path":    path,
	})
}

type DebugDumpHabitCmd struct {
	Habit string `arg:"" help:"ID or name of the habit to dump."`
}

type habitDump struct {
	Habit   models.Habit      `json:"habit"`
	Entries []models.LogEntry `json:"entries"`
}

func (cmd *DebugDumpHabitCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return fmt.Errorf("failed to load database: %w", err)
	}

	habit, err := resolveHabit(ctx.Store, cmd.Habit)
	if err != nil {
		return err
	}

	all, err := ctx.Store.GetAllEntries()
	if err != nil {
		return fmt.Errorf("failed to get log entries: %w", err)
	}
	dump := habitDump{Habit: habit, Entries: []models.LogEntry{}}
	for _, e := range all {
		if e.HabitID == habit.ID {
			dump.Entries = append(dump.Entries, e)
		}
	}

	return writeJSON(ctx, dump)
}

func writeJSON(ctx *Context, v any) error {
	jsonBytes, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	fmt.Fprintln(ctx.Out, string(jsonBytes))
	return nil
}
