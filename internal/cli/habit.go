package cli

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/gosuri/uitable"

	"github.com/julianstephens/habits/internal/constants"
	"github.com/julianstephens/habits/internal/logger"
	"github.com/julianstephens/habits/internal/models"
)

type HabitCmd struct {
	Add     HabitAddCmd     `cmd:"" help:"Add a new habit."`
	List    HabitListCmd    `cmd:"" help:"List habits."`
	Delete  HabitDeleteCmd  `cmd:"" help:"Delete a habit, keeping its history."`
	Restore HabitRestoreCmd `cmd:"" help:"Restore a deleted habit."`
}

type HabitAddCmd struct {
	Name string `arg:"" help:"Name of the habit."`
}

func (c *HabitAddCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	habit := models.Habit{
		ID:        uuid.New().String(),
		Name:      strings.TrimSpace(c.Name),
		CreatedAt: ctx.Now(),
	}
	if err := ctx.Store.AddHabit(habit); err != nil {
		return fmt.Errorf("failed to add habit: %w", err)
	}
	logger.Info("Added habit", "id", habit.ID, "name", habit.Name)

	fmt.Fprintf(ctx.Out, "✓ Added habit: %s (%s)\n", habit.Name, habit.ID)
	return nil
}

type HabitListCmd struct {
	Deleted bool `help:"Include deleted habits."`
}

func (c *HabitListCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	habits, err := ctx.Store.GetAllHabits(c.Deleted)
	if err != nil {
		return fmt.Errorf("failed to list habits: %w", err)
	}
	if len(habits) == 0 {
		fmt.Fprintln(ctx.Out, "No habits found. Add one with 'habits habit add <name>'.")
		return nil
	}

	log, err := ctx.OpenLog()
	if err != nil {
		return err
	}
	today := ctx.Today()

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.MaxColWidth = 40
	tbl.AddRow("ID", "NAME", "TODAY", "CREATED", "STATUS")
	for _, h := range habits {
		status := "active"
		if h.IsDeleted() {
			status = "deleted " + h.DeletedAt.In(ctx.Loc).Format(constants.DateFormat)
		}
		tbl.AddRow(h.ID, h.Name, log.Get(h.ID, today).Label(), h.CreatedAt.In(ctx.Loc).Format(constants.DateFormat), status)
	}
	fmt.Fprintln(ctx.Out, tbl)
	return nil
}

type HabitDeleteCmd struct {
	Habit string `arg:"" help:"ID or name of the habit."`
}

func (c *HabitDeleteCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	h, err := resolveHabit(ctx.Store, c.Habit)
	if err != nil {
		return err
	}
	if h.IsDeleted() {
		return fmt.Errorf("habit %q is already deleted", h.Name)
	}
	if err := ctx.Store.DeleteHabit(h.ID); err != nil {
		return fmt.Errorf("failed to delete habit: %w", err)
	}
	logger.Info("Deleted habit", "id", h.ID)

	fmt.Fprintf(ctx.Out, "✓ Deleted habit: %s\n", h.Name)
	fmt.Fprintf(ctx.Out, "  Restore it with 'habits habit restore %s'\n", h.ID)
	return nil
}

type HabitRestoreCmd struct {
	ID string `arg:"" help:"ID of the deleted habit."`
}

func (c *HabitRestoreCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	h, err := ctx.Store.GetHabit(c.ID)
	if err != nil {
		return fmt.Errorf("habit not found: %s", c.ID)
	}
	if err := ctx.Store.RestoreHabit(h.ID); err != nil {
		return fmt.Errorf("failed to restore habit: %w", err)
	}
	logger.Info("Restored habit", "id", h.ID)

	fmt.Fprintf(ctx.Out, "✓ Restored habit: %s\n", h.Name)
	return nil
}
