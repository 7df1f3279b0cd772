package cli

import (
	"fmt"

	"github.com/julianstephens/habits/internal/models"
)

type LogCmd struct {
	Set    LogSetCmd    `cmd:"" help:"Record a habit's state for a day."`
	Toggle LogToggleCmd `cmd:"" help:"Cycle a habit's state for a day (no → kinda → yes → no)."`
	Show   LogShowCmd   `cmd:"" help:"Show a habit's state for a day."`
}

type LogSetCmd struct {
	Habit string `arg:"" help:"ID or name of the habit."`
	State string `arg:"" help:"One of: no, kinda, yes."`
	Date  string `help:"Day to log (YYYY-MM-DD, today, yesterday)." default:"today"`
}

func (c *LogSetCmd) Run(ctx *Context) error {
	state, err := models.ParseHabitState(c.State)
	if err != nil {
		return err
	}
	h, day, err := loadHabitDay(ctx, c.Habit, c.Date)
	if err != nil {
		return err
	}
	if err := ctx.checkNotFuture(day); err != nil {
		return err
	}

	log, err := ctx.OpenLog()
	if err != nil {
		return err
	}
	if err := log.Set(h.ID, day, state); err != nil {
		return err
	}
	fmt.Fprintf(ctx.Out, "%s on %s: %s\n", h.Name, day.Display(), state.Label())
	return nil
}

type LogToggleCmd struct {
	Habit string `arg:"" help:"ID or name of the habit."`
	Date  string `help:"Day to log (YYYY-MM-DD, today, yesterday)." default:"today"`
}

func (c *LogToggleCmd) Run(ctx *Context) error {
	h, day, err := loadHabitDay(ctx, c.Habit, c.Date)
	if err != nil {
		return err
	}
	if err := ctx.checkNotFuture(day); err != nil {
		return err
	}

	log, err := ctx.OpenLog()
	if err != nil {
		return err
	}
	state, err := log.Toggle(h.ID, day)
	if err != nil {
		return err
	}
	fmt.Fprintf(ctx.Out, "%s on %s: %s\n", h.Name, day.Display(), state.Label())
	return nil
}

type LogShowCmd struct {
	Habit string `arg:"" help:"ID or name of the habit."`
	Date  string `help:"Day to show (YYYY-MM-DD, today, yesterday)." default:"today"`
}

func (c *LogShowCmd) Run(ctx *Context) error {
	h, day, err := loadHabitDay(ctx, c.Habit, c.Date)
	if err != nil {
		return err
	}

	log, err := ctx.OpenLog()
	if err != nil {
		return err
	}
	fmt.Fprintln(ctx.Out, log.Get(h.ID, day).Label())
	return nil
}

func loadHabitDay(ctx *Context, ref, date string) (models.Habit, models.DateKey, error) {
	if err := ctx.Store.Load(); err != nil {
		return models.Habit{}, models.DateKey{}, err
	}
	h, err := resolveHabit(ctx.Store, ref)
	if err != nil {
		return models.Habit{}, models.DateKey{}, err
	}
	day, err := parseDay(date, ctx.Today())
	if err != nil {
		return models.Habit{}, models.DateKey{}, err
	}
	return h, day, nil
}
