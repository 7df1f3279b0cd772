package cli

import (
	"fmt"

	"github.com/julianstephens/habits/internal/constants"
	"github.com/julianstephens/habits/internal/tui/components/palette"
	"github.com/julianstephens/habits/internal/tui/components/summary"
)

type SummaryCmd struct {
	Date string `help:"Last day of the window (YYYY-MM-DD, today, yesterday)." default:"today"`
	Days int    `help:"Number of days per habit; defaults to window_days."`
}

func (c *SummaryCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	end, err := parseDay(c.Date, ctx.Today())
	if err != nil {
		return err
	}
	days := c.Days
	if days == 0 {
		days = ctx.Config.WindowDays
	}
	if days < 1 || days > constants.MaxWindowDays {
		return fmt.Errorf("--days must be between 1 and %d", constants.MaxWindowDays)
	}

	habits, err := ctx.Store.GetAllHabits(false)
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

	fmt.Fprintf(ctx.Out, "summary through %s\n", end.Display())
	fmt.Fprintln(ctx.Out, summary.New(days).View(ctx.Theme, log, habits, end))
	return nil
}

type PaletteCmd struct{}

func (c *PaletteCmd) Run(ctx *Context) error {
	fmt.Fprintln(ctx.Out, palette.View(ctx.Theme))
	return nil
}
