package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/habits/internal/lock"
	"github.com/julianstephens/habits/internal/logger"
	"github.com/julianstephens/habits/internal/tui"
)

type TuiCmd struct{}

func (c *TuiCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	l, err := lock.Acquire(ctx.ConfigDir())
	if err != nil {
		return err
	}
	defer func() {
		if err := l.Release(); err != nil {
			logger.Warn("Failed to release lock", "error", err)
		}
	}()

	// Perform automatic backup on TUI startup (after successful load)
	ctx.PerformAutomaticBackup()

	log, err := ctx.OpenLog()
	if err != nil {
		return err
	}

	model := tui.NewModel(ctx.Store, log, tui.Options{
		WindowDays:  ctx.Config.WindowDays,
		AllowFuture: ctx.Config.AllowFuture,
		Location:    ctx.Loc,
		Theme:       ctx.Theme,
		Now:         ctx.Now,
	})
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui exited with an error: %w", err)
	}
	return nil
}
