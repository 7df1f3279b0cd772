package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/julianstephens/habits/internal/lock"
)

type DoctorCmd struct{}

type check struct {
	name string
	run  func(*Context) error
	// warnOnly checks report problems without failing the run
	warnOnly bool
	// needsDB checks are skipped when the database is unreachable
	needsDB bool
}

var doctorChecks = []check{
	{name: "Database reachable", run: checkDBReachable},
	{name: "Schema version", run: checkSchemaVersion, needsDB: true},
	{name: "Backups present", run: checkBackupsPresent, warnOnly: true},
	{name: "Data validation", run: checkValidation, needsDB: true},
	{name: "Clock/timezone", run: checkClockTimezone},
	{name: "TUI lock", run: checkLock, warnOnly: true},
}

func (cmd *DoctorCmd) Run(ctx *Context) error {
	fmt.Fprintln(ctx.Out, "Running diagnostics...")
	fmt.Fprintln(ctx.Out)

	hasError := false
	dbReachable := true
	for _, c := range doctorChecks {
		if c.needsDB && !dbReachable {
			fmt.Fprintf(ctx.Out, "⊘ %s: SKIPPED (database not reachable)\n", c.name)
			continue
		}
		err := c.run(ctx)
		switch {
		case err == nil:
			fmt.Fprintf(ctx.Out, "✓ %s: OK\n", c.name)
		case c.warnOnly:
			fmt.Fprintf(ctx.Out, "⚠ %s: WARNING\n", c.name)
			fmt.Fprintf(ctx.Out, "   %v\n", err)
		default:
			fmt.Fprintf(ctx.Out, "❌ %s: FAIL\n", c.name)
			fmt.Fprintf(ctx.Out, "   Error: %v\n", err)
			hasError = true
			if c.name == "Database reachable" {
				dbReachable = false
			}
		}
	}

	fmt.Fprintln(ctx.Out)
	if hasError {
		fmt.Fprintln(ctx.Out, "Diagnostics completed with errors.")
		return errors.New("one or more health checks failed")
	}

	fmt.Fprintln(ctx.Out, "All diagnostics passed!")
	return nil
}

func checkDBReachable(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return fmt.Errorf("failed to load database: %w", err)
	}
	if _, err := ctx.Store.GetAllHabits(true); err != nil {
		return fmt.Errorf("failed to query database: %w", err)
	}
	return nil
}

func checkSchemaVersion(ctx *Context) error {
	m, ok := ctx.Store.(migrator)
	if !ok {
		return nil
	}
	current, latest, err := m.SchemaVersion()
	if err != nil {
		return fmt.Errorf("failed to read schema version: %w", err)
	}
	if current > latest {
		return fmt.Errorf("database schema version (%d) is newer than supported version (%d)", current, latest)
	}
	if current < latest {
		return fmt.Errorf("migrations incomplete: current version %d, latest version %d; run 'habits migrate'", current, latest)
	}
	return nil
}

func checkBackupsPresent(ctx *Context) error {
	mgr, err := ctx.backupManager()
	if err != nil {
		return err
	}
	backups, err := mgr.ListBackups()
	if err != nil {
		return fmt.Errorf("failed to list backups: %w", err)
	}
	if len(backups) == 0 {
		return errors.New("no backups found, consider creating one with 'habits backup create'")
	}
	return nil
}

// checkValidation looks for entries pointing at unknown habits, invalid
// states and, unless allow_future is set, days after today.
func checkValidation(ctx *Context) error {
	habits, err := ctx.Store.GetAllHabits(true)
	if err != nil {
		return fmt.Errorf("failed to get habits: %w", err)
	}
	known := make(map[string]bool, len(habits))
	live := make(map[string]string, len(habits))
	for _, h := range habits {
		if known[h.ID] {
			return fmt.Errorf("duplicate habit ID found: %s", h.ID)
		}
		known[h.ID] = true
		if h.IsDeleted() {
			continue
		}
		if other, ok := live[h.Name]; ok {
			return fmt.Errorf("habits %s and %s share the name %q", other, h.ID, h.Name)
		}
		live[h.Name] = h.ID
	}

	entries, err := ctx.Store.GetAllEntries()
	if err != nil {
		return fmt.Errorf("failed to get log entries: %w", err)
	}
	today := ctx.Today()
	var problems []error
	for _, e := range entries {
		switch {
		case !known[e.HabitID]:
			problems = append(problems, fmt.Errorf("entry on %s references unknown habit %s", e.Day, e.HabitID))
		case !e.State.Valid():
			problems = append(problems, fmt.Errorf("entry for %s on %s has invalid state %d", e.HabitID, e.Day, uint8(e.State)))
		case !ctx.Config.AllowFuture && e.Day.After(today):
			problems = append(problems, fmt.Errorf("entry for %s is dated in the future (%s)", e.HabitID, e.Day))
		}
	}
	return errors.Join(problems...)
}

func checkClockTimezone(ctx *Context) error {
	now := ctx.Now()
	if now.Year() < 2020 || now.Year() > 2100 {
		return fmt.Errorf("system time appears incorrect: %s", now.Format(time.RFC3339))
	}
	if ctx.Loc == time.UTC {
		fmt.Fprintln(ctx.Out, "   Note: days roll over at midnight UTC")
	}
	return nil
}

func checkLock(ctx *Context) error {
	if pid, alive := lock.Holder(ctx.ConfigDir()); alive {
		return fmt.Errorf("the TUI is running (pid %d)", pid)
	}
	return nil
}
