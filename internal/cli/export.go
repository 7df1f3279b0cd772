package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/julianstephens/habits/internal/export"
)

type ExportCmd struct {
	Output string `short:"o" help:"File to write; standard output when empty." type:"path"`
}

func (c *ExportCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	snap, err := export.Build(ctx.Store, ctx.Now())
	if err != nil {
		return err
	}

	if c.Output == "" {
		return export.Write(ctx.Out, snap)
	}
	if err := writeExportFile(c.Output, snap); err != nil {
		return err
	}

	fmt.Fprintf(ctx.Out, "✓ Exported %d habits and %d entries to %s\n", len(snap.Habits), len(snap.Entries), c.Output)
	return nil
}

// writeExportFile reports a failed close, since that is where a short write surfaces.
func writeExportFile(path string, snap export.Snapshot) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create export file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to write export file: %w", cerr)
		}
	}()
	return export.Write(f, snap)
}

type ImportCmd struct {
	File string `arg:"" help:"Export file to import; '-' reads standard input."`
}

func (c *ImportCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	var r io.Reader = ctx.In
	if c.File != "-" {
		f, err := os.Open(c.File)
		if err != nil {
			return fmt.Errorf("failed to open import file: %w", err)
		}
		defer f.Close()
		r = f
	}

	snap, err := export.Read(r)
	if err != nil {
		return err
	}

	// A backup first makes a bad import reversible.
	ctx.PerformAutomaticBackup()

	res, err := export.Apply(ctx.Store, snap)
	if err != nil {
		return err
	}

	fmt.Fprintf(ctx.Out, "✓ Imported %d entries (%d habits added, %d matched)\n", res.Entries, res.HabitsAdded, res.HabitsMatched)
	if res.HabitsRestored > 0 {
		fmt.Fprintf(ctx.Out, "  Restored %d deleted habit(s) that the import refers to\n", res.HabitsRestored)
	}
	return nil
}
