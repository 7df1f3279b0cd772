package cli

import "fmt"

// migrator is implemented by both storage backends.
type migrator interface {
	Migrate(logFn func(string)) (int, error)
	SchemaVersion() (current, latest int, err error)
}

type MigrateCmd struct{}

func (c *MigrateCmd) Run(ctx *Context) error {
	m, ok := ctx.Store.(migrator)
	if !ok {
		return fmt.Errorf("storage backend does not support migrations")
	}

	count, err := m.Migrate(func(msg string) {
		fmt.Fprintln(ctx.Out, msg)
	})
	if err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	if count == 0 {
		fmt.Fprintln(ctx.Out, "No migrations to apply. Database is up to date.")
	} else {
		fmt.Fprintf(ctx.Out, "\nSuccessfully applied %d migration(s).\n", count)
	}
	return nil
}
