package cli

import (
	"errors"
	"fmt"

	"github.com/julianstephens/habits/internal/constants"
	"github.com/julianstephens/habits/internal/keyring"
	"github.com/julianstephens/habits/internal/storage/postgres"
)

type KeyringCmd struct {
	Set    KeyringSetCmd    `cmd:"" help:"Store a PostgreSQL connection string in the OS keyring."`
	Delete KeyringDeleteCmd `cmd:"" help:"Remove the stored connection string."`
	Status KeyringStatusCmd `cmd:"" help:"Check the OS keyring and show the stored connection string, masked."`
}

type KeyringSetCmd struct {
	ConnectionString string `arg:"" help:"PostgreSQL connection string to store in keyring."`
}

func (cmd *KeyringSetCmd) Run(ctx *Context) error {
	if !isPostgres(cmd.ConnectionString) {
		return errors.New("connection string must be a valid PostgreSQL connection string")
	}

	if err := postgres.ValidateConnString(cmd.ConnectionString); err != nil {
		if !errors.Is(err, postgres.ErrEmbeddedCredentials) {
			return fmt.Errorf("invalid connection string: %w", err)
		}
		fmt.Fprintln(ctx.Out, "⚠️  Warning: Connection string contains embedded credentials.")
		fmt.Fprintln(ctx.Out, "   It will be stored as-is in the encrypted OS keyring.")
	}

	if err := keyring.SetConnectionString(cmd.ConnectionString); err != nil {
		return err
	}

	fmt.Fprintln(ctx.Out, "✓ Connection string stored successfully in OS keyring")
	fmt.Fprintf(ctx.Out, "  Use it with --database %s (or database: %s in config.yaml)\n", constants.KeyringDatabase, constants.KeyringDatabase)
	return nil
}

type KeyringDeleteCmd struct{}

func (cmd *KeyringDeleteCmd) Run(ctx *Context) error {
	if err := keyring.DeleteConnectionString(); err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return errors.New("no connection string found in keyring")
		}
		return err
	}

	fmt.Fprintln(ctx.Out, "✓ Connection string deleted from OS keyring")
	return nil
}

type KeyringStatusCmd struct{}

func (cmd *KeyringStatusCmd) Run(ctx *Context) error {
	if !keyring.IsAvailable() {
		fmt.Fprintln(ctx.Out, "❌ OS keyring is not available on this system")
		return keyring.ErrKeyringUnavailable
	}
	fmt.Fprintln(ctx.Out, "✓ OS keyring is available")

	connStr, err := keyring.GetConnectionString()
	switch {
	case err == nil:
		fmt.Fprintf(ctx.Out, "✓ Connection string is stored in keyring: %s\n", keyring.Mask(connStr))
	case errors.Is(err, keyring.ErrNotFound):
		fmt.Fprintln(ctx.Out, "ℹ No connection string stored in keyring")
	default:
		return err
	}
	return nil
}
