package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/julianstephens/habits/internal/cli"
	"github.com/julianstephens/habits/internal/config"
	"github.com/julianstephens/habits/internal/constants"
	apperrors "github.com/julianstephens/habits/internal/errors"
	"github.com/julianstephens/habits/internal/logger"
)

var CLI struct {
	Version    kong.VersionFlag
	ConfigFile string `name:"config" help:"Config file path." type:"string" default:"${config_file}"`
	Database   string `help:"SQLite database path, PostgreSQL connection string without a password, or 'keyring'. Overrides the config file."`
	DebugLog   bool   `name:"debug" help:"Enable debug logging."`

	Init    cli.InitCmd    `cmd:"" help:"Initialize habits storage."`
	Migrate cli.MigrateCmd `cmd:"" help:"Run database migrations."`
	Doctor  cli.DoctorCmd  `cmd:"" help:"Run health checks and diagnostics."`
	Tui     cli.TuiCmd     `cmd:"" help:"Launch the interactive TUI." default:"1"`
	Habit   cli.HabitCmd   `cmd:"" help:"Manage habits."`
	Log     cli.LogCmd     `cmd:"" help:"Record or show a habit's state for a day."`
	Summary cli.SummaryCmd `cmd:"" help:"Print the recent-days summary grid."`
	Palette cli.PaletteCmd `cmd:"" help:"Print every habit state with its colour."`
	Export  cli.ExportCmd  `cmd:"" help:"Export habits and history as JSON."`
	Import  cli.ImportCmd  `cmd:"" help:"Import habits and history from a JSON export."`
	Backup  cli.BackupCmd  `cmd:"" help:"Manage database backups."`
	Keyring cli.KeyringCmd `cmd:"" help:"Manage the PostgreSQL connection string in the OS keyring."`
	Debug   cli.DebugCmd   `cmd:"" help:"Debug commands for troubleshooting."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Track daily habits with a no / kinda / yes log"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{
			"version":     constants.Version,
			"config_file": constants.DefaultConfigFile,
		},
	)

	cfg, err := config.Load(CLI.ConfigFile)
	if err != nil {
		apperrors.Fatal(err)
	}
	if CLI.Database != "" {
		cfg.Database = CLI.Database
	}
	if CLI.DebugLog {
		cfg.Debug = true
	}

	appCtx, err := cli.NewContext(cfg)
	if err != nil {
		apperrors.Fatal(err)
	}

	if err := logger.Init(logger.Config{
		Debug:     cfg.Debug,
		ConfigDir: appCtx.ConfigDir(),
		Quiet:     ctx.Command() == "tui",
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to initialize logger: %v\n", err)
	}

	err = ctx.Run(appCtx)
	if cerr := appCtx.Close(); cerr != nil {
		logger.Warn("Failed to close database", "error", cerr)
	}
	_ = logger.Close()
	apperrors.Fatal(err)
}
