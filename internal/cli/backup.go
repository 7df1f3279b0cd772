package cli

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gosuri/uitable"

	"github.com/julianstephens/habits/internal/constants"
	"github.com/julianstephens/habits/internal/lock"
)

type BackupCmd struct {
	Create  BackupCreateCmd  `cmd:"" help:"Create a manual backup." default:"1"`
	List    BackupListCmd    `cmd:"" help:"List available backups."`
	Restore BackupRestoreCmd `cmd:"" help:"Restore from a backup."`
}

type BackupCreateCmd struct{}

func (c *BackupCreateCmd) Run(ctx *Context) error {
	mgr, err := ctx.backupManager()
	if err != nil {
		return err
	}
	backupPath, err := mgr.CreateBackup()
	if err != nil {
		return fmt.Errorf("backup failed: %w", err)
	}

	fmt.Fprintf(ctx.Out, "✓ Backup created: %s\n", filepath.Base(backupPath))
	return nil
}

type BackupListCmd struct{}

func (c *BackupListCmd) Run(ctx *Context) error {
	mgr, err := ctx.backupManager()
	if err != nil {
		return err
	}
	backups, err := mgr.ListBackups()
	if err != nil {
		return fmt.Errorf("failed to list backups: %w", err)
	}

	if len(backups) == 0 {
		fmt.Fprintln(ctx.Out, "No backups found.")
		fmt.Fprintf(ctx.Out, "Backups are stored in: %s\n", mgr.BackupDir())
		return nil
	}

	fmt.Fprintf(ctx.Out, "Available backups (%d total, keeping most recent %d):\n\n", len(backups), constants.MaxBackups)
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow("CREATED", "FILE", "SIZE")
	for _, b := range backups {
		tbl.AddRow(b.Timestamp.Format("2006-01-02 15:04:05"), b.Name(), fmt.Sprintf("%.1f KB", float64(b.Size)/1024.0))
	}
	fmt.Fprintln(ctx.Out, tbl)
	fmt.Fprintf(ctx.Out, "\nBackup directory: %s\n", mgr.BackupDir())
	return nil
}

type BackupRestoreCmd struct {
	BackupFile string `arg:"" help:"Path or filename of the backup to restore."`
	Yes        bool   `short:"y" help:"Do not ask for confirmation."`
}

func (c *BackupRestoreCmd) Run(ctx *Context) error {
	mgr, err := ctx.backupManager()
	if err != nil {
		return err
	}

	backupPath := c.BackupFile
	if _, err := os.Stat(backupPath); err != nil {
		backupPath = mgr.Resolve(c.BackupFile)
		if _, err := os.Stat(backupPath); err != nil {
			return fmt.Errorf("backup file not found: tried %s and %s", c.BackupFile, mgr.BackupDir())
		}
	}

	if pid, alive := lock.Holder(ctx.ConfigDir()); alive {
		return fmt.Errorf("%w (pid %d); quit the TUI before restoring", lock.ErrLocked, pid)
	}

	if !c.Yes {
		fmt.Fprintln(ctx.Out, "⚠️  WARNING: This will replace your current database with the backup.")
		fmt.Fprintln(ctx.Out, "A backup of your current database will be created before restoring.")
		fmt.Fprintf(ctx.Out, "\nRestore from: %s\n", backupPath)
		fmt.Fprint(ctx.Out, "Continue? [y/N]: ")

		response, err := bufio.NewReader(ctx.In).ReadString('\n')
		if err != nil && response == "" {
			return fmt.Errorf("failed to read confirmation: %w", err)
		}
		response = strings.TrimSpace(strings.ToLower(response))
		if response != "y" && response != "yes" {
			fmt.Fprintln(ctx.Out, "Restore cancelled.")
			return nil
		}
	}

	if err := ctx.Store.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to close database connection: %v\n", err)
	}

	previous, err := mgr.RestoreBackup(backupPath)
	if err != nil {
		return fmt.Errorf("restore failed: %w", err)
	}

	fmt.Fprintln(ctx.Out, "✓ Database restored successfully!")
	if previous != "" {
		fmt.Fprintf(ctx.Out, "  Previous database saved as %s\n", filepath.Base(previous))
	}
	return nil
}
