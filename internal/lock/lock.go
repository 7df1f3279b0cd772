// Package lock keeps a second TUI from writing to the same habit log.
package lock

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/mitchellh/go-ps"

	"github.com/julianstephens/habits/internal/constants"
	"github.com/julianstephens/habits/internal/logger"
)

// ErrLocked is returned while another live process holds the lockfile.
var ErrLocked = errors.New("habits is already running")

var (
	findProcessFunc = ps.FindProcess
	getpidFunc      = os.Getpid
)

type Lock struct {
	path string
	pid  int
}

// Path returns the lockfile location inside configDir.
func Path(configDir string) string {
	return filepath.Join(configDir, constants.LockfileName)
}

// Acquire writes the current PID to the lockfile in configDir. A lockfile left
// by a process that is no longer running is replaced.
func Acquire(configDir string) (*Lock, error) {
	if err := os.MkdirAll(configDir, 0700); err != nil {
		return nil, fmt.Errorf("failed to create config directory: %w", err)
	}

	path := Path(configDir)
	pid := getpidFunc()

	for attempt := 0; attempt < 2; attempt++ {
		f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0600)
		if err == nil {
			_, werr := f.WriteString(strconv.Itoa(pid) + "\n")
			cerr := f.Close()
			if werr != nil || cerr != nil {
				os.Remove(path)
				return nil, fmt.Errorf("failed to write lockfile: %w", errors.Join(werr, cerr))
			}
			logger.Debug("Acquired lock", "path", path, "pid", pid)
			return &Lock{path: path, pid: pid}, nil
		}
		if !os.IsExist(err) {
			return nil, fmt.Errorf("failed to create lockfile: %w", err)
		}

		holder, alive := Holder(configDir)
		if alive && holder != pid {
			return nil, fmt.Errorf("%w (pid %d, lockfile %s)", ErrLocked, holder, path)
		}

		logger.Info("Replacing stale lockfile", "path", path, "pid", holder)
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to remove stale lockfile: %w", err)
		}
	}
	return nil, fmt.Errorf("%w: lockfile %s keeps reappearing", ErrLocked, path)
}

// Holder reports the PID recorded in the lockfile and whether that process is still running.
func Holder(configDir string) (pid int, alive bool) {
	content, err := os.ReadFile(Path(configDir))
	if err != nil {
		return 0, false
	}
	pid, err = strconv.Atoi(strings.TrimSpace(string(content)))
	if err != nil || pid <= 0 {
		return 0, false
	}
	process, err := findProcessFunc(pid)
	if err != nil || process == nil {
		return pid, false
	}
	return pid, true
}

// Release removes the lockfile if it still belongs to this lock.
func (l *Lock) Release() error {
	if l == nil {
		return nil
	}
	content, err := os.ReadFile(l.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	if strings.TrimSpace(string(content)) != strconv.Itoa(l.pid) {
		return nil
	}
	if err := os.Remove(l.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove lockfile: %w", err)
	}
	return nil
}
