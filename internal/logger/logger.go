package logger

import (
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

// The rotating file gets logfmt records; the console mirror, when enabled,
// gets the human text format. Both are nil until Init.
var (
	file    *log.Logger
	console *log.Logger
	rotator *lumberjack.Logger
)

// Config holds logger configuration
type Config struct {
	Debug     bool
	ConfigDir string
	// Quiet keeps debug output off the console, for the full-screen TUI.
	Quiet bool
	// Console receives debug output. Defaults to stderr.
	Console io.Writer
}

// FilePath is where Init writes the log for a given config directory.
func FilePath(configDir string) string {
	return filepath.Join(configDir, "logs", "habits.log")
}

// Init opens the rotating log file and installs the package loggers.
// Callers should Close on exit so the file handle is released.
func Init(cfg Config) error {
	path := FilePath(cfg.ConfigDir)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	level := log.WarnLevel
	if cfg.Debug {
		level = log.DebugLevel
	}

	_ = Close()
	rotator = &lumberjack.Logger{
		Filename:   path,
		MaxSize:    5, // megabytes
		MaxBackups: 3,
		MaxAge:     28, // days
		Compress:   true,
	}
	file = log.NewWithOptions(rotator, log.Options{
		ReportTimestamp: true,
		Level:           level,
		Prefix:          "habits",
		Formatter:       log.LogfmtFormatter,
	})

	if cfg.Debug && !cfg.Quiet {
		out := cfg.Console
		if out == nil {
			out = os.Stderr
		}
		console = log.NewWithOptions(out, log.Options{
			ReportCaller: true,
			// The helpers below add one frame.
			CallerOffset: 1,
			Level:        level,
			Prefix:       "habits",
		})
	}
	return nil
}

// Close flushes and releases the log file. Logging after Close is a no-op.
func Close() error {
	file, console = nil, nil
	if rotator == nil {
		return nil
	}
	err := rotator.Close()
	rotator = nil
	return err
}

func emit(level log.Level, msg string, keyvals []interface{}) {
	for _, l := range []*log.Logger{file, console} {
		if l != nil {
			l.Log(level, msg, keyvals...)
		}
	}
}

func Debug(msg string, keyvals ...interface{}) { emit(log.DebugLevel, msg, keyvals) }

func Info(msg string, keyvals ...interface{}) { emit(log.InfoLevel, msg, keyvals) }

func Warn(msg string, keyvals ...interface{}) { emit(log.WarnLevel, msg, keyvals) }

func Error(msg string, keyvals ...interface{}) { emit(log.ErrorLevel, msg, keyvals) }
