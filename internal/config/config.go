// Package config reads user settings from config.yaml, the environment and .env.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/julianstephens/habits/internal/constants"
)

const EnvPrefix = "HABITS"

// Keys understood in config.yaml and as HABITS_* environment variables.
const (
	KeyDatabase    = "database"
	KeyWindowDays  = "window_days"
	KeyAllowFuture = "allow_future"
	KeyAppearance  = "appearance"
	KeyTimezone    = "timezone"
	KeyDebug       = "debug"
)

type Config struct {
	Database    string               `mapstructure:"database"`
	WindowDays  int                  `mapstructure:"window_days"`
	AllowFuture bool                 `mapstructure:"allow_future"`
	Appearance  constants.Appearance `mapstructure:"appearance"`
	Timezone    string               `mapstructure:"timezone"`
	Debug       bool                 `mapstructure:"debug"`

	// File is the config file that was read, empty when none was found.
	File string `mapstructure:"-"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(KeyDatabase, constants.DefaultConfigPath)
	v.SetDefault(KeyWindowDays, constants.DefaultWindowDays)
	v.SetDefault(KeyAllowFuture, false)
	v.SetDefault(KeyAppearance, string(constants.AppearanceAuto))
	v.SetDefault(KeyTimezone, "Local")
	v.SetDefault(KeyDebug, false)
}

// Load reads configFile (or the default location when empty). A missing file
// is not an error; every key then takes its environment or default value.
func Load(configFile string) (Config, error) {
	// .env only fills variables that are not already set.
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to read .env: %w", err)
	}

	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	if configFile == "" {
		configFile = constants.DefaultConfigFile
	}
	path, err := ExpandPath(configFile)
	if err != nil {
		return Config{}, err
	}
	v.SetConfigFile(path)

	var file string
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !os.IsNotExist(err) {
			return Config{}, fmt.Errorf("error reading config file %s: %w", path, err)
		}
	} else {
		file = v.ConfigFileUsed()
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to decode config: %w", err)
	}
	cfg.File = file

	if err := cfg.normalize(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) normalize() error {
	if c.WindowDays < 1 || c.WindowDays > constants.MaxWindowDays {
		return fmt.Errorf("%s must be between 1 and %d, got %d", KeyWindowDays, constants.MaxWindowDays, c.WindowDays)
	}

	switch constants.Appearance(strings.ToLower(string(c.Appearance))) {
	case constants.AppearanceAuto, constants.AppearanceLight, constants.AppearanceDark:
		c.Appearance = constants.Appearance(strings.ToLower(string(c.Appearance)))
	default:
		return fmt.Errorf("%s must be auto, light or dark, got %q", KeyAppearance, c.Appearance)
	}

	if _, err := c.Location(); err != nil {
		return err
	}
	return nil
}

// Location resolves the configured timezone used to decide what "today" is.
func (c Config) Location() (*time.Location, error) {
	if c.Timezone == "" || c.Timezone == "Local" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid %s %q: %w", KeyTimezone, c.Timezone, err)
	}
	return loc, nil
}

// ExpandPath replaces a leading ~ with the user's home directory.
func ExpandPath(path string) (string, error) {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
	}
	return path, nil
}
