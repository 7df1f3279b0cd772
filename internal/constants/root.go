package constants

// SessionState represents the current screen of the TUI application
type SessionState int

// Appearance selects which side of the light/dark palette is rendered
type Appearance string

const (
	AppName            = "habits"
	DefaultKeyringUser = "database-connection"
	// KeyringDatabase as the database setting reads the connection string from the OS keyring
	KeyringDatabase    = "keyring"
	DefaultConfigDir   = "~/.config/habits"
	DefaultConfigPath  = "~/.config/habits/habits.db"
	DefaultConfigFile  = "~/.config/habits/config.yaml"
	Version            = "v0.1.0"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// Summary grid constants
	DefaultWindowDays = 15
	MaxWindowDays     = 366

	// Backup constants
	MaxBackups       = 14
	BackupDirName    = "backups"
	BackupFilePrefix = "habits-"
	BackupFileSuffix = ".db"

	// Lock constants
	LockfileName = "habits.lock"

	// Appearance constants
	AppearanceAuto  Appearance = "auto"
	AppearanceLight Appearance = "light"
	AppearanceDark  Appearance = "dark"
)

// Session States
const (
	StateHome SessionState = iota
	StatePalette
	StateAddHabit
	StateConfirmDelete
)
