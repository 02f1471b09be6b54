package config

import "io/fs"

// -----------------------------------------------------------------------------
// Build Information
// -----------------------------------------------------------------------------

// Build variables are injected via -ldflags.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// -----------------------------------------------------------------------------
// Application Constants
// -----------------------------------------------------------------------------

const (
	AppName = "Random Start Date"
	AppID   = "com.github.pure-winter-hue.random-start-date"
)

// -----------------------------------------------------------------------------
// Exit Codes
// -----------------------------------------------------------------------------

const (
	ExitCodeSuccess = 0
	ExitCodeError   = 1
)

// -----------------------------------------------------------------------------
// System & File Permissions
// -----------------------------------------------------------------------------

const (
	// FilePermUserRW represents -rw------- (Read/Write for owner only).
	FilePermUserRW fs.FileMode = 0600

	// DirPermUserRWX represents drwx------ (Read/Write/Exec for owner only).
	DirPermUserRWX fs.FileMode = 0700
)

// -----------------------------------------------------------------------------
// CLI Flags & Descriptions
// -----------------------------------------------------------------------------

const (
	FlagVersion      = "version"
	FlagDebug        = "debug"
	FlagWorld        = "world"
	FlagDescVersion  = "Show application version and exit"
	FlagDescDebug    = "Enable debug logging"
	FlagDescWorld    = "Path to the world descriptor file"
	MsgVersionOutput = "%s version %s (%s/%s)\n"
)

// -----------------------------------------------------------------------------
// Persistence: File Names & Save Keys
// -----------------------------------------------------------------------------

const (
	// ConfigFileName is the logical name of the mod settings file inside the
	// host's config directory.
	ConfigFileName = "randomstartdate.json"

	// SaveFileSuffix names the per-save key/value file used by the harness
	// save store.
	SaveFileSuffix = ".save.json"

	// SaveKeyApplied is the save-scoped flag recording that the start date
	// has been applied to this world. Once true it is never cleared.
	SaveKeyApplied = "randomstartdate:applied"
)

// -----------------------------------------------------------------------------
// Calendar Geometry & Fresh-Start Heuristic
// -----------------------------------------------------------------------------

const (
	// MonthsPerYear is fixed by the host engine's calendar.
	MonthsPerYear = 12

	// FreshStartMonthIndex and FreshStartWindowHours describe the host
	// engine's default new-world calendar position: day 0 of the 5th month
	// (0-based index 4), within the first half day. A save still inside this
	// window has seen no meaningful play time. These values mirror the
	// engine default and are not derived from any general rule.
	FreshStartMonthIndex  = 4
	FreshStartWindowHours = 12.0
)

// -----------------------------------------------------------------------------
// Defaults & Ranges
// -----------------------------------------------------------------------------

const (
	DefaultFixedMonth = 1
	DefaultFixedDay   = 1
	DefaultFixedHour  = 6

	MinMonth = 1
	MaxMonth = 12
	MinDay   = 1
	MinHour  = 0
	MaxHour  = 23

	// Harness world defaults, matching the host engine's stock calendar.
	DefaultHoursPerDay  = 24.0
	DefaultDaysPerMonth = 9
	DefaultSaveID       = "world"
	DefaultWorldFile    = "world.yaml"
	DefaultDataDir      = "."
)

// -----------------------------------------------------------------------------
// Error Messages (Technical/Logs)
// -----------------------------------------------------------------------------

const (
	ErrConfigLoad  = "failed to read start date settings"
	ErrConfigSave  = "failed to write start date settings"
	ErrConfigParse = "failed to decode start date settings"
	ErrFlagRead    = "failed to read save flags"
	ErrFlagWrite   = "failed to write save flags"
	ErrFlagParse   = "failed to decode save flags"
	ErrWorldRead   = "failed to read world descriptor"
	ErrWorldParse  = "failed to decode world descriptor"
	ErrEnvParse    = "failed to parse environment configuration"
	ErrAppFailed   = "application failed unexpectedly"
	ErrApplyFailed = "start date pass failed"
)

// -----------------------------------------------------------------------------
// Log Messages
// -----------------------------------------------------------------------------

const (
	MsgAppStarting    = "Starting application"
	MsgAppStop        = "Application stopped gracefully"
	MsgNoCalendar     = "No calendar available, skipping start date pass"
	MsgAlreadyApplied = "Start date already applied for this save"
	MsgNotFresh       = "World has elapsed play time, leaving calendar untouched"
	MsgConfigDefault  = "Settings file absent, writing defaults"
	MsgApplied        = "Start date applied"
	MsgNoOpDelta      = "Calendar already at target start date"
	MsgWorldLoaded    = "World descriptor loaded"
	MsgGameReady      = "Firing game-ready hooks"
	MsgFinalDate      = "Calendar position after start date pass"
)

// -----------------------------------------------------------------------------
// Structured Logging Keys (slog)
// -----------------------------------------------------------------------------

const (
	LogKeyComponent  = "component"
	LogKeyError      = "error"
	LogKeySave       = "save"
	LogKeyPath       = "path"
	LogKeySeed       = "seed"
	LogKeyDelta      = "delta_hours"
	LogKeyMonth      = "month"
	LogKeyDay        = "day"
	LogKeyHour       = "hour"
	LogKeyTotalHours = "total_hours"

	// Startup Info Keys
	LogKeyBuild   = "build"
	LogKeyApp     = "app"
	LogKeyVersion = "version"
	LogKeyGoVer   = "go_version"
	LogKeyEnv     = "env"
	LogKeyOS      = "os"
	LogKeyArch    = "arch"
	LogKeyPID     = "pid"
)

// -----------------------------------------------------------------------------
// Log Components
// -----------------------------------------------------------------------------

const (
	CompMain   = "main"
	CompEngine = "engine"
	CompHost   = "host"
)
