package config

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	// Level is the minimum level written: "debug", "info", "warn" or "error".
	Level string

	// File is the log file path. Empty disables logging.
	File string
}

// EditorConfig holds editing behavior settings.
type EditorConfig struct {
	// ConfirmQuit asks before quitting with unsaved changes.
	ConfirmQuit bool
}

// UIConfig holds display settings.
type UIConfig struct {
	// Welcome shows the welcome message over an empty buffer.
	Welcome bool
}

// LogLevels lists the accepted logging.level values.
var LogLevels = []string{"debug", "info", "warn", "error"}
