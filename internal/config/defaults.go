// Package config handles the persisted taskninja configuration.
package config

const (
	// AppName names the configuration directory under the user config dir.
	AppName = "taskninja"

	// ConfigFileName is the name of the config file within the config directory.
	ConfigFileName = "config.yml"

	// DefaultDataFile is the task file location, relative to the config directory.
	DefaultDataFile = "data/tasks.json"

	// DefaultLogLevel is the logger threshold when none is configured.
	DefaultLogLevel = "warn"

	// ActivityLogFileName is written beside the task file when activity_log is on.
	ActivityLogFileName = "activity.jsonl"

	// CurrentVersion is the current config schema version.
	CurrentVersion = 2
)

// DefaultColors are lipgloss color codes for the response and task styles.
// Empty means the terminal default.
var DefaultColors = Colors{
	Error:      "1",
	Flag:       "",
	Success:    "2",
	Default:    "",
	Complete:   "6",
	Incomplete: "1",
}

// logLevels are the level names accepted for log_level.
var logLevels = []string{"debug", "info", "warn", "error", "fatal"}
