package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"go.yaml.in/yaml/v3"
)

const (
	fileMode = 0o600
	dirMode  = 0o750
)

// Sentinel errors.
var (
	ErrNotFound = errors.New("config file not found")
	ErrInvalid  = errors.New("invalid config")
)

// Config represents the taskninja configuration.
type Config struct {
	Version       int    `yaml:"version"`
	DataFile      string `yaml:"data_file"`
	Time24Hour    bool   `yaml:"time_24_hour"`
	DateNumerical bool   `yaml:"date_numerical"`
	Colors        Colors `yaml:"colors"`
	LogLevel      string `yaml:"log_level,omitempty"`
	ActivityLog   bool   `yaml:"activity_log,omitempty"`
	ICSFile       string `yaml:"ics_file,omitempty"`

	// Legacy holds version 1 color fields until migrate folds them into Colors.
	Legacy LegacyColors `yaml:",inline"`

	// dir is the absolute path to the config directory (not serialized).
	dir string `yaml:"-"`
}

// Colors holds lipgloss color codes (ANSI numbers or hex) per style.
type Colors struct {
	Error      string `yaml:"error"`
	Flag       string `yaml:"flag"`
	Success    string `yaml:"success"`
	Default    string `yaml:"default"`
	Complete   string `yaml:"complete"`
	Incomplete string `yaml:"incomplete"`
}

// LegacyColors are the flat escape-sequence color fields of version 1 files.
type LegacyColors struct {
	ErrorColor      string `yaml:"error_color,omitempty"`
	FlagColor       string `yaml:"flag_color,omitempty"`
	SuccessColor    string `yaml:"success_color,omitempty"`
	DefaultColor    string `yaml:"default_color,omitempty"`
	CompleteColor   string `yaml:"complete_color,omitempty"`
	IncompleteColor string `yaml:"incomplete_color,omitempty"`
}

// NewDefault creates a Config with default values.
func NewDefault() *Config {
	return &Config{
		Version:  CurrentVersion,
		DataFile: DefaultDataFile,
		Colors:   DefaultColors,
		LogLevel: DefaultLogLevel,
	}
}

// DefaultDir returns the per-user config directory, ~/.config/taskninja on Linux.
func DefaultDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolving user config dir: %w", err)
	}
	return filepath.Join(base, AppName), nil
}

// Dir returns the absolute path to the config directory.
func (c *Config) Dir() string {
	return c.dir
}

// SetDir sets the config directory path on the config.
func (c *Config) SetDir(dir string) {
	c.dir = dir
}

// ConfigPath returns the absolute path to the config file.
func (c *Config) ConfigPath() string {
	return filepath.Join(c.dir, ConfigFileName)
}

// DataPath returns the task file path. Relative paths resolve against the
// config directory.
func (c *Config) DataPath() string {
	return c.resolve(c.DataFile)
}

// ActivityLogPath returns the activity log location, or "" when disabled.
func (c *Config) ActivityLogPath() string {
	if !c.ActivityLog {
		return ""
	}
	return filepath.Join(filepath.Dir(c.DataPath()), ActivityLogFileName)
}

// ICSPath returns the iCalendar mirror location, or "" when disabled.
func (c *Config) ICSPath() string {
	if c.ICSFile == "" {
		return ""
	}
	return c.resolve(c.ICSFile)
}

func (c *Config) resolve(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(c.dir, path)
}

// Validate checks the config for errors.
func (c *Config) Validate() error {
	if c.Version != CurrentVersion {
		return fmt.Errorf("%w: unsupported version %d (expected %d)", ErrInvalid, c.Version, CurrentVersion)
	}
	if c.DataFile == "" {
		return fmt.Errorf("%w: data_file is required", ErrInvalid)
	}
	if c.LogLevel != "" && !slices.Contains(logLevels, c.LogLevel) {
		return fmt.Errorf("%w: log_level %q must be one of %v", ErrInvalid, c.LogLevel, logLevels)
	}
	if c.ICSFile != "" && c.resolve(c.ICSFile) == c.DataPath() {
		return fmt.Errorf("%w: ics_file must differ from data_file", ErrInvalid)
	}
	return nil
}

// Save writes the config to its config file, creating the directory.
func (c *Config) Save() error {
	if err := os.MkdirAll(c.dir, dirMode); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	return os.WriteFile(c.ConfigPath(), data, fileMode)
}

// Load reads and validates a config from the given directory.
func Load(dir string) (*Config, error) {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolving path: %w", err)
	}

	path := filepath.Join(absDir, ConfigFileName)
	data, err := os.ReadFile(path) //nolint:gosec // config path from trusted source
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: parsing config: %w", ErrInvalid, err)
	}

	cfg.dir = absDir

	// Migrate old config versions forward before validating.
	oldVersion := cfg.Version
	if err := migrate(&cfg); err != nil {
		return nil, err
	}

	// Persist migrated config so future loads skip re-migration.
	if cfg.Version != oldVersion {
		if err := cfg.Save(); err != nil {
			return nil, fmt.Errorf("saving migrated config: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// LoadOrDefault loads the config from dir and never fails. A missing file is
// replaced by the default config, written to disk; an unreadable or invalid
// one is left alone and the default is used. The returned warning describes
// whichever fallback was taken.
func LoadOrDefault(dir string) (cfg *Config, warning error) {
	cfg, err := Load(dir)
	if err == nil {
		return cfg, nil
	}

	cfg = NewDefault()
	if abs, absErr := filepath.Abs(dir); absErr == nil {
		dir = abs
	}
	cfg.SetDir(dir)

	if errors.Is(err, ErrNotFound) {
		if saveErr := cfg.Save(); saveErr != nil {
			return cfg, fmt.Errorf("writing default config: %w", saveErr)
		}
		return cfg, fmt.Errorf("%w, wrote default to %s", err, cfg.ConfigPath())
	}
	return cfg, fmt.Errorf("using default config: %w", err)
}
