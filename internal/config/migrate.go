package config

import (
	"fmt"
	"strconv"
	"strings"
)

// migrate upgrades a config from its current version to CurrentVersion.
// Each migration function transforms the config one version forward.
// A file without a version field is treated as version 1.
func migrate(cfg *Config) error {
	if cfg.Version == 0 {
		cfg.Version = 1
	}
	if cfg.Version == CurrentVersion {
		return nil
	}
	if cfg.Version > CurrentVersion {
		return fmt.Errorf(
			"%w: config version %d is newer than supported version %d (upgrade taskninja)",
			ErrInvalid, cfg.Version, CurrentVersion,
		)
	}
	if cfg.Version < 1 {
		return fmt.Errorf("%w: config version %d is invalid", ErrInvalid, cfg.Version)
	}

	for cfg.Version < CurrentVersion {
		fn, ok := migrations[cfg.Version]
		if !ok {
			return fmt.Errorf("%w: no migration path from version %d", ErrInvalid, cfg.Version)
		}
		if err := fn(cfg); err != nil {
			return fmt.Errorf("migrating config from v%d: %w", cfg.Version, err)
		}
	}

	return nil
}

// migrations maps each version to the function that migrates it to the next version.
// The migration function must increment cfg.Version after a successful migration.
var migrations = map[int]func(*Config) error{
	1: migrateV1ToV2,
}

// migrateV1ToV2 replaces the flat *_color escape sequences with the colors
// section and fills in log_level.
func migrateV1ToV2(cfg *Config) error { //nolint:unparam // signature must match migrations map type
	legacy := cfg.Legacy
	cfg.Colors = DefaultColors
	pairs := []struct {
		from string
		to   *string
	}{
		{legacy.ErrorColor, &cfg.Colors.Error},
		{legacy.FlagColor, &cfg.Colors.Flag},
		{legacy.SuccessColor, &cfg.Colors.Success},
		{legacy.DefaultColor, &cfg.Colors.Default},
		{legacy.CompleteColor, &cfg.Colors.Complete},
		{legacy.IncompleteColor, &cfg.Colors.Incomplete},
	}
	for _, p := range pairs {
		if p.from != "" {
			*p.to = colorFromEscape(p.from)
		}
	}
	cfg.Legacy = LegacyColors{}

	if cfg.DataFile == "" {
		cfg.DataFile = DefaultDataFile
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = DefaultLogLevel
	}
	cfg.Version = 2
	return nil
}

// colorFromEscape converts an SGR escape such as "\x1b[31m" to the ANSI
// color number lipgloss expects ("1"). Attribute-only sequences (reset,
// underline) map to "". Anything that is not an escape is kept as is.
func colorFromEscape(seq string) string {
	if !strings.HasPrefix(seq, "\x1b[") || !strings.HasSuffix(seq, "m") {
		return seq
	}
	code, err := strconv.Atoi(strings.TrimSuffix(strings.TrimPrefix(seq, "\x1b["), "m"))
	if err != nil {
		return ""
	}
	switch {
	case code >= 30 && code <= 37:
		return strconv.Itoa(code - 30)
	case code >= 90 && code <= 97:
		return strconv.Itoa(code - 90 + 8)
	default:
		return ""
	}
}
