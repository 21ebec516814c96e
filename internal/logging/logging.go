// Package logging builds the process logger on charmbracelet/log.
package logging

import (
	"io"

	"github.com/charmbracelet/log"
)

// Prefix is printed before every log line.
const Prefix = "taskninja"

// Options holds configuration for the process logger.
type Options struct {
	Level           log.Level
	ReportTimestamp bool
	Prefix          string
}

// DefaultOptions returns the options used when nothing is configured.
func DefaultOptions() Options {
	return Options{
		Level:  log.WarnLevel,
		Prefix: Prefix,
	}
}

// New creates a text logger writing to w with the given level name.
// An unknown or empty level falls back to warn.
func New(w io.Writer, level string) *log.Logger {
	opts := DefaultOptions()
	opts.Level = ParseLevel(level)
	return NewWithOptions(w, opts)
}

// NewWithOptions creates a text logger writing to w.
func NewWithOptions(w io.Writer, opts Options) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Level:           opts.Level,
		Formatter:       log.TextFormatter,
		ReportTimestamp: opts.ReportTimestamp,
		Prefix:          opts.Prefix,
	})
}

// ParseLevel converts a level name to a log.Level, defaulting to warn.
func ParseLevel(level string) log.Level {
	if level == "" {
		return log.WarnLevel
	}
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return log.WarnLevel
	}
	return lvl
}

// Discard returns a logger that drops everything. Tests and library callers
// without a configured logger use it.
func Discard() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.FatalLevel})
}
