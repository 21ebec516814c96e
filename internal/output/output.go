// Package output handles printing responses as styled text or JSON.
package output

import (
	"os"
)

// Format represents an output format.
type Format int

const (
	// FormatText prints multi-line task blocks and styled messages.
	FormatText Format = iota
	// FormatJSON outputs JSON envelopes.
	FormatJSON
	// FormatCompact prints one line per task.
	FormatCompact
)

// Detect returns the format selected by flags, then by TASKNINJA_OUTPUT.
// Default is text.
func Detect(jsonFlag, compactFlag bool) Format {
	if jsonFlag {
		return FormatJSON
	}
	if compactFlag {
		return FormatCompact
	}

	switch os.Getenv("TASKNINJA_OUTPUT") {
	case "json":
		return FormatJSON
	case "compact", "oneline":
		return FormatCompact
	}
	return FormatText
}
