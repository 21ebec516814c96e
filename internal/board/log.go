package board

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"
)

const (
	logFileMode   = 0o600
	maxLogEntries = 10000 // oldest entries are dropped past this size
)

// LogEntry is one line of the activity log.
type LogEntry struct {
	Timestamp time.Time `json:"timestamp"`
	Action    string    `json:"action"`
	Position  int       `json:"position,omitempty"`
	Detail    string    `json:"detail"`
}

// ActivityLog appends mutation records to a JSON-lines file.
// A zero-value ActivityLog (empty path) records nothing.
type ActivityLog struct {
	path string
	now  func() time.Time
}

// NewActivityLog returns a log writing to path. An empty path disables it.
func NewActivityLog(path string) *ActivityLog {
	return &ActivityLog{path: path, now: time.Now}
}

// Path returns the log file location.
func (a *ActivityLog) Path() string {
	return a.path
}

// Append writes entry to the log, truncating old entries when needed.
func (a *ActivityLog) Append(entry LogEntry) error {
	if a == nil || a.path == "" {
		return nil
	}

	f, err := os.OpenFile(a.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, logFileMode) //nolint:gosec // path from config
	if err != nil {
		return fmt.Errorf("opening activity log: %w", err)
	}
	defer f.Close()

	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("marshaling log entry: %w", err)
	}
	if _, err := f.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("writing log entry: %w", err)
	}

	// Best-effort.
	_ = truncateLogIfNeeded(a.path, maxLogEntries)
	return nil
}

// Record appends an entry stamped with the current time.
func (a *ActivityLog) Record(action string, position int, detail string) error {
	if a == nil || a.path == "" {
		return nil
	}
	now := time.Now
	if a.now != nil {
		now = a.now
	}
	return a.Append(LogEntry{
		Timestamp: now(),
		Action:    action,
		Position:  position,
		Detail:    detail,
	})
}

// Entries reads every entry in the log, oldest first. A missing file
// yields no entries.
func (a *ActivityLog) Entries() ([]LogEntry, error) {
	if a == nil || a.path == "" {
		return nil, nil
	}
	f, err := os.Open(a.path) //nolint:gosec // path from config
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("opening activity log: %w", err)
	}
	defer f.Close()

	var entries []LogEntry
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		var e LogEntry
		if err := json.Unmarshal(scanner.Bytes(), &e); err != nil {
			continue
		}
		entries = append(entries, e)
	}
	return entries, scanner.Err()
}

// truncateLogIfNeeded rewrites the log keeping only the newest limit lines.
func truncateLogIfNeeded(path string, limit int) error {
	f, err := os.Open(path) //nolint:gosec // path from config
	if err != nil {
		return err
	}

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	_ = f.Close()

	if err := scanner.Err(); err != nil {
		return err
	}
	if len(lines) <= limit {
		return nil
	}

	lines = lines[len(lines)-limit:]

	var buf strings.Builder
	for _, line := range lines {
		buf.WriteString(line)
		buf.WriteByte('\n')
	}
	return os.WriteFile(path, []byte(buf.String()), logFileMode)
}
