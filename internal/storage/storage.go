// Package storage persists the task list as a JSON document and mirrors it
// to an iCalendar file.
package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/twiced-technology-gmbh/taskninja/internal/board"
	"github.com/twiced-technology-gmbh/taskninja/internal/clierr"
	"github.com/twiced-technology-gmbh/taskninja/internal/filelock"
	"github.com/twiced-technology-gmbh/taskninja/internal/logging"
	"github.com/twiced-technology-gmbh/taskninja/internal/task"
)

const (
	// FileVersion is the version written to new task files.
	FileVersion = 1

	fileMode = 0o600
	dirMode  = 0o750
)

// Document is the on-disk layout of the task file.
type Document struct {
	Version int          `json:"version"`
	Tasks   []*task.Task `json:"tasks"`
}

// Store reads and writes one task file.
type Store struct {
	path     string
	calendar string
	logger   *log.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger used for fallback and mirror warnings.
func WithLogger(logger *log.Logger) Option {
	return func(s *Store) { s.logger = logger }
}

// WithCalendar enables the iCalendar mirror at path. Empty disables it.
func WithCalendar(path string) Option {
	return func(s *Store) { s.calendar = path }
}

// New returns a store for the task file at path.
func New(path string, opts ...Option) *Store {
	s := &Store{path: path, logger: logging.Discard()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Path returns the task file location.
func (s *Store) Path() string {
	return s.path
}

// Lock takes the advisory lock that serializes load/mutate/save cycles
// across processes. The lock file sits beside the task file.
func (s *Store) Lock() (unlock func() error, err error) {
	return filelock.Lock(s.path + ".lock")
}

// Load reads, validates and decodes the task file. A missing file returns
// an error wrapping os.ErrNotExist.
func (s *Store) Load() (*board.List, error) {
	data, err := os.ReadFile(s.path) //nolint:gosec // path from config
	if err != nil {
		return nil, fmt.Errorf("reading task file: %w", err)
	}
	if err := validateDocument(data); err != nil {
		return nil, err
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decoding task file: %w", err)
	}
	return board.FromTasks(doc.Tasks), nil
}

// LoadOrEmpty loads the task file and never fails: any problem yields an
// empty list. Problems other than a missing file are logged as warnings.
func (s *Store) LoadOrEmpty() *board.List {
	l, err := s.Load()
	if err == nil {
		return l
	}
	if errors.Is(err, os.ErrNotExist) {
		s.logger.Debug("no task file yet, starting empty", "path", s.path)
	} else {
		s.logger.Warn(clierr.NewReadFailed(err).Error(), "path", s.path)
	}
	return board.New()
}

// Save writes the whole list to the task file, replacing it atomically,
// and refreshes the calendar mirror. Mirror failures are logged, not
// returned.
func (s *Store) Save(l *board.List) error {
	doc := Document{Version: FileVersion, Tasks: l.Tasks()}
	if doc.Tasks == nil {
		doc.Tasks = []*task.Task{}
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return clierr.NewSaveFailed(fmt.Errorf("marshaling tasks: %w", err))
	}
	data = append(data, '\n')

	if err := writeAtomic(s.path, data); err != nil {
		return clierr.NewSaveFailed(err)
	}

	if s.calendar != "" {
		if err := WriteCalendar(s.calendar, doc.Tasks); err != nil {
			s.logger.Warn("updating calendar mirror failed", "path", s.calendar, "err", err)
		}
	}
	return nil
}

// writeAtomic writes data to a temp file in the target directory and renames
// it over path.
func writeAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, dirMode); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) //nolint:errcheck // gone after a successful rename

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("writing temp file: %w", err)
	}
	if err := tmp.Chmod(fileMode); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("setting file mode: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("replacing task file: %w", err)
	}
	return nil
}
