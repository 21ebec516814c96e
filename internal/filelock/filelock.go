// Package filelock provides advisory file locking so that concurrent
// invocations do not interleave reads and writes of the task file.
package filelock

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	lockFileMode = 0o600
	lockDirMode  = 0o750
)

// Lock acquires an exclusive advisory lock on the file at path, creating
// the file and its parent directory when missing. Other callers block until
// the returned unlock function runs.
func Lock(path string) (unlock func() error, err error) {
	if err := os.MkdirAll(filepath.Dir(path), lockDirMode); err != nil {
		return nil, fmt.Errorf("creating lock directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_RDWR, lockFileMode) //nolint:gosec // lock path derived from config
	if err != nil {
		return nil, fmt.Errorf("opening lock file: %w", err)
	}

	if err := lockFile(f); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("locking %s: %w", path, err)
	}

	return func() error {
		unlockErr := unlockFile(f)
		closeErr := f.Close()
		if unlockErr != nil {
			return unlockErr
		}
		return closeErr
	}, nil
}
