package task

import (
	"errors"
	"strings"
)

// ErrEmptyTitle is returned by Validate for a task without a title.
var ErrEmptyTitle = errors.New("task title is required")

// Validate checks the fields a task cannot exist without.
func (t *Task) Validate() error {
	if strings.TrimSpace(t.Title) == "" {
		return ErrEmptyTitle
	}
	return nil
}
