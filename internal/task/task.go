// Package task defines a single to-do item and its text form.
package task

import (
	"github.com/twiced-technology-gmbh/taskninja/internal/date"
)

// Task represents one to-do item. Position is assigned by the list that
// holds the task and changes whenever that list changes.
type Task struct {
	Position    int                      `json:"position"`
	Title       string                   `json:"title"`
	Description *string                  `json:"description,omitempty"`
	DueDate     date.Fallible[date.Date] `json:"due_date"`
	DueTime     date.Fallible[date.Time] `json:"due_time"`
	Complete    bool                     `json:"complete"`
	Flagged     bool                     `json:"flagged"`
}

// New creates a task. A nil due date or due time is recorded as unspecified,
// and an empty description is recorded as none.
func New(title string, description *string, due *date.Fallible[date.Date], at *date.Fallible[date.Time], complete, flagged bool) *Task {
	t := &Task{
		Title:       title,
		Description: description,
		DueDate:     date.NoDate(),
		DueTime:     date.NoTime(),
		Complete:    complete,
		Flagged:     flagged,
	}
	if description != nil && *description == "" {
		t.Description = nil
	}
	if due != nil {
		t.DueDate = *due
	}
	if at != nil {
		t.DueTime = *at
	}
	return t
}

// Normalize replaces due fields that carry neither a value nor an error
// with their unspecified kinds. Tasks decoded from older files need this.
func (t *Task) Normalize() {
	t.DueDate = t.DueDate.OrElse(date.NoDate())
	t.DueTime = t.DueTime.OrElse(date.NoTime())
	if t.Description != nil && *t.Description == "" {
		t.Description = nil
	}
}

// MarkComplete sets the complete flag.
func (t *Task) MarkComplete() { t.Complete = true }

// MarkIncomplete clears the complete flag.
func (t *Task) MarkIncomplete() { t.Complete = false }

// EditTitle replaces the title.
func (t *Task) EditTitle(title string) { t.Title = title }

// EditDescription replaces the description; nil removes it.
func (t *Task) EditDescription(description *string) { t.Description = description }

// EditDueDate replaces the due date.
func (t *Task) EditDueDate(due date.Fallible[date.Date]) { t.DueDate = due }

// EditDueTime replaces the due time.
func (t *Task) EditDueTime(at date.Fallible[date.Time]) { t.DueTime = at }

// SetFlagged sets or clears the important flag.
func (t *Task) SetFlagged(flagged bool) { t.Flagged = flagged }

// DescriptionText returns the description or "" when there is none.
func (t *Task) DescriptionText() string {
	if t.Description == nil {
		return ""
	}
	return *t.Description
}

// Clone returns a copy of the task that shares no pointers with t.
func (t *Task) Clone() *Task {
	c := *t
	if t.Description != nil {
		d := *t.Description
		c.Description = &d
	}
	return &c
}
