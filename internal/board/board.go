// Package board provides the ordered task list and its operations.
package board

import (
	"fmt"
	"slices"
	"sort"
	"time"

	"github.com/twiced-technology-gmbh/taskninja/internal/clierr"
	"github.com/twiced-technology-gmbh/taskninja/internal/date"
	"github.com/twiced-technology-gmbh/taskninja/internal/task"
)

// List is an ordered collection of tasks. Task positions always form the
// dense sequence 1..N in slice order once a mutating method returns.
type List struct {
	tasks []*task.Task
	now   func() time.Time // clock for the due_today filter; defaults to time.Now
}

// New returns an empty list.
func New() *List {
	return &List{now: time.Now}
}

// FromTasks returns a list holding tasks in the given order, renumbered.
func FromTasks(tasks []*task.Task) *List {
	l := &List{tasks: slices.Clone(tasks), now: time.Now}
	for _, t := range l.tasks {
		t.Normalize()
	}
	l.renumber()
	return l
}

// SetNow overrides the clock used by the due_today filter (for testing).
func (l *List) SetNow(fn func() time.Time) {
	l.now = fn
}

// Tasks returns the tasks in order. The slice is a copy; the tasks are not.
func (l *List) Tasks() []*task.Task {
	return slices.Clone(l.tasks)
}

// Len returns the number of tasks.
func (l *List) Len() int {
	return len(l.tasks)
}

// Get returns the task at the 0-based index.
func (l *List) Get(index int) (*task.Task, error) {
	if index < 0 || index >= len(l.tasks) {
		return nil, clierr.NewTaskIndexNotFound(index)
	}
	return l.tasks[index], nil
}

// AddTask inserts t. With a position, t is placed at that 1-based rank
// (clamped to 1..N+1) and the list is re-sorted and renumbered; without
// one, t is appended.
func (l *List) AddTask(t *task.Task, position *int) {
	if position == nil {
		t.Position = len(l.tasks) + 1
		l.tasks = append(l.tasks, t)
		return
	}

	p := clampPosition(*position, len(l.tasks)+1)
	t.Position = p
	l.tasks = slices.Insert(l.tasks, p-1, t)
	sort.SliceStable(l.tasks, func(i, j int) bool {
		return l.tasks[i].Position < l.tasks[j].Position
	})
	l.renumber()
}

// NewTask builds a task from its fields and adds it.
func (l *List) NewTask(title string, description *string, due *date.Fallible[date.Date],
	at *date.Fallible[date.Time], position *int, complete, flagged bool,
) *task.Task {
	t := task.New(title, description, due, at, complete, flagged)
	l.AddTask(t, position)
	return t
}

// MarkComplete marks the task at the 0-based index complete.
func (l *List) MarkComplete(index int) (string, error) {
	t, err := l.Get(index)
	if err != nil {
		return "", err
	}
	t.MarkComplete()
	return fmt.Sprintf("'%s' marked complete.", t.Title), nil
}

// MarkIncomplete marks the task at the 0-based index incomplete.
func (l *List) MarkIncomplete(index int) (string, error) {
	t, err := l.Get(index)
	if err != nil {
		return "", err
	}
	t.MarkIncomplete()
	return fmt.Sprintf("'%s' marked incomplete.", t.Title), nil
}

// MarkAll sets the complete flag of every task.
func (l *List) MarkAll(complete bool) string {
	for _, t := range l.tasks {
		if complete {
			t.MarkComplete()
		} else {
			t.MarkIncomplete()
		}
	}
	if complete {
		return "All tasks marked complete."
	}
	return "All tasks marked incomplete."
}

// RemoveTask deletes the task at the 0-based index.
func (l *List) RemoveTask(index int) (string, error) {
	t, err := l.Get(index)
	if err != nil {
		return "", err
	}
	l.tasks = slices.Delete(l.tasks, index, index+1)
	l.renumber()
	return fmt.Sprintf("'%s' removed.", t.Title), nil
}

// RemoveAll deletes every task.
func (l *List) RemoveAll() string {
	l.tasks = nil
	return "All tasks removed."
}

// Patch represents a partial edit. A nil field means "no change"; a
// Description pointing at "" removes the description.
type Patch struct {
	Title       *string
	Description *string
	DueDate     *date.Fallible[date.Date]
	DueTime     *date.Fallible[date.Time]
	Flagged     *bool
	Position    *int
}

// IsEmpty reports whether the patch changes nothing.
func (p Patch) IsEmpty() bool {
	return p.Title == nil && p.Description == nil && p.DueDate == nil &&
		p.DueTime == nil && p.Flagged == nil && p.Position == nil
}

// EditTask applies p to the task at the 0-based index and renumbers.
func (l *List) EditTask(index int, p Patch) (string, error) {
	t, err := l.Get(index)
	if err != nil {
		return "", err
	}

	if p.Title != nil {
		t.EditTitle(*p.Title)
	}
	if p.Description != nil {
		if *p.Description == "" {
			t.EditDescription(nil)
		} else {
			d := *p.Description
			t.EditDescription(&d)
		}
	}
	if p.DueDate != nil {
		t.EditDueDate(*p.DueDate)
	}
	if p.DueTime != nil {
		t.EditDueTime(*p.DueTime)
	}
	if p.Flagged != nil {
		t.SetFlagged(*p.Flagged)
	}
	if p.Position != nil {
		l.tasks = slices.Delete(l.tasks, index, index+1)
		at := clampPosition(*p.Position, len(l.tasks)+1)
		l.tasks = slices.Insert(l.tasks, at-1, t)
	}

	l.renumber()
	return fmt.Sprintf("'%s' edited.", t.Title), nil
}

// Renderer turns one task into display text.
type Renderer interface {
	RenderTask(t *task.Task) string
}

// Render concatenates every task's rendered form, one per block.
func (l *List) Render(r Renderer) string {
	return RenderTasks(l.tasks, r)
}

// RenderTasks renders tasks in order, each followed by a newline.
func RenderTasks(tasks []*task.Task, r Renderer) string {
	var out string
	for _, t := range tasks {
		out += r.RenderTask(t) + "\n"
	}
	return out
}

// renumber assigns positions 1..N in slice order.
func (l *List) renumber() {
	for i, t := range l.tasks {
		t.Position = i + 1
	}
}

func clampPosition(p, maxPos int) int {
	return min(max(p, 1), maxPos)
}
