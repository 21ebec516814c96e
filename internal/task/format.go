package task

import (
	"strconv"
	"strings"

	"github.com/twiced-technology-gmbh/taskninja/internal/date"
)

const notSpecified = "Not specified."

// Presentation selects how a task is styled.
type Presentation int

const (
	// PresentIncomplete is an open, unflagged task.
	PresentIncomplete Presentation = iota
	// PresentFlagged is an open task marked important. It is styled with the
	// flag style applied underneath the incomplete style.
	PresentFlagged
	// PresentComplete is a finished task, flagged or not.
	PresentComplete
)

// String returns the presentation name.
func (p Presentation) String() string {
	switch p {
	case PresentComplete:
		return "complete"
	case PresentFlagged:
		return "flagged"
	default:
		return "incomplete"
	}
}

// Presentation returns the styling class: complete wins over flagged,
// flagged wins over plain incomplete.
func (t *Task) Presentation() Presentation {
	switch {
	case t.Complete:
		return PresentComplete
	case t.Flagged:
		return PresentFlagged
	default:
		return PresentIncomplete
	}
}

// FormatOptions controls how dates and times are written.
type FormatOptions struct {
	Time24Hour  bool
	NumericDate bool
}

// Format returns the multi-line text form of the task without styling.
func (t *Task) Format(opts FormatOptions) string {
	var b strings.Builder

	if t.Position > 0 {
		b.WriteString(strconv.Itoa(t.Position) + ": ")
	}
	b.WriteString(t.Title + "\n")

	desc := notSpecified
	if t.Description != nil {
		desc = *t.Description
	}
	b.WriteString("Description: " + desc + "\n")
	b.WriteString("Due Date: " + t.dueDateText(opts) + "\n")
	b.WriteString("Due Time: " + t.dueTimeText(opts) + "\n")
	b.WriteString("Complete: " + strconv.FormatBool(t.Complete))

	return b.String()
}

func (t *Task) dueDateText(opts FormatOptions) string {
	d, err := t.DueDate.Get()
	if err != nil || t.DueDate.IsZero() {
		return reason(err)
	}
	if opts.NumericDate {
		return d.Numeric()
	}
	return d.Calendar()
}

func (t *Task) dueTimeText(opts FormatOptions) string {
	tm, err := t.DueTime.Get()
	if err != nil || t.DueTime.IsZero() {
		return reason(err)
	}
	if opts.Time24Hour {
		return tm.Format24()
	}
	return tm.Format12()
}

// reason renders a missing due value.
func reason(err *date.Error) string {
	if err == nil || err.Unspecified() {
		return notSpecified
	}
	return "Invalid. " + err.Error()
}
