package storage

import (
	"fmt"
	"time"

	ical "github.com/arran4/golang-ical"
	"github.com/google/uuid"

	"github.com/twiced-technology-gmbh/taskninja/internal/task"
)

const (
	productID      = "-//taskninja//Task List//EN"
	icalDateLayout = "20060102"
	icalTimeLayout = "20060102T150405"
)

// uidNamespace scopes the name-based UIDs of mirrored tasks.
var uidNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://github.com/twiced-technology-gmbh/taskninja"))

// TaskUID returns a stable UID for a task derived from its position and
// title, so re-exporting an unchanged list yields the same UIDs.
func TaskUID(t *task.Task) string {
	name := fmt.Sprintf("%d\x00%s", t.Position, t.Title)
	return uuid.NewSHA1(uidNamespace, []byte(name)).String() + "@taskninja"
}

// BuildCalendar returns a VCALENDAR with one VTODO per task.
func BuildCalendar(tasks []*task.Task, stamp time.Time) *ical.Calendar {
	cal := ical.NewCalendar()
	cal.SetProductId(productID)
	cal.SetMethod(ical.MethodPublish)

	for _, t := range tasks {
		todo := cal.AddTodo(TaskUID(t))
		todo.SetDtStampTime(stamp)
		todo.SetSummary(t.Title)
		if t.Description != nil {
			todo.SetDescription(*t.Description)
		}
		if t.Complete {
			todo.SetStatus(ical.ObjectStatusCompleted)
		} else {
			todo.SetStatus(ical.ObjectStatusNeedsAction)
		}
		if t.Flagged {
			todo.SetProperty(ical.ComponentPropertyPriority, "1")
		}
		setDue(todo, t)
	}
	return cal
}

// setDue writes DUE as a DATE, or as a floating DATE-TIME when the task also
// has a valid time. Tasks without a valid date get no DUE.
func setDue(todo *ical.VTodo, t *task.Task) {
	d, ok := t.DueDate.Value()
	if !ok {
		return
	}
	// Floating values carry no zone; UTC only keeps formatting DST-free.
	day := d.Time(time.UTC)

	if tm, ok := t.DueTime.Value(); ok {
		at := time.Date(day.Year(), day.Month(), day.Day(), tm.Hour(), tm.Minute(), 0, 0, time.UTC)
		todo.SetProperty(ical.ComponentPropertyDue, at.Format(icalTimeLayout))
		return
	}
	todo.SetProperty(ical.ComponentPropertyDue, day.Format(icalDateLayout),
		ical.WithValue(string(ical.ValueDataTypeDate)))
}

// WriteCalendar serializes tasks as iCalendar to path, atomically.
func WriteCalendar(path string, tasks []*task.Task) error {
	cal := BuildCalendar(tasks, time.Now().UTC())
	if err := writeAtomic(path, []byte(cal.Serialize())); err != nil {
		return fmt.Errorf("writing calendar: %w", err)
	}
	return nil
}
