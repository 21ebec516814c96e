package board

import (
	"strings"
	"time"

	"github.com/twiced-technology-gmbh/taskninja/internal/task"
)

// FilterName identifies one step of the list filter pipeline.
type FilterName string

// Filter names.
const (
	FilterComplete   FilterName = "complete"
	FilterIncomplete FilterName = "incomplete"
	FilterFlagged    FilterName = "flagged"
	FilterUnflagged  FilterName = "unflagged"
	FilterDueToday   FilterName = "due_today"
)

// filterTokens maps every accepted command-line token to its filter.
var filterTokens = map[string]FilterName{
	"complete": FilterComplete, "-c": FilterComplete, "--complete": FilterComplete,
	"incomplete": FilterIncomplete, "-i": FilterIncomplete, "--incomplete": FilterIncomplete,
	"flagged": FilterFlagged, "-f": FilterFlagged, "--flagged": FilterFlagged,
	"unflagged": FilterUnflagged, "-u": FilterUnflagged, "--unflagged": FilterUnflagged,
	"due_today": FilterDueToday, "today": FilterDueToday, "-t": FilterDueToday, "--today": FilterDueToday,
}

// ParseFilter resolves a command-line token to a filter name.
func ParseFilter(token string) (FilterName, bool) {
	f, ok := filterTokens[token]
	return f, ok
}

// predicate reports whether t passes the filter at time now.
func (f FilterName) predicate(now time.Time) func(*task.Task) bool {
	switch f {
	case FilterComplete:
		return func(t *task.Task) bool { return t.Complete }
	case FilterIncomplete:
		return func(t *task.Task) bool { return !t.Complete }
	case FilterFlagged:
		return func(t *task.Task) bool { return t.Flagged }
	case FilterUnflagged:
		return func(t *task.Task) bool { return !t.Flagged }
	case FilterDueToday:
		return func(t *task.Task) bool {
			d, ok := t.DueDate.Value()
			return ok && d.IsOn(now)
		}
	default:
		return func(*task.Task) bool { return true }
	}
}

// Filter applies filters in order, each narrowing the result of the one
// before it, so the result is the intersection of all filters.
func (l *List) Filter(filters ...FilterName) []*task.Task {
	now := l.now()
	result := l.Tasks()
	for _, f := range filters {
		keep := f.predicate(now)
		narrowed := result[:0:0]
		for _, t := range result {
			if keep(t) {
				narrowed = append(narrowed, t)
			}
		}
		result = narrowed
	}
	return result
}

// Search returns tasks whose title or description contains query, in list
// order. Unless exact, matching ignores case.
func (l *List) Search(query string, exact bool) []*task.Task {
	if !exact {
		query = strings.ToLower(query)
	}

	var result []*task.Task
	for _, t := range l.tasks {
		title, desc := t.Title, t.DescriptionText()
		if !exact {
			title, desc = strings.ToLower(title), strings.ToLower(desc)
		}
		if strings.Contains(title, query) || (t.Description != nil && strings.Contains(desc, query)) {
			result = append(result, t)
		}
	}
	return result
}
