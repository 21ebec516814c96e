package board

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/twiced-technology-gmbh/taskninja/internal/clierr"
	"github.com/twiced-technology-gmbh/taskninja/internal/date"
	"github.com/twiced-technology-gmbh/taskninja/internal/task"
)

func intPtr(i int) *int       { return &i }
func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }

func titleRenderer() Renderer {
	return rendererFunc(func(t *task.Task) string { return t.Title })
}

func fixedNow(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

type rendererFunc func(*task.Task) string

func (f rendererFunc) RenderTask(t *task.Task) string { return f(t) }

func newList(titles ...string) *List {
	l := New()
	for _, title := range titles {
		l.NewTask(title, nil, nil, nil, nil, false, false)
	}
	return l
}

func titles(tasks []*task.Task) []string {
	out := make([]string, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, t.Title)
	}
	return out
}

func assertDense(t *testing.T, l *List) {
	t.Helper()
	for i, tk := range l.Tasks() {
		assert.Equal(t, i+1, tk.Position, "task %q", tk.Title)
	}
}

func TestAddTask_Appends(t *testing.T) {
	l := newList("a", "b", "c")

	assert.Equal(t, []string{"a", "b", "c"}, titles(l.Tasks()))
	assertDense(t, l)
}

func TestAddTask_AtPosition(t *testing.T) {
	tests := []struct {
		name     string
		position int
		want     []string
	}{
		{"front", 1, []string{"x", "a", "b", "c"}},
		{"middle", 2, []string{"a", "x", "b", "c"}},
		{"end", 4, []string{"a", "b", "c", "x"}},
		{"past end clamps", 99, []string{"a", "b", "c", "x"}},
		{"zero clamps to front", 0, []string{"x", "a", "b", "c"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := newList("a", "b", "c")
			tk := l.NewTask("x", nil, nil, nil, intPtr(tt.position), false, false)

			assert.Equal(t, tt.want, titles(l.Tasks()))
			assertDense(t, l)
			assert.Equal(t, indexOf(tt.want, "x")+1, tk.Position)
		})
	}
}

func indexOf(s []string, v string) int {
	for i, x := range s {
		if x == v {
			return i
		}
	}
	return -1
}

func TestMarkComplete(t *testing.T) {
	l := newList("a", "b")

	msg, err := l.MarkComplete(1)
	require.NoError(t, err)
	assert.Equal(t, "'b' marked complete.", msg)
	assert.True(t, l.Tasks()[1].Complete)

	msg, err = l.MarkIncomplete(1)
	require.NoError(t, err)
	assert.Equal(t, "'b' marked incomplete.", msg)
	assert.False(t, l.Tasks()[1].Complete)
}

func TestIndexOutOfRange(t *testing.T) {
	l := newList("a")

	for _, idx := range []int{-1, 1, 5} {
		_, err := l.MarkComplete(idx)
		require.Error(t, err)
		assert.Equal(t, clierr.TaskNotFound, clierr.CodeOf(err))

		_, err = l.RemoveTask(idx)
		assert.Equal(t, clierr.TaskNotFound, clierr.CodeOf(err))

		_, err = l.EditTask(idx, Patch{Title: strPtr("z")})
		assert.Equal(t, clierr.TaskNotFound, clierr.CodeOf(err))
	}
	assert.Equal(t, 1, l.Len())
}

func TestMarkAll(t *testing.T) {
	l := newList("a", "b", "c")

	assert.Equal(t, "All tasks marked complete.", l.MarkAll(true))
	assert.Len(t, l.Filter(FilterComplete), 3)

	assert.Equal(t, "All tasks marked incomplete.", l.MarkAll(false))
	assert.Empty(t, l.Filter(FilterComplete))
}

func TestRemoveTask_Renumbers(t *testing.T) {
	l := newList("a", "b", "c")

	msg, err := l.RemoveTask(0)
	require.NoError(t, err)
	assert.Equal(t, "'a' removed.", msg)
	assert.Equal(t, []string{"b", "c"}, titles(l.Tasks()))
	assertDense(t, l)
}

func TestRemoveAll(t *testing.T) {
	l := newList("a", "b")

	assert.Equal(t, "All tasks removed.", l.RemoveAll())
	assert.Equal(t, 0, l.Len())
}

func TestEditTask_Fields(t *testing.T) {
	l := newList("a")
	due := date.ParseDue("2022-09-12")
	at := date.ParseDueTime("9:05")

	msg, err := l.EditTask(0, Patch{
		Title:       strPtr("renamed"),
		Description: strPtr("more"),
		DueDate:     &due,
		DueTime:     &at,
		Flagged:     boolPtr(true),
	})
	require.NoError(t, err)
	assert.Equal(t, "'renamed' edited.", msg)

	tk := l.Tasks()[0]
	assert.Equal(t, "renamed", tk.Title)
	assert.Equal(t, "more", tk.DescriptionText())
	assert.True(t, tk.DueDate.OK())
	assert.True(t, tk.DueTime.OK())
	assert.True(t, tk.Flagged)

	_, err = l.EditTask(0, Patch{Description: strPtr(""), Flagged: boolPtr(false)})
	require.NoError(t, err)
	assert.Nil(t, tk.Description)
	assert.False(t, tk.Flagged)
}

func TestEditTask_Position(t *testing.T) {
	l := newList("a", "b", "c", "d")

	_, err := l.EditTask(3, Patch{Position: intPtr(1)})
	require.NoError(t, err)
	assert.Equal(t, []string{"d", "a", "b", "c"}, titles(l.Tasks()))
	assertDense(t, l)

	_, err = l.EditTask(0, Patch{Position: intPtr(10)})
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c", "d"}, titles(l.Tasks()))
	assertDense(t, l)
}

func TestMixedSequence_KeepsPositionsDense(t *testing.T) {
	steps := []struct {
		name string
		do   func(l *List) error
		want []string
	}{
		{"append", func(l *List) error { l.NewTask("d", nil, nil, nil, nil, false, false); return nil }, []string{"a", "b", "c", "d"}},
		{"insert front", func(l *List) error { l.NewTask("e", nil, nil, nil, intPtr(1), false, false); return nil }, []string{"e", "a", "b", "c", "d"}},
		{"remove middle", func(l *List) error { _, err := l.RemoveTask(2); return err }, []string{"e", "a", "c", "d"}},
		{"move last to second", func(l *List) error { _, err := l.EditTask(3, Patch{Position: intPtr(2)}); return err }, []string{"e", "d", "a", "c"}},
		{"insert past end", func(l *List) error { l.NewTask("f", nil, nil, nil, intPtr(50), false, false); return nil }, []string{"e", "d", "a", "c", "f"}},
		{"remove first", func(l *List) error { _, err := l.RemoveTask(0); return err }, []string{"d", "a", "c", "f"}},
		{"retitle", func(l *List) error { _, err := l.EditTask(1, Patch{Title: strPtr("A")}); return err }, []string{"d", "A", "c", "f"}},
		{"move first to end", func(l *List) error { _, err := l.EditTask(0, Patch{Position: intPtr(9)}); return err }, []string{"A", "c", "f", "d"}},
		{"insert middle", func(l *List) error { l.NewTask("g", nil, nil, nil, intPtr(3), false, false); return nil }, []string{"A", "c", "g", "f", "d"}},
		{"remove last", func(l *List) error { _, err := l.RemoveTask(4); return err }, []string{"A", "c", "g", "f"}},
	}

	l := newList("a", "b", "c")
	for _, step := range steps {
		require.NoError(t, step.do(l), step.name)
		assert.Equal(t, step.want, titles(l.Tasks()), step.name)
		assertDense(t, l)
	}
}

func TestPatchIsEmpty(t *testing.T) {
	assert.True(t, Patch{}.IsEmpty())
	assert.False(t, Patch{Flagged: boolPtr(false)}.IsEmpty())
}

func TestFromTasks_RenumbersAndNormalizes(t *testing.T) {
	raw := []*task.Task{{Position: 7, Title: "a"}, {Position: 2, Title: "b"}}
	l := FromTasks(raw)

	assertDense(t, l)
	assert.True(t, l.Tasks()[0].DueDate.Unspecified())
}

func TestFilter(t *testing.T) {
	today := time.Date(2022, time.September, 12, 10, 0, 0, 0, time.Local)
	dueToday := date.ParseDue("2022-09-12")
	dueLater := date.ParseDue("2022-09-13")
	broken := date.ParseDue("2022-02-30")

	l := New()
	l.SetNow(fixedNow(today))
	l.NewTask("done-flagged", nil, &dueToday, nil, nil, true, true)
	l.NewTask("open-flagged", nil, &dueLater, nil, nil, false, true)
	l.NewTask("open", nil, &dueToday, nil, nil, false, false)
	l.NewTask("done", nil, &broken, nil, nil, true, false)

	tests := []struct {
		name    string
		filters []FilterName
		want    []string
	}{
		{"none", nil, []string{"done-flagged", "open-flagged", "open", "done"}},
		{"complete", []FilterName{FilterComplete}, []string{"done-flagged", "done"}},
		{"incomplete", []FilterName{FilterIncomplete}, []string{"open-flagged", "open"}},
		{"flagged", []FilterName{FilterFlagged}, []string{"done-flagged", "open-flagged"}},
		{"unflagged", []FilterName{FilterUnflagged}, []string{"open", "done"}},
		{"due today skips invalid dates", []FilterName{FilterDueToday}, []string{"done-flagged", "open"}},
		{"complete and flagged intersect", []FilterName{FilterComplete, FilterFlagged}, []string{"done-flagged"}},
		{"contradiction is empty", []FilterName{FilterComplete, FilterIncomplete}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, titles(l.Filter(tt.filters...)))
		})
	}
}

func TestParseFilter(t *testing.T) {
	for token, want := range map[string]FilterName{
		"complete": FilterComplete, "-c": FilterComplete,
		"--incomplete": FilterIncomplete, "-f": FilterFlagged,
		"unflagged": FilterUnflagged, "today": FilterDueToday, "due_today": FilterDueToday, "-t": FilterDueToday,
	} {
		got, ok := ParseFilter(token)
		assert.True(t, ok, token)
		assert.Equal(t, want, got, token)
	}

	_, ok := ParseFilter("--bogus")
	assert.False(t, ok)
}

func TestSearch(t *testing.T) {
	l := New()
	l.NewTask("Buy Milk", nil, nil, nil, nil, false, false)
	l.NewTask("call mom", strPtr("about the milk run"), nil, nil, nil, false, false)
	l.NewTask("write report", nil, nil, nil, nil, false, false)

	assert.Equal(t, []string{"Buy Milk", "call mom"}, titles(l.Search("milk", false)))
	assert.Equal(t, []string{"call mom"}, titles(l.Search("milk", true)))
	assert.Equal(t, []string{"Buy Milk"}, titles(l.Search("Milk", true)))
	assert.Empty(t, l.Search("nothing", false))
}

func TestRender(t *testing.T) {
	l := newList("a", "b")

	assert.Equal(t, "a\nb\n", l.Render(titleRenderer()))
	assert.Equal(t, "", RenderTasks(nil, titleRenderer()))
}

func TestSummarize(t *testing.T) {
	today := time.Date(2022, time.September, 12, 10, 0, 0, 0, time.Local)
	due := date.ParseDue("2022-09-12")

	l := New()
	l.SetNow(fixedNow(today))
	l.NewTask("a", nil, &due, nil, nil, true, true)
	l.NewTask("b", nil, nil, nil, nil, false, true)
	l.NewTask("c", nil, nil, nil, nil, false, false)

	assert.Equal(t, Summary{Total: 3, Complete: 1, Incomplete: 2, Flagged: 2, DueToday: 1}, l.Summarize())
}

func TestActivityLog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "activity.jsonl")
	log := NewActivityLog(path)
	log.now = fixedNow(time.Date(2022, 9, 12, 0, 0, 0, 0, time.UTC))

	require.NoError(t, log.Record("add", 1, "pick up eggs"))
	require.NoError(t, log.Record("delete", 1, "pick up eggs"))

	entries, err := log.Entries()
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "add", entries[0].Action)
	assert.Equal(t, 1, entries[1].Position)
	assert.Equal(t, "pick up eggs", entries[1].Detail)
}

func TestActivityLog_Disabled(t *testing.T) {
	var nilLog *ActivityLog
	require.NoError(t, nilLog.Record("add", 1, "x"))
	require.NoError(t, NewActivityLog("").Record("add", 1, "x"))

	entries, err := NewActivityLog(filepath.Join(t.TempDir(), "missing.jsonl")).Entries()
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestTruncateLog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "activity.jsonl")
	require.NoError(t, os.WriteFile(path, []byte(strings.Repeat("{}\n", 5)), 0o600))

	require.NoError(t, truncateLogIfNeeded(path, 3))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 3, strings.Count(string(data), "\n"))
}
