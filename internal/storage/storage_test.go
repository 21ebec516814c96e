package storage

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/twiced-technology-gmbh/taskninja/internal/board"
	"github.com/twiced-technology-gmbh/taskninja/internal/date"
	"github.com/twiced-technology-gmbh/taskninja/internal/logging"
	"github.com/twiced-technology-gmbh/taskninja/internal/task"
)

func strPtr(s string) *string { return &s }

func sampleList() *board.List {
	l := board.New()
	due := date.ParseDue("2022-September-12")
	at := date.ParseDueTime("12:06")
	bad := date.ParseDue("2022-02-30")
	l.NewTask("Get into Cornell.", nil, &due, &at, nil, false, true)
	l.NewTask("pick up eggs", strPtr("a dozen"), &bad, nil, nil, true, false)
	l.NewTask("call mom", nil, &due, nil, nil, false, false)
	return l
}

func formatted(l *board.List) []string {
	var out []string
	for _, t := range l.Tasks() {
		out = append(out, t.Format(task.FormatOptions{}))
	}
	return out
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "tasks.json")
	store := New(path)
	want := sampleList()

	require.NoError(t, store.Save(want))

	loaded, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, formatted(want), formatted(loaded))
	assert.Equal(t, date.KindInvalidDay, loaded.Tasks()[1].DueDate.Err().Kind)
	assert.Equal(t, "2022-02-30", loaded.Tasks()[1].DueDate.Err().Input)
}

func TestSave_Layout(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasks.json")
	require.NoError(t, New(path).Save(sampleList()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	text := string(data)
	assert.True(t, strings.HasPrefix(text, "{\n  \"version\": 1,\n  \"tasks\": ["))
	assert.True(t, strings.HasSuffix(text, "}\n"))
	assert.Contains(t, text, `"value": "2022-09-12"`)
	assert.Contains(t, text, `"error": "invalid_day"`)

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp file must not be left behind")
}

func TestSave_EmptyListWritesEmptyArray(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasks.json")
	require.NoError(t, New(path).Save(board.New()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"tasks": []`)
}

func TestLoad_Missing(t *testing.T) {
	store := New(filepath.Join(t.TempDir(), "tasks.json"))

	_, err := store.Load()
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Equal(t, 0, store.LoadOrEmpty().Len())
}

func TestLoadOrEmpty_Fallbacks(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"corrupt json", `{"version": 1, "tasks": [`},
		{"wrong version", `{"version": 2, "tasks": []}`},
		{"missing tasks", `{"version": 1}`},
		{"empty title", `{"version": 1, "tasks": [{"title": ""}]}`},
		{"unknown field", `{"version": 1, "tasks": [{"title": "x", "priority": 3}]}`},
		{"bad error kind", `{"version": 1, "tasks": [{"title": "x", "due_date": {"error": "late"}}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "tasks.json")
			require.NoError(t, os.WriteFile(path, []byte(tt.body), 0o600))

			var logs bytes.Buffer
			store := New(path, WithLogger(logging.New(&logs, "warn")))

			_, err := store.Load()
			require.Error(t, err)

			l := store.LoadOrEmpty()
			assert.Equal(t, 0, l.Len())
			assert.Contains(t, logs.String(), "Error reading tasks")
		})
	}
}

func TestLoad_SchemaErrorListsProblems(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasks.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"version": 1, "tasks": [{"title": ""}]}`), 0o600))

	_, err := New(path).Load()
	var se *SchemaError
	require.ErrorAs(t, err, &se)
	assert.NotEmpty(t, se.Problems)
	assert.Contains(t, strings.Join(se.Problems, "\n"), "/tasks/0/title")
}

func TestLoad_RenumbersAndNormalizes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasks.json")
	body := `{"version": 1, "tasks": [{"position": 9, "title": "a"}, {"position": 3, "title": "b", "due_date": {}}]}`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	l, err := New(path).Load()
	require.NoError(t, err)
	tasks := l.Tasks()
	assert.Equal(t, 1, tasks[0].Position)
	assert.Equal(t, 2, tasks[1].Position)
	assert.True(t, tasks[1].DueDate.Unspecified())
}

func TestLock(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "tasks.json")
	unlock, err := New(path).Lock()
	require.NoError(t, err)
	assert.FileExists(t, path+".lock")
	require.NoError(t, unlock())
}

func TestSave_WritesCalendarMirror(t *testing.T) {
	dir := t.TempDir()
	icsPath := filepath.Join(dir, "tasks.ics")
	store := New(filepath.Join(dir, "tasks.json"), WithCalendar(icsPath))

	require.NoError(t, store.Save(sampleList()))

	data, err := os.ReadFile(icsPath)
	require.NoError(t, err)
	text := string(data)
	assert.Equal(t, 3, strings.Count(text, "BEGIN:VTODO"))
	assert.Equal(t, 1, strings.Count(text, "STATUS:COMPLETED"))
	assert.Equal(t, 2, strings.Count(text, "STATUS:NEEDS-ACTION"))
}

func TestSave_CalendarFailureIsNotFatal(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(blocker, nil, 0o600))

	var logs bytes.Buffer
	store := New(filepath.Join(dir, "tasks.json"),
		WithCalendar(filepath.Join(blocker, "tasks.ics")),
		WithLogger(logging.New(&logs, "warn")))

	require.NoError(t, store.Save(sampleList()))
	assert.Contains(t, logs.String(), "calendar mirror")
}

func TestBuildCalendar(t *testing.T) {
	stamp := time.Date(2022, 9, 1, 8, 0, 0, 0, time.UTC)
	text := BuildCalendar(sampleList().Tasks(), stamp).Serialize()

	assert.Contains(t, text, "PRODID:"+productID)
	assert.Contains(t, text, "SUMMARY:Get into Cornell.")
	assert.Contains(t, text, "DUE:20220912T120600")
	assert.Contains(t, text, "DUE;VALUE=DATE:20220912")
	assert.Contains(t, text, "DESCRIPTION:a dozen")
	assert.Contains(t, text, "PRIORITY:1")
	assert.Equal(t, 2, strings.Count(text, "DUE"), "invalid due date is not exported")
}

func TestTaskUID(t *testing.T) {
	a := task.New("x", nil, nil, nil, false, false)
	a.Position = 1
	b := a.Clone()

	assert.Equal(t, TaskUID(a), TaskUID(b))
	assert.True(t, strings.HasSuffix(TaskUID(a), "@taskninja"))

	b.Position = 2
	assert.NotEqual(t, TaskUID(a), TaskUID(b))
}
