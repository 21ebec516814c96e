// Package tui implements a read-only terminal view of the task list that
// follows changes made by other taskninja invocations.
package tui

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/twiced-technology-gmbh/taskninja/internal/board"
	"github.com/twiced-technology-gmbh/taskninja/internal/task"
)

// Layout constants.
const (
	cardChrome   = 2 // left and right border
	statusChrome = 3 // blank line, status bar, help line
	tickInterval = time.Minute
)

// Viewer is the top-level bubbletea model.
type Viewer struct {
	load     func() *board.List
	renderer board.Renderer
	list     *board.List
	visible  []*task.Task
	filters  []board.FilterName
	cursor   int
	offset   int // first visible card
	width    int
	height   int
	now      func() time.Time // clock for the due_today filter; defaults to time.Now
	keys     keyMap
	help     help.Model
}

// NewViewer creates a Viewer. load is called initially and on every
// ReloadMsg; renderer draws the body of each task card.
func NewViewer(load func() *board.List, renderer board.Renderer) *Viewer {
	v := &Viewer{
		load:     load,
		renderer: renderer,
		now:      time.Now,
		keys:     defaultKeys(),
		help:     help.New(),
	}
	v.reload()
	return v
}

// SetNow overrides the clock used for the due_today filter (for testing).
func (v *Viewer) SetNow(fn func() time.Time) {
	v.now = fn
	v.list.SetNow(fn)
	v.refresh()
}

// Filters returns the active filters in the order they were enabled.
func (v *Viewer) Filters() []board.FilterName {
	return slices.Clone(v.filters)
}

// Selected returns the task under the cursor, or nil when nothing is shown.
func (v *Viewer) Selected() *task.Task {
	if v.cursor < 0 || v.cursor >= len(v.visible) {
		return nil
	}
	return v.visible[v.cursor]
}

// Init implements tea.Model.
func (v *Viewer) Init() tea.Cmd {
	return tickCmd()
}

// Update implements tea.Model.
func (v *Viewer) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return v.handleKey(msg)
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		v.help.Width = msg.Width
		v.ensureVisible()
		return v, nil
	case ReloadMsg:
		v.reload()
		return v, nil
	case TickMsg:
		v.refresh()
		return v, tickCmd()
	}
	return v, nil
}

// View implements tea.Model.
func (v *Viewer) View() string {
	if v.width == 0 {
		return "Loading..."
	}

	body := v.viewCards()
	target := v.height - statusChrome
	if target > 0 {
		actual := lipgloss.Height(body)
		if actual > target {
			body = strings.Join(strings.SplitN(body, "\n", target+1)[:target], "\n")
		} else if actual < target {
			body += strings.Repeat("\n", target-actual)
		}
	}

	return lipgloss.JoinVertical(lipgloss.Left, body, "", v.renderStatusBar(), v.help.View(v.keys))
}

func (v *Viewer) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, v.keys.Quit):
		return v, tea.Quit
	case key.Matches(msg, v.keys.Down):
		if v.cursor < len(v.visible)-1 {
			v.cursor++
		}
	case key.Matches(msg, v.keys.Up):
		if v.cursor > 0 {
			v.cursor--
		}
	case key.Matches(msg, v.keys.All):
		v.filters = nil
		v.refresh()
	case key.Matches(msg, v.keys.Complete):
		v.toggle(board.FilterComplete)
	case key.Matches(msg, v.keys.Incomplete):
		v.toggle(board.FilterIncomplete)
	case key.Matches(msg, v.keys.Flagged):
		v.toggle(board.FilterFlagged)
	case key.Matches(msg, v.keys.Unflagged):
		v.toggle(board.FilterUnflagged)
	case key.Matches(msg, v.keys.Today):
		v.toggle(board.FilterDueToday)
	}
	v.ensureVisible()
	return v, nil
}

// toggle enables f, or disables it when already active.
func (v *Viewer) toggle(f board.FilterName) {
	if i := slices.Index(v.filters, f); i >= 0 {
		v.filters = slices.Delete(v.filters, i, i+1)
	} else {
		v.filters = append(v.filters, f)
	}
	v.refresh()
}

func (v *Viewer) reload() {
	v.list = v.load()
	if v.list == nil {
		v.list = board.New()
	}
	v.list.SetNow(v.now)
	v.refresh()
}

// refresh recomputes the visible tasks and keeps the cursor in range.
func (v *Viewer) refresh() {
	v.visible = v.list.Filter(v.filters...)
	if v.cursor >= len(v.visible) {
		v.cursor = len(v.visible) - 1
	}
	if v.cursor < 0 {
		v.cursor = 0
	}
	v.ensureVisible()
}

// ensureVisible scrolls so the card under the cursor fits on screen.
func (v *Viewer) ensureVisible() {
	if v.offset > v.cursor {
		v.offset = v.cursor
	}
	avail := v.height - statusChrome
	if avail <= 0 {
		return
	}
	for v.offset < v.cursor {
		used := 0
		for i := v.offset; i <= v.cursor; i++ {
			used += lipgloss.Height(v.renderCard(i))
		}
		if used <= avail {
			return
		}
		v.offset++
	}
}

// --- Messages ---

// ReloadMsg is sent by the file watcher to trigger a reload of the list.
type ReloadMsg struct{}

// TickMsg is sent periodically so the due_today filter follows the clock.
type TickMsg struct{}

func tickCmd() tea.Cmd {
	return tea.Tick(tickInterval, func(time.Time) tea.Msg { return TickMsg{} })
}

// --- Styles ---

var (
	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)

	activeCardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("226")).
			Padding(0, 1)

	statusBarStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	dimStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// --- View rendering ---

func (v *Viewer) viewCards() string {
	if len(v.visible) == 0 {
		return dimStyle.Render("No tasks found.")
	}

	avail := v.height - statusChrome
	var cards []string
	used := 0
	for i := v.offset; i < len(v.visible); i++ {
		card := v.renderCard(i)
		h := lipgloss.Height(card)
		if avail > 0 && used+h > avail && len(cards) > 0 {
			break
		}
		cards = append(cards, card)
		used += h
	}
	return lipgloss.JoinVertical(lipgloss.Left, cards...)
}

func (v *Viewer) renderCard(i int) string {
	style := cardStyle
	if i == v.cursor {
		style = activeCardStyle
	}
	if v.width > cardChrome {
		style = style.Width(v.width - cardChrome)
	}
	body := strings.TrimRight(v.renderer.RenderTask(v.visible[i]), "\n")
	return style.Render(body)
}

func (v *Viewer) renderStatusBar() string {
	s := v.list.Summarize()
	status := fmt.Sprintf(" %d tasks | %d complete | %d flagged | %d due today",
		s.Total, s.Complete, s.Flagged, s.DueToday)
	if len(v.filters) > 0 {
		names := make([]string, len(v.filters))
		for i, f := range v.filters {
			names[i] = string(f)
		}
		status += fmt.Sprintf(" | showing %d: %s", len(v.visible), strings.Join(names, ", "))
	}
	return statusBarStyle.Render(truncate(status, v.width))
}

func truncate(s string, maxLen int) string {
	if maxLen < 4 { //nolint:mnd // minimum length for truncation
		maxLen = 4
	}
	if lipgloss.Width(s) <= maxLen {
		return s
	}
	runes := []rune(s)
	target := min(maxLen-3, len(runes)) //nolint:mnd // room for "..."
	for target > 0 && lipgloss.Width(string(runes[:target])) > maxLen-3 {
		target--
	}
	return string(runes[:target]) + "..."
}
