package output

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/twiced-technology-gmbh/taskninja/internal/task"
)

// TaskRenderer renders a task as its multi-line block in the task's style.
type TaskRenderer struct {
	palette Palette
	opts    task.FormatOptions
}

// NewTaskRenderer returns a renderer using palette and date/time options.
func NewTaskRenderer(palette Palette, opts task.FormatOptions) *TaskRenderer {
	return &TaskRenderer{palette: palette, opts: opts}
}

// RenderTask implements board.Renderer. Blocks end with a newline so that
// consecutive tasks are separated by a blank line.
func (r *TaskRenderer) RenderTask(t *task.Task) string {
	style := r.palette.TaskStyle(t.Presentation())
	return styleLines(style, t.Format(r.opts)) + "\n"
}

// styleLines styles each line on its own so lipgloss does not pad the
// block to a common width.
func styleLines(style lipgloss.Style, text string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = style.Render(line)
		}
	}
	return strings.Join(lines, "\n")
}
