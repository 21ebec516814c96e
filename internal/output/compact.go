package output

import (
	"strconv"
	"strings"

	"github.com/twiced-technology-gmbh/taskninja/internal/task"
)

// CompactRenderer renders each task on one line:
//
//	2 [x] ! Title (due September 12, 2022 12:06 PM)
type CompactRenderer struct {
	palette Palette
	opts    task.FormatOptions
}

// NewCompactRenderer returns a one-line renderer.
func NewCompactRenderer(palette Palette, opts task.FormatOptions) *CompactRenderer {
	return &CompactRenderer{palette: palette, opts: opts}
}

// RenderTask implements board.Renderer.
func (r *CompactRenderer) RenderTask(t *task.Task) string {
	return r.palette.TaskStyle(t.Presentation()).Render(formatTaskLine(t, r.opts))
}

func formatTaskLine(t *task.Task, opts task.FormatOptions) string {
	var b strings.Builder
	b.WriteString(strconv.Itoa(t.Position))
	if t.Complete {
		b.WriteString(" [x] ")
	} else {
		b.WriteString(" [ ] ")
	}
	if t.Flagged {
		b.WriteString("! ")
	}
	b.WriteString(t.Title)

	if due := dueText(t, opts); due != "" {
		b.WriteString(" (due " + due + ")")
	}
	return b.String()
}

// dueText joins the valid parts of the due date and time.
func dueText(t *task.Task, opts task.FormatOptions) string {
	var parts []string
	if d, ok := t.DueDate.Value(); ok {
		if opts.NumericDate {
			parts = append(parts, d.Numeric())
		} else {
			parts = append(parts, d.Calendar())
		}
	}
	if tm, ok := t.DueTime.Value(); ok {
		if opts.Time24Hour {
			parts = append(parts, tm.Format24())
		} else {
			parts = append(parts, tm.Format12())
		}
	}
	return strings.Join(parts, " ")
}
