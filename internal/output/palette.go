package output

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/twiced-technology-gmbh/taskninja/internal/config"
	"github.com/twiced-technology-gmbh/taskninja/internal/task"
)

// Palette holds the styles for responses and tasks.
type Palette struct {
	Error      lipgloss.Style
	Success    lipgloss.Style
	Default    lipgloss.Style
	Complete   lipgloss.Style
	Incomplete lipgloss.Style
	Flagged    lipgloss.Style
}

// NewPalette builds styles from configured color codes. An empty code
// leaves the terminal color alone. Flagged tasks get the incomplete style
// with the flag style underneath it: underline, plus the flag color where
// the incomplete style sets none.
func NewPalette(c config.Colors) Palette {
	flag := colored(c.Flag).Underline(true)
	incomplete := colored(c.Incomplete)
	return Palette{
		Error:      colored(c.Error),
		Success:    colored(c.Success),
		Default:    colored(c.Default),
		Complete:   colored(c.Complete),
		Incomplete: incomplete,
		Flagged:    incomplete.Inherit(flag),
	}
}

// PlainPalette returns a palette without any styling.
func PlainPalette() Palette {
	plain := lipgloss.NewStyle()
	return Palette{
		Error:      plain,
		Success:    plain,
		Default:    plain,
		Complete:   plain,
		Incomplete: plain,
		Flagged:    plain,
	}
}

// TaskStyle returns the style for a task's presentation class.
func (p Palette) TaskStyle(pr task.Presentation) lipgloss.Style {
	switch pr {
	case task.PresentComplete:
		return p.Complete
	case task.PresentFlagged:
		return p.Flagged
	default:
		return p.Incomplete
	}
}

func colored(code string) lipgloss.Style {
	s := lipgloss.NewStyle()
	if code != "" {
		s = s.Foreground(lipgloss.Color(code))
	}
	return s
}
