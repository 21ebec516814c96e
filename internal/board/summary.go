package board

// Summary counts tasks by state.
type Summary struct {
	Total      int `json:"total"`
	Complete   int `json:"complete"`
	Incomplete int `json:"incomplete"`
	Flagged    int `json:"flagged"`
	DueToday   int `json:"due_today"`
}

// Summarize returns counts over the whole list.
func (l *List) Summarize() Summary {
	now := l.now()
	s := Summary{Total: len(l.tasks)}
	for _, t := range l.tasks {
		if t.Complete {
			s.Complete++
		} else {
			s.Incomplete++
		}
		if t.Flagged {
			s.Flagged++
		}
		if d, ok := t.DueDate.Value(); ok && d.IsOn(now) {
			s.DueToday++
		}
	}
	return s
}
