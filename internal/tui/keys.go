package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up         key.Binding
	Down       key.Binding
	Complete   key.Binding
	Incomplete key.Binding
	Flagged    key.Binding
	Unflagged  key.Binding
	Today      key.Binding
	All        key.Binding
	Quit       key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Up:         key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("k/↑", "up")),
		Down:       key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("j/↓", "down")),
		Complete:   key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "complete")),
		Incomplete: key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "incomplete")),
		Flagged:    key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "flagged")),
		Unflagged:  key.NewBinding(key.WithKeys("u"), key.WithHelp("u", "unflagged")),
		Today:      key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "due today")),
		All:        key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "all")),
		Quit:       key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Complete, k.Incomplete, k.Flagged, k.Unflagged, k.Today, k.All, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Complete, k.Incomplete, k.Flagged, k.Unflagged, k.Today, k.All},
		{k.Quit},
	}
}
