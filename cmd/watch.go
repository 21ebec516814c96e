package cmd

import (
	"context"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/twiced-technology-gmbh/taskninja/internal/tui"
	"github.com/twiced-technology-gmbh/taskninja/internal/watcher"
)

// watch opens the live viewer and reloads it whenever the task file changes.
func (a *app) watch(ctx context.Context) error {
	model := tui.NewViewer(a.store.LoadOrEmpty, a.renderer())
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	go a.startWatcher(ctx, p)

	_, err := p.Run()
	return err
}

func (a *app) startWatcher(ctx context.Context, p *tea.Program) {
	if err := os.MkdirAll(filepath.Dir(a.store.Path()), 0o750); err != nil {
		a.logger.Warn("live reload disabled", "err", err)
		return
	}
	w, err := watcher.New(a.store.Path(), func() {
		p.Send(tui.ReloadMsg{})
	})
	if err != nil {
		a.logger.Warn("live reload disabled", "err", err)
		return
	}
	defer w.Close()
	w.Run(ctx, func(err error) {
		a.logger.Debug("watcher", "err", err)
	})
}
