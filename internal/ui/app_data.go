package ui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/anomredux/timerail/internal/parser"
	"github.com/anomredux/timerail/internal/watcher"
)

// loadCmd scans the data directory in the background. The directory and
// timezone are captured now so a later settings change cannot race it.
func (a App) loadCmd() tea.Cmd {
	dir, tz := a.DataDir, a.ws.tz
	return func() tea.Msg {
		entries := parser.ScanAndParse(context.Background(), dir, tz)
		return dataLoadedMsg{
			entries: parser.Dedup(entries),
			files:   len(parser.Files(dir)),
		}
	}
}

// StartWatcher watches the data directory and forwards changes to p as
// DataChangedMsg. The caller must Stop the returned watcher.
func StartWatcher(p *tea.Program, dir string, poll time.Duration) (*watcher.Watcher, error) {
	w := watcher.New([]string{dir}, poll, func(paths []string) {
		p.Send(DataChangedMsg{Paths: paths})
	})
	if _, err := w.InitialScan(); err != nil {
		return nil, err
	}
	if err := w.Start(); err != nil {
		return nil, err
	}
	return w, nil
}
