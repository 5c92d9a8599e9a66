package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/anomredux/timerail/internal/i18n"
	"github.com/anomredux/timerail/internal/ui/overlays"
	"github.com/anomredux/timerail/internal/ui/views"
)

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.ready = true
		a.ws.width = float64(views.RailWidth(a.width, a.compact()))
		a.sync()
		return a, nil

	case tea.MouseMsg:
		if a.overlay != OverlayNone || a.activeView != ViewRange {
			return a, nil
		}
		cmd := a.rangeView.Update(msg)
		a.sync()
		return a, cmd

	case tea.KeyMsg:
		if a.overlay != OverlayNone {
			return a.updateOverlay(msg)
		}
		return a.handleKey(msg)

	case views.CadenceChangedMsg:
		a.ws.setCadence(msg.Cadence)
		a.sync()
		return a, nil

	case ClockMsg:
		a.notifications.Expire()
		if err := a.ws.refreshClock(); err != nil {
			a.log.Warn("ceiling refresh failed", "err", err)
		} else {
			a.sync()
		}
		return a, doClock()

	case dataLoadedMsg:
		a.loading = false
		a.ws.setEntries(msg.entries)
		a.sync()
		a.notifications.SetMessage(i18n.Tf("notify_loaded", len(msg.entries), msg.files))
		a.log.Info("data loaded", "entries", len(msg.entries), "files", msg.files)
		return a, nil

	case DataChangedMsg:
		a.log.Debug("data changed", "paths", msg.Paths)
		a.notifications.SetMessage(i18n.T("notify_reloaded"))
		a.loading = true
		return a, a.loadCmd()

	case overlays.ConfigChangedMsg:
		return a.applyConfig(msg)
	}

	// Frame ticks and anything else the rail scheduled.
	cmd := a.rangeView.Update(msg)
	a.sync()
	return a, cmd
}

func (a App) compact() bool {
	return a.height < 30
}

// applyConfig takes settings saved from the overlay. Language changes
// rebuild everything holding translated key help; timezone changes reload
// the data since date-only records are read in that zone.
func (a App) applyConfig(msg overlays.ConfigChangedMsg) (tea.Model, tea.Cmd) {
	prevTZ := a.Config.General.Timezone
	a.Config = msg.Config
	i18n.SetLanguage(a.Config.General.Language)

	if err := a.ws.configure(a.Config); err != nil {
		a.log.Error("config rejected", "err", err)
		a.notifications.SetWarning(err.Error())
		return a, nil
	}

	a.rangeView.Unmount()
	a.rangeView = newRangeView(a.Config, a.ws)
	a.rangeView.SetFocused(a.activeView == ViewRange)
	a.keys = defaultGlobalKeys()
	a.helpOverlay = overlays.NewHelpOverlay(a.helpGroups()...)
	a.sync()
	a.notifications.SetMessage(i18n.T("config_saved"))

	if a.Config.General.Timezone != prevTZ {
		a.loading = true
		return a, a.loadCmd()
	}
	return a, nil
}

func (a App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch a.activeView {
	case ViewRange:
		cmd = a.rangeView.Update(msg)
	case ViewBuckets:
		cmd = a.bucketsView.Update(msg)
	}
	if cmd != nil {
		a.sync()
		return a, cmd
	}

	k := a.keys
	// A drag owns the selection until release.
	if a.rangeView.Machine().Dragging() && !key.Matches(msg, k.Quit) {
		return a, nil
	}
	switch {
	case key.Matches(msg, k.Quit):
		return a, tea.Quit
	case key.Matches(msg, k.RangeView):
		a.setView(ViewRange)
	case key.Matches(msg, k.BucketsView):
		a.setView(ViewBuckets)
	case key.Matches(msg, k.NextView):
		a.setView((a.activeView + 1) % ViewCount)
	case key.Matches(msg, k.PrevView):
		a.setView((a.activeView + ViewCount - 1) % ViewCount)
	case key.Matches(msg, k.Help):
		a.overlay = OverlayHelp
	case key.Matches(msg, k.Settings):
		a.settingsOverlay = overlays.NewSettingsOverlay(a.Config, a.ConfigPath)
		a.overlay = OverlaySettings
	case key.Matches(msg, k.Reload):
		a.loading = true
		return a, a.loadCmd()
	case key.Matches(msg, k.Preset):
		if err := a.ws.cyclePreset(); err != nil {
			a.notifications.SetWarning(err.Error())
		}
	case key.Matches(msg, k.PanBack):
		a.ws.pan(-1)
	case key.Matches(msg, k.PanForward):
		if !a.ws.pan(1) {
			a.notifications.SetWarning(i18n.T("pan_at_ceiling"))
		}
	case key.Matches(msg, k.Comparison):
		a.ws.cycleComparison()
	case key.Matches(msg, k.RemoveCmp):
		a.ws.removeComparison()
	default:
		return a, nil
	}
	a.sync()
	return a, nil
}

// setView switches tabs. Leaving the range view drops any drag in flight.
func (a *App) setView(v ViewType) {
	if a.activeView == ViewRange && v != ViewRange {
		a.rangeView.Unmount()
	}
	a.activeView = v
	a.rangeView.SetFocused(v == ViewRange)
}

func (a App) updateOverlay(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch a.overlay {
	case OverlayHelp:
		switch msg.String() {
		case "esc", "?":
			a.overlay = OverlayNone
		}
	case OverlaySettings:
		if a.settingsOverlay != nil {
			closed, cmd := a.settingsOverlay.Update(msg)
			if closed {
				a.overlay = OverlayNone
			}
			return a, cmd
		}
	}
	return a, nil
}
