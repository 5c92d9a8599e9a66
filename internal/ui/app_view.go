package ui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"github.com/anomredux/timerail/internal/i18n"
	"github.com/anomredux/timerail/internal/theme"
	"github.com/anomredux/timerail/internal/ui/components"
)

func (a App) View() string {
	if !a.ready {
		return i18n.T("initializing")
	}

	if a.width < 80 || a.height < 24 {
		return lipgloss.Place(a.width, a.height,
			lipgloss.Center, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.ColorPeach).Render(
				i18n.T("terminal_too_small")+"\n"+
					i18n.Tf("current_size", a.width, a.height),
			),
		)
	}

	if a.overlay != OverlayNone {
		return lipgloss.Place(a.width, a.height,
			lipgloss.Center, lipgloss.Center,
			a.renderOverlay(),
			lipgloss.WithWhitespaceBackground(theme.ColorOverlayBg),
		)
	}

	contentHeight := max(a.height-4, 5) // 2 tab + 2 status

	content := lipgloss.NewStyle().
		Width(a.width).
		Height(contentHeight).
		MaxHeight(contentHeight).
		Render(a.renderActiveView(contentHeight, a.compact()))

	bottom := a.notifications.RenderBanner(a.width)
	if bottom == "" {
		bottom = a.renderStatusBar()
	}

	// Scan strips the zone markers and records where the rail landed.
	return zone.Scan(a.renderTabs() + "\n" + content + "\n" + bottom)
}

func (a App) renderTabs() string {
	badge := i18n.T("preset_" + a.ws.preset)
	if a.loading {
		badge = "… " + badge
	}
	return components.TabBar{
		ViewNames:   []string{i18n.T("tab_range"), i18n.T("tab_buckets")},
		ActiveIndex: int(a.activeView),
		Width:       a.width,
		Badge:       badge,
	}.Render()
}

func (a App) renderActiveView(contentHeight int, compact bool) string {
	switch a.activeView {
	case ViewRange:
		return a.rangeView.Render(a.width, contentHeight, compact)
	case ViewBuckets:
		return a.bucketsView.Render(a.width, contentHeight, compact)
	}
	return ""
}

func (a App) renderStatusBar() string {
	var bindings []key.Binding
	if a.activeView == ViewRange {
		bindings = append(bindings, a.rangeView.Keys().ShortHelp()...)
	}
	bindings = append(bindings, a.keys.ShortHelp()...)
	return components.StatusBar{Width: a.width, Bindings: bindings}.Render()
}

func (a App) renderOverlay() string {
	switch a.overlay {
	case OverlayHelp:
		return a.helpOverlay.Render(a.width, a.height)
	case OverlaySettings:
		if a.settingsOverlay != nil {
			return a.settingsOverlay.Render(a.width, a.height)
		}
	}
	return ""
}
