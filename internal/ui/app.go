package ui

import (
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/anomredux/timerail/internal/config"
	"github.com/anomredux/timerail/internal/domain"
	"github.com/anomredux/timerail/internal/i18n"
	"github.com/anomredux/timerail/internal/selector"
	"github.com/anomredux/timerail/internal/ui/overlays"
	"github.com/anomredux/timerail/internal/ui/views"
)

type ViewType int

const (
	ViewRange ViewType = iota
	ViewBuckets
	ViewCount // sentinel: number of views
)

type OverlayType int

const (
	OverlayNone OverlayType = iota
	OverlayHelp
	OverlaySettings
)

// railZoneID registers the selector track with bubblezone.
const railZoneID = "timerail-rail"

// ClockMsg drives notification expiry and the day rollover of the today
// marker and ceiling.
type ClockMsg time.Time

// dataLoadedMsg carries freshly parsed transactions.
type dataLoadedMsg struct {
	entries []domain.Transaction
	files   int
}

// DataChangedMsg reports files the watcher saw change.
type DataChangedMsg struct {
	Paths []string
}

type globalKeyMap struct {
	RangeView   key.Binding
	BucketsView key.Binding
	NextView    key.Binding
	PrevView    key.Binding
	Help        key.Binding
	Settings    key.Binding
	Reload      key.Binding
	Quit        key.Binding
	PanBack     key.Binding
	PanForward  key.Binding
	Comparison  key.Binding
	RemoveCmp   key.Binding
	Preset      key.Binding
}

func defaultGlobalKeys() globalKeyMap {
	return globalKeyMap{
		RangeView:   key.NewBinding(key.WithKeys("1"), key.WithHelp("1", i18n.T("tab_range"))),
		BucketsView: key.NewBinding(key.WithKeys("2"), key.WithHelp("2", i18n.T("tab_buckets"))),
		NextView:    key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", i18n.T("key_next_view"))),
		PrevView:    key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("⇧tab", i18n.T("key_prev_view"))),
		Help:        key.NewBinding(key.WithKeys("?"), key.WithHelp("?", i18n.T("key_help"))),
		Settings:    key.NewBinding(key.WithKeys("s"), key.WithHelp("s", i18n.T("key_settings"))),
		Reload:      key.NewBinding(key.WithKeys("r"), key.WithHelp("r", i18n.T("key_reload"))),
		Quit:        key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", i18n.T("key_quit"))),
		PanBack:     key.NewBinding(key.WithKeys("["), key.WithHelp("[", i18n.T("key_pan_back"))),
		PanForward:  key.NewBinding(key.WithKeys("]"), key.WithHelp("]", i18n.T("key_pan_forward"))),
		Comparison:  key.NewBinding(key.WithKeys("c"), key.WithHelp("c", i18n.T("key_comparison"))),
		RemoveCmp:   key.NewBinding(key.WithKeys("x"), key.WithHelp("x", i18n.T("key_remove_comparison"))),
		Preset:      key.NewBinding(key.WithKeys("p"), key.WithHelp("p", i18n.T("key_preset"))),
	}
}

func (k globalKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Help, k.Preset, k.Comparison, k.PanBack, k.Settings, k.Reload, k.Quit}
}

func (k globalKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.RangeView, k.BucketsView, k.NextView, k.PrevView},
		{k.Preset, k.Comparison, k.RemoveCmp, k.PanBack, k.PanForward},
		{k.Help, k.Settings, k.Reload, k.Quit},
	}
}

type App struct {
	activeView ViewType
	overlay    OverlayType

	rangeView   *views.RangeView
	bucketsView *views.BucketsView

	helpOverlay     *overlays.HelpOverlay
	settingsOverlay *overlays.SettingsOverlay

	ws   *workspace
	keys globalKeyMap
	log  *slog.Logger

	Config     config.Config
	ConfigPath string
	DataDir    string

	notifications *NotificationManager

	width  int
	height int

	loading bool
	ready   bool
}

// NewApp builds the application state. now is the clock used for presets,
// the ceiling and the today marker.
func NewApp(cfg config.Config, cfgPath string, now func() time.Time) (App, error) {
	i18n.SetLanguage(cfg.General.Language)
	log := slog.Default().With("component", "ui")

	ws, err := newWorkspace(cfg, now, log)
	if err != nil {
		return App{}, err
	}

	a := App{
		activeView:    ViewRange,
		overlay:       OverlayNone,
		ws:            ws,
		keys:          defaultGlobalKeys(),
		log:           log,
		Config:        cfg,
		ConfigPath:    cfgPath,
		DataDir:       cfg.General.DataDir,
		bucketsView:   views.NewBucketsView(),
		notifications: NewNotificationManager(),
	}
	a.rangeView = newRangeView(cfg, ws)
	a.helpOverlay = overlays.NewHelpOverlay(a.helpGroups()...)
	a.sync()
	return a, nil
}

func newRangeView(cfg config.Config, ws *workspace) *views.RangeView {
	threshold := float64(cfg.Selector.FinalizeThreshold)
	cb := selector.Callbacks{
		OnChange: ws.change,
		OnCommit: ws.commit,
		OnComparisonRemove: func() {
			ws.removeComparison()
		},
	}
	return views.NewRangeView(railZoneID, cb,
		views.WithFrameInterval(time.Duration(cfg.Selector.FrameIntervalMS)*time.Millisecond),
		views.WithMachineOptions(selector.WithFinalizeThreshold(threshold)),
	)
}

func (a App) helpGroups() [][]key.Binding {
	groups := a.keys.FullHelp()
	return append(groups, a.rangeView.Keys().FullHelp()...)
}

// sync pushes workspace state into the views.
func (a *App) sync() {
	a.rangeView.SetProps(a.ws.props())
	a.rangeView.SetSummary(a.ws.rangeSummary())
	cadence, auto := a.ws.effectiveCadence()
	a.bucketsView.SetData(a.ws.buckets, a.ws.entries, cadence, auto)
}

func (a App) Init() tea.Cmd {
	return tea.Batch(
		tea.SetWindowTitle("timerail"),
		a.loadCmd(),
		doClock(),
	)
}

func doClock() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return ClockMsg(t)
	})
}
