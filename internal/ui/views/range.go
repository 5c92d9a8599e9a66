package views

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"github.com/anomredux/timerail/internal/domain"
	"github.com/anomredux/timerail/internal/i18n"
	"github.com/anomredux/timerail/internal/selector"
	"github.com/anomredux/timerail/internal/theme"
	"github.com/anomredux/timerail/internal/ui/components"
)

// RangeKeyMap holds the keyboard bindings of the range view.
type RangeKeyMap struct {
	Left       key.Binding
	Right      key.Binding
	StartLeft  key.Binding
	StartRight key.Binding
	EndLeft    key.Binding
	EndRight   key.Binding
	Cancel     key.Binding
}

func DefaultRangeKeyMap() RangeKeyMap {
	return RangeKeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", i18n.T("key_move_left")),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", i18n.T("key_move_right")),
		),
		StartLeft: key.NewBinding(
			key.WithKeys("shift+left", "H"),
			key.WithHelp("⇧←/H", i18n.T("key_start_earlier")),
		),
		StartRight: key.NewBinding(
			key.WithKeys("shift+right", "L"),
			key.WithHelp("⇧→/L", i18n.T("key_start_later")),
		),
		EndLeft: key.NewBinding(
			key.WithKeys("alt+left", "ctrl+left"),
			key.WithHelp("^←", i18n.T("key_end_earlier")),
		),
		EndRight: key.NewBinding(
			key.WithKeys("alt+right", "ctrl+right"),
			key.WithHelp("^→", i18n.T("key_end_later")),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", i18n.T("key_cancel_drag")),
		),
	}
}

// ShortHelp lists the bindings shown in the status bar.
func (k RangeKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.StartLeft, k.EndLeft}
}

// FullHelp lists every binding, grouped for the help overlay.
func (k RangeKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right},
		{k.StartLeft, k.StartRight},
		{k.EndLeft, k.EndRight},
		{k.Cancel},
	}
}

// railFrameMsg fires when a held pointer move may be processed.
type railFrameMsg struct {
	id string
	at time.Time
}

// pointer is a mouse position projected onto the rail.
type pointer struct {
	x      float64
	inside bool
}

// RangeSummary is the aggregate shown under the rail.
type RangeSummary struct {
	Preset      string
	Current     domain.Summary
	Previous    domain.Summary
	HasPrevious bool
}

// RangeView hosts the selector rail. It translates mouse and key messages
// into machine calls and reports the results through Callbacks. The
// selection itself is owned by the caller and arrives through SetProps.
type RangeView struct {
	id       string
	machine  *selector.Machine
	frames   *selector.FrameCoalescer
	interval time.Duration
	keys     RangeKeyMap
	cb       selector.Callbacks

	props   selector.Props
	summary RangeSummary
	focused bool

	hover    float64
	hasHover bool

	lastSel    selector.Range
	hasLastSel bool
	lastCmp    selector.Range
	hasLastCmp bool
	lastMode   selector.ComparisonMode

	locate    func(tea.MouseMsg) (pointer, bool)
	removeHit func(tea.MouseMsg) bool
	now       func() time.Time
}

// RangeViewOption configures a RangeView.
type RangeViewOption func(*RangeView)

// WithFrameInterval sets the pointer-move coalescing interval.
func WithFrameInterval(d time.Duration) RangeViewOption {
	return func(v *RangeView) { v.interval = d }
}

// WithMachineOptions forwards options to the underlying machine.
func WithMachineOptions(opts ...selector.Option) RangeViewOption {
	return func(v *RangeView) { v.machine = selector.NewMachine(opts...) }
}

// WithKeyMap replaces the default bindings.
func WithKeyMap(k RangeKeyMap) RangeViewOption {
	return func(v *RangeView) { v.keys = k }
}

// NewRangeView creates a view whose rail is registered under zone id.
func NewRangeView(id string, cb selector.Callbacks, opts ...RangeViewOption) *RangeView {
	v := &RangeView{
		id:       id,
		machine:  selector.NewMachine(),
		interval: 16 * time.Millisecond,
		keys:     DefaultRangeKeyMap(),
		cb:       cb,
		focused:  true,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(v)
	}
	v.frames = selector.NewFrameCoalescer(v.interval)
	v.locate = v.zoneLocate
	v.removeHit = v.zoneRemoveHit
	return v
}

func (v *RangeView) zoneLocate(msg tea.MouseMsg) (pointer, bool) {
	z := zone.Get(v.id)
	if z == nil || z.IsZero() {
		return pointer{}, false
	}
	// cell centre, so a press on a day lands inside that day
	return pointer{x: float64(msg.X-z.StartX) + 0.5, inside: z.InBounds(msg)}, true
}

func (v *RangeView) zoneRemoveHit(msg tea.MouseMsg) bool {
	z := zone.Get(v.id + components.RemoveZoneSuffix)
	return z != nil && z.InBounds(msg)
}

// Keys returns the active key bindings.
func (v *RangeView) Keys() RangeKeyMap { return v.keys }

// Machine exposes the interaction state for rendering and tests.
func (v *RangeView) Machine() *selector.Machine { return v.machine }

// SetFocused toggles keyboard stepping.
func (v *RangeView) SetFocused(f bool) { v.focused = f }

// SetSummary replaces the aggregate shown under the rail.
func (v *RangeView) SetSummary(s RangeSummary) { v.summary = s }

// SetProps replaces the caller-owned input. The selection and comparison
// observers fire when the derived values change.
func (v *RangeView) SetProps(p selector.Props) {
	v.props = p
	v.notifyDerived()
}

// Props returns the current input.
func (v *RangeView) Props() selector.Props { return v.props }

func (v *RangeView) notifyDerived() {
	sel := v.props.Normalized()
	hasSel := sel.Valid() && v.props.Rail.Valid()
	if hasSel != v.hasLastSel || !sel.Equal(v.lastSel) {
		v.lastSel, v.hasLastSel = sel, hasSel
		if v.cb.OnSelectionChange != nil {
			v.cb.OnSelectionChange(sel, hasSel)
		}
	}

	cmp, hasCmp := v.props.ComparisonRange()
	if hasCmp != v.hasLastCmp || !cmp.Equal(v.lastCmp) || v.props.Comparison != v.lastMode {
		v.lastCmp, v.hasLastCmp, v.lastMode = cmp, hasCmp, v.props.Comparison
		if v.cb.OnComparisonChange != nil {
			v.cb.OnComparisonChange(cmp, hasCmp, v.props.Comparison)
		}
	}
}

// apply delivers machine events and keeps the local copy of the value in
// step so rendering between SetProps calls shows the live selection.
func (v *RangeView) apply(events []selector.Event) {
	for _, e := range events {
		if e.Kind == selector.EventChange {
			v.props.Value = e.Range
		}
	}
	selector.Dispatch(events, v.cb)
	if len(events) > 0 {
		v.notifyDerived()
	}
}

// Unmount drops any gesture in progress.
func (v *RangeView) Unmount() {
	v.machine.Reset()
	v.frames.Drop()
	v.hasHover = false
}

func (v *RangeView) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.MouseMsg:
		return v.handleMouse(msg)
	case tea.KeyMsg:
		return v.handleKey(msg)
	case railFrameMsg:
		if msg.id != v.id {
			return nil
		}
		if x, ok := v.frames.Flush(msg.at); ok && v.machine.Dragging() {
			v.apply(v.machine.PointerMove(v.props, x))
		}
	}
	return nil
}

func (v *RangeView) handleMouse(msg tea.MouseMsg) tea.Cmd {
	dragging := v.machine.Dragging()

	if !dragging && msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
		if _, ok := v.props.ComparisonRange(); ok && v.removeHit(msg) {
			if v.cb.OnComparisonRemove != nil {
				v.cb.OnComparisonRemove()
			}
			return KeyHandledCmd
		}
	}

	p, ok := v.locate(msg)
	if !ok {
		return nil
	}

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft || dragging || !p.inside {
			return nil
		}
		if v.machine.PointerDown(v.props, p.x) == selector.Idle {
			return nil
		}
		v.focused = true
		v.hasHover = false
		v.frames.Drop()
		return KeyHandledCmd

	case tea.MouseActionMotion:
		if !dragging {
			v.hover, v.hasHover = p.x, p.inside
			return nil
		}
		now := v.now()
		process, schedule := v.frames.Offer(now, p.x)
		if process {
			v.apply(v.machine.PointerMove(v.props, p.x))
		}
		if schedule {
			id := v.id
			return tea.Tick(v.interval, func(t time.Time) tea.Msg {
				return railFrameMsg{id: id, at: t}
			})
		}
		return KeyHandledCmd

	case tea.MouseActionRelease:
		if !dragging {
			return nil
		}
		v.frames.Drop()
		v.apply(v.machine.PointerUp(v.props, p.x))
		v.hover, v.hasHover = p.x, p.inside
		return KeyHandledCmd
	}
	return nil
}

func (v *RangeView) handleKey(msg tea.KeyMsg) tea.Cmd {
	if key.Matches(msg, v.keys.Cancel) {
		if v.machine.Cancel() {
			v.frames.Drop()
			return KeyHandledCmd
		}
		return nil
	}
	if !v.focused || v.machine.Dragging() {
		return nil
	}

	var dir int
	edge := selector.StepBoth
	switch {
	case key.Matches(msg, v.keys.Left):
		dir = -1
	case key.Matches(msg, v.keys.Right):
		dir = 1
	case key.Matches(msg, v.keys.StartLeft):
		dir, edge = -1, selector.StepStart
	case key.Matches(msg, v.keys.StartRight):
		dir, edge = 1, selector.StepStart
	case key.Matches(msg, v.keys.EndLeft):
		dir, edge = -1, selector.StepEnd
	case key.Matches(msg, v.keys.EndRight):
		dir, edge = 1, selector.StepEnd
	default:
		return nil
	}
	v.apply(v.machine.Step(v.props, dir, edge))
	return KeyHandledCmd
}

// RailWidth returns the number of cells the rail gets inside a card of the
// given outer width.
func RailWidth(width int, compact bool) int {
	c := components.Card{Width: width - 4, Compact: compact}
	return max(c.InnerWidth(), 0)
}

// RailWidthTotal is the inverse of RailWidth for a full card.
func RailWidthTotal(cells int) int {
	return cells + 8
}

func (v *RangeView) Render(width, height int, compact bool) string {
	cardWidth := width - 4
	preview, hasPreview := v.machine.Preview()

	rail := components.Rail{
		Props:      v.props,
		Preview:    preview,
		HasPreview: hasPreview,
		Hover:      v.hover,
		HasHover:   v.hasHover,
		Mode:       v.machine.Mode(),
		Focused:    v.focused,
		ZoneID:     v.id,
	}

	title := theme.TitleText(i18n.T("range_title"))
	if v.summary.Preset != "" {
		title += theme.AccentStyle.Render(" · " + i18n.T("preset_"+v.summary.Preset))
	}
	railCard := components.Card{
		Title:   title,
		Footer:  v.renderModeBadge(),
		Width:   cardWidth,
		Compact: compact,
	}
	if !v.props.Rail.Valid() || v.props.Width <= 0 {
		railCard.Content = theme.MutedStyle.Render(i18n.T("rail_no_layout"))
	} else {
		railCard.Content = rail.Render()
	}

	out := railCard.Render() + "\n" + v.renderSummary(cardWidth, compact)
	return out
}

func (v *RangeView) renderModeBadge() string {
	parts := []string{
		theme.MutedStyle.Render(i18n.T("scale_" + v.props.Scale.String())),
		theme.MutedStyle.Render(i18n.T("unit_" + v.props.Unit.String())),
	}
	if v.props.Comparison != selector.ComparisonOff {
		parts = append(parts, theme.RailComparisonStyle.Render(i18n.T("comparison_"+v.props.Comparison.String())))
	}
	if m := v.machine.Mode(); m != selector.Idle {
		parts = append(parts, theme.WarningStyle.Render(i18n.T("mode_"+m.String())))
	}
	return strings.Join(parts, theme.MutedStyle.Render(" · "))
}

func (v *RangeView) renderSummary(cardWidth int, compact bool) string {
	card := components.Card{
		Title:   theme.GradientText(i18n.T("summary"), string(theme.ColorSkyBlue), string(theme.ColorLavender)),
		Width:   cardWidth,
		Compact: compact,
	}
	innerW := card.InnerWidth()
	cur := v.summary.Current

	statGap := 2
	n := 2
	if v.summary.HasPrevious {
		n = 4
	}
	statW := max((innerW-statGap*(n-1))/n, 10)

	stats := []components.StatCard{
		{Value: components.FormatAmount(cur.Total), Label: i18n.T("total"), Width: statW, Color: theme.ColorSkyBlue},
		{Value: components.FormatNumber(cur.Count), Label: i18n.T("transactions"), Width: statW, Color: theme.ColorLavender},
	}
	if v.summary.HasPrevious {
		prev := v.summary.Previous
		pct, ok := domain.Change(cur.Total, prev.Total)
		stats = append(stats,
			components.StatCard{Value: components.FormatAmount(prev.Total), Label: i18n.T("comparison_total"), Width: statW, Color: theme.ColorMauve},
			components.ChangeStat(i18n.T("change"), pct, ok, statW),
		)
	}

	rows := []string{components.RenderStatRow(stats, statGap)}

	cats := cur.Categories()
	if len(cats) > 0 {
		rows = append(rows, "")
		nameW := max(innerW-16, 8)
		limit := min(len(cats), 5)
		for i, c := range cats[:limit] {
			name := theme.BodyStyle.Width(nameW).
				Render(components.Truncate(c.Category, nameW))
			amount := lipgloss.NewStyle().Width(14).Align(lipgloss.Right).Foreground(theme.ColorGold).
				Render(components.FormatAmount(c.Total))
			rows = append(rows, components.RowBackground(i).Render(name+"  "+amount))
		}
		if len(cats) > limit {
			var rest float64
			for _, c := range cats[limit:] {
				rest += c.Total
			}
			rows = append(rows, theme.MutedStyle.Render(
				fmt.Sprintf("  … +%d (%s)", len(cats)-limit, components.FormatCompact(rest))))
		}
	} else {
		rows = append(rows, theme.MutedStyle.Render(i18n.T("no_data")))
	}

	card.Content = strings.Join(rows, "\n")
	return card.Render()
}
