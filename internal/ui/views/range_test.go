package views

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anomredux/timerail/internal/domain"
	"github.com/anomredux/timerail/internal/selector"
)

func day(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", s)
	require.NoError(t, err)
	return d
}

func span(t *testing.T, a, b string) selector.Range {
	return selector.Range{Start: day(t, a), End: day(t, b)}
}

type recorder struct {
	changes  []selector.Range
	commits  []selector.Range
	previews []selector.Range
	removed  int
	selSeen  int
	cmpSeen  int
}

func (r *recorder) callbacks() selector.Callbacks {
	return selector.Callbacks{
		OnChange:           func(x selector.Range) { r.changes = append(r.changes, x) },
		OnCommit:           func(x selector.Range) { r.commits = append(r.commits, x) },
		OnPreview:          func(x selector.Range) { r.previews = append(r.previews, x) },
		OnSelectionChange:  func(selector.Range, bool) { r.selSeen++ },
		OnComparisonChange: func(selector.Range, bool, selector.ComparisonMode) { r.cmpSeen++ },
		OnComparisonRemove: func() { r.removed++ },
	}
}

// newTestView returns a view on a 2024 rail one cell per day, with the rail
// on row 0 starting at column 0.
func newTestView(t *testing.T, opts ...RangeViewOption) (*RangeView, *recorder) {
	t.Helper()
	rec := &recorder{}
	opts = append([]RangeViewOption{WithFrameInterval(0)}, opts...)
	v := NewRangeView("rail-test", rec.callbacks(), opts...)
	v.locate = func(msg tea.MouseMsg) (pointer, bool) {
		return pointer{x: float64(msg.X) + 0.5, inside: msg.Y == 0 && msg.X >= 0 && msg.X < 365}, true
	}
	v.removeHit = func(tea.MouseMsg) bool { return false }
	v.SetProps(selector.Props{
		Scale: selector.ScaleYear,
		Rail:  span(t, "2024-01-01", "2024-12-31"),
		Value: span(t, "2024-03-01", "2024-03-08"),
		Unit:  selector.UnitDay,
		Width: 365,
	})
	return v, rec
}

func press(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

func motion(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft}
}

func release(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionRelease, Button: tea.MouseButtonNone}
}

func TestRangeView_KeyboardStep(t *testing.T) {
	tests := []struct {
		name string
		key  tea.KeyMsg
		want selector.Range
	}{
		{"right moves both", tea.KeyMsg{Type: tea.KeyRight}, span(t, "2024-03-02", "2024-03-09")},
		{"h moves both left", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("h")}, span(t, "2024-02-29", "2024-03-07")},
		{"H moves start earlier", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("H")}, span(t, "2024-02-29", "2024-03-08")},
		{"shift+right moves start later", tea.KeyMsg{Type: tea.KeyShiftRight}, span(t, "2024-03-02", "2024-03-08")},
		{"ctrl+right moves end later", tea.KeyMsg{Type: tea.KeyCtrlRight}, span(t, "2024-03-01", "2024-03-09")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, rec := newTestView(t)
			cmd := v.Update(tt.key)
			assert.NotNil(t, cmd)
			require.Len(t, rec.commits, 1)
			assert.True(t, rec.commits[0].Equal(tt.want), "commit = %v, want %v", rec.commits[0], tt.want)
			assert.True(t, v.Props().Value.Equal(tt.want))
		})
	}
}

func TestRangeView_KeyboardIgnoredWhenUnfocused(t *testing.T) {
	v, rec := newTestView(t)
	v.SetFocused(false)
	assert.Nil(t, v.Update(tea.KeyMsg{Type: tea.KeyRight}))
	assert.Empty(t, rec.commits)
}

func TestRangeView_CreateDrag(t *testing.T) {
	v, rec := newTestView(t)

	v.Update(press(10, 0))
	assert.Equal(t, selector.CreatingNewSelection, v.Machine().Mode())
	v.Update(motion(20, 0))
	require.NotEmpty(t, rec.previews)
	assert.Empty(t, rec.changes, "create drags only preview until release")

	v.Update(release(20, 0))
	want := span(t, "2024-01-11", "2024-01-22")
	require.Len(t, rec.commits, 1)
	assert.True(t, rec.commits[0].Equal(want), "commit = %v, want %v", rec.commits[0], want)
	assert.False(t, v.Machine().Dragging())
}

func TestRangeView_SmallDragDiscarded(t *testing.T) {
	v, rec := newTestView(t)
	v.Update(press(200, 0))
	v.Update(motion(202, 0))
	v.Update(release(202, 0))
	assert.Empty(t, rec.commits)
	assert.Empty(t, rec.changes)
	assert.True(t, v.Props().Value.Equal(span(t, "2024-03-01", "2024-03-08")))
}

func TestRangeView_CaptureOutsideRail(t *testing.T) {
	v, rec := newTestView(t)

	// cell 62 is inside the selection body
	v.Update(press(62, 0))
	require.Equal(t, selector.MovingSelection, v.Machine().Mode())

	v.Update(motion(72, 6))
	require.NotEmpty(t, rec.changes, "moves outside the rail still reach the machine")

	v.Update(release(72, 9))
	want := span(t, "2024-03-11", "2024-03-18")
	require.Len(t, rec.commits, 1)
	assert.True(t, rec.commits[0].Equal(want), "commit = %v, want %v", rec.commits[0], want)
}

func TestRangeView_PressOutsideRailIgnored(t *testing.T) {
	v, _ := newTestView(t)
	assert.Nil(t, v.Update(press(10, 3)))
	assert.False(t, v.Machine().Dragging())
}

func TestRangeView_SecondPressIgnored(t *testing.T) {
	v, _ := newTestView(t)
	v.Update(press(62, 0))
	v.Update(press(200, 0))
	assert.Equal(t, selector.MovingSelection, v.Machine().Mode())
}

func TestRangeView_EscapeCancelsCreate(t *testing.T) {
	v, rec := newTestView(t)
	v.Update(press(200, 0))
	v.Update(motion(230, 0))

	cmd := v.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.NotNil(t, cmd)
	assert.False(t, v.Machine().Dragging())

	v.Update(release(230, 0))
	assert.Empty(t, rec.commits)
}

func TestRangeView_EscapeKeepsMove(t *testing.T) {
	v, _ := newTestView(t)
	v.Update(press(62, 0))
	assert.Nil(t, v.Update(tea.KeyMsg{Type: tea.KeyEsc}))
	assert.True(t, v.Machine().Dragging())
}

func TestRangeView_ComparisonRemove(t *testing.T) {
	v, rec := newTestView(t)
	v.removeHit = func(tea.MouseMsg) bool { return true }

	// no comparison yet: the press falls through to the rail
	v.Update(press(300, 0))
	assert.Zero(t, rec.removed)
	v.Update(release(300, 0))

	p := v.Props()
	p.Comparison = selector.ComparisonPreviousPeriod
	v.SetProps(p)
	v.Update(press(300, 0))
	assert.Equal(t, 1, rec.removed)
	assert.False(t, v.Machine().Dragging())
}

func TestRangeView_FrameCoalescing(t *testing.T) {
	v, rec := newTestView(t, WithFrameInterval(16*time.Millisecond))
	now := day(t, "2024-06-01")
	v.now = func() time.Time { return now }

	v.Update(press(62, 0))
	v.Update(motion(63, 0))
	require.Len(t, rec.changes, 1, "first move runs immediately")

	cmd := v.Update(motion(64, 0))
	assert.NotNil(t, cmd, "held move schedules a frame")
	v.Update(motion(65, 0))
	assert.Len(t, rec.changes, 1, "moves inside the frame are held")

	v.Update(railFrameMsg{id: "rail-test", at: now.Add(16 * time.Millisecond)})
	require.Len(t, rec.changes, 2)
	assert.True(t, rec.changes[1].Equal(span(t, "2024-03-04", "2024-03-11")), "newest coordinate wins, got %v", rec.changes[1])

	v.Update(railFrameMsg{id: "other", at: now.Add(32 * time.Millisecond)})
	assert.Len(t, rec.changes, 2)
}

func TestRangeView_ReleaseNeverSkipped(t *testing.T) {
	v, rec := newTestView(t, WithFrameInterval(time.Hour))
	now := day(t, "2024-06-01")
	v.now = func() time.Time { return now }

	v.Update(press(62, 0))
	v.Update(motion(63, 0))
	v.Update(motion(70, 0))
	v.Update(release(72, 0))

	require.Len(t, rec.commits, 1)
	assert.True(t, rec.commits[0].Equal(span(t, "2024-03-11", "2024-03-18")), "commit = %v", rec.commits[0])
}

func TestRangeView_SetPropsNotifiesOnChange(t *testing.T) {
	v, rec := newTestView(t)
	sel, cmp := rec.selSeen, rec.cmpSeen

	v.SetProps(v.Props())
	assert.Equal(t, sel, rec.selSeen)
	assert.Equal(t, cmp, rec.cmpSeen)

	p := v.Props()
	p.Comparison = selector.ComparisonPreviousYear
	v.SetProps(p)
	assert.Equal(t, sel, rec.selSeen)
	assert.Equal(t, cmp+1, rec.cmpSeen)

	p.Value = span(t, "2024-04-01", "2024-05-01")
	v.SetProps(p)
	assert.Equal(t, sel+1, rec.selSeen)
}

func TestRangeView_HoverTracksIdlePointer(t *testing.T) {
	v, _ := newTestView(t)
	v.Update(motion(10, 0))
	assert.True(t, v.hasHover)
	assert.InDelta(t, 10.5, v.hover, 1e-9)

	v.Update(motion(10, 4))
	assert.False(t, v.hasHover)
}

func TestRangeView_Render(t *testing.T) {
	v, _ := newTestView(t)
	v.SetSummary(RangeSummary{
		Preset: "custom",
		Current: domain.Summary{Total: 120, Count: 3, ByCategory: map[string]float64{
			"groceries": 80, "rent": 40,
		}},
	})
	out := v.Render(RailWidthTotal(365), 40, false)
	assert.Contains(t, out, "2024-03-01 → 2024-03-07")
	assert.Contains(t, out, "groceries")
	assert.True(t, strings.Contains(out, "┃"), "handles rendered")
}

func TestRangeView_RenderWithoutLayout(t *testing.T) {
	v, _ := newTestView(t)
	p := v.Props()
	p.Width = 0
	v.SetProps(p)
	assert.NotPanics(t, func() { v.Render(80, 24, false) })
	assert.Nil(t, v.Update(press(10, 0)))
}

func TestRailWidth(t *testing.T) {
	if got := RailWidth(100, false); got != 92 {
		t.Errorf("RailWidth(100, false) = %d, want 92", got)
	}
	if got := RailWidth(RailWidthTotal(365), false); got != 365 {
		t.Errorf("RailWidth(RailWidthTotal(365)) = %d, want 365", got)
	}
	if got := RailWidth(2, false); got != 0 {
		t.Errorf("RailWidth(2, false) = %d, want 0", got)
	}
}
