package selector

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// yearProps lays 2024 out one cell per day.
func yearProps(t *testing.T, value Range) Props {
	return Props{
		Scale: ScaleYear,
		Rail:  span(t, "2024-01-01", "2024-12-31"),
		Value: value,
		Unit:  UnitDay,
		Width: 365,
	}
}

// recorder collects dispatched callbacks.
type recorder struct {
	changes  []Range
	commits  []Range
	previews []Range
}

func (r *recorder) callbacks() Callbacks {
	return Callbacks{
		OnChange:  func(v Range) { r.changes = append(r.changes, v) },
		OnCommit:  func(v Range) { r.commits = append(r.commits, v) },
		OnPreview: func(v Range) { r.previews = append(r.previews, v) },
	}
}

func TestHitTest(t *testing.T) {
	m := NewMachine()
	p := yearProps(t, span(t, "2024-11-01", "2024-12-01"))
	p.Comparison = ComparisonPreviousPeriod

	tests := []struct {
		x    float64
		want Target
	}{
		{10, TargetRail},
		{304, TargetStartHandle},
		{305, TargetStartHandle},
		{306, TargetBody},
		{320, TargetBody},
		{334, TargetEndHandle},
		{335, TargetEndHandle},
		{336, TargetRail},
		{280, TargetComparison},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, m.HitTest(p, tt.x), "HitTest(%v)", tt.x)
	}
}

func TestSmallCreateDragDiscarded(t *testing.T) {
	m := NewMachine()
	p := yearProps(t, span(t, "2024-06-01", "2024-07-01"))
	rec := &recorder{}

	require.Equal(t, CreatingNewSelection, m.PointerDown(p, 10))
	Dispatch(m.PointerMove(p, 11), rec.callbacks())
	Dispatch(m.PointerUp(p, 12), rec.callbacks())

	assert.Empty(t, rec.changes)
	assert.Empty(t, rec.commits)
	assert.Equal(t, Idle, m.Mode())
}

func TestCreateDragCommits(t *testing.T) {
	m := NewMachine()
	p := yearProps(t, span(t, "2024-06-01", "2024-07-01"))
	rec := &recorder{}

	m.PointerDown(p, 20)
	Dispatch(m.PointerMove(p, 15), rec.callbacks())
	Dispatch(m.PointerMove(p, 10), rec.callbacks())

	preview, ok := m.Preview()
	require.True(t, ok)
	assert.Equal(t, span(t, "2024-01-11", "2024-01-21"), preview)
	assert.Len(t, rec.previews, 2)
	assert.Empty(t, rec.changes, "previews must not reach the stored selection")

	Dispatch(m.PointerUp(p, 10), rec.callbacks())

	want := span(t, "2024-01-11", "2024-01-21")
	assert.Equal(t, []Range{want}, rec.changes)
	assert.Equal(t, []Range{want}, rec.commits)
	_, ok = m.Preview()
	assert.False(t, ok)
}

func TestEscapeCancelsCreate(t *testing.T) {
	m := NewMachine()
	p := yearProps(t, span(t, "2024-06-01", "2024-07-01"))

	m.PointerDown(p, 10)
	m.PointerMove(p, 40)
	assert.True(t, m.Cancel())
	assert.Equal(t, Idle, m.Mode())
	_, ok := m.Preview()
	assert.False(t, ok)
	assert.Nil(t, m.PointerUp(p, 40))
}

func TestEscapeDoesNotCancelMove(t *testing.T) {
	m := NewMachine()
	p := yearProps(t, span(t, "2024-06-01", "2024-07-01"))

	require.Equal(t, MovingSelection, m.PointerDown(p, 160))
	assert.False(t, m.Cancel())
	assert.Equal(t, MovingSelection, m.Mode())
}

func TestMoveIsLive(t *testing.T) {
	m := NewMachine()
	p := yearProps(t, span(t, "2024-11-01", "2024-12-01"))
	rec := &recorder{}

	require.Equal(t, MovingSelection, m.PointerDown(p, 320))
	Dispatch(m.PointerMove(p, 325), rec.callbacks())
	Dispatch(m.PointerMove(p, 325), rec.callbacks())
	Dispatch(m.PointerMove(p, 330), rec.callbacks())
	Dispatch(m.PointerUp(p, 330), rec.callbacks())

	assert.Equal(t, []Range{
		span(t, "2024-11-06", "2024-12-06"),
		span(t, "2024-11-11", "2024-12-11"),
	}, rec.changes)
	assert.Equal(t, []Range{span(t, "2024-11-11", "2024-12-11")}, rec.commits)
}

func TestFinalMoveAppliedOnRelease(t *testing.T) {
	m := NewMachine()
	p := yearProps(t, span(t, "2024-11-01", "2024-12-01"))
	rec := &recorder{}

	m.PointerDown(p, 320)
	Dispatch(m.PointerUp(p, 340), rec.callbacks())

	want := span(t, "2024-11-21", "2024-12-21")
	assert.Equal(t, []Range{want}, rec.changes)
	assert.Equal(t, []Range{want}, rec.commits)
}

func TestResizeEndClampsToRail(t *testing.T) {
	m := NewMachine()
	p := yearProps(t, span(t, "2024-11-01", "2024-12-01"))
	rec := &recorder{}

	require.Equal(t, ResizingEnd, m.PointerDown(p, 335))
	Dispatch(m.PointerMove(p, 400), rec.callbacks())
	Dispatch(m.PointerUp(p, 520), rec.callbacks())

	require.Len(t, rec.commits, 1)
	assert.Equal(t, day(t, "2024-12-31"), rec.commits[0].End)
	assert.Equal(t, day(t, "2024-11-01"), rec.commits[0].Start)
}

func TestResizeStartKeepsEnd(t *testing.T) {
	m := NewMachine()
	p := yearProps(t, span(t, "2024-11-01", "2024-12-01"))
	rec := &recorder{}

	require.Equal(t, ResizingStart, m.PointerDown(p, 305))
	Dispatch(m.PointerUp(p, 360), rec.callbacks())

	require.Len(t, rec.commits, 1)
	assert.Equal(t, span(t, "2024-11-30", "2024-12-01"), rec.commits[0])
}

func TestResizeRespectsCeiling(t *testing.T) {
	m := NewMachine()
	p := yearProps(t, span(t, "2024-06-01", "2024-06-10"))
	p.Ceiling = day(t, "2024-06-15")
	rec := &recorder{}

	require.Equal(t, ResizingEnd, m.PointerDown(p, 161))
	Dispatch(m.PointerUp(p, 300), rec.callbacks())

	require.Len(t, rec.commits, 1)
	assert.Equal(t, span(t, "2024-06-01", "2024-06-15"), rec.commits[0])
}

func TestPointerDownIgnoredWhileDragging(t *testing.T) {
	m := NewMachine()
	p := yearProps(t, span(t, "2024-06-01", "2024-07-01"))

	require.Equal(t, CreatingNewSelection, m.PointerDown(p, 10))
	assert.Equal(t, CreatingNewSelection, m.PointerDown(p, 160))
	assert.True(t, m.Dragging())
}

func TestPointerDownOnComparisonIgnored(t *testing.T) {
	m := NewMachine()
	p := yearProps(t, span(t, "2024-11-01", "2024-12-01"))
	p.Comparison = ComparisonPreviousPeriod

	assert.Equal(t, Idle, m.PointerDown(p, 280))
	assert.False(t, m.Dragging())
}

func TestPointerDownWithoutLayout(t *testing.T) {
	m := NewMachine()
	p := yearProps(t, span(t, "2024-11-01", "2024-12-01"))
	p.Width = 0

	assert.Equal(t, Idle, m.PointerDown(p, 3))
	assert.Nil(t, m.PointerMove(p, 10))
}

func TestStep(t *testing.T) {
	sel := span(t, "2024-03-01", "2024-03-08")

	tests := []struct {
		name  string
		value Range
		unit  Unit
		dir   int
		edge  StepEdge
		want  Range
		none  bool
	}{
		{name: "shift right", value: sel, dir: 1, want: span(t, "2024-03-02", "2024-03-09")},
		{name: "shift left", value: sel, dir: -1, want: span(t, "2024-02-29", "2024-03-07")},
		{name: "start only", value: sel, dir: 1, edge: StepStart, want: span(t, "2024-03-02", "2024-03-08")},
		{name: "end only", value: sel, dir: 1, edge: StepEnd, want: span(t, "2024-03-01", "2024-03-09")},
		{name: "week step", value: sel, unit: UnitWeek, dir: 1, want: span(t, "2024-03-08", "2024-03-15")},
		{name: "at rail end", value: span(t, "2024-12-01", "2024-12-31"), dir: 1, none: true},
		{name: "start cannot pass minimum", value: span(t, "2024-03-01", "2024-03-02"), dir: 1, edge: StepStart, none: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMachine()
			p := yearProps(t, tt.value)
			p.Unit = tt.unit
			events := m.Step(p, tt.dir, tt.edge)
			if tt.none {
				assert.Empty(t, events)
				return
			}
			require.Len(t, events, 2)
			assert.Equal(t, Event{Kind: EventChange, Range: tt.want}, events[0])
			assert.Equal(t, Event{Kind: EventCommit, Range: tt.want}, events[1])
		})
	}
}

// nyYearProps lays 2024 out one cell per day in a zone with DST.
func nyYearProps(t *testing.T, value Range) Props {
	ny := zone(t, "America/New_York")
	return Props{
		Scale: ScaleYear,
		Rail:  spanIn(t, "2024-01-01", "2024-12-31", ny),
		Value: value,
		Unit:  UnitDay,
		Width: 365,
	}
}

func TestStepAcrossDST(t *testing.T) {
	ny := zone(t, "America/New_York")

	tests := []struct {
		name  string
		value Range
		edge  StepEdge
		want  Range
	}{
		{"onto spring-forward day", spanIn(t, "2024-03-09", "2024-03-10", ny), StepBoth, spanIn(t, "2024-03-10", "2024-03-11", ny)},
		{"off spring-forward day", spanIn(t, "2024-03-10", "2024-03-11", ny), StepBoth, spanIn(t, "2024-03-11", "2024-03-12", ny)},
		{"end over the change", spanIn(t, "2024-03-01", "2024-03-10", ny), StepEnd, spanIn(t, "2024-03-01", "2024-03-11", ny)},
		{"fall-back day", spanIn(t, "2024-11-02", "2024-11-03", ny), StepBoth, spanIn(t, "2024-11-03", "2024-11-04", ny)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMachine()
			events := m.Step(nyYearProps(t, tt.value), 1, tt.edge)
			require.Len(t, events, 2)
			for _, e := range events {
				assert.True(t, e.Range.Equal(tt.want), "%v: got %v .. %v, want %v", e.Kind, e.Range.Start, e.Range.End, tt.want)
				assert.True(t, atMidnight(e.Range.Start) && atMidnight(e.Range.End))
			}
		})
	}
}

func TestMoveAcrossDST(t *testing.T) {
	ny := zone(t, "America/New_York")
	m := NewMachine()
	p := nyYearProps(t, spanIn(t, "2024-03-05", "2024-03-12", ny))
	rec := &recorder{}

	require.Equal(t, MovingSelection, m.PointerDown(p, 67))
	Dispatch(m.PointerUp(p, 77), rec.callbacks())

	want := spanIn(t, "2024-03-15", "2024-03-22", ny)
	require.Len(t, rec.commits, 1)
	got := rec.commits[0]
	assert.True(t, got.Equal(want), "commit = %v .. %v, want %v", got.Start, got.End, want)
	assert.Equal(t, 7, got.Days())
}

func TestStepIgnoredWhileDragging(t *testing.T) {
	m := NewMachine()
	p := yearProps(t, span(t, "2024-06-01", "2024-07-01"))

	m.PointerDown(p, 10)
	assert.Nil(t, m.Step(p, 1, StepBoth))
}

// TestOperationSequenceProperty feeds random gestures through the machine
// with the caller storing every change, and checks the stored selection
// stays ordered and on the rail.
func TestOperationSequenceProperty(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("selection stays ordered and bounded", prop.ForAll(
		func(ops []int) bool {
			m := NewMachine()
			p := yearProps(t, span(t, "2024-06-01", "2024-07-01"))
			p.Ceiling = day(t, "2024-11-15")
			ok := true
			store := Callbacks{
				OnChange: func(r Range) {
					p.Value = r
					if !r.Valid() || r.Start.Before(p.Rail.Start) || r.End.After(p.Ceiling) {
						ok = false
					}
				},
			}

			for _, op := range ops {
				x := float64(op/8%400) - 20
				switch op % 8 {
				case 0:
					Dispatch(m.Step(p, 1, StepBoth), store)
				case 1:
					Dispatch(m.Step(p, -1, StepStart), store)
				case 2:
					Dispatch(m.Step(p, 1, StepEnd), store)
				case 3:
					m.PointerDown(p, x)
				case 4, 5:
					Dispatch(m.PointerMove(p, x), store)
				case 6:
					Dispatch(m.PointerUp(p, x), store)
				case 7:
					m.Cancel()
				}
			}
			return ok && p.Normalized().Valid()
		},
		gen.SliceOf(gen.IntRange(0, 4000)),
	))

	properties.TestingRun(t)
}
