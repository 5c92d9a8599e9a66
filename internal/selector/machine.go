package selector

import (
	"math"
	"time"
)

// DragMode is the state of the interaction machine.
type DragMode int

const (
	Idle DragMode = iota
	CreatingNewSelection
	MovingSelection
	ResizingStart
	ResizingEnd
)

func (m DragMode) String() string {
	switch m {
	case CreatingNewSelection:
		return "creating"
	case MovingSelection:
		return "moving"
	case ResizingStart:
		return "resizing-start"
	case ResizingEnd:
		return "resizing-end"
	default:
		return "idle"
	}
}

// Target is what a pointer offset hits on the rail.
type Target int

const (
	TargetRail Target = iota
	TargetBody
	TargetStartHandle
	TargetEndHandle
	TargetComparison
)

// EventKind distinguishes the updates a machine emits.
type EventKind int

const (
	// EventPreview is a create-drag candidate, for rendering only.
	EventPreview EventKind = iota
	// EventChange is a live update the caller should store.
	EventChange
	// EventCommit marks the end of a gesture or a keyboard edit.
	EventCommit
)

// Event is a proposed selection update.
type Event struct {
	Kind  EventKind
	Range Range
}

// StepEdge selects which edges a keyboard step moves.
type StepEdge int

const (
	StepBoth StepEdge = iota
	StepStart
	StepEnd
)

// Props is the caller-owned input of the selector. The machine reads it on
// every event and never mutates it. Width is the rail length in cells.
type Props struct {
	Scale      Scale
	Rail       Range
	Value      Range
	Unit       Unit
	Ceiling    time.Time
	Comparison ComparisonMode
	Width      float64
	Marker     time.Time
	ShowMarker bool
}

// Constraints returns the clamp bounds implied by p.
func (p Props) Constraints() Constraints {
	return Constraints{Unit: p.Unit, Rail: p.Rail, Ceiling: p.Ceiling}
}

// Normalized returns Value clamped into the current rail.
func (p Props) Normalized() Range {
	return Clamp(p.Value, p.Constraints())
}

// ComparisonRange returns the comparison interval for the normalized value.
func (p Props) ComparisonRange() (Range, bool) {
	return Comparison(p.Normalized(), p.Comparison, p.Rail)
}

const (
	DefaultFinalizeThreshold = 4
	DefaultHandleWidth       = 1
)

// Option configures a Machine.
type Option func(*Machine)

// WithFinalizeThreshold sets the minimum create-drag distance in cells.
func WithFinalizeThreshold(px float64) Option {
	return func(m *Machine) { m.threshold = px }
}

// WithHandleWidth sets the half-width of the resize hit zones.
func WithHandleWidth(px float64) Option {
	return func(m *Machine) { m.handle = px }
}

// Machine turns pointer and keyboard input into proposed selection updates.
// It holds only drag state; the selection itself arrives through Props.
type Machine struct {
	threshold float64
	handle    float64

	mode    DragMode
	sess    session
	origin  float64
	preview Range
	hasPrev bool
	live    Range
}

func NewMachine(opts ...Option) *Machine {
	m := &Machine{threshold: DefaultFinalizeThreshold, handle: DefaultHandleWidth}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

func (m *Machine) Mode() DragMode { return m.mode }

// Dragging reports whether a pointer gesture is in progress.
func (m *Machine) Dragging() bool { return m.mode != Idle }

// Preview returns the create-drag candidate, if any.
func (m *Machine) Preview() (Range, bool) {
	if m.mode != CreatingNewSelection || !m.hasPrev {
		return Range{}, false
	}
	return m.preview, true
}

// HitTest classifies offset x. Handle zones extend the handle width to
// either side of each edge; where they overlap the nearer edge wins and a
// tie goes to the end handle.
func (m *Machine) HitTest(p Props, x float64) Target {
	if !p.Rail.Valid() || p.Width <= 0 {
		return TargetRail
	}
	sel := p.Normalized()
	a := DateToOffset(sel.Start, p.Rail, p.Width)
	b := DateToOffset(sel.End, p.Rail, p.Width)
	h := m.handle

	inStart := x >= a-h && x < a+h
	inEnd := x >= b-h && x < b+h
	switch {
	case inStart && inEnd:
		if math.Abs(x-a) < math.Abs(x-b) {
			return TargetStartHandle
		}
		return TargetEndHandle
	case inStart:
		return TargetStartHandle
	case inEnd:
		return TargetEndHandle
	case x >= a && x < b:
		return TargetBody
	}

	if cmp, ok := p.ComparisonRange(); ok {
		ca := DateToOffset(cmp.Start, p.Rail, p.Width)
		cb := DateToOffset(cmp.End, p.Rail, p.Width)
		if x >= ca && x < cb {
			return TargetComparison
		}
	}
	return TargetRail
}

// PointerDown starts a gesture at x and returns the resulting mode. Presses
// during an active gesture, on the comparison box, or on a rail that has no
// layout yet are ignored.
func (m *Machine) PointerDown(p Props, x float64) DragMode {
	if m.mode != Idle || !p.Rail.Valid() || p.Width <= 0 {
		return m.mode
	}
	var mode DragMode
	switch m.HitTest(p, x) {
	case TargetComparison:
		return Idle
	case TargetBody:
		mode = MovingSelection
	case TargetStartHandle:
		mode = ResizingStart
	case TargetEndHandle:
		mode = ResizingEnd
	default:
		mode = CreatingNewSelection
	}
	m.mode = mode
	m.origin = x
	m.sess = beginSession(mode, p, x)
	m.live = p.Normalized()
	m.hasPrev = false
	return mode
}

// PointerMove updates the active gesture. Create drags emit a preview; the
// other modes emit a change whenever the candidate differs from the last
// emitted value.
func (m *Machine) PointerMove(p Props, x float64) []Event {
	if m.mode == Idle {
		return nil
	}
	r, ok := m.sess.move(p, x)
	if m.mode == CreatingNewSelection {
		m.hasPrev = ok
		if !ok {
			return nil
		}
		m.preview = r
		return []Event{{Kind: EventPreview, Range: r}}
	}
	if !ok || r.Equal(m.live) {
		return nil
	}
	m.live = r
	return []Event{{Kind: EventChange, Range: r}}
}

// PointerUp applies the final offset and ends the gesture.
func (m *Machine) PointerUp(p Props, x float64) []Event {
	if m.mode == Idle {
		return nil
	}
	defer m.Reset()

	events := m.PointerMove(p, x)
	if m.mode == CreatingNewSelection {
		if math.Abs(x-m.origin) < m.threshold || !m.hasPrev {
			return nil
		}
		return []Event{
			{Kind: EventChange, Range: m.preview},
			{Kind: EventCommit, Range: m.preview},
		}
	}
	return append(events, Event{Kind: EventCommit, Range: m.live})
}

// Cancel aborts a create drag. Move and resize edits are already live and
// cannot be cancelled.
func (m *Machine) Cancel() bool {
	if m.mode != CreatingNewSelection {
		return false
	}
	m.Reset()
	return true
}

// Reset returns the machine to Idle and drops all gesture state.
func (m *Machine) Reset() {
	m.mode = Idle
	m.sess = nil
	m.origin = 0
	m.preview = Range{}
	m.hasPrev = false
	m.live = Range{}
}

// Step moves the selection by one minimum unit in direction dir (-1 or +1).
// Keyboard edits commit immediately. Nothing is emitted while a pointer
// gesture is active or when the clamped result equals the current value.
func (m *Machine) Step(p Props, dir int, edge StepEdge) []Event {
	if m.mode != Idle || dir == 0 || !p.Rail.Valid() {
		return nil
	}
	sel := p.Normalized()
	n := dir * p.Unit.Days()
	c := p.Constraints()

	r := sel
	switch edge {
	case StepStart:
		r.Start = r.Start.AddDate(0, 0, n)
		r = anchorResize(r, EdgeStart, c)
	case StepEnd:
		r.End = r.End.AddDate(0, 0, n)
		r = anchorResize(r, EdgeEnd, c)
	default:
		r = Range{Start: r.Start.AddDate(0, 0, n), End: r.End.AddDate(0, 0, n)}
	}
	r = Clamp(r, c)
	if r.Equal(sel) || !r.Valid() {
		return nil
	}
	return []Event{
		{Kind: EventChange, Range: r},
		{Kind: EventCommit, Range: r},
	}
}

// Callbacks receive the updates a selector surface reports. Any may be nil.
type Callbacks struct {
	OnChange  func(Range)
	OnCommit  func(Range)
	OnPreview func(Range)
	// OnSelectionChange mirrors the current selection; ok is false when
	// there is none.
	OnSelectionChange func(r Range, ok bool)
	// OnComparisonChange mirrors the derived comparison interval.
	OnComparisonChange func(r Range, ok bool, mode ComparisonMode)
	// OnComparisonRemove fires when the comparison affordance is used.
	OnComparisonRemove func()
}

// Dispatch delivers events in order.
func Dispatch(events []Event, cb Callbacks) {
	for _, e := range events {
		var fn func(Range)
		switch e.Kind {
		case EventPreview:
			fn = cb.OnPreview
		case EventChange:
			fn = cb.OnChange
		case EventCommit:
			fn = cb.OnCommit
		}
		if fn != nil {
			fn(e.Range)
		}
	}
}
