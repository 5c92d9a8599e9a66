package selector

// session tracks one pointer gesture from press to release. move turns the
// current pointer offset into a snapped and clamped candidate.
type session interface {
	move(p Props, x float64) (Range, bool)
}

func beginSession(mode DragMode, p Props, x float64) session {
	snapshot := p.Normalized()
	switch mode {
	case MovingSelection:
		return &moveSession{origin: x, snapshot: snapshot}
	case ResizingStart:
		return &resizeSession{origin: x, snapshot: snapshot, edge: EdgeStart}
	case ResizingEnd:
		return &resizeSession{origin: x, snapshot: snapshot, edge: EdgeEnd}
	default:
		return &createSession{origin: x}
	}
}

type createSession struct {
	origin float64
}

func (s *createSession) move(p Props, x float64) (Range, bool) {
	lo, hi := s.origin, x
	if hi < lo {
		lo, hi = hi, lo
	}
	r := Range{
		Start: Snap(OffsetToDate(lo, p.Rail, p.Width), EdgeStart),
		End:   Snap(OffsetToDate(hi, p.Rail, p.Width), EdgeEnd),
	}
	r = Clamp(r, p.Constraints())
	return r, r.Valid()
}

type moveSession struct {
	origin   float64
	snapshot Range
}

func (s *moveSession) move(p Props, x float64) (Range, bool) {
	start := shiftByOffset(s.snapshot.Start, x-s.origin, p.Rail, p.Width)
	start = Snap(start, EdgeStart)
	r := Clamp(Range{Start: start, End: addWall(start, s.snapshot.WallSpan())}, p.Constraints())
	return r, r.Valid()
}

type resizeSession struct {
	origin   float64
	snapshot Range
	edge     Edge
}

func (s *resizeSession) move(p Props, x float64) (Range, bool) {
	r := s.snapshot
	dx := x - s.origin
	if s.edge == EdgeStart {
		r.Start = Snap(shiftByOffset(r.Start, dx, p.Rail, p.Width), EdgeStart)
	} else {
		r.End = Snap(shiftByOffset(r.End, dx, p.Rail, p.Width), EdgeEnd)
	}
	c := p.Constraints()
	r = Clamp(anchorResize(r, s.edge, c), c)
	return r, r.Valid()
}

// anchorResize limits the edited edge so that Clamp never has to move the
// opposite edge to satisfy the rail, the ceiling or the minimum duration.
func anchorResize(r Range, edge Edge, c Constraints) Range {
	if !c.satisfiable() {
		return r
	}
	minDur := c.Unit.Duration()
	switch edge {
	case EdgeStart:
		if r.Start.Before(c.Rail.Start) {
			r.Start = c.Rail.Start
		}
		if latest := addWall(r.End, -minDur); r.Start.After(latest) {
			r.Start = latest
		}
	case EdgeEnd:
		if r.End.After(c.Rail.End) {
			r.End = c.Rail.End
		}
		if ceiling, ok := c.effectiveCeiling(); ok && r.End.After(ceiling) {
			r.End = ceiling
		}
		if earliest := addWall(r.Start, minDur); r.End.Before(earliest) {
			r.End = earliest
		}
	}
	return r
}
