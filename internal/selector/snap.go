package selector

import "time"

// Edge says which side of an interval a date belongs to.
type Edge int

const (
	EdgeStart Edge = iota
	EdgeEnd
)

// Snap rounds t to a calendar-day boundary in t's location. Start edges
// truncate to midnight; end edges round up to the next midnight unless t
// already sits on one, so a snapped end never falls short of what the
// pointer indicated.
func Snap(t time.Time, edge Edge) time.Time {
	y, m, d := t.Date()
	midnight := time.Date(y, m, d, 0, 0, 0, 0, t.Location())
	if edge == EdgeEnd && midnight.Before(t) {
		return midnight.AddDate(0, 0, 1)
	}
	return midnight
}

// SnapRange snaps both edges of r.
func SnapRange(r Range) Range {
	return Range{Start: Snap(r.Start, EdgeStart), End: Snap(r.End, EdgeEnd)}
}
