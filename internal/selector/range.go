// Package selector implements the interactive time-range selector: pixel/date
// mapping, snapping and clamping rules, comparison intervals, axis ticks and
// the pointer/keyboard state machine. Everything here is pure and synchronous;
// rendering and input plumbing live in the ui packages.
package selector

import (
	"fmt"
	"time"
)

// Range is a half-open date interval [Start, End).
type Range struct {
	Start time.Time
	End   time.Time
}

// Duration returns End - Start as elapsed time. Across a DST change this
// differs from the wall-clock span; see WallSpan.
func (r Range) Duration() time.Duration {
	return r.End.Sub(r.Start)
}

// WallSpan returns End - Start measured on Start's wall clock, so every
// calendar day counts as 24h regardless of DST.
func (r Range) WallSpan() time.Duration {
	loc := r.Start.Location()
	return civil(r.End, loc).Sub(civil(r.Start, loc))
}

// Valid reports whether Start is strictly before End.
func (r Range) Valid() bool {
	return r.Start.Before(r.End)
}

// Contains reports whether t lies in [Start, End).
func (r Range) Contains(t time.Time) bool {
	return !t.Before(r.Start) && t.Before(r.End)
}

// Equal compares both endpoints as instants.
func (r Range) Equal(o Range) bool {
	return r.Start.Equal(o.Start) && r.End.Equal(o.End)
}

// Intersect returns the overlap of r and o. The second result is false when
// the overlap is empty.
func (r Range) Intersect(o Range) (Range, bool) {
	start := r.Start
	if o.Start.After(start) {
		start = o.Start
	}
	end := r.End
	if o.End.Before(end) {
		end = o.End
	}
	if !start.Before(end) {
		return Range{}, false
	}
	return Range{Start: start, End: end}, true
}

// LastDay returns the final calendar day covered by the range.
func (r Range) LastDay() time.Time {
	return Snap(r.End.Add(-time.Nanosecond), EdgeStart)
}

// Days returns the number of calendar days spanned, rounded to the nearest day.
func (r Range) Days() int {
	return int((r.WallSpan() + 12*time.Hour) / (24 * time.Hour))
}

func (r Range) String() string {
	return fmt.Sprintf("%s .. %s", r.Start.Format("2006-01-02"), r.End.Format("2006-01-02"))
}

// civil reads t's wall clock in loc and restates it in UTC, where every
// day is 24h long.
func civil(t time.Time, loc *time.Location) time.Time {
	t = t.In(loc)
	y, m, d := t.Date()
	hh, mm, ss := t.Clock()
	return time.Date(y, m, d, hh, mm, ss, t.Nanosecond(), time.UTC)
}

// fromCivil places a civil time back into loc.
func fromCivil(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.Date()
	hh, mm, ss := t.Clock()
	return time.Date(y, m, d, hh, mm, ss, t.Nanosecond(), loc)
}

// addWall moves t by d on its own wall clock. Midnight plus 24h is the
// next midnight even on a 23h or 25h day.
func addWall(t time.Time, d time.Duration) time.Time {
	loc := t.Location()
	return fromCivil(civil(t, loc).Add(d), loc)
}
