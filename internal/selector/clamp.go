package selector

import "time"

// Constraints bound every candidate selection.
type Constraints struct {
	Unit Unit
	Rail Range
	// Ceiling is the exclusive upper bound for End. Zero means none.
	Ceiling time.Time
}

// effectiveCeiling returns the ceiling when one is set.
func (c Constraints) effectiveCeiling() (time.Time, bool) {
	return c.Ceiling, !c.Ceiling.IsZero()
}

// satisfiable reports whether any interval fits the constraints: the rail
// is valid and a ceiling, if set, leaves room after the rail start.
func (c Constraints) satisfiable() bool {
	if !c.Rail.Valid() {
		return false
	}
	ceiling, ok := c.effectiveCeiling()
	return !ok || ceiling.After(c.Rail.Start)
}

// Clamp constrains a candidate selection:
//
//  1. widen End to the minimum unit span,
//  2. shift right onto the rail start,
//  3. shift left onto the rail end,
//  4. shift left under the ceiling, pinning Start to the rail start and
//     shortening the interval when there is not enough room.
//
// Spans and shifts are measured on the wall clock of r.Start's location,
// so calendar midnights stay midnights across DST changes. A selection
// longer than the rail becomes the whole rail. Unsatisfiable constraints
// (an invalid rail, or a ceiling at or before the rail start) leave r
// untouched.
func Clamp(r Range, c Constraints) Range {
	if !c.satisfiable() {
		return r
	}
	loc := r.Start.Location()
	start, end := civil(r.Start, loc), civil(r.End, loc)
	railStart, railEnd := civil(c.Rail.Start, loc), civil(c.Rail.End, loc)

	if minDur := c.Unit.Duration(); end.Sub(start) < minDur {
		end = start.Add(minDur)
	}
	if start.Before(railStart) {
		d := railStart.Sub(start)
		start, end = start.Add(d), end.Add(d)
	}
	if end.After(railEnd) {
		d := end.Sub(railEnd)
		start, end = start.Add(-d), end.Add(-d)
	}
	if start.Before(railStart) {
		start, end = railStart, railEnd
	}

	if ceiling, ok := c.effectiveCeiling(); ok {
		if ceiling = civil(ceiling, loc); end.After(ceiling) {
			dur := end.Sub(start)
			end = ceiling
			start = ceiling.Add(-dur)
			if start.Before(railStart) {
				start = railStart
				end = start.Add(dur)
				if end.After(ceiling) {
					end = ceiling
				}
			}
		}
	}
	return Range{Start: fromCivil(start, loc), End: fromCivil(end, loc)}
}
