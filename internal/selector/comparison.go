package selector

import "time"

// PreviousPeriod returns the interval of equal calendar length that ends
// where sel starts.
func PreviousPeriod(sel Range) Range {
	return Range{Start: addWall(sel.Start, -sel.WallSpan()), End: sel.Start}
}

// PreviousYear moves both endpoints back one calendar year. Feb 29 lands
// on Feb 28.
func PreviousYear(sel Range) Range {
	return Range{Start: yearBefore(sel.Start), End: yearBefore(sel.End)}
}

func yearBefore(t time.Time) time.Time {
	y, m, d := t.Date()
	if m == time.February && d == 29 {
		d = 28
	}
	return time.Date(y-1, m, d, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

// Comparison derives the comparison interval for mode, clipped to the
// rail. The second result is false when the mode is off or nothing of the
// interval remains on the rail.
func Comparison(sel Range, mode ComparisonMode, rail Range) (Range, bool) {
	if !sel.Valid() || !rail.Valid() {
		return Range{}, false
	}
	var r Range
	switch mode {
	case ComparisonPreviousPeriod:
		r = PreviousPeriod(sel)
	case ComparisonPreviousYear:
		r = PreviousYear(sel)
	default:
		return Range{}, false
	}
	return r.Intersect(rail)
}
