package selector

import (
	"testing"
	"time"
	_ "time/tzdata"
)

func day(t testing.TB, s string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		t.Fatalf("parse %q: %v", s, err)
	}
	return d
}

func span(t testing.TB, start, end string) Range {
	t.Helper()
	return Range{Start: day(t, start), End: day(t, end)}
}

// zone loads a named location for the DST cases.
func zone(t testing.TB, name string) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation(name)
	if err != nil {
		t.Fatalf("load %q: %v", name, err)
	}
	return loc
}

func dayIn(t testing.TB, s string, loc *time.Location) time.Time {
	t.Helper()
	d, err := time.ParseInLocation("2006-01-02", s, loc)
	if err != nil {
		t.Fatalf("parse %q: %v", s, err)
	}
	return d
}

func spanIn(t testing.TB, start, end string, loc *time.Location) Range {
	t.Helper()
	return Range{Start: dayIn(t, start, loc), End: dayIn(t, end, loc)}
}

// atMidnight reports whether t is a midnight in its own location.
func atMidnight(t time.Time) bool {
	h, m, s := t.Clock()
	return h == 0 && m == 0 && s == 0 && t.Nanosecond() == 0
}
