// Package preset resolves named periods such as "month_to_date" into
// concrete half-open date ranges.
package preset

import (
	"errors"
	"fmt"
	"time"

	"github.com/anomredux/timerail/internal/selector"
)

const (
	Today         = "today"
	Yesterday     = "yesterday"
	Last7Days     = "last_7_days"
	Last30Days    = "last_30_days"
	MonthToDate   = "month_to_date"
	LastMonth     = "last_month"
	QuarterToDate = "quarter_to_date"
	YearToDate    = "year_to_date"
	LastYear      = "last_year"
	Custom        = "custom"
)

var (
	// ErrCustom is returned for the custom preset, which has no fixed range.
	ErrCustom = errors.New("custom preset has no fixed range")
	// ErrUnknown is returned for names that are not presets.
	ErrUnknown = errors.New("unknown preset")
)

// order is the cycle order used by Next. Custom is not part of it.
var order = []string{
	Today, Yesterday, Last7Days, Last30Days,
	MonthToDate, LastMonth, QuarterToDate, YearToDate, LastYear,
}

// Names returns all preset names including custom.
func Names() []string {
	names := make([]string, 0, len(order)+1)
	names = append(names, order...)
	return append(names, Custom)
}

// Valid reports whether name is a known preset.
func Valid(name string) bool {
	if name == Custom {
		return true
	}
	for _, n := range order {
		if n == name {
			return true
		}
	}
	return false
}

// Resolve returns the range for name as seen at now, in now's location.
// Ranges are half-open, so "to date" presets end at tomorrow's midnight.
func Resolve(name string, now time.Time) (selector.Range, error) {
	loc := now.Location()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)
	tomorrow := today.AddDate(0, 0, 1)
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, loc)
	yearStart := time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, loc)

	var r selector.Range
	switch name {
	case Today:
		r = selector.Range{Start: today, End: tomorrow}
	case Yesterday:
		r = selector.Range{Start: today.AddDate(0, 0, -1), End: today}
	case Last7Days:
		r = selector.Range{Start: today.AddDate(0, 0, -6), End: tomorrow}
	case Last30Days:
		r = selector.Range{Start: today.AddDate(0, 0, -29), End: tomorrow}
	case MonthToDate:
		r = selector.Range{Start: monthStart, End: tomorrow}
	case LastMonth:
		r = selector.Range{Start: monthStart.AddDate(0, -1, 0), End: monthStart}
	case QuarterToDate:
		q := (int(now.Month()) - 1) / 3
		start := time.Date(now.Year(), time.Month(q*3+1), 1, 0, 0, 0, 0, loc)
		r = selector.Range{Start: start, End: tomorrow}
	case YearToDate:
		r = selector.Range{Start: yearStart, End: tomorrow}
	case LastYear:
		r = selector.Range{Start: yearStart.AddDate(-1, 0, 0), End: yearStart}
	case Custom:
		return selector.Range{}, ErrCustom
	default:
		return selector.Range{}, fmt.Errorf("%w: %q", ErrUnknown, name)
	}
	return r, nil
}

// Next returns the preset after name in cycle order. Custom and unknown
// names restart the cycle.
func Next(name string) string {
	for i, n := range order {
		if n == name {
			return order[(i+1)%len(order)]
		}
	}
	return order[0]
}

// Match returns the preset whose range at now equals r, or Custom.
func Match(r selector.Range, now time.Time) string {
	for _, n := range order {
		if pr, err := Resolve(n, now); err == nil && pr.Equal(r) {
			return n
		}
	}
	return Custom
}
