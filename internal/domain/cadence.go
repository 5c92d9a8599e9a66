package domain

import (
	"fmt"
	"strings"
	"time"
)

// Cadence is the bucket size used by Aggregate.
type Cadence string

const (
	CadenceDay     Cadence = "day"
	CadenceMonth   Cadence = "month"
	CadenceQuarter Cadence = "quarter"
	CadenceYear    Cadence = "year"
)

var cadences = []Cadence{CadenceDay, CadenceMonth, CadenceQuarter, CadenceYear}

// ParseCadence accepts "auto" as well as the cadence names; auto returns
// the empty cadence, which callers resolve with AutoCadence.
func ParseCadence(s string) (Cadence, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" || s == "auto" {
		return "", nil
	}
	for _, c := range cadences {
		if string(c) == s {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown cadence %q: must be one of auto, day, month, quarter, year", s)
}

// Next cycles day -> month -> quarter -> year -> day.
func (c Cadence) Next() Cadence {
	for i, cc := range cadences {
		if cc == c {
			return cadences[(i+1)%len(cadences)]
		}
	}
	return CadenceDay
}

// AutoCadence picks a cadence that keeps the bucket count readable.
func AutoCadence(start, end time.Time) Cadence {
	days := end.Sub(start).Hours() / 24
	switch {
	case days <= 62:
		return CadenceDay
	case days <= 731:
		return CadenceMonth
	default:
		return CadenceQuarter
	}
}

// periodStart truncates t to the start of its cadence period in t's location.
func (c Cadence) periodStart(t time.Time) time.Time {
	loc := t.Location()
	switch c {
	case CadenceMonth:
		return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, loc)
	case CadenceQuarter:
		q := (int(t.Month()) - 1) / 3
		return time.Date(t.Year(), time.Month(q*3+1), 1, 0, 0, 0, 0, loc)
	case CadenceYear:
		return time.Date(t.Year(), time.January, 1, 0, 0, 0, 0, loc)
	default:
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
	}
}

func (c Cadence) next(t time.Time) time.Time {
	switch c {
	case CadenceMonth:
		return t.AddDate(0, 1, 0)
	case CadenceQuarter:
		return t.AddDate(0, 3, 0)
	case CadenceYear:
		return t.AddDate(1, 0, 0)
	default:
		return t.AddDate(0, 0, 1)
	}
}

// Label formats the period containing t.
func (c Cadence) Label(t time.Time) string {
	switch c {
	case CadenceMonth:
		return t.Format("2006-01")
	case CadenceQuarter:
		return fmt.Sprintf("%d-Q%d", t.Year(), (int(t.Month())-1)/3+1)
	case CadenceYear:
		return t.Format("2006")
	default:
		return t.Format("2006-01-02")
	}
}
