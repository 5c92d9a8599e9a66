package selector

import (
	"fmt"
	"strings"
	"time"
)

// Unit is the minimum selectable duration and the keyboard step size.
type Unit int

const (
	UnitDay Unit = iota
	UnitWeek
	UnitMonth
	UnitQuarter
)

var unitNames = map[Unit]string{
	UnitDay:     "day",
	UnitWeek:    "week",
	UnitMonth:   "month",
	UnitQuarter: "quarter",
}

// Days returns the approximate length of the unit in calendar days.
func (u Unit) Days() int {
	switch u {
	case UnitWeek:
		return 7
	case UnitMonth:
		return 30
	case UnitQuarter:
		return 90
	default:
		return 1
	}
}

// Duration returns the minimum selection span for the unit as wall-clock
// time: Days() calendar days of 24h each.
func (u Unit) Duration() time.Duration {
	return time.Duration(u.Days()) * 24 * time.Hour
}

func (u Unit) String() string {
	if s, ok := unitNames[u]; ok {
		return s
	}
	return "day"
}

// ParseUnit maps a config value such as "week" to a Unit.
func ParseUnit(s string) (Unit, error) {
	for u, name := range unitNames {
		if strings.EqualFold(s, name) {
			return u, nil
		}
	}
	return UnitDay, fmt.Errorf("unknown minimum unit %q: must be one of day, week, month, quarter", s)
}

// Scale controls tick density on the rail.
type Scale int

const (
	ScaleMonth Scale = iota
	ScaleQuarter
	ScaleYear
)

var scaleNames = map[Scale]string{
	ScaleMonth:   "month",
	ScaleQuarter: "quarter",
	ScaleYear:    "year",
}

// RailMonths is the default rail extent for the scale.
func (s Scale) RailMonths() int {
	switch s {
	case ScaleMonth:
		return 1
	case ScaleQuarter:
		return 3
	default:
		return 12
	}
}

// PanMonths is how far one pan step moves the rail.
func (s Scale) PanMonths() int {
	switch s {
	case ScaleYear:
		return 3
	default:
		return 1
	}
}

func (s Scale) String() string {
	if n, ok := scaleNames[s]; ok {
		return n
	}
	return "year"
}

// ParseScale maps a config value such as "quarter" to a Scale.
func ParseScale(s string) (Scale, error) {
	for sc, name := range scaleNames {
		if strings.EqualFold(s, name) {
			return sc, nil
		}
	}
	return ScaleYear, fmt.Errorf("unknown scale %q: must be one of month, quarter, year", s)
}

// ComparisonMode selects the derived comparison interval.
type ComparisonMode int

const (
	ComparisonOff ComparisonMode = iota
	ComparisonPreviousPeriod
	ComparisonPreviousYear
)

var comparisonNames = map[ComparisonMode]string{
	ComparisonOff:            "off",
	ComparisonPreviousPeriod: "previous_period",
	ComparisonPreviousYear:   "previous_year",
}

// Next cycles Off -> PreviousPeriod -> PreviousYear -> Off.
func (c ComparisonMode) Next() ComparisonMode {
	return (c + 1) % 3
}

func (c ComparisonMode) String() string {
	if n, ok := comparisonNames[c]; ok {
		return n
	}
	return "off"
}

// ParseComparison maps a config value such as "previous_year" to a mode.
func ParseComparison(s string) (ComparisonMode, error) {
	for m, name := range comparisonNames {
		if strings.EqualFold(s, name) {
			return m, nil
		}
	}
	return ComparisonOff, fmt.Errorf("unknown comparison %q: must be one of off, previous_period, previous_year", s)
}
