package selector

import (
	"fmt"
	"strconv"
	"time"
)

// TickKind ranks axis marks from least to most significant.
type TickKind int

const (
	TickMinor TickKind = iota
	TickMajor
	TickMonth
	TickYear
)

// Tick is a single axis mark. Label may be empty.
type Tick struct {
	Date  time.Time
	Kind  TickKind
	Label string
}

// GenerateTicks returns the ticks inside [rail.Start, rail.End], ascending.
func GenerateTicks(rail Range, scale Scale) []Tick {
	if !rail.Valid() {
		return nil
	}
	switch scale {
	case ScaleMonth:
		return dayTicks(rail)
	case ScaleQuarter:
		return monthTicks(rail, false)
	default:
		return monthTicks(rail, true)
	}
}

func monthTicks(rail Range, quarters bool) []Tick {
	y, m, _ := rail.Start.Date()
	t := time.Date(y, m, 1, 0, 0, 0, 0, rail.Start.Location())
	if t.Before(rail.Start) {
		t = t.AddDate(0, 1, 0)
	}

	var ticks []Tick
	for ; !t.After(rail.End); t = t.AddDate(0, 1, 0) {
		tick := Tick{Date: t, Kind: TickMonth, Label: t.Format("Jan")}
		if quarters {
			switch {
			case t.Month() == time.January:
				tick.Kind = TickYear
				tick.Label = t.Format("2006")
			case (t.Month()-1)%3 == 0:
				tick.Kind = TickMajor
				tick.Label = fmt.Sprintf("Q%d", (t.Month()-1)/3+1)
			}
		}
		ticks = append(ticks, tick)
	}
	return ticks
}

func dayTicks(rail Range) []Tick {
	var ticks []Tick
	for t := Snap(rail.Start, EdgeEnd); !t.After(rail.End); t = t.AddDate(0, 0, 1) {
		tick := Tick{Date: t, Kind: TickMinor}
		if t.Weekday() == time.Sunday {
			tick.Kind = TickMajor
		}
		// every fifth day keeps labels from colliding
		if day := t.Day(); (day-1)%5 == 0 {
			tick.Label = strconv.Itoa(day)
			if day == 1 {
				tick.Label = t.Format("Jan")
			}
		}
		ticks = append(ticks, tick)
	}
	return ticks
}
