package selector

import "time"

// FitRail returns a month-aligned rail of the given extent that covers sel.
// When months divides a year the rail is aligned to calendar periods (a
// 12-month rail is a calendar year, a 3-month rail a quarter); otherwise it
// is the trailing window ending with the month of sel's last day. The rail
// grows backwards to whole months when sel starts before it.
func FitRail(sel Range, months int) Range {
	if !sel.Valid() {
		return sel
	}
	if months <= 0 {
		months = 12
	}
	loc := sel.Start.Location()
	last := sel.LastDay()
	y, m, _ := last.Date()

	first := int(m) - months + 1
	if 12%months == 0 {
		first = (int(m)-1)/months*months + 1
	}
	start := time.Date(y, time.Month(first), 1, 0, 0, 0, 0, loc)
	end := start.AddDate(0, months, 0)

	if sel.Start.Before(start) {
		sy, sm, _ := sel.Start.Date()
		start = time.Date(sy, sm, 1, 0, 0, 0, 0, loc)
	}
	return Range{Start: start, End: end}
}

// PanRail shifts a rail by whole months.
func PanRail(rail Range, months int) Range {
	return Range{
		Start: rail.Start.AddDate(0, months, 0),
		End:   rail.End.AddDate(0, months, 0),
	}
}
