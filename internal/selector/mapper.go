package selector

import (
	"math"
	"time"
)

// DateToOffset maps date linearly from [rail.Start, rail.End] onto
// [0, width]. Dates outside the rail extrapolate; nothing is clamped.
// A zero width or empty rail maps everything to 0.
func DateToOffset(date time.Time, rail Range, width float64) float64 {
	span := rail.Duration()
	if width <= 0 || span <= 0 {
		return 0
	}
	return float64(date.Sub(rail.Start)) * width / float64(span)
}

// OffsetToDate is the inverse of DateToOffset. A zero width or empty rail
// maps every offset to rail.Start.
func OffsetToDate(px float64, rail Range, width float64) time.Time {
	span := rail.Duration()
	if width <= 0 || span <= 0 {
		return rail.Start
	}
	return rail.Start.Add(time.Duration(math.Round(float64(span) * px / width)))
}

// shiftByOffset moves t by dx pixels along the rail.
func shiftByOffset(t time.Time, dx float64, rail Range, width float64) time.Time {
	if width <= 0 || !rail.Valid() || dx == 0 {
		return t
	}
	return OffsetToDate(DateToOffset(t, rail, width)+dx, rail, width)
}
