package domain

import (
	"math"
	"sort"
	"time"
)

// Bucket is one cadence period of an aggregated range, clipped to the range.
type Bucket struct {
	Label string
	Start time.Time
	End   time.Time
	Total float64
	Count int
}

// Aggregate buckets entries in [start, end) by cadence in tz. Every period
// overlapping the range gets a bucket, including empty ones, so the series
// has no gaps.
func Aggregate(entries []Transaction, start, end time.Time, cadence Cadence, tz *time.Location) []Bucket {
	start, end = start.In(tz), end.In(tz)
	if !start.Before(end) {
		return nil
	}
	if cadence == "" {
		cadence = AutoCadence(start, end)
	}

	var buckets []Bucket
	for p := cadence.periodStart(start); p.Before(end); p = cadence.next(p) {
		b := Bucket{Label: cadence.Label(p), Start: p, End: cadence.next(p)}
		if b.Start.Before(start) {
			b.Start = start
		}
		if b.End.After(end) {
			b.End = end
		}
		buckets = append(buckets, b)
	}

	for _, e := range entries {
		local := e.Timestamp.In(tz)
		if local.Before(start) || !local.Before(end) {
			continue
		}
		// buckets are contiguous and ascending
		i := sort.Search(len(buckets), func(i int) bool {
			return local.Before(buckets[i].End)
		})
		if i < len(buckets) {
			buckets[i].Total += e.Amount
			buckets[i].Count++
		}
	}
	return buckets
}

// Summary totals a range of transactions.
type Summary struct {
	Total      float64
	Count      int
	ByCategory map[string]float64
}

// CategoryTotal is one row of Summary.Categories.
type CategoryTotal struct {
	Category string
	Total    float64
}

// Summarize totals entries in [start, end).
func Summarize(entries []Transaction, start, end time.Time) Summary {
	s := Summary{ByCategory: make(map[string]float64)}
	for _, e := range FilterByRange(entries, start, end) {
		s.Total += e.Amount
		s.Count++
		cat := e.Category
		if cat == "" {
			cat = "uncategorized"
		}
		s.ByCategory[cat] += e.Amount
	}
	return s
}

// Categories returns category totals by descending magnitude, then name.
func (s Summary) Categories() []CategoryTotal {
	result := make([]CategoryTotal, 0, len(s.ByCategory))
	for c, t := range s.ByCategory {
		result = append(result, CategoryTotal{Category: c, Total: t})
	}
	sort.Slice(result, func(i, j int) bool {
		a, b := math.Abs(result[i].Total), math.Abs(result[j].Total)
		if a != b {
			return a > b
		}
		return result[i].Category < result[j].Category
	})
	return result
}

// Change returns the percentage change from prev to cur. It is undefined
// when prev is zero.
func Change(cur, prev float64) (float64, bool) {
	if prev == 0 {
		return 0, false
	}
	return (cur - prev) / math.Abs(prev) * 100, true
}
