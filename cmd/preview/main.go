// Command preview prints the range and buckets views for a fixed set of
// sample transactions, for eyeballing layout changes without a terminal UI.
package main

import (
	"flag"
	"fmt"
	"time"

	zone "github.com/lrstanley/bubblezone"

	"github.com/anomredux/timerail/internal/domain"
	"github.com/anomredux/timerail/internal/preset"
	"github.com/anomredux/timerail/internal/selector"
	"github.com/anomredux/timerail/internal/ui/views"
)

func main() {
	width := flag.Int("width", 100, "render width")
	cmpMode := flag.String("comparison", "previous_period", "comparison mode")
	flag.Parse()

	zone.NewGlobal()
	defer zone.Close()

	now := time.Date(2024, time.June, 15, 12, 0, 0, 0, time.UTC)
	sel, _ := preset.Resolve(preset.Last30Days, now)
	rail := selector.FitRail(sel, selector.ScaleQuarter.RailMonths())
	mode, err := selector.ParseComparison(*cmpMode)
	if err != nil {
		fmt.Println(err)
		return
	}

	entries := sampleEntries(now)

	rv := views.NewRangeView("preview-rail", selector.Callbacks{})
	rv.SetProps(selector.Props{
		Scale:      selector.ScaleQuarter,
		Rail:       rail,
		Value:      sel,
		Unit:       selector.UnitDay,
		Ceiling:    now.AddDate(0, 0, 1).Truncate(24 * time.Hour),
		Comparison: mode,
		Width:      float64(views.RailWidth(*width, false)),
		Marker:     now,
		ShowMarker: true,
	})
	summary := views.RangeSummary{Preset: preset.Last30Days, Current: domain.Summarize(entries, sel.Start, sel.End)}
	if cmp, ok := selector.Comparison(sel, mode, rail); ok {
		summary.Previous = domain.Summarize(entries, cmp.Start, cmp.End)
		summary.HasPrevious = true
	}
	rv.SetSummary(summary)
	fmt.Println(zone.Scan(rv.Render(*width, 30, false)))

	cadence := domain.AutoCadence(sel.Start, sel.End)
	bv := views.NewBucketsView()
	bv.SetData(domain.Aggregate(entries, sel.Start, sel.End, cadence, time.UTC), entries, cadence, true)
	fmt.Println(bv.Render(*width, 30, false))
}

// sampleEntries spreads a few categories over the 90 days before now.
func sampleEntries(now time.Time) []domain.Transaction {
	cats := []struct {
		name   string
		amount float64
		every  int
	}{
		{"groceries", -64.20, 3},
		{"transport", -12.80, 2},
		{"rent", -950, 30},
		{"salary", 2800, 30},
		{"dining", -38.50, 5},
	}
	var out []domain.Transaction
	for d := 0; d < 90; d++ {
		day := now.AddDate(0, 0, -d)
		for _, c := range cats {
			if d%c.every == 0 {
				out = append(out, domain.Transaction{
					ID:        fmt.Sprintf("%s-%d", c.name, d),
					Timestamp: day,
					Amount:    c.amount,
					Category:  c.name,
					Account:   "checking",
				})
			}
		}
	}
	return out
}
