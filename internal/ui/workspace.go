package ui

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/anomredux/timerail/internal/config"
	"github.com/anomredux/timerail/internal/domain"
	"github.com/anomredux/timerail/internal/preset"
	"github.com/anomredux/timerail/internal/selector"
	"github.com/anomredux/timerail/internal/ui/views"
)

// workspace is the caller-owned selector state plus everything derived
// from the committed range. The range view's callbacks write into it, so
// it lives behind a pointer shared by every copy of App.
type workspace struct {
	tz  *time.Location
	log *slog.Logger
	now func() time.Time

	entries []domain.Transaction

	rail       selector.Range
	value      selector.Range
	preset     string
	comparison selector.ComparisonMode
	scale      selector.Scale
	unit       selector.Unit
	railMonths int
	maxDate    string
	ceiling    time.Time
	showMarker bool
	width      float64

	cadence  domain.Cadence // empty means auto
	summary  domain.Summary
	previous domain.Summary
	hasPrev  bool
	buckets  []domain.Bucket
	commits  int
}

func newWorkspace(cfg config.Config, now func() time.Time, log *slog.Logger) (*workspace, error) {
	w := &workspace{now: now, log: log}
	if err := w.configure(cfg); err != nil {
		return nil, err
	}
	if err := w.applyPreset(cfg.Selector.Preset); err != nil {
		return nil, err
	}
	return w, nil
}

// configure applies the selector and timezone settings. The current value
// is kept and re-clamped into the new constraints.
func (w *workspace) configure(cfg config.Config) error {
	tz, err := cfg.Location()
	if err != nil {
		return err
	}
	scale, err := selector.ParseScale(cfg.Selector.Scale)
	if err != nil {
		return fmt.Errorf("selector.scale: %w", err)
	}
	unit, err := selector.ParseUnit(cfg.Selector.MinimumUnit)
	if err != nil {
		return fmt.Errorf("selector.minimum_unit: %w", err)
	}
	cmp, err := selector.ParseComparison(cfg.Selector.Comparison)
	if err != nil {
		return fmt.Errorf("selector.comparison: %w", err)
	}
	cadence, err := domain.ParseCadence(cfg.Selector.Cadence)
	if err != nil {
		return fmt.Errorf("selector.cadence: %w", err)
	}

	w.tz = tz
	w.scale = scale
	w.unit = unit
	w.comparison = cmp
	w.cadence = cadence
	w.railMonths = cfg.Selector.RailMonths
	w.maxDate = cfg.Selector.MaxDate
	w.showMarker = cfg.Selector.ShowMarker
	if err := w.refreshClock(); err != nil {
		return err
	}

	if w.value.Valid() {
		w.value = selector.Range{Start: w.value.Start.In(tz), End: w.value.End.In(tz)}
		w.refit()
	}
	return nil
}

// refreshClock recomputes the ceiling for the current day.
func (w *workspace) refreshClock() error {
	cfg := config.Config{Selector: config.SelectorConfig{MaxDate: w.maxDate}}
	ceiling, err := cfg.Ceiling(w.localNow())
	if err != nil {
		return err
	}
	w.ceiling = ceiling
	return nil
}

func (w *workspace) localNow() time.Time {
	return w.now().In(w.tz)
}

func (w *workspace) months() int {
	if w.railMonths > 0 {
		return w.railMonths
	}
	return w.scale.RailMonths()
}

func (w *workspace) constraints() selector.Constraints {
	return selector.Constraints{Unit: w.unit, Rail: w.rail, Ceiling: w.ceiling}
}

// refit moves the rail to cover the value and re-clamps it.
func (w *workspace) refit() {
	w.rail = selector.FitRail(w.value, w.months())
	w.value = selector.Clamp(w.value, w.constraints())
	w.recompute()
}

func (w *workspace) props() selector.Props {
	return selector.Props{
		Scale:      w.scale,
		Rail:       w.rail,
		Value:      w.value,
		Unit:       w.unit,
		Ceiling:    w.ceiling,
		Comparison: w.comparison,
		Width:      w.width,
		Marker:     w.localNow(),
		ShowMarker: w.showMarker,
	}
}

// applyPreset resolves a named period and fits the rail around it.
func (w *workspace) applyPreset(name string) error {
	r, err := preset.Resolve(name, w.localNow())
	if err != nil {
		return err
	}
	w.preset = name
	w.value = r
	w.refit()
	w.log.Info("preset applied", "preset", name, "range", w.value.String())
	return nil
}

func (w *workspace) cyclePreset() error {
	return w.applyPreset(preset.Next(w.preset))
}

// change stores a live value from the selector.
func (w *workspace) change(r selector.Range) {
	w.value = r
}

// commit stores a finished edit. Any manual edit makes the preset custom.
func (w *workspace) commit(r selector.Range) {
	w.value = r
	w.preset = preset.Custom
	w.commits++
	w.recompute()
	w.log.Info("selection committed", "range", r.String(), "days", r.Days())
}

// pan shifts the rail by one scale step. The value is re-clamped into the
// new rail and committed when that moves it. A forward pan that would start
// the rail at or past the ceiling leaves no room for a selection and is
// refused; pan reports whether the rail moved.
func (w *workspace) pan(dir int) bool {
	if !w.rail.Valid() || dir == 0 {
		return false
	}
	next := selector.PanRail(w.rail, dir*w.scale.PanMonths())
	if !w.ceiling.IsZero() && !next.Start.Before(w.ceiling) {
		w.log.Debug("pan refused at ceiling", "rail", next.String(), "ceiling", w.ceiling.Format(time.DateOnly))
		return false
	}
	w.rail = next
	clamped := selector.Clamp(w.value, w.constraints())
	w.log.Debug("rail panned", "rail", w.rail.String())
	if !clamped.Equal(w.value) {
		w.commit(clamped)
	}
	return true
}

func (w *workspace) cycleComparison() {
	w.comparison = w.comparison.Next()
	w.recompute()
}

func (w *workspace) removeComparison() {
	if w.comparison == selector.ComparisonOff {
		return
	}
	w.comparison = selector.ComparisonOff
	w.recompute()
}

func (w *workspace) setCadence(c domain.Cadence) {
	w.cadence = c
	w.recompute()
}

// effectiveCadence returns the cadence buckets are built with and whether
// it was picked automatically.
func (w *workspace) effectiveCadence() (domain.Cadence, bool) {
	if w.cadence != "" {
		return w.cadence, false
	}
	return domain.AutoCadence(w.value.Start, w.value.End), true
}

func (w *workspace) setEntries(entries []domain.Transaction) {
	w.entries = entries
	w.recompute()
}

// recompute refreshes the aggregates for the current value and comparison.
func (w *workspace) recompute() {
	if !w.value.Valid() {
		w.summary, w.previous, w.hasPrev, w.buckets = domain.Summary{}, domain.Summary{}, false, nil
		return
	}
	w.summary = domain.Summarize(w.entries, w.value.Start, w.value.End)
	cmp, ok := selector.Comparison(w.value, w.comparison, w.rail)
	w.hasPrev = ok
	if ok {
		w.previous = domain.Summarize(w.entries, cmp.Start, cmp.End)
	} else {
		w.previous = domain.Summary{}
	}
	cadence, _ := w.effectiveCadence()
	w.buckets = domain.Aggregate(w.entries, w.value.Start, w.value.End, cadence, w.tz)
}

func (w *workspace) rangeSummary() views.RangeSummary {
	return views.RangeSummary{
		Preset:      w.preset,
		Current:     w.summary,
		Previous:    w.previous,
		HasPrevious: w.hasPrev,
	}
}
