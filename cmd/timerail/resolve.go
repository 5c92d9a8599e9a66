package main

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/anomredux/timerail/internal/config"
	"github.com/anomredux/timerail/internal/domain"
	"github.com/anomredux/timerail/internal/parser"
	"github.com/anomredux/timerail/internal/preset"
	"github.com/anomredux/timerail/internal/selector"
)

var (
	sinceArg      string
	untilArg      string
	comparisonArg string
	cadenceArg    string
	formatArg     string
)

var resolveCmd = &cobra.Command{
	Use:   "resolve",
	Short: "Resolve a range and print its summary without the TUI",
	Long: `Resolve a preset or an explicit --since/--until range, clamp it to the
configured rail and ceiling, and print the selection, its comparison and
buckets as JSON or YAML.`,
	Args: cobra.NoArgs,
	RunE: runResolve,
}

func init() {
	f := resolveCmd.Flags()
	f.StringVar(&sinceArg, "since", "", "first day of the range (YYYY-MM-DD)")
	f.StringVar(&untilArg, "until", "", "last day of the range, inclusive (YYYY-MM-DD)")
	f.StringVar(&comparisonArg, "comparison", "", "off, previous_period or previous_year")
	f.StringVar(&cadenceArg, "cadence", "", "bucket cadence: auto, day, month, quarter or year")
	f.StringVarP(&formatArg, "format", "o", "json", "output format: json or yaml")
	rootCmd.AddCommand(resolveCmd)
}

type dayRange struct {
	Start   string `json:"start" yaml:"start"`
	End     string `json:"end" yaml:"end"`
	LastDay string `json:"last_day" yaml:"last_day"`
	Days    int    `json:"days" yaml:"days"`
}

func newDayRange(r selector.Range) dayRange {
	return dayRange{
		Start:   r.Start.Format("2006-01-02"),
		End:     r.End.Format("2006-01-02"),
		LastDay: r.LastDay().Format("2006-01-02"),
		Days:    r.Days(),
	}
}

type summaryOut struct {
	Total      float64            `json:"total" yaml:"total"`
	Count      int                `json:"count" yaml:"count"`
	ByCategory map[string]float64 `json:"by_category,omitempty" yaml:"by_category,omitempty"`
}

type comparisonOut struct {
	Mode    string     `json:"mode" yaml:"mode"`
	Range   dayRange   `json:"range" yaml:"range"`
	Summary summaryOut `json:"summary" yaml:"summary"`
	// Change is the percentage change of the selection total, absent when
	// the comparison total is zero.
	Change *float64 `json:"change,omitempty" yaml:"change,omitempty"`
}

type bucketOut struct {
	Label string  `json:"label" yaml:"label"`
	Start string  `json:"start" yaml:"start"`
	End   string  `json:"end" yaml:"end"`
	Total float64 `json:"total" yaml:"total"`
	Count int     `json:"count" yaml:"count"`
}

type resolveOutput struct {
	Preset     string         `json:"preset" yaml:"preset"`
	Timezone   string         `json:"timezone" yaml:"timezone"`
	Rail       dayRange       `json:"rail" yaml:"rail"`
	Selection  dayRange       `json:"selection" yaml:"selection"`
	Summary    summaryOut     `json:"summary" yaml:"summary"`
	Comparison *comparisonOut `json:"comparison,omitempty" yaml:"comparison,omitempty"`
	Cadence    string         `json:"cadence" yaml:"cadence"`
	Buckets    []bucketOut    `json:"buckets" yaml:"buckets"`
}

func runResolve(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("comparison") {
		cfg.Selector.Comparison = comparisonArg
	}
	if cmd.Flags().Changed("cadence") {
		cfg.Selector.Cadence = cadenceArg
	}
	if formatArg != "json" && formatArg != "yaml" {
		return fmt.Errorf("unknown format %q (use json or yaml)", formatArg)
	}

	tz, err := cfg.Location()
	if err != nil {
		return err
	}
	entries := parser.Dedup(parser.ScanAndParse(cmd.Context(), cfg.General.DataDir, tz))

	out, err := resolve(cfg, sinceArg, untilArg, time.Now(), entries)
	if err != nil {
		return err
	}
	return writeOutput(cmd.OutOrStdout(), formatArg, out)
}

// resolve picks the selection, fits and clamps it the way the rail would,
// and aggregates entries over it.
func resolve(cfg config.Config, since, until string, now time.Time, entries []domain.Transaction) (resolveOutput, error) {
	tz, err := cfg.Location()
	if err != nil {
		return resolveOutput{}, err
	}
	now = now.In(tz)

	scale, err := selector.ParseScale(cfg.Selector.Scale)
	if err != nil {
		return resolveOutput{}, fmt.Errorf("selector.scale: %w", err)
	}
	unit, err := selector.ParseUnit(cfg.Selector.MinimumUnit)
	if err != nil {
		return resolveOutput{}, fmt.Errorf("selector.minimum_unit: %w", err)
	}
	mode, err := selector.ParseComparison(cfg.Selector.Comparison)
	if err != nil {
		return resolveOutput{}, fmt.Errorf("selector.comparison: %w", err)
	}
	cadence, err := domain.ParseCadence(cfg.Selector.Cadence)
	if err != nil {
		return resolveOutput{}, fmt.Errorf("selector.cadence: %w", err)
	}
	ceiling, err := cfg.Ceiling(now)
	if err != nil {
		return resolveOutput{}, err
	}

	sel, name, err := selection(cfg.Selector.Preset, since, until, now)
	if err != nil {
		return resolveOutput{}, err
	}

	months := cfg.Selector.RailMonths
	if months <= 0 {
		months = scale.RailMonths()
	}
	rail := selector.FitRail(sel, months)
	sel = selector.Clamp(sel, selector.Constraints{Unit: unit, Rail: rail, Ceiling: ceiling})
	if name != preset.Custom && preset.Match(sel, now) != name {
		name = preset.Custom
	}

	if cadence == "" {
		cadence = domain.AutoCadence(sel.Start, sel.End)
	}
	out := resolveOutput{
		Preset:    name,
		Timezone:  tz.String(),
		Rail:      newDayRange(rail),
		Selection: newDayRange(sel),
		Summary:   newSummaryOut(domain.Summarize(entries, sel.Start, sel.End)),
		Cadence:   string(cadence),
	}

	if cmp, ok := selector.Comparison(sel, mode, rail); ok {
		c := &comparisonOut{
			Mode:    mode.String(),
			Range:   newDayRange(cmp),
			Summary: newSummaryOut(domain.Summarize(entries, cmp.Start, cmp.End)),
		}
		if pct, ok := domain.Change(out.Summary.Total, c.Summary.Total); ok {
			c.Change = &pct
		}
		out.Comparison = c
	}

	for _, b := range domain.Aggregate(entries, sel.Start, sel.End, cadence, tz) {
		out.Buckets = append(out.Buckets, bucketOut{
			Label: b.Label,
			Start: b.Start.Format("2006-01-02"),
			End:   b.End.Format("2006-01-02"),
			Total: b.Total,
			Count: b.Count,
		})
	}
	return out, nil
}

// selection returns the requested range and the preset it came from.
// Explicit dates win over the preset; a missing until means today.
func selection(name, since, until string, now time.Time) (selector.Range, string, error) {
	if since == "" && until == "" {
		r, err := preset.Resolve(name, now)
		if err != nil {
			return selector.Range{}, "", fmt.Errorf("preset %q: %w", name, err)
		}
		return r, name, nil
	}
	if since == "" {
		return selector.Range{}, "", fmt.Errorf("--until requires --since")
	}
	start, end, err := domain.ParseDateRange(since, until, now.Location())
	if err != nil {
		return selector.Range{}, "", err
	}
	if end.IsZero() {
		end = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).AddDate(0, 0, 1)
	}
	r := selector.Range{Start: start, End: end}
	if !r.Valid() {
		return selector.Range{}, "", fmt.Errorf("empty range %s to %s", since, until)
	}
	return r, preset.Match(r, now), nil
}

func newSummaryOut(s domain.Summary) summaryOut {
	return summaryOut{Total: s.Total, Count: s.Count, ByCategory: s.ByCategory}
}

func writeOutput(w io.Writer, format string, out resolveOutput) error {
	if format == "yaml" {
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(out); err != nil {
			return fmt.Errorf("write yaml: %w", err)
		}
		return enc.Close()
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("write json: %w", err)
	}
	return nil
}
