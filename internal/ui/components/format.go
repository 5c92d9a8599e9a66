package components

import (
	"fmt"
	"math"

	"github.com/anomredux/timerail/internal/i18n"
	"github.com/anomredux/timerail/internal/selector"
)

// FormatNumber formats an integer with locale digit grouping (e.g. 1,234,567).
func FormatNumber(n int) string {
	return i18n.Printer().Sprintf("%d", n)
}

// FormatAmount formats a plain amount with two decimals and grouping. No
// currency symbol is attached.
func FormatAmount(v float64) string {
	return i18n.Printer().Sprintf("%.2f", v)
}

// FormatCompact formats an amount with K/M suffix (e.g. 12345 -> "12.3K").
func FormatCompact(v float64) string {
	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}
	switch {
	case v < 1000:
		return sign + fmt.Sprintf("%.0f", v)
	case v < 1_000_000:
		return sign + fmt.Sprintf("%.1fK", v/1000)
	default:
		return sign + fmt.Sprintf("%.1fM", v/1_000_000)
	}
}

// FormatPercent formats a signed percentage delta (e.g. "+12.5%").
func FormatPercent(p float64) string {
	sign := "+"
	if p < 0 {
		sign = "-"
	}
	return sign + i18n.Printer().Sprintf("%.1f", math.Abs(p)) + "%"
}

// FormatSpan formats the length of a range in whole calendar days.
func FormatSpan(r selector.Range) string {
	n := r.Days()
	if n == 1 {
		return i18n.T("span_day")
	}
	return i18n.Tf("span_days", n)
}

// FormatRange formats a range with an inclusive last day.
func FormatRange(r selector.Range) string {
	if !r.Valid() {
		return "-"
	}
	first := r.Start.Format("2006-01-02")
	last := r.LastDay().Format("2006-01-02")
	if first == last {
		return first
	}
	return first + " → " + last
}
