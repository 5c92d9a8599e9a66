package views

import (
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/anomredux/timerail/internal/domain"
	"github.com/anomredux/timerail/internal/i18n"
	"github.com/anomredux/timerail/internal/theme"
	"github.com/anomredux/timerail/internal/ui/components"
)

// CadenceChangedMsg asks the owner to re-aggregate with a new cadence.
type CadenceChangedMsg struct {
	Cadence domain.Cadence
}

// BucketsView lists the committed range's buckets with a per-bucket
// category breakdown on enter.
type BucketsView struct {
	buckets []domain.Bucket
	entries []domain.Transaction
	cadence domain.Cadence
	auto    bool

	cursor       int
	scroll       int
	detail       bool
	detailScroll int
}

func NewBucketsView() *BucketsView {
	return &BucketsView{}
}

// SetData replaces the buckets. cadence is the effective cadence and auto
// reports whether it was chosen automatically.
func (v *BucketsView) SetData(buckets []domain.Bucket, entries []domain.Transaction, cadence domain.Cadence, auto bool) {
	v.buckets = buckets
	v.entries = entries
	v.cadence = cadence
	v.auto = auto
	if v.cursor >= len(buckets) {
		v.cursor = max(0, len(buckets)-1)
		v.detail = false
	}
}

// Cursor returns the highlighted bucket index.
func (v *BucketsView) Cursor() int { return v.cursor }

func (v *BucketsView) Update(msg tea.Msg) tea.Cmd {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	switch km.String() {
	case "j", "down":
		if v.detail {
			v.detailScroll++
		} else if v.cursor < len(v.buckets)-1 {
			v.cursor++
		}
		return KeyHandledCmd
	case "k", "up":
		if v.detail {
			if v.detailScroll > 0 {
				v.detailScroll--
			}
		} else if v.cursor > 0 {
			v.cursor--
		}
		return KeyHandledCmd
	case "home":
		v.cursor = 0
		return KeyHandledCmd
	case "end", "G":
		v.cursor = max(0, len(v.buckets)-1)
		return KeyHandledCmd
	case "enter":
		if !v.detail && len(v.buckets) > 0 {
			v.detail = true
			v.detailScroll = 0
		}
		return KeyHandledCmd
	case "esc", "backspace":
		if v.detail {
			v.detail = false
			return KeyHandledCmd
		}
	case "g":
		next := v.cadence.Next()
		return func() tea.Msg { return CadenceChangedMsg{Cadence: next} }
	}
	return nil
}

func (v *BucketsView) Render(width, height int, compact bool) string {
	cardWidth := width - 4

	if len(v.buckets) == 0 {
		card := components.Card{
			Title:   theme.TitleText(i18n.T("buckets")),
			Width:   cardWidth,
			Compact: compact,
		}
		card.Content = theme.MutedStyle.Render(i18n.T("no_buckets"))
		return card.Render()
	}

	if v.detail {
		return v.renderDetail(cardWidth, compact)
	}
	return v.renderList(cardWidth, height, compact)
}

func (v *BucketsView) cadenceLabel() string {
	label := i18n.T("cadence_" + string(v.cadence))
	if v.auto {
		label += " (" + i18n.T("auto") + ")"
	}
	return label
}

func (v *BucketsView) renderList(cardWidth, contentHeight int, compact bool) string {
	title := fmt.Sprintf("%s (%d) · %s", i18n.T("buckets"), len(v.buckets), v.cadenceLabel())
	card := components.Card{
		Title:   theme.TitleText(title),
		Width:   cardWidth,
		Compact: compact,
	}
	innerW := card.InnerWidth()

	type colDef struct {
		header string
		width  int
		align  lipgloss.Position
	}
	cols := []colDef{
		{"#", 3, lipgloss.Right},
		{i18n.T("period"), 10, lipgloss.Left},
		{i18n.T("from"), 10, lipgloss.Left},
		{i18n.T("to"), 10, lipgloss.Left},
		{i18n.T("count"), 6, lipgloss.Right},
		{i18n.T("total"), 14, lipgloss.Right},
		{i18n.T("share"), 7, lipgloss.Right},
	}
	totalFixed := 0
	for _, c := range cols {
		totalFixed += c.width
	}
	gaps := len(cols) - 1
	if remaining := innerW - 2 - totalFixed - gaps; remaining > 0 {
		cols[1].width += remaining
	}

	cellStyle := func(width int, align lipgloss.Position, highlighted bool) lipgloss.Style {
		s := lipgloss.NewStyle().Width(width).Align(align)
		if highlighted {
			s = s.Background(theme.ColorElevatedBg)
		}
		return s
	}

	helpLine := lipgloss.PlaceHorizontal(innerW, lipgloss.Right,
		theme.MutedStyle.Render(i18n.T("buckets_help")))

	headerColors := []lipgloss.Color{
		theme.ColorBrightText,
		theme.ColorBrightText,
		theme.ColorBrightText,
		theme.ColorBrightText,
		theme.ColorLavender,
		theme.ColorSkyBlue,
		theme.ColorGold,
	}
	var headerCells []string
	for i, c := range cols {
		s := cellStyle(c.width, c.align, false).Foreground(headerColors[i]).Bold(true)
		headerCells = append(headerCells, s.Render(c.header))
	}
	sepWidth := gaps
	for _, c := range cols {
		sepWidth += c.width
	}

	rows := []string{
		helpLine,
		strings.Join(headerCells, " "),
		theme.MutedStyle.Render(strings.Repeat("─", sepWidth)),
	}

	var absSum, absMax float64
	for _, b := range v.buckets {
		absSum += math.Abs(b.Total)
		absMax = math.Max(absMax, math.Abs(b.Total))
	}

	visibleRows := max(contentHeight-8, 3)
	v.scroll = components.ScrollTo(v.cursor, v.scroll, visibleRows)

	for i := v.scroll; i < len(v.buckets) && i < v.scroll+visibleRows; i++ {
		b := v.buckets[i]
		hl := i == v.cursor

		share := "-"
		if absSum > 0 {
			share = fmt.Sprintf("%.1f%%", math.Abs(b.Total)/absSum*100)
		}
		totalColor := theme.ColorMutedText
		if absMax > 0 && b.Count > 0 {
			totalColor = lipgloss.Color(theme.MultiStopGradient(math.Abs(b.Total)/absMax, theme.MagnitudeGradient))
		}

		cells := []string{
			cellStyle(cols[0].width, cols[0].align, hl).Foreground(theme.ColorMutedText).Render(fmt.Sprintf("%d", i+1)),
			cellStyle(cols[1].width, cols[1].align, hl).Foreground(theme.ColorBrightText).Render(b.Label),
			cellStyle(cols[2].width, cols[2].align, hl).Foreground(theme.ColorBodyText).Render(b.Start.Format("2006-01-02")),
			cellStyle(cols[3].width, cols[3].align, hl).Foreground(theme.ColorBodyText).Render(lastDay(b.End).Format("2006-01-02")),
			cellStyle(cols[4].width, cols[4].align, hl).Foreground(theme.ColorLavender).Render(components.FormatNumber(b.Count)),
			cellStyle(cols[5].width, cols[5].align, hl).Foreground(totalColor).Render(components.FormatAmount(b.Total)),
			cellStyle(cols[6].width, cols[6].align, hl).Foreground(theme.ColorGold).Render(share),
		}

		gap := " "
		if hl {
			gap = lipgloss.NewStyle().Background(theme.ColorElevatedBg).Render(" ")
		}
		rows = append(rows, components.CursorIndicator(hl)+strings.Join(cells, gap))
	}

	card.Footer = components.ScrollIndicator(v.scroll, visibleRows, len(v.buckets))

	card.Content = strings.Join(rows, "\n")
	return card.Render()
}

// lastDay returns the calendar day before an exclusive end.
func lastDay(end time.Time) time.Time {
	return end.Add(-time.Nanosecond)
}

func (v *BucketsView) renderDetail(cardWidth int, compact bool) string {
	if v.cursor < 0 || v.cursor >= len(v.buckets) {
		return theme.MutedStyle.Render(i18n.T("no_data"))
	}
	b := v.buckets[v.cursor]
	sum := domain.Summarize(v.entries, b.Start, b.End)

	summaryCard := components.Card{
		Title:   theme.TitleText(i18n.Tf("bucket_detail", b.Label)),
		Width:   cardWidth,
		Compact: compact,
	}
	statGap := 2
	innerW := summaryCard.InnerWidth()
	statW := max((innerW-statGap*2)/3, 10)

	avg := "-"
	if sum.Count > 0 {
		avg = components.FormatAmount(sum.Total / float64(sum.Count))
	}
	stats := []components.StatCard{
		{Value: components.FormatAmount(sum.Total), Label: i18n.T("total"), Width: statW, Color: theme.ColorSkyBlue},
		{Value: components.FormatNumber(sum.Count), Label: i18n.T("transactions"), Width: statW, Color: theme.ColorLavender},
		{Value: avg, Label: i18n.T("average"), Width: statW, Color: theme.ColorMauve},
	}
	summaryCard.Content = components.RenderStatRow(stats, statGap)

	catCard := components.Card{
		Title:   theme.GradientText(i18n.T("categories"), string(theme.ColorLavender), string(theme.ColorSkyBlue)),
		Width:   cardWidth,
		Compact: compact,
	}
	catW := catCard.InnerWidth()
	colAmount, colPct := 14, 7
	colName := max(catW-colAmount-colPct-2, 8)

	var catRows []string
	catRows = append(catRows, strings.Join([]string{
		lipgloss.NewStyle().Width(colName).Foreground(theme.ColorBrightText).Bold(true).Render(i18n.T("category")),
		lipgloss.NewStyle().Width(colAmount).Align(lipgloss.Right).Foreground(theme.ColorSkyBlue).Bold(true).Render(i18n.T("total")),
		lipgloss.NewStyle().Width(colPct).Align(lipgloss.Right).Foreground(theme.ColorGold).Bold(true).Render(i18n.T("share")),
	}, " "))
	catRows = append(catRows, theme.MutedStyle.Render(strings.Repeat("─", colName+colAmount+colPct+2)))

	cats := sum.Categories()
	var absSum float64
	for _, c := range cats {
		absSum += math.Abs(c.Total)
	}
	start := min(v.detailScroll, max(len(cats)-1, 0))
	for i, c := range cats[start:] {
		pct := 0.0
		if absSum > 0 {
			pct = math.Abs(c.Total) / absSum * 100
		}
		row := strings.Join([]string{
			lipgloss.NewStyle().Width(colName).Foreground(theme.ColorBrightText).Render(components.Truncate(c.Category, colName)),
			lipgloss.NewStyle().Width(colAmount).Align(lipgloss.Right).Foreground(theme.ColorSkyBlue).Render(components.FormatAmount(c.Total)),
			lipgloss.NewStyle().Width(colPct).Align(lipgloss.Right).Foreground(theme.ColorGold).Render(fmt.Sprintf("%.1f%%", pct)),
		}, " ")
		catRows = append(catRows, components.RowBackground(i).Render(row))
	}
	if len(cats) == 0 {
		catRows = append(catRows, theme.MutedStyle.Render(i18n.T("no_data")))
	}
	catCard.Content = strings.Join(catRows, "\n")

	footer := components.HelpFooter(i18n.T("detail_back_help"))
	return summaryCard.Render() + "\n" + catCard.Render() + "\n" + footer
}
