package components

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"github.com/anomredux/timerail/internal/i18n"
	"github.com/anomredux/timerail/internal/selector"
	"github.com/anomredux/timerail/internal/theme"
)

// Rail glyphs.
const (
	GlyphTrack      = '─'
	GlyphSelection  = '█'
	GlyphHandle     = '┃'
	GlyphComparison = '░'
	GlyphPreview    = '▒'
	GlyphHover      = '┊'
	GlyphMarker     = '▼'

	GlyphTickYear  = '┃'
	GlyphTickMonth = '│'
	GlyphTickMajor = '╵'
	GlyphTickMinor = '·'
)

// RemoveZoneSuffix is appended to ZoneID for the comparison remove affordance.
const RemoveZoneSuffix = "-remove"

// Rail renders the selector: a label row with the today marker, a tick row,
// the track and a caption. Every row is exactly Props.Width cells wide
// except the caption.
type Rail struct {
	Props selector.Props

	// Preview is drawn over the track while a create drag is running.
	Preview    selector.Range
	HasPreview bool

	// Hover is the pointer offset; the crosshair shows only while idle
	// and outside the selection.
	Hover    float64
	HasHover bool
	Mode     selector.DragMode

	Focused bool

	// ZoneID marks the track (and ZoneID+RemoveZoneSuffix the remove
	// affordance) for mouse hit testing. Empty disables marking.
	ZoneID string
}

type railCell struct {
	r     rune
	style *lipgloss.Style
}

type cellRow []railCell

func newCellRow(width int, r rune, style *lipgloss.Style) cellRow {
	row := make(cellRow, width)
	for i := range row {
		row[i] = railCell{r: r, style: style}
	}
	return row
}

func (row cellRow) set(col int, r rune, style *lipgloss.Style) {
	if col >= 0 && col < len(row) {
		row[col] = railCell{r: r, style: style}
	}
}

// render styles runs of equal style together.
func (row cellRow) render() string {
	var sb strings.Builder
	for i := 0; i < len(row); {
		j := i
		var run strings.Builder
		for j < len(row) && row[j].style == row[i].style {
			run.WriteRune(row[j].r)
			j++
		}
		if row[i].style == nil {
			sb.WriteString(run.String())
		} else {
			sb.WriteString(row[i].style.Render(run.String()))
		}
		i = j
	}
	return sb.String()
}

// Cells returns the number of cells the rail is drawn with.
func (r Rail) Cells() int {
	if r.Props.Width <= 0 {
		return 0
	}
	return int(r.Props.Width)
}

func (r Rail) col(t float64) int {
	c := int(math.Floor(t))
	return max(0, min(c, r.Cells()-1))
}

// span returns the first and last cell whose centre lies inside rg.
func (r Rail) span(rg selector.Range) (int, int, bool) {
	p := r.Props
	a := selector.DateToOffset(rg.Start, p.Rail, p.Width)
	b := selector.DateToOffset(rg.End, p.Rail, p.Width)
	first := int(math.Ceil(a - 0.5))
	last := int(math.Ceil(b-0.5)) - 1
	first = max(first, 0)
	last = min(last, r.Cells()-1)
	if last < first {
		if a >= float64(r.Cells()) || b <= 0 {
			return 0, 0, false
		}
		c := r.col(a)
		return c, c, true
	}
	return first, last, true
}

// Render returns the four rail rows joined by newlines.
func (r Rail) Render() string {
	if r.Cells() == 0 || !r.Props.Rail.Valid() {
		return ""
	}
	return strings.Join([]string{
		r.renderLabels(),
		r.renderTicks(),
		r.renderTrack(),
		r.renderCaption(),
	}, "\n")
}

func (r Rail) renderLabels() string {
	p := r.Props
	row := newCellRow(r.Cells(), ' ', nil)
	next := 0
	for _, tk := range selector.GenerateTicks(p.Rail, p.Scale) {
		if tk.Label == "" {
			continue
		}
		c := r.col(selector.DateToOffset(tk.Date, p.Rail, p.Width))
		label := []rune(tk.Label)
		if c < next || c+len(label) > r.Cells() {
			continue
		}
		style := &theme.RailLabelStyle
		if tk.Kind == selector.TickYear {
			style = &theme.RailYearLabelStyle
		}
		for i, ch := range label {
			row.set(c+i, ch, style)
		}
		next = c + len(label) + 1
	}
	if p.ShowMarker && p.Rail.Contains(p.Marker) {
		row.set(r.col(selector.DateToOffset(p.Marker, p.Rail, p.Width)), GlyphMarker, &theme.RailMarkerStyle)
	}
	return row.render()
}

func (r Rail) renderTicks() string {
	p := r.Props
	row := newCellRow(r.Cells(), ' ', nil)
	for _, tk := range selector.GenerateTicks(p.Rail, p.Scale) {
		c := r.col(selector.DateToOffset(tk.Date, p.Rail, p.Width))
		row.set(c, tickGlyph(tk.Kind), &theme.RailTickStyle)
	}
	return row.render()
}

func tickGlyph(k selector.TickKind) rune {
	switch k {
	case selector.TickYear:
		return GlyphTickYear
	case selector.TickMonth:
		return GlyphTickMonth
	case selector.TickMajor:
		return GlyphTickMajor
	default:
		return GlyphTickMinor
	}
}

func (r Rail) renderTrack() string {
	p := r.Props
	row := newCellRow(r.Cells(), GlyphTrack, &theme.RailTrackStyle)

	if cmp, ok := p.ComparisonRange(); ok {
		if a, b, ok := r.span(cmp); ok {
			for c := a; c <= b; c++ {
				row.set(c, GlyphComparison, &theme.RailComparisonStyle)
			}
		}
	}

	sel := p.Normalized()
	selA, selB, hasSel := r.span(sel)
	if hasSel {
		for c := selA; c <= selB; c++ {
			row.set(c, GlyphSelection, &theme.RailSelectionStyle)
		}
		handle := &theme.RailHandleStyle
		if !r.Focused {
			handle = &theme.RailSelectionStyle
		}
		row.set(selA, GlyphHandle, handle)
		row.set(selB, GlyphHandle, handle)
	}

	if r.HasPreview {
		if a, b, ok := r.span(r.Preview); ok {
			for c := a; c <= b; c++ {
				row.set(c, GlyphPreview, &theme.RailPreviewStyle)
			}
		}
	}

	if r.HasHover && r.Mode == selector.Idle && r.Hover >= 0 && r.Hover < p.Width {
		c := r.col(r.Hover)
		if !hasSel || c < selA || c > selB {
			row.set(c, GlyphHover, &theme.RailHoverStyle)
		}
	}

	out := row.render()
	if r.ZoneID != "" {
		out = zone.Mark(r.ZoneID, out)
	}
	return out
}

func (r Rail) renderCaption() string {
	p := r.Props
	sel := p.Normalized()
	parts := []string{
		theme.HeaderStyle.Render(FormatRange(sel)),
		theme.MutedStyle.Render(FormatSpan(sel)),
	}

	if r.HasHover && r.Mode == selector.Idle && r.Hover >= 0 && r.Hover < p.Width {
		at := selector.Snap(selector.OffsetToDate(r.Hover, p.Rail, p.Width), selector.EdgeStart)
		parts = append(parts, theme.RailHoverStyle.Render(at.Format("Mon 2006-01-02")))
	}

	if cmp, ok := p.ComparisonRange(); ok {
		remove := theme.RailRemoveStyle.Render("[x]")
		if r.ZoneID != "" {
			remove = zone.Mark(r.ZoneID+RemoveZoneSuffix, remove)
		}
		parts = append(parts,
			theme.RailComparisonStyle.Render(i18n.T("versus")+" "+FormatRange(cmp))+" "+remove)
	}
	return strings.Join(parts, theme.MutedStyle.Render("  ·  "))
}
