package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// VisualWidth returns the visible cell count, ignoring ANSI and zone markers.
func VisualWidth(s string) int {
	return lipgloss.Width(s)
}

// PadRight pads a string to the given visual width.
func PadRight(s string, width int) string {
	gap := width - VisualWidth(s)
	if gap <= 0 {
		return s
	}
	return s + strings.Repeat(" ", gap)
}

// PadLeft pads a string on the left to the given visual width.
func PadLeft(s string, width int) string {
	gap := width - VisualWidth(s)
	if gap <= 0 {
		return s
	}
	return strings.Repeat(" ", gap) + s
}

// CenterText centers a string within the given visual width.
func CenterText(s string, width int) string {
	gap := width - VisualWidth(s)
	if gap <= 0 {
		return s
	}
	left := gap / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", gap-left)
}

// Truncate cuts plain text to width cells, ending in "…" when shortened.
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	if width == 1 {
		return "…"
	}
	return string(runes[:width-1]) + "…"
}

// JoinHorizontal joins multiple blocks of lines side by side with a gap.
func JoinHorizontal(blocks [][]string, gap int) []string {
	maxH := 0
	for _, b := range blocks {
		if len(b) > maxH {
			maxH = len(b)
		}
	}
	widths := make([]int, len(blocks))
	for i, b := range blocks {
		for _, line := range b {
			if vl := VisualWidth(line); vl > widths[i] {
				widths[i] = vl
			}
		}
	}
	spacer := strings.Repeat(" ", gap)
	var result []string
	for row := 0; row < maxH; row++ {
		var sb strings.Builder
		for i, b := range blocks {
			if i > 0 {
				sb.WriteString(spacer)
			}
			if row < len(b) {
				sb.WriteString(PadRight(b[row], widths[i]))
			} else {
				sb.WriteString(strings.Repeat(" ", widths[i]))
			}
		}
		result = append(result, sb.String())
	}
	return result
}
