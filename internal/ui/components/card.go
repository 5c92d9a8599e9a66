package components

import (
	"strings"

	"github.com/anomredux/timerail/internal/theme"
	"github.com/charmbracelet/lipgloss"
)

var cardBorder = lipgloss.NewStyle().Foreground(theme.ColorBorder)

// Card is a rounded box. Title sits in the top edge and Footer, usually a
// scroll indicator, at the right of the bottom edge. Compact cards drop the
// box for a title over a rule.
type Card struct {
	Title   string // pre-styled
	Footer  string // pre-styled
	Width   int
	Content string
	Compact bool
}

// InnerWidth is the content width left after border and padding.
func (c Card) InnerWidth() int {
	if c.Compact {
		return c.Width - 2
	}
	return c.Width - 4
}

func (c Card) Render() string {
	if c.Compact {
		return c.renderCompact()
	}
	return c.renderBox()
}

func (c Card) renderCompact() string {
	lines := []string{
		c.Title,
		theme.MutedStyle.Render("  " + strings.Repeat("─", max(c.Width-4, 1))),
	}
	if c.Content != "" {
		lines = append(lines, c.Content)
	}
	if c.Footer != "" {
		lines = append(lines, PadLeft(c.Footer, c.Width-2))
	}
	return strings.Join(lines, "\n")
}

func (c Card) renderBox() string {
	span := c.Width - 2
	lines := []string{edge("╭─", label(c.Title), "", "╮", span)}

	bar := cardBorder.Render("│")
	for _, line := range strings.Split(c.Content, "\n") {
		pad := max(span-2-lipgloss.Width(line), 0)
		lines = append(lines, bar+" "+line+strings.Repeat(" ", pad)+" "+bar)
	}

	bottom := edge("╰", "", "", "╯", span)
	if f := label(c.Footer); f != "" && lipgloss.Width(f) < span {
		bottom = edge("╰", "", f, "─╯", span)
	}
	return strings.Join(append(lines, bottom), "\n")
}

// label pads a pre-styled string with a space on each side.
func label(s string) string {
	if s == "" {
		return ""
	}
	return " " + s + " "
}

// edge draws a horizontal border span cells wide between its corners, with
// head placed after the left corner and tail before the right one. Caps
// count towards span except for their first and last cell.
func edge(left, head, tail, right string, span int) string {
	used := lipgloss.Width(left) - 1 + lipgloss.Width(head) + lipgloss.Width(tail) + lipgloss.Width(right) - 1
	fill := strings.Repeat("─", max(span-used, 0))
	if head != "" {
		return cardBorder.Render(left) + head + cardBorder.Render(fill+right)
	}
	if tail != "" {
		return cardBorder.Render(left+fill) + tail + cardBorder.Render(right)
	}
	return cardBorder.Render(left + fill + right)
}
