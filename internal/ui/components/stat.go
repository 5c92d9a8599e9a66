package components

import (
	"strings"

	"github.com/anomredux/timerail/internal/theme"
	"github.com/charmbracelet/lipgloss"
)

var statLabelStyle = lipgloss.NewStyle().Foreground(theme.ColorMutedText)

// StatCard is a centred figure with its label underneath.
type StatCard struct {
	Value string
	Sub   string // optional second line, muted
	Label string
	Width int
	Color lipgloss.Color // defaults to bright text
}

// ChangeStat builds the card for a relative change between two totals.
// A missing change (zero baseline) renders as a muted dash.
func ChangeStat(label string, pct float64, ok bool, width int) StatCard {
	s := StatCard{Value: "-", Label: label, Width: width, Color: theme.ColorMutedText}
	if !ok {
		return s
	}
	s.Value = FormatPercent(pct)
	switch {
	case pct > 0:
		s.Value = "▲ " + s.Value
		s.Color = theme.ColorPositive
	case pct < 0:
		s.Value = "▼ " + s.Value
		s.Color = theme.ColorNegative
	}
	return s
}

func (s StatCard) Render() []string {
	w := max(s.Width, 8)
	color := s.Color
	if color == "" {
		color = theme.ColorBrightText
	}
	lines := []string{CenterText(lipgloss.NewStyle().Foreground(color).Bold(true).Render(s.Value), w)}
	if s.Sub != "" {
		lines = append(lines, CenterText(statLabelStyle.Render(s.Sub), w))
	}
	return append(lines, CenterText(statLabelStyle.Render(s.Label), w))
}

// RenderStatRow lays cards out side by side, gap cells apart.
func RenderStatRow(cards []StatCard, gap int) string {
	blocks := make([][]string, 0, len(cards))
	for _, c := range cards {
		blocks = append(blocks, c.Render())
	}
	return strings.Join(JoinHorizontal(blocks, gap), "\n")
}
