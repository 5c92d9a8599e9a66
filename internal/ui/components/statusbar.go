package components

import (
	"strings"

	"github.com/anomredux/timerail/internal/theme"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

// StatusBar renders the bottom status bar with key hints taken from the
// bindings' help text.
type StatusBar struct {
	Width    int
	Bindings []key.Binding
}

// Render returns the status bar: separator + key hints.
func (s StatusBar) Render() string {
	keys := s.renderKeyHints()
	sep := theme.MutedStyle.Render(strings.Repeat("─", s.Width))
	return sep + "\n" + keys
}

var keyColors = []lipgloss.Color{
	theme.ColorSkyBlue,
	theme.ColorLavender,
	theme.ColorMauve,
	theme.ColorPeach,
	theme.ColorGold,
}

func (s StatusBar) renderKeyHints() string {
	var parts []string
	for _, b := range s.Bindings {
		if !b.Enabled() {
			continue
		}
		h := b.Help()
		if h.Key == "" {
			continue
		}
		color := keyColors[len(parts)%len(keyColors)]
		keyStyle := lipgloss.NewStyle().Foreground(color).Bold(true)
		parts = append(parts, keyStyle.Render(h.Key)+" "+theme.MutedStyle.Render(h.Desc))
	}

	line := "  " + strings.Join(parts, "  ")
	if s.Width > 0 && VisualWidth(line) > s.Width {
		line = lipgloss.NewStyle().MaxWidth(s.Width).Render(line)
	}
	return line
}
