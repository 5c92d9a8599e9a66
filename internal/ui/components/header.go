package components

import (
	"fmt"
	"strings"

	"github.com/anomredux/timerail/internal/theme"
	"github.com/charmbracelet/lipgloss"
)

// TabBar renders a numbered tab bar with active highlighting and a bottom separator.
type TabBar struct {
	ViewNames   []string
	ActiveIndex int
	Width       int
	Badge       string // e.g. the active preset, shown after the tabs
}

var (
	tabActiveStyle = lipgloss.NewStyle().
			Foreground(theme.ColorGold).
			Background(theme.ColorElevatedBg).
			Bold(true).
			Padding(0, 1)

	tabInactiveStyle = lipgloss.NewStyle().
				Foreground(theme.ColorMutedText).
				Padding(0, 1)

	tabBadgeStyle = lipgloss.NewStyle().Foreground(theme.ColorMauve)
)

// Render returns the styled tab bar with bottom separator line.
func (tb TabBar) Render() string {
	var tabs []string
	for i, name := range tb.ViewNames {
		label := fmt.Sprintf("%d %s", i+1, name)
		if i == tb.ActiveIndex {
			tabs = append(tabs, tabActiveStyle.Render(label))
		} else {
			tabs = append(tabs, tabInactiveStyle.Render(label))
		}
	}

	line := strings.Join(tabs, "")
	if tb.Badge != "" {
		line += "  " + tabBadgeStyle.Render("["+tb.Badge+"]")
	}

	tabLine := lipgloss.NewStyle().
		Width(tb.Width).
		Padding(0, 1).
		Render(line)

	sep := theme.MutedStyle.Render(strings.Repeat("─", tb.Width))

	return tabLine + "\n" + sep
}
