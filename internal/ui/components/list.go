package components

import (
	"fmt"

	"github.com/anomredux/timerail/internal/theme"
	"github.com/charmbracelet/lipgloss"
)

var (
	rowOddStyle  = lipgloss.NewStyle().Background(theme.ColorElevatedBg)
	cursorActive = lipgloss.NewStyle().Foreground(theme.ColorGold).Render("▶ ")
)

// RowBackground stripes odd rows of a list.
func RowBackground(index int) lipgloss.Style {
	if index%2 == 1 {
		return rowOddStyle
	}
	return lipgloss.NewStyle()
}

// CursorIndicator is the two-cell gutter in front of a list row.
func CursorIndicator(selected bool) string {
	if selected {
		return cursorActive
	}
	return "  "
}

// ScrollTo returns the first visible row so that cursor stays inside a
// window of visible rows starting at scroll.
func ScrollTo(cursor, scroll, visible int) int {
	if visible <= 0 {
		return cursor
	}
	if cursor < scroll {
		return cursor
	}
	if cursor >= scroll+visible {
		return cursor - visible + 1
	}
	return scroll
}

// ScrollIndicator reads "[first-last / total]" for a window that does not
// show every row, and "" otherwise.
func ScrollIndicator(scroll, visible, total int) string {
	if total <= visible {
		return ""
	}
	return theme.MutedStyle.Render(
		fmt.Sprintf("[%d-%d / %d]", scroll+1, min(scroll+visible, total), total))
}

// HelpFooter renders an indented hint line under a card.
func HelpFooter(text string) string {
	return theme.MutedStyle.Render("  " + text)
}
