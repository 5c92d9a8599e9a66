package overlays

import (
	"fmt"
	"strings"

	"github.com/anomredux/timerail/internal/i18n"
	"github.com/anomredux/timerail/internal/theme"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

// HelpOverlay lists key bindings, one group per block.
type HelpOverlay struct {
	Groups [][]key.Binding
}

func NewHelpOverlay(groups ...[]key.Binding) *HelpOverlay {
	return &HelpOverlay{Groups: groups}
}

func (h *HelpOverlay) Render(width, height int) string {
	title := theme.TitleText(i18n.T("keyboard_shortcuts"))

	maxKeyLen := 0
	for _, g := range h.Groups {
		for _, b := range g {
			if n := lipgloss.Width(b.Help().Key); n > maxKeyLen {
				maxKeyLen = n
			}
		}
	}

	bg := theme.ColorCardBg
	keyStyle := lipgloss.NewStyle().Foreground(theme.ColorGold).Bold(true).Background(bg)
	descStyle := lipgloss.NewStyle().Foreground(theme.ColorBodyText).Background(bg)

	var rows []string
	for i, g := range h.Groups {
		if i > 0 {
			rows = append(rows, "")
		}
		for _, b := range g {
			if !b.Enabled() || b.Help().Key == "" {
				continue
			}
			hk := b.Help().Key
			padded := hk + strings.Repeat(" ", maxKeyLen-lipgloss.Width(hk))
			rows = append(rows, fmt.Sprintf("  %s%s",
				keyStyle.Render(padded),
				descStyle.Render("  "+b.Help().Desc),
			))
		}
	}
	rows = append(rows, "",
		fmt.Sprintf("  %s%s",
			keyStyle.Render(i18n.T("mouse")+strings.Repeat(" ", max(maxKeyLen-lipgloss.Width(i18n.T("mouse")), 0))),
			descStyle.Render("  "+i18n.T("help_mouse"))))

	content := title + "\n\n" + strings.Join(rows, "\n") + "\n\n" +
		lipgloss.NewStyle().Foreground(theme.ColorMutedText).Background(bg).Render(i18n.T("help_close"))

	boxWidth := 65
	if width < 69 {
		boxWidth = width - 4
	}

	return theme.CardStyle.
		Width(boxWidth).
		Render(content)
}
