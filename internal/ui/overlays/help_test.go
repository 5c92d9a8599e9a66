package overlays

import (
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/key"
)

func TestHelp_Render(t *testing.T) {
	groups := [][]key.Binding{
		{key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit"))},
		{key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "remove"), key.WithDisabled())},
	}
	out := NewHelpOverlay(groups...).Render(120, 40)
	if !strings.Contains(out, "quit") {
		t.Errorf("Render() missing enabled binding:\n%s", out)
	}
	if strings.Contains(out, "remove") {
		t.Errorf("Render() shows a disabled binding:\n%s", out)
	}
}
