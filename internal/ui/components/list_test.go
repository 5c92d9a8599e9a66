package components

import "testing"

func TestScrollTo(t *testing.T) {
	tests := []struct {
		name                    string
		cursor, scroll, visible int
		want                    int
	}{
		{"inside window", 3, 0, 5, 0},
		{"above window", 1, 4, 5, 1},
		{"below window", 9, 0, 5, 5},
		{"last visible row", 4, 0, 5, 0},
		{"no room", 7, 2, 0, 7},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ScrollTo(tt.cursor, tt.scroll, tt.visible); got != tt.want {
				t.Errorf("ScrollTo(%d, %d, %d) = %d, want %d", tt.cursor, tt.scroll, tt.visible, got, tt.want)
			}
		})
	}
}

func TestScrollIndicator(t *testing.T) {
	if got := ScrollIndicator(0, 10, 8); got != "" {
		t.Errorf("ScrollIndicator with every row visible = %q, want empty", got)
	}
	if got := VisualWidth(ScrollIndicator(5, 10, 40)); got != len("[6-15 / 40]") {
		t.Errorf("ScrollIndicator(5, 10, 40) width = %d, want %d", got, len("[6-15 / 40]"))
	}
}
