package views

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/anomredux/timerail/internal/domain"
)

func sampleBuckets(t *testing.T) ([]domain.Bucket, []domain.Transaction) {
	t.Helper()
	entries := []domain.Transaction{
		{ID: "a", Timestamp: day(t, "2024-01-05"), Amount: 40, Category: "groceries"},
		{ID: "b", Timestamp: day(t, "2024-01-20"), Amount: 60, Category: "rent"},
		{ID: "c", Timestamp: day(t, "2024-02-03"), Amount: 25, Category: "groceries"},
	}
	buckets := domain.Aggregate(entries, day(t, "2024-01-01"), day(t, "2024-04-01"), domain.CadenceMonth, time.UTC)
	return buckets, entries
}

func TestBucketsView_Navigation(t *testing.T) {
	b, e := sampleBuckets(t)
	v := NewBucketsView()
	v.SetData(b, e, domain.CadenceMonth, false)

	tests := []struct {
		key  string
		want int
	}{
		{"j", 1},
		{"down", 2},
		{"j", 2},
		{"k", 1},
		{"G", 2},
		{"home", 0},
		{"up", 0},
	}
	for _, tt := range tests {
		v.Update(keyMsg(tt.key))
		if got := v.Cursor(); got != tt.want {
			t.Errorf("after %q cursor = %d, want %d", tt.key, got, tt.want)
		}
	}
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "home":
		return tea.KeyMsg{Type: tea.KeyHome}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestBucketsView_CycleCadence(t *testing.T) {
	b, e := sampleBuckets(t)
	v := NewBucketsView()
	v.SetData(b, e, domain.CadenceMonth, true)

	cmd := v.Update(keyMsg("g"))
	if cmd == nil {
		t.Fatal("g returned nil cmd")
	}
	msg, ok := cmd().(CadenceChangedMsg)
	if !ok {
		t.Fatalf("cmd() = %T, want CadenceChangedMsg", cmd())
	}
	if msg.Cadence != domain.CadenceQuarter {
		t.Errorf("Cadence = %q, want %q", msg.Cadence, domain.CadenceQuarter)
	}
}

func TestBucketsView_RenderList(t *testing.T) {
	b, e := sampleBuckets(t)
	v := NewBucketsView()
	v.SetData(b, e, domain.CadenceMonth, false)

	out := v.Render(100, 30, false)
	for _, want := range []string{"2024-01", "2024-02", "2024-03", "100.00", "25.00", "2024-01-31"} {
		if !strings.Contains(out, want) {
			t.Errorf("list missing %q", want)
		}
	}
	for i, line := range strings.Split(out, "\n") {
		if w := lipgloss.Width(line); w != 96 {
			t.Errorf("line %d width = %d, want 96", i, w)
		}
	}
}

func TestBucketsView_ScrollIndicator(t *testing.T) {
	var entries []domain.Transaction
	buckets := domain.Aggregate(entries, day(t, "2024-01-01"), day(t, "2024-03-01"), domain.CadenceDay, time.UTC)
	v := NewBucketsView()
	v.SetData(buckets, entries, domain.CadenceDay, true)

	out := v.Render(100, 13, false)
	if !strings.Contains(out, "[1-5 / 60]") {
		t.Errorf("expected scroll indicator [1-5 / 60] in output")
	}
}

func TestBucketsView_Detail(t *testing.T) {
	b, e := sampleBuckets(t)
	v := NewBucketsView()
	v.SetData(b, e, domain.CadenceMonth, false)

	v.Update(keyMsg("enter"))
	out := v.Render(100, 30, false)
	if !strings.Contains(out, "groceries") || !strings.Contains(out, "rent") {
		t.Errorf("detail should list categories of the first bucket")
	}
	if !strings.Contains(out, "60.0%") {
		t.Errorf("detail should show rent share 60.0%%")
	}

	if cmd := v.Update(keyMsg("esc")); cmd == nil {
		t.Error("esc in detail should be handled")
	}
	if cmd := v.Update(keyMsg("esc")); cmd != nil {
		t.Error("esc in list should propagate")
	}
}

func TestBucketsView_Empty(t *testing.T) {
	v := NewBucketsView()
	if out := v.Render(80, 20, true); out == "" {
		t.Error("empty view rendered nothing")
	}
	v.Update(keyMsg("enter"))
	if v.detail {
		t.Error("enter should not open detail without buckets")
	}
}

func TestBucketsView_SetDataClampsCursor(t *testing.T) {
	b, e := sampleBuckets(t)
	v := NewBucketsView()
	v.SetData(b, e, domain.CadenceMonth, false)
	v.Update(keyMsg("G"))
	v.SetData(b[:1], e, domain.CadenceMonth, false)
	if v.Cursor() != 0 {
		t.Errorf("Cursor() = %d, want 0", v.Cursor())
	}
}
