package domain

import (
	"math"
	"testing"
	"time"
)

func TestAggregate_Continuous(t *testing.T) {
	utc := time.UTC
	start := time.Date(2024, 1, 15, 0, 0, 0, 0, utc)
	end := time.Date(2024, 4, 10, 0, 0, 0, 0, utc)
	entries := []Transaction{
		{Timestamp: time.Date(2024, 1, 20, 10, 0, 0, 0, utc), Amount: 10},
		{Timestamp: time.Date(2024, 1, 31, 23, 0, 0, 0, utc), Amount: 5},
		{Timestamp: time.Date(2024, 3, 1, 0, 0, 0, 0, utc), Amount: 7},
		// outside the range
		{Timestamp: time.Date(2024, 1, 14, 10, 0, 0, 0, utc), Amount: 99},
		{Timestamp: end, Amount: 99},
	}

	buckets := Aggregate(entries, start, end, CadenceMonth, utc)
	if len(buckets) != 4 {
		t.Fatalf("got %d buckets, want 4 (Jan..Apr)", len(buckets))
	}

	want := []struct {
		label string
		total float64
		count int
	}{
		{"2024-01", 15, 2},
		{"2024-02", 0, 0},
		{"2024-03", 7, 1},
		{"2024-04", 0, 0},
	}
	for i, w := range want {
		b := buckets[i]
		if b.Label != w.label || b.Total != w.total || b.Count != w.count {
			t.Errorf("bucket %d = {%s %v %d}, want {%s %v %d}", i, b.Label, b.Total, b.Count, w.label, w.total, w.count)
		}
	}

	if !buckets[0].Start.Equal(start) {
		t.Errorf("first bucket Start = %v, want clipped to %v", buckets[0].Start, start)
	}
	if !buckets[3].End.Equal(end) {
		t.Errorf("last bucket End = %v, want clipped to %v", buckets[3].End, end)
	}
	for i := 1; i < len(buckets); i++ {
		if !buckets[i].Start.Equal(buckets[i-1].End) {
			t.Errorf("gap between bucket %d and %d", i-1, i)
		}
	}
}

func TestAggregate_Timezone(t *testing.T) {
	seoul, err := time.LoadLocation("Asia/Seoul")
	if err != nil {
		t.Skip("tzdata unavailable")
	}
	// 2026-02-21 23:30 UTC = 2026-02-22 08:30 KST
	entries := []Transaction{
		{Timestamp: time.Date(2026, 2, 21, 23, 30, 0, 0, time.UTC), Amount: 1},
		{Timestamp: time.Date(2026, 2, 21, 10, 0, 0, 0, time.UTC), Amount: 2},
	}
	start := time.Date(2026, 2, 21, 0, 0, 0, 0, seoul)
	end := time.Date(2026, 2, 23, 0, 0, 0, 0, seoul)

	buckets := Aggregate(entries, start, end, CadenceDay, seoul)
	if len(buckets) != 2 {
		t.Fatalf("got %d buckets, want 2", len(buckets))
	}
	if buckets[0].Total != 2 || buckets[1].Total != 1 {
		t.Errorf("totals = %v, %v, want 2, 1", buckets[0].Total, buckets[1].Total)
	}
}

func TestAggregate_AutoCadence(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	buckets := Aggregate(nil, start, start.AddDate(0, 0, 7), "", time.UTC)
	if len(buckets) != 7 {
		t.Errorf("got %d buckets, want 7 daily buckets", len(buckets))
	}
}

func TestAggregate_Empty(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	if got := Aggregate(nil, start, start, CadenceDay, time.UTC); got != nil {
		t.Errorf("empty range: got %d buckets, want none", len(got))
	}
}

func TestSummarize(t *testing.T) {
	utc := time.UTC
	start := time.Date(2024, 3, 1, 0, 0, 0, 0, utc)
	end := time.Date(2024, 4, 1, 0, 0, 0, 0, utc)
	entries := []Transaction{
		{Timestamp: start, Amount: -40, Category: "groceries"},
		{Timestamp: start.AddDate(0, 0, 3), Amount: -10, Category: "groceries"},
		{Timestamp: start.AddDate(0, 0, 5), Amount: 100, Category: "salary"},
		{Timestamp: start.AddDate(0, 0, 6), Amount: -5},
		{Timestamp: end, Amount: 1000, Category: "salary"},
	}

	s := Summarize(entries, start, end)
	if s.Count != 4 {
		t.Errorf("Count = %d, want 4", s.Count)
	}
	if s.Total != 45 {
		t.Errorf("Total = %v, want 45", s.Total)
	}

	cats := s.Categories()
	if len(cats) != 3 {
		t.Fatalf("got %d categories, want 3", len(cats))
	}
	if cats[0].Category != "salary" || cats[1].Category != "groceries" || cats[2].Category != "uncategorized" {
		t.Errorf("category order = %v", cats)
	}
}

func TestChange(t *testing.T) {
	tests := []struct {
		name      string
		cur, prev float64
		want      float64
		ok        bool
	}{
		{"increase", 150, 100, 50, true},
		{"decrease", 50, 100, -50, true},
		{"negative base", -150, -100, -50, true},
		{"zero base", 10, 0, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Change(tt.cur, tt.prev)
			if ok != tt.ok || math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Change(%v, %v) = %v, %v, want %v, %v", tt.cur, tt.prev, got, ok, tt.want, tt.ok)
			}
		})
	}
}
