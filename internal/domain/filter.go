package domain

import (
	"fmt"
	"time"
)

// FilterByRange returns entries with start <= Timestamp < end.
func FilterByRange(entries []Transaction, start, end time.Time) []Transaction {
	filtered := make([]Transaction, 0, len(entries))
	for _, e := range entries {
		if e.Timestamp.Before(start) || !e.Timestamp.Before(end) {
			continue
		}
		filtered = append(filtered, e)
	}
	return filtered
}

// ParseDateRange turns inclusive "2006-01-02" dates into a half-open range
// in tz. An empty since or until leaves that side at the zero time.
func ParseDateRange(since, until string, tz *time.Location) (start, end time.Time, err error) {
	if since != "" {
		start, err = time.ParseInLocation("2006-01-02", since, tz)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("invalid since date: %w", err)
		}
	}
	if until != "" {
		t, err := time.ParseInLocation("2006-01-02", until, tz)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("invalid until date: %w", err)
		}
		end = t.AddDate(0, 0, 1)
	}
	return start, end, nil
}
