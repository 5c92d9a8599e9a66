package parser

import (
	"sort"

	"github.com/anomredux/timerail/internal/domain"
)

// Dedup removes transactions with repeated ids, keeping the first
// occurrence (earliest timestamp). Transactions without an id are kept.
// Note: sorts the input slice in place.
func Dedup(entries []domain.Transaction) []domain.Transaction {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Timestamp.Before(entries[j].Timestamp)
	})

	seen := make(map[string]struct{}, len(entries))
	result := make([]domain.Transaction, 0, len(entries))

	for _, e := range entries {
		key := e.DedupKey()
		if key == "" {
			result = append(result, e)
			continue
		}
		if _, exists := seen[key]; exists {
			continue
		}
		seen[key] = struct{}{}
		result = append(result, e)
	}

	return result
}
