package parser

import (
	"bufio"
	"encoding/json"
	"io"
	"time"

	"github.com/anomredux/timerail/internal/domain"
)

// rawRecord maps one JSONL transaction line.
type rawRecord struct {
	ID       string   `json:"id"`
	Date     string   `json:"date"`
	Amount   *float64 `json:"amount"`
	Category string   `json:"category"`
	Account  string   `json:"account"`
}

// ParseResult holds parsed transactions and error stats.
type ParseResult struct {
	Entries    []domain.Transaction
	SkipCount  int
	ErrorCount int
}

// ParseReader reads JSONL from an io.Reader, streaming line by line.
// Date-only values are read as midnight in tz. source is recorded on each
// transaction.
func ParseReader(r io.Reader, source string, tz *time.Location) ParseResult {
	var result ParseResult
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024) // 1MB max line

	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		var rec rawRecord
		if err := json.Unmarshal(line, &rec); err != nil {
			result.ErrorCount++
			continue
		}

		// Records without a date or amount carry nothing to aggregate
		if rec.Date == "" || rec.Amount == nil {
			result.SkipCount++
			continue
		}

		ts, err := parseDate(rec.Date, tz)
		if err != nil {
			result.ErrorCount++
			continue
		}

		result.Entries = append(result.Entries, domain.Transaction{
			ID:        rec.ID,
			Timestamp: ts,
			Amount:    *rec.Amount,
			Category:  rec.Category,
			Account:   rec.Account,
			Source:    source,
		})
	}

	if err := scanner.Err(); err != nil {
		result.ErrorCount++
	}

	return result
}

func parseDate(s string, tz *time.Location) (time.Time, error) {
	if t, err := time.ParseInLocation("2006-01-02", s, tz); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, err
	}
	return t.In(tz), nil
}
