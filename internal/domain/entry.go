package domain

import "time"

// Transaction is a single dated amount read from a data file.
type Transaction struct {
	ID        string
	Timestamp time.Time
	Amount    float64
	Category  string
	Account   string
	Source    string // derived from file path
}

// DedupKey returns the unique key for deduplication. Transactions without
// an id are never considered duplicates.
func (t Transaction) DedupKey() string {
	return t.ID
}

// Day returns the calendar day of the transaction in tz.
func (t Transaction) Day(tz *time.Location) string {
	return t.Timestamp.In(tz).Format("2006-01-02")
}
