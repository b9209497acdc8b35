package model

import "time"

// Transaction represents a single financial transaction from any source.
type Transaction struct {
	Date        time.Time
	ID          string
	Description string // Raw free-text description
	AccountID   string
	Amount      float64
}

// BatchResult is a transaction augmented with its categorization outcome.
type BatchResult struct {
	Transaction       Transaction
	SuggestedCategory string
	Method            Method
	Confidence        float64
}
