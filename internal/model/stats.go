package model

// Stats aggregates a set of classification results.
type Stats struct {
	ByMethod      map[Method]int
	Total         int
	NeedsReview   int
	AvgConfidence float64
}

// NewStats returns a zeroed Stats with an initialized method map.
func NewStats() Stats {
	return Stats{ByMethod: make(map[Method]int)}
}
