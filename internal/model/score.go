package model

import (
	"fmt"
	"sort"
)

// CategoryScore represents how strongly a description matches a category's
// keyword list.
type CategoryScore struct {
	Category   string
	Score      int
	Confidence float64
}

// Validate ensures the CategoryScore has valid data.
func (c *CategoryScore) Validate() error {
	if c.Category == "" {
		return fmt.Errorf("category name is required")
	}
	if c.Score < 0 {
		return fmt.Errorf("score must be non-negative, got %d", c.Score)
	}
	if c.Confidence < 0.0 || c.Confidence > 1.0 {
		return fmt.Errorf("confidence must be between 0.0 and 1.0, got %.2f", c.Confidence)
	}
	return nil
}

// CategoryScores is a slice of CategoryScore that supports sorting and
// utility methods.
type CategoryScores []CategoryScore

// Len implements sort.Interface.
func (c CategoryScores) Len() int {
	return len(c)
}

// Less implements sort.Interface - higher scores come first.
func (c CategoryScores) Less(i, j int) bool {
	if c[i].Score != c[j].Score {
		return c[i].Score > c[j].Score
	}
	// If scores are equal, sort by category name for consistency
	return c[i].Category < c[j].Category
}

// Swap implements sort.Interface.
func (c CategoryScores) Swap(i, j int) {
	c[i], c[j] = c[j], c[i]
}

// Sort sorts the scores in descending order.
func (c CategoryScores) Sort() {
	sort.Sort(c)
}

// Top returns the highest-scoring category, or nil if empty.
func (c CategoryScores) Top() *CategoryScore {
	if len(c) == 0 {
		return nil
	}
	c.Sort()
	return &c[0]
}

// NonZero returns only the entries with a positive score, in sorted order.
func (c CategoryScores) NonZero() CategoryScores {
	c.Sort()

	var result CategoryScores
	for _, score := range c {
		if score.Score > 0 {
			result = append(result, score)
		}
	}
	return result
}

// Alternatives returns up to n runner-up entries (ranks 2 onward) that
// have a positive score.
func (c CategoryScores) Alternatives(n int) []Alternative {
	nonZero := c.NonZero()
	if len(nonZero) <= 1 || n <= 0 {
		return nil
	}

	rest := nonZero[1:]
	if len(rest) > n {
		rest = rest[:n]
	}

	alts := make([]Alternative, len(rest))
	for i, score := range rest {
		alts[i] = Alternative{
			Category:   score.Category,
			Score:      score.Score,
			Confidence: score.Confidence,
		}
	}
	return alts
}
