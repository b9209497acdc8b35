// Package model defines the core domain models used throughout the application.
package model

import "strings"

// Method identifies which classifier produced a result.
type Method string

// Classification method constants.
const (
	MethodHistory  Method = "history"
	MethodKeyword  Method = "keyword"
	MethodScoring  Method = "scoring"
	MethodFallback Method = "fallback"
	MethodError    Method = "error"
)

// UncertainSuffix marks results chosen as a best-effort pick when no
// classifier cleared its confidence threshold.
const UncertainSuffix = "_uncertain"

// Uncertain returns the low-confidence variant of a method tag.
func (m Method) Uncertain() Method {
	return m + UncertainSuffix
}

// IsUncertain reports whether the method tag carries the uncertain suffix.
func (m Method) IsUncertain() bool {
	return strings.HasSuffix(string(m), UncertainSuffix)
}

// Alternative is a runner-up category attached to a classification result.
type Alternative struct {
	Category   string
	Score      int
	Confidence float64
}

// ClassificationResult represents the outcome of classifying one description.
// Value object: created fresh per call, never mutated after return.
type ClassificationResult struct {
	Category     string
	Method       Method
	Error        string
	Alternatives []Alternative
	Confidence   float64
	Score        int
	Votes        int
	TotalVotes   int
}

// ClampConfidence bounds a confidence value to [0, 1].
func ClampConfidence(c float64) float64 {
	if c < 0 {
		return 0
	}
	if c > 1 {
		return 1
	}
	return c
}
