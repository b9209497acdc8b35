// Package scorer implements keyword-based lexical scoring of transaction
// descriptions against the static keyword table.
package scorer

import (
	"log/slog"
	"strings"

	"palpite/internal/keywords"
	"palpite/internal/model"
)

// Match tier weights. Each keyword contributes the weight of the first
// tier it matches; tiers never stack for the same keyword.
const (
	scoreExact      = 100 // keyword equals a whole token
	scoreStartsWith = 75  // description starts with the keyword
	scoreContains   = 50  // keyword appears as a substring
	scorePartial    = 30  // keyword and a token overlap in either direction
)

// FallbackConfidence is the confidence attached to the catch-all result.
const FallbackConfidence = 0.3

// Scorer scores descriptions against a keyword table. It holds no mutable
// state and is safe for concurrent use.
type Scorer struct {
	table    *keywords.Table
	fallback string
}

// New creates a scorer over the given keyword table. The fallback name
// must match the one used by the arbiter.
func New(table *keywords.Table, fallback string) *Scorer {
	return &Scorer{table: table, fallback: fallback}
}

// ScoreMatch scores a description against one keyword list.
func (s *Scorer) ScoreMatch(description string, kws []string) int {
	description = strings.ToLower(strings.TrimSpace(description))
	if description == "" {
		return 0
	}

	tokens := strings.Fields(description)

	total := 0
	for _, keyword := range kws {
		total += scoreKeyword(description, tokens, keyword)
	}
	return total
}

// scoreKeyword returns the weight of the first matching tier for a single
// keyword, or 0 when nothing matches.
func scoreKeyword(description string, tokens []string, keyword string) int {
	for _, token := range tokens {
		if token == keyword {
			return scoreExact
		}
	}

	if strings.HasPrefix(description, keyword) {
		return scoreStartsWith
	}

	if strings.Contains(description, keyword) {
		return scoreContains
	}

	for _, token := range tokens {
		if strings.Contains(token, keyword) || strings.Contains(keyword, token) {
			return scorePartial
		}
	}

	return 0
}

// CategoryScores scores a description against every category and returns
// the results sorted by score descending (ties broken by name).
func (s *Scorer) CategoryScores(description string) model.CategoryScores {
	names := s.table.Categories()
	scores := make(model.CategoryScores, 0, len(names))

	for _, name := range names {
		score := s.ScoreMatch(description, s.table.Keywords(name))
		confidence := float64(score) / 100.0
		if confidence > 1.0 {
			confidence = 1.0
		}
		scores = append(scores, model.CategoryScore{
			Category:   name,
			Score:      score,
			Confidence: confidence,
		})
	}

	scores.Sort()
	return scores
}

// BestCategory returns the top-scoring category for a description, or the
// fallback result when no category reaches the partial-match tier.
func (s *Scorer) BestCategory(description string) model.ClassificationResult {
	if strings.TrimSpace(description) == "" {
		return model.ClassificationResult{
			Category:   s.fallback,
			Confidence: FallbackConfidence,
			Method:     model.MethodFallback,
		}
	}

	scores := s.CategoryScores(description)
	top := scores.Top()
	alternatives := scores.Alternatives(3)

	if top == nil || top.Score < scorePartial {
		slog.Debug("no category above partial tier, using fallback",
			"description", description)
		return model.ClassificationResult{
			Category:     s.fallback,
			Confidence:   FallbackConfidence,
			Method:       model.MethodFallback,
			Alternatives: alternatives,
		}
	}

	return model.ClassificationResult{
		Category:     top.Category,
		Confidence:   top.Confidence,
		Method:       model.MethodScoring,
		Score:        top.Score,
		Alternatives: alternatives,
	}
}
