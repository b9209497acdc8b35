// Package engine implements the hybrid arbiter that combines the
// history, keyword and lexical classifiers under a priority cascade.
package engine

import (
	"context"
	"log/slog"
	"strings"

	"palpite/internal/history"
	"palpite/internal/keywords"
	"palpite/internal/model"
	"palpite/internal/scorer"
	"palpite/internal/text"
)

// Confidence attached to results produced by the failure path.
const errorConfidence = 0.2

// Config holds the cascade thresholds and batch settings.
type Config struct {
	Fallback         string
	HistoryThreshold float64
	ScoringThreshold float64
	MaxSuggestions   int
	BatchWorkers     int
}

// DefaultConfig returns the default engine configuration.
func DefaultConfig() Config {
	return Config{
		Fallback:         keywords.FallbackCategory,
		HistoryThreshold: 0.7,
		ScoringThreshold: 0.6,
		MaxSuggestions:   3,
		BatchWorkers:     4,
	}
}

// Engine orchestrates the three classifiers. It holds no mutable state:
// concurrent calls are independent and idempotent given the same
// persisted patterns.
type Engine struct {
	history *history.Classifier
	keyword *scorer.KeywordClassifier
	scorer  *scorer.Scorer
	config  Config
}

// New creates an engine with the default configuration.
func New(hist *history.Classifier, s *scorer.Scorer) *Engine {
	return NewWithConfig(hist, s, DefaultConfig())
}

// NewWithConfig creates an engine with custom configuration.
func NewWithConfig(hist *history.Classifier, s *scorer.Scorer, config Config) *Engine {
	return &Engine{
		history: hist,
		keyword: scorer.NewKeywordClassifier(s),
		scorer:  s,
		config:  config,
	}
}

// AutoCategorize runs the priority cascade for one description. The
// contract is total: every failure degrades to a low-confidence result,
// never an error.
func (e *Engine) AutoCategorize(ctx context.Context, description, userID string) model.ClassificationResult {
	if strings.TrimSpace(description) == "" {
		return e.fallbackResult()
	}

	historyResult, err := e.history.Categorize(ctx, description, userID)
	if err != nil {
		return e.errorResult(description, err)
	}
	if historyResult != nil && historyResult.Confidence > e.config.HistoryThreshold {
		slog.Debug("cascade resolved by history",
			"description", description,
			"category", historyResult.Category)
		return *historyResult
	}

	keywordResult := e.keyword.Classify(description)
	if keywordResult != nil {
		slog.Debug("cascade resolved by keyword",
			"description", description,
			"category", keywordResult.Category)
		return *keywordResult
	}

	scoringResult := e.scorer.BestCategory(description)
	if scoringResult.Method == model.MethodScoring && scoringResult.Confidence > e.config.ScoringThreshold {
		slog.Debug("cascade resolved by scoring",
			"description", description,
			"category", scoringResult.Category)
		return scoringResult
	}

	// No classifier cleared its threshold: surface the most confident
	// candidate, tagged uncertain. A scoring result that fell through to
	// the catch-all category is not a real candidate.
	var best *model.ClassificationResult
	for _, candidate := range []*model.ClassificationResult{historyResult, keywordResult} {
		if candidate != nil && (best == nil || candidate.Confidence > best.Confidence) {
			best = candidate
		}
	}
	if scoringResult.Method == model.MethodScoring &&
		(best == nil || scoringResult.Confidence > best.Confidence) {
		best = &scoringResult
	}

	if best != nil {
		uncertain := *best
		uncertain.Method = best.Method.Uncertain()
		slog.Debug("cascade resolved by uncertain pick",
			"description", description,
			"category", uncertain.Category,
			"method", uncertain.Method)
		return uncertain
	}

	return e.fallbackResult()
}

// SuggestCategories runs all three classifiers and merges their outputs
// into a ranked, deduplicated list of at most MaxSuggestions entries.
// Errors are swallowed, logged and reported as no suggestions.
func (e *Engine) SuggestCategories(ctx context.Context, description, userID string) model.Suggestions {
	if strings.TrimSpace(description) == "" {
		return model.Suggestions{}
	}

	var candidates []model.Suggestion

	historyResult, err := e.history.Categorize(ctx, description, userID)
	if err != nil {
		slog.Error("suggestion generation failed", "description", description, "error", err)
		return model.Suggestions{}
	}
	if historyResult != nil {
		candidates = append(candidates, model.Suggestion{
			Category:   historyResult.Category,
			Confidence: historyResult.Confidence,
			Source:     model.MethodHistory,
			Votes:      historyResult.Votes,
		})
	}

	if keywordResult := e.keyword.Classify(description); keywordResult != nil &&
		keywordResult.Category != e.config.Fallback {
		candidates = append(candidates, model.Suggestion{
			Category:   keywordResult.Category,
			Confidence: keywordResult.Confidence,
			Source:     model.MethodKeyword,
			Score:      keywordResult.Score,
		})
	}

	scores := e.scorer.CategoryScores(description).NonZero()
	if len(scores) > e.config.MaxSuggestions {
		scores = scores[:e.config.MaxSuggestions]
	}
	for _, score := range scores {
		candidates = append(candidates, model.Suggestion{
			Category:   score.Category,
			Confidence: score.Confidence,
			Source:     model.MethodScoring,
			Score:      score.Score,
		})
	}

	return model.Merge(candidates, e.config.MaxSuggestions)
}

// CalculateSimilarity measures how close two descriptions are, for
// callers normalizing near-duplicate descriptions.
func (e *Engine) CalculateSimilarity(a, b string) float64 {
	return text.Similarity(a, b)
}

func (e *Engine) fallbackResult() model.ClassificationResult {
	return model.ClassificationResult{
		Category:   e.config.Fallback,
		Confidence: scorer.FallbackConfidence,
		Method:     model.MethodFallback,
	}
}

func (e *Engine) errorResult(description string, err error) model.ClassificationResult {
	slog.Error("classification failed, using fallback",
		"description", description,
		"error", err)
	return model.ClassificationResult{
		Category:   e.config.Fallback,
		Confidence: errorConfidence,
		Method:     model.MethodError,
		Error:      err.Error(),
	}
}
