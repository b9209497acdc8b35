package scorer

import (
	"log/slog"

	"palpite/internal/model"
)

// KeywordConfidenceFloor is the minimum confidence for the keyword
// classifier to commit to a category.
const KeywordConfidenceFloor = 0.8

// KeywordClassifier is a thin policy wrapper over the lexical scorer: it
// yields a category only when the best score clears a confidence floor.
type KeywordClassifier struct {
	scorer *Scorer
	floor  float64
}

// NewKeywordClassifier wraps a scorer with the default confidence floor.
func NewKeywordClassifier(s *Scorer) *KeywordClassifier {
	return &KeywordClassifier{scorer: s, floor: KeywordConfidenceFloor}
}

// Classify returns a keyword-method result when the best category clears
// the floor, or nil when the match is too weak to commit.
func (k *KeywordClassifier) Classify(description string) *model.ClassificationResult {
	top := k.scorer.CategoryScores(description).Top()
	if top == nil || top.Category == k.scorer.fallback || top.Confidence <= k.floor {
		return nil
	}

	slog.Debug("keyword classifier matched",
		"category", top.Category,
		"score", top.Score,
		"confidence", top.Confidence)

	return &model.ClassificationResult{
		Category:   top.Category,
		Confidence: top.Confidence,
		Method:     model.MethodKeyword,
		Score:      top.Score,
	}
}
