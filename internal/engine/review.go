package engine

import "palpite/internal/model"

// Review thresholds.
const (
	reviewConfidenceFloor = 0.5  // anything below always needs review
	fallbackReviewFloor   = 0.7  // fallback category needs review below this
	nearTieRatio          = 0.85 // runner-up within 85% of the winner is ambiguous
)

// NeedsManualReview reports whether a classification is too weak or too
// ambiguous to accept without user confirmation.
func (e *Engine) NeedsManualReview(result model.ClassificationResult) bool {
	if result.Confidence < reviewConfidenceFloor {
		return true
	}

	if result.Category == e.config.Fallback && result.Confidence < fallbackReviewFloor {
		return true
	}

	switch result.Method {
	case model.MethodFallback, model.MethodError:
		return true
	}

	if result.Method.IsUncertain() {
		return true
	}

	if len(result.Alternatives) > 0 {
		best := result.Alternatives[0]
		if result.Score > 0 && best.Score > 0 {
			if float64(best.Score) >= nearTieRatio*float64(result.Score) {
				return true
			}
		} else if best.Confidence >= nearTieRatio*result.Confidence {
			return true
		}
	}

	return false
}

// Stats aggregates a set of prior classification results: per-method
// counts, mean confidence and how many need manual review. Returns
// zeroed stats on empty input.
func (e *Engine) Stats(results []model.ClassificationResult) model.Stats {
	stats := model.NewStats()
	if len(results) == 0 {
		return stats
	}

	sum := 0.0
	for _, result := range results {
		stats.Total++
		stats.ByMethod[result.Method]++
		sum += result.Confidence
		if e.NeedsManualReview(result) {
			stats.NeedsReview++
		}
	}
	stats.AvgConfidence = sum / float64(stats.Total)

	return stats
}
