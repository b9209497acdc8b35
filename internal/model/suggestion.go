package model

import "sort"

// Suggestion is a single ranked category option offered to the user.
type Suggestion struct {
	Category   string
	Source     Method
	Confidence float64
	Votes      int
	Score      int
}

// Suggestions is a slice of Suggestion that supports sorting and merging.
type Suggestions []Suggestion

// Sort orders suggestions by confidence descending; equal confidences
// fall back to category name so the order stays deterministic.
func (s Suggestions) Sort() {
	sort.Slice(s, func(i, j int) bool {
		if s[i].Confidence != s[j].Confidence {
			return s[i].Confidence > s[j].Confidence
		}
		return s[i].Category < s[j].Category
	})
}

// Merge deduplicates suggestions by category, keeping the
// highest-confidence entry for each, then sorts and truncates to limit.
func Merge(candidates []Suggestion, limit int) Suggestions {
	best := make(map[string]Suggestion, len(candidates))
	for _, c := range candidates {
		if existing, ok := best[c.Category]; ok && existing.Confidence >= c.Confidence {
			continue
		}
		best[c.Category] = c
	}

	merged := make(Suggestions, 0, len(best))
	for _, s := range best {
		merged = append(merged, s)
	}
	merged.Sort()

	if limit > 0 && len(merged) > limit {
		merged = merged[:limit]
	}
	return merged
}
