// Package history implements the per-user classifier built from
// accumulated word→category vote patterns.
package history

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"palpite/internal/model"
	"palpite/internal/text"
)

// PatternStore provides read access to a user's accumulated patterns.
// Absence of data is a valid outcome: implementations return an empty
// map, not an error, when the user has no history.
type PatternStore interface {
	// GetUserPatterns returns word → category → vote count for a user.
	GetUserPatterns(ctx context.Context, userID string) (map[string]map[string]int, error)
}

// Vote bonus parameters: every 10 winning votes add 0.1 confidence, up
// to a 0.2 ceiling on top of the vote proportion.
const (
	votesBonusDivisor = 10.0
	votesBonusCap     = 0.2
)

// Readiness thresholds for HasEnoughData.
const (
	readyWordCount    = 20
	readyVotesPerWord = 3
)

// Classifier scores descriptions against a user's vote patterns.
type Classifier struct {
	store PatternStore
}

// New creates a history classifier backed by the given store.
func New(store PatternStore) *Classifier {
	return &Classifier{store: store}
}

// CategoryVotes pairs a category with its accumulated vote count.
type CategoryVotes struct {
	Category string
	Votes    int
}

// Categorize classifies a description from the user's pattern history.
// Returns (nil, nil) when the user has no usable history for this
// description: that signals "insufficient data", not an error.
func (c *Classifier) Categorize(ctx context.Context, description, userID string) (*model.ClassificationResult, error) {
	votes, total, err := c.accumulate(ctx, description, userID)
	if err != nil {
		return nil, err
	}
	if len(votes) == 0 {
		return nil, nil
	}

	winner := votes[0]

	proportion := float64(winner.Votes) / float64(total)
	bonus := float64(winner.Votes) / votesBonusDivisor
	if bonus > votesBonusCap {
		bonus = votesBonusCap
	}

	confidence := model.ClampConfidence(proportion + bonus)

	slog.Debug("history classifier matched",
		"category", winner.Category,
		"votes", winner.Votes,
		"total_votes", total,
		"confidence", confidence)

	return &model.ClassificationResult{
		Category:   winner.Category,
		Confidence: confidence,
		Method:     model.MethodHistory,
		Votes:      winner.Votes,
		TotalVotes: total,
	}, nil
}

// Scores returns the accumulated per-category votes for a description,
// sorted by votes descending (ties broken by category name). Empty when
// the user has no usable history.
func (c *Classifier) Scores(ctx context.Context, description, userID string) ([]CategoryVotes, error) {
	votes, _, err := c.accumulate(ctx, description, userID)
	return votes, err
}

// accumulate sums per-category votes across the description's normalized
// words and returns them sorted, along with the grand total.
func (c *Classifier) accumulate(ctx context.Context, description, userID string) ([]CategoryVotes, int, error) {
	patterns, err := c.store.GetUserPatterns(ctx, userID)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to load user patterns: %w", err)
	}
	if len(patterns) == 0 {
		return nil, 0, nil
	}

	accumulated := make(map[string]int)
	for _, word := range text.SignificantWords(description) {
		for category, count := range patterns[word] {
			accumulated[category] += count
		}
	}
	if len(accumulated) == 0 {
		return nil, 0, nil
	}

	votes := make([]CategoryVotes, 0, len(accumulated))
	total := 0
	for category, count := range accumulated {
		votes = append(votes, CategoryVotes{Category: category, Votes: count})
		total += count
	}

	// Deterministic winner: more votes first, then lexically smaller name.
	sort.Slice(votes, func(i, j int) bool {
		if votes[i].Votes != votes[j].Votes {
			return votes[i].Votes > votes[j].Votes
		}
		return votes[i].Category < votes[j].Category
	})

	return votes, total, nil
}

// HasEnoughData reports whether the user's history is mature enough to be
// trusted as a primary signal: at least 20 distinct words with 3 or more
// cumulative votes each.
func (c *Classifier) HasEnoughData(ctx context.Context, userID string) (bool, error) {
	patterns, err := c.store.GetUserPatterns(ctx, userID)
	if err != nil {
		return false, fmt.Errorf("failed to load user patterns: %w", err)
	}

	ready := 0
	for _, categories := range patterns {
		total := 0
		for _, count := range categories {
			total += count
		}
		if total >= readyVotesPerWord {
			ready++
			if ready >= readyWordCount {
				return true, nil
			}
		}
	}

	return false, nil
}
