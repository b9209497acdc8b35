package storage

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"palpite/internal/model"
	"palpite/internal/text"
)

// GetUserPatterns returns the accumulated word → category → vote counts
// for a user. A user without history yields an empty map, not an error.
func (s *SQLiteStorage) GetUserPatterns(ctx context.Context, userID string) (map[string]map[string]int, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(userID, "userID"); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT word, category, votes
		FROM user_patterns
		WHERE user_id = ? AND votes > 0
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query user patterns: %w", err)
	}
	defer rows.Close()

	patterns := make(map[string]map[string]int)
	for rows.Next() {
		var word, category string
		var votes int
		if err := rows.Scan(&word, &category, &votes); err != nil {
			return nil, fmt.Errorf("failed to scan pattern row: %w", err)
		}
		if patterns[word] == nil {
			patterns[word] = make(map[string]int)
		}
		patterns[word][category] = votes
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating patterns: %w", err)
	}

	slog.Debug("loaded user patterns", "user_id", userID, "words", len(patterns))
	return patterns, nil
}

// Outcome is one confirmed categorization, recorded for learning and
// auditability.
type Outcome struct {
	CreatedAt   time.Time
	Description string
	Category    string
	Method      model.Method
	Confidence  float64
}

// RecordOutcome appends a confirmed categorization: one row in the
// outcome log plus a vote increment for every significant word of the
// description. Votes only ever grow.
func (s *SQLiteStorage) RecordOutcome(ctx context.Context, userID string, outcome Outcome) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(userID, "userID"); err != nil {
		return err
	}
	if err := validateString(outcome.Description, "description"); err != nil {
		return err
	}
	if err := validateString(outcome.Category, "category"); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO outcomes (user_id, description, category, method, confidence)
		VALUES (?, ?, ?, ?, ?)`,
		userID, outcome.Description, outcome.Category, string(outcome.Method), outcome.Confidence,
	); err != nil {
		return fmt.Errorf("failed to insert outcome: %w", err)
	}

	words := text.SignificantWords(outcome.Description)
	for _, word := range words {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO user_patterns (user_id, word, category, votes, updated_at)
			VALUES (?, ?, ?, 1, CURRENT_TIMESTAMP)
			ON CONFLICT(user_id, word, category) DO UPDATE SET
				votes = votes + 1,
				updated_at = CURRENT_TIMESTAMP`,
			userID, word, outcome.Category,
		); err != nil {
			return fmt.Errorf("failed to upsert pattern vote for %q: %w", word, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit outcome: %w", err)
	}

	slog.Debug("recorded outcome",
		"user_id", userID,
		"category", outcome.Category,
		"words", len(words))
	return nil
}

// GetOutcomeResults replays the stored outcome log as classification
// results, for aggregate reporting.
func (s *SQLiteStorage) GetOutcomeResults(ctx context.Context, userID string) ([]model.ClassificationResult, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(userID, "userID"); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT category, method, confidence
		FROM outcomes
		WHERE user_id = ?
		ORDER BY created_at, id
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query outcomes: %w", err)
	}
	defer rows.Close()

	var results []model.ClassificationResult
	for rows.Next() {
		var result model.ClassificationResult
		var method string
		if err := rows.Scan(&result.Category, &method, &result.Confidence); err != nil {
			return nil, fmt.Errorf("failed to scan outcome row: %w", err)
		}
		result.Method = model.Method(method)
		results = append(results, result)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating outcomes: %w", err)
	}

	return results, nil
}
