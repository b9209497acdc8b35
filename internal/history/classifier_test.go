package history

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"palpite/internal/model"
)

// stubStore is an in-memory PatternStore for tests.
type stubStore struct {
	patterns map[string]map[string]map[string]int // userID → word → category → votes
	err      error
}

func (s *stubStore) GetUserPatterns(_ context.Context, userID string) (map[string]map[string]int, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.patterns[userID], nil
}

func TestClassifier_Categorize(t *testing.T) {
	ctx := context.Background()

	store := &stubStore{patterns: map[string]map[string]map[string]int{
		"user-1": {
			"mercado": {"Alimentação": 5},
			"uber":    {"Transporte": 3},
		},
	}}
	c := New(store)

	t.Run("accumulates votes for matching word", func(t *testing.T) {
		result, err := c.Categorize(ctx, "mercado extra", "user-1")
		require.NoError(t, err)
		require.NotNil(t, result)

		assert.Equal(t, "Alimentação", result.Category)
		assert.Equal(t, model.MethodHistory, result.Method)
		assert.Equal(t, 5, result.Votes)
		assert.Equal(t, 5, result.TotalVotes)
		// proportion 1.0 + bonus min(5/10, 0.2) clamped to 1.0
		assert.Equal(t, 1.0, result.Confidence)
	})

	t.Run("nil for unknown user", func(t *testing.T) {
		result, err := c.Categorize(ctx, "mercado extra", "stranger")
		require.NoError(t, err)
		assert.Nil(t, result)
	})

	t.Run("nil when no word matches", func(t *testing.T) {
		result, err := c.Categorize(ctx, "farmácia pague menos", "user-1")
		require.NoError(t, err)
		assert.Nil(t, result)
	})

	t.Run("nil for empty description", func(t *testing.T) {
		result, err := c.Categorize(ctx, "", "user-1")
		require.NoError(t, err)
		assert.Nil(t, result)
	})

	t.Run("propagates store errors", func(t *testing.T) {
		broken := New(&stubStore{err: errors.New("disk on fire")})
		_, err := broken.Categorize(ctx, "mercado", "user-1")
		assert.Error(t, err)
	})
}

func TestClassifier_Categorize_SplitVotes(t *testing.T) {
	ctx := context.Background()

	store := &stubStore{patterns: map[string]map[string]map[string]int{
		"user-1": {
			"posto": {"Transporte": 6, "Alimentação": 2},
		},
	}}
	c := New(store)

	result, err := c.Categorize(ctx, "posto shell", "user-1")
	require.NoError(t, err)
	require.NotNil(t, result)

	assert.Equal(t, "Transporte", result.Category)
	assert.Equal(t, 6, result.Votes)
	assert.Equal(t, 8, result.TotalVotes)
	// proportion 6/8 = 0.75, bonus min(6/10, 0.2) = 0.2
	assert.InDelta(t, 0.95, result.Confidence, 1e-9)
}

func TestClassifier_Categorize_TieBreaksByName(t *testing.T) {
	ctx := context.Background()

	store := &stubStore{patterns: map[string]map[string]map[string]int{
		"user-1": {
			"padaria": {"Lazer": 4, "Alimentação": 4},
		},
	}}
	c := New(store)

	result, err := c.Categorize(ctx, "padaria central", "user-1")
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, "Alimentação", result.Category)
}

func TestClassifier_Scores(t *testing.T) {
	ctx := context.Background()

	store := &stubStore{patterns: map[string]map[string]map[string]int{
		"user-1": {
			"posto":    {"Transporte": 6, "Alimentação": 2},
			"ipiranga": {"Transporte": 1},
		},
	}}
	c := New(store)

	scores, err := c.Scores(ctx, "posto ipiranga", "user-1")
	require.NoError(t, err)
	require.Len(t, scores, 2)

	assert.Equal(t, CategoryVotes{Category: "Transporte", Votes: 7}, scores[0])
	assert.Equal(t, CategoryVotes{Category: "Alimentação", Votes: 2}, scores[1])
}

func TestClassifier_HasEnoughData(t *testing.T) {
	ctx := context.Background()

	t.Run("empty history is not ready", func(t *testing.T) {
		c := New(&stubStore{patterns: map[string]map[string]map[string]int{}})
		ready, err := c.HasEnoughData(ctx, "user-1")
		require.NoError(t, err)
		assert.False(t, ready)
	})

	t.Run("needs twenty mature words", func(t *testing.T) {
		patterns := make(map[string]map[string]int)
		for i := 0; i < 19; i++ {
			patterns[fmt.Sprintf("palavra%c", 'a'+i)] = map[string]int{"Outros": 3}
		}
		// A 20th word below the per-word vote threshold does not count.
		patterns["fraca"] = map[string]int{"Outros": 2}

		c := New(&stubStore{patterns: map[string]map[string]map[string]int{"user-1": patterns}})
		ready, err := c.HasEnoughData(ctx, "user-1")
		require.NoError(t, err)
		assert.False(t, ready)
	})

	t.Run("ready at threshold", func(t *testing.T) {
		patterns := make(map[string]map[string]int)
		for i := 0; i < 20; i++ {
			// Votes may be spread across categories; the per-word total counts.
			patterns[fmt.Sprintf("palavra%c", 'a'+i)] = map[string]int{"Outros": 2, "Lazer": 1}
		}

		c := New(&stubStore{patterns: map[string]map[string]map[string]int{"user-1": patterns}})
		ready, err := c.HasEnoughData(ctx, "user-1")
		require.NoError(t, err)
		assert.True(t, ready)
	})
}
