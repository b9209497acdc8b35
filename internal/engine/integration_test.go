package engine_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"palpite/internal/engine"
	"palpite/internal/history"
	"palpite/internal/keywords"
	"palpite/internal/model"
	"palpite/internal/scorer"
	"palpite/internal/storage"
	"palpite/internal/testutil"
)

// Exercises the full path: confirmed outcomes land in SQLite, votes
// accumulate, and learned history overrides the keyword table on the
// next classification.
func TestEngine_LearnsFromRecordedOutcomes(t *testing.T) {
	store := testutil.SetupTestDB(t)
	ctx := context.Background()

	table := keywords.DefaultTable()
	s := scorer.New(table, keywords.FallbackCategory)
	eng := engine.New(history.New(store), s)

	// Before any history, the keyword table decides.
	before := eng.AutoCategorize(ctx, "padaria nova", "user-1")
	assert.Equal(t, model.MethodKeyword, before.Method)
	assert.Equal(t, "Alimentação", before.Category)

	// The user keeps correcting bakery trips to Lazer.
	for i := 0; i < 2; i++ {
		require.NoError(t, store.RecordOutcome(ctx, "user-1", storage.Outcome{
			Description: "padaria do zé",
			Category:    "Lazer",
			Method:      model.MethodHistory,
			Confidence:  1.0,
		}))
	}

	after := eng.AutoCategorize(ctx, "padaria nova", "user-1")
	assert.Equal(t, model.MethodHistory, after.Method)
	assert.Equal(t, "Lazer", after.Category)
	assert.Equal(t, 2, after.Votes)
	assert.Equal(t, 2, after.TotalVotes)
	assert.Equal(t, 1.0, after.Confidence)

	// Other users are unaffected.
	other := eng.AutoCategorize(ctx, "padaria nova", "user-2")
	assert.Equal(t, model.MethodKeyword, other.Method)
	assert.Equal(t, "Alimentação", other.Category)
}

func TestEngine_SuggestionsCombineHistoryAndKeywords(t *testing.T) {
	store := testutil.SetupTestDB(t)
	ctx := context.Background()

	s := scorer.New(keywords.DefaultTable(), keywords.FallbackCategory)
	eng := engine.New(history.New(store), s)

	require.NoError(t, store.RecordOutcome(ctx, "user-1", storage.Outcome{
		Description: "mercado do bairro",
		Category:    "Compras",
		Method:      model.MethodHistory,
		Confidence:  1.0,
	}))

	suggestions := eng.SuggestCategories(ctx, "mercado extra", "user-1")

	require.NotEmpty(t, suggestions)
	assert.LessOrEqual(t, len(suggestions), 3)

	categories := make([]string, len(suggestions))
	for i, sg := range suggestions {
		categories[i] = sg.Category
	}
	assert.Contains(t, categories, "Compras")
	assert.Contains(t, categories, "Alimentação")
}
