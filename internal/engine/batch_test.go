package engine

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"palpite/internal/model"
)

func TestCategorizeBatch_PreservesOrderAndLength(t *testing.T) {
	e := testEngine(t, emptyStore())

	transactions := []model.Transaction{
		{ID: "t1", Description: "uber 23/04"},
		{ID: "t2", Description: ""},
		{ID: "t3", Description: "mercado extra"},
		{ID: "t4", Description: "transferência pix"},
	}

	results := e.CategorizeBatch(context.Background(), transactions, "user-1")

	require.Len(t, results, len(transactions))
	for i, result := range results {
		assert.Equal(t, transactions[i].ID, result.Transaction.ID)
		assert.NotEmpty(t, result.SuggestedCategory)
		assert.NotEmpty(t, result.Method)
	}

	assert.Equal(t, "Transporte", results[0].SuggestedCategory)
	assert.Equal(t, model.MethodFallback, results[1].Method)
	assert.Equal(t, "Alimentação", results[2].SuggestedCategory)
	assert.Equal(t, "Outros", results[3].SuggestedCategory)
}

func TestCategorizeBatch_Empty(t *testing.T) {
	e := testEngine(t, emptyStore())

	assert.Empty(t, e.CategorizeBatch(context.Background(), nil, "user-1"))
}

func TestCategorizeBatch_ItemFailuresAreIsolated(t *testing.T) {
	// A failing pattern store degrades every item to the error result but
	// still yields one result per input, in order.
	e := testEngine(t, &stubStore{err: errors.New("io timeout")})

	transactions := []model.Transaction{
		{ID: "t1", Description: "mercado"},
		{ID: "t2", Description: "uber"},
	}

	results := e.CategorizeBatch(context.Background(), transactions, "user-1")

	require.Len(t, results, 2)
	for i, result := range results {
		assert.Equal(t, transactions[i].ID, result.Transaction.ID)
		assert.Equal(t, "Outros", result.SuggestedCategory)
		assert.Equal(t, model.MethodError, result.Method)
		assert.InDelta(t, 0.2, result.Confidence, 1e-9)
	}
}

func TestCategorizeBatch_Cancellation(t *testing.T) {
	e := testEngine(t, emptyStore())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	transactions := make([]model.Transaction, 50)
	for i := range transactions {
		transactions[i] = model.Transaction{
			ID:          fmt.Sprintf("t%d", i),
			Description: "mercado extra",
		}
	}

	results := e.CategorizeBatch(ctx, transactions, "user-1")

	require.Len(t, results, len(transactions))
	for i, result := range results {
		assert.Equal(t, transactions[i].ID, result.Transaction.ID)
		// Every item is either fully classified or degraded, never empty.
		assert.NotEmpty(t, result.Method)
	}
}

func TestCategorizeBatch_ConcurrentCallsAreIndependent(t *testing.T) {
	e := testEngine(t, emptyStore())

	transactions := []model.Transaction{
		{ID: "t1", Description: "uber"},
		{ID: "t2", Description: "mercado"},
	}

	done := make(chan []model.BatchResult, 4)
	for i := 0; i < 4; i++ {
		go func() {
			done <- e.CategorizeBatch(context.Background(), transactions, "user-1")
		}()
	}

	for i := 0; i < 4; i++ {
		results := <-done
		require.Len(t, results, 2)
		assert.Equal(t, "Transporte", results[0].SuggestedCategory)
		assert.Equal(t, "Alimentação", results[1].SuggestedCategory)
	}
}
