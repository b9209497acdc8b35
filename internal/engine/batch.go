package engine

import (
	"context"
	"log/slog"
	"sync"

	"palpite/internal/model"
)

// CategorizeBatch fans out AutoCategorize over a set of transactions
// using a worker pool. Output preserves input order and length; a
// failing item (including a panicking one) degrades to the error result
// without affecting its siblings, and cancellation degrades every
// not-yet-processed item the same way.
func (e *Engine) CategorizeBatch(ctx context.Context, transactions []model.Transaction, userID string) []model.BatchResult {
	results := make([]model.BatchResult, len(transactions))
	for i, txn := range transactions {
		results[i].Transaction = txn
	}
	if len(transactions) == 0 {
		return results
	}

	workers := e.config.BatchWorkers
	if workers <= 0 {
		workers = 1
	}
	if workers > len(transactions) {
		workers = len(transactions)
	}

	workChan := make(chan int, len(transactions))
	for i := range transactions {
		workChan <- i
	}
	close(workChan)

	var wg sync.WaitGroup
	wg.Add(workers)

	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for idx := range workChan {
				select {
				case <-ctx.Done():
					return
				default:
				}
				e.categorizeItem(ctx, &results[idx], userID)
			}
		}()
	}

	wg.Wait()

	// Items skipped by cancellation carry no method yet.
	for i := range results {
		if results[i].Method == "" {
			results[i].SuggestedCategory = e.config.Fallback
			results[i].Confidence = errorConfidence
			results[i].Method = model.MethodError
		}
	}

	return results
}

// categorizeItem classifies one batch entry, isolating panics so a
// single bad item cannot take down the whole batch.
func (e *Engine) categorizeItem(ctx context.Context, item *model.BatchResult, userID string) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("batch item classification panicked",
				"description", item.Transaction.Description,
				"panic", r)
			item.SuggestedCategory = e.config.Fallback
			item.Confidence = errorConfidence
			item.Method = model.MethodError
		}
	}()

	result := e.AutoCategorize(ctx, item.Transaction.Description, userID)
	item.SuggestedCategory = result.Category
	item.Confidence = result.Confidence
	item.Method = result.Method
}
