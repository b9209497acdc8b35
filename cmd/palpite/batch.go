package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"palpite/internal/cli"
	"palpite/internal/engine"
	"palpite/internal/model"
)

func batchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "batch <file>",
		Short: "Categorize a file of descriptions, one per line",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			transactions, err := readDescriptions(args[0])
			if err != nil {
				return err
			}
			return runBatch(cmd, transactions)
		},
	}
}

// readDescriptions loads one transaction per non-empty line.
func readDescriptions(path string) ([]model.Transaction, error) {
	file, err := os.Open(path) // #nosec G304 -- user-provided input file
	if err != nil {
		return nil, fmt.Errorf("failed to open input file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var transactions []model.Transaction
	scanner := bufio.NewScanner(file)
	line := 0
	for scanner.Scan() {
		line++
		description := strings.TrimSpace(scanner.Text())
		if description == "" {
			continue
		}
		transactions = append(transactions, model.Transaction{
			ID:          fmt.Sprintf("line-%d", line),
			Description: description,
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read input file: %w", err)
	}

	return transactions, nil
}

// batchChunkSize bounds how many transactions are classified between
// progress bar updates.
const batchChunkSize = 50

// runBatch categorizes transactions chunk by chunk with progress
// feedback, then prints results and a summary.
func runBatch(cmd *cobra.Command, transactions []model.Transaction) error {
	ctx := cmd.Context()

	if len(transactions) == 0 {
		fmt.Println(cli.FormatWarning("nothing to categorize"))
		return nil
	}

	store, err := initStorage(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	eng, err := initEngine(store)
	if err != nil {
		return err
	}

	bar := progressbar.NewOptions(len(transactions),
		progressbar.OptionSetDescription("categorizing"),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionClearOnFinish(),
	)

	user := currentUser()
	results := make([]model.BatchResult, 0, len(transactions))
	for start := 0; start < len(transactions); start += batchChunkSize {
		end := start + batchChunkSize
		if end > len(transactions) {
			end = len(transactions)
		}
		chunk := eng.CategorizeBatch(ctx, transactions[start:end], user)
		results = append(results, chunk...)
		_ = bar.Add(len(chunk))
	}
	_ = bar.Finish()

	printBatchResults(eng, results)
	return nil
}

func printBatchResults(eng *engine.Engine, results []model.BatchResult) {
	classifications := make([]model.ClassificationResult, 0, len(results))
	for _, result := range results {
		fmt.Printf("%-40s → %s %s\n",
			truncate(result.Transaction.Description, 40),
			cli.BoldStyle.Render(result.SuggestedCategory),
			cli.SubtleStyle.Render(fmt.Sprintf("(%.0f%% via %s)", result.Confidence*100, result.Method)))

		classifications = append(classifications, model.ClassificationResult{
			Category:   result.SuggestedCategory,
			Confidence: result.Confidence,
			Method:     result.Method,
		})
	}

	fmt.Println()
	fmt.Print(cli.RenderStats(eng.Stats(classifications)))
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n-1]) + "…"
}
