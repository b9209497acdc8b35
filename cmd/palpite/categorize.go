package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"palpite/internal/cli"
	"palpite/internal/storage"
)

func categorizeCmd() *cobra.Command {
	var learn bool

	cmd := &cobra.Command{
		Use:   "categorize <description>",
		Short: "Categorize a single transaction description",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			description := strings.Join(args, " ")

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			eng, err := initEngine(store)
			if err != nil {
				return err
			}

			result := eng.AutoCategorize(ctx, description, currentUser())
			fmt.Print(cli.RenderResult(result, eng.NeedsManualReview(result)))

			if learn {
				outcome := storage.Outcome{
					Description: description,
					Category:    result.Category,
					Method:      result.Method,
					Confidence:  result.Confidence,
				}
				if err := store.RecordOutcome(ctx, currentUser(), outcome); err != nil {
					return fmt.Errorf("failed to record outcome: %w", err)
				}
				fmt.Println(cli.FormatSuccess("outcome recorded"))
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&learn, "learn", false, "record the result as a confirmed outcome")
	return cmd
}
