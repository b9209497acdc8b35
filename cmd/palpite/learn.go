package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"palpite/internal/cli"
	"palpite/internal/common"
	"palpite/internal/model"
	"palpite/internal/storage"
)

func learnCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "learn <category> <description...>",
		Short: "Record a user-confirmed categorization so history improves",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			category := args[0]
			description := strings.Join(args[1:], " ")

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			// Only registry categories (or the fallback) may accumulate votes.
			if _, err := store.GetCategoryByName(ctx, category); err != nil {
				return common.NewUserError(
					fmt.Sprintf("unknown category %q, see 'palpite categories list'", category), err)
			}

			outcome := storage.Outcome{
				Description: description,
				Category:    category,
				Method:      model.MethodHistory,
				Confidence:  1.0,
			}
			if err := store.RecordOutcome(ctx, currentUser(), outcome); err != nil {
				return fmt.Errorf("failed to record outcome: %w", err)
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("learned: %q → %s", description, category)))
			return nil
		},
	}
}
