package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"palpite/internal/cli"
	"palpite/internal/history"
)

func statsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show aggregate categorization statistics for the user",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			eng, err := initEngine(store)
			if err != nil {
				return err
			}

			user := currentUser()
			results, err := store.GetOutcomeResults(ctx, user)
			if err != nil {
				return err
			}

			fmt.Print(cli.RenderStats(eng.Stats(results)))

			ready, err := history.New(store).HasEnoughData(ctx, user)
			if err != nil {
				return err
			}
			if ready {
				fmt.Println(cli.FormatSuccess("history is mature enough to lead the cascade"))
			} else {
				fmt.Println(cli.FormatWarning("history still sparse, keyword rules will dominate"))
			}
			return nil
		},
	}
}
