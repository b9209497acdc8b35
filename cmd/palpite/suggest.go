package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"palpite/internal/cli"
)

func suggestCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "suggest <description>",
		Short: "List ranked category suggestions for a description",
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

			suggestions := eng.SuggestCategories(ctx, description, currentUser())
			fmt.Print(cli.RenderSuggestions(suggestions))
			return nil
		},
	}
}
