package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"palpite/internal/ofx"
)

func importCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file.ofx>",
		Short: "Categorize the transactions of an OFX/QFX statement",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			file, err := os.Open(args[0]) // #nosec G304 -- user-provided input file
			if err != nil {
				return fmt.Errorf("failed to open statement: %w", err)
			}
			defer func() { _ = file.Close() }()

			transactions, err := ofx.NewParser().Parse(file)
			if err != nil {
				return err
			}

			return runBatch(cmd, transactions)
		},
	}
}
