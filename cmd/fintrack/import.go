package main

import (
	"fmt"
	"os"

	"github.com/1saman/personalfinancetracker/internal/cli"
	"github.com/1saman/personalfinancetracker/internal/exchange"
	"github.com/1saman/personalfinancetracker/internal/ledger"
	"github.com/spf13/cobra"
)

func importCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Import transactions from CSV",
		Long: `Read transactions from a CSV file, creating unknown categories on the
fly. Malformed rows are reported and skipped; the rest import normally.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("failed to open import file: %w", err)
			}
			defer func() { _ = f.Close() }()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			registry := ledger.NewRegistry(store)
			led := ledger.New(store)
			importer := exchange.NewImporter(registry, led)

			result, err := importer.ImportCSV(ctx, f)
			if err != nil {
				return err
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Imported %d transactions", result.Imported)))
			for _, skipped := range result.Skipped {
				fmt.Println("  " + cli.FormatWarning(skipped.Error()))
			}

			return nil
		},
	}

	return cmd
}
