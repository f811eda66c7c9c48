package main

import (
	"fmt"
	"os"

	"github.com/1saman/personalfinancetracker/internal/cli"
	"github.com/1saman/personalfinancetracker/internal/exchange"
	"github.com/spf13/cobra"
)

func exportCmd() *cobra.Command {
	var (
		format string
		output string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the full ledger",
		Long:  `Write every transaction, most recent first, as CSV or JSON.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			out := os.Stdout
			if output != "" {
				f, err := os.Create(output)
				if err != nil {
					return fmt.Errorf("failed to create output file: %w", err)
				}
				defer func() { _ = f.Close() }()
				out = f
			}

			exporter := exchange.NewExporter(store)
			switch format {
			case "csv":
				err = exporter.ExportCSV(ctx, out)
			case "json":
				err = exporter.ExportJSON(ctx, out)
			default:
				return fmt.Errorf("invalid format %q (expected csv or json)", format)
			}
			if err != nil {
				return err
			}

			if output != "" {
				fmt.Println(cli.FormatSuccess(fmt.Sprintf("Exported ledger to %s", output)))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", "csv", "Export format (csv, json)")
	cmd.Flags().StringVar(&output, "output", "", "Output file (defaults to stdout)")

	return cmd
}
