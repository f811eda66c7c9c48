package main

import (
	"fmt"

	"github.com/1saman/personalfinancetracker/internal/cli"
	"github.com/1saman/personalfinancetracker/internal/report"
	"github.com/spf13/cobra"
)

func insightsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "insights",
		Short: "Show rule-based insights about recent activity",
		Long:  `Evaluate the balance summary and this month's spending against a fixed set of rules and print what fires.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			engine := report.NewEngine(store)
			insights, err := engine.Insights(ctx)
			if err != nil {
				return err
			}

			fmt.Println(cli.FormatTitle("Insights"))

			empty := true
			for _, warning := range insights.Warnings {
				fmt.Println("  " + cli.FormatWarning(warning))
				empty = false
			}
			for _, achievement := range insights.Achievements {
				fmt.Println("  " + cli.FormatSuccess(achievement))
				empty = false
			}
			for _, habit := range insights.SpendingHabits {
				fmt.Println("  " + cli.InfoStyle.Render(cli.ChartIcon+" "+habit))
				empty = false
			}
			for _, rec := range insights.Recommendations {
				fmt.Println("  " + cli.SubtleStyle.Render("→ "+rec))
				empty = false
			}

			if empty {
				fmt.Println(cli.InfoStyle.Render("  Nothing to report yet. Record some transactions first."))
			}

			return nil
		},
	}
}
