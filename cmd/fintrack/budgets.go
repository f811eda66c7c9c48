package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/1saman/personalfinancetracker/internal/budget"
	"github.com/1saman/personalfinancetracker/internal/cli"
	"github.com/1saman/personalfinancetracker/internal/common"
	"github.com/1saman/personalfinancetracker/internal/ledger"
	"github.com/1saman/personalfinancetracker/internal/model"
	"github.com/spf13/cobra"
)

func budgetsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "budgets",
		Short: "Manage category budgets",
		Long:  `Set spending limits over explicit date windows and check how spend compares.`,
	}

	cmd.AddCommand(addBudgetCmd())
	cmd.AddCommand(budgetStatusCmd())

	return cmd
}

func addBudgetCmd() *cobra.Command {
	var (
		period    string
		startDate string
		endDate   string
	)

	cmd := &cobra.Command{
		Use:   "add <category> <amount>",
		Short: "Set a budget for a category",
		Long: `Create a budget binding the category to a spending limit over an explicit
start/end window. Windows never auto-renew; set a new budget for the next one.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			amount, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fmt.Errorf("invalid amount %q: %w", args[1], err)
			}

			budgetPeriod := model.BudgetPeriod(period)
			if !budgetPeriod.Valid() {
				return fmt.Errorf("invalid period %q (expected weekly, monthly, or yearly)", period)
			}

			start, err := parseDateFlag(startDate)
			if err != nil {
				return err
			}
			end, err := parseDateFlag(endDate)
			if err != nil {
				return err
			}
			if start.IsZero() || end.IsZero() {
				return fmt.Errorf("both --start and --end are required")
			}

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			registry := ledger.NewRegistry(store)
			category, err := registry.GetByName(ctx, args[0])
			if err != nil {
				return fmt.Errorf("failed to look up category: %w", err)
			}
			if category == nil {
				return common.NewUserError(fmt.Sprintf("category %q not found", args[0]), common.ErrNotFound)
			}

			monitor := budget.NewMonitor(store)
			id, err := monitor.Create(ctx, category.ID, amount, budgetPeriod, start, end)
			if err != nil {
				return fmt.Errorf("failed to create budget: %w", err)
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Set %s budget of $%.2f for %q (ID: %d)", budgetPeriod, amount, category.Name, id)))
			return nil
		},
	}

	cmd.Flags().StringVar(&period, "period", "monthly", "Budget cadence (weekly, monthly, yearly)")
	cmd.Flags().StringVar(&startDate, "start", "", "Window start (YYYY-MM-DD)")
	cmd.Flags().StringVar(&endDate, "end", "", "Window end, inclusive (YYYY-MM-DD)")

	return cmd
}

func budgetStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Check spend against active budgets",
		Long:  `Evaluate every budget whose window includes today and flag the ones nearing or over their limit.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			monitor := budget.NewMonitor(store)
			statuses, err := monitor.CheckStatus(ctx)
			if err != nil {
				return err
			}

			if len(statuses) == 0 {
				fmt.Println(cli.InfoStyle.Render("No active budgets."))
				return nil
			}

			fmt.Println(cli.FormatTitle("Budget Status"))

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer func() { _ = w.Flush() }()

			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
				cli.BoldStyle.Render("Category"),
				cli.BoldStyle.Render("Period"),
				cli.BoldStyle.Render("Budget"),
				cli.BoldStyle.Render("Spent"),
				cli.BoldStyle.Render("Remaining"),
				cli.BoldStyle.Render("Used"))
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
				strings.Repeat("-", 16),
				strings.Repeat("-", 8),
				strings.Repeat("-", 10),
				strings.Repeat("-", 10),
				strings.Repeat("-", 10),
				strings.Repeat("-", 8))

			for _, status := range statuses {
				used := fmt.Sprintf("%.1f%%", status.Percentage)
				if status.Alert {
					used = cli.WarningStyle.Render(used + " " + cli.WarningIcon)
				}
				fmt.Fprintf(w, "%s\t%s\t$%.2f\t$%.2f\t$%.2f\t%s\n",
					status.Category,
					status.Period,
					status.Budget,
					status.Spent,
					status.Remaining,
					used)
			}

			return nil
		},
	}
}
