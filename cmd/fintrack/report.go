package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/1saman/personalfinancetracker/internal/cli"
	"github.com/1saman/personalfinancetracker/internal/model"
	"github.com/1saman/personalfinancetracker/internal/report"
	"github.com/spf13/cobra"
)

func reportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Derive summaries and reports from the ledger",
		Long:  `Balance summaries, category spending breakdowns, and monthly reports, all recomputed from the transaction log.`,
	}

	cmd.AddCommand(summaryCmd())
	cmd.AddCommand(spendingCmd())
	cmd.AddCommand(monthlyCmd())

	return cmd
}

func summaryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Show the overall balance summary",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			engine := report.NewEngine(store)
			summary, err := engine.BalanceSummary(ctx)
			if err != nil {
				return err
			}

			fmt.Println(cli.FormatTitle("Balance Summary"))
			fmt.Printf("  Total income:     $%.2f\n", summary.TotalIncome)
			fmt.Printf("  Total expenses:   $%.2f\n", summary.TotalExpenses)
			fmt.Printf("  Net worth:        %s\n", formatSigned(summary.NetWorth))
			fmt.Println()
			fmt.Printf("  Monthly income:   $%.2f\n", summary.MonthlyIncome)
			fmt.Printf("  Monthly expenses: $%.2f\n", summary.MonthlyExpenses)
			fmt.Printf("  Monthly savings:  %s\n", formatSigned(summary.MonthlySavings))

			return nil
		},
	}
}

func spendingCmd() *cobra.Command {
	var period string

	cmd := &cobra.Command{
		Use:   "spending",
		Short: "Show spending by category",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			spendingPeriod := model.SpendingPeriod(period)

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			engine := report.NewEngine(store)
			spending, err := engine.CategorySpending(ctx, spendingPeriod)
			if err != nil {
				return err
			}

			if len(spending) == 0 {
				fmt.Println(cli.InfoStyle.Render("No transactions in this period."))
				return nil
			}

			fmt.Println(cli.FormatTitle(fmt.Sprintf("Category Spending (%s)", spendingPeriod)))
			printCategoryTable(spending)
			return nil
		},
	}

	cmd.Flags().StringVar(&period, "period", "monthly", "Window (monthly, yearly, all)")

	return cmd
}

func monthlyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "monthly [year] [month]",
		Short: "Show a monthly report",
		Long:  `Aggregate one calendar month. Defaults to the current month when no arguments are given.`,
		Args:  cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			now := time.Now()
			year, month := now.Year(), now.Month()
			if len(args) >= 1 {
				y, err := strconv.Atoi(args[0])
				if err != nil {
					return fmt.Errorf("invalid year %q: %w", args[0], err)
				}
				year = y
			}
			if len(args) == 2 {
				m, err := strconv.Atoi(args[1])
				if err != nil || m < 1 || m > 12 {
					return fmt.Errorf("invalid month %q", args[1])
				}
				month = time.Month(m)
			}

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			engine := report.NewEngine(store)
			monthly, err := engine.MonthlyReport(ctx, year, month)
			if err != nil {
				return err
			}

			fmt.Println(cli.FormatTitle(fmt.Sprintf("Monthly Report %s", monthly.Period)))
			fmt.Printf("  Income:       $%.2f\n", monthly.Income)
			fmt.Printf("  Expenses:     $%.2f\n", monthly.Expenses)
			fmt.Printf("  Savings:      %s\n", formatSigned(monthly.Savings))
			fmt.Printf("  Savings rate: %.1f%%\n", monthly.SavingsRate)

			if len(monthly.Categories) > 0 {
				fmt.Println()
				printCategoryTable(monthly.Categories)
			}

			return nil
		},
	}
}

// printCategoryTable renders one row per category, largest total first.
func printCategoryTable(spending []model.CategorySpend) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	defer func() { _ = w.Flush() }()

	fmt.Fprintf(w, "%s\t%s\t%s\n",
		cli.BoldStyle.Render("Category"),
		cli.BoldStyle.Render("Type"),
		cli.BoldStyle.Render("Total"))
	fmt.Fprintf(w, "%s\t%s\t%s\n",
		strings.Repeat("-", 20),
		strings.Repeat("-", 8),
		strings.Repeat("-", 12))

	for _, spend := range spending {
		fmt.Fprintf(w, "%s\t%s\t$%.2f\n", spend.Category, spend.Kind, spend.Total)
	}
}

// formatSigned renders a dollar figure, red when negative.
func formatSigned(amount float64) string {
	rendered := fmt.Sprintf("$%.2f", amount)
	if amount < 0 {
		return cli.ErrorStyle.Render(rendered)
	}
	return cli.SuccessStyle.Render(rendered)
}
