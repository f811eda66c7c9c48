package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/1saman/personalfinancetracker/internal/cli"
	"github.com/1saman/personalfinancetracker/internal/common"
	"github.com/1saman/personalfinancetracker/internal/ledger"
	"github.com/1saman/personalfinancetracker/internal/service"
	"github.com/spf13/cobra"
)

func transactionsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "transactions",
		Aliases: []string{"tx"},
		Short:   "Record and browse ledger transactions",
		Long:    `Append transactions to the ledger and list them with optional filters.`,
	}

	cmd.AddCommand(addTransactionCmd())
	cmd.AddCommand(listTransactionsCmd())

	return cmd
}

func addTransactionCmd() *cobra.Command {
	var (
		description   string
		categoryName  string
		date          string
		paymentMethod string
		location      string
		tags          string
		recurring     bool
		frequency     string
	)

	cmd := &cobra.Command{
		Use:   "add <amount>",
		Short: "Record a transaction",
		Long: `Append a transaction to the ledger. Amounts are positive magnitudes;
whether it counts as income or expense comes from the category's type.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			amount, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("invalid amount %q: %w", args[0], err)
			}

			when, err := parseDateFlag(date)
			if err != nil {
				return err
			}

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			registry := ledger.NewRegistry(store)
			category, err := registry.GetByName(ctx, categoryName)
			if err != nil {
				return fmt.Errorf("failed to look up category: %w", err)
			}
			if category == nil {
				return common.NewUserError(fmt.Sprintf("category %q not found", categoryName), common.ErrNotFound)
			}

			led := ledger.New(store)
			id, err := led.Append(ctx, ledger.NewEntry{
				Amount:             amount,
				Description:        description,
				CategoryID:         category.ID,
				Date:               when,
				PaymentMethod:      paymentMethod,
				Location:           location,
				Tags:               tags,
				Recurring:          recurring,
				RecurringFrequency: frequency,
			})
			if err != nil {
				return fmt.Errorf("failed to record transaction: %w", err)
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Recorded %s of $%.2f (ID: %d)", category.Kind, amount, id)))
			return nil
		},
	}

	cmd.Flags().StringVar(&description, "description", "", "What the transaction was for")
	cmd.Flags().StringVar(&categoryName, "category", "", "Category name (required)")
	cmd.Flags().StringVar(&date, "date", "", "Transaction date (YYYY-MM-DD, defaults to today)")
	cmd.Flags().StringVar(&paymentMethod, "method", "", "Payment method (defaults to cash)")
	cmd.Flags().StringVar(&location, "location", "", "Where the transaction happened")
	cmd.Flags().StringVar(&tags, "tags", "", "Comma-separated tags")
	cmd.Flags().BoolVar(&recurring, "recurring", false, "Mark the transaction as recurring")
	cmd.Flags().StringVar(&frequency, "frequency", "", "Recurring frequency (e.g. monthly)")
	_ = cmd.MarkFlagRequired("category")

	return cmd
}

func listTransactionsCmd() *cobra.Command {
	var (
		startDate    string
		endDate      string
		categoryName string
		limit        int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List ledger transactions",
		Long:  `Display transactions, most recent first, optionally filtered by date range and category.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			filter := service.TransactionFilter{Limit: limit}

			if startDate != "" {
				start, err := parseDateFlag(startDate)
				if err != nil {
					return err
				}
				filter.StartDate = &start
			}
			if endDate != "" {
				end, err := parseDateFlag(endDate)
				if err != nil {
					return err
				}
				filter.EndDate = &end
			}
			if categoryName != "" {
				registry := ledger.NewRegistry(store)
				category, err := registry.GetByName(ctx, categoryName)
				if err != nil {
					return fmt.Errorf("failed to look up category: %w", err)
				}
				if category == nil {
					return common.NewUserError(fmt.Sprintf("category %q not found", categoryName), common.ErrNotFound)
				}
				filter.CategoryID = &category.ID
			}

			led := ledger.New(store)
			entries, err := led.Query(ctx, filter)
			if err != nil {
				return fmt.Errorf("failed to query transactions: %w", err)
			}

			if len(entries) == 0 {
				fmt.Println(cli.InfoStyle.Render("No transactions found."))
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer func() { _ = w.Flush() }()

			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
				cli.BoldStyle.Render("ID"),
				cli.BoldStyle.Render("Date"),
				cli.BoldStyle.Render("Amount"),
				cli.BoldStyle.Render("Type"),
				cli.BoldStyle.Render("Category"),
				cli.BoldStyle.Render("Description"))
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
				strings.Repeat("-", 4),
				strings.Repeat("-", 10),
				strings.Repeat("-", 10),
				strings.Repeat("-", 8),
				strings.Repeat("-", 16),
				strings.Repeat("-", 30))

			for _, entry := range entries {
				fmt.Fprintf(w, "%d\t%s\t$%.2f\t%s\t%s\t%s\n",
					entry.ID,
					entry.Date.Format(dateFlagLayout),
					entry.Amount,
					entry.Kind,
					entry.Category,
					entry.Description)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&startDate, "start", "", "Earliest date to include (YYYY-MM-DD)")
	cmd.Flags().StringVar(&endDate, "end", "", "Latest date to include (YYYY-MM-DD)")
	cmd.Flags().StringVar(&categoryName, "category", "", "Only this category")
	cmd.Flags().IntVar(&limit, "limit", 0, "Maximum rows to return (0 = no limit)")

	return cmd
}
