package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/1saman/personalfinancetracker/internal/cli"
	"github.com/1saman/personalfinancetracker/internal/model"
	"github.com/spf13/cobra"
)

func accountsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "accounts",
		Short: "Manage balance accounts",
		Long: `Create and list accounts. The earliest-created account is the primary
one and receives the balance delta from every recorded transaction.`,
	}

	cmd.AddCommand(addAccountCmd())
	cmd.AddCommand(listAccountsCmd())

	return cmd
}

func addAccountCmd() *cobra.Command {
	var (
		accountKind string
		balance     float64
		currency    string
		bank        string
	)

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Create an account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			kind := model.AccountKind(accountKind)
			if !kind.Valid() {
				return fmt.Errorf("invalid account type %q (expected checking, savings, credit, or investment)", accountKind)
			}

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			account := &model.Account{
				Name:     args[0],
				Kind:     kind,
				Balance:  balance,
				Currency: currency,
				Bank:     bank,
			}
			id, err := store.CreateAccount(ctx, account)
			if err != nil {
				return fmt.Errorf("failed to create account: %w", err)
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Created %s account %q (ID: %d)", kind, args[0], id)))
			return nil
		},
	}

	cmd.Flags().StringVar(&accountKind, "type", "checking", "Account type (checking, savings, credit, investment)")
	cmd.Flags().Float64Var(&balance, "balance", 0, "Opening balance")
	cmd.Flags().StringVar(&currency, "currency", "", "Currency code (defaults to USD)")
	cmd.Flags().StringVar(&bank, "bank", "", "Bank name")

	return cmd
}

func listAccountsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all accounts",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			accounts, err := store.ListAccounts(ctx)
			if err != nil {
				return fmt.Errorf("failed to list accounts: %w", err)
			}

			if len(accounts) == 0 {
				fmt.Println(cli.InfoStyle.Render("No accounts found. Use 'fintrack accounts add' to create one."))
				return nil
			}

			primary, err := store.PrimaryAccount(ctx)
			if err != nil {
				return fmt.Errorf("failed to load primary account: %w", err)
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer func() { _ = w.Flush() }()

			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
				cli.BoldStyle.Render("ID"),
				cli.BoldStyle.Render("Name"),
				cli.BoldStyle.Render("Type"),
				cli.BoldStyle.Render("Balance"),
				cli.BoldStyle.Render("Currency"))
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
				strings.Repeat("-", 4),
				strings.Repeat("-", 20),
				strings.Repeat("-", 12),
				strings.Repeat("-", 12),
				strings.Repeat("-", 8))

			for _, account := range accounts {
				name := account.Name
				if primary != nil && account.ID == primary.ID {
					name += " " + cli.SubtleStyle.Render("(primary)")
				}
				fmt.Fprintf(w, "%d\t%s\t%s\t$%.2f\t%s\n",
					account.ID, name, account.Kind, account.Balance, account.Currency)
			}

			return nil
		},
	}
}
