package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/1saman/personalfinancetracker/internal/cli"
	"github.com/1saman/personalfinancetracker/internal/ledger"
	"github.com/1saman/personalfinancetracker/internal/model"
	"github.com/spf13/cobra"
)

func categoriesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "categories",
		Short: "Manage income and expense categories",
		Long:  `List, add, and seed the categories that transactions are recorded against.`,
	}

	cmd.AddCommand(listCategoriesCmd())
	cmd.AddCommand(addCategoryCmd())
	cmd.AddCommand(seedCategoriesCmd())

	return cmd
}

func listCategoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all categories",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			registry := ledger.NewRegistry(store)
			categories, err := registry.List(ctx)
			if err != nil {
				return fmt.Errorf("failed to list categories: %w", err)
			}

			if len(categories) == 0 {
				fmt.Println(cli.InfoStyle.Render("No categories found. Use 'fintrack categories seed' to create the defaults."))
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer func() { _ = w.Flush() }()

			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
				cli.BoldStyle.Render("ID"),
				cli.BoldStyle.Render("Name"),
				cli.BoldStyle.Render("Type"),
				cli.BoldStyle.Render("Color"))
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
				strings.Repeat("-", 4),
				strings.Repeat("-", 20),
				strings.Repeat("-", 8),
				strings.Repeat("-", 8))

			for _, cat := range categories {
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", cat.ID, cat.Name, cat.Kind, cat.Color)
			}

			return nil
		},
	}
}

func addCategoryCmd() *cobra.Command {
	var (
		categoryKind  string
		categoryColor string
		budgetLimit   float64
	)

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a new category",
		Long:  `Create a new category. The type (income or expense) is fixed at creation.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			kind := model.CategoryKind(categoryKind)
			if !kind.Valid() {
				return fmt.Errorf("invalid category type %q (expected income or expense)", categoryKind)
			}

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			registry := ledger.NewRegistry(store)
			category, err := registry.Create(ctx, args[0], kind, categoryColor, budgetLimit)
			if err != nil {
				return fmt.Errorf("failed to create category: %w", err)
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Created %s category %q (ID: %d)", category.Kind, category.Name, category.ID)))
			return nil
		},
	}

	cmd.Flags().StringVar(&categoryKind, "type", "expense", "Category type (income, expense)")
	cmd.Flags().StringVar(&categoryColor, "color", "", "Display color (hex, defaults to "+model.DefaultCategoryColor+")")
	cmd.Flags().Float64Var(&budgetLimit, "budget-limit", 0, "Informal spending limit hint")

	return cmd
}

func seedCategoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Create the default category set",
		Long:  `Populate the default income and expense categories. Does nothing when categories already exist.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			registry := ledger.NewRegistry(store)
			if err := registry.SeedDefaults(ctx); err != nil {
				return err
			}

			count, err := store.CountCategories(ctx)
			if err != nil {
				return fmt.Errorf("failed to count categories: %w", err)
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Category registry ready (%d categories)", count)))
			return nil
		},
	}
}
