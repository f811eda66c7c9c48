package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/1saman/personalfinancetracker/internal/cli"
	"github.com/1saman/personalfinancetracker/internal/goal"
	"github.com/spf13/cobra"
)

func goalsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "goals",
		Short: "Track savings goals",
		Long:  `Create savings goals, record progress toward them, and list their state.`,
	}

	cmd.AddCommand(addGoalCmd())
	cmd.AddCommand(goalProgressCmd())
	cmd.AddCommand(listGoalsCmd())

	return cmd
}

func addGoalCmd() *cobra.Command {
	var (
		targetDate  string
		description string
		priority    int
	)

	cmd := &cobra.Command{
		Use:   "add <name> <target-amount>",
		Short: "Create a savings goal",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			target, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fmt.Errorf("invalid target amount %q: %w", args[1], err)
			}

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			tracker := goal.NewTracker(store)

			when, err := parseDateFlag(targetDate)
			if err != nil {
				return err
			}
			var deadline *time.Time
			if !when.IsZero() {
				deadline = &when
			}

			id, err := tracker.Add(ctx, args[0], target, deadline, description, priority)
			if err != nil {
				return fmt.Errorf("failed to create goal: %w", err)
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Created goal %q targeting $%.2f (ID: %d)", args[0], target, id)))
			return nil
		},
	}

	cmd.Flags().StringVar(&targetDate, "by", "", "Target date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&description, "description", "", "What the goal is for")
	cmd.Flags().IntVar(&priority, "priority", 1, "Ordering priority (lower sorts first)")

	return cmd
}

func goalProgressCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "progress <id> <amount>",
		Short: "Record progress toward a goal",
		Long:  `Add an amount to a goal's accumulated total. Negative amounts correct earlier entries; a reached goal stays achieved.`,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid goal ID: %w", err)
			}
			amount, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fmt.Errorf("invalid amount %q: %w", args[1], err)
			}

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			tracker := goal.NewTracker(store)
			if err := tracker.RecordProgress(ctx, id, amount); err != nil {
				return fmt.Errorf("failed to record progress: %w", err)
			}

			updated, err := tracker.Get(ctx, id)
			if err != nil {
				return fmt.Errorf("failed to load goal: %w", err)
			}

			msg := fmt.Sprintf("Goal %q at $%.2f of $%.2f (%.2f%%)",
				updated.Name, updated.CurrentAmount, updated.TargetAmount, updated.Progress)
			if updated.Achieved {
				msg += " " + cli.GoalIcon + " achieved!"
			}
			fmt.Println(cli.FormatSuccess(msg))
			return nil
		},
	}
}

func listGoalsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all goals",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			tracker := goal.NewTracker(store)
			goals, err := tracker.List(ctx)
			if err != nil {
				return fmt.Errorf("failed to list goals: %w", err)
			}

			if len(goals) == 0 {
				fmt.Println(cli.InfoStyle.Render("No goals found. Use 'fintrack goals add' to create one."))
				return nil
			}

			fmt.Println(cli.FormatTitle("Savings Goals"))

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer func() { _ = w.Flush() }()

			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
				cli.BoldStyle.Render("ID"),
				cli.BoldStyle.Render("Name"),
				cli.BoldStyle.Render("Target"),
				cli.BoldStyle.Render("Current"),
				cli.BoldStyle.Render("Progress"),
				cli.BoldStyle.Render("By"))
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
				strings.Repeat("-", 4),
				strings.Repeat("-", 20),
				strings.Repeat("-", 10),
				strings.Repeat("-", 10),
				strings.Repeat("-", 10),
				strings.Repeat("-", 10))

			for _, g := range goals {
				progress := fmt.Sprintf("%.2f%%", g.Progress)
				if g.Achieved {
					progress = cli.SuccessStyle.Render(progress + " " + cli.SuccessIcon)
				}
				deadline := "-"
				if g.TargetDate != nil {
					deadline = g.TargetDate.Format(dateFlagLayout)
				}
				fmt.Fprintf(w, "%d\t%s\t$%.2f\t$%.2f\t%s\t%s\n",
					g.ID, g.Name, g.TargetAmount, g.CurrentAmount, progress, deadline)
			}

			return nil
		},
	}
}
