package cli

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/example/rush/internal/wire"
)

// HistoryCmd returns the history command with list/show subcommands
func HistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Review recorded simulation runs",
	}

	cmd.AddCommand(historyListCmd())
	cmd.AddCommand(historyShowCmd())

	return cmd
}

func historyListCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recent runs, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			runs, err := wire.RunService().ListRuns(context.Background(), limit)
			if err != nil {
				return fmt.Errorf("failed to list runs: %w", err)
			}
			if len(runs) == 0 {
				fmt.Println("No runs recorded. Start one with `rush simulate`.")
				return nil
			}

			for _, run := range runs {
				fmt.Printf("%s  %s  %d days, %d tables, seed %d: served %d, lost %d, earned %d\n",
					color.New(color.FgCyan).Sprint(run.ID),
					run.CreatedAt,
					run.Days, run.Tables, run.Seed,
					run.TotalServed, run.TotalLost, run.TotalEarnings,
				)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 10, "Maximum number of runs to list")

	return cmd
}

func historyShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <run-id>",
		Short: "Show one run with its per-day results",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			run, days, err := wire.RunService().GetRun(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to get run: %w", err)
			}

			fmt.Printf("%s  (seed %d, %d tables, created %s)\n\n",
				color.New(color.FgCyan).Sprint(run.ID), run.Seed, run.Tables, run.CreatedAt)
			for _, day := range days {
				fmt.Printf("Day %d: served %s, lost %s, earned %s, spoiled %d\n",
					day.Day,
					color.New(color.FgGreen).Sprintf("%d", day.CustomersServed),
					colorizeLost(day.CustomersLost),
					color.New(color.FgYellow).Sprintf("%d", day.Earnings),
					day.ItemsSpoiled,
				)
			}
			fmt.Println()
			fmt.Printf("Totals: %d served, %d lost, %d earned\n",
				run.TotalServed, run.TotalLost, run.TotalEarnings)
			return nil
		},
	}
}
