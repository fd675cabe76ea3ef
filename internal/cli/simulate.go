package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/example/rush/internal/ports/primary"
	"github.com/example/rush/internal/wire"
)

// SimulateCmd returns the simulate command
func SimulateCmd() *cobra.Command {
	var (
		days   int
		tables int
		seed   int64
		tickMs int64
	)

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Run automated service days and record the results",
		Long: `Play a seeded, automated run of restaurant days: shopping, prep,
service, and day end. The same seed always produces the same results.
Each run is recorded and can be reviewed with 'rush history'.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if seed == 0 {
				seed = time.Now().UnixNano()
			}

			resp, err := wire.SimulationService().Simulate(context.Background(), primary.SimulateRequest{
				Days:   days,
				Tables: tables,
				Seed:   seed,
				TickMs: tickMs,
			})
			if err != nil {
				return fmt.Errorf("simulation failed: %w", err)
			}

			printRunReport(resp)
			return nil
		},
	}

	cmd.Flags().IntVar(&days, "days", 3, "Number of days to simulate")
	cmd.Flags().IntVar(&tables, "tables", 0, "Table count (0 uses the configured default)")
	cmd.Flags().Int64Var(&seed, "seed", 0, "Random seed (0 picks one from the clock)")
	cmd.Flags().Int64Var(&tickMs, "tick-ms", 0, "Simulation timestep in ms (0 uses the default)")

	return cmd
}

func printRunReport(resp *primary.SimulateResponse) {
	fmt.Printf("Run %s (seed %d)\n\n", resp.RunID, resp.Seed)
	for _, day := range resp.Days {
		fmt.Printf("Day %d: served %s, lost %s, earned %s, spoiled %d, coins %d\n",
			day.Day,
			color.New(color.FgGreen).Sprintf("%d", day.CustomersServed),
			colorizeLost(day.CustomersLost),
			color.New(color.FgYellow).Sprintf("%d", day.Earnings),
			day.ItemsSpoiled,
			day.CoinsEnd,
		)
	}
	fmt.Println()
	fmt.Printf("Totals: %d served, %d lost, %d earned\n",
		resp.TotalServed, resp.TotalLost, resp.TotalEarnings)
}

func colorizeLost(lost int) string {
	if lost == 0 {
		return color.New(color.FgGreen).Sprint("0")
	}
	return color.New(color.FgRed).Sprintf("%d", lost)
}
