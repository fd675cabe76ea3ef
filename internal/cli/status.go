package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/rush/internal/db"
	"github.com/example/rush/internal/wire"
)

// StatusCmd returns the status command
func StatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the active configuration and run history summary",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := wire.Config()

			fmt.Println("Rush Status")
			fmt.Println()
			fmt.Printf("Tables: %d\n", cfg.TableCount)
			fmt.Printf("Phases: grocery %ds, prep %ds, service %ds\n",
				cfg.GroceryMs/1000, cfg.KitchenPrepMs/1000, cfg.ServiceMs/1000)
			fmt.Printf("Customer patience: %ds\n", cfg.CustomerPatienceMs/1000)
			fmt.Printf("Starting coins: %d\n", cfg.StartingCoins)
			fmt.Printf("Stations: %d cutting board, %d stove, %d oven\n",
				cfg.CuttingBoardSlots, cfg.StoveSlots, cfg.OvenSlots)
			fmt.Println()

			dbPath, err := db.GetDBPath()
			if err == nil {
				fmt.Printf("Database: %s\n", dbPath)
			}

			runs, err := wire.RunService().ListRuns(context.Background(), 3)
			if err != nil || len(runs) == 0 {
				fmt.Println("No runs recorded yet.")
				return nil
			}
			fmt.Printf("Recent runs:\n")
			for _, run := range runs {
				fmt.Printf("  %s  served %d, lost %d, earned %d\n",
					run.ID, run.TotalServed, run.TotalLost, run.TotalEarnings)
			}
			return nil
		},
	}
}
