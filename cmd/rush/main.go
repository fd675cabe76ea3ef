package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/rush/internal/cli"
	"github.com/example/rush/internal/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "rush",
		Short:   "Rush - restaurant service-day simulator",
		Version: version.String(),
		Long: `Rush simulates restaurant service days: grocery shopping, kitchen prep,
a timed dinner service with a live kitchen pipeline, and a day-end tally.
Runs are seeded and deterministic, and every run is recorded for review.`,
	}

	rootCmd.AddCommand(cli.SimulateCmd())
	rootCmd.AddCommand(cli.HistoryCmd())
	rootCmd.AddCommand(cli.MenuCmd())
	rootCmd.AddCommand(cli.StatusCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
