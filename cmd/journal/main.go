package main

import (
	"fmt"
	"log"
	"os"

	"tradejournal/api"
	"tradejournal/cmd"

	"github.com/google/uuid"
	_ "github.com/lib/pq"
	"github.com/spf13/cobra"
)

// journal is the operator CLI. It talks straight to the services, so it
// works against accounts regardless of who owns them - there is no auth
// layer here.
func main() {
	var apiHandler *api.ApiHandler

	rootCmd := &cobra.Command{
		Use:   "journal",
		Short: "trading journal admin tool",
		PersistentPreRunE: func(c *cobra.Command, args []string) error {
			var err error
			apiHandler, err = cmd.InitializeDependencies()
			return err
		},
		PersistentPostRun: func(c *cobra.Command, args []string) {
			cmd.CloseDependencies(apiHandler)
		},
	}

	importCmd := &cobra.Command{
		Use:   "import <accountID> <file.csv>",
		Short: "import trades from a csv export",
		Args:  cobra.ExactArgs(2),
		RunE: func(c *cobra.Command, args []string) error {
			accountID, err := uuid.Parse(args[0])
			if err != nil {
				return fmt.Errorf("invalid account id: %w", err)
			}
			f, err := os.Open(args[1])
			if err != nil {
				return err
			}
			defer f.Close()

			trades, err := apiHandler.ImportService.ImportTrades(c.Context(), accountID, f)
			if err != nil {
				return err
			}
			fmt.Printf("imported %d trades\n", len(trades))
			return nil
		},
	}

	syncCmd := &cobra.Command{
		Use:   "sync <accountID>",
		Short: "pull filled orders from the brokerage",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			accountID, err := uuid.Parse(args[0])
			if err != nil {
				return fmt.Errorf("invalid account id: %w", err)
			}
			imported, err := apiHandler.SyncService.SyncAccount(c.Context(), accountID)
			if err != nil {
				return err
			}
			fmt.Printf("imported %d trades\n", imported)
			return nil
		},
	}

	recomputeCmd := &cobra.Command{
		Use:   "recompute <accountID>",
		Short: "rebuild the stored metrics projection",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			accountID, err := uuid.Parse(args[0])
			if err != nil {
				return fmt.Errorf("invalid account id: %w", err)
			}
			metrics, err := apiHandler.MetricsService.RecomputeAccountMetrics(c.Context(), accountID)
			if err != nil {
				return err
			}
			fmt.Printf("recomputed metrics over %d trades, net P&L %s\n",
				metrics.TotalTrades, metrics.NetProfitLoss)
			return nil
		},
	}

	performanceCmd := &cobra.Command{
		Use:   "performance <accountID>",
		Short: "print the daily performance series",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			accountID, err := uuid.Parse(args[0])
			if err != nil {
				return fmt.Errorf("invalid account id: %w", err)
			}
			entries, err := apiHandler.PerformanceService.AccountDailyPerformance(c.Context(), accountID)
			if err != nil {
				return err
			}
			fmt.Printf("%-12s %12s %12s %12s %8s %8s\n",
				"date", "start", "pl", "end", "day%", "cum%")
			for _, e := range entries {
				fmt.Printf("%-12s %12s %12s %12s %8s %8s\n",
					e.Date.Format("2006-01-02"),
					e.StartingBalance,
					e.RealizedPL,
					e.EndingBalance,
					e.DailyReturn,
					e.CumulativeReturn,
				)
			}
			return nil
		},
	}

	rootCmd.AddCommand(importCmd, syncCmd, recomputeCmd, performanceCmd)

	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
