package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Clear stored data",
}

// clearTransactionsCmd deletes the whole transaction history.
var clearTransactionsCmd = &cobra.Command{
	Use:   "transactions",
	Short: "Delete all recorded expenses",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := newTracker(cmd.Context())
		if err != nil {
			return err
		}
		defer svc.Close()

		if err := svc.ClearTransactions(cmd.Context()); err != nil {
			return err
		}
		fmt.Println("All expenses have been cleared.")
		return nil
	},
}

// clearBudgetsCmd deletes every configured budget.
var clearBudgetsCmd = &cobra.Command{
	Use:   "budgets",
	Short: "Delete all configured budgets",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := newTracker(cmd.Context())
		if err != nil {
			return err
		}
		defer svc.Close()

		if err := svc.ClearBudgets(cmd.Context()); err != nil {
			return err
		}
		fmt.Println("All budgets have been cleared.")
		return nil
	},
}

func init() {
	clearCmd.AddCommand(clearTransactionsCmd)
	clearCmd.AddCommand(clearBudgetsCmd)
}
