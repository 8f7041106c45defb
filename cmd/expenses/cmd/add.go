package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// addCmd records a new expense.
var addCmd = &cobra.Command{
	Use:   "add <description> <category> <amount>",
	Short: "Record a new expense",
	Long: `Record a new expense. The timestamp is assigned now, at minute
precision. A category outside the known set is stored under Other.

Example:
  expenses add "Coffee" Food 4.50`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := newTracker(cmd.Context())
		if err != nil {
			return err
		}
		defer svc.Close()

		tx, err := svc.AddTransaction(cmd.Context(), args[0], args[1], args[2])
		if err != nil {
			return err
		}
		fmt.Printf("Added expense: $%s for %s (%s)\n", tx.Amount, tx.Description, tx.Category)
		return nil
	},
}
