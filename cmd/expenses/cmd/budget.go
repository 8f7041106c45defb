package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"expenses/internal/core"
)

var budgetCmd = &cobra.Command{
	Use:   "budget",
	Short: "Manage monthly category budgets",
}

// budgetSetCmd updates budgets from Category=Amount pairs.
var budgetSetCmd = &cobra.Command{
	Use:   "set <Category=Amount> ...",
	Short: "Set monthly budgets per category",
	Long: `Set monthly budgets from Category=Amount pairs. Unlisted
categories keep their current budget; setting an amount of 0 removes the
ceiling (0 means "no budget", not "no spending allowed").

Example:
  expenses budget set Food=400 Housing=1200.50`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := newTracker(cmd.Context())
		if err != nil {
			return err
		}
		defer svc.Close()

		budgets := svc.Budgets(cmd.Context())
		for _, arg := range args {
			name, value, found := strings.Cut(arg, "=")
			if !found {
				return fmt.Errorf("invalid budget %q: expected Category=Amount", arg)
			}
			category := core.Category(strings.TrimSpace(name))
			if !category.Valid() {
				return fmt.Errorf("unknown category %q (one of %v)", name, core.Categories)
			}
			limit, err := core.ParseAmount(value)
			if err != nil {
				return fmt.Errorf("invalid amount %q for %s: %w", value, category, err)
			}
			budgets[category] = limit
		}

		if err := svc.SetBudgets(cmd.Context(), budgets); err != nil {
			return err
		}
		fmt.Println("Budgets updated successfully!")
		return nil
	},
}

// budgetShowCmd prints the configured budgets for every category.
var budgetShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show configured budgets",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := newTracker(cmd.Context())
		if err != nil {
			return err
		}
		defer svc.Close()

		budgets := svc.Budgets(cmd.Context())
		fmt.Println("\n--- Monthly Budgets ---")
		for _, category := range core.Categories {
			limit, ok := budgets[category]
			if !ok || limit.Cents == 0 {
				fmt.Printf("%s: (no budget)\n", category)
				continue
			}
			fmt.Printf("%s: $%s\n", category, limit)
		}
		return nil
	},
}

func init() {
	budgetCmd.AddCommand(budgetSetCmd)
	budgetCmd.AddCommand(budgetShowCmd)
}
