package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"expenses/internal/core"
)

var (
	summaryMonth int
	summaryYear  int
)

// summaryCmd prints per-category totals with budget status.
var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Show per-category totals against budgets",
	Long: `Show per-category totals and the grand total for an optional
month/year window, each category annotated with its budget headroom.

Example:
  expenses summary --month 6 --year 2024`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := buildFilter("", summaryMonth, summaryYear)
		if err != nil {
			return err
		}

		svc, err := newTracker(cmd.Context())
		if err != nil {
			return err
		}
		defer svc.Close()

		summary := svc.Summary(cmd.Context(), f)
		if len(summary.ByCategory) == 0 {
			fmt.Println("No expenses to summarize.")
			return nil
		}

		header := ""
		switch {
		case f.Month != 0 && f.Year != 0:
			header = fmt.Sprintf(" for %s %d", time.Month(f.Month), f.Year)
		case f.Year != 0:
			header = fmt.Sprintf(" for %d", f.Year)
		}
		fmt.Printf("\n--- Expense Summary%s ---\n", header)

		for _, line := range svc.BudgetLines(cmd.Context(), f) {
			status := ""
			switch line.Status {
			case core.StatusOverBudget:
				status = " (OVER BUDGET!)"
			case core.StatusUnderBudget:
				status = fmt.Sprintf(" ($%s remaining)", line.Remaining)
			}
			fmt.Printf("%s: $%s%s\n", line.Category, line.Spent, status)
		}
		fmt.Printf("\nTotal Expenses: $%s\n", summary.Total)
		return nil
	},
}

func init() {
	summaryCmd.Flags().IntVar(&summaryMonth, "month", 0, "month (1-12, 0 = all)")
	summaryCmd.Flags().IntVar(&summaryYear, "year", 0, "year (0 = all)")
}
