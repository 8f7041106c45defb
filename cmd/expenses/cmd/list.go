package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"expenses/internal/core"
)

var (
	listCategory string
	listMonth    int
	listYear     int
)

// listCmd prints the recorded expenses, optionally filtered.
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List recorded expenses",
	Long: `List recorded expenses in insertion order, with an optional
category, month and year filter. All set filters must match.

Example:
  expenses list --category Food --month 6 --year 2024`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := buildFilter(listCategory, listMonth, listYear)
		if err != nil {
			return err
		}

		svc, err := newTracker(cmd.Context())
		if err != nil {
			return err
		}
		defer svc.Close()

		matching := svc.List(cmd.Context(), f)
		if len(matching) == 0 {
			fmt.Println("No expenses match your filters.")
			return nil
		}

		fmt.Println("\n--- Expenses ---")
		var total core.Money
		for i, tx := range matching {
			fmt.Printf("%d. %s - %s (%s): $%s\n",
				i+1, tx.Date.Time.Format(core.DateLayout), tx.Description, tx.Category, tx.Amount)
			total = total.Add(tx.Amount)
		}
		fmt.Printf("\nTotal: $%s\n", total)
		return nil
	},
}

func init() {
	listCmd.Flags().StringVar(&listCategory, "category", "", "filter by category (exact match)")
	listCmd.Flags().IntVar(&listMonth, "month", 0, "filter by month (1-12)")
	listCmd.Flags().IntVar(&listYear, "year", 0, "filter by year")
}

// buildFilter validates month/year ranges and rejects category filters that
// are not in the closed set: filtering by a typo would silently match
// nothing the user expects.
func buildFilter(category string, month, year int) (core.Filter, error) {
	var f core.Filter
	if category != "" {
		c := core.Category(category)
		if !c.Valid() {
			return f, fmt.Errorf("unknown category %q (one of %v)", category, core.Categories)
		}
		f.Category = c
	}
	if month < 0 || month > 12 {
		return f, core.ErrInvalidMonth
	}
	if year < 0 {
		return f, core.ErrInvalidYear
	}
	f.Month = month
	f.Year = year
	return f, nil
}
