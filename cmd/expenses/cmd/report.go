package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"expenses/internal/report"
)

var (
	reportMonth int
	reportYear  int
)

// reportCmd builds and persists the monthly report artifact.
var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Generate a monthly report artifact",
	Long: `Generate the JSON report for one month: grand total, per-category
totals and the itemized transaction list. Month and year default to the
current calendar month. A month without transactions produces no file.

Example:
  expenses report --month 6 --year 2024`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := newTracker(cmd.Context())
		if err != nil {
			return err
		}
		defer svc.Close()

		r, path, err := svc.MonthlyReport(cmd.Context(), reportMonth, reportYear)
		if errors.Is(err, report.ErrNoData) {
			fmt.Printf("No expenses for that month: %v\n", err)
			return nil
		}
		if err != nil {
			return err
		}
		fmt.Printf("Monthly report for %s %d saved to %s\n", r.Month, r.Year, path)
		return nil
	},
}

func init() {
	reportCmd.Flags().IntVar(&reportMonth, "month", 0, "month (1-12, default: current)")
	reportCmd.Flags().IntVar(&reportYear, "year", 0, "year (default: current)")
}
