package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"expenses/internal/chart"
)

var (
	chartMonth int
	chartYear  int
	chartOut   string
)

var chartCmd = &cobra.Command{
	Use:   "chart",
	Short: "Render chart images",
}

// chartAnalysisCmd renders the distribution + budget comparison image.
var chartAnalysisCmd = &cobra.Command{
	Use:   "analysis",
	Short: "Render expense distribution and actual-vs-budget comparison",
	Long: `Render a combined image: a pie chart of the expense distribution
next to a bar comparison of actual versus budgeted spending, for an
optional month/year window.

Example:
  expenses chart analysis --month 6 --year 2024`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := buildFilter("", chartMonth, chartYear)
		if err != nil {
			return err
		}

		svc, err := newTracker(cmd.Context())
		if err != nil {
			return err
		}
		defer svc.Close()

		path, err := svc.RenderAnalysis(cmd.Context(), f, chartOut)
		if errors.Is(err, chart.ErrEmptySeries) {
			fmt.Println("No expenses to visualize.")
			return nil
		}
		if err != nil {
			return err
		}
		fmt.Printf("Saved expense analysis to %s\n", path)
		return nil
	},
}

// chartTrendCmd renders the monthly trend bar chart.
var chartTrendCmd = &cobra.Command{
	Use:   "trend",
	Short: "Render the monthly spending trend chart",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := newTracker(cmd.Context())
		if err != nil {
			return err
		}
		defer svc.Close()

		path, err := svc.RenderTrend(cmd.Context(), chartOut)
		if errors.Is(err, chart.ErrEmptySeries) {
			fmt.Println("No expenses to analyze trends.")
			return nil
		}
		if err != nil {
			return err
		}
		fmt.Printf("Saved spending trends to %s\n", path)
		return nil
	},
}

func init() {
	chartAnalysisCmd.Flags().IntVar(&chartMonth, "month", 0, "month (1-12, 0 = all)")
	chartAnalysisCmd.Flags().IntVar(&chartYear, "year", 0, "year (0 = all)")
	chartCmd.PersistentFlags().StringVar(&chartOut, "out", "", "output file name")

	chartCmd.AddCommand(chartAnalysisCmd)
	chartCmd.AddCommand(chartTrendCmd)
}
