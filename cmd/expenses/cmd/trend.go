package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// trendCmd prints monthly spending totals across the whole history.
var trendCmd = &cobra.Command{
	Use:   "trend",
	Short: "Show monthly spending totals",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := newTracker(cmd.Context())
		if err != nil {
			return err
		}
		defer svc.Close()

		points := svc.Trend(cmd.Context())
		if len(points) == 0 {
			fmt.Println("No expenses to analyze trends.")
			return nil
		}

		fmt.Println("\n--- Monthly Spending Trends ---")
		for _, p := range points {
			fmt.Printf("%s: $%s\n", p.Label, p.Total)
		}
		return nil
	},
}
