package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"expenses/internal/report"
)

var exportOut string

// exportCmd writes the full transaction snapshot as JSON.
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export all transactions to a JSON snapshot",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := newTracker(cmd.Context())
		if err != nil {
			return err
		}
		defer svc.Close()

		path, err := svc.Export(cmd.Context(), exportOut)
		if errors.Is(err, report.ErrNoData) {
			fmt.Println("No expenses to export.")
			return nil
		}
		if err != nil {
			return err
		}
		fmt.Printf("Data exported to %s\n", path)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVar(&exportOut, "out", "expenses.json", "output file name")
}
