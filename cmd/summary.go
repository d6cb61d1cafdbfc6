// =============================================================================
// Trucking Delivery Tracker - Summary Command
// =============================================================================
//
// COMMAND USAGE:
//   tracker summary
//
// OUTPUT:
//   --- Summary Statistics ---
//   Total Deliveries: 2
//   Total Mileage: 400.00 miles
//   Average Mileage per Delivery: 200.00 miles
//   Most Frequent Load Type: Dry
//   --------------------------
//
// =============================================================================

package cmd

import (
	"github.com/spf13/cobra"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Print summary statistics for recorded deliveries",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()

		return a.menu().Summary()
	},
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}
