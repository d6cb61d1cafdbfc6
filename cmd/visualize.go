// =============================================================================
// Trucking Delivery Tracker - Visualize Command
// =============================================================================
//
// COMMAND USAGE:
//   tracker visualize [--load-type NAME]
//
// Renders the mileage-over-time and load-type charts as PNG files in the
// chart directory. Without --load-type the user is asked whether to filter.
//
// =============================================================================

package cmd

import (
	"github.com/spf13/cobra"
)

// loadTypeFilter keeps only deliveries of this load type.
var loadTypeFilter string

var visualizeCmd = &cobra.Command{
	Use:   "visualize",
	Short: "Render delivery charts",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()

		return a.menu().Visualize(loadTypeFilter)
	},
}

func init() {
	rootCmd.AddCommand(visualizeCmd)

	visualizeCmd.Flags().StringVar(
		&loadTypeFilter,
		"load-type",
		"",
		"Only chart deliveries with this load type (skips the filter prompt)",
	)
}
