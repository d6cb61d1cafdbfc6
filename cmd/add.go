// =============================================================================
// Trucking Delivery Tracker - Add Command
// =============================================================================
//
// COMMAND USAGE:
//   tracker add
//
// Runs the entry workflow once (date, mileage, load type, details, then
// confirmation) and appends the confirmed delivery to the data file.
//
// =============================================================================

package cmd

import (
	"github.com/spf13/cobra"
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add one delivery entry",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()

		return a.menu().AddEntry()
	},
}

func init() {
	rootCmd.AddCommand(addCmd)
}
