// =============================================================================
// Trucking Delivery Tracker - Init Command
// =============================================================================
//
// COMMAND USAGE:
//   tracker init
//
// Creates the data file with just the header if it is missing, empty or
// unreadable, and leaves a valid file alone. Rows that would not pass entry
// validation (usually hand edits) are reported but kept.
//
// =============================================================================

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create or repair the delivery data file",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()

		table, err := a.store.Load()
		if err != nil {
			return err
		}

		if !a.dataFileExisted {
			fmt.Printf("Created %s\n", a.store.Path())
		}
		if _, err := table.Records(); err != nil {
			a.logger.Warn("%s has rows that fail validation: %v", a.store.Path(), err)
		}
		fmt.Printf("%s ready (%d deliveries)\n", a.store.Path(), table.Len())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
