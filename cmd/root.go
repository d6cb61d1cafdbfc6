// =============================================================================
// Trucking Delivery Tracker - Root Command
// =============================================================================
//
// This file defines the root command for the Cobra CLI. Run without a
// subcommand, the tracker starts the interactive menu. The subcommands run a
// single menu action directly, which is handy from scripts.
//
// COBRA CLI STRUCTURE:
//   rootCmd (tracker)            interactive menu
//   ├── addCmd (tracker add)
//   ├── summaryCmd (tracker summary)
//   ├── visualizeCmd (tracker visualize)
//   ├── exportCmd (tracker export)
//   ├── initCmd (tracker init)
//   └── versionCmd (tracker version)
//
// GLOBAL FLAGS:
//   --config     : YAML configuration file (optional)
//   --data-file  : Override the delivery CSV file
//   --verbose    : Debug logging
//
// =============================================================================

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// =============================================================================
// GLOBAL VARIABLES
// =============================================================================

// cfgFile holds the path to the configuration file.
var cfgFile string

// dataFile overrides the configured data file when set.
var dataFile string

// verbose forces debug logging.
var verbose bool

// =============================================================================
// ROOT COMMAND DEFINITION
// =============================================================================

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "tracker",
	Short: "Trucking Delivery Tracker - Record and review truck deliveries",
	Long: `Trucking Delivery Tracker records deliveries (date, mileage, load type and
details) in a CSV file and turns them into summary statistics and charts.

Run without a subcommand to use the interactive menu:
  1. Add Delivery Entry
  2. Visualize Data
  3. View Summary Statistics
  4. Help
  5. Exit

Example Usage:
  tracker                              # Interactive menu
  tracker add                          # Add one delivery and exit
  tracker summary                      # Print summary statistics
  tracker visualize --load-type Dry    # Charts for dry loads only
  tracker export                       # Write an XLSX workbook
  tracker --data-file route42.csv      # Use another data file`,

	SilenceUsage:  true,
	SilenceErrors: true,

	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()

		return a.menu().Run()
	},
}

// =============================================================================
// EXECUTE FUNCTION
// =============================================================================

// Execute runs the root command. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// =============================================================================
// INITIALIZATION
// =============================================================================

func init() {
	// ==========================================================================
	// PERSISTENT FLAGS
	// ==========================================================================

	rootCmd.PersistentFlags().StringVar(
		&cfgFile,
		"config",
		"config.yaml",
		"Path to the configuration file",
	)

	rootCmd.PersistentFlags().StringVar(
		&dataFile,
		"data-file",
		"",
		"Path to the delivery CSV file (overrides config)",
	)

	rootCmd.PersistentFlags().BoolVarP(
		&verbose,
		"verbose",
		"v",
		false,
		"Enable verbose output for debugging",
	)
}
