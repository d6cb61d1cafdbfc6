// =============================================================================
// Trucking Delivery Tracker - Main Entry Point
// =============================================================================
//
// USAGE:
//   tracker             - Interactive menu
//   tracker add         - Add one delivery entry
//   tracker summary     - Print summary statistics
//   tracker visualize   - Render delivery charts
//   tracker export      - Export deliveries to XLSX
//   tracker init        - Create or repair the data file
//   tracker version     - Display the application version
//
// ARCHITECTURE:
//   - cmd/           : CLI command definitions (Cobra)
//   - internal/      : Store, prompts, reporting, charts and export
//   - pkg/           : Shared file utilities
//
// =============================================================================

package main

import (
	"github.com/ginjaninja78/trucking-delivery-tracker/cmd"
)

func main() {
	cmd.Execute()
}
