// =============================================================================
// Trucking Delivery Tracker - XLSX Export
// =============================================================================
//
// Writes the stored deliveries to an Excel workbook for sharing with people
// who do not want a CSV file.
//
// WORKBOOK LAYOUT:
//   Sheet "Deliveries":
//     | date       | mileage | load_type    | delivery_details         |
//     | 01-12-2024 | 200     | Refrigerated | Delivery to Cold Storage |
//     Mileage cells are numeric when they parse as numbers.
//
//   Sheet "Summary":
//     | Statistic                    | Value  |
//     | Total Deliveries             | 2      |
//     | Total Mileage                | 400    |
//     | Average Mileage per Delivery | 200    |
//     | Most Frequent Load Type      | Dry    |
//     followed by a per-load-type count table.
//     When the summary cannot be computed the sheet holds the reason instead.
//
// =============================================================================

package xlsxexport

import (
	"errors"
	"fmt"
	"math"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/ginjaninja78/trucking-delivery-tracker/internal/report"
	"github.com/ginjaninja78/trucking-delivery-tracker/internal/store"
	"github.com/ginjaninja78/trucking-delivery-tracker/internal/types"
	"github.com/ginjaninja78/trucking-delivery-tracker/pkg/utils"
)

// Sheet names.
const (
	SheetDeliveries = "Deliveries"
	SheetSummary    = "Summary"
)

// Export writes table to a new workbook at path, replacing any existing file.
func Export(table *store.Table, path string) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), SheetDeliveries); err != nil {
		return fmt.Errorf("failed to rename sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}

	if err := writeDeliveries(f, table, headerStyle); err != nil {
		return err
	}

	if _, err := f.NewSheet(SheetSummary); err != nil {
		return fmt.Errorf("failed to add summary sheet: %w", err)
	}
	if err := writeSummary(f, table, headerStyle); err != nil {
		return err
	}

	f.SetActiveSheet(0)

	if err := utils.EnsureDir(filepath.Dir(path)); err != nil {
		return err
	}
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}

	return nil
}

// writeDeliveries copies the header and every row, converting mileage to a
// number where possible.
func writeDeliveries(f *excelize.File, table *store.Table, headerStyle int) error {
	if err := setRow(f, SheetDeliveries, 1, toCells(table.Header)); err != nil {
		return err
	}

	mileageIdx, hasMileage := table.ColumnIndex(types.ColumnMileage)
	for i, row := range table.Rows {
		cells := toCells(row)
		if hasMileage {
			if m, err := strconv.ParseFloat(strings.TrimSpace(row[mileageIdx]), 64); err == nil && !math.IsNaN(m) && !math.IsInf(m, 0) {
				cells[mileageIdx] = m
			}
		}
		if err := setRow(f, SheetDeliveries, i+2, cells); err != nil {
			return err
		}
	}

	if len(table.Header) == 0 {
		return nil
	}
	lastCol, err := excelize.ColumnNumberToName(len(table.Header))
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(SheetDeliveries, "A1", lastCol+"1", headerStyle); err != nil {
		return fmt.Errorf("failed to style header: %w", err)
	}
	if err := f.SetColWidth(SheetDeliveries, "A", lastCol, 18); err != nil {
		return fmt.Errorf("failed to size columns: %w", err)
	}

	return nil
}

// writeSummary fills the Summary sheet from the report package.
func writeSummary(f *excelize.File, table *store.Table, headerStyle int) error {
	summary, err := report.Summarize(table)

	var mce *store.MissingColumnError
	switch {
	case errors.Is(err, report.ErrNoData):
		return setRow(f, SheetSummary, 1, []interface{}{"No data available to summarize."})
	case errors.As(err, &mce):
		return setRow(f, SheetSummary, 1, []interface{}{mce.Error()})
	case err != nil:
		return err
	}

	rows := [][]interface{}{
		{"Statistic", "Value"},
		{"Total Deliveries", summary.TotalDeliveries},
		{"Total Mileage", summary.TotalMileage},
		{"Average Mileage per Delivery", math.Round(summary.AverageMileage*100) / 100},
		{"Most Frequent Load Type", summary.MostFrequentLoad},
		{},
		{"Load Type", "Deliveries"},
	}

	counts, err := report.LoadTypeCounts(table)
	if err != nil {
		return err
	}
	for _, c := range counts {
		rows = append(rows, []interface{}{c.Value, c.N})
	}

	for i, row := range rows {
		if len(row) == 0 {
			continue
		}
		if err := setRow(f, SheetSummary, i+1, row); err != nil {
			return err
		}
	}

	for _, cell := range []string{"A1", "B1", "A7", "B7"} {
		if err := f.SetCellStyle(SheetSummary, cell, cell, headerStyle); err != nil {
			return fmt.Errorf("failed to style summary: %w", err)
		}
	}
	return f.SetColWidth(SheetSummary, "A", "A", 30)
}

func setRow(f *excelize.File, sheet string, row int, cells []interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	if err := f.SetSheetRow(sheet, cell, &cells); err != nil {
		return fmt.Errorf("failed to write %s row %d: %w", sheet, row, err)
	}
	return nil
}

func toCells(values []string) []interface{} {
	cells := make([]interface{}, len(values))
	for i, v := range values {
		cells[i] = v
	}
	return cells
}
