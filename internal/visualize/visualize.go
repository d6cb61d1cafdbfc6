// =============================================================================
// Trucking Delivery Tracker - Visualization
// =============================================================================
//
// Turns the stored deliveries into two charts:
//   1. Mileage over time (line, one marker per delivery, sorted by date)
//   2. Deliveries per load type (bar)
//
// Rows can be narrowed to one load type first, picked from the values that
// actually occur in the file. Dates are parsed as DD-MM-YYYY; a row that does
// not parse (for example after a hand edit) aborts the visualization with
// that error and nothing is drawn.
//
// =============================================================================

package visualize

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/ginjaninja78/trucking-delivery-tracker/internal/chart"
	"github.com/ginjaninja78/trucking-delivery-tracker/internal/prompt"
	"github.com/ginjaninja78/trucking-delivery-tracker/internal/report"
	"github.com/ginjaninja78/trucking-delivery-tracker/internal/store"
	"github.com/ginjaninja78/trucking-delivery-tracker/internal/types"
	"github.com/ginjaninja78/trucking-delivery-tracker/internal/validation"
)

// AllLoadTypes is the title suffix when no filter is active.
const AllLoadTypes = "All"

// Result lists the chart files that were produced.
type Result struct {
	Filter    string
	LineChart string
	BarChart  string
}

// Run asks whether to filter (unless filter is already set), builds both
// charts, and hands them to the renderer. It returns a nil Result when there
// is nothing to draw.
func Run(c *prompt.Console, table *store.Table, renderer chart.Renderer, filter string) (*Result, error) {
	if table.Empty() {
		c.Println("No data available to visualize.")
		return nil, nil
	}

	if filter == "" {
		chosen, err := chooseFilter(c, table)
		if err != nil {
			return nil, err
		}
		filter = chosen
	}

	line, bar, err := Prepare(table, filter)
	if err != nil {
		return nil, err
	}
	if len(line.X) == 0 && len(bar.Categories) == 0 {
		if filter != "" {
			c.Printf("No deliveries with load type %q to visualize.\n", filter)
		} else {
			c.Println("No data available to visualize.")
		}
		return nil, nil
	}

	result := &Result{Filter: filter}

	if len(line.X) == 0 {
		c.Println("No mileage values to plot over time.")
	} else {
		if result.LineChart, err = renderer.LinePlot(line); err != nil {
			return nil, err
		}
		c.Printf("Mileage chart saved to %s\n", result.LineChart)
	}

	if len(bar.Categories) > 0 {
		if result.BarChart, err = renderer.BarPlot(bar); err != nil {
			return nil, err
		}
		c.Printf("Load type chart saved to %s\n", result.BarChart)
	}

	return result, nil
}

// chooseFilter asks whether to filter and, if so, which load type to keep.
// Blank load types are not offered. An empty return means no filter.
func chooseFilter(c *prompt.Console, table *store.Table) (string, error) {
	ok, err := prompt.Confirm(c, "Filter by load type? (y/n): ")
	if err != nil || !ok {
		return "", err
	}

	all, err := table.UniqueValues(types.ColumnLoadType)
	if err != nil {
		return "", err
	}
	values := make([]string, 0, len(all))
	for _, v := range all {
		if strings.TrimSpace(v) != "" {
			values = append(values, v)
		}
	}
	if len(values) == 0 {
		c.Println("No load types recorded; showing all deliveries.")
		return "", nil
	}

	idx, err := prompt.Choose(c, "Available load types:", values, "Enter load type to filter: ")
	if err != nil {
		return "", err
	}
	return values[idx], nil
}

// point is one delivery on the mileage chart.
type point struct {
	date    time.Time
	mileage float64
}

// Prepare builds the chart specs for table, keeping only rows whose
// load_type equals filter when filter is not empty.
func Prepare(table *store.Table, filter string) (chart.LineSpec, chart.BarSpec, error) {
	title := AllLoadTypes
	if filter != "" {
		filtered, err := table.Filter(types.ColumnLoadType, filter)
		if err != nil {
			return chart.LineSpec{}, chart.BarSpec{}, err
		}
		table = filtered
		title = filter
	}

	points, err := mileagePoints(table)
	if err != nil {
		return chart.LineSpec{}, chart.BarSpec{}, err
	}

	line := chart.LineSpec{
		Title:  fmt.Sprintf("Mileage Over Time (%s)", title),
		XLabel: "Date",
		YLabel: "Mileage (miles)",
	}
	for _, p := range points {
		line.X = append(line.X, p.date)
		line.Y = append(line.Y, p.mileage)
	}

	counts, err := report.LoadTypeCounts(table)
	if err != nil {
		return chart.LineSpec{}, chart.BarSpec{}, err
	}

	bar := chart.BarSpec{
		Title:  "Load Type Distribution",
		XLabel: "Load Type",
		YLabel: "Number of Deliveries",
	}
	for _, c := range counts {
		bar.Categories = append(bar.Categories, c.Value)
		bar.Values = append(bar.Values, float64(c.N))
	}

	return line, bar, nil
}

// mileagePoints parses every row into a dated point, sorted by date. Rows
// with a blank mileage are left off the chart.
func mileagePoints(table *store.Table) ([]point, error) {
	dates, err := table.Column(types.ColumnDate)
	if err != nil {
		return nil, err
	}
	mileages, err := table.Column(types.ColumnMileage)
	if err != nil {
		return nil, err
	}

	points := make([]point, 0, len(dates))
	for i := range dates {
		d, err := validation.ParseDate(dates[i])
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}

		raw := strings.TrimSpace(mileages[i])
		if raw == "" {
			continue
		}
		m, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("row %d: invalid mileage %q: %w", i+1, raw, err)
		}

		points = append(points, point{date: d, mileage: m})
	}

	sort.SliceStable(points, func(a, b int) bool {
		return points[a].date.Before(points[b].date)
	})

	return points, nil
}
