// =============================================================================
// Trucking Delivery Tracker - Reporting
// =============================================================================
//
// Summary statistics over the stored deliveries:
//   - Total deliveries        (row count)
//   - Total mileage           (sum of the mileage column)
//   - Average mileage         (mean of the mileage column)
//   - Most frequent load type (mode of the load_type column)
//
// Blank mileage or load type cells (left by hand edits or by older files
// that lacked the column) are skipped for the statistic they affect. A
// mileage cell that is not a number is an error for the whole summary.
//
// The mode breaks ties in favor of the value that appears first in the file.
//
// =============================================================================

package report

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/ginjaninja78/trucking-delivery-tracker/internal/store"
	"github.com/ginjaninja78/trucking-delivery-tracker/internal/types"
)

// ErrNoData is returned when there are no rows to summarize.
var ErrNoData = errors.New("no data available to summarize")

// Summary holds the computed statistics.
type Summary struct {
	TotalDeliveries  int
	TotalMileage     float64
	AverageMileage   float64
	MostFrequentLoad string
}

// Count is the number of rows holding one value.
type Count struct {
	Value string
	N     int
}

// Summarize computes the summary statistics for table.
//
// RETURNS:
//   - ErrNoData when the table has no rows.
//   - *store.MissingColumnError when mileage or load_type is absent.
func Summarize(table *store.Table) (*Summary, error) {
	if table.Empty() {
		return nil, ErrNoData
	}

	mileages, err := table.Column(types.ColumnMileage)
	if err != nil {
		return nil, err
	}

	counts, err := LoadTypeCounts(table)
	if err != nil {
		return nil, err
	}

	summary := &Summary{TotalDeliveries: table.Len()}

	var n int
	for i, raw := range mileages {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}
		m, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("row %d: invalid mileage %q", i+1, raw)
		}
		summary.TotalMileage += m
		n++
	}
	if n > 0 {
		summary.AverageMileage = summary.TotalMileage / float64(n)
	}

	if len(counts) > 0 {
		summary.MostFrequentLoad = counts[0].Value
	}

	return summary, nil
}

// LoadTypeCounts counts deliveries per load type, most frequent first. Equal
// counts keep the order in which the values first appear. Blank cells are
// not counted.
func LoadTypeCounts(table *store.Table) ([]Count, error) {
	values, err := table.Column(types.ColumnLoadType)
	if err != nil {
		return nil, err
	}

	index := make(map[string]int)
	var counts []Count
	for _, v := range values {
		if strings.TrimSpace(v) == "" {
			continue
		}
		i, ok := index[v]
		if !ok {
			i = len(counts)
			index[v] = i
			counts = append(counts, Count{Value: v})
		}
		counts[i].N++
	}

	sort.SliceStable(counts, func(a, b int) bool {
		return counts[a].N > counts[b].N
	})

	return counts, nil
}

// =============================================================================
// OUTPUT
// =============================================================================

// Write prints the summary block.
func (s *Summary) Write(w io.Writer) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, "--- Summary Statistics ---")
	fmt.Fprintf(w, "Total Deliveries: %d\n", s.TotalDeliveries)
	fmt.Fprintf(w, "Total Mileage: %.2f miles\n", s.TotalMileage)
	fmt.Fprintf(w, "Average Mileage per Delivery: %.2f miles\n", s.AverageMileage)
	fmt.Fprintf(w, "Most Frequent Load Type: %s\n", s.MostFrequentLoad)
	fmt.Fprintln(w, "--------------------------")
	fmt.Fprintln(w)
}

// Show loads the summary for table and prints it, or prints why it could not
// be produced. Only unexpected errors (such as a non-numeric mileage cell)
// are returned.
func Show(w io.Writer, table *store.Table) error {
	summary, err := Summarize(table)

	var mce *store.MissingColumnError
	switch {
	case errors.Is(err, ErrNoData):
		fmt.Fprintln(w, "No data available to summarize.")
		return nil
	case errors.As(err, &mce):
		fmt.Fprintf(w, "Error: Missing column in data: '%s'\n", mce.Column)
		fmt.Fprintf(w, "Ensure the CSV file contains the following columns: %s.\n", strings.Join(types.Header(), ", "))
		return nil
	case err != nil:
		return err
	}

	summary.Write(w)
	return nil
}
