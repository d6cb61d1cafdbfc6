package store

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ginjaninja78/trucking-delivery-tracker/internal/types"
	"github.com/ginjaninja78/trucking-delivery-tracker/internal/validation"
)

// =============================================================================
// TABLE
// =============================================================================

// Table is the full content of the data file: a header and the data rows,
// all as text. Rows are padded to the header width on load.
//
// The header is kept as read so that a hand-edited file with a missing or
// renamed column can still be loaded and reported on.
type Table struct {
	Header []string
	Rows   [][]string
}

// NewTable returns an empty table with the fixed header.
func NewTable() *Table {
	return &Table{Header: types.Header(), Rows: [][]string{}}
}

// Len returns the number of data rows.
func (t *Table) Len() int { return len(t.Rows) }

// Empty reports whether the table has no data rows.
func (t *Table) Empty() bool { return len(t.Rows) == 0 }

// ColumnIndex returns the position of column c in the header.
func (t *Table) ColumnIndex(c types.Column) (int, bool) {
	for i, h := range t.Header {
		if h == string(c) {
			return i, true
		}
	}
	return -1, false
}

// Column returns every value of column c in row order.
func (t *Table) Column(c types.Column) ([]string, error) {
	idx, ok := t.ColumnIndex(c)
	if !ok {
		return nil, &MissingColumnError{Column: c}
	}

	values := make([]string, len(t.Rows))
	for i, row := range t.Rows {
		values[i] = row[idx]
	}
	return values, nil
}

// Filter returns a new table holding the rows where column c equals value.
func (t *Table) Filter(c types.Column, value string) (*Table, error) {
	idx, ok := t.ColumnIndex(c)
	if !ok {
		return nil, &MissingColumnError{Column: c}
	}

	filtered := &Table{Header: t.Header, Rows: [][]string{}}
	for _, row := range t.Rows {
		if row[idx] == value {
			filtered.Rows = append(filtered.Rows, row)
		}
	}
	return filtered, nil
}

// UniqueValues returns the distinct values of column c in first-seen order.
func (t *Table) UniqueValues(c types.Column) ([]string, error) {
	values, err := t.Column(c)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	var unique []string
	for _, v := range values {
		if !seen[v] {
			seen[v] = true
			unique = append(unique, v)
		}
	}
	return unique, nil
}

// Records converts every row into a typed DeliveryRecord. It fails on the
// first row that is missing a column or holds an invalid value.
func (t *Table) Records() ([]types.DeliveryRecord, error) {
	idx := make(map[types.Column]int, len(types.Columns))
	for _, c := range types.Columns {
		i, ok := t.ColumnIndex(c)
		if !ok {
			return nil, &MissingColumnError{Column: c}
		}
		idx[c] = i
	}

	records := make([]types.DeliveryRecord, 0, len(t.Rows))
	for n, row := range t.Rows {
		mileage, err := strconv.ParseFloat(strings.TrimSpace(row[idx[types.ColumnMileage]]), 64)
		if err != nil {
			return nil, fmt.Errorf("row %d: invalid mileage %q: %w", n+1, row[idx[types.ColumnMileage]], err)
		}
		loadType, err := types.ParseLoadType(row[idx[types.ColumnLoadType]])
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", n+1, err)
		}

		r := types.DeliveryRecord{
			Date:            row[idx[types.ColumnDate]],
			Mileage:         mileage,
			LoadType:        loadType,
			DeliveryDetails: row[idx[types.ColumnDeliveryDetails]],
		}
		if errs := validation.ValidateRecord(r); len(errs) > 0 {
			return nil, fmt.Errorf("row %d: %w", n+1, errs[0])
		}
		records = append(records, r)
	}

	return records, nil
}

// withSchemaColumns returns a copy of t whose header contains every schema
// column. Missing columns are added at the end and existing rows get empty
// cells for them.
func (t *Table) withSchemaColumns() *Table {
	header := append([]string(nil), t.Header...)
	for _, c := range types.Columns {
		if _, ok := t.ColumnIndex(c); !ok {
			header = append(header, string(c))
		}
	}

	rows := make([][]string, len(t.Rows), len(t.Rows)+1)
	for i, row := range t.Rows {
		rows[i] = padRow(row, len(header))
	}
	return &Table{Header: header, Rows: rows}
}

// rowFor lays a record out in this table's column order.
func (t *Table) rowFor(r types.DeliveryRecord) []string {
	row := make([]string, len(t.Header))
	for i, h := range t.Header {
		row[i] = r.Field(types.Column(h))
	}
	return row
}

func padRow(row []string, width int) []string {
	if len(row) >= width {
		return row
	}
	padded := make([]string, width)
	copy(padded, row)
	return padded
}

// =============================================================================
// ERRORS
// =============================================================================

// MissingColumnError reports that the data file has no column with the
// expected name.
type MissingColumnError struct {
	Column types.Column
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("missing column in data: %q", string(e.Column))
}
