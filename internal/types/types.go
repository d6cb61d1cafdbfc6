// =============================================================================
// Trucking Delivery Tracker - Shared Types
// =============================================================================
//
// This package contains the record model shared by every other package.
// Keeping it dependency-free avoids import cycles between:
//   - prompt      (builds records)
//   - store       (persists records)
//   - report      (reads records)
//   - visualize   (reads records)
//
// The load-type enumeration and the column schema are closed sets. The
// collectors and the store both read them from here, so the allowed values
// and the file header cannot drift apart.
//
// =============================================================================

package types

import (
	"fmt"
	"strconv"
)

// DateFormat is the textual date layout used for entry and storage (DD-MM-YYYY).
const DateFormat = "02-01-2006"

// =============================================================================
// LOAD TYPES
// =============================================================================

// LoadType is the kind of cargo carried on a delivery.
type LoadType int

const (
	Refrigerated LoadType = iota + 1
	Dry
	Hazardous
	Other
)

// LoadTypes lists every load type in menu order (1-based selection).
var LoadTypes = []LoadType{Refrigerated, Dry, Hazardous, Other}

var loadTypeLabels = map[LoadType]string{
	Refrigerated: "Refrigerated",
	Dry:          "Dry",
	Hazardous:    "Hazardous",
	Other:        "Other",
}

// String returns the label stored in the data file.
func (l LoadType) String() string {
	if label, ok := loadTypeLabels[l]; ok {
		return label
	}
	return "LoadType(" + strconv.Itoa(int(l)) + ")"
}

// Valid reports whether l is one of the four known load types.
func (l LoadType) Valid() bool {
	_, ok := loadTypeLabels[l]
	return ok
}

// ParseLoadType maps a stored label back to its LoadType.
// Matching is exact, the same way the labels are written.
func ParseLoadType(label string) (LoadType, error) {
	for _, l := range LoadTypes {
		if loadTypeLabels[l] == label {
			return l, nil
		}
	}
	return 0, fmt.Errorf("unknown load type %q", label)
}

// =============================================================================
// COLUMN SCHEMA
// =============================================================================

// Column is one column of the backing file.
type Column string

const (
	ColumnDate            Column = "date"
	ColumnMileage         Column = "mileage"
	ColumnLoadType        Column = "load_type"
	ColumnDeliveryDetails Column = "delivery_details"
)

// Columns is the fixed header, in file order.
var Columns = []Column{ColumnDate, ColumnMileage, ColumnLoadType, ColumnDeliveryDetails}

// Header returns the fixed header as plain strings, ready for a CSV writer.
func Header() []string {
	header := make([]string, len(Columns))
	for i, c := range Columns {
		header[i] = string(c)
	}
	return header
}

// =============================================================================
// DELIVERY RECORD
// =============================================================================

// DeliveryRecord is a single delivery, the only entity in the system.
type DeliveryRecord struct {
	// Date is the literal DD-MM-YYYY text the user entered.
	Date string

	// Mileage is the distance covered, never negative.
	Mileage float64

	// LoadType is the cargo category.
	LoadType LoadType

	// DeliveryDetails is free text (destination, notes, etc.). May be empty.
	DeliveryDetails string
}

// FormatMileage renders a mileage value so that parsing it back yields the
// same float64.
func FormatMileage(m float64) string {
	return strconv.FormatFloat(m, 'f', -1, 64)
}

// Field returns the stored text for column c.
func (r DeliveryRecord) Field(c Column) string {
	switch c {
	case ColumnDate:
		return r.Date
	case ColumnMileage:
		return FormatMileage(r.Mileage)
	case ColumnLoadType:
		return r.LoadType.String()
	case ColumnDeliveryDetails:
		return r.DeliveryDetails
	}
	return ""
}
