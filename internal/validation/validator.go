// =============================================================================
// Trucking Delivery Tracker - Validation Rules
// =============================================================================
//
// Pure parse-and-validate functions for every delivery field and for the
// yes/no confirmation answer. They never prompt or print: the collectors in
// the prompt package call them and show ValidationError.Message on failure.
//
// RULES:
//   - date              : must parse exactly as DD-MM-YYYY (a real calendar day)
//   - mileage           : a real number, not negative
//   - load type choice  : an integer in [1, number of load types]
//   - delivery details  : anything, including empty
//   - confirmation      : "y" or "n", case-insensitive
//
// The same rules guard the store: a record that fails ValidateRecord is
// never written.
//
// =============================================================================

package validation

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/ginjaninja78/trucking-delivery-tracker/internal/types"
)

// =============================================================================
// VALIDATION ERROR TYPE
// =============================================================================

// ValidationError describes one rejected input.
type ValidationError struct {
	// Field is the column (or "confirmation"/"selection") that was rejected.
	Field string

	// Value is the raw input that failed validation.
	Value string

	// Rule is the rule that was violated, e.g. "format", "non_negative".
	Rule string

	// Message is the text shown to the user before reprompting.
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s (value: %q)", e.Field, e.Message, e.Value)
}

// Rule names.
const (
	RuleFormat      = "format"
	RuleNumber      = "number"
	RuleNonNegative = "non_negative"
	RuleRange       = "range"
	RuleEnum        = "enum"
)

// =============================================================================
// FIELD VALIDATORS
// =============================================================================

// ValidateDate checks that value is a real calendar date written DD-MM-YYYY
// and returns it unchanged. "31-02-2024", "2024-12-01" and year 0000 are
// rejected.
func ValidateDate(value string) (string, error) {
	if _, err := ParseDate(value); err != nil {
		return "", &ValidationError{
			Field:   string(types.ColumnDate),
			Value:   value,
			Rule:    RuleFormat,
			Message: "Invalid date format. Please use DD-MM-YYYY.",
		}
	}
	return value, nil
}

// ParseDate converts stored date text into a time.Time.
func ParseDate(value string) (time.Time, error) {
	t, err := time.Parse(types.DateFormat, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("date %q does not match DD-MM-YYYY: %w", value, err)
	}
	// Calendar years start at 1.
	if t.Year() < 1 {
		return time.Time{}, fmt.Errorf("date %q: year must be 0001 or later", value)
	}
	return t, nil
}

// ParseMileage parses a mileage entry. Surrounding whitespace is ignored.
// Non-numbers (including NaN, infinities and hex floats) and negative values
// are rejected with different messages.
func ParseMileage(value string) (float64, error) {
	trimmed := strings.TrimSpace(value)
	m, err := strconv.ParseFloat(trimmed, 64)
	if err != nil || isHexFloat(trimmed) || math.IsNaN(m) || math.IsInf(m, 0) {
		return 0, &ValidationError{
			Field:   string(types.ColumnMileage),
			Value:   value,
			Rule:    RuleNumber,
			Message: "Please enter a valid number.",
		}
	}

	if m < 0 {
		return 0, &ValidationError{
			Field:   string(types.ColumnMileage),
			Value:   value,
			Rule:    RuleNonNegative,
			Message: "Mileage cannot be negative.",
		}
	}

	// Fold -0 into 0 so it is stored as "0".
	if m == 0 {
		m = 0
	}

	return m, nil
}

// ParseSelection parses a 1-based menu selection out of n choices.
func ParseSelection(value string, n int) (int, error) {
	choice, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, &ValidationError{
			Field:   "selection",
			Value:   value,
			Rule:    RuleNumber,
			Message: "Please enter a valid number.",
		}
	}

	if choice < 1 || choice > n {
		return 0, &ValidationError{
			Field:   "selection",
			Value:   value,
			Rule:    RuleRange,
			Message: "Invalid selection. Please choose a number from the list.",
		}
	}

	return choice, nil
}

// ParseLoadTypeSelection maps a numbered choice onto types.LoadTypes.
func ParseLoadTypeSelection(value string) (types.LoadType, error) {
	choice, err := ParseSelection(value, len(types.LoadTypes))
	if err != nil {
		if ve, ok := err.(*ValidationError); ok {
			ve.Field = string(types.ColumnLoadType)
		}
		return 0, err
	}
	return types.LoadTypes[choice-1], nil
}

// ParseConfirmation accepts "y"/"Y" as true and "n"/"N" as false.
func ParseConfirmation(value string) (bool, error) {
	switch strings.ToLower(value) {
	case "y":
		return true, nil
	case "n":
		return false, nil
	}
	return false, &ValidationError{
		Field:   "confirmation",
		Value:   value,
		Rule:    RuleEnum,
		Message: "Invalid input. Please enter 'y' for yes or 'n' for no.",
	}
}

// =============================================================================
// RECORD VALIDATION
// =============================================================================

// ValidateRecord checks every field of a record and returns all failures.
// Delivery details are free text and never fail.
func ValidateRecord(r types.DeliveryRecord) []*ValidationError {
	var errs []*ValidationError

	if _, err := ValidateDate(r.Date); err != nil {
		errs = append(errs, err.(*ValidationError))
	}

	if math.IsNaN(r.Mileage) || math.IsInf(r.Mileage, 0) {
		errs = append(errs, &ValidationError{
			Field:   string(types.ColumnMileage),
			Value:   types.FormatMileage(r.Mileage),
			Rule:    RuleNumber,
			Message: "Mileage must be a finite number.",
		})
	} else if r.Mileage < 0 {
		errs = append(errs, &ValidationError{
			Field:   string(types.ColumnMileage),
			Value:   types.FormatMileage(r.Mileage),
			Rule:    RuleNonNegative,
			Message: "Mileage cannot be negative.",
		})
	}

	if !r.LoadType.Valid() {
		errs = append(errs, &ValidationError{
			Field:   string(types.ColumnLoadType),
			Value:   r.LoadType.String(),
			Rule:    RuleEnum,
			Message: "Unknown load type.",
		})
	}

	return errs
}

// isHexFloat reports whether s uses the 0x form that strconv accepts but a
// decimal mileage never does.
func isHexFloat(s string) bool {
	s = strings.TrimLeft(s, "+-")
	return len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X')
}

// FormatErrors joins validation errors into one readable block.
func FormatErrors(errs []*ValidationError) string {
	if len(errs) == 0 {
		return "No validation errors."
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d validation error(s):\n", len(errs)))
	for i, err := range errs {
		sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, err.Error()))
	}
	return sb.String()
}
