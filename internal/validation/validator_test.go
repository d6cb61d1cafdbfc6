package validation

import (
	"errors"
	"strings"
	"testing"

	"github.com/ginjaninja78/trucking-delivery-tracker/internal/types"
)

func TestValidateDate(t *testing.T) {
	tcs := []struct {
		in string
		ok bool
	}{
		{"01-12-2024", true},
		{"29-02-2024", true},
		{"2024-12-01", false},
		{"31-02-2024", false},
		{"29-02-2023", false},
		{"01/12/2024", false},
		{"01-12-0000", false},
		{"01-01-0001", true},
		{"", false},
	}

	for _, tc := range tcs {
		got, err := ValidateDate(tc.in)
		if (err == nil) != tc.ok {
			t.Fatalf("ValidateDate(%q) err=%v; want ok=%v", tc.in, err, tc.ok)
		}
		if tc.ok && got != tc.in {
			t.Fatalf("ValidateDate(%q) = %q; want input unchanged", tc.in, got)
		}
		if !tc.ok {
			var ve *ValidationError
			if !errors.As(err, &ve) || ve.Rule != RuleFormat {
				t.Fatalf("ValidateDate(%q) err=%v; want format ValidationError", tc.in, err)
			}
		}
	}
}

func TestParseMileage(t *testing.T) {
	tcs := []struct {
		in   string
		want float64
		rule string
	}{
		{"0", 0, ""},
		{"123.4", 123.4, ""},
		{" 200 ", 200, ""},
		{"-0", 0, ""},
		{"-5", 0, RuleNonNegative},
		{"abc", 0, RuleNumber},
		{"", 0, RuleNumber},
		{"NaN", 0, RuleNumber},
		{"inf", 0, RuleNumber},
		{"0x1p4", 0, RuleNumber},
		{"-0X10", 0, RuleNumber},
		{" 0x10 ", 0, RuleNumber},
		{"1e2", 100, ""},
	}

	for _, tc := range tcs {
		got, err := ParseMileage(tc.in)
		if tc.rule == "" {
			if err != nil {
				t.Fatalf("ParseMileage(%q) unexpected error: %v", tc.in, err)
			}
			if got != tc.want {
				t.Fatalf("ParseMileage(%q) = %v; want %v", tc.in, got, tc.want)
			}
			continue
		}

		var ve *ValidationError
		if !errors.As(err, &ve) {
			t.Fatalf("ParseMileage(%q) err=%v; want ValidationError", tc.in, err)
		}
		if ve.Rule != tc.rule {
			t.Fatalf("ParseMileage(%q) rule=%q; want %q", tc.in, ve.Rule, tc.rule)
		}
	}

	// Negative and non-numeric inputs carry distinct messages.
	_, errNeg := ParseMileage("-5")
	_, errNaN := ParseMileage("abc")
	if errNeg.(*ValidationError).Message == errNaN.(*ValidationError).Message {
		t.Fatalf("negative and non-numeric mileage share message %q", errNeg.(*ValidationError).Message)
	}
}

func TestParseLoadTypeSelection(t *testing.T) {
	tcs := []struct {
		in   string
		want types.LoadType
		ok   bool
	}{
		{"1", types.Refrigerated, true},
		{"2", types.Dry, true},
		{"3", types.Hazardous, true},
		{"4", types.Other, true},
		{"0", 0, false},
		{"5", 0, false},
		{"two", 0, false},
		{"1.5", 0, false},
	}

	for _, tc := range tcs {
		got, err := ParseLoadTypeSelection(tc.in)
		if (err == nil) != tc.ok {
			t.Fatalf("ParseLoadTypeSelection(%q) err=%v; want ok=%v", tc.in, err, tc.ok)
		}
		if got != tc.want {
			t.Fatalf("ParseLoadTypeSelection(%q) = %v; want %v", tc.in, got, tc.want)
		}
		if !tc.ok && err.(*ValidationError).Field != "load_type" {
			t.Fatalf("ParseLoadTypeSelection(%q) field=%q; want load_type", tc.in, err.(*ValidationError).Field)
		}
	}
}

func TestParseConfirmation(t *testing.T) {
	tcs := []struct {
		in   string
		want bool
		ok   bool
	}{
		{"y", true, true},
		{"Y", true, true},
		{"n", false, true},
		{"N", false, true},
		{"yes", false, false},
		{"", false, false},
		{" y", false, false},
	}

	for _, tc := range tcs {
		got, err := ParseConfirmation(tc.in)
		if (err == nil) != tc.ok {
			t.Fatalf("ParseConfirmation(%q) err=%v; want ok=%v", tc.in, err, tc.ok)
		}
		if got != tc.want {
			t.Fatalf("ParseConfirmation(%q) = %v; want %v", tc.in, got, tc.want)
		}
	}
}

func TestValidateRecord(t *testing.T) {
	good := types.DeliveryRecord{Date: "01-12-2024", Mileage: 200, LoadType: types.Refrigerated}
	if errs := ValidateRecord(good); len(errs) != 0 {
		t.Fatalf("ValidateRecord(good) = %s", FormatErrors(errs))
	}

	bad := types.DeliveryRecord{Date: "2024-12-01", Mileage: -1, LoadType: 9}
	errs := ValidateRecord(bad)
	if len(errs) != 3 {
		t.Fatalf("ValidateRecord(bad) returned %d errors; want 3:\n%s", len(errs), FormatErrors(errs))
	}
	if !strings.HasPrefix(FormatErrors(errs), "3 validation error(s):") {
		t.Fatalf("FormatErrors = %q", FormatErrors(errs))
	}
}
