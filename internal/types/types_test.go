package types

import "testing"

func TestParseLoadType(t *testing.T) {
	for _, l := range LoadTypes {
		got, err := ParseLoadType(l.String())
		if err != nil {
			t.Fatalf("ParseLoadType(%q) error: %v", l.String(), err)
		}
		if got != l {
			t.Fatalf("ParseLoadType(%q) = %v; want %v", l.String(), got, l)
		}
	}

	if _, err := ParseLoadType("dry"); err == nil {
		t.Fatalf("ParseLoadType(%q) expected error", "dry")
	}
}

func TestHeaderMatchesSchema(t *testing.T) {
	want := []string{"date", "mileage", "load_type", "delivery_details"}
	got := Header()
	if len(got) != len(want) {
		t.Fatalf("Header() = %v; want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Header()[%d] = %q; want %q", i, got[i], want[i])
		}
	}
}

func TestRecordField(t *testing.T) {
	r := DeliveryRecord{Date: "01-12-2024", Mileage: 123.4, LoadType: Hazardous, DeliveryDetails: "Depot, bay 3"}

	tcs := []struct {
		col  Column
		want string
	}{
		{ColumnDate, "01-12-2024"},
		{ColumnMileage, "123.4"},
		{ColumnLoadType, "Hazardous"},
		{ColumnDeliveryDetails, "Depot, bay 3"},
	}
	for _, tc := range tcs {
		if got := r.Field(tc.col); got != tc.want {
			t.Fatalf("Field(%s) = %q; want %q", tc.col, got, tc.want)
		}
	}
}

func TestFormatMileage(t *testing.T) {
	tcs := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{200, "200"},
		{123.4, "123.4"},
		{0.1, "0.1"},
	}
	for _, tc := range tcs {
		if got := FormatMileage(tc.in); got != tc.want {
			t.Fatalf("FormatMileage(%v) = %q; want %q", tc.in, got, tc.want)
		}
	}
}
