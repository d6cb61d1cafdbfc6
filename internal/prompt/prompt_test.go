package prompt

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/ginjaninja78/trucking-delivery-tracker/internal/types"
)

func scripted(lines ...string) (*Console, *bytes.Buffer) {
	var out bytes.Buffer
	in := strings.NewReader(strings.Join(lines, "\n") + "\n")
	return NewConsole(in, &out), &out
}

func TestCollectDate(t *testing.T) {
	c, out := scripted("2024-12-01", "31-02-2024", "01-12-2024")

	got, err := CollectDate(c)
	if err != nil {
		t.Fatalf("CollectDate: %v", err)
	}
	if got != "01-12-2024" {
		t.Fatalf("CollectDate = %q; want 01-12-2024", got)
	}
	if n := strings.Count(out.String(), "Invalid date format. Please use DD-MM-YYYY."); n != 2 {
		t.Fatalf("saw %d date errors; want 2\n%s", n, out.String())
	}
	if n := strings.Count(out.String(), "Enter the delivery date (DD-MM-YYYY): "); n != 3 {
		t.Fatalf("saw %d prompts; want 3", n)
	}
}

func TestCollectMileage(t *testing.T) {
	c, out := scripted("-5", "abc", "123.4")

	got, err := CollectMileage(c)
	if err != nil {
		t.Fatalf("CollectMileage: %v", err)
	}
	if got != 123.4 {
		t.Fatalf("CollectMileage = %v; want 123.4", got)
	}
	if !strings.Contains(out.String(), "Mileage cannot be negative.") {
		t.Fatalf("missing negative message:\n%s", out.String())
	}
	if !strings.Contains(out.String(), "Please enter a valid number.") {
		t.Fatalf("missing number message:\n%s", out.String())
	}

	c, _ = scripted("0")
	if got, err := CollectMileage(c); err != nil || got != 0 {
		t.Fatalf("CollectMileage(0) = %v, %v", got, err)
	}
}

func TestCollectLoadType(t *testing.T) {
	c, out := scripted("0", "x", "5", "3")

	got, err := CollectLoadType(c)
	if err != nil {
		t.Fatalf("CollectLoadType: %v", err)
	}
	if got != types.Hazardous {
		t.Fatalf("CollectLoadType = %v; want Hazardous", got)
	}
	for _, want := range []string{"1. Refrigerated", "2. Dry", "3. Hazardous", "4. Other"} {
		if !strings.Contains(out.String(), want) {
			t.Fatalf("menu missing %q:\n%s", want, out.String())
		}
	}
	if n := strings.Count(out.String(), "Invalid selection."); n != 2 {
		t.Fatalf("saw %d range errors; want 2", n)
	}
}

func TestCollectDeliveryDetailsAcceptsEmpty(t *testing.T) {
	c, _ := scripted("")
	got, err := CollectDeliveryDetails(c)
	if err != nil || got != "" {
		t.Fatalf("CollectDeliveryDetails = %q, %v; want empty", got, err)
	}
}

func TestConfirm(t *testing.T) {
	tcs := []struct {
		lines []string
		want  bool
	}{
		{[]string{"y"}, true},
		{[]string{"Y"}, true},
		{[]string{"n"}, false},
		{[]string{"N"}, false},
		{[]string{"maybe", "", "yes", "Y"}, true},
		{[]string{"q", "n"}, false},
	}

	for _, tc := range tcs {
		c, out := scripted(tc.lines...)
		got, err := Confirm(c, "ok? ")
		if err != nil {
			t.Fatalf("Confirm(%q) error: %v", tc.lines, err)
		}
		if got != tc.want {
			t.Fatalf("Confirm(%q) = %v; want %v", tc.lines, got, tc.want)
		}
		if n := strings.Count(out.String(), "Invalid input."); n != len(tc.lines)-1 {
			t.Fatalf("Confirm(%q) printed %d errors; want %d", tc.lines, n, len(tc.lines)-1)
		}
	}
}

func TestCollectEntry(t *testing.T) {
	c, out := scripted("01-12-2024", "200", "1", "Delivery to Cold Storage", "y")

	got, err := CollectEntry(c)
	if err != nil {
		t.Fatalf("CollectEntry: %v", err)
	}
	want := types.DeliveryRecord{Date: "01-12-2024", Mileage: 200, LoadType: types.Refrigerated, DeliveryDetails: "Delivery to Cold Storage"}
	if got != want {
		t.Fatalf("CollectEntry = %+v; want %+v", got, want)
	}
	for _, line := range []string{"Date: 01-12-2024", "Mileage: 200 miles", "Load Type: Refrigerated", "Delivery Details: Delivery to Cold Storage"} {
		if !strings.Contains(out.String(), line) {
			t.Fatalf("confirmation missing %q:\n%s", line, out.String())
		}
	}
}

func TestCollectEntryRestartsOnDecline(t *testing.T) {
	c, out := scripted(
		"01-12-2024", "200", "1", "first try", "n",
		"bad-date", "02-12-2024", "-1", "75.5", "9", "2", "second try", "?", "y",
	)

	got, err := CollectEntry(c)
	if err != nil {
		t.Fatalf("CollectEntry: %v", err)
	}
	want := types.DeliveryRecord{Date: "02-12-2024", Mileage: 75.5, LoadType: types.Dry, DeliveryDetails: "second try"}
	if got != want {
		t.Fatalf("CollectEntry = %+v; want %+v", got, want)
	}
	if !strings.Contains(out.String(), "Let's re-enter the data.") {
		t.Fatalf("missing restart message:\n%s", out.String())
	}
	if n := strings.Count(out.String(), "--- Confirm Your Entry ---"); n != 2 {
		t.Fatalf("confirmation shown %d times; want 2", n)
	}
}

func TestCollectEntryInputClosed(t *testing.T) {
	c := NewConsole(strings.NewReader("01-12-2024\n"), &bytes.Buffer{})
	_, err := CollectEntry(c)
	if !errors.Is(err, ErrInputClosed) {
		t.Fatalf("err = %v; want ErrInputClosed", err)
	}
}

func TestChoose(t *testing.T) {
	c, _ := scripted("3", "2")
	idx, err := Choose(c, "Available load types:", []string{"Dry", "Other"}, "Enter load type to filter: ")
	if err != nil {
		t.Fatal(err)
	}
	if idx != 1 {
		t.Fatalf("Choose = %d; want 1", idx)
	}
}

func TestAskKeepsLastLineWithoutNewline(t *testing.T) {
	c := NewConsole(strings.NewReader("y\r\nlast"), &bytes.Buffer{})

	first, err := c.Ask("")
	if err != nil || first != "y" {
		t.Fatalf("Ask = %q, %v; want y", first, err)
	}
	last, err := c.Ask("")
	if err != nil || last != "last" {
		t.Fatalf("Ask = %q, %v; want last", last, err)
	}
	if _, err := c.Ask(""); !errors.Is(err, ErrInputClosed) {
		t.Fatalf("err = %v; want ErrInputClosed", err)
	}
}
