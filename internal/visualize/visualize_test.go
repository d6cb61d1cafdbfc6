package visualize

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/ginjaninja78/trucking-delivery-tracker/internal/chart"
	"github.com/ginjaninja78/trucking-delivery-tracker/internal/prompt"
	"github.com/ginjaninja78/trucking-delivery-tracker/internal/store"
	"github.com/ginjaninja78/trucking-delivery-tracker/internal/types"
)

// fakeRenderer records the specs it is given.
type fakeRenderer struct {
	lines []chart.LineSpec
	bars  []chart.BarSpec
}

func (f *fakeRenderer) LinePlot(spec chart.LineSpec) (string, error) {
	f.lines = append(f.lines, spec)
	return "line.png", nil
}

func (f *fakeRenderer) BarPlot(spec chart.BarSpec) (string, error) {
	f.bars = append(f.bars, spec)
	return "bar.png", nil
}

func sample() *store.Table {
	return &store.Table{
		Header: types.Header(),
		Rows: [][]string{
			{"15-12-2024", "300", "Dry", "c"},
			{"01-12-2024", "100", "Hazardous", "a"},
			{"05-12-2024", "200", "Dry", "b"},
		},
	}
}

func TestPrepareSortsByDate(t *testing.T) {
	line, bar, err := Prepare(sample(), "")
	if err != nil {
		t.Fatalf("Prepare: %v", err)
	}

	if line.Title != "Mileage Over Time (All)" {
		t.Fatalf("Title = %q", line.Title)
	}
	wantDays := []int{1, 5, 15}
	wantY := []float64{100, 200, 300}
	for i := range wantDays {
		if line.X[i].Day() != wantDays[i] || line.X[i].Month() != time.December {
			t.Fatalf("X[%d] = %v; want December %d", i, line.X[i], wantDays[i])
		}
		if line.Y[i] != wantY[i] {
			t.Fatalf("Y[%d] = %v; want %v", i, line.Y[i], wantY[i])
		}
	}

	if strings.Join(bar.Categories, ",") != "Dry,Hazardous" {
		t.Fatalf("Categories = %v", bar.Categories)
	}
	if bar.Values[0] != 2 || bar.Values[1] != 1 {
		t.Fatalf("Values = %v", bar.Values)
	}
}

func TestPrepareFilter(t *testing.T) {
	line, bar, err := Prepare(sample(), "Dry")
	if err != nil {
		t.Fatalf("Prepare: %v", err)
	}
	if line.Title != "Mileage Over Time (Dry)" {
		t.Fatalf("Title = %q", line.Title)
	}
	if len(line.X) != 2 {
		t.Fatalf("len(X) = %d; want 2", len(line.X))
	}
	if len(bar.Categories) != 1 || bar.Categories[0] != "Dry" || bar.Values[0] != 2 {
		t.Fatalf("bar = %+v", bar)
	}
}

func TestPrepareBadDate(t *testing.T) {
	tbl := sample()
	tbl.Rows[1][0] = "2024-12-01"
	if _, _, err := Prepare(tbl, ""); err == nil {
		t.Fatal("expected error for malformed date")
	}
}

func TestRunInteractiveFilter(t *testing.T) {
	var out bytes.Buffer
	c := prompt.NewConsole(strings.NewReader("maybe\ny\n9\n2\n"), &out)
	r := &fakeRenderer{}

	res, err := Run(c, sample(), r, "")
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if res.Filter != "Hazardous" {
		t.Fatalf("Filter = %q; want Hazardous", res.Filter)
	}
	if len(r.lines) != 1 || r.lines[0].Title != "Mileage Over Time (Hazardous)" {
		t.Fatalf("lines = %+v", r.lines)
	}
	if len(r.bars) != 1 {
		t.Fatalf("bars = %+v", r.bars)
	}
	for _, want := range []string{"1. Dry", "2. Hazardous", "line.png", "bar.png"} {
		if !strings.Contains(out.String(), want) {
			t.Fatalf("output missing %q:\n%s", want, out.String())
		}
	}
}

func TestRunNoFilterAndEmpty(t *testing.T) {
	var out bytes.Buffer
	c := prompt.NewConsole(strings.NewReader("n\n"), &out)
	r := &fakeRenderer{}

	res, err := Run(c, sample(), r, "")
	if err != nil {
		t.Fatal(err)
	}
	if res.Filter != "" || r.lines[0].Title != "Mileage Over Time (All)" {
		t.Fatalf("res = %+v, lines = %+v", res, r.lines)
	}

	out.Reset()
	res, err = Run(c, store.NewTable(), r, "")
	if err != nil || res != nil {
		t.Fatalf("Run(empty) = %+v, %v", res, err)
	}
	if !strings.Contains(out.String(), "No data available to visualize.") {
		t.Fatalf("output = %q", out.String())
	}
}

func TestRunUnknownFilterFromFlag(t *testing.T) {
	var out bytes.Buffer
	c := prompt.NewConsole(strings.NewReader(""), &out)
	r := &fakeRenderer{}

	res, err := Run(c, sample(), r, "Other")
	if err != nil || res != nil {
		t.Fatalf("Run = %+v, %v", res, err)
	}
	if len(r.lines) != 0 {
		t.Fatal("renderer called for empty selection")
	}
}

func TestRunBlankMileageStillDrawsBarChart(t *testing.T) {
	var out bytes.Buffer
	c := prompt.NewConsole(strings.NewReader("n\n"), &out)
	r := &fakeRenderer{}
	tbl := &store.Table{
		Header: types.Header(),
		Rows:   [][]string{{"01-12-2024", "", "Dry", ""}},
	}

	res, err := Run(c, tbl, r, "")
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if res == nil || res.LineChart != "" || res.BarChart != "bar.png" {
		t.Fatalf("Run = %+v; want bar chart only", res)
	}
	if len(r.lines) != 0 || len(r.bars) != 1 {
		t.Fatalf("renderer calls = %d line, %d bar; want 0, 1", len(r.lines), len(r.bars))
	}
	if strings.Contains(out.String(), `load type ""`) {
		t.Fatalf("output mentions an empty filter:\n%s", out.String())
	}
}

func TestRunFilterSkipsBlankLoadTypes(t *testing.T) {
	tbl := &store.Table{
		Header: types.Header(),
		Rows: [][]string{
			{"01-12-2024", "100", "", "hand edited"},
			{"02-12-2024", "200", "Dry", ""},
		},
	}
	var out bytes.Buffer
	c := prompt.NewConsole(strings.NewReader("y\n2\n1\n"), &out)
	r := &fakeRenderer{}

	res, err := Run(c, tbl, r, "")
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if res.Filter != "Dry" || r.lines[0].Title != "Mileage Over Time (Dry)" {
		t.Fatalf("Filter = %q, title = %q; want Dry", res.Filter, r.lines[0].Title)
	}
	if !strings.Contains(out.String(), "Invalid selection") {
		t.Fatalf("blank load type was offered as option 2:\n%s", out.String())
	}
}
