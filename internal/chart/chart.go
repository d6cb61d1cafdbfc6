// =============================================================================
// Trucking Delivery Tracker - Charts
// =============================================================================
//
// Chart rendering. The visualize package describes what to draw with a
// LineSpec or BarSpec; a Renderer turns the spec into an image. PNGRenderer
// writes each chart as a PNG file into the chart directory and returns its
// path.
//
// CHARTS:
//   - Line chart : mileage over time, one marker per delivery
//   - Bar chart  : number of deliveries per load type
//
// =============================================================================

package chart

import (
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"time"

	gochart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/ginjaninja78/trucking-delivery-tracker/internal/types"
	"github.com/ginjaninja78/trucking-delivery-tracker/pkg/utils"
)

// LineSpec describes a time-series line chart.
type LineSpec struct {
	Title  string
	XLabel string
	YLabel string
	X      []time.Time
	Y      []float64
}

// BarSpec describes a categorical bar chart.
type BarSpec struct {
	Title      string
	XLabel     string
	YLabel     string
	Categories []string
	Values     []float64
}

// Renderer draws charts. Implementations decide where the image goes.
type Renderer interface {
	LinePlot(spec LineSpec) (string, error)
	BarPlot(spec BarSpec) (string, error)
}

// =============================================================================
// PNG FILE RENDERER
// =============================================================================

// PNGRenderer writes charts as PNG files.
type PNGRenderer struct {
	// Dir is the output directory, created on first use.
	Dir string

	// FileFormat names each file; {chart} is "mileage" or "load_types".
	FileFormat string

	Width  int
	Height int
}

// LinePlot renders spec into a new PNG file and returns its path.
func (r *PNGRenderer) LinePlot(spec LineSpec) (string, error) {
	return r.writeFile("mileage", func(w io.Writer) error {
		return RenderLine(w, spec, r.Width, r.Height)
	})
}

// BarPlot renders spec into a new PNG file and returns its path.
func (r *PNGRenderer) BarPlot(spec BarSpec) (string, error) {
	return r.writeFile("load_types", func(w io.Writer) error {
		return RenderBar(w, spec, r.Width, r.Height)
	})
}

func (r *PNGRenderer) writeFile(kind string, render func(io.Writer) error) (string, error) {
	if err := utils.EnsureDir(r.Dir); err != nil {
		return "", err
	}

	name := utils.GenerateOutputFileName(r.FileFormat, map[string]string{"chart": kind})
	if filepath.Ext(name) != ".png" {
		name += ".png"
	}
	path := filepath.Join(r.Dir, name)

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create chart file: %w", err)
	}
	if err := render(f); err != nil {
		f.Close()
		os.Remove(path)
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("failed to write chart file: %w", err)
	}

	return path, nil
}

// =============================================================================
// RENDERING
// =============================================================================

// markerStyle draws a line with a dot on every point.
func markerStyle(col drawing.Color) gochart.Style {
	return gochart.Style{
		StrokeWidth: 2,
		StrokeColor: col,
		DotWidth:    4,
		DotColor:    col,
	}
}

var gridStyle = gochart.Style{
	StrokeColor: gochart.ColorAlternateGray,
	StrokeWidth: 1,
}

// RenderLine draws spec as a PNG line chart with point markers and grid.
func RenderLine(w io.Writer, spec LineSpec, width, height int) error {
	if len(spec.X) != len(spec.Y) {
		return fmt.Errorf("line chart has %d x values and %d y values", len(spec.X), len(spec.Y))
	}
	if len(spec.X) == 0 {
		return fmt.Errorf("line chart has no points")
	}

	xAxis := gochart.XAxis{
		Name:           spec.XLabel,
		ValueFormatter: gochart.TimeValueFormatterWithFormat(types.DateFormat),
		GridMajorStyle: gridStyle,
	}
	// A single date gives a zero-width range, which go-chart refuses to draw.
	first, last := spec.X[0], spec.X[len(spec.X)-1]
	if first.Equal(last) {
		xAxis.Range = &gochart.ContinuousRange{
			Min: gochart.TimeToFloat64(first.Add(-24 * time.Hour)),
			Max: gochart.TimeToFloat64(first.Add(24 * time.Hour)),
		}
	}

	ch := gochart.Chart{
		Title:      spec.Title,
		Width:      width,
		Height:     height,
		Background: gochart.Style{Padding: gochart.Box{Top: 40, Left: 16, Right: 16, Bottom: 16}},
		XAxis:      xAxis,
		YAxis: gochart.YAxis{
			Name:           spec.YLabel,
			Range:          valueRange(spec.Y),
			GridMajorStyle: gridStyle,
		},
		Series: []gochart.Series{
			gochart.TimeSeries{
				Name:    spec.YLabel,
				XValues: spec.X,
				YValues: spec.Y,
				Style:   markerStyle(gochart.ColorBlue),
			},
		},
	}

	if err := ch.Render(gochart.PNG, w); err != nil {
		return fmt.Errorf("failed to render line chart: %w", err)
	}
	return nil
}

// RenderBar draws spec as a PNG bar chart.
func RenderBar(w io.Writer, spec BarSpec, width, height int) error {
	if len(spec.Categories) != len(spec.Values) {
		return fmt.Errorf("bar chart has %d categories and %d values", len(spec.Categories), len(spec.Values))
	}
	if len(spec.Categories) == 0 {
		return fmt.Errorf("bar chart has no categories")
	}

	bars := make([]gochart.Value, len(spec.Categories))
	for i, c := range spec.Categories {
		bars[i] = gochart.Value{Label: c, Value: spec.Values[i]}
	}

	bc := gochart.BarChart{
		Title:      spec.Title,
		Width:      width,
		Height:     height,
		Background: gochart.Style{Padding: gochart.Box{Top: 40, Left: 16, Right: 16, Bottom: 16}},
		BarWidth:   60,
		XAxis:      gochart.Style{},
		YAxis: gochart.YAxis{
			Name:  spec.YLabel,
			Range: valueRange(spec.Values),
		},
		Bars: bars,
	}
	// BarChart has no x axis name; draw it under the category labels.
	if spec.XLabel != "" {
		bc.Background.Padding.Bottom = 48
		bc.Elements = []gochart.Renderable{xAxisName(spec.XLabel)}
	}

	if err := bc.Render(gochart.PNG, w); err != nil {
		return fmt.Errorf("failed to render bar chart: %w", err)
	}
	return nil
}

// xAxisName centres name below the canvas, one text line under the
// category labels, the way an XAxis draws its Name.
func xAxisName(name string) gochart.Renderable {
	return func(r gochart.Renderer, canvasBox gochart.Box, defaults gochart.Style) {
		style := gochart.Style{
			Font:      defaults.Font,
			FontSize:  gochart.DefaultFontSize,
			FontColor: gochart.DefaultTextColor,
		}
		tb := gochart.Draw.MeasureText(r, name, style)
		tx := canvasBox.Left + (canvasBox.Width() >> 1) - (tb.Width() >> 1)
		ty := canvasBox.Bottom + 2*gochart.DefaultXAxisMargin + 2*tb.Height()
		gochart.Draw.Text(r, name, tx, ty, style)
	}
}

// valueRange returns a y range from zero to a little above the largest
// value, never empty.
func valueRange(values []float64) *gochart.ContinuousRange {
	max := 0.0
	for _, v := range values {
		max = math.Max(max, v)
	}
	if max == 0 {
		max = 1
	}
	return &gochart.ContinuousRange{Min: 0, Max: max * 1.1}
}
