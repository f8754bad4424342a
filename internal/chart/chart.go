// Package chart renders a footprint as a PNG bar chart.
package chart

import (
	"bytes"
	"fmt"
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/rshade/carbonlens/internal/footprint"
)

// Fixed chart text.
const (
	Title  = "Carbon Footprint Breakdown"
	YLabel = "Carbon Footprint (kgCO2)"

	// Caption accompanies the image wherever it is displayed.
	Caption = Title

	// FileName is used when the chart is written to disk.
	FileName = "carbon_footprint_chart.png"

	// MIMEType of the rendered image.
	MIMEType = "image/png"
)

// Default canvas size in inches.
const (
	DefaultWidthInches  = 6.0
	DefaultHeightInches = 4.0
)

// barWidth is the width of a single bar.
//
//nolint:gochecknoglobals // vg.Points is not a constant expression.
var barWidth = vg.Points(40)

// Bar colors by category.
//
//nolint:gochecknoglobals // Fixed palette.
var (
	ColorBlue   = color.RGBA{R: 0x00, G: 0x00, B: 0xff, A: 0xff}
	ColorGreen  = color.RGBA{R: 0x00, G: 0x80, B: 0x00, A: 0xff}
	ColorOrange = color.RGBA{R: 0xff, G: 0xa5, B: 0x00, A: 0xff}
	ColorRed    = color.RGBA{R: 0xff, G: 0x00, B: 0x00, A: 0xff}
)

// Bar is one labeled, colored bar.
type Bar struct {
	Label string
	Value float64
	Color color.RGBA
}

// Bars returns the four bars in display order: Energy, Waste, Travel, Total.
func Bars(energy, waste, travel, total float64) []Bar {
	return []Bar{
		{Label: "Energy", Value: energy, Color: ColorBlue},
		{Label: "Waste", Value: waste, Color: ColorGreen},
		{Label: "Travel", Value: travel, Color: ColorOrange},
		{Label: "Total", Value: total, Color: ColorRed},
	}
}

// Renderer draws bar charts at a fixed canvas size.
type Renderer struct {
	width  vg.Length
	height vg.Length
}

// NewRenderer returns a Renderer for a canvas of the given size in inches.
// Non-positive sizes fall back to the defaults.
func NewRenderer(widthInches, heightInches float64) *Renderer {
	if widthInches <= 0 {
		widthInches = DefaultWidthInches
	}
	if heightInches <= 0 {
		heightInches = DefaultHeightInches
	}
	return &Renderer{
		width:  vg.Length(widthInches) * vg.Inch,
		height: vg.Length(heightInches) * vg.Inch,
	}
}

// RenderBarChart renders the four footprint values with the default size.
func RenderBarChart(energy, waste, travel, total float64) ([]byte, error) {
	return NewRenderer(DefaultWidthInches, DefaultHeightInches).RenderBars(Bars(energy, waste, travel, total))
}

// Render renders a footprint result.
func (r *Renderer) Render(res footprint.Result) ([]byte, error) {
	return r.RenderBars(Bars(res.Energy, res.Waste, res.Travel, res.Total))
}

// RenderBars encodes bars as a PNG image. Nothing is written to disk.
func (r *Renderer) RenderBars(bars []Bar) ([]byte, error) {
	p, err := buildPlot(bars)
	if err != nil {
		return nil, err
	}

	wt, err := p.WriterTo(r.width, r.height, "png")
	if err != nil {
		return nil, fmt.Errorf("creating png canvas: %w", err)
	}

	var buf bytes.Buffer
	if _, err = wt.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("encoding png: %w", err)
	}
	return buf.Bytes(), nil
}

// buildPlot lays out one single-value bar series per category so that each
// bar carries its own color, positioned at its category index.
func buildPlot(bars []Bar) (*plot.Plot, error) {
	if len(bars) == 0 {
		return nil, fmt.Errorf("no bars to render")
	}

	p := plot.New()
	p.Title.Text = Title
	p.Y.Label.Text = YLabel

	labels := make([]string, 0, len(bars))
	for i, b := range bars {
		if math.IsNaN(b.Value) || math.IsInf(b.Value, 0) {
			return nil, fmt.Errorf("bar %q: value %v is not finite", b.Label, b.Value)
		}

		series, err := plotter.NewBarChart(plotter.Values{b.Value}, barWidth)
		if err != nil {
			return nil, fmt.Errorf("bar %q: %w", b.Label, err)
		}
		series.Color = b.Color
		series.LineStyle.Width = 0
		series.XMin = float64(i)

		p.Add(series)
		labels = append(labels, b.Label)
	}
	p.NominalX(labels...)

	return p, nil
}
