// Package render turns a computed endfed.PlotSpec into a chart image. Each
// high-impedance length interval becomes a filled band on the length axis,
// with a distinct muted region for the always-bad sub-quarter-wave lengths.
package render

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	png "image/png"
	"math"
	"strings"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/JackHunt/RFToolbox/src/endfed"
)

// Fixed colors: one highlight for every band interval, a muted gray for the
// sub-quarter-wave region.
var (
	intervalStroke = drawing.Color{R: 217, G: 55, B: 44, A: 255}
	intervalFill   = drawing.Color{R: 217, G: 55, B: 44, A: 100}
	alwaysBadFill  = drawing.Color{R: 110, G: 110, B: 110, A: 110}
)

// Options controls output geometry and annotations.
type Options struct {
	Width  int
	Height int
	// Footnote draws a short reading hint onto the image.
	Footnote bool
}

func (o Options) withDefaults() Options {
	if o.Width <= 0 {
		o.Width = 1100
	}
	if o.Height <= 0 {
		o.Height = 360
	}
	return o
}

// bandStyle renders a filled vertical band (series at constant height, fill
// down to the baseline).
func bandStyle(stroke, fill drawing.Color) chart.Style {
	return chart.Style{
		StrokeWidth: 1,
		StrokeColor: stroke,
		FillColor:   fill,
	}
}

// clampInterval intersects [lo,hi] with the visible axis span. The harmonic
// loop deliberately emits one interval past the ceiling and the always-bad
// region starts at zero, so clipping here keeps the drawing inside the axes.
func clampInterval(lo, hi, axisMin, axisMax float64) (float64, float64, bool) {
	if lo < axisMin {
		lo = axisMin
	}
	if hi > axisMax {
		hi = axisMax
	}
	if hi <= lo {
		return 0, 0, false
	}
	return lo, hi, true
}

const footnoteText = "Filled bands mark wire lengths with a high end-fed feedpoint impedance."

// Image renders the plot spec to an in-memory image, footnote included when
// requested.
func Image(spec *endfed.PlotSpec, opts Options) (image.Image, error) {
	b, err := renderChart(spec, opts)
	if err != nil {
		return nil, err
	}
	img, err := png.Decode(bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("decode rendered chart: %w", err)
	}
	if opts.Footnote {
		img = drawFootnote(img, footnoteText)
	}
	return img, nil
}

// PNG renders the plot spec to PNG bytes.
func PNG(spec *endfed.PlotSpec, opts Options) ([]byte, error) {
	if !opts.Footnote {
		return renderChart(spec, opts)
	}
	img, err := Image(spec, opts)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encode chart: %w", err)
	}
	return buf.Bytes(), nil
}

func renderChart(spec *endfed.PlotSpec, opts Options) ([]byte, error) {
	opts = opts.withDefaults()
	axisMin, axisMax := spec.AxisMin(), spec.AxisMax()

	series := []chart.Series{}

	// Sub-quarter-wave lengths are poor for end-fed wires at any frequency.
	if lo, hi, ok := clampInterval(spec.Unit.Convert(0), spec.Unit.Convert(spec.QtrWaveFt), axisMin, axisMax); ok {
		series = append(series, chart.ContinuousSeries{
			XValues: []float64{lo, hi},
			YValues: []float64{1, 1},
			Style:   bandStyle(alwaysBadFill, alwaysBadFill),
		})
	}

	for _, band := range spec.Bands {
		for _, iv := range band.Intervals {
			lo, hi, ok := clampInterval(spec.Unit.Convert(iv.LowFt), spec.Unit.Convert(iv.HighFt), axisMin, axisMax)
			if !ok {
				continue
			}
			series = append(series, chart.ContinuousSeries{
				XValues: []float64{lo, hi},
				YValues: []float64{1, 1},
				Style:   bandStyle(intervalStroke, intervalFill),
			})
		}
	}

	ticks := make([]chart.Tick, 0, 12)
	for _, v := range spec.Ticks() {
		ticks = append(ticks, chart.Tick{Value: v, Label: formatLength(v)})
	}

	ch := chart.Chart{
		Title:      spec.Title(),
		Width:      opts.Width,
		Height:     opts.Height,
		Background: chart.Style{Padding: chart.Box{Top: 14, Left: 16, Right: 12, Bottom: 28}},
		XAxis: chart.XAxis{
			Name:  spec.AxisName(),
			Ticks: ticks,
			Range: &chart.ContinuousRange{Min: axisMin, Max: axisMax},
		},
		// the y extent carries no meaning; hide its labels entirely
		YAxis: chart.YAxis{
			Style: chart.Hidden(),
			Range: &chart.ContinuousRange{Min: 0, Max: 1.25},
		},
		Series: series,
	}

	var buf bytes.Buffer
	if err := ch.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("render chart: %w", err)
	}
	return buf.Bytes(), nil
}

// formatLength picks a precision appropriate to the magnitude.
func formatLength(v float64) string {
	if v == 0 {
		return "0"
	}
	av := math.Abs(v)
	switch {
	case av >= 100:
		return fmt.Sprintf("%.0f", v)
	case av >= 10:
		return fmt.Sprintf("%.1f", v)
	default:
		return fmt.Sprintf("%.2f", v)
	}
}

// drawFootnote draws a small annotation near the bottom-left of the image.
func drawFootnote(img image.Image, text string) image.Image {
	if img == nil || strings.TrimSpace(text) == "" {
		return img
	}
	b := img.Bounds()
	rgba := image.NewRGBA(b)
	draw.Draw(rgba, b, img, b.Min, draw.Src)
	pad := 6
	face := basicfont.Face7x13
	textCol := image.NewUniform(color.RGBA{R: 255, G: 255, B: 255, A: 255})
	shadowCol := image.NewUniform(color.RGBA{R: 0, G: 0, B: 0, A: 180})
	dr := &font.Drawer{Dst: rgba, Src: textCol, Face: face}
	tw := dr.MeasureString(text).Ceil()
	x := b.Min.X + 8
	y := b.Max.Y - 6
	bg := image.NewUniform(color.RGBA{R: 0, G: 0, B: 0, A: 200})
	rect := image.Rect(x-pad, y-face.Metrics().Ascent.Ceil()-pad, x+tw+pad, y+pad/2)
	draw.Draw(rgba, rect, bg, image.Point{}, draw.Over)
	// shadow first for contrast on light chart backgrounds
	drShadow := &font.Drawer{Dst: rgba, Src: shadowCol, Face: face, Dot: fixed.Point26_6{X: fixed.I(x + 1), Y: fixed.I(y + 1)}}
	drShadow.DrawString(text)
	dr.Dot = fixed.Point26_6{X: fixed.I(x), Y: fixed.I(y)}
	dr.DrawString(text)
	return rgba
}
