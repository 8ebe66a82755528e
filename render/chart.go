package render

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	_ "image/png" // decoder for the chart PNG

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/tigsg/Cellular-Automata-Simulation/sirs"
)

// minChartSteps is the smallest x range shown; the axis grows with the run.
const minChartSteps = 100

// ChartOptions controls the population curve panel.
type ChartOptions struct {
	Width, Height int
	CampaignStart int // step of the vaccination start marker, negative for none
	Palette       Palette
}

// chartXMax is the right end of the x axis, max(100, len+10).
func chartXMax(n int) float64 {
	return float64(max(minChartSteps, n+10))
}

// generateTicks returns integer labelled ticks every interval up to xMax.
func generateTicks(xMax, interval float64) []chart.Tick {
	var ticks []chart.Tick
	for value := 0.0; value <= xMax; value += interval {
		ticks = append(ticks, chart.Tick{Value: value, Label: fmt.Sprintf("%.0f", value)})
	}
	return ticks
}

func tickInterval(xMax float64) float64 {
	switch {
	case xMax > 2000:
		return 500
	case xMax > 500:
		return 100
	case xMax > 200:
		return 50
	default:
		return 20
	}
}

func seriesColor(c color.RGBA) drawing.Color {
	return drawing.Color{R: c.R, G: c.G, B: c.B, A: c.A}
}

// SeriesChart renders the population shares recorded so far as line curves
// with a fixed [0,1] y axis. With fewer than two points it returns a blank
// panel of the same size so every video frame has identical bounds.
func SeriesChart(s sirs.Series, opts ChartOptions) (*image.RGBA, error) {
	rgba := image.NewRGBA(image.Rect(0, 0, opts.Width, opts.Height))
	fillBackground(rgba, color.White)

	n := s.Len()
	if n < 2 {
		return rgba, nil
	}

	xs := make([]float64, n)
	for i := range xs {
		xs[i] = float64(i)
	}
	xMax := chartXMax(n)

	// The white infected color of the endemic scheme is invisible on the
	// chart background, draw that curve in orange.
	infected := opts.Palette.Infected
	if infected == (color.RGBA{255, 255, 255, 255}) {
		infected = color.RGBA{255, 165, 0, 255}
	}

	series := []chart.Series{
		chart.ContinuousSeries{
			Name:    "Susceptible",
			XValues: xs,
			YValues: s.Susceptible,
			Style:   chart.Style{StrokeColor: seriesColor(opts.Palette.Susceptible), StrokeWidth: 2},
		},
		chart.ContinuousSeries{
			Name:    "Infected",
			XValues: xs,
			YValues: s.Infected,
			Style:   chart.Style{StrokeColor: seriesColor(infected), StrokeWidth: 2.5},
		},
		chart.ContinuousSeries{
			Name:    "Recovered",
			XValues: xs,
			YValues: s.Recovered,
			Style:   chart.Style{StrokeColor: seriesColor(opts.Palette.Recovered), StrokeWidth: 1.5},
		},
	}
	if s.HasVaccinated() {
		series = append(series, chart.ContinuousSeries{
			Name:    "Vaccinated",
			XValues: xs,
			YValues: s.Vaccinated,
			Style:   chart.Style{StrokeColor: seriesColor(opts.Palette.Vaccinated), StrokeWidth: 2},
		})
	}
	if opts.CampaignStart >= 0 && n-1 >= opts.CampaignStart {
		at := float64(opts.CampaignStart)
		series = append(series, chart.ContinuousSeries{
			Name:    "Vaccination start",
			XValues: []float64{at, at},
			YValues: []float64{0, 1},
			Style: chart.Style{
				StrokeColor:     drawing.Color{R: 0, G: 0, B: 255, A: 128},
				StrokeWidth:     1.5,
				StrokeDashArray: []float64{5, 5},
			},
		})
	}

	graph := chart.Chart{
		Width:  opts.Width,
		Height: opts.Height,
		XAxis: chart.XAxis{
			Name:  "Time",
			Style: chart.Style{FontSize: 9},
			Range: &chart.ContinuousRange{Min: 0, Max: xMax},
			ValueFormatter: func(v interface{}) string {
				return fmt.Sprintf("%d", int(v.(float64)))
			},
			Ticks: generateTicks(xMax, tickInterval(xMax)),
		},
		YAxis: chart.YAxis{
			Name:  "Population",
			Style: chart.Style{FontSize: 9},
			Range: &chart.ContinuousRange{Min: 0, Max: 1},
		},
		Series: series,
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("render chart: %w", err)
	}
	graphImg, _, err := image.Decode(&buf)
	if err != nil {
		return nil, fmt.Errorf("decode chart image: %w", err)
	}
	draw.Draw(rgba, rgba.Bounds(), graphImg, image.Point{}, draw.Src)
	return rgba, nil
}
