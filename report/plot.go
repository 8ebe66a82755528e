package report

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/tigsg/Cellular-Automata-Simulation/sirs"
)

func points(values []float64) plotter.XYs {
	pts := make(plotter.XYs, len(values))
	for i, v := range values {
		pts[i].X = float64(i)
		pts[i].Y = v
	}
	return pts
}

// SavePopulationPlot writes the whole-run population curves to path. The
// image format follows the file extension (png, svg, pdf...). A negative
// campaignStart omits the vaccination marker.
func SavePopulationPlot(path string, s *sirs.Series, campaignStart int) error {
	p := plot.New()
	p.Title.Text = "Population over time"
	p.X.Label.Text = "Time"
	p.Y.Label.Text = "Population"
	p.Y.Min = 0
	p.Y.Max = 1
	p.Add(plotter.NewGrid())

	lines := []interface{}{
		"Susceptible", points(s.Susceptible),
		"Infected", points(s.Infected),
		"Recovered", points(s.Recovered),
	}
	if s.HasVaccinated() {
		lines = append(lines, "Vaccinated", points(s.Vaccinated))
	}
	if err := plotutil.AddLines(p, lines...); err != nil {
		return fmt.Errorf("add population lines: %w", err)
	}

	if campaignStart >= 0 && campaignStart < s.Len() {
		at := float64(campaignStart)
		marker, err := plotter.NewLine(plotter.XYs{{X: at, Y: 0}, {X: at, Y: 1}})
		if err != nil {
			return fmt.Errorf("vaccination marker: %w", err)
		}
		marker.Color = color.RGBA{B: 255, A: 128}
		marker.Dashes = []vg.Length{vg.Points(5), vg.Points(5)}
		p.Add(marker)
		p.Legend.Add("Vaccination start", marker)
	}

	if err := p.Save(8*vg.Inch, 4*vg.Inch, path); err != nil {
		return fmt.Errorf("save population plot: %w", err)
	}
	return nil
}
