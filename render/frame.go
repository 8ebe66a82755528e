package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"github.com/tigsg/Cellular-Automata-Simulation/sirs"
)

// Composer turns simulation frames into images: the lattice on the left and,
// optionally, the population curve on the right.
type Composer struct {
	CellSize      int
	Palette       Palette
	Chart         bool
	CampaignStart int // negative when the run has no campaign
	Vaccinated    bool
}

// NewComposer returns a composer configured for the run described by p.
func NewComposer(p sirs.Params, cellSize int, withChart bool) *Composer {
	c := &Composer{
		CellSize:      cellSize,
		Palette:       PaletteFor(p),
		Chart:         withChart,
		CampaignStart: -1,
	}
	if p.Campaign != nil {
		c.CampaignStart = p.Campaign.Start
		c.Vaccinated = true
	}
	return c
}

// Bounds is the size of every image produced for a lattice of side n.
func (c *Composer) Bounds(n int) image.Rectangle {
	side := n * c.CellSize
	if !c.Chart {
		return image.Rect(0, 0, side, side)
	}
	return image.Rect(0, 0, side+c.chartWidth(side), c.chartHeight(side))
}

// chartWidth and chartHeight keep the curve panel readable on small lattices.
func (c *Composer) chartWidth(side int) int {
	return max(side, 400)
}

func (c *Composer) chartHeight(side int) int {
	return max(side, 300)
}

// Compose renders one frame.
func (c *Composer) Compose(f sirs.Frame) (*image.RGBA, error) {
	grid := LatticeImage(f.Lattice, c.CellSize, c.Palette)
	side := grid.Bounds().Dy()
	drawTextWithBackground(grid, 4, labelHeight, fmt.Sprintf("t = %d", f.Step), color.Black, color.White)

	if !c.Chart {
		return grid, nil
	}

	panel, err := SeriesChart(f.Series, ChartOptions{
		Width:         c.chartWidth(side),
		Height:        c.chartHeight(side),
		CampaignStart: c.CampaignStart,
		Palette:       c.Palette,
	})
	if err != nil {
		return nil, err
	}
	if f.Series.Len() < 2 {
		// no curve yet, show which color is which
		Legend(panel, 20, 20, StateLegend(c.Palette, c.Vaccinated))
	}
	return CombineHorizontally([]*image.RGBA{grid, panel}), nil
}

// CombineHorizontally places images side by side, top aligned.
func CombineHorizontally(images []*image.RGBA) *image.RGBA {
	if len(images) == 0 {
		return nil
	}

	totalWidth := 0
	maxHeight := 0
	for _, img := range images {
		totalWidth += img.Bounds().Dx()
		maxHeight = max(maxHeight, img.Bounds().Dy())
	}

	combined := image.NewRGBA(image.Rect(0, 0, totalWidth, maxHeight))
	offsetX := 0
	for _, img := range images {
		rect := img.Bounds()
		draw.Draw(combined, image.Rect(offsetX, 0, offsetX+rect.Dx(), rect.Dy()), img, rect.Min, draw.Src)
		offsetX += rect.Dx()
	}
	return combined
}
