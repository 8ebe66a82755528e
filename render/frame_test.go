package render

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tigsg/Cellular-Automata-Simulation/sirs"
)

func TestLatticeImage(t *testing.T) {
	l := sirs.NewLattice(3)
	l.Set(0, 2, sirs.Infected)
	l.Set(2, 0, sirs.Vaccinated)
	l.Set(1, 1, sirs.State(4))

	img := LatticeImage(l, 4, CampaignPalette)
	require.Equal(t, image.Rect(0, 0, 12, 12), img.Bounds())

	// column j maps to x, row i maps to y
	assert.Equal(t, CampaignPalette.Infected, img.RGBAAt(9, 1))
	assert.Equal(t, CampaignPalette.Vaccinated, img.RGBAAt(1, 9))
	assert.Equal(t, CampaignPalette.Recovered, img.RGBAAt(5, 6))
	assert.Equal(t, CampaignPalette.Susceptible, img.RGBAAt(0, 0))
	assert.Equal(t, CampaignPalette.Susceptible, img.RGBAAt(11, 11))
}

func TestCombineHorizontally(t *testing.T) {
	a := image.NewRGBA(image.Rect(0, 0, 2, 3))
	b := image.NewRGBA(image.Rect(0, 0, 4, 5))
	red := color.RGBA{255, 0, 0, 255}
	fillBackground(b, red)

	got := CombineHorizontally([]*image.RGBA{a, b})
	assert.Equal(t, image.Rect(0, 0, 6, 5), got.Bounds())
	assert.Equal(t, red, got.RGBAAt(2, 0))
	assert.Equal(t, red, got.RGBAAt(5, 4))
	assert.Nil(t, CombineHorizontally(nil))
}

func runFrames(t *testing.T, p sirs.Params) []sirs.Frame {
	t.Helper()
	sim, err := sirs.New(p, sirs.WithSeed(1))
	require.NoError(t, err)
	var frames []sirs.Frame
	for sim.Next() {
		frames = append(frames, sim.Frame())
	}
	require.NoError(t, sim.Err())
	return frames
}

func TestComposerBoundsMatchFrames(t *testing.T) {
	p := sirs.Params{
		Size: 20, Steps: 4, Refractory: 4,
		InfectionProb: 1, SpontaneousProb: 0.01, InitialInfected: 0.05,
		Campaign: &sirs.Campaign{Start: 1, Rate: 0.05, Ceiling: 0.5},
	}
	frames := runFrames(t, p)

	for _, withChart := range []bool{false, true} {
		c := NewComposer(p, 5, withChart)
		for _, f := range frames {
			img, err := c.Compose(f)
			require.NoError(t, err)
			assert.Equal(t, c.Bounds(p.Size), img.Bounds(), "chart=%v step %d", withChart, f.Step)
		}
	}
}

func TestSeriesChartBlankWithoutHistory(t *testing.T) {
	s := sirs.NewSeries(2, false)
	s.Append(sirs.Fractions{1, 0, 0, 0})
	img, err := SeriesChart(*s, ChartOptions{Width: 50, Height: 40, CampaignStart: -1, Palette: EndemicPalette})
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 50, 40), img.Bounds())
	assert.Equal(t, color.RGBA{255, 255, 255, 255}, img.RGBAAt(25, 20))
}

func TestChartAxis(t *testing.T) {
	assert.Equal(t, 100.0, chartXMax(1))
	assert.Equal(t, 100.0, chartXMax(90))
	assert.Equal(t, 510.0, chartXMax(500))

	ticks := generateTicks(100, 20)
	require.Len(t, ticks, 6)
	assert.Equal(t, "100", ticks[5].Label)
}
