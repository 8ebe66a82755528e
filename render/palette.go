package render

import (
	"image/color"

	"github.com/tigsg/Cellular-Automata-Simulation/sirs"
)

// Palette maps macro-categories to display colors.
type Palette struct {
	Susceptible color.RGBA
	Infected    color.RGBA
	Recovered   color.RGBA
	Vaccinated  color.RGBA
}

// EndemicPalette is the high-contrast scheme used for runs without a
// campaign: dark green susceptible, white infected, dark grey immune.
var EndemicPalette = Palette{
	Susceptible: color.RGBA{0, 100, 0, 255},     // #006400
	Infected:    color.RGBA{255, 255, 255, 255}, // #FFFFFF
	Recovered:   color.RGBA{64, 64, 64, 255},    // #404040
	Vaccinated:  color.RGBA{0, 0, 255, 255},
}

// CampaignPalette is used when vaccination is enabled.
var CampaignPalette = Palette{
	Susceptible: color.RGBA{171, 247, 177, 255}, // #abf7b1
	Infected:    color.RGBA{255, 0, 0, 255},     // #ff0000
	Recovered:   color.RGBA{80, 80, 80, 255},    // #505050
	Vaccinated:  color.RGBA{0, 0, 255, 255},     // #0000FF
}

// PaletteFor picks the palette matching the run.
func PaletteFor(p sirs.Params) Palette {
	if p.Campaign != nil {
		return CampaignPalette
	}
	return EndemicPalette
}

// Color returns the display color of a cell state.
func (p Palette) Color(s sirs.State) color.RGBA {
	return p.ByCategory(s.Category())
}

// ByCategory returns the color of a macro-category.
func (p Palette) ByCategory(c sirs.Category) color.RGBA {
	switch c {
	case sirs.CategorySusceptible:
		return p.Susceptible
	case sirs.CategoryInfected:
		return p.Infected
	case sirs.CategoryVaccinated:
		return p.Vaccinated
	default:
		return p.Recovered
	}
}
