package render

import (
	"image"
	"image/color"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Approximate glyph box of basicfont.Face7x13.
const (
	glyphWidth  = 7
	labelHeight = 16
)

// addLabel draws a text label onto an image with its baseline at (x, y).
func addLabel(img *image.RGBA, x, y int, label string, col color.Color) {
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(col),
		Face: basicfont.Face7x13,
		Dot:  fixed.Point26_6{X: fixed.I(x), Y: fixed.I(y)},
	}
	d.DrawString(label)
}

// drawTextWithBackground draws label on a filled box so it stays readable
// over any cell color.
func drawTextWithBackground(img *image.RGBA, x, y int, label string, textColor, bgColor color.Color) {
	box := image.Rect(x-2, y-labelHeight+3, x+len(label)*glyphWidth+2, y+3)
	fillRect(img, box, bgColor)
	addLabel(img, x, y, label, textColor)
}

func fillRect(img *image.RGBA, r image.Rectangle, c color.Color) {
	r = r.Intersect(img.Bounds())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			img.Set(x, y, c)
		}
	}
}

// LegendEntry is one swatch and caption of a legend.
type LegendEntry struct {
	Label string
	Color color.Color
}

// Legend draws entries as a vertical list of swatches starting at (x, y).
func Legend(img *image.RGBA, x, y int, entries []LegendEntry) {
	const swatch = 10
	const lineSpacing = 16
	black := color.RGBA{0, 0, 0, 255}
	white := color.RGBA{255, 255, 255, 255}

	width := 0
	for _, e := range entries {
		if w := len(e.Label) * glyphWidth; w > width {
			width = w
		}
	}
	fillRect(img, image.Rect(x-4, y-4, x+swatch+6+width+4, y+len(entries)*lineSpacing), white)

	for i, e := range entries {
		top := y + i*lineSpacing
		fillRect(img, image.Rect(x, top, x+swatch, top+swatch), e.Color)
		addLabel(img, x+swatch+6, top+swatch, e.Label, black)
	}
}

// StateLegend returns the legend entries for the categories present in a run.
func StateLegend(pal Palette, withVaccinated bool) []LegendEntry {
	entries := []LegendEntry{
		{"Susceptible", pal.Susceptible},
		{"Infected", pal.Infected},
		{"Recovered", pal.Recovered},
	}
	if withVaccinated {
		entries = append(entries, LegendEntry{"Vaccinated", pal.Vaccinated})
	}
	return entries
}
