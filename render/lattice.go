package render

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/tigsg/Cellular-Automata-Simulation/sirs"
)

// LatticeImage draws every cell as a cellSize×cellSize square.
// Row i of the lattice is drawn at y = i*cellSize, column j at x = j*cellSize.
func LatticeImage(l *sirs.Lattice, cellSize int, pal Palette) *image.RGBA {
	side := l.Size() * cellSize
	img := image.NewRGBA(image.Rect(0, 0, side, side))
	fillBackground(img, pal.Susceptible)

	for i := 0; i < l.Size(); i++ {
		for j := 0; j < l.Size(); j++ {
			s := l.At(i, j)
			if s == sirs.Susceptible {
				continue // already background
			}
			fillCell(img, j*cellSize, i*cellSize, cellSize, pal.Color(s))
		}
	}
	return img
}

// fillBackground paints the whole canvas with one color.
func fillBackground(img *image.RGBA, bg color.Color) {
	draw.Draw(img, img.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)
}

func fillCell(img *image.RGBA, x, y, size int, c color.Color) {
	r := image.Rect(x, y, x+size, y+size)
	draw.Draw(img, r, image.NewUniform(c), image.Point{}, draw.Src)
}
