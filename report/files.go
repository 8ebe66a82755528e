package report

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"strings"

	"github.com/tigsg/Cellular-Automata-Simulation/sirs"
)

// NextRunNumber returns one more than the highest numeric prefix among the
// directories in basePath, so successive runs never overwrite each other.
func NextRunNumber(basePath string) (int, error) {
	entries, err := os.ReadDir(basePath)
	if err != nil {
		if os.IsNotExist(err) {
			return 1, nil
		}
		return 0, fmt.Errorf("read directory %s: %w", basePath, err)
	}

	maxNumber := 0
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		var n int
		if _, err := fmt.Sscanf(e.Name(), "%d", &n); err == nil && n > maxNumber {
			maxNumber = n
		}
	}
	return maxNumber + 1, nil
}

// RunFolderName encodes the run number and its parameters in a directory
// name, e.g. "3_grid100_K20_pinf1.00_pspont0.0010_f0.010_vac300r0.0050c0.85_times1000".
func RunFolderName(no int, p sirs.Params) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d_grid%d_K%d_pinf%.2f_pspont%.4f_f%.3f", no, p.Size, p.Refractory,
		p.InfectionProb, p.SpontaneousProb, p.InitialInfected)
	if c := p.Campaign; c != nil {
		fmt.Fprintf(&b, "_vac%dr%.4fc%.2f", c.Start, c.Rate, c.Ceiling)
	} else {
		b.WriteString("_novac")
	}
	fmt.Fprintf(&b, "_times%d", p.Steps)
	return b.String()
}

// SavePNG encodes img to filename.
func SavePNG(img image.Image, filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("create %s: %w", filename, err)
	}
	if err := png.Encode(file, img); err != nil {
		file.Close()
		return fmt.Errorf("encode PNG %s: %w", filename, err)
	}
	return file.Close()
}
