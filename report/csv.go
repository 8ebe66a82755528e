package report

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/tigsg/Cellular-Automata-Simulation/sirs"
)

// CSVWriter records one row per simulation step.
type CSVWriter struct {
	file   *os.File
	w      *csv.Writer
	params sirs.Params
}

// Headers returns the column names written for a run with params p.
func Headers(p sirs.Params) []string {
	headers := []string{
		"Time",
		"Percentage Susceptible Cells", "Percentage Infected Cells", "Percentage Recovered Cells",
	}
	if p.Campaign != nil {
		headers = append(headers, "Percentage Vaccinated Cells")
	}
	headers = append(headers,
		"Susceptible Count", "Infected Count", "Recovered Count", "Vaccinated Count",
		"Vaccinated This Step",
		"GRID_SIZE", "TIME_STEPS", "K_REFRACTORY", "INFECTION_PROB", "SPONTANEOUS_PROB", "INITIAL_INFECTED",
	)
	if p.Campaign != nil {
		headers = append(headers, "VAC_START_STEP", "VAC_SPEED", "MAX_VAC_RATE")
	}
	return headers
}

// NewCSVWriter creates the file at path and writes the header row.
func NewCSVWriter(path string, p sirs.Params) (*CSVWriter, error) {
	file, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create CSV file: %w", err)
	}
	c := &CSVWriter{file: file, w: csv.NewWriter(file), params: p}
	if err := c.w.Write(Headers(p)); err != nil {
		file.Close()
		return nil, fmt.Errorf("write CSV headers: %w", err)
	}
	return c, nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', 6, 64)
}

// Write appends the row for one frame. Shares are written as percentages.
func (c *CSVWriter) Write(f sirs.Frame) error {
	p := c.params
	row := []string{
		strconv.Itoa(f.Step),
		formatFloat(f.Fractions[sirs.CategorySusceptible] * 100),
		formatFloat(f.Fractions[sirs.CategoryInfected] * 100),
		formatFloat(f.Fractions[sirs.CategoryRecovered] * 100),
	}
	if p.Campaign != nil {
		row = append(row, formatFloat(f.Fractions[sirs.CategoryVaccinated]*100))
	}
	row = append(row,
		strconv.Itoa(f.Counts[sirs.CategorySusceptible]),
		strconv.Itoa(f.Counts[sirs.CategoryInfected]),
		strconv.Itoa(f.Counts[sirs.CategoryRecovered]),
		strconv.Itoa(f.Counts[sirs.CategoryVaccinated]),
		strconv.Itoa(f.Vaccinated),
		strconv.Itoa(p.Size),
		strconv.Itoa(p.Steps),
		strconv.Itoa(p.Refractory),
		formatFloat(p.InfectionProb),
		formatFloat(p.SpontaneousProb),
		formatFloat(p.InitialInfected),
	)
	if p.Campaign != nil {
		row = append(row,
			strconv.Itoa(p.Campaign.Start),
			formatFloat(p.Campaign.Rate),
			formatFloat(p.Campaign.Ceiling),
		)
	}
	if err := c.w.Write(row); err != nil {
		return fmt.Errorf("write CSV row %d: %w", f.Step, err)
	}
	return nil
}

// Close flushes buffered rows and closes the file.
func (c *CSVWriter) Close() error {
	c.w.Flush()
	if err := c.w.Error(); err != nil {
		c.file.Close()
		return fmt.Errorf("flush CSV: %w", err)
	}
	return c.file.Close()
}
