package report

import (
	"fmt"
	"os"

	"gonum.org/v1/gonum/floats"
	"gopkg.in/yaml.v3"

	"github.com/tigsg/Cellular-Automata-Simulation/sirs"
)

// Summary condenses a finished run.
type Summary struct {
	Steps        int     `yaml:"steps"`
	PeakInfected float64 `yaml:"peak_infected"`
	PeakStep     int     `yaml:"peak_step"`
	MeanInfected float64 `yaml:"mean_infected"`
	// Extinct is true when no cell was infected at the last step.
	Extinct          bool    `yaml:"extinct"`
	FinalSusceptible float64 `yaml:"final_susceptible"`
	FinalInfected    float64 `yaml:"final_infected"`
	FinalRecovered   float64 `yaml:"final_recovered"`
	FinalVaccinated  float64 `yaml:"final_vaccinated,omitempty"`
}

// Summarize computes the summary of a series. An empty series gives the zero
// Summary.
func Summarize(s *sirs.Series) Summary {
	n := s.Len()
	if n == 0 {
		return Summary{}
	}
	peak := floats.MaxIdx(s.Infected)
	last := s.At(n - 1)
	return Summary{
		Steps:            n,
		PeakInfected:     s.Infected[peak],
		PeakStep:         peak,
		MeanInfected:     floats.Sum(s.Infected) / float64(n),
		Extinct:          last[sirs.CategoryInfected] == 0,
		FinalSusceptible: last[sirs.CategorySusceptible],
		FinalInfected:    last[sirs.CategoryInfected],
		FinalRecovered:   last[sirs.CategoryRecovered],
		FinalVaccinated:  last[sirs.CategoryVaccinated],
	}
}

// WriteSummary stores the summary as YAML.
func WriteSummary(path string, sum Summary) error {
	data, err := yaml.Marshal(sum)
	if err != nil {
		return fmt.Errorf("marshal summary: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write summary: %w", err)
	}
	return nil
}
