package sirs

import (
	"fmt"
	"math"
)

// Params is the immutable parameter set of one run.
type Params struct {
	Size            int     // lattice side N, the lattice holds N*N cells
	Steps           int     // total step count T
	Refractory      int     // K, highest refractory tag; the immunity window is K-1 steps
	InfectionProb   float64 // p_inf, per step, for a susceptible cell with an infected neighbor
	SpontaneousProb float64 // p_spont, per step, for a susceptible cell with no infected neighbor
	InitialInfected float64 // f0, fraction of cells seeded Infected
	Campaign        *Campaign
}

// Campaign describes the vaccination intervention. A nil *Campaign in Params
// disables it.
type Campaign struct {
	Start   int     // t_vac, first step at which vaccination happens
	Rate    float64 // r_vac, fraction of N*N drawn per step
	Ceiling float64 // c_max, coverage at which the campaign stops drawing
}

// Cells is the population size N*N.
func (p Params) Cells() int {
	return p.Size * p.Size
}

// Validate checks every field and returns an error wrapping
// ErrInvalidParameter for the first one out of range.
func (p Params) Validate() error {
	if p.Size <= 0 {
		return invalid("size", "must be positive, got %d", p.Size)
	}
	if p.Steps < 0 {
		return invalid("steps", "must not be negative, got %d", p.Steps)
	}
	if p.Refractory < int(FirstRefractory) || p.Refractory > MaxRefractory {
		return invalid("refractory", "must be in [%d,%d], got %d", FirstRefractory, MaxRefractory, p.Refractory)
	}
	for _, prob := range []struct {
		name  string
		value float64
	}{
		{"infection probability", p.InfectionProb},
		{"spontaneous probability", p.SpontaneousProb},
		{"initial infected fraction", p.InitialInfected},
	} {
		if !inUnit(prob.value) {
			return invalid(prob.name, "must be in [0,1], got %v", prob.value)
		}
	}
	if p.Campaign != nil {
		return p.Campaign.validate()
	}
	return nil
}

func (c *Campaign) validate() error {
	if c.Start < 0 {
		return invalid("vaccination start", "must not be negative, got %d", c.Start)
	}
	if !(c.Rate > 0 && c.Rate <= 1) {
		return invalid("vaccination rate", "must be in (0,1], got %v", c.Rate)
	}
	if !(c.Ceiling > 0 && c.Ceiling <= 1) {
		return invalid("vaccination ceiling", "must be in (0,1], got %v", c.Ceiling)
	}
	return nil
}

// BatchSize is the number of coordinates drawn per active campaign step,
// floor(N*N*r_vac).
func (c *Campaign) BatchSize(cells int) int {
	return int(math.Floor(float64(cells) * c.Rate))
}

func inUnit(v float64) bool {
	return !math.IsNaN(v) && v >= 0 && v <= 1
}

func invalid(field, format string, args ...any) error {
	return fmt.Errorf("%w: %s %s", ErrInvalidParameter, field, fmt.Sprintf(format, args...))
}
