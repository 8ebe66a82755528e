package sirs

import "gonum.org/v1/gonum/floats"

// Counts holds the number of cells per macro-category, indexed by Category.
type Counts [numCategories]int

// Total is the population covered by the counts.
func (c Counts) Total() int {
	t := 0
	for _, v := range c {
		t += v
	}
	return t
}

// Fractions divides every count by the population size.
func (c Counts) Fractions() Fractions {
	var f Fractions
	total := c.Total()
	if total == 0 {
		return f
	}
	for k, v := range c {
		f[k] = float64(v) / float64(total)
	}
	return f
}

// Fractions holds the population share per macro-category.
type Fractions [numCategories]float64

// Total sums the shares; it is 1 up to rounding for any non-empty lattice.
func (f Fractions) Total() float64 {
	return floats.Sum(f[:])
}

// Series is the per-step history of population shares. Vaccinated is only
// recorded when the run has a campaign.
type Series struct {
	Susceptible []float64
	Infected    []float64
	Recovered   []float64
	Vaccinated  []float64 // nil without a campaign

	withVaccinated bool
}

// NewSeries returns an empty history sized for steps entries.
func NewSeries(steps int, withVaccinated bool) *Series {
	s := &Series{
		Susceptible:    make([]float64, 0, steps),
		Infected:       make([]float64, 0, steps),
		Recovered:      make([]float64, 0, steps),
		withVaccinated: withVaccinated,
	}
	if withVaccinated {
		s.Vaccinated = make([]float64, 0, steps)
	}
	return s
}

// Append records one step.
func (s *Series) Append(f Fractions) {
	s.Susceptible = append(s.Susceptible, f[CategorySusceptible])
	s.Infected = append(s.Infected, f[CategoryInfected])
	s.Recovered = append(s.Recovered, f[CategoryRecovered])
	if s.withVaccinated {
		s.Vaccinated = append(s.Vaccinated, f[CategoryVaccinated])
	}
}

// Len is the number of recorded steps.
func (s *Series) Len() int { return len(s.Susceptible) }

// HasVaccinated reports whether the Vaccinated share is tracked.
func (s *Series) HasVaccinated() bool { return s.withVaccinated }

// At returns the shares recorded at step t.
func (s *Series) At(t int) Fractions {
	var f Fractions
	f[CategorySusceptible] = s.Susceptible[t]
	f[CategoryInfected] = s.Infected[t]
	f[CategoryRecovered] = s.Recovered[t]
	if s.withVaccinated {
		f[CategoryVaccinated] = s.Vaccinated[t]
	}
	return f
}

// Clone returns a deep copy that the caller may keep across steps.
func (s *Series) Clone() *Series {
	c := &Series{
		Susceptible:    append([]float64(nil), s.Susceptible...),
		Infected:       append([]float64(nil), s.Infected...),
		Recovered:      append([]float64(nil), s.Recovered...),
		withVaccinated: s.withVaccinated,
	}
	if s.withVaccinated {
		c.Vaccinated = append([]float64(nil), s.Vaccinated...)
	}
	return c
}
