package sirs

// Coverage is the fraction of the population currently Vaccinated.
func Coverage(l *Lattice) float64 {
	return l.Count().Fractions()[CategoryVaccinated]
}

// Active reports whether the campaign draws a batch at the given step, given
// the coverage observed at the start of that step.
func (c *Campaign) Active(step int, coverage float64) bool {
	return step >= c.Start && coverage < c.Ceiling
}

// Vaccinate runs one step of the campaign against l, in place, and returns
// the number of cells it moved to Vaccinated.
//
// BatchSize coordinates are drawn uniformly with replacement (row, then
// column). A drawn cell is vaccinated unless it is already Vaccinated or is
// currently Infected. Duplicate draws are wasted and the batch may carry the
// coverage past the ceiling; eligibility is only re-checked on the next step.
func Vaccinate(l *Lattice, step int, c *Campaign, rng Source) int {
	if c == nil || !c.Active(step, Coverage(l)) {
		return 0
	}
	n := l.size
	done := 0
	for k := c.BatchSize(n * n); k > 0; k-- {
		i := rng.Intn(n)
		j := rng.Intn(n)
		idx := i*n + j
		switch l.cells[idx] {
		case Vaccinated, Infected:
			continue
		}
		l.cells[idx] = Vaccinated
		done++
	}
	return done
}
