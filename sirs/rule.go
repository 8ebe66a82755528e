package sirs

// Transition returns the next state of a cell currently in s with the given
// number of infected neighbors.
//
// A Susceptible cell consumes exactly one draw from rng: contagion when it has
// an infected neighbor, spontaneous ignition otherwise, never both. No other
// state consumes a draw.
func Transition(s State, infected int, p Params, rng Source) State {
	switch {
	case s == Vaccinated:
		return Vaccinated

	case s == Susceptible:
		prob := p.SpontaneousProb
		if infected > 0 {
			prob = p.InfectionProb
		}
		if rng.Float64() < prob {
			return Infected
		}
		return Susceptible

	case s == Infected:
		return FirstRefractory

	case int(s) < p.Refractory:
		return s + 1

	default: // s == K, the top of the ladder
		return Susceptible
	}
}
