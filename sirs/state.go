package sirs

import "fmt"

// State is the tag carried by a single lattice cell.
//
// The tag set is closed: Susceptible, Infected, the refractory ladder
// FirstRefractory..K and Vaccinated. Anything else is an invariant violation.
type State uint8

// Cell state definitions
const (
	Susceptible     State = 0  // may become Infected
	Infected        State = 1  // always recovers on the next step
	FirstRefractory State = 2  // lowest rung of the refractory ladder
	Vaccinated      State = 99 // absorbing, assigned only by a Campaign
)

// MaxRefractory is the largest refractory length that keeps the ladder below
// the Vaccinated tag.
const MaxRefractory = int(Vaccinated) - 1

// Category groups states into the macro-categories reported by the statistics.
type Category int

const (
	CategorySusceptible Category = iota
	CategoryInfected
	CategoryRecovered
	CategoryVaccinated
	numCategories
)

func (c Category) String() string {
	switch c {
	case CategorySusceptible:
		return "Susceptible"
	case CategoryInfected:
		return "Infected"
	case CategoryRecovered:
		return "Recovered"
	case CategoryVaccinated:
		return "Vaccinated"
	default:
		return fmt.Sprintf("Category(%d)", int(c))
	}
}

// Category returns the macro-category of s. Refractory rungs, whatever their
// level, are Recovered.
func (s State) Category() Category {
	switch {
	case s == Susceptible:
		return CategorySusceptible
	case s == Infected:
		return CategoryInfected
	case s == Vaccinated:
		return CategoryVaccinated
	default:
		return CategoryRecovered
	}
}

// IsRefractory reports whether s is a rung of the refractory ladder.
func (s State) IsRefractory() bool {
	return s >= FirstRefractory && s < Vaccinated
}

// Valid reports whether s belongs to the tag set for a ladder of length k.
func (s State) Valid(k int) bool {
	switch {
	case s == Susceptible, s == Infected, s == Vaccinated:
		return true
	case s.IsRefractory():
		return int(s) <= k
	default:
		return false
	}
}

func (s State) String() string {
	switch {
	case s == Susceptible:
		return "S"
	case s == Infected:
		return "I"
	case s == Vaccinated:
		return "V"
	case s.IsRefractory():
		return fmt.Sprintf("R%d", int(s))
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}
