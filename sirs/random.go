package sirs

import "math/rand"

// Source supplies the independent uniform draws the automaton consumes.
// *math/rand.Rand satisfies it.
type Source interface {
	Float64() float64 // uniform in [0,1)
	Intn(n int) int   // uniform in [0,n)
}

// NewSource returns a seeded source; identical seeds give identical runs.
func NewSource(seed int64) Source {
	return rand.New(rand.NewSource(seed))
}
