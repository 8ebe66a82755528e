package sirs

// Step computes the generation that follows cur.
//
// Every cell reads cur only, and the result is written into a freshly
// allocated lattice, so the outcome does not depend on visiting order. cur is
// left untouched.
func Step(cur *Lattice, p Params, rng Source) *Lattice {
	n := cur.size
	next := &Lattice{size: n, cells: make([]State, len(cur.cells))}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			s := cur.cells[i*n+j]
			infected := 0
			if s == Susceptible { // only susceptible cells look at their neighbors
				infected = InfectedNeighbors(cur, i, j)
			}
			next.cells[i*n+j] = Transition(s, infected, p, rng)
		}
	}
	return next
}
