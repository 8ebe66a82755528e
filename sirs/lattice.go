package sirs

import "fmt"

// Lattice is an N×N toroidal grid of cell states stored row-major.
type Lattice struct {
	size  int
	cells []State
}

// NewLattice returns a lattice of side n with every cell Susceptible.
func NewLattice(n int) *Lattice {
	return &Lattice{size: n, cells: make([]State, n*n)}
}

// LatticeFromRows builds a lattice from a square matrix of tags, as produced
// by Rows. Every tag must be defined for a ladder of length k.
func LatticeFromRows(rows [][]int, k int) (*Lattice, error) {
	n := len(rows)
	if n == 0 {
		return nil, fmt.Errorf("%w: empty lattice", ErrInvalidParameter)
	}
	l := NewLattice(n)
	for i, row := range rows {
		if len(row) != n {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrInvalidParameter, i, len(row), n)
		}
		for j, v := range row {
			s := State(v)
			if v < 0 || v > int(Vaccinated) || !s.Valid(k) {
				return nil, fmt.Errorf("%w: cell (%d,%d) has undefined state %d", ErrInvalidParameter, i, j, v)
			}
			l.cells[i*n+j] = s
		}
	}
	return l, nil
}

// Size is the side length N.
func (l *Lattice) Size() int { return l.size }

// At returns the state at (i, j). Coordinates wrap modulo N in both
// dimensions, so any integer pair is accepted.
func (l *Lattice) At(i, j int) State {
	return l.cells[l.index(i, j)]
}

// Set assigns s to (i, j), wrapping coordinates like At.
func (l *Lattice) Set(i, j int, s State) {
	l.cells[l.index(i, j)] = s
}

func (l *Lattice) index(i, j int) int {
	return wrap(i, l.size)*l.size + wrap(j, l.size)
}

// wrap maps any integer onto [0, n).
func wrap(x, n int) int {
	x %= n
	if x < 0 {
		x += n
	}
	return x
}

// Clone returns an independent copy.
func (l *Lattice) Clone() *Lattice {
	c := &Lattice{size: l.size, cells: make([]State, len(l.cells))}
	copy(c.cells, l.cells)
	return c
}

// Equal reports whether both lattices have the same size and states.
func (l *Lattice) Equal(o *Lattice) bool {
	if l.size != o.size {
		return false
	}
	for i := range l.cells {
		if l.cells[i] != o.cells[i] {
			return false
		}
	}
	return true
}

// Rows returns the lattice as an N×N matrix of integer tags. The result does
// not alias the lattice.
func (l *Lattice) Rows() [][]int {
	rows := make([][]int, l.size)
	for i := range rows {
		rows[i] = make([]int, l.size)
		for j := range rows[i] {
			rows[i][j] = int(l.cells[i*l.size+j])
		}
	}
	return rows
}

// Count tallies the cells per macro-category.
func (l *Lattice) Count() Counts {
	var c Counts
	for _, s := range l.cells {
		c[s.Category()]++
	}
	return c
}

// check returns an error wrapping ErrStateInvariant for the first cell
// outside the tag set of a ladder of length k.
func (l *Lattice) check(k int) error {
	for idx, s := range l.cells {
		if !s.Valid(k) {
			return fmt.Errorf("%w: cell (%d,%d) holds %d", ErrStateInvariant, idx/l.size, idx%l.size, int(s))
		}
	}
	return nil
}
