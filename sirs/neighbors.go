package sirs

// mooreOffsets are the 8 neighbor offsets of the Moore neighborhood.
var mooreOffsets = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// InfectedNeighbors counts the Infected cells among the 8 toroidal Moore
// neighbors of (i, j).
func InfectedNeighbors(l *Lattice, i, j int) int {
	n := 0
	for _, d := range mooreOffsets {
		if l.At(i+d[0], j+d[1]) == Infected {
			n++
		}
	}
	return n
}
