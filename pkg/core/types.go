package core

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Len returns the number of cells in a grid of this size.
func (s Size) Len() int { return s.W * s.H }
