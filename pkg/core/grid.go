package core

// ByteGrid stores a 2D grid of 0/1 cell flags in row-major order.
type ByteGrid struct {
	W, H int
	data []uint8
}

// NewByteGrid allocates a grid with the given dimensions. Dimensions must be
// positive; callers validate them first.
func NewByteGrid(w, h int) *ByteGrid {
	if w <= 0 || h <= 0 {
		panic("core: NewByteGrid with non-positive dimensions")
	}
	return &ByteGrid{W: w, H: h, data: make([]uint8, w*h)}
}

// Cells exposes the backing slice so callers can read values directly.
func (g *ByteGrid) Cells() []uint8 { return g.data }

// Len returns the number of cells.
func (g *ByteGrid) Len() int { return len(g.data) }

// Index returns the linear slice index for coordinates (x, y).
func (g *ByteGrid) Index(x, y int) int { return y*g.W + x }

// InBounds reports whether (x, y) lies on the grid. There is no wrapping.
func (g *ByteGrid) InBounds(x, y int) bool {
	return x >= 0 && x < g.W && y >= 0 && y < g.H
}

// Get reports whether cell i is set.
func (g *ByteGrid) Get(i int) bool { return g.data[i] != 0 }

// Set writes the flag for cell i.
func (g *ByteGrid) Set(i int, on bool) {
	if on {
		g.data[i] = 1
		return
	}
	g.data[i] = 0
}

// Count returns the number of set cells.
func (g *ByteGrid) Count() int {
	n := 0
	for _, c := range g.data {
		if c != 0 {
			n++
		}
	}
	return n
}

// Snapshot returns a copy of the flags.
func (g *ByteGrid) Snapshot() []uint8 {
	return append([]uint8(nil), g.data...)
}

// Restore overwrites the flags from src, which must have the same length.
func (g *ByteGrid) Restore(src []uint8) {
	if len(src) != len(g.data) {
		panic("core: ByteGrid.Restore length mismatch")
	}
	copy(g.data, src)
}

// Clear fills the grid with zeros.
func (g *ByteGrid) Clear() {
	for i := range g.data {
		g.data[i] = 0
	}
}
