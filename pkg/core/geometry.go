package core

// Rect is an axis-aligned rectangle in world-space units.
type Rect struct {
	Left, Top     float64
	Width, Height float64
}

// R is shorthand for a Rect literal.
func R(left, top, width, height float64) Rect {
	return Rect{Left: left, Top: top, Width: width, Height: height}
}

// Right returns the x coordinate of the right edge.
func (r Rect) Right() float64 { return r.Left + r.Width }

// Bottom returns the y coordinate of the bottom edge.
func (r Rect) Bottom() float64 { return r.Top + r.Height }

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool { return r.Width <= 0 || r.Height <= 0 }

// Contains reports whether (x, y) lies inside r. The left and top edges are
// inclusive, the right and bottom edges exclusive, so adjacent cells never
// both contain the same point.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.Left && x < r.Right() && y >= r.Top && y < r.Bottom()
}

// Center returns the midpoint of the rectangle.
func (r Rect) Center() (float64, float64) {
	return r.Left + r.Width/2, r.Top + r.Height/2
}

// Geometry maps grid coordinates to world-space cell rectangles. Cells are
// numbered row-major: index = row*Cols + col.
type Geometry struct {
	Cols, Rows int
	CellSize   float64
}

// NewGeometry validates the dimensions and returns a Geometry.
func NewGeometry(cols, rows int, cellSize float64) (Geometry, error) {
	if cols <= 0 || rows <= 0 {
		return Geometry{}, ErrInvalidSize
	}
	if cellSize <= 0 {
		return Geometry{}, ErrInvalidCellSize
	}
	return Geometry{Cols: cols, Rows: rows, CellSize: cellSize}, nil
}

// Size returns the grid dimensions in cells.
func (g Geometry) Size() Size { return Size{W: g.Cols, H: g.Rows} }

// Len returns the total number of cells.
func (g Geometry) Len() int { return g.Cols * g.Rows }

// Valid reports whether i addresses a cell.
func (g Geometry) Valid(i int) bool { return i >= 0 && i < g.Len() }

// Index returns the flat index for (row, col).
func (g Geometry) Index(row, col int) int { return row*g.Cols + col }

// RowCol splits a flat index into its row and column.
func (g Geometry) RowCol(i int) (int, int) { return i / g.Cols, i % g.Cols }

// CellRect returns the bounds of the cell at (row, col).
func (g Geometry) CellRect(row, col int) Rect {
	s := g.CellSize
	return Rect{Left: float64(col) * s, Top: float64(row) * s, Width: s, Height: s}
}

// Rect returns the bounds of the cell with flat index i.
func (g Geometry) Rect(i int) Rect {
	row, col := g.RowCol(i)
	return g.CellRect(row, col)
}

// Bounds returns the rectangle covering the whole grid.
func (g Geometry) Bounds() Rect {
	return Rect{Width: float64(g.Cols) * g.CellSize, Height: float64(g.Rows) * g.CellSize}
}

// CellAt returns the index of the cell containing the world point (x, y).
func (g Geometry) CellAt(x, y float64) (int, bool) {
	if x < 0 || y < 0 {
		return -1, false
	}
	col := int(x / g.CellSize)
	row := int(y / g.CellSize)
	if col >= g.Cols || row >= g.Rows {
		return -1, false
	}
	return g.Index(row, col), true
}
