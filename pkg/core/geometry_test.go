package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeometryRowMajor(t *testing.T) {
	g, err := NewGeometry(4, 3, 10)
	require.NoError(t, err)

	assert.Equal(t, 12, g.Len())
	assert.Equal(t, 6, g.Index(1, 2))
	row, col := g.RowCol(6)
	assert.Equal(t, 1, row)
	assert.Equal(t, 2, col)
	assert.Equal(t, R(20, 10, 10, 10), g.Rect(6))
	assert.Equal(t, R(0, 0, 40, 30), g.Bounds())
}

func TestGeometryRejectsBadDimensions(t *testing.T) {
	for _, tc := range []struct {
		name       string
		cols, rows int
		cell       float64
		want       error
	}{
		{"zero cols", 0, 3, 1, ErrInvalidSize},
		{"negative rows", 3, -1, 1, ErrInvalidSize},
		{"zero cell", 3, 3, 0, ErrInvalidCellSize},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewGeometry(tc.cols, tc.rows, tc.cell)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestRectContainsIsHalfOpen(t *testing.T) {
	r := R(10, 10, 5, 5)
	assert.True(t, r.Contains(10, 10))
	assert.True(t, r.Contains(14.9, 14.9))
	assert.False(t, r.Contains(15, 12))
	assert.False(t, r.Contains(12, 15))
	assert.False(t, r.Contains(9.99, 12))
}

func TestCellAt(t *testing.T) {
	g := Geometry{Cols: 5, Rows: 5, CellSize: 20}
	i, ok := g.CellAt(45, 61)
	require.True(t, ok)
	assert.Equal(t, g.Index(3, 2), i)

	_, ok = g.CellAt(100, 10)
	assert.False(t, ok)
	_, ok = g.CellAt(-1, 10)
	assert.False(t, ok)
}

func TestByteGridSnapshotRestore(t *testing.T) {
	g := NewByteGrid(3, 2)
	g.Set(g.Index(2, 1), true)
	snap := g.Snapshot()

	g.Clear()
	assert.Equal(t, 0, g.Count())

	g.Restore(snap)
	assert.True(t, g.Get(5))
	assert.Equal(t, 1, g.Count())
	assert.False(t, g.InBounds(3, 0))
}

func TestFillDensityDeterministic(t *testing.T) {
	a := make([]uint8, 64)
	b := make([]uint8, 64)
	FillDensity(NewRNG(7), a, 0.5)
	FillDensity(NewRNG(7), b, 0.5)
	assert.Equal(t, a, b)

	FillDensity(NewRNG(7), a, 0)
	assert.Equal(t, make([]uint8, 64), a)
}
