//go:build ebiten

package render

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// GridPainter keeps one RGBA image with a pixel per cell and draws it
// stretched to world size through the camera transform.
type GridPainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
}

// NewGridPainter allocates a painter for a grid of size w*h.
func NewGridPainter(w, h int) *GridPainter {
	gp := &GridPainter{w: w, h: h, buf: make([]byte, 4*w*h)}
	gp.img = ebiten.NewImage(w, h)
	return gp
}

// Size returns the dimensions of the underlying image.
func (gp *GridPainter) Size() (int, int) { return gp.w, gp.h }

// Blit uploads the cells and draws them. view maps world units to screen
// pixels; cellSize is the world size of one cell.
func (gp *GridPainter) Blit(dst *ebiten.Image, cells []uint8, hl Highlight, p Palette, view ebiten.GeoM, cellSize float64) {
	if len(cells) != gp.w*gp.h {
		return
	}
	FillRGBA(gp.buf, cells, hl, p)
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(cellSize, cellSize)
	op.GeoM.Concat(view)
	op.Filter = ebiten.FilterNearest
	dst.DrawImage(gp.img, op)
}

// StrokeGrid draws cell outlines. It is skipped when cells are smaller than
// minPixels on screen.
func (gp *GridPainter) StrokeGrid(dst *ebiten.Image, p Palette, view ebiten.GeoM, cellSize, zoom, minPixels float64) {
	if cellSize*zoom < minPixels {
		return
	}
	width := float32(1)
	wWorld := float64(gp.w) * cellSize
	hWorld := float64(gp.h) * cellSize
	for col := 0; col <= gp.w; col++ {
		x := float64(col) * cellSize
		x0, y0 := view.Apply(x, 0)
		x1, y1 := view.Apply(x, hWorld)
		vector.StrokeLine(dst, float32(x0), float32(y0), float32(x1), float32(y1), width, p.Grid, false)
	}
	for row := 0; row <= gp.h; row++ {
		y := float64(row) * cellSize
		x0, y0 := view.Apply(0, y)
		x1, y1 := view.Apply(wWorld, y)
		vector.StrokeLine(dst, float32(x0), float32(y0), float32(x1), float32(y1), width, p.Grid, false)
	}
}
