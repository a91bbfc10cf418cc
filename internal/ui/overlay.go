//go:build ebiten

package ui

import (
	"image/color"

	"quadlife/pkg/quadtree"
	"quadlife/pkg/sandbox"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Overlay draws debugging visuals on top of the cells: the hovered cell
// outline, and optionally the quadtree partition.
type Overlay struct {
	sb       *sandbox.Sandbox
	showTree bool
	showGrid bool
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(sb *sandbox.Sandbox) *Overlay {
	return &Overlay{sb: sb, showGrid: true}
}

// ShowGrid reports whether cell outlines are enabled.
func (o *Overlay) ShowGrid() bool { return o.showGrid }

// Update toggles overlay layers.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.showTree = !o.showTree
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit2) {
		o.showGrid = !o.showGrid
	}
}

// Draw renders the overlay. view maps world units to screen pixels.
func (o *Overlay) Draw(screen *ebiten.Image, view ebiten.GeoM) {
	if o.showTree {
		o.sb.Tree().Walk(func(n *quadtree.Tree) bool {
			shade := uint8(max(60, 220-30*n.Level()))
			o.strokeWorldRect(screen, view, n.Bounds().Left, n.Bounds().Top, n.Bounds().Width, n.Bounds().Height,
				color.RGBA{R: 40, G: shade, B: 200, A: 200}, 1)
			return true
		})
	}
	if idx, ok := o.sb.Hovered(); ok {
		r := o.sb.Geometry().Rect(idx)
		o.strokeWorldRect(screen, view, r.Left, r.Top, r.Width, r.Height, color.RGBA{R: 255, G: 210, B: 60, A: 255}, 2)
	}
}

func (o *Overlay) strokeWorldRect(screen *ebiten.Image, view ebiten.GeoM, l, t, w, h float64, col color.RGBA, width float32) {
	x0, y0 := view.Apply(l, t)
	x1, y1 := view.Apply(l+w, t+h)
	vector.StrokeRect(screen, float32(x0), float32(y0), float32(x1-x0), float32(y1-y0), width, col, false)
}
