// Package camera converts between screen pixels and world units for a
// pannable, zoomable view. It changes only what is shown; the grid itself is
// never rebuilt by a zoom.
package camera

import (
	"math"

	"quadlife/pkg/core"
)

const (
	// MinZoom and MaxZoom bound the zoom factor.
	MinZoom = 0.25
	MaxZoom = 8.0
	// WheelFactor is the zoom multiplier per wheel notch.
	WheelFactor = 1.12
)

// Camera centres world point (X, Y) in a ViewW x ViewH viewport, scaled by
// Zoom (1 = one world unit per pixel, >1 = zoomed in).
type Camera struct {
	X, Y         float64
	Zoom         float64
	ViewW, ViewH int

	dragging     bool
	lastX, lastY float64
}

// New returns a camera for the given viewport at the given zoom.
func New(viewW, viewH int, zoom float64) *Camera {
	c := &Camera{ViewW: viewW, ViewH: viewH, Zoom: 1}
	c.SetZoom(zoom)
	return c
}

// CenterOn moves the camera to the middle of r.
func (c *Camera) CenterOn(r core.Rect) {
	c.X, c.Y = r.Center()
}

// Resize updates the viewport dimensions.
func (c *Camera) Resize(w, h int) {
	c.ViewW, c.ViewH = w, h
}

// SetZoom sets the zoom factor, clamped to [MinZoom, MaxZoom].
func (c *Camera) SetZoom(z float64) {
	if z <= 0 || math.IsNaN(z) {
		z = 1
	}
	c.Zoom = math.Max(MinZoom, math.Min(MaxZoom, z))
}

// ScreenToWorld maps a pixel position to world coordinates.
func (c *Camera) ScreenToWorld(sx, sy float64) (float64, float64) {
	return (sx-float64(c.ViewW)/2)/c.Zoom + c.X, (sy-float64(c.ViewH)/2)/c.Zoom + c.Y
}

// WorldToScreen maps world coordinates to a pixel position.
func (c *Camera) WorldToScreen(wx, wy float64) (float64, float64) {
	return (wx-c.X)*c.Zoom + float64(c.ViewW)/2, (wy-c.Y)*c.Zoom + float64(c.ViewH)/2
}

// Pan shifts the view by a screen-space delta, so dragging right moves the
// world right under the cursor.
func (c *Camera) Pan(dx, dy float64) {
	c.X -= dx / c.Zoom
	c.Y -= dy / c.Zoom
}

// ZoomAt multiplies the zoom by factor while keeping the world point under
// screen position (sx, sy) fixed.
func (c *Camera) ZoomAt(factor, sx, sy float64) {
	wx, wy := c.ScreenToWorld(sx, sy)
	c.SetZoom(c.Zoom * factor)
	nx, ny := c.ScreenToWorld(sx, sy)
	c.X += wx - nx
	c.Y += wy - ny
}

// Wheel applies a mouse-wheel delta at screen position (sx, sy).
func (c *Camera) Wheel(dy, sx, sy float64) {
	if dy == 0 {
		return
	}
	c.ZoomAt(math.Pow(WheelFactor, dy), sx, sy)
}

// Drag feeds the pan button state and cursor position for one frame.
func (c *Camera) Drag(sx, sy float64, held bool) {
	if !held {
		c.dragging = false
		return
	}
	if c.dragging {
		c.Pan(sx-c.lastX, sy-c.lastY)
	}
	c.dragging = true
	c.lastX, c.lastY = sx, sy
}

// Dragging reports whether a pan drag is in progress.
func (c *Camera) Dragging() bool { return c.dragging }

// Visible returns the world-space rectangle currently on screen.
func (c *Camera) Visible() core.Rect {
	l, t := c.ScreenToWorld(0, 0)
	return core.R(l, t, float64(c.ViewW)/c.Zoom, float64(c.ViewH)/c.Zoom)
}
