package camera

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"quadlife/pkg/core"
)

func TestScreenWorldInverse(t *testing.T) {
	c := New(800, 600, 2)
	c.CenterOn(core.R(0, 0, 500, 500))

	wx, wy := c.ScreenToWorld(400, 300)
	assert.InDelta(t, 250, wx, 1e-9)
	assert.InDelta(t, 250, wy, 1e-9)

	for _, p := range [][2]float64{{0, 0}, {123, 456}, {799, 1}} {
		x, y := c.ScreenToWorld(p[0], p[1])
		sx, sy := c.WorldToScreen(x, y)
		assert.InDelta(t, p[0], sx, 1e-9)
		assert.InDelta(t, p[1], sy, 1e-9)
	}
}

func TestZoomAtKeepsCursorAnchored(t *testing.T) {
	c := New(500, 500, 1)
	c.CenterOn(core.R(0, 0, 500, 500))
	beforeX, beforeY := c.ScreenToWorld(100, 50)

	c.Wheel(3, 100, 50)

	afterX, afterY := c.ScreenToWorld(100, 50)
	assert.InDelta(t, beforeX, afterX, 1e-9)
	assert.InDelta(t, beforeY, afterY, 1e-9)
	assert.Greater(t, c.Zoom, 1.0)
}

func TestZoomClamped(t *testing.T) {
	c := New(100, 100, 100)
	assert.Equal(t, MaxZoom, c.Zoom)
	c.SetZoom(0.001)
	assert.Equal(t, MinZoom, c.Zoom)
	c.SetZoom(-1)
	assert.Equal(t, 1.0, c.Zoom)
}

func TestDragPans(t *testing.T) {
	c := New(200, 200, 2)
	c.X, c.Y = 50, 50

	c.Drag(10, 10, true)
	assert.True(t, c.Dragging())
	c.Drag(30, 20, true)
	assert.InDelta(t, 40, c.X, 1e-9)
	assert.InDelta(t, 45, c.Y, 1e-9)

	c.Drag(90, 90, false)
	assert.False(t, c.Dragging())
	c.Drag(100, 100, true)
	assert.InDelta(t, 40, c.X, 1e-9, "new drag starts without a jump")
}

func TestVisible(t *testing.T) {
	c := New(200, 100, 2)
	c.X, c.Y = 100, 100
	assert.Equal(t, core.R(50, 75, 100, 50), c.Visible())
}
