package render

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func pixel(buf []byte, i int) color.RGBA {
	return color.RGBA{R: buf[i*4], G: buf[i*4+1], B: buf[i*4+2], A: buf[i*4+3]}
}

func TestFillRGBA(t *testing.T) {
	p := DefaultPalette()
	cells := []uint8{0, 1, 0, 1, 0, 0}
	buf := make([]byte, 4*len(cells))

	FillRGBA(buf, cells, Highlight{Hovered: 4, Neighbors: []int{2, 3}}, p)

	want := map[int]color.RGBA{
		0: p.Dead,
		1: p.Alive,
		2: p.Neighbor,
		3: blend(p.Alive, p.Neighbor),
		4: p.Hover,
		5: p.Dead,
	}
	for i, c := range want {
		assert.Equal(t, c, pixel(buf, i), "cell %d", i)
	}
}

func TestFillRGBAIgnoresOutOfRangeHighlight(t *testing.T) {
	buf := make([]byte, 8)
	assert.NotPanics(t, func() {
		FillRGBA(buf, []uint8{1, 0}, Highlight{Hovered: 9, Neighbors: []int{-1, 5}}, DefaultPalette())
	})
	assert.Equal(t, DefaultPalette().Alive, pixel(buf, 0))
}
