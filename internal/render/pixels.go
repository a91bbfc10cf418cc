package render

import "image/color"

// Palette holds the colours used to draw cells.
type Palette struct {
	Dead     color.RGBA
	Alive    color.RGBA
	Hover    color.RGBA
	Neighbor color.RGBA
	Grid     color.RGBA
}

// DefaultPalette matches the classic look: black dead cells, white live
// cells, a white hovered cell and red neighbours.
func DefaultPalette() Palette {
	return Palette{
		Dead:     color.RGBA{A: 255},
		Alive:    color.RGBA{R: 235, G: 235, B: 235, A: 255},
		Hover:    color.RGBA{R: 255, G: 255, B: 255, A: 255},
		Neighbor: color.RGBA{R: 200, G: 40, B: 40, A: 255},
		Grid:     color.RGBA{R: 50, G: 50, B: 50, A: 255},
	}
}

// Highlight marks the hovered cell and its neighbours. Hovered is -1 when
// nothing is hovered.
type Highlight struct {
	Hovered   int
	Neighbors []int
}

// NoHighlight is a Highlight with nothing hovered.
var NoHighlight = Highlight{Hovered: -1}

// CellColor returns the colour for one cell. Live neighbours keep their live
// colour blended towards the neighbour tint.
func (p Palette) CellColor(alive, hovered, neighbor bool) color.RGBA {
	switch {
	case hovered:
		return p.Hover
	case neighbor && alive:
		return blend(p.Alive, p.Neighbor)
	case neighbor:
		return p.Neighbor
	case alive:
		return p.Alive
	}
	return p.Dead
}

func blend(a, b color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8((uint16(a.R) + uint16(b.R)) / 2),
		G: uint8((uint16(a.G) + uint16(b.G)) / 2),
		B: uint8((uint16(a.B) + uint16(b.B)) / 2),
		A: uint8((uint16(a.A) + uint16(b.A)) / 2),
	}
}

// FillRGBA converts cell flags into one RGBA pixel per cell in buf, which
// must hold 4*len(cells) bytes.
func FillRGBA(buf []byte, cells []uint8, hl Highlight, p Palette) {
	put := func(i int, c color.RGBA) {
		base := i * 4
		buf[base+0] = c.R
		buf[base+1] = c.G
		buf[base+2] = c.B
		buf[base+3] = c.A
	}
	for i, c := range cells {
		put(i, p.CellColor(c != 0, false, false))
	}
	for _, n := range hl.Neighbors {
		if n >= 0 && n < len(cells) {
			put(n, p.CellColor(cells[n] != 0, false, true))
		}
	}
	if hl.Hovered >= 0 && hl.Hovered < len(cells) {
		put(hl.Hovered, p.Hover)
	}
}
