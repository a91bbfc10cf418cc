package sandbox

import (
	opensimplex "github.com/ojrac/opensimplex-go"

	"quadlife/pkg/core"
)

// DefaultNoiseScale is the noise frequency per cell used by SeedNoise when
// scale is not positive.
const DefaultNoiseScale = 0.15

// Seed paints a uniform random pattern into the current generation, each
// cell alive with probability density. History depth is unchanged.
func (s *Sandbox) Seed(seed int64, density float64) {
	buf := make([]uint8, s.Len())
	core.FillDensity(core.NewRNG(seed), buf, density)
	for i, v := range buf {
		s.engine.Paint(i, v != 0)
	}
}

// SeedNoise paints cells alive where normalized simplex noise exceeds
// threshold, giving blobby clusters instead of uniform static.
func (s *Sandbox) SeedNoise(seed int64, scale, threshold float64) {
	if scale <= 0 {
		scale = DefaultNoiseScale
	}
	noise := opensimplex.NewNormalized(seed)
	for i := 0; i < s.Len(); i++ {
		row, col := s.geom.RowCol(i)
		v := noise.Eval2(float64(col)*scale, float64(row)*scale)
		s.engine.Paint(i, v > threshold)
	}
}
