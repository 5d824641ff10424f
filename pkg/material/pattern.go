package material

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Checker returns 1 for white squares and 0 for black squares of a
// checkerboard with the given square size
func Checker(uv core.Vec2, size float64) float64 {
	if size <= 0 {
		size = 1
	}
	parity := int64(math.Floor(uv.X/size)) + int64(math.Floor(uv.Y/size))
	if parity%2 == 0 {
		return 1
	}
	return 0
}

// TextureProjection maps planar surface coordinates to texture UV in [0, 1)
type TextureProjection struct {
	ScaleU, ScaleV   float64 // World units covered by one texture repeat
	OffsetU, OffsetV float64 // Offset in texture space, applied after scaling
	MirrorU          bool    // Flip horizontally
}

// DefaultTextureProjection repeats the texture once per world unit
func DefaultTextureProjection() TextureProjection {
	return TextureProjection{ScaleU: 1, ScaleV: 1}
}

// Project maps planar coordinates to wrapped texture coordinates
func (p TextureProjection) Project(uv core.Vec2) (float64, float64) {
	scaleU, scaleV := p.ScaleU, p.ScaleV
	if scaleU == 0 {
		scaleU = 1
	}
	if scaleV == 0 {
		scaleV = 1
	}

	u := frac(uv.X/scaleU - p.OffsetU)
	v := frac(uv.Y/scaleV - p.OffsetV)
	if p.MirrorU {
		u = frac(1 - u)
	}
	return u, v
}

// frac wraps x into [0, 1)
func frac(x float64) float64 {
	f := x - math.Floor(x)
	if f >= 1 {
		return 0
	}
	return f
}
