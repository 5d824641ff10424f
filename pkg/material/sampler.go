package material

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Sampler returns the color of a texture asset at texture coordinates
// u, v in [0, 1). Decoding the asset is the loader's job.
type Sampler interface {
	Sample(u, v float64) core.Color
}

// SamplerFunc adapts a plain function to the Sampler interface
type SamplerFunc func(u, v float64) core.Color

// Sample calls f(u, v)
func (f SamplerFunc) Sample(u, v float64) core.Color {
	return f(u, v)
}

// SolidColor samples the same color everywhere
type SolidColor struct {
	Color core.Color
}

// NewSolidColor creates a new solid color sampler
func NewSolidColor(color core.Color) *SolidColor {
	return &SolidColor{Color: color}
}

// Sample returns the solid color regardless of UV
func (s *SolidColor) Sample(u, v float64) core.Color {
	return s.Color
}
