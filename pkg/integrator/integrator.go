package integrator

import (
	"fmt"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
)

// Scene is the read-only view of a scene the integrators need.
// *scene.Scene satisfies it.
type Scene interface {
	IntersectWithin(ray core.Ray, epsilon float64) (geometry.Intersection, bool)
	IsInShadow(point, direction core.Vec3, epsilon, maxDistance float64) bool
	GetLights() []lights.Light
}

// Integrator defines the interface for light transport algorithms
type Integrator interface {
	// RayColor computes the clamped color seen along a primary ray
	RayColor(ray core.Ray, scene Scene) core.Color
}

// ReflectionMode selects where mirror reflection enters the shading sum
type ReflectionMode int

const (
	// ReflectionPerPixel adds the reflected color once, scaled by the
	// specular coefficient
	ReflectionPerPixel ReflectionMode = iota
	// ReflectionPerLight adds the reflected color inside the light loop,
	// scaled by the specular coefficient and each light's 1/d² falloff
	ReflectionPerLight
)

// String returns the flag spelling of the mode
func (m ReflectionMode) String() string {
	switch m {
	case ReflectionPerLight:
		return "per-light"
	default:
		return "per-pixel"
	}
}

// ParseReflectionMode parses "per-pixel" or "per-light"
func ParseReflectionMode(s string) (ReflectionMode, error) {
	switch s {
	case "per-pixel", "":
		return ReflectionPerPixel, nil
	case "per-light":
		return ReflectionPerLight, nil
	default:
		return ReflectionPerPixel, fmt.Errorf("invalid reflection mode %q (want per-pixel or per-light)", s)
	}
}

// Config contains shading parameters
type Config struct {
	MaxDepth       int            // Recursion bound; shading at this depth casts no reflection rays
	GlossyExponent float64        // Phong exponent of the highlight
	Epsilon        float64        // Minimum hit distance for secondary and shadow rays
	Reflection     ReflectionMode // Where mirror reflection is accumulated
	Background     core.Color     // Color of rays that hit nothing
}

// DefaultConfig returns the standard Whitted shading parameters
func DefaultConfig() Config {
	return Config{
		MaxDepth:       5,
		GlossyExponent: 250,
		Epsilon:        geometry.Epsilon,
		Reflection:     ReflectionPerPixel,
		Background:     core.Black,
	}
}
