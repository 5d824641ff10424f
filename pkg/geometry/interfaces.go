package geometry

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// Epsilon is the smallest admissible ray parameter. Hits closer than this
// are discarded so a ray leaving a surface does not hit that surface again.
const Epsilon = 1e-4

// Primitive is a renderable surface that can be hit by rays
type Primitive interface {
	// Intersect returns the nearest admissible hit along the ray
	Intersect(ray core.Ray) (Intersection, bool)
	// GetNormal returns the unit surface normal at a point on the surface
	GetNormal(point core.Vec3) core.Vec3
	// SurfaceColor returns the pattern-resolved diffuse color at a surface point
	SurfaceColor(point core.Vec3) core.Color
	GetMaterial() *material.Material
	// GetPosition returns a representative point, used for inspection only
	GetPosition() core.Vec3
	Kind() string
}

// Intersection is the result of a successful ray query
type Intersection struct {
	Primitive Primitive // Hit primitive, not owned
	Distance  float64   // Ray parameter, always > Epsilon
	Point     core.Vec3 // World-space hit point
}

func newIntersection(p Primitive, ray core.Ray, t float64) Intersection {
	return Intersection{
		Primitive: p,
		Distance:  t,
		Point:     ray.At(t),
	}
}

// Normal returns the surface normal at the hit point
func (i Intersection) Normal() core.Vec3 {
	return i.Primitive.GetNormal(i.Point)
}
