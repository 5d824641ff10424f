package geometry

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// Sphere represents a sphere shape
type Sphere struct {
	Center   core.Vec3
	Radius   float64
	Material material.Material
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64, mat material.Material) *Sphere {
	return &Sphere{
		Center:   center,
		Radius:   radius,
		Material: mat,
	}
}

// Intersect solves |o + t·d - c|² = r² for the smallest admissible t.
// When the near root is inadmissible (the origin is inside the sphere or
// on its surface) the far root is used instead.
func (s *Sphere) Intersect(ray core.Ray) (Intersection, bool) {
	oc := ray.Origin.Subtract(s.Center)

	// Quadratic equation coefficients: at² + bt + c = 0
	a := ray.Direction.Dot(ray.Direction)
	b := 2 * oc.Dot(ray.Direction)
	c := oc.Dot(oc) - s.Radius*s.Radius

	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return Intersection{}, false
	}

	sqrtD := math.Sqrt(discriminant)
	root := (-b - sqrtD) / (2 * a)
	if root <= Epsilon {
		root = (-b + sqrtD) / (2 * a)
		if root <= Epsilon {
			return Intersection{}, false
		}
	}

	return newIntersection(s, ray, root), true
}

// GetNormal returns the outward normal at a point on the sphere
func (s *Sphere) GetNormal(point core.Vec3) core.Vec3 {
	return point.Subtract(s.Center).Normalize()
}

// SurfaceColor returns the flat diffuse color; spheres ignore patterns
func (s *Sphere) SurfaceColor(point core.Vec3) core.Color {
	return s.Material.DiffuseColor
}

func (s *Sphere) GetMaterial() *material.Material { return &s.Material }
func (s *Sphere) GetPosition() core.Vec3         { return s.Center }
func (s *Sphere) Kind() string                   { return "sphere" }
