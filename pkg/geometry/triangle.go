package geometry

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// Triangle represents a single flat-shaded triangle
type Triangle struct {
	V0, V1, V2 core.Vec3
	Material   material.Material
	normal     core.Vec3 // Cached face normal
}

// NewTriangle creates a new triangle from three vertices.
// The face normal follows the right-hand rule over v0, v1, v2.
func NewTriangle(v0, v1, v2 core.Vec3, mat material.Material) *Triangle {
	t := &Triangle{
		V0:       v0,
		V1:       v1,
		V2:       v2,
		Material: mat,
	}
	t.normal = v1.Subtract(v0).Cross(v2.Subtract(v0)).Normalize()
	return t
}

// Intersect tests if a ray intersects with the triangle using the Möller-Trumbore algorithm
func (t *Triangle) Intersect(ray core.Ray) (Intersection, bool) {
	edge1 := t.V1.Subtract(t.V0)
	edge2 := t.V2.Subtract(t.V0)

	h := ray.Direction.Cross(edge2)
	a := edge1.Dot(h)

	// Ray lies in or parallel to the plane of the triangle
	if math.Abs(a) <= Epsilon {
		return Intersection{}, false
	}

	f := 1.0 / a
	s := ray.Origin.Subtract(t.V0)
	u := f * s.Dot(h)
	if u < 0.0 || u > 1.0 {
		return Intersection{}, false
	}

	q := s.Cross(edge1)
	v := f * ray.Direction.Dot(q)
	if v < 0.0 || u+v > 1.0 {
		return Intersection{}, false
	}

	tParam := f * edge2.Dot(q)
	if tParam <= Epsilon {
		return Intersection{}, false
	}

	return newIntersection(t, ray, tParam), true
}

// GetNormal returns the face normal; triangles are flat shaded
func (t *Triangle) GetNormal(point core.Vec3) core.Vec3 {
	return t.normal
}

// SurfaceColor returns the flat diffuse color; triangles ignore patterns
func (t *Triangle) SurfaceColor(point core.Vec3) core.Color {
	return t.Material.DiffuseColor
}

func (t *Triangle) GetMaterial() *material.Material { return &t.Material }

// GetPosition returns the centroid
func (t *Triangle) GetPosition() core.Vec3 {
	return t.V0.Add(t.V1).Add(t.V2).Multiply(1.0 / 3.0)
}

func (t *Triangle) Kind() string { return "triangle" }
