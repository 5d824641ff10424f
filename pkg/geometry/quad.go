package geometry

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// NewQuad creates a parallelogram from a corner and two edge vectors, split
// into two triangles. The face normal is u × v.
func NewQuad(corner, u, v core.Vec3, mat material.Material) *TriangleMesh {
	p1 := corner.Add(u)
	p2 := p1.Add(v)
	p3 := corner.Add(v)

	return &TriangleMesh{triangles: []*Triangle{
		NewTriangle(corner, p1, p2, mat),
		NewTriangle(corner, p2, p3, mat),
	}}
}
