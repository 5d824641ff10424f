package geometry

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// Corners of a box centered at the origin with half-extents of 1
var boxCorners = []core.Vec3{
	core.NewVec3(-1, -1, -1), // 0: left-bottom-back
	core.NewVec3(1, -1, -1),  // 1: right-bottom-back
	core.NewVec3(1, 1, -1),   // 2: right-top-back
	core.NewVec3(-1, 1, -1),  // 3: left-top-back
	core.NewVec3(-1, -1, 1),  // 4: left-bottom-front
	core.NewVec3(1, -1, 1),   // 5: right-bottom-front
	core.NewVec3(1, 1, 1),    // 6: right-top-front
	core.NewVec3(-1, 1, 1),   // 7: left-top-front
}

// Two triangles per face, wound so every face normal points outward
var boxFaces = []int{
	0, 3, 2, 0, 2, 1, // back (-Z)
	4, 5, 6, 4, 6, 7, // front (+Z)
	0, 4, 7, 0, 7, 3, // left (-X)
	1, 2, 6, 1, 6, 5, // right (+X)
	0, 1, 5, 0, 5, 4, // bottom (-Y)
	3, 7, 6, 3, 6, 2, // top (+Y)
}

// NewBox creates a closed box of 12 triangles.
// Size holds half-extents (so a size of (1,1,1) creates a 2x2x2 box).
// Rotation is in radians around X, Y, Z axes (applied in that order) about the center.
func NewBox(center, size, rotation core.Vec3, mat material.Material) *TriangleMesh {
	corners := make([]core.Vec3, len(boxCorners))
	for i, c := range boxCorners {
		corners[i] = core.NewVec3(c.X*size.X, c.Y*size.Y, c.Z*size.Z)
	}

	vertices := transformVertices(corners, &TriangleMeshOptions{
		Rotation: &rotation,
		Offset:   center,
	})

	triangles := make([]*Triangle, len(boxFaces)/3)
	for i := range triangles {
		triangles[i] = NewTriangle(vertices[boxFaces[i*3]], vertices[boxFaces[i*3+1]], vertices[boxFaces[i*3+2]], mat)
	}
	return &TriangleMesh{triangles: triangles}
}

// NewAxisAlignedBox creates a new axis-aligned box (no rotation)
func NewAxisAlignedBox(center, size core.Vec3, mat material.Material) *TriangleMesh {
	return NewBox(center, size, core.Vec3{}, mat)
}
