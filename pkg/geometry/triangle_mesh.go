package geometry

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// TriangleMesh is a set of flat triangles built from shared vertices.
// It is flattened into individual primitives when added to a scene.
type TriangleMesh struct {
	triangles []*Triangle
}

// TriangleMeshOptions contains optional parameters for triangle mesh creation
type TriangleMeshOptions struct {
	Materials []material.Material // Optional per-triangle materials
	Rotation  *core.Vec3          // Optional rotation in radians, applied X then Y then Z
	Center    *core.Vec3          // Optional center point for rotation
	Scale     float64             // Optional uniform scale (0 means 1)
	Offset    core.Vec3           // Translation applied last
}

// NewTriangleMesh creates a new triangle mesh from vertices and face indices.
// Each group of 3 indices in faces forms one triangle.
func NewTriangleMesh(vertices []core.Vec3, faces []int, mat material.Material, options *TriangleMeshOptions) (*TriangleMesh, error) {
	if len(faces)%3 != 0 {
		return nil, fmt.Errorf("face index count %d is not a multiple of 3", len(faces))
	}

	numTriangles := len(faces) / 3
	if options != nil && options.Materials != nil && len(options.Materials) != numTriangles {
		return nil, fmt.Errorf("got %d materials for %d triangles", len(options.Materials), numTriangles)
	}

	workingVertices := vertices
	if options != nil {
		workingVertices = transformVertices(vertices, options)
	}

	triangles := make([]*Triangle, numTriangles)
	for i := 0; i < numTriangles; i++ {
		i0, i1, i2 := faces[i*3], faces[i*3+1], faces[i*3+2]
		for _, idx := range []int{i0, i1, i2} {
			if idx < 0 || idx >= len(workingVertices) {
				return nil, fmt.Errorf("face %d: vertex index %d out of range [0,%d)", i, idx, len(workingVertices))
			}
		}

		triangleMaterial := mat
		if options != nil && options.Materials != nil {
			triangleMaterial = options.Materials[i]
		}
		triangles[i] = NewTriangle(workingVertices[i0], workingVertices[i1], workingVertices[i2], triangleMaterial)
	}

	return &TriangleMesh{triangles: triangles}, nil
}

// transformVertices applies scale, rotation about the center and offset
func transformVertices(vertices []core.Vec3, options *TriangleMeshOptions) []core.Vec3 {
	scale := options.Scale
	if scale == 0 {
		scale = 1
	}

	rotation := mgl64.Ident3()
	if options.Rotation != nil {
		r := *options.Rotation
		rotation = mgl64.Rotate3DZ(r.Z).Mul3(mgl64.Rotate3DY(r.Y)).Mul3(mgl64.Rotate3DX(r.X))
	}

	var center core.Vec3
	if options.Center != nil {
		center = *options.Center
	}

	out := make([]core.Vec3, len(vertices))
	for i, vertex := range vertices {
		local := vertex.Subtract(center).Multiply(scale)
		rotated := rotation.Mul3x1(mgl64.Vec3{local.X, local.Y, local.Z})
		out[i] = core.NewVec3(rotated[0], rotated[1], rotated[2]).Add(center).Add(options.Offset)
	}
	return out
}

// GetTriangleCount returns the number of triangles in this mesh
func (tm *TriangleMesh) GetTriangleCount() int {
	return len(tm.triangles)
}

// GetTriangles returns the individual triangles
func (tm *TriangleMesh) GetTriangles() []*Triangle {
	return tm.triangles
}

// Primitives returns the triangles as scene primitives
func (tm *TriangleMesh) Primitives() []Primitive {
	prims := make([]Primitive, len(tm.triangles))
	for i, t := range tm.triangles {
		prims[i] = t
	}
	return prims
}
