package loaders

import (
	"fmt"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// LoadGLTF opens a .gltf or .glb file and merges the triangles of every
// mesh primitive. Node transforms are not applied; materials are ignored.
func LoadGLTF(path string) (*MeshData, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("gltf open %q: %w", path, err)
	}
	return meshDataFromDocument(doc)
}

func meshDataFromDocument(doc *gltf.Document) (*MeshData, error) {
	mesh := &MeshData{}

	for mi, gm := range doc.Meshes {
		for pi, prim := range gm.Primitives {
			if prim.Mode != gltf.PrimitiveTriangles {
				// Points, lines and strips have no triangle list
				continue
			}
			if err := appendGLTFPrimitive(doc, prim, mesh); err != nil {
				return nil, fmt.Errorf("gltf: mesh %d prim %d: %w", mi, pi, err)
			}
		}
	}

	if len(mesh.Faces) == 0 {
		return nil, fmt.Errorf("gltf: no triangle primitives")
	}
	return mesh, nil
}

// appendGLTFPrimitive adds one primitive's positions and indices to mesh
func appendGLTFPrimitive(doc *gltf.Document, prim *gltf.Primitive, mesh *MeshData) error {
	posIdx, ok := prim.Attributes["POSITION"]
	if !ok {
		return fmt.Errorf("no POSITION attribute")
	}
	if posIdx < 0 || posIdx >= len(doc.Accessors) {
		return fmt.Errorf("POSITION accessor %d out of range", posIdx)
	}
	positions, err := modeler.ReadPosition(doc, doc.Accessors[posIdx], nil)
	if err != nil {
		return fmt.Errorf("positions: %w", err)
	}

	base := len(mesh.Vertices)
	for _, p := range positions {
		mesh.Vertices = append(mesh.Vertices, core.NewVec3(float64(p[0]), float64(p[1]), float64(p[2])))
	}

	if prim.Indices == nil {
		// Non-indexed: every three consecutive vertices form a triangle
		for i := 0; i+2 < len(positions); i += 3 {
			mesh.Faces = append(mesh.Faces, base+i, base+i+1, base+i+2)
		}
		return nil
	}

	if *prim.Indices < 0 || *prim.Indices >= len(doc.Accessors) {
		return fmt.Errorf("indices accessor %d out of range", *prim.Indices)
	}
	indices, err := modeler.ReadIndices(doc, doc.Accessors[*prim.Indices], nil)
	if err != nil {
		return fmt.Errorf("indices: %w", err)
	}
	if len(indices)%3 != 0 {
		return fmt.Errorf("index count %d is not a multiple of 3", len(indices))
	}
	for _, idx := range indices {
		mesh.Faces = append(mesh.Faces, base+int(idx))
	}
	return nil
}
