package loaders

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// MeshData is an indexed triangle list as read from a mesh file
type MeshData struct {
	Vertices []core.Vec3
	Faces    []int // Triangle indices (3 per triangle)
}

// LoadMeshData reads a .ply, .gltf or .glb file by extension
func LoadMeshData(path string) (*MeshData, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".ply":
		return LoadPLY(path)
	case ".gltf", ".glb":
		return LoadGLTF(path)
	default:
		return nil, fmt.Errorf("unsupported mesh format %q", filepath.Ext(path))
	}
}

// LoadMesh reads a mesh file into flat-shaded triangles with one material
func LoadMesh(path string, mat material.Material, options *geometry.TriangleMeshOptions) (*geometry.TriangleMesh, error) {
	data, err := LoadMeshData(path)
	if err != nil {
		return nil, err
	}
	mesh, err := geometry.NewTriangleMesh(data.Vertices, data.Faces, mat, options)
	if err != nil {
		return nil, fmt.Errorf("invalid mesh %s: %w", path, err)
	}
	return mesh, nil
}
