package scene

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// NewTriangleMeshScene creates a scene showcasing flat-shaded triangle geometry
func NewTriangleMeshScene(cameraOverrides ...geometry.CameraConfig) *Scene {
	cameraConfig := setupTriangleMeshCamera(cameraOverrides...)
	s := NewScene("triangles", cameraConfig)

	// Add lighting
	s.AddPointLight(core.NewVec3(-2, 4, -1), core.NewColor(18, 18, 18))
	s.AddPointLight(core.NewVec3(3, 2, 1), core.NewColor(6, 5, 4))

	// Add ground plane
	s.Add(NewFloor(0, material.NewDiffuse(core.NewColor(0.7, 0.7, 0.7)).WithCheckerboard(1.0)))

	addTriangleMeshGeometry(s)

	return s
}

// setupTriangleMeshCamera configures the camera for the triangle mesh scene
func setupTriangleMeshCamera(cameraOverrides ...geometry.CameraConfig) geometry.CameraConfig {
	defaultCameraConfig := geometry.CameraConfig{
		Center: core.NewVec3(0, 2, -4),
		LookAt: core.NewVec3(0, 0.8, 2),
		Up:     core.NewVec3(0, 1, 0),
		VFov:   55.0,
	}

	if len(cameraOverrides) > 0 {
		return geometry.MergeCameraConfig(defaultCameraConfig, cameraOverrides[0])
	}
	return defaultCameraConfig
}

// addTriangleMeshGeometry adds a rotated pyramid and a standalone mirror triangle
func addTriangleMeshGeometry(s *Scene) {
	orange := material.NewMaterial(core.NewColor(0.9, 0.5, 0.1), core.NewColor(1, 1, 1), 1, 0)

	// Square pyramid with its apex at +y, wound so face normals point outwards
	vertices := []core.Vec3{
		core.NewVec3(-1, 0, -1),
		core.NewVec3(1, 0, -1),
		core.NewVec3(1, 0, 1),
		core.NewVec3(-1, 0, 1),
		core.NewVec3(0, 1.5, 0),
	}
	faces := []int{
		0, 4, 1,
		1, 4, 2,
		2, 4, 3,
		3, 4, 0,
		0, 1, 2,
		0, 2, 3,
	}

	rotation := core.NewVec3(0, math.Pi/4, 0)
	pyramid, err := geometry.NewTriangleMesh(vertices, faces, orange, &geometry.TriangleMeshOptions{
		Rotation: &rotation,
		Offset:   core.NewVec3(-0.8, 0, 3),
	})
	if err != nil {
		// Static geometry above; an error here is a programming mistake
		panic(err)
	}
	s.AddMesh(pyramid)

	s.Add(geometry.NewTriangle(
		core.NewVec3(1.0, 0, 4.5),
		core.NewVec3(2.8, 0, 3.0),
		core.NewVec3(1.9, 2.2, 3.8),
		material.NewMirror(),
	))
}
