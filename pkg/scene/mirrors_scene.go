package scene

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// NewMirrorsScene places a sphere between two parallel mirror walls.
// Each bounce between the walls is one level of recursion, so the number
// of visible copies is bounded by the integrator's maximum depth.
func NewMirrorsScene(cameraOverrides ...geometry.CameraConfig) *Scene {
	defaultCameraConfig := geometry.CameraConfig{
		Center: core.NewVec3(0, 0.8, -2),
		LookAt: core.NewVec3(0, 0, 4),
		Up:     core.NewVec3(0, 1, 0),
		VFov:   75.0,
	}

	cameraConfig := defaultCameraConfig
	if len(cameraOverrides) > 0 {
		cameraConfig = geometry.MergeCameraConfig(defaultCameraConfig, cameraOverrides[0])
	}

	s := NewScene("mirrors", cameraConfig)

	green := material.NewMaterial(core.NewColor(0.2, 0.8, 0.3), core.NewColor(1, 1, 1), 1, 0)
	// A mirror that keeps a little of its own tint
	tinted := material.NewMaterial(core.NewColor(0.05, 0.05, 0.1), core.Color{}, 1, 0.9)
	red := material.NewMaterial(core.NewColor(0.8, 0.15, 0.1), core.NewColor(0.5, 0.5, 0.5), 1, 0)
	floor := material.NewDiffuse(core.NewColor(0.8, 0.8, 0.8)).WithCheckerboard(0.5)

	s.Add(
		geometry.NewSphere(core.NewVec3(0, -0.3, 4), 0.7, green),
		NewFloor(-1, floor),
		geometry.NewPlane(core.NewVec3(1, 0, 0), 2.5, tinted),  // x = -2.5, facing +x
		geometry.NewPlane(core.NewVec3(-1, 0, 0), 2.5, tinted), // x = 2.5, facing -x
	)

	// A turned cube in front of the sphere shows its back faces in the mirrors
	s.AddMesh(geometry.NewBox(core.NewVec3(1.1, -0.6, 2.5), core.NewVec3(0.4, 0.4, 0.4), core.NewVec3(0, math.Pi/6, 0), red))

	s.AddPointLight(core.NewVec3(0, 3, 1), core.NewColor(15, 15, 15))

	return s
}
