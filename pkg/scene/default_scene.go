package scene

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// NewDefaultScene creates a default scene with spheres over a checkerboard floor
func NewDefaultScene(cameraOverrides ...geometry.CameraConfig) *Scene {
	// Default camera configuration
	defaultCameraConfig := geometry.CameraConfig{
		Center: core.NewVec3(0, 0.5, -3), // Slightly above the floor, behind the spheres
		LookAt: core.NewVec3(0, 0, 2),
		Up:     core.NewVec3(0, 1, 0),
		VFov:   60.0,
	}

	// Apply any overrides using the reusable merge function
	cameraConfig := defaultCameraConfig
	if len(cameraOverrides) > 0 {
		cameraConfig = geometry.MergeCameraConfig(defaultCameraConfig, cameraOverrides[0])
	}

	s := NewScene("default", cameraConfig)

	// Create materials
	red := material.NewMaterial(core.NewColor(0.9, 0.2, 0.2), core.NewColor(1, 1, 1), 1, 0)
	blue := material.NewMaterial(core.NewColor(0.2, 0.3, 0.9), core.NewColor(0.6, 0.6, 0.6), 1, 0.2)
	mirror := material.NewMirror()
	floor := material.NewDiffuse(core.NewColor(0.9, 0.9, 0.9)).WithCheckerboard(1.0)

	s.Add(
		geometry.NewSphere(core.NewVec3(-1.2, 0, 2.5), 1.0, red),
		geometry.NewSphere(core.NewVec3(1.2, 0, 3.5), 1.0, mirror),
		geometry.NewSphere(core.NewVec3(0.2, -0.6, 1.2), 0.4, blue),
		NewFloor(-1, floor),
	)

	// Two white lights; intensity falls off with distance squared
	s.AddPointLight(core.NewVec3(-3, 4, -1), core.NewColor(20, 20, 20))
	s.AddPointLight(core.NewVec3(3, 3, 0), core.NewColor(10, 10, 12))

	return s
}
