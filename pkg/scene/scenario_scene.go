package scene

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// NewSingleSphereScene creates a white diffuse sphere in front of a camera at
// the origin, lit by one light below and to the right of the view axis
func NewSingleSphereScene(cameraOverrides ...geometry.CameraConfig) *Scene {
	defaultCameraConfig := geometry.CameraConfig{
		Center: core.NewVec3(0, 0, 0),
		LookAt: core.NewVec3(0, 0, 1),
		Up:     core.NewVec3(0, 1, 0),
		VFov:   90.0,
	}

	cameraConfig := defaultCameraConfig
	if len(cameraOverrides) > 0 {
		cameraConfig = geometry.MergeCameraConfig(defaultCameraConfig, cameraOverrides[0])
	}

	s := NewScene("scenario-a", cameraConfig)
	s.Add(geometry.NewSphere(core.NewVec3(0, 0, 2), 0.5, material.NewDiffuse(core.White)))
	s.AddPointLight(core.NewVec3(1, -1, 1.5), core.White)
	return s
}
