package scene

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// NewTextureScene creates a scene demonstrating patterns on planes.
// Spheres in the scene keep their flat diffuse color.
func NewTextureScene(cameraOverrides ...geometry.CameraConfig) *Scene {
	return newTextureScene(textureCameraConfig(cameraOverrides...), material.NewUVDebugTexture(256, 256))
}

// NewTextureSceneWithImage is NewTextureScene with the back wall showing a
// caller-supplied texture, typically an image loaded from disk
func NewTextureSceneWithImage(wall material.Sampler, cameraOverrides ...geometry.CameraConfig) *Scene {
	return newTextureScene(textureCameraConfig(cameraOverrides...), wall)
}

func textureCameraConfig(cameraOverrides ...geometry.CameraConfig) geometry.CameraConfig {
	defaultCameraConfig := geometry.CameraConfig{
		Center: core.NewVec3(0, 1, -3),
		LookAt: core.NewVec3(0, 0.5, 3),
		Up:     core.NewVec3(0, 1, 0),
		VFov:   60.0,
	}

	if len(cameraOverrides) > 0 {
		return geometry.MergeCameraConfig(defaultCameraConfig, cameraOverrides[0])
	}
	return defaultCameraConfig
}

func newTextureScene(cameraConfig geometry.CameraConfig, wall material.Sampler) *Scene {
	s := NewScene("textured", cameraConfig)

	// Create procedural textures
	tiles := material.NewCheckerboardTexture(256, 256, 32,
		core.NewColor(0.9, 0.9, 0.9), // White
		core.NewColor(0.2, 0.2, 0.8), // Blue
	)

	floorMat := material.NewDiffuse(core.White).
		WithTexture(tiles, material.TextureProjection{ScaleU: 4, ScaleV: 4})
	wallMat := material.NewDiffuse(core.White).
		WithTexture(wall, material.TextureProjection{ScaleU: 6, ScaleV: 6, OffsetU: 0.5, MirrorU: true})

	s.Add(
		NewFloor(-1, floorMat),
		geometry.NewPlane(core.NewVec3(0, 0, -1), 8, wallMat), // z = 8, facing the camera
		geometry.NewSphere(core.NewVec3(-1, 0, 4), 1.0, material.NewMirror()),
		geometry.NewSphere(core.NewVec3(1.3, -0.4, 3), 0.6, material.NewDiffuse(core.NewColor(0.8, 0.6, 0.2)).WithCheckerboard(0.1)),
	)

	s.AddPointLight(core.NewVec3(0, 4, 0), core.NewColor(25, 25, 25))

	return s
}
