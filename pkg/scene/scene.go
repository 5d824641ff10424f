package scene

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// Scene contains all the elements needed for rendering.
// It is built once and only read while a frame is rendering.
type Scene struct {
	Name         string
	Camera       *geometry.Camera
	Primitives   []geometry.Primitive // Scanned linearly, in insertion order
	Lights       []lights.Light
	CameraConfig geometry.CameraConfig
}

// NewScene creates an empty scene with a camera built from cameraConfig
func NewScene(name string, cameraConfig geometry.CameraConfig) *Scene {
	return &Scene{
		Name:         name,
		Camera:       geometry.NewCamera(cameraConfig),
		Primitives:   make([]geometry.Primitive, 0),
		Lights:       make([]lights.Light, 0),
		CameraConfig: cameraConfig,
	}
}

// Add appends primitives to the scene
func (s *Scene) Add(primitives ...geometry.Primitive) {
	s.Primitives = append(s.Primitives, primitives...)
}

// AddMesh flattens a triangle mesh into the scene
func (s *Scene) AddMesh(mesh *geometry.TriangleMesh) {
	s.Add(mesh.Primitives()...)
}

// AddLight appends a light to the scene
func (s *Scene) AddLight(light lights.Light) {
	s.Lights = append(s.Lights, light)
}

// AddPointLight adds a point light to the scene
func (s *Scene) AddPointLight(position core.Vec3, color core.Color) {
	s.AddLight(lights.NewPointLight(position, color))
}

// GetLights returns the lights in the scene
func (s *Scene) GetLights() []lights.Light {
	return s.Lights
}

// GetPrimitiveCount returns the number of primitives in the scene
func (s *Scene) GetPrimitiveCount() int {
	return len(s.Primitives)
}

// Intersect returns the nearest hit along the ray
func (s *Scene) Intersect(ray core.Ray) (geometry.Intersection, bool) {
	return s.IntersectWithin(ray, geometry.Epsilon)
}

// IntersectWithin returns the nearest hit with distance strictly greater
// than epsilon. On equal distances the earlier primitive wins.
func (s *Scene) IntersectWithin(ray core.Ray, epsilon float64) (geometry.Intersection, bool) {
	var closest geometry.Intersection
	found := false

	for _, p := range s.Primitives {
		hit, ok := p.Intersect(ray)
		if !ok || hit.Distance <= epsilon {
			continue
		}
		if !found || hit.Distance < closest.Distance {
			closest = hit
			found = true
		}
	}

	return closest, found
}

// IsInShadow reports whether any primitive lies along direction from point
// at a distance in (epsilon, maxDistance). It stops at the first such hit.
func (s *Scene) IsInShadow(point, direction core.Vec3, epsilon, maxDistance float64) bool {
	shadowRay := core.Ray{Origin: point, Direction: direction}
	for _, p := range s.Primitives {
		hit, ok := p.Intersect(shadowRay)
		if ok && hit.Distance > epsilon && hit.Distance < maxDistance {
			return true
		}
	}
	return false
}

// NewFloor creates a horizontal plane at height y with its normal pointing up
func NewFloor(y float64, mat material.Material) *geometry.Plane {
	// n·p = -d with n = +y gives y = -d
	return geometry.NewPlane(core.NewVec3(0, 1, 0), -y, mat)
}
