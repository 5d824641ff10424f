package renderer

import (
	"fmt"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/integrator"
)

// InspectResult describes what the primary ray through one pixel sees
type InspectResult struct {
	Hit          bool
	Ray          core.Ray
	Intersection geometry.Intersection // Valid only when Hit
	Normal       core.Vec3
	Color        core.Color // Shaded, clamped color of the pixel
}

// Inspect casts the primary ray through the center of pixel (x, y) of a
// width×height image and reports the first surface it hits
func (rt *Raytracer) Inspect(scene integrator.Scene, camera *geometry.Camera, width, height, x, y int) (InspectResult, error) {
	if x < 0 || y < 0 || x >= width || y >= height {
		return InspectResult{}, fmt.Errorf("pixel (%d, %d) outside %dx%d image", x, y, width, height)
	}

	ray := camera.GetRay(x, y, width, height)
	result := InspectResult{
		Ray:   ray,
		Color: rt.integrator.RayColor(ray, scene),
	}

	hit, isHit := scene.IntersectWithin(ray, geometry.Epsilon)
	if !isHit {
		return result, nil
	}

	result.Hit = true
	result.Intersection = hit
	result.Normal = hit.Normal()
	return result, nil
}
