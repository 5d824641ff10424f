package lights

import "github.com/df07/go-whitted-raytracer/pkg/core"

type LightType string

const (
	LightTypePoint LightType = "point"
)

// Light interface for objects that illuminate a shading point directly
type Light interface {
	Type() LightType

	// Sample returns the light toward a specific point.
	// Direction points FROM the shading point TO the light.
	Sample(point core.Vec3) LightSample

	GetPosition() core.Vec3
	GetColor() core.Color
}

// LightSample contains information about the light arriving at a point
type LightSample struct {
	Point     core.Vec3  // Position of the light
	Direction core.Vec3  // Unit direction from shading point to light
	Distance  float64    // Distance to light
	Color     core.Color // Light color, not attenuated
}
