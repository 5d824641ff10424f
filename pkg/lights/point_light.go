package lights

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// PointLight is an infinitely small light with no falloff of its own.
// Distance attenuation, where used, is applied by the shading model.
type PointLight struct {
	Position core.Vec3
	Color    core.Color
}

// NewPointLight creates a new point light
func NewPointLight(position core.Vec3, color core.Color) *PointLight {
	return &PointLight{Position: position, Color: color}
}

func (pl *PointLight) Type() LightType {
	return LightTypePoint
}

// Sample returns the direction and distance from point to the light
func (pl *PointLight) Sample(point core.Vec3) LightSample {
	toLight := pl.Position.Subtract(point)
	distance := toLight.Length()

	// Degenerate case: shading point coincides with the light
	if distance == 0 {
		return LightSample{
			Point:     pl.Position,
			Direction: core.NewVec3(0, 1, 0),
			Distance:  0,
			Color:     pl.Color,
		}
	}

	return LightSample{
		Point:     pl.Position,
		Direction: toLight.Multiply(1 / distance),
		Distance:  distance,
		Color:     pl.Color,
	}
}

func (pl *PointLight) GetPosition() core.Vec3 { return pl.Position }

func (pl *PointLight) GetColor() core.Color { return pl.Color }
