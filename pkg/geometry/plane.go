package geometry

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// Plane represents an infinite plane. A point p lies on the plane when
// Normal·p = -Distance.
type Plane struct {
	Normal   core.Vec3 // Unit normal
	Distance float64   // Signed distance term of the plane equation
	Material material.Material

	uAxis, vAxis core.Vec3 // Tangent basis for planar coordinates
}

// NewPlane creates a plane from a normal and signed distance.
// The normal does not need to be unit length; both terms are rescaled.
func NewPlane(normal core.Vec3, distance float64, mat material.Material) *Plane {
	length := normal.Length()
	p := &Plane{
		Normal:   normal.Multiply(1 / length),
		Distance: distance / length,
		Material: mat,
	}
	p.computeTangents()
	return p
}

// NewPlaneThroughPoint creates a plane containing point with the given normal
func NewPlaneThroughPoint(point, normal core.Vec3, mat material.Material) *Plane {
	n := normal.Normalize()
	return NewPlane(n, -n.Dot(point), mat)
}

// computeTangents picks a tangent basis so that a floor (normal +Y) maps
// to u=x, v=z and a wall facing -Z maps to u=x, v=y
func (p *Plane) computeTangents() {
	helper := core.NewVec3(0, 0, 1)
	if math.Abs(p.Normal.Z) >= 0.9 {
		helper = core.NewVec3(0, 1, 0)
	}
	p.uAxis = p.Normal.Cross(helper).Normalize()
	p.vAxis = p.uAxis.Cross(p.Normal)
}

// Intersect tests if a ray intersects with the plane
func (p *Plane) Intersect(ray core.Ray) (Intersection, bool) {
	denominator := p.Normal.Dot(ray.Direction)

	// Ray is parallel to the plane
	if math.Abs(denominator) <= Epsilon {
		return Intersection{}, false
	}

	t := (-p.Normal.Dot(ray.Origin) - p.Distance) / denominator
	if t <= Epsilon {
		return Intersection{}, false
	}

	return newIntersection(p, ray, t), true
}

// GetNormal returns the plane normal, which is the same everywhere
func (p *Plane) GetNormal(point core.Vec3) core.Vec3 {
	return p.Normal
}

// PlanarCoords projects a point onto the plane's tangent basis
func (p *Plane) PlanarCoords(point core.Vec3) core.Vec2 {
	return core.NewVec2(point.Dot(p.uAxis), point.Dot(p.vAxis))
}

// SurfaceColor resolves the material pattern at a point on the plane
func (p *Plane) SurfaceColor(point core.Vec3) core.Color {
	return p.Material.DiffuseAt(p.PlanarCoords(point))
}

func (p *Plane) GetMaterial() *material.Material { return &p.Material }

// GetPosition returns the point of the plane closest to the origin
func (p *Plane) GetPosition() core.Vec3 {
	return p.Normal.Multiply(-p.Distance)
}

func (p *Plane) Kind() string { return "plane" }
