package geometry

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

const (
	MinFOV = 1.0
	MaxFOV = 179.0
)

// CameraConfig contains all parameters needed to create a camera
type CameraConfig struct {
	Center core.Vec3 // Camera position
	LookAt core.Vec3 // Point the camera is looking at
	Up     core.Vec3 // Up direction (default: 0,1,0)
	VFov   float64   // Vertical field of view in degrees (default: 90)
}

// MergeCameraConfig overlays the non-zero fields of override on base.
// A zero field means "unset", so an override cannot move Center or LookAt
// to the origin; build a full CameraConfig instead when that is needed.
func MergeCameraConfig(base, override CameraConfig) CameraConfig {
	result := base
	if override.Center != (core.Vec3{}) {
		result.Center = override.Center
	}
	if override.LookAt != (core.Vec3{}) {
		result.LookAt = override.LookAt
	}
	if override.Up != (core.Vec3{}) {
		result.Up = override.Up
	}
	if override.VFov != 0 {
		result.VFov = override.VFov
	}
	return result
}

// Camera produces primary ray directions for pixels. It is mutated only
// between frames, never while a render of the same frame is in flight.
type Camera struct {
	Position  core.Vec3
	Direction core.Vec3 // Unit forward vector
	Up        core.Vec3 // Unit, orthogonal to Direction
	FOV       float64   // Vertical field of view in degrees
}

// NewCamera creates a camera from the given configuration
func NewCamera(config CameraConfig) *Camera {
	up := config.Up
	if up.IsZero() {
		up = core.NewVec3(0, 1, 0)
	}
	fov := config.VFov
	if fov == 0 {
		fov = 90
	}

	c := &Camera{
		Position:  config.Center,
		Direction: core.NewVec3(0, 0, 1),
		Up:        up.Normalize(),
		FOV:       fov,
	}
	c.LookAt(config.LookAt)
	c.orthonormalize()
	return c
}

// Right returns the unit vector pointing to the right of the view
func (c *Camera) Right() core.Vec3 {
	return c.Up.Cross(c.Direction).Normalize()
}

// RayDirection returns the world-space direction through the continuous pixel
// coordinate (x, y) of a width×height image. Pixel centres are at index+0.5.
// y grows downwards, so y=0 is the top row.
func (c *Camera) RayDirection(x, y, width, height float64) core.Vec3 {
	halfHeight := math.Tan(c.FOV * math.Pi / 360)
	aspect := width / height

	screenX := (2*x/width - 1) * halfHeight * aspect
	screenY := (1 - 2*y/height) * halfHeight

	return c.Direction.
		Add(c.Up.Multiply(screenY)).
		Add(c.Right().Multiply(screenX)).
		Normalize()
}

// GetRay returns the primary ray through the center of pixel (i, j)
func (c *Camera) GetRay(i, j, width, height int) core.Ray {
	dir := c.RayDirection(float64(i)+0.5, float64(j)+0.5, float64(width), float64(height))
	return core.Ray{Origin: c.Position, Direction: dir}
}

// SetFOV sets the vertical field of view in degrees. The value is not
// clamped here; input layers use ClampFOV.
func (c *Camera) SetFOV(degrees float64) {
	c.FOV = degrees
}

// ClampFOV limits a field of view to [MinFOV, MaxFOV]
func ClampFOV(degrees float64) float64 {
	return max(MinFOV, min(MaxFOV, degrees))
}

// RotateYaw turns the view about the up axis. Positive angles turn right.
func (c *Camera) RotateYaw(degrees float64) {
	q := mgl64.QuatRotate(mgl64.DegToRad(degrees), toMgl(c.Up))
	c.Direction = fromMgl(q.Rotate(toMgl(c.Direction))).Normalize()
	c.orthonormalize()
}

// RotatePitch tilts the view about the right axis. Positive angles look up.
func (c *Camera) RotatePitch(degrees float64) {
	q := mgl64.QuatRotate(mgl64.DegToRad(-degrees), toMgl(c.Right()))
	c.Direction = fromMgl(q.Rotate(toMgl(c.Direction))).Normalize()
	c.Up = fromMgl(q.Rotate(toMgl(c.Up))).Normalize()
	c.orthonormalize()
}

// Translate moves the camera by a world-space offset
func (c *Camera) Translate(delta core.Vec3) {
	c.Position = c.Position.Add(delta)
}

// LookAt points the camera at target, keeping the up vector as close to
// its current direction as possible
func (c *Camera) LookAt(target core.Vec3) {
	dir := target.Subtract(c.Position).Normalize()
	if dir.IsZero() {
		return
	}
	c.Direction = dir
	c.orthonormalize()
}

// orthonormalize removes the component of Up along Direction
func (c *Camera) orthonormalize() {
	up := c.Up.Subtract(c.Direction.Multiply(c.Up.Dot(c.Direction)))
	if up.LengthSquared() < 1e-12 {
		// Up was parallel to the view; pick any perpendicular axis
		helper := core.NewVec3(0, 0, 1)
		if math.Abs(c.Direction.Z) > 0.9 {
			helper = core.NewVec3(1, 0, 0)
		}
		up = helper.Subtract(c.Direction.Multiply(helper.Dot(c.Direction)))
	}
	c.Up = up.Normalize()
}

func toMgl(v core.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{v.X, v.Y, v.Z}
}

func fromMgl(v mgl64.Vec3) core.Vec3 {
	return core.NewVec3(v[0], v[1], v[2])
}
