package integrator

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
)

// WhittedIntegrator implements recursive local illumination: diffuse,
// Phong highlights, hard shadows from point lights and mirror reflection
type WhittedIntegrator struct {
	config Config
}

// NewWhittedIntegrator creates a new Whitted integrator.
// Zero-valued fields of config fall back to DefaultConfig.
func NewWhittedIntegrator(config Config) *WhittedIntegrator {
	defaults := DefaultConfig()
	if config.MaxDepth <= 0 {
		config.MaxDepth = defaults.MaxDepth
	}
	if config.GlossyExponent <= 0 {
		config.GlossyExponent = defaults.GlossyExponent
	}
	if config.Epsilon <= 0 {
		config.Epsilon = defaults.Epsilon
	}
	return &WhittedIntegrator{config: config}
}

// Config returns the integrator's effective configuration
func (wi *WhittedIntegrator) Config() Config {
	return wi.config
}

// RayColor traces a primary ray. A miss returns the background color.
func (wi *WhittedIntegrator) RayColor(ray core.Ray, scene Scene) core.Color {
	return wi.trace(ray, scene, 0)
}

func (wi *WhittedIntegrator) trace(ray core.Ray, scene Scene, depth int) core.Color {
	hit, isHit := scene.IntersectWithin(ray, wi.config.Epsilon)
	if !isHit {
		return wi.config.Background
	}
	return wi.Shade(hit, ray.Direction, scene, depth)
}

// Shade computes the color at a hit seen along viewDir (the incoming ray
// direction). Reflection rays are only cast while depth < MaxDepth.
func (wi *WhittedIntegrator) Shade(hit geometry.Intersection, viewDir core.Vec3, scene Scene, depth int) core.Color {
	mat := hit.Primitive.GetMaterial()
	point := hit.Point
	normal := hit.Normal()
	surface := hit.Primitive.SurfaceColor(point)

	reflective := mat.IsReflective() && depth < wi.config.MaxDepth

	// The reflected color does not depend on the light, so it is traced at
	// most once even when it is accumulated per light
	var reflected core.Color
	traced := false
	reflectedColor := func() core.Color {
		if !traced {
			dir := viewDir.Reflect(normal).Normalize()
			reflected = wi.trace(core.Ray{Origin: point, Direction: dir}, scene, depth+1)
			traced = true
		}
		return reflected
	}

	var color core.Color
	for _, light := range scene.GetLights() {
		sample := light.Sample(point)
		if sample.Distance <= 0 {
			// Light sits on the surface; direction and falloff are undefined
			continue
		}

		diffuse := math.Max(normal.Dot(sample.Direction), 0)
		visible := 1.0
		if scene.IsInShadow(point, sample.Direction, wi.config.Epsilon, sample.Distance) {
			diffuse = 0
			visible = 0
		}

		attenuation := 1 / (sample.Distance * sample.Distance)
		lit := surface.Multiply(diffuse).
			Add(wi.glossy(sample.Direction, normal, viewDir, mat.GlossyColor).Multiply(visible)).
			MultiplyColor(sample.Color).
			Multiply(attenuation)

		color = color.Add(lit).Add(mat.AmbientColor)

		if reflective && wi.config.Reflection == ReflectionPerLight {
			color = color.Add(reflectedColor().Multiply(mat.SpecularCoefficient * attenuation))
		}
	}

	if reflective && wi.config.Reflection == ReflectionPerPixel {
		color = color.Add(reflectedColor().Multiply(mat.SpecularCoefficient))
	}

	return color.Clamp(0, 1)
}

// glossy returns the Phong highlight for light arriving along lightDir
func (wi *WhittedIntegrator) glossy(lightDir, normal, viewDir core.Vec3, glossyColor core.Color) core.Color {
	// Lights behind the surface give no highlight even when unshadowed
	if glossyColor == (core.Color{}) || normal.Dot(lightDir) <= 0 {
		return core.Color{}
	}
	r := lightDir.MirrorAbout(normal)
	term := math.Max(r.Dot(viewDir.Negate()), 0)
	if term == 0 {
		return core.Color{}
	}
	return glossyColor.Multiply(math.Pow(term, wi.config.GlossyExponent))
}
