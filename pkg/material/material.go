package material

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// AmbientFactor is the fraction of the diffuse color used as ambient light
// when a material does not set its ambient color explicitly
const AmbientFactor = 0.1

// PatternKind selects how a surface resolves its diffuse color
type PatternKind int

const (
	PatternNone PatternKind = iota
	PatternCheckerboard
	PatternTexture
)

// String returns the pattern name
func (p PatternKind) String() string {
	switch p {
	case PatternCheckerboard:
		return "checkerboard"
	case PatternTexture:
		return "texture"
	default:
		return "none"
	}
}

// Material holds the reflectance parameters of a single surface.
// A material is owned by exactly one primitive and must not be modified
// once the scene has been built.
type Material struct {
	DiffuseColor        core.Color
	GlossyColor         core.Color
	AmbientColor        core.Color
	DiffuseCoefficient  float64 // [0,1], scales the derived ambient term
	SpecularCoefficient float64 // [0,1], 0 means no mirror reflection

	Pattern     PatternKind
	CheckerSize float64           // Edge length of one checker square in world units
	Texture     Sampler           // Used when Pattern is PatternTexture
	Projection  TextureProjection // Planar coordinates to texture UV
}

// NewMaterial creates a material with its ambient color derived from the diffuse color
func NewMaterial(diffuse, glossy core.Color, diffuseCoefficient, specularCoefficient float64) Material {
	return Material{
		DiffuseColor:        diffuse,
		GlossyColor:         glossy,
		AmbientColor:        diffuse.Multiply(AmbientFactor * diffuseCoefficient),
		DiffuseCoefficient:  diffuseCoefficient,
		SpecularCoefficient: specularCoefficient,
		CheckerSize:         1,
		Projection:          DefaultTextureProjection(),
	}
}

// NewDiffuse creates an opaque, non-reflective material without highlights
func NewDiffuse(diffuse core.Color) Material {
	return NewMaterial(diffuse, core.Color{}, 1, 0)
}

// NewMirror creates a pure mirror: no diffuse, no ambient, full reflection
func NewMirror() Material {
	return NewMaterial(core.Color{}, core.Color{}, 0, 1)
}

// WithAmbient returns a copy of the material with an explicit ambient color
func (m Material) WithAmbient(ambient core.Color) Material {
	m.AmbientColor = ambient
	return m
}

// WithCheckerboard returns a copy of the material using a checkerboard pattern
func (m Material) WithCheckerboard(size float64) Material {
	m.Pattern = PatternCheckerboard
	m.CheckerSize = size
	return m
}

// WithTexture returns a copy of the material sampling the given texture
func (m Material) WithTexture(texture Sampler, projection TextureProjection) Material {
	m.Pattern = PatternTexture
	m.Texture = texture
	m.Projection = projection
	return m
}

// IsReflective reports whether the material casts mirror reflection rays
func (m *Material) IsReflective() bool {
	return m.SpecularCoefficient != 0
}

// DiffuseAt resolves the diffuse color for planar surface coordinates (u, v).
// Only planar primitives call this; everything else uses DiffuseColor directly.
func (m *Material) DiffuseAt(uv core.Vec2) core.Color {
	switch m.Pattern {
	case PatternCheckerboard:
		return m.DiffuseColor.Multiply(Checker(uv, m.CheckerSize))
	case PatternTexture:
		if m.Texture == nil {
			return m.DiffuseColor
		}
		tu, tv := m.Projection.Project(uv)
		return m.Texture.Sample(tu, tv)
	default:
		return m.DiffuseColor
	}
}
