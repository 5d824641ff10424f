package material

import (
	"math"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

func TestNewMaterial_DerivesAmbient(t *testing.T) {
	diffuse := core.NewColor(0.8, 0.4, 0.2)
	m := NewMaterial(diffuse, core.White, 0.5, 0)

	expected := diffuse.Multiply(AmbientFactor * 0.5)
	if m.AmbientColor != expected {
		t.Errorf("Expected ambient %v, got %v", expected, m.AmbientColor)
	}
	if m.IsReflective() {
		t.Error("Expected material with zero specular coefficient to be non-reflective")
	}

	explicit := core.NewColor(0.3, 0.3, 0.3)
	if got := m.WithAmbient(explicit).AmbientColor; got != explicit {
		t.Errorf("Expected explicit ambient %v, got %v", explicit, got)
	}
	if m.AmbientColor != expected {
		t.Error("WithAmbient must not modify the receiver")
	}
}

func TestNewMirror(t *testing.T) {
	m := NewMirror()
	if !m.IsReflective() {
		t.Error("Expected mirror to be reflective")
	}
	if m.DiffuseColor != (core.Color{}) || m.AmbientColor != (core.Color{}) {
		t.Errorf("Expected mirror to have no diffuse or ambient, got %v / %v", m.DiffuseColor, m.AmbientColor)
	}
}

func TestChecker(t *testing.T) {
	tests := []struct {
		name     string
		uv       core.Vec2
		size     float64
		expected float64
	}{
		{"origin square", core.NewVec2(0.5, 0.5), 1, 1},
		{"neighbour along u", core.NewVec2(1.5, 0.5), 1, 0},
		{"neighbour along v", core.NewVec2(0.5, 1.5), 1, 0},
		{"diagonal", core.NewVec2(1.5, 1.5), 1, 1},
		{"negative u", core.NewVec2(-0.5, 0.5), 1, 0},
		{"negative both", core.NewVec2(-0.5, -0.5), 1, 1},
		{"larger squares", core.NewVec2(1.5, 0.5), 2, 1},
		{"non-positive size falls back to one", core.NewVec2(1.5, 0.5), 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Checker(tt.uv, tt.size); got != tt.expected {
				t.Errorf("Expected %f, got %f", tt.expected, got)
			}
		})
	}
}

func TestTextureProjection_Project(t *testing.T) {
	tests := []struct {
		name       string
		projection TextureProjection
		uv         core.Vec2
		u, v       float64
	}{
		{"identity", DefaultTextureProjection(), core.NewVec2(0.25, 0.75), 0.25, 0.75},
		{"wraps", DefaultTextureProjection(), core.NewVec2(3.25, -0.25), 0.25, 0.75},
		{"scaled", TextureProjection{ScaleU: 4, ScaleV: 2}, core.NewVec2(1, 1), 0.25, 0.5},
		{"offset", TextureProjection{ScaleU: 1, ScaleV: 1, OffsetU: 0.5}, core.NewVec2(0.25, 0), 0.75, 0},
		{"mirrored", TextureProjection{ScaleU: 1, ScaleV: 1, MirrorU: true}, core.NewVec2(0.25, 0.5), 0.75, 0.5},
		{"zero scale treated as one", TextureProjection{}, core.NewVec2(0.5, 0.5), 0.5, 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, v := tt.projection.Project(tt.uv)
			if math.Abs(u-tt.u) > 1e-12 || math.Abs(v-tt.v) > 1e-12 {
				t.Errorf("Expected (%f,%f), got (%f,%f)", tt.u, tt.v, u, v)
			}
			if u < 0 || u >= 1 || v < 0 || v >= 1 {
				t.Errorf("Projected UV (%f,%f) outside [0,1)", u, v)
			}
		})
	}
}

func TestMaterial_DiffuseAt(t *testing.T) {
	red := core.NewColor(1, 0, 0)

	plain := NewDiffuse(red)
	if got := plain.DiffuseAt(core.NewVec2(1.5, 0.5)); got != red {
		t.Errorf("Expected flat diffuse %v, got %v", red, got)
	}

	checker := NewDiffuse(red).WithCheckerboard(1)
	if got := checker.DiffuseAt(core.NewVec2(0.5, 0.5)); got != red {
		t.Errorf("Expected white square to keep diffuse %v, got %v", red, got)
	}
	if got := checker.DiffuseAt(core.NewVec2(1.5, 0.5)); got.R != 0 || got.G != 0 || got.B != 0 {
		t.Errorf("Expected black square, got %v", got)
	}

	var sampledU, sampledV float64
	green := core.NewColor(0, 1, 0)
	sampler := SamplerFunc(func(u, v float64) core.Color {
		sampledU, sampledV = u, v
		return green
	})
	textured := NewDiffuse(red).WithTexture(sampler, TextureProjection{ScaleU: 2, ScaleV: 2})
	if got := textured.DiffuseAt(core.NewVec2(1, 3)); got != green {
		t.Errorf("Expected sampled color %v, got %v", green, got)
	}
	if math.Abs(sampledU-0.5) > 1e-12 || math.Abs(sampledV-0.5) > 1e-12 {
		t.Errorf("Expected sampler called with (0.5,0.5), got (%f,%f)", sampledU, sampledV)
	}

	missing := NewDiffuse(red)
	missing.Pattern = PatternTexture
	if got := missing.DiffuseAt(core.NewVec2(0, 0)); got != red {
		t.Errorf("Expected texture pattern without sampler to fall back to diffuse, got %v", got)
	}
}
