package loaders

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/material"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// Resolution of the procedural textures a scene file can name
const proceduralTextureSize = 256

// SceneFile is the JSON form of a scene
type SceneFile struct {
	Name        string                  `json:"name"`
	Variant     string                  `json:"variant,omitempty"`
	Description string                  `json:"description,omitempty"`
	Group       string                  `json:"group,omitempty"`
	Camera      CameraJSON              `json:"camera"`
	Materials   map[string]MaterialJSON `json:"materials"`
	Spheres     []SphereJSON            `json:"spheres,omitempty"`
	Planes      []PlaneJSON             `json:"planes,omitempty"`
	Triangles   []TriangleJSON          `json:"triangles,omitempty"`
	Quads       []QuadJSON              `json:"quads,omitempty"`
	Boxes       []BoxJSON               `json:"boxes,omitempty"`
	Meshes      []MeshJSON              `json:"meshes,omitempty"`
	Lights      []LightJSON             `json:"lights,omitempty"`
}

// CameraJSON describes the initial camera; zero fields take camera defaults
type CameraJSON struct {
	Center [3]float64 `json:"center"`
	LookAt [3]float64 `json:"lookAt"`
	Up     [3]float64 `json:"up"`
	FOV    float64    `json:"fov"`
}

type MaterialJSON struct {
	Diffuse     [3]float64      `json:"diffuse"`
	Glossy      [3]float64      `json:"glossy"`
	Ambient     *[3]float64     `json:"ambient,omitempty"` // Derived from diffuse when absent
	Kd          *float64        `json:"kd,omitempty"`      // Default 1
	Ks          float64         `json:"ks"`
	Pattern     string          `json:"pattern,omitempty"` // "none", "checker" or "texture"
	CheckerSize float64         `json:"checkerSize,omitempty"`
	Texture     string          `json:"texture,omitempty"` // "uv-debug", "checker", "gradient", "solid" or an image path
	Projection  *ProjectionJSON `json:"projection,omitempty"`
}

type ProjectionJSON struct {
	ScaleU  float64 `json:"scaleU"`
	ScaleV  float64 `json:"scaleV"`
	OffsetU float64 `json:"offsetU"`
	OffsetV float64 `json:"offsetV"`
	MirrorU bool    `json:"mirrorU"`
}

type SphereJSON struct {
	Center   [3]float64 `json:"center"`
	Radius   float64    `json:"radius"`
	Material string     `json:"material"`
}

// PlaneJSON is either normal + distance (n·p = -distance) or normal + point
type PlaneJSON struct {
	Normal   [3]float64  `json:"normal"`
	Distance *float64    `json:"distance,omitempty"`
	Point    *[3]float64 `json:"point,omitempty"`
	Material string      `json:"material"`
}

type TriangleJSON struct {
	Vertices [3][3]float64 `json:"vertices"`
	Material string        `json:"material"`
}

// QuadJSON is a parallelogram facing along u × v
type QuadJSON struct {
	Corner   [3]float64 `json:"corner"`
	U        [3]float64 `json:"u"`
	V        [3]float64 `json:"v"`
	Material string     `json:"material"`
}

// BoxJSON is a box given by half-extents, rotated about its center
type BoxJSON struct {
	Center   [3]float64 `json:"center"`
	Size     [3]float64 `json:"size"`
	Rotation [3]float64 `json:"rotation"` // Radians about X, Y, Z
	Material string     `json:"material"`
}

type MeshJSON struct {
	File     string      `json:"file"`
	Material string      `json:"material"`
	Scale    float64     `json:"scale,omitempty"`
	Rotation *[3]float64 `json:"rotation,omitempty"` // Radians about X, Y, Z
	Offset   [3]float64  `json:"offset"`
}

type LightJSON struct {
	Position [3]float64 `json:"position"`
	Color    [3]float64 `json:"color"`
}

// LoadSceneJSON reads a scene from a JSON file. Texture and mesh paths are
// relative to the file's directory.
func LoadSceneJSON(path string, cameraOverrides ...geometry.CameraConfig) (*scene.Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("open scene: %w", err)
	}

	s, err := ParseSceneJSON(data, filepath.Dir(path), cameraOverrides...)
	if err != nil {
		return nil, fmt.Errorf("scene %s: %w", filepath.Base(path), err)
	}
	return s, nil
}

// ParseSceneJSON builds a scene from JSON data, resolving files against baseDir
func ParseSceneJSON(data []byte, baseDir string, cameraOverrides ...geometry.CameraConfig) (*scene.Scene, error) {
	var file SceneFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("decode scene: %w", err)
	}
	return file.Build(baseDir, cameraOverrides...)
}

// Build constructs the scene described by the file
func (f *SceneFile) Build(baseDir string, cameraOverrides ...geometry.CameraConfig) (*scene.Scene, error) {
	cameraConfig := geometry.CameraConfig{
		Center: toVec3(f.Camera.Center),
		LookAt: toVec3(f.Camera.LookAt),
		Up:     toVec3(f.Camera.Up),
		VFov:   f.Camera.FOV,
	}
	if cameraConfig.LookAt == cameraConfig.Center {
		cameraConfig.LookAt = cameraConfig.Center.Add(core.NewVec3(0, 0, 1))
	}
	for _, override := range cameraOverrides {
		cameraConfig = geometry.MergeCameraConfig(cameraConfig, override)
	}

	name := f.Name
	if name == "" {
		name = "untitled"
	}
	s := scene.NewScene(name, cameraConfig)

	materials := make(map[string]material.Material, len(f.Materials))
	for matName, m := range f.Materials {
		mat, err := m.build(baseDir)
		if err != nil {
			return nil, fmt.Errorf("material %q: %w", matName, err)
		}
		materials[matName] = mat
	}
	lookup := func(kind string, i int, matName string) (material.Material, error) {
		mat, ok := materials[matName]
		if !ok {
			return material.Material{}, fmt.Errorf("%s %d: unknown material %q", kind, i, matName)
		}
		return mat, nil
	}

	for i, sp := range f.Spheres {
		mat, err := lookup("sphere", i, sp.Material)
		if err != nil {
			return nil, err
		}
		if sp.Radius <= 0 {
			return nil, fmt.Errorf("sphere %d: radius must be positive, got %g", i, sp.Radius)
		}
		s.Add(geometry.NewSphere(toVec3(sp.Center), sp.Radius, mat))
	}

	for i, pl := range f.Planes {
		mat, err := lookup("plane", i, pl.Material)
		if err != nil {
			return nil, err
		}
		normal := toVec3(pl.Normal)
		if normal.IsZero() {
			return nil, fmt.Errorf("plane %d: zero normal", i)
		}
		switch {
		case pl.Point != nil:
			s.Add(geometry.NewPlaneThroughPoint(toVec3(*pl.Point), normal, mat))
		case pl.Distance != nil:
			s.Add(geometry.NewPlane(normal, *pl.Distance, mat))
		default:
			return nil, fmt.Errorf("plane %d: needs distance or point", i)
		}
	}

	for i, tri := range f.Triangles {
		mat, err := lookup("triangle", i, tri.Material)
		if err != nil {
			return nil, err
		}
		s.Add(geometry.NewTriangle(toVec3(tri.Vertices[0]), toVec3(tri.Vertices[1]), toVec3(tri.Vertices[2]), mat))
	}

	for i, q := range f.Quads {
		mat, err := lookup("quad", i, q.Material)
		if err != nil {
			return nil, err
		}
		if toVec3(q.U).Cross(toVec3(q.V)).IsZero() {
			return nil, fmt.Errorf("quad %d: edges are parallel", i)
		}
		s.AddMesh(geometry.NewQuad(toVec3(q.Corner), toVec3(q.U), toVec3(q.V), mat))
	}

	for i, b := range f.Boxes {
		mat, err := lookup("box", i, b.Material)
		if err != nil {
			return nil, err
		}
		if b.Size[0] <= 0 || b.Size[1] <= 0 || b.Size[2] <= 0 {
			return nil, fmt.Errorf("box %d: size must be positive, got %v", i, b.Size)
		}
		s.AddMesh(geometry.NewBox(toVec3(b.Center), toVec3(b.Size), toVec3(b.Rotation), mat))
	}

	for i, m := range f.Meshes {
		mat, err := lookup("mesh", i, m.Material)
		if err != nil {
			return nil, err
		}
		options := &geometry.TriangleMeshOptions{Scale: m.Scale, Offset: toVec3(m.Offset)}
		if m.Rotation != nil {
			rotation := toVec3(*m.Rotation)
			options.Rotation = &rotation
		}
		mesh, err := LoadMesh(resolvePath(baseDir, m.File), mat, options)
		if err != nil {
			return nil, fmt.Errorf("mesh %d: %w", i, err)
		}
		s.AddMesh(mesh)
	}

	for _, l := range f.Lights {
		s.AddPointLight(toVec3(l.Position), core.NewColor(l.Color[0], l.Color[1], l.Color[2]))
	}

	return s, nil
}

func (m MaterialJSON) build(baseDir string) (material.Material, error) {
	kd := 1.0
	if m.Kd != nil {
		kd = *m.Kd
	}
	if kd < 0 || kd > 1 || m.Ks < 0 || m.Ks > 1 {
		return material.Material{}, fmt.Errorf("coefficients must be in [0,1], got kd=%g ks=%g", kd, m.Ks)
	}

	mat := material.NewMaterial(toColor(m.Diffuse), toColor(m.Glossy), kd, m.Ks)
	if m.Ambient != nil {
		mat = mat.WithAmbient(toColor(*m.Ambient))
	}

	pattern := strings.ToLower(m.Pattern)
	if pattern == "" && m.Texture != "" {
		pattern = "texture"
	}

	switch pattern {
	case "", "none":
	case "checker", "checkerboard":
		size := m.CheckerSize
		if size == 0 {
			size = 1
		}
		mat = mat.WithCheckerboard(size)
	case "texture":
		texture, err := loadSceneTexture(baseDir, m.Texture, toColor(m.Diffuse))
		if err != nil {
			return material.Material{}, err
		}
		projection := material.DefaultTextureProjection()
		if m.Projection != nil {
			projection = material.TextureProjection{
				ScaleU:  m.Projection.ScaleU,
				ScaleV:  m.Projection.ScaleV,
				OffsetU: m.Projection.OffsetU,
				OffsetV: m.Projection.OffsetV,
				MirrorU: m.Projection.MirrorU,
			}
		}
		mat = mat.WithTexture(texture, projection)
	default:
		return material.Material{}, fmt.Errorf("unknown pattern %q", m.Pattern)
	}
	return mat, nil
}

func loadSceneTexture(baseDir, name string, diffuse core.Color) (material.Sampler, error) {
	switch name {
	case "":
		return nil, fmt.Errorf("texture pattern without a texture")
	case "solid":
		return material.NewSolidColor(diffuse), nil
	case "gradient":
		return material.NewGradientTexture(proceduralTextureSize, proceduralTextureSize, diffuse, core.Black), nil
	case "uv-debug":
		return material.NewUVDebugTexture(proceduralTextureSize, proceduralTextureSize), nil
	case "checker":
		return material.NewCheckerboardTexture(proceduralTextureSize, proceduralTextureSize, proceduralTextureSize/8,
			core.NewColor(0.9, 0.9, 0.9), core.NewColor(0.1, 0.1, 0.1)), nil
	default:
		return LoadTexture(resolvePath(baseDir, name))
	}
}

func resolvePath(baseDir, path string) string {
	if filepath.IsAbs(path) || baseDir == "" {
		return path
	}
	return filepath.Join(baseDir, path)
}

func toVec3(a [3]float64) core.Vec3 {
	return core.NewVec3(a[0], a[1], a[2])
}

func toColor(a [3]float64) core.Color {
	return core.NewColor(a[0], a[1], a[2])
}
