package scene

import (
	"math"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

func emptyScene() *Scene {
	return NewScene("test", geometry.CameraConfig{LookAt: core.NewVec3(0, 0, 1)})
}

func grey() material.Material {
	return material.NewDiffuse(core.NewColor(0.5, 0.5, 0.5))
}

func TestScene_IntersectNearest(t *testing.T) {
	s := emptyScene()
	far := geometry.NewSphere(core.NewVec3(0, 0, 10), 1, grey())
	near := geometry.NewSphere(core.NewVec3(0, 0, 5), 1, grey())
	s.Add(far, near)

	hit, ok := s.Intersect(core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 1)))
	if !ok {
		t.Fatal("Expected hit")
	}
	if hit.Primitive != near {
		t.Errorf("Expected nearest sphere regardless of insertion order")
	}
	if math.Abs(hit.Distance-4) > 1e-9 {
		t.Errorf("Expected distance 4, got %f", hit.Distance)
	}
}

func TestScene_IntersectMiss(t *testing.T) {
	s := emptyScene()
	if _, ok := s.Intersect(core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 1))); ok {
		t.Error("Expected empty scene to miss")
	}

	s.Add(geometry.NewSphere(core.NewVec3(0, 0, 5), 1, grey()))
	if _, ok := s.Intersect(core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0))); ok {
		t.Error("Expected ray pointing away to miss")
	}
}

func TestScene_IntersectTieBreak(t *testing.T) {
	s := emptyScene()
	first := geometry.NewPlane(core.NewVec3(0, 0, -1), 3, grey())
	second := geometry.NewPlane(core.NewVec3(0, 0, -1), 3, grey())
	s.Add(first, second)

	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 1))
	for i := 0; i < 3; i++ {
		hit, ok := s.Intersect(ray)
		if !ok || hit.Primitive != first {
			t.Fatalf("Expected first inserted primitive to win the tie")
		}
	}
}

func TestScene_IntersectWithinEpsilon(t *testing.T) {
	s := emptyScene()
	s.Add(geometry.NewSphere(core.NewVec3(0, 0, 2), 1, grey()))
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 1))

	if _, ok := s.IntersectWithin(ray, 0.5); !ok {
		t.Error("Expected hit at distance 1 with epsilon 0.5")
	}
	// Each primitive reports only its nearest root, which is filtered out here
	hit, ok := s.IntersectWithin(ray, 1.5)
	if ok {
		t.Errorf("Expected no hit beyond epsilon 1.5, got distance %f", hit.Distance)
	}
}

func TestScene_IsInShadow(t *testing.T) {
	s := emptyScene()
	s.Add(geometry.NewSphere(core.NewVec3(0, 2, 0), 0.5, grey()))

	point := core.NewVec3(0, 0, 0)
	up := core.NewVec3(0, 1, 0)

	tests := []struct {
		name        string
		direction   core.Vec3
		maxDistance float64
		expected    bool
	}{
		{"occluder before light", up, 5, true},
		{"light before occluder", up, 1, false},
		{"light exactly at occluder surface", up, 1.5, false},
		{"different direction", core.NewVec3(1, 0, 0), 5, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			first := s.IsInShadow(point, tt.direction, geometry.Epsilon, tt.maxDistance)
			second := s.IsInShadow(point, tt.direction, geometry.Epsilon, tt.maxDistance)
			if first != tt.expected {
				t.Errorf("Expected shadowed=%t, got %t", tt.expected, first)
			}
			if first != second {
				t.Errorf("Shadow query not idempotent: %t then %t", first, second)
			}
		})
	}
}

func TestScene_IsInShadowIgnoresOwnSurface(t *testing.T) {
	s := emptyScene()
	floor := NewFloor(0, grey())
	s.Add(floor)

	// A point on the floor looking at a light above it is not self-shadowed
	if s.IsInShadow(core.NewVec3(1, 0, 1), core.NewVec3(0, 1, 0), geometry.Epsilon, 10) {
		t.Error("Expected floor point not to shadow itself")
	}
}

func TestScene_AddMeshAndLights(t *testing.T) {
	s := emptyScene()
	mesh, err := geometry.NewTriangleMesh(
		[]core.Vec3{core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0), core.NewVec3(0, 1, 0), core.NewVec3(1, 1, 0)},
		[]int{0, 1, 2, 1, 3, 2},
		grey(),
		nil,
	)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	s.AddMesh(mesh)
	s.AddPointLight(core.NewVec3(0, 5, 0), core.White)

	if s.GetPrimitiveCount() != 2 {
		t.Errorf("Expected mesh flattened into 2 primitives, got %d", s.GetPrimitiveCount())
	}
	if len(s.GetLights()) != 1 {
		t.Errorf("Expected 1 light, got %d", len(s.GetLights()))
	}
}

func TestNewFloor(t *testing.T) {
	floor := NewFloor(-1, grey())
	hit, ok := floor.Intersect(core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0)))
	if !ok {
		t.Fatal("Expected floor hit")
	}
	if math.Abs(hit.Point.Y+1) > 1e-9 {
		t.Errorf("Expected floor at y=-1, got %v", hit.Point)
	}
}
