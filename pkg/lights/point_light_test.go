package lights

import (
	"math"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

func TestPointLight_Sample(t *testing.T) {
	light := NewPointLight(core.NewVec3(0, 5, 0), core.White)

	tests := []struct {
		name        string
		point       core.Vec3
		expectedDir core.Vec3
		expectedD   float64
	}{
		{"directly below", core.NewVec3(0, 1, 0), core.NewVec3(0, 1, 0), 4},
		{"diagonal", core.NewVec3(3, 1, 0), core.NewVec3(-3, 4, 0).Normalize(), 5},
		{"above the light", core.NewVec3(0, 7, 0), core.NewVec3(0, -1, 0), 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sample := light.Sample(tt.point)

			if sample.Direction.Subtract(tt.expectedDir).Length() > 1e-9 {
				t.Errorf("Expected direction %v, got %v", tt.expectedDir, sample.Direction)
			}
			if math.Abs(sample.Distance-tt.expectedD) > 1e-9 {
				t.Errorf("Expected distance %f, got %f", tt.expectedD, sample.Distance)
			}
			if sample.Point != light.Position {
				t.Errorf("Expected sample point at light position, got %v", sample.Point)
			}
			if sample.Color != core.White {
				t.Errorf("Expected unattenuated light color, got %v", sample.Color)
			}
		})
	}
}

func TestPointLight_SampleAtLight(t *testing.T) {
	light := NewPointLight(core.NewVec3(1, 2, 3), core.NewColor(0.5, 0.5, 0.5))
	sample := light.Sample(core.NewVec3(1, 2, 3))

	if sample.Distance != 0 {
		t.Errorf("Expected zero distance, got %f", sample.Distance)
	}
	if math.Abs(sample.Direction.Length()-1) > 1e-12 {
		t.Errorf("Expected unit fallback direction, got %v", sample.Direction)
	}
}

func TestPointLight_Interface(t *testing.T) {
	var light Light = NewPointLight(core.NewVec3(0, 0, 0), core.White)
	if light.Type() != LightTypePoint {
		t.Errorf("Expected point light type, got %s", light.Type())
	}
}
