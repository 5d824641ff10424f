package server

import (
	"encoding/json"
	"image/png"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// litSceneJSON mirrors the single sphere preset as a scene file
const litSceneJSON = `{
  "name": "Lit Sphere",
  "group": "Scene Files",
  "camera": {"center": [0, 0, 0], "lookAt": [0, 0, 1], "fov": 90},
  "materials": {"white": {"diffuse": [1, 1, 1]}},
  "spheres": [{"center": [0, 0, 2], "radius": 0.5, "material": "white"}],
  "lights": [{"position": [1, -1, 1.5], "color": [1, 1, 1]}]
}`

func newTestServer(t *testing.T) (*Server, http.Handler) {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "lit.json"), []byte(litSceneJSON), 0644); err != nil {
		t.Fatalf("Failed to write scene file: %v", err)
	}
	s := NewServer(0, dir)
	return s, s.Handler()
}

func get(t *testing.T, handler http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestHandleHealth(t *testing.T) {
	_, handler := newTestServer(t)
	rec := get(t, handler, "/api/health")

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
	var body map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil || body["status"] != "ok" {
		t.Errorf("Expected status ok, got %v (%v)", body, err)
	}
}

func TestHandleScenes(t *testing.T) {
	_, handler := newTestServer(t)
	rec := get(t, handler, "/api/scenes")

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
	var response scene.ScenesResponse
	if err := json.NewDecoder(rec.Body).Decode(&response); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if len(response.Groups) != 2 {
		t.Fatalf("Expected built-in and file groups, got %d groups", len(response.Groups))
	}

	ids := map[string]bool{}
	for _, group := range response.Groups {
		for _, info := range group.Scenes {
			ids[info.ID] = true
		}
	}
	for _, id := range []string{"default", "scenario-a", "json:lit"} {
		if !ids[id] {
			t.Errorf("Expected scene %q to be listed", id)
		}
	}
}

func TestHandleRender(t *testing.T) {
	tests := []struct {
		name  string
		scene string
	}{
		{"preset", "scenario-a"},
		{"scene file", "json:lit"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, handler := newTestServer(t)
			rec := get(t, handler, "/api/render?scene="+tt.scene+"&width=21&height=21&workers=2&tile=8")

			if rec.Code != http.StatusOK {
				t.Fatalf("Expected 200, got %d: %s", rec.Code, rec.Body.String())
			}
			if ct := rec.Header().Get("Content-Type"); ct != "image/png" {
				t.Errorf("Expected image/png, got %q", ct)
			}
			if tiles := rec.Header().Get("X-Render-Tiles"); tiles != "9" {
				t.Errorf("Expected 9 tiles, got %q", tiles)
			}

			img, err := png.Decode(rec.Body)
			if err != nil {
				t.Fatalf("Failed to decode PNG: %v", err)
			}
			if b := img.Bounds(); b.Dx() != 21 || b.Dy() != 21 {
				t.Fatalf("Expected 21x21 image, got %v", b)
			}

			// The light is behind the lit hemisphere, so the center is ambient only
			r, g, b, _ := img.At(10, 10).RGBA()
			if r>>8 != 0x19 || g>>8 != 0x19 || b>>8 != 0x19 {
				t.Errorf("Expected center pixel 0x191919, got (%x,%x,%x)", r>>8, g>>8, b>>8)
			}
			r, g, b, _ = img.At(0, 0).RGBA()
			if r != 0 || g != 0 || b != 0 {
				t.Errorf("Expected black background in the corner, got (%x,%x,%x)", r>>8, g>>8, b>>8)
			}
		})
	}
}

func TestHandleRender_Errors(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		expected int
	}{
		{"unknown preset", "scene=nope", http.StatusNotFound},
		{"missing scene file", "scene=json:missing", http.StatusNotFound},
		{"path traversal", "scene=json:../lit", http.StatusBadRequest},
		{"width too large", "width=5000", http.StatusBadRequest},
		{"width not a number", "width=wide", http.StatusBadRequest},
		{"height too small", "height=0", http.StatusBadRequest},
		{"bad reflection mode", "reflection=sideways", http.StatusBadRequest},
		{"pitch out of range", "pitch=120", http.StatusBadRequest},
		{"bad jitter flag", "jitter=maybe", http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, handler := newTestServer(t)
			query := url.Values{"width": {"8"}, "height": {"8"}}
			override, err := url.ParseQuery(tt.query)
			if err != nil {
				t.Fatalf("Bad test query %q: %v", tt.query, err)
			}
			for key := range override {
				query.Set(key, override.Get(key))
			}
			rec := get(t, handler, "/api/render?"+query.Encode())
			if rec.Code != tt.expected {
				t.Errorf("Expected %d, got %d: %s", tt.expected, rec.Code, rec.Body.String())
			}
			if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
				t.Errorf("Expected JSON error body, got %q", ct)
			}
		})
	}
}

func TestHandleInspect(t *testing.T) {
	_, handler := newTestServer(t)
	rec := get(t, handler, "/api/inspect?scene=scenario-a&width=101&height=101&x=50&y=50")

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var response InspectResponse
	if err := json.NewDecoder(rec.Body).Decode(&response); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}

	if !response.Hit {
		t.Fatal("Expected the center ray to hit the sphere")
	}
	if response.GeometryType != "sphere" || response.MaterialType != "diffuse" {
		t.Errorf("Expected diffuse sphere, got %s %s", response.MaterialType, response.GeometryType)
	}
	if response.Distance < 1.5-1e-9 || response.Distance > 1.5+1e-9 {
		t.Errorf("Expected distance 1.5, got %f", response.Distance)
	}
	if response.Color != "#191919" {
		t.Errorf("Expected color #191919, got %s", response.Color)
	}
	geometryProps, ok := response.Properties["geometry"].(map[string]interface{})
	if !ok || geometryProps["radius"] != 0.5 {
		t.Errorf("Expected radius 0.5 in geometry properties, got %v", response.Properties["geometry"])
	}
}

func TestHandleInspect_Miss(t *testing.T) {
	_, handler := newTestServer(t)
	rec := get(t, handler, "/api/inspect?scene=scenario-a&width=101&height=101&x=0&y=0")

	var response InspectResponse
	if err := json.NewDecoder(rec.Body).Decode(&response); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if response.Hit || response.Color != "#000000" {
		t.Errorf("Expected a miss with black background, got %+v", response)
	}
}

func TestHandleInspect_Errors(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		expected int
	}{
		{"missing x", "y=1", http.StatusBadRequest},
		{"bad y", "x=1&y=top", http.StatusBadRequest},
		{"out of bounds", "x=10&y=1", http.StatusBadRequest},
		{"negative", "x=-1&y=1", http.StatusBadRequest},
		{"unknown scene", "x=1&y=1&scene=nope", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, handler := newTestServer(t)
			rec := get(t, handler, "/api/inspect?width=10&height=10&"+tt.query)
			if rec.Code != tt.expected {
				t.Errorf("Expected %d, got %d: %s", tt.expected, rec.Code, rec.Body.String())
			}
		})
	}
}

func TestHandleConsole(t *testing.T) {
	_, handler := newTestServer(t)

	rec := get(t, handler, "/api/console")
	var empty struct {
		Messages []ConsoleMessage `json:"messages"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&empty); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if len(empty.Messages) != 0 {
		t.Errorf("Expected no messages before rendering, got %d", len(empty.Messages))
	}

	if rec := get(t, handler, "/api/render?scene=scenario-a&width=8&height=8"); rec.Code != http.StatusOK {
		t.Fatalf("Render failed: %d", rec.Code)
	}

	rec = get(t, handler, "/api/console?limit=50")
	var body struct {
		Messages []ConsoleMessage `json:"messages"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if len(body.Messages) == 0 {
		t.Fatal("Expected render log lines in the console")
	}
	if !strings.Contains(body.Messages[0].Message, "scenario-a") {
		t.Errorf("Expected first line to name the scene, got %q", body.Messages[0].Message)
	}

	if rec := get(t, handler, "/api/console?limit=0"); rec.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 for limit=0, got %d", rec.Code)
	}
}

func TestParseParams(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/?n=5&f=2.5&bad=x", nil)
	query := req.URL.Query()

	tests := []struct {
		name    string
		parse   func() (float64, error)
		want    float64
		wantErr bool
	}{
		{"int present", func() (float64, error) { v, err := parseIntParam(query, "n", 1, 0, 10); return float64(v), err }, 5, false},
		{"int default", func() (float64, error) { v, err := parseIntParam(query, "missing", 7, 0, 10); return float64(v), err }, 7, false},
		{"int below min", func() (float64, error) { v, err := parseIntParam(query, "n", 1, 6, 10); return float64(v), err }, 0, true},
		{"int malformed", func() (float64, error) { v, err := parseIntParam(query, "bad", 1, 0, 10); return float64(v), err }, 0, true},
		{"float present", func() (float64, error) { return parseFloatParam(query, "f", 1, 0, 10) }, 2.5, false},
		{"float default", func() (float64, error) { return parseFloatParam(query, "missing", 0.5, 0, 10) }, 0.5, false},
		{"float above max", func() (float64, error) { return parseFloatParam(query, "f", 1, 0, 2) }, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.parse()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Expected error %v, got %v", tt.wantErr, err)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("Expected %g, got %g", tt.want, got)
			}
		})
	}
}
