package server

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/material"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
)

// InspectResponse represents the JSON response for object inspection
type InspectResponse struct {
	Hit          bool                   `json:"hit"`
	MaterialType string                 `json:"materialType,omitempty"`
	GeometryType string                 `json:"geometryType,omitempty"`
	Point        [3]float64             `json:"point"`
	Normal       [3]float64             `json:"normal"`
	Distance     float64                `json:"distance"`
	Color        string                 `json:"color"` // Shaded pixel as #rrggbb
	Properties   map[string]interface{} `json:"properties,omitempty"`
}

func vecJSON(v core.Vec3) [3]float64 {
	return [3]float64{v.X, v.Y, v.Z}
}

func hexColor(c core.Color) string {
	return fmt.Sprintf("#%06x", c.Pack())
}

// extractMaterialInfo describes a material's reflectance parameters
func (s *Server) extractMaterialInfo(mat *material.Material) (string, map[string]interface{}) {
	properties := map[string]interface{}{
		"diffuse":             hexColor(mat.DiffuseColor),
		"glossy":              hexColor(mat.GlossyColor),
		"ambient":             hexColor(mat.AmbientColor),
		"diffuseCoefficient":  mat.DiffuseCoefficient,
		"specularCoefficient": mat.SpecularCoefficient,
		"pattern":             mat.Pattern.String(),
	}

	switch mat.Pattern {
	case material.PatternCheckerboard:
		properties["checkerSize"] = mat.CheckerSize
	case material.PatternTexture:
		properties["projection"] = map[string]interface{}{
			"scaleU":  mat.Projection.ScaleU,
			"scaleV":  mat.Projection.ScaleV,
			"offsetU": mat.Projection.OffsetU,
			"offsetV": mat.Projection.OffsetV,
			"mirrorU": mat.Projection.MirrorU,
		}
		if tex, ok := mat.Texture.(*material.ImageTexture); ok {
			properties["textureSize"] = [2]int{tex.Width, tex.Height}
		}
	}

	switch {
	case mat.SpecularCoefficient >= 1 && mat.DiffuseCoefficient == 0:
		return "mirror", properties
	case mat.IsReflective():
		return "reflective", properties
	default:
		return "diffuse", properties
	}
}

// extractGeometryInfo extracts detailed geometry information
func (s *Server) extractGeometryInfo(primitive geometry.Primitive) (string, map[string]interface{}) {
	properties := make(map[string]interface{})

	switch geom := primitive.(type) {
	case *geometry.Sphere:
		properties["center"] = vecJSON(geom.Center)
		properties["radius"] = geom.Radius
	case *geometry.Plane:
		properties["normal"] = vecJSON(geom.Normal)
		properties["distance"] = geom.Distance
	case *geometry.Triangle:
		properties["vertices"] = [3][3]float64{vecJSON(geom.V0), vecJSON(geom.V1), vecJSON(geom.V2)}
		properties["normal"] = vecJSON(geom.GetNormal(geom.V0))
	case nil:
		return "unknown", properties
	}
	return primitive.Kind(), properties
}

// inspectResponse converts a renderer inspection into its JSON form
func (s *Server) inspectResponse(result renderer.InspectResult) InspectResponse {
	response := InspectResponse{Hit: result.Hit, Color: hexColor(result.Color)}
	if !result.Hit {
		return response
	}

	hit := result.Intersection
	materialType, materialProps := s.extractMaterialInfo(hit.Primitive.GetMaterial())
	geometryType, geometryProps := s.extractGeometryInfo(hit.Primitive)

	response.MaterialType = materialType
	response.GeometryType = geometryType
	response.Point = vecJSON(hit.Point)
	response.Normal = vecJSON(result.Normal)
	response.Distance = hit.Distance
	response.Properties = map[string]interface{}{
		"material": materialProps,
		"geometry": geometryProps,
		"surface":  hexColor(hit.Primitive.SurfaceColor(hit.Point)),
	}
	return response
}

// handleInspect handles ray casting inspection requests
func (s *Server) handleInspect(w http.ResponseWriter, r *http.Request) {
	inspectReq := &RenderRequest{}
	if err := s.parseCommonSceneParams(r, inspectReq); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid scene parameters: "+err.Error())
		return
	}

	pixelX, err := strconv.Atoi(r.URL.Query().Get("x"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid x coordinate")
		return
	}
	pixelY, err := strconv.Atoi(r.URL.Query().Get("y"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid y coordinate")
		return
	}
	if pixelX < 0 || pixelX >= inspectReq.Width || pixelY < 0 || pixelY >= inspectReq.Height {
		writeError(w, http.StatusBadRequest, "Pixel coordinates out of bounds")
		return
	}

	consoleChan, webLogger := s.setupConsoleLogging()
	defer s.console.drain(consoleChan)

	pipeline, err := s.setupRenderingPipeline(inspectReq, webLogger)
	if err != nil {
		writeError(w, sceneErrorStatus(err), err.Error())
		return
	}

	result, err := pipeline.Raytracer.Inspect(pipeline.Scene, pipeline.Scene.Camera,
		inspectReq.Width, inspectReq.Height, pixelX, pixelY)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, s.inspectResponse(result))
}
