package server

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/fogleman/gg"

	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/integrator"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// RenderRequest represents a render request from the client
type RenderRequest struct {
	Scene      string                    // Scene id, a preset name or "json:<file>"
	Width      int                       // Image width
	Height     int                       // Image height
	Workers    int                       // Parallel workers (0 = CPU count)
	TileSize   int                       // Tile edge in pixels
	MaxDepth   int                       // Reflection recursion bound
	Reflection integrator.ReflectionMode // Where mirror reflection is accumulated
	Jitter     bool                      // Random sub-pixel ray offsets
	Seed       int64                     // Jitter seed
	Yaw        float64                   // Degrees, applied after the scene camera is built
	Pitch      float64                   // Degrees
	FOV        float64                   // Degrees, 0 keeps the scene's field of view
}

// RenderingPipeline contains the configured scene and raytracer
type RenderingPipeline struct {
	Scene     *scene.Scene
	Raytracer *renderer.Raytracer
}

// handleRender renders one frame and responds with a PNG
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	req, err := s.parseRenderRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	consoleChan, webLogger := s.setupConsoleLogging()
	defer s.console.drain(consoleChan)

	pipeline, err := s.setupRenderingPipeline(req, webLogger)
	if err != nil {
		writeError(w, sceneErrorStatus(err), err.Error())
		return
	}

	buf := renderer.NewFrameBuffer(req.Width, req.Height)
	stats, err := pipeline.Raytracer.Render(r.Context(), pipeline.Scene, pipeline.Scene.Camera, buf)
	if err != nil {
		// The client is gone when its context is cancelled; the status is best effort
		writeError(w, http.StatusServiceUnavailable, "Render error: "+err.Error())
		return
	}

	var encoded bytes.Buffer
	if err := gg.NewContextForRGBA(buf.ToImage()).EncodePNG(&encoded); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to encode image: "+err.Error())
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("X-Render-Time-Ms", strconv.FormatInt(stats.Elapsed.Milliseconds(), 10))
	w.Header().Set("X-Render-Tiles", strconv.Itoa(stats.Tiles))
	w.WriteHeader(http.StatusOK)
	w.Write(encoded.Bytes())
}

// setupConsoleLogging creates console channel and web logger for a render
func (s *Server) setupConsoleLogging() (chan ConsoleMessage, *WebLogger) {
	consoleChan := make(chan ConsoleMessage, 50)
	renderID := fmt.Sprintf("render-%d", time.Now().UnixNano())
	return consoleChan, &WebLogger{renderID: renderID, consoleChan: consoleChan}
}

// setupRenderingPipeline builds the scene, positions its camera and creates the raytracer
func (s *Server) setupRenderingPipeline(req *RenderRequest, logger *WebLogger) (*RenderingPipeline, error) {
	sceneObj, err := s.loadScene(req.Scene, geometry.CameraConfig{})
	if err != nil {
		return nil, err
	}

	// The scene is built per request, so its camera can be moved freely
	camera := sceneObj.Camera
	if req.FOV != 0 {
		camera.SetFOV(geometry.ClampFOV(req.FOV))
	}
	camera.RotateYaw(req.Yaw)
	camera.RotatePitch(req.Pitch)

	integ := integrator.NewWhittedIntegrator(integrator.Config{
		MaxDepth:   req.MaxDepth,
		Reflection: req.Reflection,
	})
	config := renderer.RenderConfig{
		TileSize:   req.TileSize,
		NumWorkers: req.Workers,
		Jitter:     req.Jitter,
		Seed:       req.Seed,
	}

	logger.Printf("Scene %q: %d primitives, %d lights\n", sceneObj.Name, sceneObj.GetPrimitiveCount(), len(sceneObj.Lights))
	return &RenderingPipeline{
		Scene:     sceneObj,
		Raytracer: renderer.NewRaytracer(integ, config, logger),
	}, nil
}

// parseRenderRequest parses request parameters
func (s *Server) parseRenderRequest(r *http.Request) (*RenderRequest, error) {
	req := &RenderRequest{}
	if err := s.parseCommonSceneParams(r, req); err != nil {
		return nil, err
	}

	query := r.URL.Query()
	var err error
	if req.Workers, err = parseIntParam(query, "workers", 0, 0, 256); err != nil {
		return nil, err
	}
	if req.TileSize, err = parseIntParam(query, "tile", 32, 4, 512); err != nil {
		return nil, err
	}
	if req.Jitter, err = parseBoolParam(query, "jitter", false); err != nil {
		return nil, err
	}
	seed, err := parseIntParam(query, "seed", 0, 0, 1<<31-1)
	if err != nil {
		return nil, err
	}
	req.Seed = int64(seed)
	return req, nil
}

// parseCommonSceneParams parses the parameters shared by render and inspect
func (s *Server) parseCommonSceneParams(r *http.Request, req *RenderRequest) error {
	query := r.URL.Query()

	req.Scene = query.Get("scene")
	if req.Scene == "" {
		req.Scene = "default"
	}

	var err error
	if req.Width, err = parseIntParam(query, "width", 400, 1, 2000); err != nil {
		return err
	}
	if req.Height, err = parseIntParam(query, "height", 300, 1, 2000); err != nil {
		return err
	}
	if req.MaxDepth, err = parseIntParam(query, "depth", integrator.DefaultConfig().MaxDepth, 1, 32); err != nil {
		return err
	}
	if req.Reflection, err = integrator.ParseReflectionMode(query.Get("reflection")); err != nil {
		return err
	}
	if req.Yaw, err = parseFloatParam(query, "yaw", 0, -360, 360); err != nil {
		return err
	}
	if req.Pitch, err = parseFloatParam(query, "pitch", 0, -89, 89); err != nil {
		return err
	}
	// Out-of-range values are clamped rather than rejected
	if req.FOV, err = parseFloatParam(query, "fov", 0, 0, 360); err != nil {
		return err
	}
	return nil
}
