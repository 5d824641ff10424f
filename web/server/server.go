package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/loaders"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// Server handles web requests for the raytracer
type Server struct {
	port     int
	sceneDir string // Directory scanned for JSON scene files
	console  *consoleLog
}

// NewServer creates a new web server
func NewServer(port int, sceneDir string) *Server {
	return &Server{
		port:     port,
		sceneDir: sceneDir,
		console:  newConsoleLog(consoleHistory),
	}
}

// Handler returns the HTTP routes of the server
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	// Serve static files
	mux.Handle("/", http.FileServer(http.Dir("static/")))

	// API endpoints
	mux.HandleFunc("/api/health", s.handleHealth)
	mux.HandleFunc("/api/scenes", s.handleScenes)
	mux.HandleFunc("/api/render", s.handleRender)
	mux.HandleFunc("/api/inspect", s.handleInspect)
	mux.HandleFunc("/api/console", s.handleConsole)
	return mux
}

// Start starts the web server
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.port)
	log.Printf("Starting web server on http://localhost%s", addr)
	return http.ListenAndServe(addr, s.Handler())
}

// handleHealth provides a simple health check endpoint
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleScenes lists built-in presets and JSON scene files
func (s *Server) handleScenes(w http.ResponseWriter, r *http.Request) {
	response, err := scene.ListAllScenes(s.sceneDir)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list scenes: "+err.Error())
		return
	}
	writeJSON(w, http.StatusOK, response)
}

// handleConsole returns recent render log lines
func (s *Server) handleConsole(w http.ResponseWriter, r *http.Request) {
	limit, err := parseIntParam(r.URL.Query(), "limit", consoleHistory, 1, consoleHistory)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"messages": s.console.recent(limit)})
}

// errBadSceneName rejects JSON scene ids that would escape the scene directory
var errBadSceneName = errors.New("invalid scene name")

// loadScene resolves a built-in preset or a "json:<file>" scene id
func (s *Server) loadScene(name string, camera geometry.CameraConfig) (*scene.Scene, error) {
	file, isJSON := strings.CutPrefix(name, "json:")
	if !isJSON {
		return scene.Create(name, camera)
	}

	if file == "" || file != filepath.Base(file) || strings.HasPrefix(file, ".") {
		return nil, fmt.Errorf("%w: %q", errBadSceneName, name)
	}
	return loaders.LoadSceneJSON(filepath.Join(s.sceneDir, file+".json"), camera)
}

// sceneErrorStatus maps scene resolution errors to HTTP status codes
func sceneErrorStatus(err error) int {
	switch {
	case errors.Is(err, scene.ErrUnknownScene), errors.Is(err, os.ErrNotExist):
		return http.StatusNotFound
	case errors.Is(err, errBadSceneName):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// parseIntParam parses an integer parameter from URL query with validation
func parseIntParam(values url.Values, key string, defaultValue, min, max int) (int, error) {
	if value := values.Get(key); value != "" {
		parsed, err := strconv.Atoi(value)
		if err != nil {
			return 0, fmt.Errorf("invalid %s: %s", key, value)
		}
		if parsed < min || parsed > max {
			return 0, fmt.Errorf("%s must be between %d and %d, got: %d", key, min, max, parsed)
		}
		return parsed, nil
	}
	return defaultValue, nil
}

// parseFloatParam parses a float parameter from URL query with validation
func parseFloatParam(values url.Values, key string, defaultValue, min, max float64) (float64, error) {
	if value := values.Get(key); value != "" {
		parsed, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid %s: %s", key, value)
		}
		if parsed < min || parsed > max {
			return 0, fmt.Errorf("%s must be between %g and %g, got: %g", key, min, max, parsed)
		}
		return parsed, nil
	}
	return defaultValue, nil
}

// parseBoolParam parses a boolean parameter from URL query
func parseBoolParam(values url.Values, key string, defaultValue bool) (bool, error) {
	if value := values.Get(key); value != "" {
		parsed, err := strconv.ParseBool(value)
		if err != nil {
			return false, fmt.Errorf("invalid %s: %s", key, value)
		}
		return parsed, nil
	}
	return defaultValue, nil
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
