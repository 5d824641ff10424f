package renderer

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/integrator"
)

// ErrBufferSize is returned when a frame buffer's pixel slice does not
// match its dimensions
var ErrBufferSize = errors.New("frame buffer size mismatch")

// RenderConfig contains rendering configuration
type RenderConfig struct {
	TileSize   int   // Size of each square tile in pixels
	NumWorkers int   // Number of parallel workers (0 = use CPU count)
	Jitter     bool  // Offset each primary ray randomly inside its pixel
	Seed       int64 // Base seed for per-tile jitter
}

// DefaultRenderConfig returns sensible default values
func DefaultRenderConfig() RenderConfig {
	return RenderConfig{
		TileSize:   32,
		NumWorkers: 0,
		Jitter:     false,
		Seed:       0,
	}
}

// Raytracer renders frames by running the integrator for every pixel
type Raytracer struct {
	integrator integrator.Integrator
	config     RenderConfig
	logger     core.Logger
}

// NewRaytracer creates a new raytracer. A nil logger discards output.
func NewRaytracer(integratorInst integrator.Integrator, config RenderConfig, logger core.Logger) *Raytracer {
	if config.TileSize <= 0 {
		config.TileSize = DefaultRenderConfig().TileSize
	}
	if logger == nil {
		logger = core.NopLogger{}
	}
	return &Raytracer{
		integrator: integratorInst,
		config:     config,
		logger:     logger,
	}
}

// Render draws one frame of scene as seen from camera into buf.
// The scene and camera must not change until Render returns.
// On error the contents of buf are unspecified.
func (rt *Raytracer) Render(ctx context.Context, scene integrator.Scene, camera *geometry.Camera, buf *FrameBuffer) (RenderStats, error) {
	if buf.Width <= 0 || buf.Height <= 0 || len(buf.Pixels) != buf.Width*buf.Height {
		return RenderStats{}, fmt.Errorf("%w: %dx%d with %d pixels", ErrBufferSize, buf.Width, buf.Height, len(buf.Pixels))
	}

	start := time.Now()
	tiles := NewTileGrid(buf.Width, buf.Height, rt.config.TileSize, rt.config.Seed)
	pool := NewWorkerPool(rt.config.NumWorkers)
	tileRenderer := NewTileRenderer(scene, camera, rt.integrator, rt.config.Jitter)

	rt.logger.Printf("Rendering %dx%d: %d tiles on %d workers\n", buf.Width, buf.Height, len(tiles), pool.GetNumWorkers())

	tileStats, err := pool.Run(ctx, tiles, func(ctx context.Context, tile *Tile) (TileStats, error) {
		return tileRenderer.RenderTileBounds(tile.Bounds, buf, tile.Random), nil
	})
	if err != nil {
		rt.logger.Printf("Render aborted: %v\n", err)
		return RenderStats{}, fmt.Errorf("render aborted: %w", err)
	}

	stats := aggregateStats(tileStats, pool.GetNumWorkers(), time.Since(start))
	rt.logger.Printf("Rendered %d pixels in %v\n", stats.TotalPixels, stats.Elapsed.Round(time.Millisecond))
	return stats, nil
}
