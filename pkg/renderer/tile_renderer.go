package renderer

import (
	"image"
	"math/rand"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/integrator"
)

// TileRenderer handles the actual rendering of individual tiles using an integrator
type TileRenderer struct {
	scene      integrator.Scene
	camera     *geometry.Camera
	integrator integrator.Integrator
	jitter     bool
}

// NewTileRenderer creates a new tile renderer with the given scene and integrator
func NewTileRenderer(scene integrator.Scene, camera *geometry.Camera, integratorInst integrator.Integrator, jitter bool) *TileRenderer {
	return &TileRenderer{
		scene:      scene,
		camera:     camera,
		integrator: integratorInst,
		jitter:     jitter,
	}
}

// RenderTileBounds renders pixels within bounds into buf.
// random is only used when jitter is enabled.
func (tr *TileRenderer) RenderTileBounds(bounds image.Rectangle, buf *FrameBuffer, random *rand.Rand) TileStats {
	width := float64(buf.Width)
	height := float64(buf.Height)

	for j := bounds.Min.Y; j < bounds.Max.Y; j++ {
		for i := bounds.Min.X; i < bounds.Max.X; i++ {
			dx, dy := 0.5, 0.5
			if tr.jitter {
				dx, dy = random.Float64(), random.Float64()
			}

			dir := tr.camera.RayDirection(float64(i)+dx, float64(j)+dy, width, height)
			ray := core.Ray{Origin: tr.camera.Position, Direction: dir}
			buf.Set(i, j, tr.integrator.RayColor(ray, tr.scene).Pack())
		}
	}

	return TileStats{Pixels: bounds.Dx() * bounds.Dy()}
}
