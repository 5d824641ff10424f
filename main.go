package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fogleman/gg"

	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/integrator"
	"github.com/df07/go-whitted-raytracer/pkg/loaders"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// options holds the parsed command line
type options struct {
	Scene      string
	File       string
	Texture    string
	Width      int
	Height     int
	Workers    int
	TileSize   int
	Jitter     bool
	Seed       int64
	MaxDepth   int
	Reflection integrator.ReflectionMode
	Yaw        float64
	Pitch      float64
	FOV        float64
	Out        string
}

func main() {
	opts, err := parseFlags(os.Args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	if err := run(context.Background(), opts); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// parseFlags parses command line arguments into options
func parseFlags(args []string) (options, error) {
	var opts options
	var reflection string

	fs := flag.NewFlagSet("raytracer", flag.ContinueOnError)
	fs.StringVar(&opts.Scene, "scene", "default", "Built-in scene: "+strings.Join(scene.Names(), ", "))
	fs.StringVar(&opts.File, "file", "", "JSON scene file (overrides -scene)")
	fs.StringVar(&opts.Texture, "texture", "", "Image shown on the back wall of the textured scene")
	fs.IntVar(&opts.Width, "width", 640, "Image width in pixels")
	fs.IntVar(&opts.Height, "height", 480, "Image height in pixels")
	fs.IntVar(&opts.Workers, "workers", 0, "Number of parallel workers (0 = CPU count)")
	fs.IntVar(&opts.TileSize, "tile", renderer.DefaultRenderConfig().TileSize, "Tile size in pixels")
	fs.BoolVar(&opts.Jitter, "jitter", false, "Jitter primary rays inside each pixel")
	fs.Int64Var(&opts.Seed, "seed", 0, "Random seed for jitter")
	fs.IntVar(&opts.MaxDepth, "depth", integrator.DefaultConfig().MaxDepth, "Maximum reflection depth")
	fs.StringVar(&reflection, "reflection", "per-pixel", "Mirror reflection mode: per-pixel or per-light")
	fs.Float64Var(&opts.Yaw, "yaw", 0, "Camera yaw in degrees")
	fs.Float64Var(&opts.Pitch, "pitch", 0, "Camera pitch in degrees")
	fs.Float64Var(&opts.FOV, "fov", 0, "Vertical field of view in degrees (0 = scene default)")
	fs.StringVar(&opts.Out, "out", "", "Output PNG path (default output/<scene>/render_<timestamp>.png)")

	if err := fs.Parse(args); err != nil {
		return opts, err
	}

	if opts.Width <= 0 || opts.Height <= 0 {
		return opts, fmt.Errorf("image size must be positive, got %dx%d", opts.Width, opts.Height)
	}
	if opts.MaxDepth <= 0 {
		return opts, fmt.Errorf("depth must be positive, got %d", opts.MaxDepth)
	}
	mode, err := integrator.ParseReflectionMode(reflection)
	if err != nil {
		return opts, err
	}
	opts.Reflection = mode
	return opts, nil
}

// createScene builds the scene named by the options
func createScene(opts options) (*scene.Scene, error) {
	if opts.File != "" {
		return loaders.LoadSceneJSON(opts.File)
	}
	if opts.Texture != "" {
		if opts.Scene != "textured" {
			return nil, fmt.Errorf("-texture only applies to the textured scene, not %q", opts.Scene)
		}
		wall, err := loaders.LoadTexture(opts.Texture)
		if err != nil {
			return nil, err
		}
		return scene.NewTextureSceneWithImage(wall), nil
	}
	return scene.Create(opts.Scene)
}

// outputPath returns the PNG path for a render started at the given time
func outputPath(opts options, now time.Time) string {
	if opts.Out != "" {
		return opts.Out
	}
	name := opts.Scene
	if opts.File != "" {
		name = strings.TrimSuffix(filepath.Base(opts.File), filepath.Ext(opts.File))
	}
	return filepath.Join("output", name, fmt.Sprintf("render_%s.png", now.Format("20060102_150405")))
}

// run renders one frame and writes it as a PNG
func run(ctx context.Context, opts options) error {
	logger := renderer.NewDefaultLogger()

	selectedScene, err := createScene(opts)
	if err != nil {
		return err
	}
	logger.Printf("Using scene %q: %d primitives, %d lights\n",
		selectedScene.Name, selectedScene.GetPrimitiveCount(), len(selectedScene.Lights))

	camera := selectedScene.Camera
	if opts.FOV != 0 {
		camera.SetFOV(geometry.ClampFOV(opts.FOV))
	}
	camera.RotateYaw(opts.Yaw)
	camera.RotatePitch(opts.Pitch)

	integ := integrator.NewWhittedIntegrator(integrator.Config{
		MaxDepth:   opts.MaxDepth,
		Reflection: opts.Reflection,
	})
	raytracer := renderer.NewRaytracer(integ, renderer.RenderConfig{
		TileSize:   opts.TileSize,
		NumWorkers: opts.Workers,
		Jitter:     opts.Jitter,
		Seed:       opts.Seed,
	}, logger)

	buf := renderer.NewFrameBuffer(opts.Width, opts.Height)
	if _, err := raytracer.Render(ctx, selectedScene, camera, buf); err != nil {
		return err
	}

	filename := outputPath(opts, time.Now())
	if err := os.MkdirAll(filepath.Dir(filename), 0755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}
	if err := gg.SavePNG(filename, buf.ToImage()); err != nil {
		return fmt.Errorf("saving PNG: %w", err)
	}

	logger.Printf("Render saved as %s\n", filename)
	return nil
}
