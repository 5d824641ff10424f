package renderer

import "time"

// TileStats contains statistics about a single rendered tile
type TileStats struct {
	Pixels int // Pixels written
}

// RenderStats contains statistics about a rendered frame
type RenderStats struct {
	TotalPixels     int           // Total number of pixels rendered
	Tiles           int           // Number of tiles
	Workers         int           // Number of workers used
	Elapsed         time.Duration // Wall time of the render
	PixelsPerSecond float64
}

// aggregateStats combines per-tile statistics into frame statistics
func aggregateStats(tiles []TileStats, workers int, elapsed time.Duration) RenderStats {
	stats := RenderStats{
		Tiles:   len(tiles),
		Workers: workers,
		Elapsed: elapsed,
	}
	for _, ts := range tiles {
		stats.TotalPixels += ts.Pixels
	}
	if elapsed > 0 {
		stats.PixelsPerSecond = float64(stats.TotalPixels) / elapsed.Seconds()
	}
	return stats
}
