package renderer

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// TileFunc renders one tile and reports its statistics
type TileFunc func(ctx context.Context, tile *Tile) (TileStats, error)

// WorkerPool renders tiles in parallel. Tiles are handed out over a
// channel; each worker renders whole tiles, so pixel writes never overlap.
type WorkerPool struct {
	numWorkers int
}

// NewWorkerPool creates a worker pool with the specified number of workers.
// Zero or negative means one worker per CPU.
func NewWorkerPool(numWorkers int) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	return &WorkerPool{numWorkers: numWorkers}
}

// GetNumWorkers returns the number of workers in the pool
func (wp *WorkerPool) GetNumWorkers() int {
	return wp.numWorkers
}

// Run renders every tile with fn. It returns per-tile statistics indexed by
// tile position, or the first error. Cancelling ctx stops workers between tiles.
func (wp *WorkerPool) Run(ctx context.Context, tiles []*Tile, fn TileFunc) ([]TileStats, error) {
	results := make([]TileStats, len(tiles))
	taskQueue := make(chan int)

	g, ctx := errgroup.WithContext(ctx)

	// Producer
	g.Go(func() error {
		defer close(taskQueue)
		for i := range tiles {
			select {
			case taskQueue <- i:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		return nil
	})

	for w := 0; w < wp.numWorkers; w++ {
		g.Go(func() error {
			for i := range taskQueue {
				if err := ctx.Err(); err != nil {
					return err
				}
				stats, err := fn(ctx, tiles[i])
				if err != nil {
					return err
				}
				// Each index is written by exactly one worker
				results[i] = stats
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
