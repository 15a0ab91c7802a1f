// Package renderer drives the pixel loop: it partitions the image into
// buckets, renders them on a worker pool over the shared read-only scene,
// and packs the linear result for output.
package renderer

import (
	"math/rand"
	"runtime"
	"sync"
	"time"

	"github.com/tvetanov/go-bucket-raytracer/log"
	"github.com/tvetanov/go-bucket-raytracer/pkg/core"
	"github.com/tvetanov/go-bucket-raytracer/pkg/material"
	"github.com/tvetanov/go-bucket-raytracer/pkg/scene"
)

// Renderer renders a scene into a caller-provided frame buffer
type Renderer struct {
	scene      *scene.Scene
	numWorkers int
	logger     log.Logger
}

// tileTask pairs a tile with its grid ordinal, which seeds the tile's
// random generator so renders are repeatable regardless of scheduling.
type tileTask struct {
	tile Tile
	id   int
}

// New creates a renderer for the given scene. numWorkers <= 0 selects one
// worker per CPU.
func New(sc *scene.Scene, numWorkers int) *Renderer {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	return &Renderer{
		scene:      sc,
		numWorkers: numWorkers,
		logger:     log.New("renderer"),
	}
}

// Render traces every pixel of the frame buffer and returns the render
// statistics. Tiles are distributed over the worker pool through a channel;
// each worker writes only the disjoint rectangles it was handed, so no
// synchronization is needed on the pixel data.
func (r *Renderer) Render(fb *Framebuffer) RenderStats {
	tiles := NewTileGrid(fb.Width, fb.Height, r.scene.Settings.BucketSize)

	r.logger.Debugf("rendering %dx%d: %d tiles on %d workers",
		fb.Width, fb.Height, len(tiles), r.numWorkers)

	tasks := make(chan tileTask, len(tiles))
	for i, tile := range tiles {
		tasks <- tileTask{tile: tile, id: i}
	}
	close(tasks)

	workerStats := make([]WorkerStats, r.numWorkers)
	start := time.Now()

	var wg sync.WaitGroup
	for w := 0; w < r.numWorkers; w++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			stats := &workerStats[workerID]
			stats.ID = workerID
			for task := range tasks {
				tileStart := time.Now()
				rng := rand.New(rand.NewSource(int64(task.id) + 42))
				r.renderTile(fb, task.tile, rng)
				stats.Tiles++
				stats.BusyTime += time.Since(tileStart)
			}
		}(w)
	}
	wg.Wait()

	elapsed := time.Since(start)
	r.logger.Infof("rendered %d tiles in %s", len(tiles), elapsed)

	return RenderStats{
		Width:      fb.Width,
		Height:     fb.Height,
		TotalTiles: len(tiles),
		NumWorkers: r.numWorkers,
		RenderTime: elapsed,
		Workers:    workerStats,
	}
}

// renderTile runs the sequential pixel loop for one bucket
func (r *Renderer) renderTile(fb *Framebuffer, tile Tile, rng *rand.Rand) {
	sc := r.scene
	for y := tile.Y; y < tile.Y+tile.H; y++ {
		for x := tile.X; x < tile.X+tile.W; x++ {
			ray := sc.Camera.GenerateRay(fb.Width, fb.Height, x, y)

			var idata core.IntersectionData
			if sc.Intersect(ray, &idata, false, false, core.InfiniteT) {
				fb.Set(x, y, material.ShadeHit(sc, ray, idata, 0, rng))
			} else {
				fb.Set(x, y, sc.Background())
			}
		}
	}
}
