package renderer

import "time"

// WorkerStats records what a single worker did during a render
type WorkerStats struct {
	ID       int
	Tiles    int
	BusyTime time.Duration
}

// RenderStats summarizes a completed render
type RenderStats struct {
	Width, Height int
	TotalTiles    int
	NumWorkers    int
	RenderTime    time.Duration
	Workers       []WorkerStats
}
