package renderer

import (
	"github.com/tvetanov/go-bucket-raytracer/pkg/core"
)

// Tile is one rectangular unit of parallel work
type Tile struct {
	X, Y, W, H int
}

// NewTileGrid partitions a width-by-height image into bucketSize-square
// tiles. The last row and column may be narrower. The tiles cover every
// pixel exactly once.
func NewTileGrid(width, height, bucketSize int) []Tile {
	if bucketSize <= 0 {
		bucketSize = core.DefaultBucketSize
	}

	tilesX := (width + bucketSize - 1) / bucketSize
	tilesY := (height + bucketSize - 1) / bucketSize

	tiles := make([]Tile, 0, tilesX*tilesY)
	for ty := 0; ty < tilesY; ty++ {
		for tx := 0; tx < tilesX; tx++ {
			x := tx * bucketSize
			y := ty * bucketSize
			w := bucketSize
			if x+w > width {
				w = width - x
			}
			h := bucketSize
			if y+h > height {
				h = height - y
			}
			tiles = append(tiles, Tile{X: x, Y: y, W: w, H: h})
		}
	}
	return tiles
}
