package renderer

import (
	"image"
	"image/color"

	"github.com/tvetanov/go-bucket-raytracer/pkg/core"
)

// Framebuffer is a row-major grid of linear RGBA pixels. During rendering
// each tile writes only its own rectangle, so workers never share a pixel.
type Framebuffer struct {
	Width  int
	Height int
	Pix    []core.Color
}

// NewFramebuffer allocates a zeroed frame buffer
func NewFramebuffer(width, height int) *Framebuffer {
	return &Framebuffer{
		Width:  width,
		Height: height,
		Pix:    make([]core.Color, width*height),
	}
}

// Set writes the pixel at (x, y)
func (fb *Framebuffer) Set(x, y int, c core.Color) {
	fb.Pix[y*fb.Width+x] = c
}

// At returns the pixel at (x, y)
func (fb *Framebuffer) At(x, y int) core.Color {
	return fb.Pix[y*fb.Width+x]
}

// ToRGBA converts the linear buffer to an 8-bit image: channels clamped to
// [0, 1], scaled by 255.999 and truncated.
func (fb *Framebuffer) ToRGBA() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, fb.Width, fb.Height))
	for y := 0; y < fb.Height; y++ {
		for x := 0; x < fb.Width; x++ {
			c := fb.Pix[y*fb.Width+x]
			img.SetRGBA(x, y, color.RGBA{
				R: packChannel(c.R),
				G: packChannel(c.G),
				B: packChannel(c.B),
				A: 255,
			})
		}
	}
	return img
}

func packChannel(v core.Real) uint8 {
	if v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}
	return uint8(v * 255.999)
}
