package renderer

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/HugoSmits86/nativewebp"
	"github.com/ftrvxmtrx/tga"
	"golang.org/x/image/draw"
)

// WriteImage encodes the image to path, choosing the format from the file
// extension: .png, .webp or .tga.
func WriteImage(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		err = png.Encode(f, img)
	case ".webp":
		err = nativewebp.Encode(f, img, nil)
	case ".tga":
		err = tga.Encode(f, img)
	default:
		err = fmt.Errorf("unsupported output format %q", filepath.Ext(path))
	}
	if err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return nil
}

// Downscale resamples the image down by an integer factor with Catmull-Rom
// filtering. Rendering at a multiple of the target size and downscaling is
// the cheap antialiasing path.
func Downscale(img *image.RGBA, factor int) *image.RGBA {
	if factor <= 1 {
		return img
	}
	bounds := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, bounds.Dx()/factor, bounds.Dy()/factor))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Src, nil)
	return dst
}
