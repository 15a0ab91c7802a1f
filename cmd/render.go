package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"

	"github.com/tvetanov/go-bucket-raytracer/pkg/core"
	"github.com/tvetanov/go-bucket-raytracer/pkg/loaders"
	"github.com/tvetanov/go-bucket-raytracer/pkg/material"
	"github.com/tvetanov/go-bucket-raytracer/pkg/renderer"
	"github.com/tvetanov/go-bucket-raytracer/pkg/scene"
)

// RenderScene renders a scene file (or a built-in demo scene) to an image.
func RenderScene(ctx *cli.Context) error {
	setupLogging(ctx)

	sc, err := resolveScene(ctx)
	if err != nil {
		return err
	}

	if w := ctx.Int("width"); w > 0 {
		sc.Settings.Width = w
	}
	if h := ctx.Int("height"); h > 0 {
		sc.Settings.Height = h
	}
	if b := ctx.Int("bucket-size"); b > 0 {
		sc.Settings.BucketSize = b
	}

	supersample := ctx.Int("supersample")
	if supersample < 1 {
		supersample = 1
	}

	r := renderer.New(sc, ctx.Int("workers"))
	fb := renderer.NewFramebuffer(sc.Settings.Width*supersample, sc.Settings.Height*supersample)

	logger.Noticef("rendering %dx%d", fb.Width, fb.Height)
	stats := r.Render(fb)

	img := renderer.Downscale(fb.ToRGBA(), supersample)

	out := ctx.String("out")
	encodeStart := time.Now()
	if err := renderer.WriteImage(out, img); err != nil {
		return err
	}
	logger.Noticef("wrote %s in %d ms", out, time.Since(encodeStart).Nanoseconds()/1e6)

	displayRenderStats(stats)
	return nil
}

// resolveScene picks the render input: a scene document, a GLB model placed
// into a default-lit stage, or a built-in demo scene.
func resolveScene(ctx *cli.Context) (*scene.Scene, error) {
	if ctx.NArg() == 0 {
		switch name := ctx.String("demo"); name {
		case "", "default":
			return scene.NewDefaultScene(), nil
		case "glass":
			return scene.NewGlassScene(), nil
		default:
			return nil, fmt.Errorf("unknown demo scene %q", name)
		}
	}
	if ctx.NArg() != 1 {
		return nil, errors.New("expected a single scene file argument")
	}

	path := ctx.Args().First()
	switch strings.ToLower(filepath.Ext(path)) {
	case ".glb", ".gltf":
		return sceneFromGLB(path)
	default:
		return loaders.LoadScene(path)
	}
}

// sceneFromGLB stages a bare model: white diffuse material, a light beside
// the camera, the camera pulled back along +Z.
func sceneFromGLB(path string) (*scene.Scene, error) {
	s := scene.New()
	s.Settings.Width = 800
	s.Settings.Height = 450

	mat := material.NewDiffuse(core.NewColor(0.85, 0.85, 0.85))
	mat.SmoothShading = true
	s.AddMaterial(mat)

	meshes, err := loaders.LoadGLB(path, mat)
	if err != nil {
		return nil, err
	}
	if len(meshes) == 0 {
		return nil, fmt.Errorf("%s contains no triangle geometry", path)
	}

	bounds := core.NewAABB()
	for _, m := range meshes {
		s.AddMesh(m)
		bounds.Expand(m.Bounds.Min)
		bounds.Expand(m.Bounds.Max)
	}

	size := bounds.Size()
	center := bounds.Min.Add(size.Multiply(0.5))
	distance := size.Length() * 1.2
	s.Camera.Position = center.Add(core.NewVector(0, 0, distance))
	s.AddLight(core.Light{
		Position:  center.Add(core.NewVector(distance*0.5, distance*0.5, distance)),
		Intensity: 4 * distance * distance * 100,
	})
	return s, nil
}

func displayRenderStats(stats renderer.RenderStats) {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Worker", "Tiles", "Busy time"})
	for _, w := range stats.Workers {
		table.Append([]string{
			fmt.Sprintf("%d", w.ID),
			fmt.Sprintf("%d", w.Tiles),
			w.BusyTime.String(),
		})
	}
	table.SetFooter([]string{"", "TOTAL", stats.RenderTime.String()})
	table.Render()
}
