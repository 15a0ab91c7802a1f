package scene

import (
	"github.com/tvetanov/go-bucket-raytracer/pkg/core"
	"github.com/tvetanov/go-bucket-raytracer/pkg/geometry"
	"github.com/tvetanov/go-bucket-raytracer/pkg/material"
)

// NewDefaultScene builds the demo scene used when no scene file is given: a
// red diffuse triangle floating over a mirror floor, lit by a single point
// light next to the camera.
func NewDefaultScene() *Scene {
	s := New()
	s.Settings.Width = 800
	s.Settings.Height = 450
	s.Settings.Background = core.NewColor(0.15, 0.15, 0.2)

	red := material.NewDiffuse(core.NewColor(0.9, 0.1, 0.1))
	mirror := material.NewReflective(core.NewColor(0.8, 0.8, 0.8))
	s.AddMaterial(red)
	s.AddMaterial(mirror)

	s.AddMesh(geometry.NewMesh(
		[]core.Vector{
			core.NewVector(-1.75, -0.5, -4),
			core.NewVector(1.75, -0.5, -4),
			core.NewVector(0, 1.75, -4),
		},
		[]int{0, 1, 2},
		red,
	))

	// Floor quad below the triangle
	s.AddMesh(geometry.NewMesh(
		[]core.Vector{
			core.NewVector(-6, -1, -10),
			core.NewVector(6, -1, -10),
			core.NewVector(6, -1, 2),
			core.NewVector(-6, -1, 2),
		},
		[]int{0, 2, 1, 0, 3, 2},
		mirror,
	))

	s.AddLight(core.Light{Position: core.NewVector(1, 2, 0), Intensity: 800})
	return s
}

// NewGlassScene builds a refraction demo: a smooth-shaded glass pyramid
// between the camera and a colored backdrop quad.
func NewGlassScene() *Scene {
	s := New()
	s.Settings.Width = 800
	s.Settings.Height = 450
	s.Settings.Background = core.NewColor(0.1, 0.1, 0.12)

	glass := material.NewRefractive(core.NewColor(1, 1, 1), 1.5)
	glass.SmoothShading = true
	backdrop := material.NewDiffuse(core.NewColor(0.2, 0.6, 0.9))
	s.AddMaterial(glass)
	s.AddMaterial(backdrop)

	// Square pyramid (five faces) in front of the camera
	s.AddMesh(geometry.NewMesh(
		[]core.Vector{
			core.NewVector(-0.6, -0.5, -2.2),
			core.NewVector(0.6, -0.5, -2.2),
			core.NewVector(0.6, -0.5, -3.4),
			core.NewVector(-0.6, -0.5, -3.4),
			core.NewVector(0, 0.7, -2.8),
		},
		[]int{
			0, 4, 1,
			1, 4, 2,
			2, 4, 3,
			3, 4, 0,
			2, 0, 1,
			3, 0, 2,
		},
		glass,
	))

	s.AddMesh(geometry.NewMesh(
		[]core.Vector{
			core.NewVector(-4, -2.5, -7),
			core.NewVector(4, -2.5, -7),
			core.NewVector(4, 2.5, -7),
			core.NewVector(-4, 2.5, -7),
		},
		[]int{0, 1, 2, 0, 2, 3},
		backdrop,
	))

	s.AddLight(core.Light{Position: core.NewVector(-2, 3, 0), Intensity: 1200})
	return s
}
