// Package scene holds the immutable render input: settings, camera, meshes,
// materials and lights. A scene is assembled by a loader or built in code,
// then only read during rendering.
package scene

import (
	"github.com/tvetanov/go-bucket-raytracer/pkg/core"
	"github.com/tvetanov/go-bucket-raytracer/pkg/geometry"
)

// Settings carries the image-level parameters of a render
type Settings struct {
	Width      int
	Height     int
	Background core.Color
	BucketSize int
}

// DefaultSettings returns the settings a scene starts with
func DefaultSettings() Settings {
	return Settings{
		Width:      1920,
		Height:     1080,
		Background: core.NewColor(0.2, 0.2, 0.2),
		BucketSize: core.DefaultBucketSize,
	}
}

// Scene owns everything a render reads: meshes, the heterogeneous material
// table, point lights, settings and the camera. Meshes reference materials
// from the scene's table; the scene must outlive every intersection record
// handed to shading.
type Scene struct {
	Settings  Settings
	Camera    Camera
	Meshes    []*geometry.Mesh
	Materials []core.Material

	lights []core.Light

	// VisibleLights opts into drawing lights as small spheres. Hits are
	// marked with sentinel barycentrics (u = v = -1) rather than a surface.
	VisibleLights bool
}

// New creates an empty scene with default settings
func New() *Scene {
	return &Scene{
		Settings: DefaultSettings(),
		Camera:   NewCamera(core.NewVector(0, 0, 0)),
	}
}

// AddMaterial appends a material to the scene table and returns its index
func (s *Scene) AddMaterial(m core.Material) int {
	s.Materials = append(s.Materials, m)
	return len(s.Materials) - 1
}

// AddMesh appends a mesh to the scene
func (s *Scene) AddMesh(m *geometry.Mesh) {
	s.Meshes = append(s.Meshes, m)
}

// AddLight appends a point light to the scene
func (s *Scene) AddLight(l core.Light) {
	s.lights = append(s.lights, l)
}

// Intersect implements core.World. It initializes the running best at maxT,
// forwards to each mesh in storage order, and returns the globally nearest
// hit; in anyHit mode the first hit wins. Lights are tested last and only
// for closest-hit rays, so they never occlude shadow rays.
func (s *Scene) Intersect(ray core.Ray, idata *core.IntersectionData, backface, anyHit bool, maxT core.Real) bool {
	idata.T = maxT

	for _, mesh := range s.Meshes {
		if mesh.Intersect(ray, idata, backface, anyHit, maxT) && anyHit {
			return true
		}
	}

	if s.VisibleLights && !anyHit {
		for _, light := range s.lights {
			t, ok := light.Intersect(ray)
			if ok && t < idata.T && t < maxT {
				idata.T = t
				idata.U = -1
				idata.V = -1
				idata.W = 0
				idata.IP = ray.At(t)
				idata.Object = nil
				idata.TriangleIndex = -1
			}
		}
	}

	return idata.T < maxT
}

// Lights implements core.World
func (s *Scene) Lights() []core.Light {
	return s.lights
}

// Background implements core.World
func (s *Scene) Background() core.Color {
	return s.Settings.Background
}
