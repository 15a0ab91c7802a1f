package material

import (
	"math/rand"

	"github.com/tvetanov/go-bucket-raytracer/pkg/core"
)

// Constant is a view-tinted flat material used for debugging and for light
// spheres. It ignores lights and never recurses.
type Constant struct {
	Albedo        core.Color
	SmoothShading bool
}

// NewConstant creates a constant material
func NewConstant(albedo core.Color) *Constant {
	return &Constant{Albedo: albedo}
}

// Shade implements core.Material
func (m *Constant) Shade(world core.World, ray core.Ray, idata core.IntersectionData, depth int, rng *rand.Rand) core.Color {
	smooth := smoothed(m.SmoothShading, idata)
	return m.Albedo.Scale(viewTint(ray, smooth.Normal))
}
