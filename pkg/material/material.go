// Package material implements the shading evaluators: constant, diffuse
// with optional global illumination, reflective, and refractive with a
// Fresnel mix. All materials share the optional smooth-shading prologue and
// recurse through the scene for secondary rays.
package material

import (
	"math/rand"

	"github.com/tvetanov/go-bucket-raytracer/pkg/core"
)

// defaultShading colors surfaces that have no material assigned, using the
// same view-dependent tint the constant material applies.
var defaultShading = NewConstant(core.NewColor(0.5, 0.3, 0.9))

// lightColor is returned for visible-light sentinel hits.
var lightColor = core.NewColor(1, 1, 1)

// ShadeHit resolves the material of a hit and shades it. Hits carrying the
// visible-light sentinel shade as the light itself; surfaces without a
// material fall back to a debug tint.
func ShadeHit(world core.World, ray core.Ray, idata core.IntersectionData, depth int, rng *rand.Rand) core.Color {
	if idata.IsLight() {
		return lightColor
	}
	mat := idata.Object.Material()
	if mat == nil {
		mat = defaultShading
	}
	return mat.Shade(world, ray, idata, depth, rng)
}

// smoothed applies the shared shading prologue: when the material requests
// smooth shading, the intersection is replaced with its terminator-corrected
// version before any directional arithmetic.
func smoothed(smoothShading bool, idata core.IntersectionData) core.IntersectionData {
	if smoothShading && idata.Object != nil {
		return idata.Object.SmoothIntersection(idata)
	}
	return idata
}

// viewTint is the constant-material formula: a cheap cosine tint in
// [1/3, 1] that depends only on the viewing angle.
func viewTint(ray core.Ray, normal core.Vector) core.Real {
	theta := ray.Dir.Negate().Dot(normal)
	return theta/3*2 + 1.0/3
}
