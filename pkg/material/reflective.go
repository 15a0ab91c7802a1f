package material

import (
	"math/rand"

	"github.com/tvetanov/go-bucket-raytracer/pkg/core"
)

// Reflective is a perfect mirror modulated by its albedo.
type Reflective struct {
	Albedo        core.Color
	SmoothShading bool
}

// NewReflective creates a reflective material
func NewReflective(albedo core.Color) *Reflective {
	return &Reflective{Albedo: albedo}
}

// Shade implements core.Material. Past the recursion cap, and on a miss,
// the reflection contributes the scene background.
func (m *Reflective) Shade(world core.World, ray core.Ray, idata core.IntersectionData, depth int, rng *rand.Rand) core.Color {
	smooth := smoothed(m.SmoothShading, idata)

	origin := smooth.IP.Add(smooth.Normal.Multiply(core.ShadowBias))
	reflected := core.Ray{
		Origin:  origin,
		Dir:     ray.Dir.Reflect(smooth.Normal),
		GIDepth: ray.GIDepth,
	}

	reflectedColor := world.Background()
	if depth < core.MaxDepth {
		var hitData core.IntersectionData
		if world.Intersect(reflected, &hitData, false, false, core.InfiniteT) && hitData.Object != nil {
			reflectedColor = ShadeHit(world, reflected, hitData, depth+1, rng)
		}
	}

	return reflectedColor.Mul(m.Albedo)
}
