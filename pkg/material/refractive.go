package material

import (
	"math"
	"math/rand"

	"github.com/tvetanov/go-bucket-raytracer/pkg/core"
)

// Refractive is a transparent material such as glass: a Fresnel-weighted
// mix of a reflection and a transmission ray, with total internal
// reflection handled on the transmission side.
type Refractive struct {
	Albedo        core.Color
	SmoothShading bool
	IOR           core.Real
}

// NewRefractive creates a refractive material with the given index of
// refraction.
func NewRefractive(albedo core.Color, ior core.Real) *Refractive {
	return &Refractive{Albedo: albedo, IOR: ior}
}

// Shade implements core.Material. Whether the ray is entering or leaving
// the solid is decided on the geometric normal, so smooth shading cannot
// flip the medium. Sub-rays admit backfaces so they can travel through the
// solid. Reflections inside the material stop after two bounces; tracing
// them deeper costs exponentially and contributes almost nothing.
func (m *Refractive) Shade(world core.World, ray core.Ray, idata core.IntersectionData, depth int, rng *rand.Rand) core.Color {
	smooth := smoothed(m.SmoothShading, idata)

	inside := ray.Dir.Dot(idata.Normal) > 0
	ipIn := idata.IP.Subtract(smooth.Normal.Multiply(core.ShadowBias))
	ipOut := smooth.IP.Add(smooth.Normal.Multiply(core.ShadowBias))

	normal := smooth.Normal
	ior := 1 / m.IOR
	if inside {
		normal = normal.Negate()
		ior = m.IOR
	}

	var reflectedColor core.Color
	reflectedColor.A = 1
	if depth < 2 {
		origin := ipOut
		if inside {
			origin = ipIn
		}
		reflected := core.Ray{Origin: origin, Dir: ray.Dir.Reflect(normal), GIDepth: ray.GIDepth}

		var hitData core.IntersectionData
		if world.Intersect(reflected, &hitData, true, false, core.InfiniteT) && hitData.Object != nil {
			reflectedColor = ShadeHit(world, reflected, hitData, depth+1, rng)
		} else {
			reflectedColor = world.Background()
		}
	}

	refractedDir, tir := ray.Dir.Refract(normal, ior)

	var refractedColor core.Color
	refractedColor.A = 1
	if depth < core.MaxDepth {
		origin := ipIn
		if inside && !tir {
			origin = ipOut
		}
		refracted := core.Ray{Origin: origin, Dir: refractedDir, GIDepth: ray.GIDepth}

		var hitData core.IntersectionData
		if world.Intersect(refracted, &hitData, true, false, core.InfiniteT) && hitData.Object != nil {
			refractedColor = ShadeHit(world, refracted, hitData, depth+1, rng)
		} else {
			refractedColor = world.Background()
		}
	}

	fresnel := core.Real(0.5 * math.Pow(float64(1+ray.Dir.Dot(normal)), 5))
	out := reflectedColor.Scale(fresnel).Add(refractedColor.Scale(1 - fresnel))
	return out.Mul(m.Albedo)
}
