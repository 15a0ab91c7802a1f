package material

import (
	"math"
	"math/rand"

	"github.com/tvetanov/go-bucket-raytracer/pkg/core"
)

// Diffuse is a Lambertian-style surface lit directly by the scene's point
// lights, with optional one-bounce global illumination.
type Diffuse struct {
	Albedo        core.Color
	SmoothShading bool
}

// NewDiffuse creates a diffuse material
func NewDiffuse(albedo core.Color) *Diffuse {
	return &Diffuse{Albedo: albedo}
}

// Shade implements core.Material. Direct lighting follows the inverse
// square law over the sphere area at the light distance; occlusion uses an
// any-hit shadow ray that admits backfaces so solids cast shadows from
// either side. When the diffuse bounce budget allows, GIRays jittered
// reflection rays are traced and averaged in with the direct term.
func (m *Diffuse) Shade(world core.World, ray core.Ray, idata core.IntersectionData, depth int, rng *rand.Rand) core.Color {
	smooth := smoothed(m.SmoothShading, idata)

	origin := smooth.IP.Add(smooth.Normal.Multiply(core.ShadowBias))

	var direct core.Color
	direct.A = 1
	for _, light := range world.Lights() {
		lightDir := light.Position.Subtract(origin)
		shadowRay := core.Ray{Origin: origin, Dir: lightDir.Normalize(), GIDepth: ray.GIDepth}

		var shadowData core.IntersectionData
		occluded := world.Intersect(shadowRay, &shadowData, true, true, lightDir.Length())
		if occluded {
			continue
		}

		cosLaw := max32(0, shadowRay.Dir.Dot(smooth.Normal))
		area := 4 * core.Real(math.Pi) * lightDir.LengthSquared()
		direct = direct.Add(m.Albedo.Scale(light.Intensity / area * cosLaw))
	}

	var gi core.Color
	gi.A = 1
	giTraced := 0
	if int(ray.GIDepth) < core.GIDepthLimit {
		for i := 0; i < core.GIRays; i++ {
			giRay := generateGIRay(ray, smooth, rng)
			var giData core.IntersectionData
			if world.Intersect(giRay, &giData, false, false, core.InfiniteT) && giData.Object != nil {
				if giMat := giData.Object.Material(); giMat != nil {
					gi = gi.Add(giMat.Shade(world, giRay, giData, depth+1, rng))
				}
			}
			giTraced++
		}
	}

	// A bare scene still produces an image: fall back to the view tint.
	if len(world.Lights()) == 0 {
		return m.Albedo.Scale(viewTint(ray, smooth.Normal))
	}

	return direct.Add(gi).Scale(1 / core.Real(giTraced+1))
}

// generateGIRay jitters the mirror direction by a random unit vector, which
// spreads the secondary rays in a cosine-weighted lobe around the mirror
// direction (not around the normal).
func generateGIRay(incoming core.Ray, idata core.IntersectionData, rng *rand.Rand) core.Ray {
	dir := incoming.Dir.Reflect(idata.Normal).Add(core.RandomUnitVector(rng))
	return core.Ray{
		Origin:  idata.IP,
		Dir:     dir.Normalize(),
		GIDepth: incoming.GIDepth + 1,
	}
}

func max32(a, b core.Real) core.Real {
	if a > b {
		return a
	}
	return b
}
