package core

import (
	"math"
	"math/rand"
)

// RandomUnitVector returns a uniformly distributed point on the unit sphere
func RandomUnitVector(rng *rand.Rand) Vector {
	theta := 2 * math.Pi * rng.Float64()
	z := 2*rng.Float64() - 1
	r := math.Sqrt(1 - z*z)

	return Vector{
		X: Real(r * math.Cos(theta)),
		Y: Real(r * math.Sin(theta)),
		Z: Real(z),
	}
}
