package core

import "math"

// Light is a point light. Intensity is radiant power, distributed over the
// sphere surface at the shaded distance.
type Light struct {
	Position  Vector
	Intensity Real
}

// Intersect tests the ray against the light drawn as a small sphere whose
// radius scales with intensity. Lights are invisible geometry by default;
// this is only consulted when a scene opts into visible lights.
func (l Light) Intersect(ray Ray) (Real, bool) {
	radius := l.Intensity / 1000

	oc := ray.Origin.Subtract(l.Position)
	a := ray.Dir.LengthSquared()
	b := 2 * ray.Dir.Dot(oc)
	c := oc.LengthSquared() - radius*radius

	t0, t1, ok := solveQuadratic(a, b, c)
	if !ok {
		return 0, false
	}
	if t0 < 0 {
		t0 = t1
		if t0 < 0 {
			return 0, false
		}
	}
	return t0, true
}

// solveQuadratic returns the roots of ax^2 + bx + c in ascending order
func solveQuadratic(a, b, c Real) (Real, Real, bool) {
	discr := b*b - 4*a*c
	if discr < 0 {
		return 0, 0, false
	}
	if discr == 0 {
		x := -0.5 * b / a
		return x, x, true
	}

	var q Real
	if b > 0 {
		q = -0.5 * (b + Real(math.Sqrt(float64(discr))))
	} else {
		q = -0.5 * (b - Real(math.Sqrt(float64(discr))))
	}
	x0 := q / a
	x1 := c / q
	if x0 > x1 {
		x0, x1 = x1, x0
	}
	return x0, x1, true
}
