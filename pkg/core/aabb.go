package core

import "math"

// AABB represents an axis-aligned bounding box. A fresh box starts inverted
// (Min at +Inf, Max at -Inf) so that a sequence of Expand calls produces the
// tight bounds of the expanded points.
type AABB struct {
	Min Vector
	Max Vector
}

// NewAABB creates an empty (inverted) bounding box
func NewAABB() AABB {
	inf := Real(math.Inf(1))
	return AABB{
		Min: Vector{inf, inf, inf},
		Max: Vector{-inf, -inf, -inf},
	}
}

// Expand grows the box to contain the point p
func (b *AABB) Expand(p Vector) {
	if p.X < b.Min.X {
		b.Min.X = p.X
	}
	if p.Y < b.Min.Y {
		b.Min.Y = p.Y
	}
	if p.Z < b.Min.Z {
		b.Min.Z = p.Z
	}
	if p.X > b.Max.X {
		b.Max.X = p.X
	}
	if p.Y > b.Max.Y {
		b.Max.Y = p.Y
	}
	if p.Z > b.Max.Z {
		b.Max.Z = p.Z
	}
}

// Size returns the extent of the box along each axis
func (b AABB) Size() Vector {
	return b.Max.Subtract(b.Min)
}

// Intersect tests the ray against the box using the slab method. A zero
// direction component divides to +/-Inf, which the interval comparisons
// handle without a special case.
func (b AABB) Intersect(ray Ray) bool {
	tNear := Real(math.Inf(-1))
	tFar := Real(math.Inf(1))

	for axis := 0; axis < 3; axis++ {
		invDir := 1 / ray.Dir.Axis(axis)
		t0 := (b.Min.Axis(axis) - ray.Origin.Axis(axis)) * invDir
		t1 := (b.Max.Axis(axis) - ray.Origin.Axis(axis)) * invDir
		if invDir < 0 {
			t0, t1 = t1, t0
		}
		if t0 > tNear {
			tNear = t0
		}
		if t1 < tFar {
			tFar = t1
		}
		if tNear > tFar {
			return false
		}
	}

	return tFar >= 0
}
