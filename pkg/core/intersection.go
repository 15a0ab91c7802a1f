package core

// IntersectionData carries everything shading needs about a ray hit. U, V, W
// are barycentric coordinates with W = 1 - U - V belonging to the triangle's
// first vertex. Normal is the geometric face normal; smooth shading replaces
// it later. Object points back to the hit mesh; TriangleIndex is the
// mesh-local triangle ordinal.
type IntersectionData struct {
	T, U, V, W    Real
	IP            Vector
	Normal        Vector
	Object        Surface
	TriangleIndex int
}

// IsLight reports whether this hit carries the visible-light sentinel
// (u = v = -1, no backing surface).
func (id *IntersectionData) IsLight() bool {
	return id.Object == nil && id.U == -1 && id.V == -1
}
