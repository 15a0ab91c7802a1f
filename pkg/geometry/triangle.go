package geometry

import (
	"github.com/tvetanov/go-bucket-raytracer/pkg/core"
)

// Triangle holds three indices into the owning mesh's vertex list
type Triangle struct {
	V0, V1, V2 int32
}

// IntersectTriangle tests the ray against one indexed triangle using the
// Moeller-Trumbore algorithm and writes the hit parameters into idata.
// backface admits hits from either side of the triangle plane; with it false
// only front-face hits register. maxT is the acceptance ceiling for t.
func IntersectTriangle(ray core.Ray, vertices []core.Vector, tri Triangle, idata *core.IntersectionData, backface bool, maxT core.Real) bool {
	a := vertices[tri.V0]

	e1 := vertices[tri.V1].Subtract(a)
	e2 := vertices[tri.V2].Subtract(a)

	h := ray.Dir.Cross(e2)
	d := e1.Dot(h)

	// Parallel ray, or a back-face hit while backfaces are culled
	dtest := d
	if backface && dtest < 0 {
		dtest = -dtest
	}
	if dtest < core.Epsilon {
		return false
	}

	f := 1 / d

	// u is the signed distance from the AC side to the intersection point,
	// normalized to the distance from AC to B
	s := ray.Origin.Subtract(a)
	u := f * s.Dot(h)
	if u < 0 || u > 1 {
		return false
	}

	// v < 0 puts the point on the far side of AB compared to C;
	// u + v > 1 puts it beyond BC
	q := s.Cross(e1)
	v := f * ray.Dir.Dot(q)
	if v < 0 || u+v > 1 {
		return false
	}

	t := f * e2.Dot(q)
	if t < 0 || t > maxT {
		return false
	}

	idata.T = t
	idata.U = u
	idata.V = v
	idata.W = 1 - u - v
	idata.IP = ray.At(t)
	idata.Normal = e1.Cross(e2).Normalize()
	return true
}
