package geometry

import (
	"math"
	"testing"

	"github.com/tvetanov/go-bucket-raytracer/pkg/core"
)

func TestMesh_VertexNormals(t *testing.T) {
	// Two triangles folded along the shared edge 1-2: one in the XY plane
	// (normal +Z), one tilted into the x+y+z=1 plane.
	vertices := []core.Vector{
		core.NewVector(0, 0, 0),
		core.NewVector(1, 0, 0),
		core.NewVector(0, 1, 0),
		core.NewVector(0, 0, 1),
	}
	mesh := NewMesh(vertices, []int{0, 1, 2, 1, 2, 3}, nil)

	// Vertex 0 belongs only to the first triangle
	expected := core.NewVector(0, 0, 1)
	if mesh.VertexNormals[0].Subtract(expected).Length() > tolerance {
		t.Errorf("Expected normal %v at vertex 0, got %v", expected, mesh.VertexNormals[0])
	}

	// Shared vertices accumulate both face normals, weighted by the raw
	// cross-product magnitude, then normalize.
	e1 := vertices[2].Subtract(vertices[1])
	e2 := vertices[3].Subtract(vertices[1])
	second := e1.Cross(e2)
	first := core.NewVector(0, 0, 1) // unit cross product of the first triangle
	want := first.Add(second).Normalize()
	if mesh.VertexNormals[1].Subtract(want).Length() > tolerance {
		t.Errorf("Expected normal %v at vertex 1, got %v", want, mesh.VertexNormals[1])
	}

	// Every normal is unit length (or zero for isolated vertices)
	for i, n := range mesh.VertexNormals {
		l := n.Length()
		if l != 0 && math.Abs(float64(l-1)) > tolerance {
			t.Errorf("Vertex %d: normal length %v", i, l)
		}
	}
}

func TestMesh_IsolatedVertexNormal(t *testing.T) {
	vertices := []core.Vector{
		core.NewVector(0, 0, 0),
		core.NewVector(1, 0, 0),
		core.NewVector(0, 1, 0),
		core.NewVector(5, 5, 5), // referenced by no triangle
	}
	mesh := NewMesh(vertices, []int{0, 1, 2}, nil)
	if mesh.VertexNormals[3] != (core.Vector{}) {
		t.Errorf("Isolated vertex should keep the zero normal, got %v", mesh.VertexNormals[3])
	}
}

func TestMesh_DegenerateAABB(t *testing.T) {
	// A single triangle is flat in Z, so the mesh has no usable AABB and
	// intersection runs the linear fallback.
	vertices := []core.Vector{
		core.NewVector(0, 0, 0),
		core.NewVector(1, 0, 0),
		core.NewVector(0, 1, 0),
	}
	mesh := NewMesh(vertices, []int{0, 1, 2}, nil)

	if mesh.HasAABB {
		t.Error("Flat mesh should not report a usable AABB")
	}
	if len(mesh.Nodes) == 0 {
		t.Error("BVH should still be built for a non-empty mesh")
	}

	ray := core.NewRay(core.NewVector(0.25, 0.25, 1), core.NewVector(0, 0, -1))
	var idata core.IntersectionData
	idata.T = core.InfiniteT
	if !mesh.Intersect(ray, &idata, false, false, core.InfiniteT) {
		t.Error("Flat mesh should still intersect via the fallback")
	}
}

func TestMesh_SmoothIntersection(t *testing.T) {
	// Folded pair of triangles with smooth shading: the ray meets the tilted
	// face (at z=0.4, t=1.6) before the XY face, and the smoothed normal
	// there must lie between the two face normals.
	vertices := []core.Vector{
		core.NewVector(0, 0, 0),
		core.NewVector(1, 0, 0),
		core.NewVector(0, 1, 0),
		core.NewVector(0, 0, 1),
	}
	mesh := NewMesh(vertices, []int{0, 1, 2, 1, 2, 3}, nil)

	ray := core.NewRay(core.NewVector(0.3, 0.3, 2), core.NewVector(0, 0, -1))
	var idata core.IntersectionData
	idata.T = core.InfiniteT
	if !mesh.Intersect(ray, &idata, false, false, core.InfiniteT) {
		t.Fatal("Expected a hit")
	}

	smooth := mesh.SmoothIntersection(idata)

	if math.Abs(float64(smooth.Normal.Length()-1)) > tolerance {
		t.Errorf("Smooth normal not unit length: %v", smooth.Normal.Length())
	}
	if smooth.Normal == idata.Normal {
		t.Error("Smooth normal should differ from the face normal on a folded mesh")
	}
	if smooth.Normal.Z <= 0 {
		t.Errorf("Smooth normal should stay on the front side, got %v", smooth.Normal)
	}

	// The barycentrics and the hit triangle are preserved
	if smooth.TriangleIndex != idata.TriangleIndex ||
		smooth.U != idata.U || smooth.V != idata.V || smooth.W != idata.W {
		t.Error("Smooth intersection should only replace the hit point and normal")
	}
}

func TestMesh_SmoothIntersectionFlatMesh(t *testing.T) {
	// On a flat mesh every vertex normal equals the face normal, so the
	// correction must be a no-op.
	vertices := []core.Vector{
		core.NewVector(0, 0, 0),
		core.NewVector(1, 0, 0),
		core.NewVector(0, 1, 0),
	}
	mesh := NewMesh(vertices, []int{0, 1, 2}, nil)

	ray := core.NewRay(core.NewVector(0.2, 0.3, 1), core.NewVector(0, 0, -1))
	var idata core.IntersectionData
	idata.T = core.InfiniteT
	if !mesh.Intersect(ray, &idata, false, false, core.InfiniteT) {
		t.Fatal("Expected a hit")
	}

	smooth := mesh.SmoothIntersection(idata)
	if smooth.Normal.Subtract(idata.Normal).Length() > tolerance {
		t.Errorf("Expected unchanged normal, got %v", smooth.Normal)
	}
	if smooth.IP.Subtract(idata.IP).Length() > tolerance {
		t.Errorf("Expected unchanged hit point, got %v", smooth.IP)
	}
}
