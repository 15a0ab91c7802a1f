package geometry

import (
	"math/rand"
	"testing"

	"github.com/tvetanov/go-bucket-raytracer/pkg/core"
)

// buildRandomMesh creates a deterministic cloud of small triangles spread
// through a cube, large enough to force several BVH levels.
func buildRandomMesh(t *testing.T, triangleCount int) *Mesh {
	t.Helper()
	rng := rand.New(rand.NewSource(1337))

	vertices := make([]core.Vector, 0, triangleCount*3)
	indices := make([]int, 0, triangleCount*3)
	for i := 0; i < triangleCount; i++ {
		base := core.NewVector(
			core.Real(rng.Float64()*10-5),
			core.Real(rng.Float64()*10-5),
			core.Real(rng.Float64()*10-5),
		)
		vertices = append(vertices,
			base,
			base.Add(core.NewVector(core.Real(rng.Float64()*0.5), 0, 0)),
			base.Add(core.NewVector(0, core.Real(rng.Float64()*0.5), 0)),
		)
		indices = append(indices, i*3, i*3+1, i*3+2)
	}
	return NewMesh(vertices, indices, nil)
}

func TestBVH_MatchesLinearScan(t *testing.T) {
	mesh := buildRandomMesh(t, 500)
	rng := rand.New(rand.NewSource(7))

	for i := 0; i < 200; i++ {
		origin := core.NewVector(
			core.Real(rng.Float64()*16-8),
			core.Real(rng.Float64()*16-8),
			core.Real(rng.Float64()*16-8),
		)
		dir := core.RandomUnitVector(rng)
		ray := core.NewRay(origin, dir)

		var bvhData, linearData core.IntersectionData
		bvhData.T = core.InfiniteT
		linearData.T = core.InfiniteT

		mesh.UseBVH = true
		bvhHit := mesh.Intersect(ray, &bvhData, false, false, core.InfiniteT)
		mesh.UseBVH = false
		linearHit := mesh.Intersect(ray, &linearData, false, false, core.InfiniteT)

		if bvhHit != linearHit {
			t.Fatalf("Ray %d: BVH hit=%v, linear hit=%v", i, bvhHit, linearHit)
		}
		if bvhHit {
			if bvhData.TriangleIndex != linearData.TriangleIndex {
				t.Fatalf("Ray %d: BVH hit triangle %d, linear hit triangle %d",
					i, bvhData.TriangleIndex, linearData.TriangleIndex)
			}
			if bvhData.T != linearData.T {
				t.Fatalf("Ray %d: BVH t=%v, linear t=%v", i, bvhData.T, linearData.T)
			}
		}
	}
	mesh.UseBVH = true
}

func TestBVH_Structure(t *testing.T) {
	mesh := buildRandomMesh(t, 300)

	if len(mesh.Nodes) == 0 {
		t.Fatal("Expected a BVH over a non-empty mesh")
	}

	root := mesh.Nodes[0]
	if root.Start != 0 || root.End != int32(len(mesh.Triangles)-1) {
		t.Errorf("Root should cover all triangles, got [%d, %d]", root.Start, root.End)
	}

	leafTriangles := 0
	for i := range mesh.Nodes {
		node := &mesh.Nodes[i]
		if node.IsLeaf() {
			size := node.End - node.Start + 1
			if size < 1 || size > core.MaxTrianglesPerLeaf+1 {
				t.Errorf("Node %d: leaf size %d out of bounds", i, size)
			}
			leafTriangles += int(size)
			continue
		}

		if node.Left < 0 || node.Right < 0 ||
			int(node.Left) >= len(mesh.Nodes) || int(node.Right) >= len(mesh.Nodes) {
			t.Fatalf("Node %d: invalid child indices %d, %d", i, node.Left, node.Right)
		}

		// Children partition the parent's triangle range
		left := &mesh.Nodes[node.Left]
		right := &mesh.Nodes[node.Right]
		if left.Start != node.Start || right.End != node.End || left.End+1 != right.Start {
			t.Errorf("Node %d: children [%d,%d] and [%d,%d] do not partition [%d,%d]",
				i, left.Start, left.End, right.Start, right.End, node.Start, node.End)
		}
	}

	if leafTriangles != len(mesh.Triangles) {
		t.Errorf("Leaves cover %d triangles, mesh has %d", leafTriangles, len(mesh.Triangles))
	}
}

func TestBVH_MedianSplit(t *testing.T) {
	mesh := buildRandomMesh(t, 200)

	for i := range mesh.Nodes {
		node := &mesh.Nodes[i]
		if node.IsLeaf() {
			continue
		}
		left := &mesh.Nodes[node.Left]
		right := &mesh.Nodes[node.Right]

		axis := node.Bounds.Size().MaxDimension()
		maxLeft := core.Real(-1e30)
		for j := left.Start; j <= left.End; j++ {
			if c := centroidOnAxis(mesh, j, axis); c > maxLeft {
				maxLeft = c
			}
		}
		minRight := core.Real(1e30)
		for j := right.Start; j <= right.End; j++ {
			if c := centroidOnAxis(mesh, j, axis); c < minRight {
				minRight = c
			}
		}
		if maxLeft > minRight {
			t.Fatalf("Node %d: left centroids reach %v past right minimum %v on axis %d",
				i, maxLeft, minRight, axis)
		}
	}
}

func centroidOnAxis(m *Mesh, i int32, axis int) core.Real {
	tri := m.Triangles[i]
	return (m.Vertices[tri.V0].Axis(axis) +
		m.Vertices[tri.V1].Axis(axis) +
		m.Vertices[tri.V2].Axis(axis)) / 3
}

func TestBVH_AnyHitShortCircuit(t *testing.T) {
	mesh := buildRandomMesh(t, 100)
	rng := rand.New(rand.NewSource(11))

	for i := 0; i < 100; i++ {
		origin := core.NewVector(
			core.Real(rng.Float64()*16-8),
			core.Real(rng.Float64()*16-8),
			core.Real(rng.Float64()*16-8),
		)
		ray := core.NewRay(origin, core.RandomUnitVector(rng))

		var closest, any core.IntersectionData
		closest.T = core.InfiniteT
		any.T = core.InfiniteT

		closestHit := mesh.Intersect(ray, &closest, true, false, core.InfiniteT)
		anyHit := mesh.Intersect(ray, &any, true, true, core.InfiniteT)
		if closestHit != anyHit {
			t.Fatalf("Ray %d: closest-hit=%v but any-hit=%v", i, closestHit, anyHit)
		}
	}
}
