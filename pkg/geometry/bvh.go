package geometry

import (
	"github.com/tvetanov/go-bucket-raytracer/pkg/core"
)

// BVHNode is one node of a mesh's bounding volume hierarchy, stored in a
// flat slice with node 0 as the root. A node is a leaf iff both child
// indices are -1; then [Start, End] is an inclusive range into the mesh's
// reordered triangle list. Interior nodes carry valid child indices, and
// their [Start, End] is the union of their children's ranges.
type BVHNode struct {
	Bounds      core.AABB
	Left, Right int32
	Start, End  int32
}

// IsLeaf reports whether the node addresses triangles directly
func (n *BVHNode) IsLeaf() bool {
	return n.Left == -1 && n.Right == -1
}

// buildBVH constructs the hierarchy over tris by recursive median split on
// the longest axis, permuting tris in place so that every leaf addresses a
// contiguous range. Triangles keep indexing vertices, which are untouched.
func buildBVH(vertices []core.Vector, tris []Triangle) []BVHNode {
	if len(tris) == 0 {
		return nil
	}

	b := &bvhBuilder{
		vertices: vertices,
		tris:     tris,
		// Capacity hint only; correctness does not depend on it.
		nodes: make([]BVHNode, 0, 2*((len(tris)+core.MaxTrianglesPerLeaf-1)/core.MaxTrianglesPerLeaf)),
	}
	b.build(0, int32(len(tris)-1))
	return b.nodes
}

type bvhBuilder struct {
	vertices []core.Vector
	tris     []Triangle
	nodes    []BVHNode
}

// build partitions the inclusive triangle range [start, end] and returns the
// index of the created node. Children may be appended while the parent is
// being finished, so the parent is addressed by index, never by pointer.
func (b *bvhBuilder) build(start, end int32) int32 {
	node := BVHNode{
		Bounds: core.NewAABB(),
		Left:   -1,
		Right:  -1,
		Start:  start,
		End:    end,
	}
	for i := start; i <= end; i++ {
		tri := b.tris[i]
		node.Bounds.Expand(b.vertices[tri.V0])
		node.Bounds.Expand(b.vertices[tri.V1])
		node.Bounds.Expand(b.vertices[tri.V2])
	}

	if end-start <= core.MaxTrianglesPerLeaf {
		nodeIndex := int32(len(b.nodes))
		b.nodes = append(b.nodes, node)
		return nodeIndex
	}

	axis := node.Bounds.Size().MaxDimension()
	mid := start + (end-start)/2
	b.selectMedian(start, end, mid, axis)

	nodeIndex := int32(len(b.nodes))
	b.nodes = append(b.nodes, node)

	left := b.build(start, mid)
	right := b.build(mid+1, end)
	b.nodes[nodeIndex].Left = left
	b.nodes[nodeIndex].Right = right
	return nodeIndex
}

// selectMedian partially orders tris[lo..hi] by centroid on the given axis
// so that the element at nth is in its sorted position, with everything
// smaller before it (quickselect).
func (b *bvhBuilder) selectMedian(lo, hi, nth int32, axis int) {
	for lo < hi {
		p := b.partition(lo, hi, axis)
		switch {
		case p == nth:
			return
		case nth < p:
			hi = p - 1
		default:
			lo = p + 1
		}
	}
}

// partition is a Lomuto partition around the centroid of the last triangle
// in the range; returns the pivot's final index.
func (b *bvhBuilder) partition(lo, hi int32, axis int) int32 {
	pivot := b.centroid(hi, axis)
	i := lo
	for j := lo; j < hi; j++ {
		if b.centroid(j, axis) < pivot {
			b.tris[i], b.tris[j] = b.tris[j], b.tris[i]
			i++
		}
	}
	b.tris[i], b.tris[hi] = b.tris[hi], b.tris[i]
	return i
}

func (b *bvhBuilder) centroid(i int32, axis int) core.Real {
	tri := b.tris[i]
	return (b.vertices[tri.V0].Axis(axis) +
		b.vertices[tri.V1].Axis(axis) +
		b.vertices[tri.V2].Axis(axis)) / 3
}
