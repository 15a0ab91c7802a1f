package geometry

import (
	"github.com/tvetanov/go-bucket-raytracer/pkg/core"
)

// Mesh owns a triangle soup with everything precomputed for intersection:
// per-vertex normals, bounds and a BVH. Construction leaves it immutable;
// rendering only reads.
type Mesh struct {
	Vertices      []core.Vector
	VertexNormals []core.Vector
	Triangles     []Triangle
	Bounds        core.AABB
	HasAABB       bool
	Nodes         []BVHNode

	// UseBVH gates the hierarchy; with it off intersection falls back to a
	// linear scan over all triangles. Meant for testing and benchmarking.
	UseBVH bool

	material core.Material
}

// NewMesh builds a mesh from a vertex list and flat triangle indices (three
// per triangle). The material may be nil; it is owned by the enclosing
// scene. Indices are expected to be validated by the loader.
func NewMesh(vertices []core.Vector, indices []int, material core.Material) *Mesh {
	if len(indices)%3 != 0 {
		panic("triangle indices must be a multiple of 3")
	}

	tris := make([]Triangle, len(indices)/3)
	for i := range tris {
		i0, i1, i2 := indices[i*3], indices[i*3+1], indices[i*3+2]
		if i0 < 0 || i1 < 0 || i2 < 0 ||
			i0 >= len(vertices) || i1 >= len(vertices) || i2 >= len(vertices) {
			panic("triangle index out of bounds")
		}
		tris[i] = Triangle{V0: int32(i0), V1: int32(i1), V2: int32(i2)}
	}

	m := &Mesh{
		Vertices:  vertices,
		Triangles: tris,
		UseBVH:    true,
		material:  material,
	}
	m.calculateNormals()
	m.calculateBounds()
	m.Nodes = buildBVH(m.Vertices, m.Triangles)
	return m
}

// Material returns the mesh's material, or nil when it has none
func (m *Mesh) Material() core.Material {
	return m.material
}

// calculateNormals accumulates the raw cross product of each triangle's
// edges onto its three vertices, so larger faces weigh in proportionally,
// then normalizes. Isolated vertices keep the zero vector.
func (m *Mesh) calculateNormals() {
	m.VertexNormals = make([]core.Vector, len(m.Vertices))

	for _, tri := range m.Triangles {
		e1 := m.Vertices[tri.V1].Subtract(m.Vertices[tri.V0])
		e2 := m.Vertices[tri.V2].Subtract(m.Vertices[tri.V0])
		faceNormal := e1.Cross(e2)
		m.VertexNormals[tri.V0] = m.VertexNormals[tri.V0].Add(faceNormal)
		m.VertexNormals[tri.V1] = m.VertexNormals[tri.V1].Add(faceNormal)
		m.VertexNormals[tri.V2] = m.VertexNormals[tri.V2].Add(faceNormal)
	}

	for i := range m.VertexNormals {
		m.VertexNormals[i] = m.VertexNormals[i].Normalize()
	}
}

// calculateBounds computes the mesh AABB. A mesh that is flat in any axis
// gets HasAABB = false and is intersected by brute force.
func (m *Mesh) calculateBounds() {
	m.Bounds = core.NewAABB()
	for _, v := range m.Vertices {
		m.Bounds.Expand(v)
	}
	size := m.Bounds.Size()
	m.HasAABB = size.X > core.Epsilon && size.Y > core.Epsilon && size.Z > core.Epsilon
}

// Intersect tests the ray against the mesh, updating idata when a hit
// closer than the current idata.T is found. In anyHit mode it returns on
// the first acceptable hit. The caller initializes idata.T to the ceiling.
func (m *Mesh) Intersect(ray core.Ray, idata *core.IntersectionData, backface, anyHit bool, maxT core.Real) bool {
	if len(m.Triangles) == 0 {
		return false
	}
	if !m.HasAABB || !m.UseBVH {
		return m.intersectLinear(ray, idata, backface, anyHit, maxT)
	}
	return m.traverse(0, ray, idata, backface, anyHit, maxT)
}

// traverse is the recursive BVH descent. Closest-hit visits both children
// and keeps the running best in idata; any-hit short-circuits on the first
// hit under maxT.
func (m *Mesh) traverse(nodeIndex int32, ray core.Ray, idata *core.IntersectionData, backface, anyHit bool, maxT core.Real) bool {
	if anyHit && idata.T < maxT {
		return true
	}

	node := &m.Nodes[nodeIndex]
	if !node.Bounds.Intersect(ray) {
		return false
	}

	if node.IsLeaf() {
		return m.intersectRange(node.Start, node.End, ray, idata, backface, anyHit, maxT)
	}

	hitLeft := m.traverse(node.Left, ray, idata, backface, anyHit, maxT)
	if anyHit && hitLeft {
		return true
	}
	hitRight := m.traverse(node.Right, ray, idata, backface, anyHit, maxT)
	return hitLeft || hitRight
}

func (m *Mesh) intersectLinear(ray core.Ray, idata *core.IntersectionData, backface, anyHit bool, maxT core.Real) bool {
	return m.intersectRange(0, int32(len(m.Triangles)-1), ray, idata, backface, anyHit, maxT)
}

// intersectRange runs the triangle test over the inclusive range [start,
// end], recording hits that beat the running best. First-encountered wins
// among equal t.
func (m *Mesh) intersectRange(start, end int32, ray core.Ray, idata *core.IntersectionData, backface, anyHit bool, maxT core.Real) bool {
	var temp core.IntersectionData
	found := false
	for i := start; i <= end; i++ {
		if !IntersectTriangle(ray, m.Vertices, m.Triangles[i], &temp, backface, maxT) {
			continue
		}
		if temp.T < idata.T {
			*idata = temp
			idata.Object = m
			idata.TriangleIndex = int(i)
			found = true
			if anyHit {
				return true
			}
		}
	}
	return found
}

// SmoothIntersection returns a copy of idata with the hit point and normal
// replaced by their smooth-shaded versions: the Phong-interpolated vertex
// normal, and the shading-point correction of Hanika, "Hacking the Shadow
// Terminator", Ray Tracing Gems II (2021), which suppresses the shadow
// terminator artifact on coarse meshes.
// https://jo.dreggn.org/home/2021_terminator.pdf
func (m *Mesh) SmoothIntersection(idata core.IntersectionData) core.IntersectionData {
	smooth := idata

	tri := m.Triangles[idata.TriangleIndex]
	p := idata.IP
	a, b, c := m.Vertices[tri.V0], m.Vertices[tri.V1], m.Vertices[tri.V2]
	na, nb, nc := m.VertexNormals[tri.V0], m.VertexNormals[tri.V1], m.VertexNormals[tri.V2]

	tmpW := p.Subtract(a)
	tmpU := p.Subtract(b)
	tmpV := p.Subtract(c)

	// Project onto the tangent planes of the shading normals; clamping at
	// zero corrects concavities only.
	dotW := min32(0, tmpW.Dot(na))
	dotU := min32(0, tmpU.Dot(nb))
	dotV := min32(0, tmpV.Dot(nc))
	tmpW = tmpW.Subtract(na.Multiply(dotW))
	tmpU = tmpU.Subtract(nb.Multiply(dotU))
	tmpV = tmpV.Subtract(nc.Multiply(dotV))

	smooth.IP = p.
		Add(tmpU.Multiply(idata.U)).
		Add(tmpV.Multiply(idata.V)).
		Add(tmpW.Multiply(idata.W))
	smooth.Normal = na.Multiply(idata.W).
		Add(nb.Multiply(idata.U)).
		Add(nc.Multiply(idata.V)).
		Normalize()

	return smooth
}

func min32(a, b core.Real) core.Real {
	if a < b {
		return a
	}
	return b
}
