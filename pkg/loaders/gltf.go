package loaders

import (
	"fmt"
	"math"

	"github.com/qmuntal/gltf"

	"github.com/tvetanov/go-bucket-raytracer/pkg/core"
	"github.com/tvetanov/go-bucket-raytracer/pkg/geometry"
)

// LoadGLB reads the triangle geometry of a glTF/GLB file and builds one
// mesh per document mesh that has triangle indices; meshes without any are
// skipped. Only triangle primitives are used; materials,
// textures and the node hierarchy are ignored — the caller assigns a
// material from the scene table.
func LoadGLB(path string, mat core.Material) ([]*geometry.Mesh, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open gltf: %w", err)
	}

	var meshes []*geometry.Mesh
	for _, m := range doc.Meshes {
		vertices, indices, err := readMeshGeometry(doc, m)
		if err != nil {
			return nil, fmt.Errorf("mesh %q: %w", m.Name, err)
		}
		if len(indices) == 0 {
			continue
		}
		meshes = append(meshes, geometry.NewMesh(vertices, indices, mat))
	}
	return meshes, nil
}

func readMeshGeometry(doc *gltf.Document, m *gltf.Mesh) ([]core.Vector, []int, error) {
	var vertices []core.Vector
	var indices []int

	for _, prim := range m.Primitives {
		if prim.Mode != gltf.PrimitiveTriangles && prim.Mode != 0 {
			continue
		}

		posIdx, ok := prim.Attributes[gltf.POSITION]
		if !ok {
			continue
		}
		positions, err := readPositions(doc, posIdx)
		if err != nil {
			return nil, nil, fmt.Errorf("read positions: %w", err)
		}

		base := len(vertices)
		vertices = append(vertices, positions...)

		if prim.Indices != nil {
			primIndices, err := readIndices(doc, *prim.Indices)
			if err != nil {
				return nil, nil, fmt.Errorf("read indices: %w", err)
			}
			for _, idx := range primIndices {
				indices = append(indices, base+idx)
			}
		} else {
			// No index buffer: sequential triangles
			for i := 0; i < len(positions); i++ {
				indices = append(indices, base+i)
			}
		}
	}

	if len(indices)%3 != 0 {
		return nil, nil, fmt.Errorf("triangle indices count %d is not a multiple of 3", len(indices))
	}
	return vertices, indices, nil
}

func readPositions(doc *gltf.Document, accessorIdx int) ([]core.Vector, error) {
	accessor := doc.Accessors[accessorIdx]
	if accessor.Type != gltf.AccessorVec3 {
		return nil, fmt.Errorf("expected VEC3 accessor, got %v", accessor.Type)
	}

	data, stride, err := accessorBytes(doc, accessor, 12)
	if err != nil {
		return nil, err
	}

	result := make([]core.Vector, accessor.Count)
	for i := range result {
		offset := i * stride
		result[i] = core.NewVector(
			readFloat32(data[offset:]),
			readFloat32(data[offset+4:]),
			readFloat32(data[offset+8:]),
		)
	}
	return result, nil
}

func readIndices(doc *gltf.Document, accessorIdx int) ([]int, error) {
	accessor := doc.Accessors[accessorIdx]
	if accessor.Type != gltf.AccessorScalar {
		return nil, fmt.Errorf("expected SCALAR accessor, got %v", accessor.Type)
	}

	var componentSize int
	switch accessor.ComponentType {
	case gltf.ComponentUbyte:
		componentSize = 1
	case gltf.ComponentUshort:
		componentSize = 2
	case gltf.ComponentUint:
		componentSize = 4
	default:
		return nil, fmt.Errorf("unsupported index component type %v", accessor.ComponentType)
	}

	data, stride, err := accessorBytes(doc, accessor, componentSize)
	if err != nil {
		return nil, err
	}

	result := make([]int, accessor.Count)
	for i := range result {
		offset := i * stride
		switch componentSize {
		case 1:
			result[i] = int(data[offset])
		case 2:
			result[i] = int(uint16(data[offset]) | uint16(data[offset+1])<<8)
		case 4:
			result[i] = int(uint32(data[offset]) |
				uint32(data[offset+1])<<8 |
				uint32(data[offset+2])<<16 |
				uint32(data[offset+3])<<24)
		}
	}
	return result, nil
}

// accessorBytes resolves an accessor to its backing bytes and element
// stride. Only embedded (GLB) buffers are supported.
func accessorBytes(doc *gltf.Document, accessor *gltf.Accessor, defaultStride int) ([]byte, int, error) {
	if accessor.BufferView == nil {
		return nil, 0, fmt.Errorf("accessor has no buffer view")
	}
	view := doc.BufferViews[*accessor.BufferView]
	buffer := doc.Buffers[view.Buffer]
	if buffer.URI != "" {
		return nil, 0, fmt.Errorf("external buffers are not supported")
	}
	if buffer.Data == nil {
		return nil, 0, fmt.Errorf("buffer has no data")
	}

	stride := view.ByteStride
	if stride == 0 {
		stride = defaultStride
	}
	start := view.ByteOffset + accessor.ByteOffset
	need := start + (accessor.Count-1)*stride + defaultStride
	if need > len(buffer.Data) {
		return nil, 0, fmt.Errorf("accessor range exceeds buffer size")
	}
	return buffer.Data[start:], stride, nil
}

func readFloat32(b []byte) core.Real {
	bits := uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24
	return math.Float32frombits(bits)
}
