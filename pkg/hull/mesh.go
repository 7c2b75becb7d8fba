package hull

import (
	"fmt"

	"github.com/Faultbox/midgard-pcg/pkg/math"
)

// Mesh is an indexed triangle mesh ready for upload to a renderer.
// Normals runs parallel to Indices, not to Vertices: there is one normal per
// index slot.
type Mesh struct {
	Vertices []math.Vec3
	Indices  []uint32
	Normals  []math.Vec3
}

// TriangleCount returns len(Indices) / 3.
func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// Bounds returns the bounding box of the vertex buffer.
func (m *Mesh) Bounds() math.Box3 {
	return math.BoxOf(m.Vertices)
}

// Validate checks the buffer shapes and that every index resolves to a vertex.
func (m *Mesh) Validate() error {
	if len(m.Indices)%3 != 0 {
		return fmt.Errorf("%w: index count %d is not a multiple of 3", ErrInvalidMesh, len(m.Indices))
	}
	if len(m.Normals) != len(m.Indices) {
		return fmt.Errorf("%w: %d normals for %d indices", ErrInvalidMesh, len(m.Normals), len(m.Indices))
	}
	for i, idx := range m.Indices {
		if int(idx) >= len(m.Vertices) {
			return fmt.Errorf("%w: index %d at slot %d out of range (%d vertices)", ErrInvalidMesh, idx, i, len(m.Vertices))
		}
	}
	return nil
}

// Weld drops degenerate faces, removes exact (ordered) duplicates and builds
// a vertex buffer of unique positions in first-occurrence order together with
// the index buffer referencing it. The surviving faces are returned in index
// buffer order.
func Weld(faces []Face) (vertices []math.Vec3, indices []uint32, kept []Face) {
	seenFace := make(map[triple]struct{}, len(faces))
	for _, f := range faces {
		if f.Degenerate() {
			continue
		}
		k := f.key()
		if _, dup := seenFace[k]; dup {
			continue
		}
		seenFace[k] = struct{}{}
		kept = append(kept, f)
	}

	lookup := make(map[math.Vec3]uint32, len(kept))
	indexOf := func(v math.Vec3) uint32 {
		if idx, ok := lookup[v]; ok {
			return idx
		}
		idx := uint32(len(vertices))
		lookup[v] = idx
		vertices = append(vertices, v)
		return idx
	}

	indices = make([]uint32, 0, 3*len(kept))
	for _, f := range kept {
		indices = append(indices, indexOf(f.A), indexOf(f.B), indexOf(f.C))
	}
	return vertices, indices, kept
}

// EstimateNormals returns normalize(a), normalize(b), normalize(c) for each
// face. These are vertex directions from the origin, not geometric face
// normals; the hull is assumed roughly star-shaped around the origin.
func EstimateNormals(faces []Face) []math.Vec3 {
	normals := make([]math.Vec3, 0, 3*len(faces))
	for _, f := range faces {
		normals = append(normals, f.A.Normalize(), f.B.Normalize(), f.C.Normalize())
	}
	return normals
}

// ProjectSphere maps every hull vertex onto the sphere of the given radius
// around the origin. Normals are taken from the unprojected vertices, one per
// index.
func ProjectSphere(vertices []math.Vec3, indices []uint32, radius float32) (morph, normals []math.Vec3) {
	morph = make([]math.Vec3, len(vertices))
	for i, v := range vertices {
		morph[i] = v.Normalize().Scale(radius)
	}

	normals = make([]math.Vec3, len(indices))
	for i, idx := range indices {
		normals[i] = vertices[idx].Normalize()
	}
	return morph, normals
}
