package hull

import (
	"fmt"

	"github.com/Faultbox/midgard-pcg/pkg/math"
)

// Options tunes BuildHull. The zero value uses the package defaults.
type Options struct {
	MaxDepth        int
	MaxFaces        int
	CoplanarEpsilon float32

	// Trace is forwarded to the Subdivider.
	Trace func(face Face, candidates []math.Vec3)
}

// Result is the output of BuildHull.
type Result struct {
	Mesh    *Mesh
	Simplex Simplex

	// Faces is every terminal face from subdivision, including degenerate
	// and duplicate ones. Welded holds the faces that reached the index buffer.
	Faces  []Face
	Welded []Face

	Depth int
}

// BuildHull runs extreme point selection, tetrahedron construction,
// subdivision, welding and normal estimation over points.
func BuildHull(points []math.Vec3, opts Options) (*Result, error) {
	simplex, err := InitialSimplex(points, opts.CoplanarEpsilon)
	if err != nil {
		return nil, err
	}

	sub := &Subdivider{
		MaxDepth: opts.MaxDepth,
		MaxFaces: opts.MaxFaces,
		Trace:    opts.Trace,
	}
	seeds := simplex.Faces()
	faces, err := sub.Run(seeds[:], points)
	if err != nil {
		return nil, err
	}

	vertices, indices, welded := Weld(faces)

	return &Result{
		Mesh: &Mesh{
			Vertices: vertices,
			Indices:  indices,
			Normals:  EstimateNormals(welded),
		},
		Simplex: simplex,
		Faces:   faces,
		Welded:  welded,
		Depth:   sub.Deepest(),
	}, nil
}

// BuildMorph projects the hull onto a sphere of the given radius. The returned
// mesh shares the hull's index slice.
func BuildMorph(vertices []math.Vec3, indices []uint32, radius float32) (*Mesh, error) {
	if radius <= 0 {
		return nil, fmt.Errorf("%w: morph radius %v must be positive", ErrInvalidMesh, radius)
	}
	for i, idx := range indices {
		if int(idx) >= len(vertices) {
			return nil, fmt.Errorf("%w: index %d at slot %d out of range (%d vertices)", ErrInvalidMesh, idx, i, len(vertices))
		}
	}

	morph, normals := ProjectSphere(vertices, indices, radius)
	return &Mesh{
		Vertices: morph,
		Indices:  indices,
		Normals:  normals,
	}, nil
}
