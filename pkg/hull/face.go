// Package hull builds an approximate convex hull over a 3D point cloud and
// derives two triangle meshes from it: the hull itself and a morph target
// that projects every hull vertex onto a sphere.
//
// The hull is built by recursive outside-point subdivision without horizon
// stitching, so the result is over-triangulated and may contain degenerate
// and duplicate faces. Weld filters those before the index buffer is built.
package hull

import "github.com/Faultbox/midgard-pcg/pkg/math"

// Face is an oriented triangle. Its normal points away from Point4, the
// reference vertex used only at construction time.
type Face struct {
	A, B, C  math.Vec3
	Point4   math.Vec3
	Centroid math.Vec3
	Normal   math.Vec3
}

// NewFace builds the face (a, b, c) with its normal oriented away from point4.
// A face whose corners are collinear or coincide gets a zero normal.
func NewFace(a, b, c, point4 math.Vec3) Face {
	f := Face{A: a, B: b, C: c, Point4: point4}
	f.Centroid = math.Centroid(a, b, c)
	f.Normal = b.Sub(a).Cross(c.Sub(a)).Normalize()
	if point4.Sub(f.Centroid).Dot(f.Normal) > 0 {
		f.Normal = f.Normal.Neg()
	}
	return f
}

// Equal compares corners in order. Rotated or permuted corners are not equal.
func (f Face) Equal(other Face) bool {
	return f.A == other.A && f.B == other.B && f.C == other.C
}

// Degenerate reports whether two of the corners coincide.
func (f Face) Degenerate() bool {
	return f.A == f.B || f.A == f.C || f.B == f.C
}

// Distance returns the signed distance of p from the face plane.
func (f Face) Distance(p math.Vec3) float32 {
	return math.PointPlaneDist(p, f.Centroid, f.Normal)
}

// Corners returns a, b and c in order.
func (f Face) Corners() [3]math.Vec3 {
	return [3]math.Vec3{f.A, f.B, f.C}
}

// triple is the comparable key behind Face.Equal.
type triple [3]math.Vec3

func (f Face) key() triple {
	return triple{f.A, f.B, f.C}
}
