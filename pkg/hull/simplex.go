package hull

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/midgard-pcg/pkg/math"
)

// DefaultCoplanarEpsilon is the relative volume below which the initial
// tetrahedron counts as flat.
const DefaultCoplanarEpsilon = 1e-6

// Extremes holds the per-axis extreme points of a point set.
type Extremes struct {
	XMin, XMax math.Vec3
	YMin, YMax math.Vec3
	ZMin, ZMax math.Vec3
}

// FindExtremes scans points once for the axis extremes. The running extrema
// start at the origin, not at the first point, so an axis whose points all lie
// on one side of zero reports the zero vector for the other side.
func FindExtremes(points []math.Vec3) Extremes {
	var e Extremes
	for _, p := range points {
		if p.X < e.XMin.X {
			e.XMin = p
		} else if p.X > e.XMax.X {
			e.XMax = p
		}

		if p.Y < e.YMin.Y {
			e.YMin = p
		} else if p.Y > e.YMax.Y {
			e.YMax = p
		}

		if p.Z < e.ZMin.Z {
			e.ZMin = p
		} else if p.Z > e.ZMax.Z {
			e.ZMax = p
		}
	}
	return e
}

// Points returns the extremes ordered xMin, xMax, yMin, yMax, zMin, zMax.
func (e Extremes) Points() [6]math.Vec3 {
	return [6]math.Vec3{e.XMin, e.XMax, e.YMin, e.YMax, e.ZMin, e.ZMax}
}

// Simplex is the initial tetrahedron and the plane used to pick its fourth
// vertex.
type Simplex struct {
	V0, V1, V2, V3 math.Vec3

	// Plane through V0, V1, V2, oriented so V3 lies behind it.
	Centroid math.Vec3
	Normal   math.Vec3
}

// InitialSimplex picks the four starting vertices. V0 and V1 are the farthest
// pair of extremes, V2 the extreme farthest from line V0-V1 and V3 the point
// farthest in front of plane V0-V1-V2. If no point lies in front, V3 is the
// point farthest behind it.
//
// eps scales the collinearity and flatness tests relative to the length of
// V0-V1; pass 0 for DefaultCoplanarEpsilon.
func InitialSimplex(points []math.Vec3, eps float32) (Simplex, error) {
	if len(points) == 0 {
		return Simplex{}, &DegenerateInputError{Stage: "points", Reason: "empty point set"}
	}
	if eps <= 0 {
		eps = DefaultCoplanarEpsilon
	}

	ep := FindExtremes(points).Points()

	var s Simplex
	var dist float32
	for _, p0 := range ep {
		for _, p1 := range ep {
			if p0 == p1 {
				continue
			}
			if d := p0.Distance(p1); dist < d {
				dist = d
				s.V0, s.V1 = p0, p1
			}
		}
	}
	if dist == 0 {
		return Simplex{}, &DegenerateInputError{Stage: "diagonal", Reason: "all extreme points coincide"}
	}

	var distLine float32
	for _, p := range ep {
		if d := math.PointDistToLine(p, s.V0, s.V1); d > distLine {
			distLine = d
			s.V2 = p
		}
	}
	if distLine <= eps*dist {
		return Simplex{}, &DegenerateInputError{Stage: "triangle", Reason: "extreme points are collinear"}
	}

	s.Centroid = math.Centroid(s.V0, s.V1, s.V2)
	s.Normal = s.V1.Sub(s.V0).Cross(s.V2.Sub(s.V0)).Normalize()

	var distFront, distBack float32
	var front, back math.Vec3
	for _, p := range points {
		d := math.PointPlaneDist(p, s.Centroid, s.Normal)
		if d > distFront {
			distFront = d
			front = p
		} else if d < distBack {
			distBack = d
			back = p
		}
	}
	switch {
	case distFront > 0:
		s.V3 = front
	case distBack < 0:
		s.V3 = back
	default:
		return Simplex{}, &DegenerateInputError{Stage: "tetrahedron", Reason: "all points are coplanar"}
	}

	if s.V3.Sub(s.Centroid).Dot(s.Normal) > 0 {
		s.Normal = s.Normal.Neg()
	}

	volume := math32.Abs(s.V1.Sub(s.V0).Dot(s.V2.Sub(s.V0).Cross(s.V3.Sub(s.V0))))
	if volume <= eps*dist*dist*dist {
		return Simplex{}, &DegenerateInputError{Stage: "tetrahedron", Reason: "initial simplex is flat"}
	}

	return s, nil
}

// Faces returns the four tetrahedron faces, each oriented away from the
// vertex it leaves out.
func (s Simplex) Faces() [4]Face {
	return NewTetrahedron(s.V0, s.V1, s.V2, s.V3)
}

// NewTetrahedron builds the four faces of tetrahedron v0-v1-v2-v3.
func NewTetrahedron(v0, v1, v2, v3 math.Vec3) [4]Face {
	return [4]Face{
		NewFace(v0, v1, v2, v3),
		NewFace(v1, v2, v3, v0),
		NewFace(v2, v3, v0, v1),
		NewFace(v3, v0, v1, v2),
	}
}
