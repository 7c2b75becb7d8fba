package hull

import "github.com/Faultbox/midgard-pcg/pkg/math"

// Default safety caps for Subdivider.
const (
	DefaultMaxDepth = 4096
	DefaultMaxFaces = 1 << 22
)

// Subdivider grows hull faces outward by recursive outside-point splitting.
//
// Each face collects the candidates strictly in front of its plane. With none
// left the face is terminal. Otherwise the farthest candidate becomes the apex
// of three child faces, one per edge, and every child is tested against the
// same outside set. There is no horizon stitching, so neighbouring faces
// overlap and the output is over-triangulated.
type Subdivider struct {
	MaxDepth int // 0 means DefaultMaxDepth
	MaxFaces int // 0 means DefaultMaxFaces

	// Trace, when set, is called for every terminal face with the candidate
	// set it was tested against.
	Trace func(face Face, candidates []math.Vec3)

	faces    []Face
	deepest  int
	maxDepth int
	maxFaces int
}

// Run subdivides each seed face against points and returns the terminal faces
// in the order they were reached.
func (s *Subdivider) Run(seeds []Face, points []math.Vec3) ([]Face, error) {
	s.faces = nil
	s.deepest = 0
	s.maxDepth = s.MaxDepth
	if s.maxDepth <= 0 {
		s.maxDepth = DefaultMaxDepth
	}
	s.maxFaces = s.MaxFaces
	if s.maxFaces <= 0 {
		s.maxFaces = DefaultMaxFaces
	}

	for _, f := range seeds {
		if err := s.step(f, points, 0); err != nil {
			return nil, err
		}
	}
	return s.faces, nil
}

// Deepest returns the deepest recursion level reached by the last Run.
func (s *Subdivider) Deepest() int {
	return s.deepest
}

func (s *Subdivider) step(face Face, candidates []math.Vec3, depth int) error {
	if depth > s.maxDepth {
		return &RecursionLimitError{Limit: "depth", Max: s.maxDepth}
	}
	if depth > s.deepest {
		s.deepest = depth
	}

	outside := OutsideSet(face, candidates)
	if len(outside) == 0 {
		if len(s.faces) >= s.maxFaces {
			return &RecursionLimitError{Limit: "faces", Max: s.maxFaces}
		}
		s.faces = append(s.faces, face)
		if s.Trace != nil {
			s.Trace(face, candidates)
		}
		return nil
	}

	apex := Apex(face, outside)
	children := [3]Face{
		NewFace(apex, face.A, face.B, face.C),
		NewFace(apex, face.B, face.C, face.A),
		NewFace(apex, face.C, face.A, face.B),
	}
	for _, child := range children {
		if err := s.step(child, outside, depth+1); err != nil {
			return err
		}
	}
	return nil
}

// OutsideSet returns the unique candidates strictly in front of the face
// plane, in scan order.
func OutsideSet(face Face, candidates []math.Vec3) []math.Vec3 {
	var outside []math.Vec3
	var seen map[math.Vec3]struct{}
	for _, p := range candidates {
		if p.Sub(face.Centroid).Dot(face.Normal) <= 0 {
			continue
		}
		if seen == nil {
			seen = make(map[math.Vec3]struct{})
		}
		if _, dup := seen[p]; dup {
			continue
		}
		seen[p] = struct{}{}
		outside = append(outside, p)
	}
	return outside
}

// Apex returns the first point of outside with the largest distance in front
// of the face plane.
func Apex(face Face, outside []math.Vec3) math.Vec3 {
	var apex math.Vec3
	var best float32
	for _, p := range outside {
		if d := face.Distance(p); d > best {
			best = d
			apex = p
		}
	}
	return apex
}
