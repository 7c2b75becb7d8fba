package math

import "github.com/chewxy/math32"

// Box3 is an axis-aligned bounding box.
type Box3 struct {
	Min Vec3 `yaml:"min"`
	Max Vec3 `yaml:"max"`
}

// EmptyBox returns a box that contains nothing; expanding it by a point
// yields a box around exactly that point.
func EmptyBox() Box3 {
	inf := math32.Inf(1)
	return Box3{
		Min: Vec3{inf, inf, inf},
		Max: Vec3{-inf, -inf, -inf},
	}
}

// BoxOf returns the bounding box of points. An empty slice yields EmptyBox.
func BoxOf(points []Vec3) Box3 {
	b := EmptyBox()
	for _, p := range points {
		b.ExpandByPoint(p)
	}
	return b
}

// IsEmpty reports whether max < min on any axis.
func (b Box3) IsEmpty() bool {
	return b.Max.X < b.Min.X || b.Max.Y < b.Min.Y || b.Max.Z < b.Min.Z
}

// ExpandByPoint grows the box to include p.
func (b *Box3) ExpandByPoint(p Vec3) {
	b.Min = Vec3{math32.Min(b.Min.X, p.X), math32.Min(b.Min.Y, p.Y), math32.Min(b.Min.Z, p.Z)}
	b.Max = Vec3{math32.Max(b.Max.X, p.X), math32.Max(b.Max.Y, p.Y), math32.Max(b.Max.Z, p.Z)}
}

// Size returns Max - Min.
func (b Box3) Size() Vec3 {
	return b.Max.Sub(b.Min)
}
