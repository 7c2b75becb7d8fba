// Package math provides the float32 vector primitives used by the hull pipeline.
package math

import "github.com/chewxy/math32"

// Vec3 is a 3D point or direction. Vec3 values are comparable with ==,
// which is exact component equality.
type Vec3 struct {
	X, Y, Z float32
}

// Zero is the origin.
var Zero = Vec3{}

// Add returns v + other.
func (v Vec3) Add(other Vec3) Vec3 {
	return Vec3{v.X + other.X, v.Y + other.Y, v.Z + other.Z}
}

// Sub returns v - other.
func (v Vec3) Sub(other Vec3) Vec3 {
	return Vec3{v.X - other.X, v.Y - other.Y, v.Z - other.Z}
}

// Scale returns v * scalar.
func (v Vec3) Scale(s float32) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

// Neg returns -v.
func (v Vec3) Neg() Vec3 {
	return Vec3{-v.X, -v.Y, -v.Z}
}

// Dot returns the dot product.
func (v Vec3) Dot(other Vec3) float32 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// Cross returns the cross product.
func (v Vec3) Cross(other Vec3) Vec3 {
	return Vec3{
		v.Y*other.Z - v.Z*other.Y,
		v.Z*other.X - v.X*other.Z,
		v.X*other.Y - v.Y*other.X,
	}
}

// LengthSquared returns the squared magnitude.
func (v Vec3) LengthSquared() float32 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

// Length returns the magnitude.
func (v Vec3) Length() float32 {
	return math32.Sqrt(v.LengthSquared())
}

// Normalize returns a unit vector. The zero vector normalizes to itself.
func (v Vec3) Normalize() Vec3 {
	l := v.Length()
	if l == 0 {
		return Vec3{}
	}
	return Vec3{v.X / l, v.Y / l, v.Z / l}
}

// Distance returns the distance to another point.
func (v Vec3) Distance(other Vec3) float32 {
	return v.Sub(other).Length()
}

// IsZero reports whether all components are exactly zero.
func (v Vec3) IsZero() bool {
	return v == Vec3{}
}

// InCube reports whether every component lies in [-r, r].
func (v Vec3) InCube(r float32) bool {
	return math32.Abs(v.X) <= r && math32.Abs(v.Y) <= r && math32.Abs(v.Z) <= r
}

// Centroid returns the arithmetic mean of three points.
func Centroid(a, b, c Vec3) Vec3 {
	return Vec3{(a.X + b.X + c.X) / 3, (a.Y + b.Y + c.Y) / 3, (a.Z + b.Z + c.Z) / 3}
}

// PointPlaneDist returns the signed distance of p from the plane through
// origin with the given unit normal.
func PointPlaneDist(p, origin, normal Vec3) float32 {
	return p.Sub(origin).Dot(normal)
}

// PointDistToLine returns the perpendicular distance of p from the infinite
// line through a and b. A line of zero length degenerates to the distance
// from a.
func PointDistToLine(p, a, b Vec3) float32 {
	dir := b.Sub(a).Normalize()
	ap := p.Sub(a)
	return ap.Sub(dir.Scale(ap.Dot(dir))).Length()
}
