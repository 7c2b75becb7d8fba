package math

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVec3Cross(t *testing.T) {
	x := Vec3{1, 0, 0}
	y := Vec3{0, 1, 0}
	got := x.Cross(y)
	want := Vec3{0, 0, 1}
	if got != want {
		t.Errorf("Vec3.Cross() = %v, want %v", got, want)
	}
}

func TestVec3Length(t *testing.T) {
	v := Vec3{2, 3, 6}
	if got := v.Length(); got != 7 {
		t.Errorf("Vec3.Length() = %v, want 7", got)
	}
}

func TestVec3Normalize(t *testing.T) {
	n := Vec3{3, 4, 12}.Normalize()
	assert.InDelta(t, 1.0, n.Length(), 1e-6)
	assert.InDelta(t, 3.0/13.0, n.X, 1e-6)

	if got := (Vec3{}).Normalize(); got != Zero {
		t.Errorf("zero vector should normalize to zero, got %v", got)
	}
}

func TestVec3IsZeroAndInCube(t *testing.T) {
	assert.True(t, Zero.IsZero())
	assert.False(t, Vec3{0, 0, 1e-30}.IsZero())

	assert.True(t, Vec3{1, -1, 0.5}.InCube(1))
	assert.False(t, Vec3{1.01, 0, 0}.InCube(1))
}

func TestCentroid(t *testing.T) {
	got := Centroid(Vec3{3, 0, 0}, Vec3{0, 3, 0}, Vec3{0, 0, 3})
	assert.Equal(t, Vec3{1, 1, 1}, got)
}

func TestPointPlaneDist(t *testing.T) {
	tests := []struct {
		name string
		p    Vec3
		want float32
	}{
		{"above", Vec3{5, 5, 3}, 2},
		{"below", Vec3{-1, 2, -4}, -5},
		{"on plane", Vec3{7, -7, 1}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PointPlaneDist(tt.p, Vec3{0, 0, 1}, Vec3{0, 0, 1})
			assert.InDelta(t, tt.want, got, 1e-6)
		})
	}
}

func TestPointDistToLine(t *testing.T) {
	a := Vec3{-10, 0, 0}
	b := Vec3{10, 0, 0}

	assert.InDelta(t, 10.0, PointDistToLine(Vec3{0, 10, 0}, a, b), 1e-5)
	assert.InDelta(t, 5.0, PointDistToLine(Vec3{42, 3, 4}, a, b), 1e-5)
	assert.InDelta(t, 0.0, PointDistToLine(Vec3{3, 0, 0}, a, b), 1e-6)
}

func TestBoxOf(t *testing.T) {
	if !BoxOf(nil).IsEmpty() {
		t.Error("box of no points should be empty")
	}

	b := BoxOf([]Vec3{{1, -2, 3}, {-4, 5, 0}})
	assert.Equal(t, Vec3{-4, -2, 0}, b.Min)
	assert.Equal(t, Vec3{1, 5, 3}, b.Max)
	assert.Equal(t, Vec3{5, 7, 3}, b.Size())
	assert.False(t, b.IsEmpty())
}
