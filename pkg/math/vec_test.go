package math

import (
	"math"
	"testing"
)

func TestVec3Add(t *testing.T) {
	a := Vec3{1, 2, 3}
	b := Vec3{4, 5, 6}
	got := a.Add(b)
	want := Vec3{5, 7, 9}
	if got != want {
		t.Errorf("Vec3.Add() = %v, want %v", got, want)
	}
}

func TestVec3Cross(t *testing.T) {
	x := Vec3{1, 0, 0}
	y := Vec3{0, 1, 0}
	got := x.Cross(y)
	want := Vec3{0, 0, 1}
	if got != want {
		t.Errorf("Vec3.Cross() = %v, want %v", got, want)
	}
}

func TestVec3Normalize(t *testing.T) {
	v := Vec3{3, 4, 12}
	l := v.Normalize().Length()
	if l < 0.999 || l > 1.001 {
		t.Errorf("Vec3.Normalize().Length() = %v, want ~1", l)
	}
}

func TestVec3NormalizeZero(t *testing.T) {
	got := Vec3{}.Normalize()
	if got != (Vec3{}) {
		t.Errorf("zero vector should normalize to zero, got %v", got)
	}
	if math.IsNaN(float64(got.X)) {
		t.Error("Normalize produced NaN")
	}
}

func TestClosestPointOnSegment(t *testing.T) {
	a := Vec3{0, 0, 0}
	b := Vec3{10, 0, 0}

	tests := []struct {
		name string
		p    Vec3
		want Vec3
	}{
		{"middle", Vec3{4, 3, 0}, Vec3{4, 0, 0}},
		{"before start", Vec3{-5, 1, 0}, a},
		{"past end", Vec3{15, -2, 0}, b},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClosestPointOnSegment(a, b, tt.p); got != tt.want {
				t.Errorf("ClosestPointOnSegment() = %v, want %v", got, tt.want)
			}
		})
	}

	if got := ClosestPointOnSegment(a, a, Vec3{1, 1, 1}); got != a {
		t.Errorf("degenerate segment should return a, got %v", got)
	}
}
