package math

import (
	"testing"
)

func TestVec2Add(t *testing.T) {
	got := Vec2{1, 2}.Add(Vec2{3, 4})
	want := Vec2{4, 6}
	if got != want {
		t.Errorf("Vec2.Add() = %v, want %v", got, want)
	}
}

func TestVec3Cross(t *testing.T) {
	got := UnitX.Cross(UnitY)
	if got != UnitZ {
		t.Errorf("Vec3.Cross() = %v, want %v", got, UnitZ)
	}
}

func TestVec3Length(t *testing.T) {
	v := Vec3{2, 3, 6}
	if got := v.Length(); got != 7 {
		t.Errorf("Vec3.Length() = %v, want 7", got)
	}
}

func TestVec3Normalize(t *testing.T) {
	n := Vec3{3, 4, 0}.Normalize()
	if !n.ApproxEqual(Vec3{0.6, 0.8, 0}, 1e-6) {
		t.Errorf("Vec3.Normalize() = %v", n)
	}

	if z := (Vec3{}).Normalize(); z != Zero3 {
		t.Errorf("zero vector should normalize to zero, got %v", z)
	}
}

func TestVec3Lerp(t *testing.T) {
	got := Vec3{0, 0, 0}.Lerp(Vec3{2, 4, 6}, 0.5)
	if got != (Vec3{1, 2, 3}) {
		t.Errorf("Vec3.Lerp() = %v", got)
	}
}

func TestVec3IsFinite(t *testing.T) {
	var zero float32
	if !(Vec3{1, 2, 3}).IsFinite() {
		t.Error("finite vector reported non-finite")
	}
	if (Vec3{zero / zero, 0, 0}).IsFinite() {
		t.Error("NaN vector reported finite")
	}
}

func TestCubic(t *testing.T) {
	if got := Cubic(2); got != (Vec4{8, 4, 2, 1}) {
		t.Errorf("Cubic(2) = %v", got)
	}
	if got := CubicDerivative(2); got != (Vec4{12, 4, 1, 0}) {
		t.Errorf("CubicDerivative(2) = %v", got)
	}
}

func TestRadians(t *testing.T) {
	if abs(Radians(180)-Pi) > 1e-6 {
		t.Errorf("Radians(180) = %v", Radians(180))
	}
	if abs(Degrees(Pi/2)-90) > 1e-4 {
		t.Errorf("Degrees(pi/2) = %v", Degrees(Pi/2))
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		v, want float32
	}{
		{-100, -89.99},
		{0, 0},
		{100, 89.99},
	}
	for _, tt := range tests {
		if got := Clamp(tt.v, -89.99, 89.99); got != tt.want {
			t.Errorf("Clamp(%v) = %v, want %v", tt.v, got, tt.want)
		}
	}
}
