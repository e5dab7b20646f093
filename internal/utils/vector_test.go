package utils

import (
	"math"
	"testing"
)

func TestVecBasics(t *testing.T) {
	v := NewVec2(3, 4)
	if v.Length() != 5 {
		t.Fatalf("Length of (3,4) = %v, want 5", v.Length())
	}
	n := v.Normalize()
	if math.Abs(n.Length()-1) > 1e-12 {
		t.Errorf("normalized length = %v, want 1", n.Length())
	}
	if got := v.Dot(NewVec2(1, 0)); got != 3 {
		t.Errorf("Dot = %v, want 3", got)
	}
	sum := v.Add(NewVec2(-3, -4))
	if sum != (Vec2{}) {
		t.Errorf("Add gave %+v, want zero", sum)
	}
}

func TestNormalizeZeroVector(t *testing.T) {
	if got := (Vec2{}).Normalize(); got != (Vec2{}) {
		t.Errorf("Normalize of zero vector = %+v, want zero", got)
	}
}

func TestClampLength(t *testing.T) {
	v := NewVec2(30, 40).ClampLength(5)
	if math.Abs(v.Length()-5) > 1e-9 {
		t.Errorf("clamped length = %v, want 5", v.Length())
	}
	// Direction preserved.
	if math.Abs(v.X-3) > 1e-9 || math.Abs(v.Y-4) > 1e-9 {
		t.Errorf("clamp changed direction: %+v", v)
	}
	short := NewVec2(1, 1)
	if short.ClampLength(5) != short {
		t.Error("vector below the limit should be unchanged")
	}
}

func TestFromAngleRoundTrip(t *testing.T) {
	for _, a := range []float64{0, 1, math.Pi, 5} {
		v := FromAngle(a)
		if math.Abs(NormalizeAngle(v.Angle()-a)) > 1e-9 {
			t.Errorf("FromAngle(%v).Angle() = %v", a, v.Angle())
		}
	}
}
