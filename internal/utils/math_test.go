package utils

import (
	"math"
	"testing"
)

func TestNormalizeAngle(t *testing.T) {
	cases := []struct {
		in, want float64
	}{
		{0, 0},
		{math.Pi, math.Pi},
		{2 * math.Pi, 0},
		{-math.Pi / 2, 3 * math.Pi / 2},
		{5 * math.Pi, math.Pi},
		{-4 * math.Pi, 0},
	}
	for _, c := range cases {
		got := NormalizeAngle(c.in)
		if math.Abs(got-c.want) > 1e-9 {
			t.Errorf("NormalizeAngle(%v) = %v, want %v", c.in, got, c.want)
		}
		if got < 0 || got >= TwoPi {
			t.Errorf("NormalizeAngle(%v) = %v, outside [0, 2π)", c.in, got)
		}
	}
}

func TestAngleInArcWrapsAroundZero(t *testing.T) {
	// Arc from 350° spanning 20° covers angles on both sides of 0.
	start := NormalizeAngle(-10 * math.Pi / 180)
	width := 20 * math.Pi / 180

	if !AngleInArc(0, start, width) {
		t.Error("angle 0 should be inside an arc straddling 0")
	}
	if !AngleInArc(NormalizeAngle(-5*math.Pi/180), start, width) {
		t.Error("angle -5° should be inside")
	}
	if !AngleInArc(5*math.Pi/180, start, width) {
		t.Error("angle 5° should be inside")
	}
	if AngleInArc(math.Pi, start, width) {
		t.Error("angle 180° should be outside")
	}
}

func TestAngleInArcZeroWidth(t *testing.T) {
	if AngleInArc(1.0, 1.0, 0) {
		t.Error("zero-width arc should contain nothing")
	}
	if !AngleInArc(3.0, 0, TwoPi) {
		t.Error("full-circle arc should contain everything")
	}
}

func TestLerp(t *testing.T) {
	if got := Lerp(0, 10, 0.5); got != 5 {
		t.Errorf("Lerp(0,10,0.5) = %v, want 5", got)
	}
}
