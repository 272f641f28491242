package animation

import (
	"math"
	"testing"
)

func TestCurvesBoundaryLaw(t *testing.T) {
	const tolerance = 1e-9
	for name, curve := range Curves {
		if got := curve(0); math.Abs(got) > tolerance {
			t.Errorf("%s(0) = %v, want 0", name, got)
		}
		if got := curve(1); math.Abs(got-1) > tolerance {
			t.Errorf("%s(1) = %v, want 1", name, got)
		}
	}
}

func TestBounceSegmentsAreContinuous(t *testing.T) {
	const tolerance = 1e-6
	for _, x := range []float64{4.0 / 11.0, 8.0 / 11.0, 9.0 / 10.0} {
		before := BounceOut(x - 1e-9)
		after := BounceOut(x)
		if math.Abs(before-after) > tolerance {
			t.Errorf("BounceOut jumps at %v: %v -> %v", x, before, after)
		}
	}
}

func TestBounceStaysInUnitRange(t *testing.T) {
	for i := 0; i <= 1000; i++ {
		x := float64(i) / 1000
		for name, curve := range map[string]Curve{"in": BounceIn, "out": BounceOut, "inOut": BounceInOut} {
			if got := curve(x); got < -1e-9 || got > 1+1e-9 {
				t.Fatalf("Bounce%s(%v) = %v, outside [0, 1]", name, x, got)
			}
		}
	}
}

func TestPolynomialMidpoints(t *testing.T) {
	tests := []struct {
		name  string
		curve Curve
		x     float64
		want  float64
	}{
		{"QuadraticIn", QuadraticIn, 0.5, 0.25},
		{"QuadraticOut", QuadraticOut, 0.5, 0.75},
		{"QuadraticInOut", QuadraticInOut, 0.5, 0.5},
		{"CubicIn", CubicIn, 0.5, 0.125},
		{"CubicOut", CubicOut, 0.5, 0.875},
		{"CubicInOut", CubicInOut, 0.5, 0.5},
	}
	for _, tt := range tests {
		if got := tt.curve(tt.x); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("%s(%v) = %v, want %v", tt.name, tt.x, got, tt.want)
		}
	}
}

func TestCubicBezierClampsInput(t *testing.T) {
	if got := Ease(-1); got != 0 {
		t.Errorf("Ease(-1) = %v, want 0", got)
	}
	if got := Ease(2); got != 1 {
		t.Errorf("Ease(2) = %v, want 1", got)
	}
}

func TestCubicBezierSolvesForX(t *testing.T) {
	linear := CubicBezier(1.0/3, 1.0/3, 2.0/3, 2.0/3)
	for i := 1; i < 20; i++ {
		x := float64(i) / 20
		if got := linear(x); math.Abs(got-x) > 1e-6 {
			t.Errorf("straight bezier(%v) = %v, want %v", x, got, x)
		}
		if sum := EaseInOut(x) + EaseInOut(1-x); math.Abs(sum-1) > 1e-6 {
			t.Errorf("EaseInOut(%v) + EaseInOut(%v) = %v, want 1", x, 1-x, sum)
		}
	}
	prev := 0.0
	for i := 1; i <= 100; i++ {
		got := EaseIn(float64(i) / 100)
		if got < prev {
			t.Fatalf("EaseIn decreases at %v: %v < %v", float64(i)/100, got, prev)
		}
		prev = got
	}
}
