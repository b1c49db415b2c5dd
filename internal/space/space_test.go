package space

import (
	"math"
	"testing"
)

func TestVec2Arithmetic(t *testing.T) {
	a := Vec2{1, 2}
	b := Vec2{3, -1}

	sum := a.Add(b)
	if sum.X != 4 || sum.Y != 1 {
		t.Errorf("expected (4,1), got (%f,%f)", sum.X, sum.Y)
	}

	diff := a.Sub(b)
	if diff.X != -2 || diff.Y != 3 {
		t.Errorf("expected (-2,3), got (%f,%f)", diff.X, diff.Y)
	}

	scaled := a.Scale(2)
	if scaled.X != 2 || scaled.Y != 4 {
		t.Errorf("expected (2,4), got (%f,%f)", scaled.X, scaled.Y)
	}
}

func TestVec2Norm(t *testing.T) {
	v := Vec2{3, 4}
	if math.Abs(v.Norm()-5) > 1e-12 {
		t.Errorf("expected norm 5, got %f", v.Norm())
	}
}

func TestVec3Norm(t *testing.T) {
	v := Vec3{2, 3, 6}
	if math.Abs(v.Norm()-7) > 1e-12 {
		t.Errorf("expected norm 7, got %f", v.Norm())
	}
}

func TestQuatNormalize(t *testing.T) {
	q := Quat{0, 0, 0, 2}
	n := q.Normalize()
	if math.Abs(n.Norm()-1) > 1e-12 {
		t.Errorf("expected unit norm, got %f", n.Norm())
	}

	zero := Quat{}
	id := zero.Normalize()
	if id.W != 1 {
		t.Errorf("expected identity for zero quat, got W=%f", id.W)
	}
}

func TestFinite(t *testing.T) {
	if !Finite(1.0, -2.5, 0) {
		t.Error("finite values reported as non-finite")
	}
	if Finite(math.NaN()) {
		t.Error("NaN reported as finite")
	}
	if Finite(1.0, math.Inf(1)) {
		t.Error("Inf reported as finite")
	}
}
