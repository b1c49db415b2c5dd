package oscillator

import (
	"math"
	"testing"
)

func mustAxis(t *testing.T, value, velocity float64, extent ExtentConfig[float64], elastic ElasticConfig) *Axis {
	t.Helper()
	a, err := NewAxis(value, velocity, extent, elastic)
	if err != nil {
		t.Fatal(err)
	}
	return a
}

func openExtent() ExtentConfig[float64] {
	return ExtentConfig[float64]{MinStretch: -1e9, MaxStretch: 1e9}
}

func TestForce_HandSpringOnly(t *testing.T) {
	el := DefaultElastic()
	el.EndK = 0
	el.SnapK = 0
	a := mustAxis(t, 0, 0, openExtent(), el)

	f := a.force(1.0)
	if math.Abs(f-el.HandK) > 1e-12 {
		t.Errorf("expected hand force %f, got %f", el.HandK, f)
	}

	a.velocity = 2.0
	f = a.force(1.0)
	expected := el.HandK - el.Drag*2.0
	if math.Abs(f-expected) > 1e-12 {
		t.Errorf("expected damped force %f, got %f", expected, f)
	}
}

func TestForce_SnapLocality(t *testing.T) {
	el := DefaultElastic()
	el.HandK = 0
	el.Drag = 0
	el.EndK = 0
	el.SnapK = 10
	el.SnapRadius = 0.5

	extent := openExtent()
	extent.SnapPoints = []float64{2.0}

	// Distance 0.6, outside the radius: zero contribution.
	a := mustAxis(t, 2.6, 0, extent, el)
	if f := a.force(a.value); math.Abs(f) > 1e-12 {
		t.Errorf("snap outside radius should contribute 0, got %f", f)
	}

	// Distance 0.2, inside the radius: pulls toward 2.0.
	a = mustAxis(t, 2.2, 0, extent, el)
	f := a.force(a.value)
	if f >= 0 {
		t.Errorf("snap inside radius should pull toward 2.0, got %f", f)
	}
	expected := (2.0 - 2.2) * el.SnapK * (1 - 0.2/0.5)
	if math.Abs(f-expected) > 1e-12 {
		t.Errorf("expected %f, got %f", expected, f)
	}

	// Exactly on the point: multiplier is full but displacement is zero.
	a = mustAxis(t, 2.0, 0, extent, el)
	if f := a.force(a.value); f != 0 {
		t.Errorf("snap at zero distance should contribute 0, got %f", f)
	}
}

func TestForce_SnapSuperposition(t *testing.T) {
	el := DefaultElastic()
	el.HandK = 0
	el.Drag = 0
	el.EndK = 0

	left := openExtent()
	left.SnapPoints = []float64{-0.2}
	right := openExtent()
	right.SnapPoints = []float64{0.3}
	both := openExtent()
	both.SnapPoints = []float64{-0.2, 0.3}

	fLeft := mustAxis(t, 0, 0, left, el).force(0)
	fRight := mustAxis(t, 0, 0, right, el).force(0)
	fBoth := mustAxis(t, 0, 0, both, el).force(0)

	if math.Abs(fBoth-(fLeft+fRight)) > 1e-12 {
		t.Errorf("forces must superpose: %f + %f != %f", fLeft, fRight, fBoth)
	}
}

func TestForce_EndCapOneSided(t *testing.T) {
	el := DefaultElastic()
	el.HandK = 0
	el.Drag = 0
	el.SnapK = 0
	extent := ExtentConfig[float64]{MinStretch: -1, MaxStretch: 1}

	// Past the upper cap: restoring force pulls down, growing with overshoot.
	a := mustAxis(t, 1.5, 0, extent, el)
	f := a.force(a.value)
	if math.Abs(f-(-0.5*el.EndK)) > 1e-12 {
		t.Errorf("expected %f past upper cap, got %f", -0.5*el.EndK, f)
	}

	// Past the lower cap: pushes up.
	a = mustAxis(t, -2, 0, extent, el)
	f = a.force(a.value)
	if math.Abs(f-(1.0*el.EndK)) > 1e-12 {
		t.Errorf("expected %f past lower cap, got %f", 1.0*el.EndK, f)
	}

	// Inside the extent with SnapToEnd off: no boundary force.
	a = mustAxis(t, 0.9, 0, extent, el)
	if f := a.force(a.value); f != 0 {
		t.Errorf("expected no force inside extent, got %f", f)
	}
}

func TestForce_SnapToEndMagnetism(t *testing.T) {
	el := DefaultElastic()
	el.HandK = 0
	el.Drag = 0
	el.SnapK = 0
	el.SnapRadius = 0.5
	extent := ExtentConfig[float64]{MinStretch: -1, MaxStretch: 1, SnapToEnd: true}

	// Within SnapRadius of the upper cap: magnetized outward.
	a := mustAxis(t, 0.9, 0, extent, el)
	f := a.force(a.value)
	expected := 0.1 * el.EndK * (1 - 0.1/0.5)
	if math.Abs(f-expected) > 1e-12 {
		t.Errorf("expected magnetism %f, got %f", expected, f)
	}

	// Farther than SnapRadius from both caps: magnetism decays to zero.
	a = mustAxis(t, 0, 0, extent, el)
	if f := a.force(a.value); math.Abs(f) > 1e-12 {
		t.Errorf("expected no magnetism mid-extent, got %f", f)
	}
}

func TestStep_SymplecticOrdering(t *testing.T) {
	el := DefaultElastic()
	el.EndK = 0
	el.SnapK = 0
	el.Drag = 0
	a := mustAxis(t, 0, 0, openExtent(), el)

	// One step from rest: accel = handK/mass, and the NEW velocity must
	// advance the position, so the value moves on the very first step.
	got := a.Step(1.0, 0.1)
	wantVel := el.HandK / el.Mass * 0.1
	if math.Abs(a.Velocity()-wantVel) > 1e-12 {
		t.Errorf("expected velocity %f, got %f", wantVel, a.Velocity())
	}
	if math.Abs(got-wantVel*0.1) > 1e-12 {
		t.Errorf("expected value %f after one step, got %f", wantVel*0.1, got)
	}
}

func TestStep_Determinism(t *testing.T) {
	extent := ExtentConfig[float64]{MinStretch: -1, MaxStretch: 1, SnapToEnd: true, SnapPoints: []float64{0.25, -0.4}}
	a := mustAxis(t, 0.1, 0, extent, DefaultElastic())
	b := mustAxis(t, 0.1, 0, extent, DefaultElastic())

	for i := 0; i < 500; i++ {
		forcing := 0.8 * math.Sin(float64(i)*0.05)
		va := a.Step(forcing, 0.016)
		vb := b.Step(forcing, 0.016)
		if va != vb {
			t.Fatalf("trajectories diverged at step %d: %v vs %v", i, va, vb)
		}
	}
}

func BenchmarkAxisStep(b *testing.B) {
	extent := ExtentConfig[float64]{
		MinStretch: -1, MaxStretch: 1, SnapToEnd: true,
		SnapPoints: []float64{-0.5, 0, 0.5},
	}
	a, err := NewAxis(0, 0, extent, DefaultElastic())
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		a.Step(0.7, 0.016)
	}
}
