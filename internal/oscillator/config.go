package oscillator

import "fmt"

const (
	DefaultMass       = 1.0
	DefaultHandK      = 10.0
	DefaultEndK       = 5.0
	DefaultSnapK      = 10.0
	DefaultSnapRadius = 0.5
	DefaultDrag       = 1.0
)

// ExtentConfig bounds the oscillator's travel and places snap points.
// MinStretch and MaxStretch bound the norm of the value's displacement;
// for [Axis] the norm is the raw scalar, so the bounds are directional.
// SnapPoints order is irrelevant: every point contributes and all
// contributions sum.
type ExtentConfig[T any] struct {
	MinStretch float64
	MaxStretch float64
	SnapToEnd  bool
	SnapPoints []T
}

// clone copies the snap-point slice so later caller mutation cannot reach
// a live oscillator.
func (e ExtentConfig[T]) clone() ExtentConfig[T] {
	c := e
	c.SnapPoints = make([]T, len(e.SnapPoints))
	copy(c.SnapPoints, e.SnapPoints)
	return c
}

// ElasticConfig holds the spring and damping coefficients shared by all
// variants. HandK pulls toward the forcing input, EndK restores past the
// extent caps, SnapK attracts toward snap points within SnapRadius, Drag
// damps velocity.
type ElasticConfig struct {
	Mass       float64
	HandK      float64
	EndK       float64
	SnapK      float64
	SnapRadius float64
	Drag       float64
}

// DefaultElastic returns coefficients that settle a unit-mass oscillator
// smoothly in a few tenths of a second at typical frame rates.
func DefaultElastic() ElasticConfig {
	return ElasticConfig{
		Mass:       DefaultMass,
		HandK:      DefaultHandK,
		EndK:       DefaultEndK,
		SnapK:      DefaultSnapK,
		SnapRadius: DefaultSnapRadius,
		Drag:       DefaultDrag,
	}
}

// Validate rejects configurations that would divide by zero inside the
// force model or inject energy through negative drag. Called by the
// constructors; a failed validation means no oscillator is created.
func (e ElasticConfig) Validate() error {
	if e.Mass <= 0 {
		return fmt.Errorf("%w, got %g", ErrNonPositiveMass, e.Mass)
	}
	if e.SnapRadius <= 0 {
		return fmt.Errorf("%w, got %g", ErrNonPositiveSnapRadius, e.SnapRadius)
	}
	if e.Drag < 0 {
		return fmt.Errorf("%w, got %g", ErrNegativeDrag, e.Drag)
	}
	return nil
}
