package oscillator

import "math"

// Axis is the one-dimensional oscillator variant: a single scalar value
// pulled toward the forcing input by a damped spring, held inside
// [MinStretch, MaxStretch] by one-sided end-cap forces, and locally
// attracted by snap points.
type Axis struct {
	value    float64
	velocity float64
	extent   ExtentConfig[float64]
	elastic  ElasticConfig
}

// NewAxis builds a scalar oscillator from an initial value and velocity.
// The configs are copied in and treated as immutable for the instance's
// lifetime. Returns a configuration error when the elastic coefficients
// would produce non-finite forces.
func NewAxis(value, velocity float64, extent ExtentConfig[float64], elastic ElasticConfig) (*Axis, error) {
	if err := elastic.Validate(); err != nil {
		return nil, err
	}
	return &Axis{
		value:    value,
		velocity: velocity,
		extent:   extent.clone(),
		elastic:  elastic,
	}, nil
}

func (a *Axis) Value() float64    { return a.value }
func (a *Axis) Velocity() float64 { return a.velocity }

// Step advances the oscillator by dt toward forcing and returns the new
// value. Velocity is integrated before position (semi-implicit Euler);
// swapping that order destabilizes stiff configurations.
func (a *Axis) Step(forcing, dt float64) float64 {
	accel := a.force(forcing) / a.elastic.Mass
	a.velocity += accel * dt
	a.value += a.velocity * dt
	return a.value
}

// force sums the four force terms at the current state. Kept separate
// from Step so the superposition is testable without integrating.
func (a *Axis) force(forcing float64) float64 {
	el := &a.elastic

	// Hand spring toward the forcing input, damped by velocity.
	f := (forcing-a.value)*el.HandK - el.Drag*a.velocity

	// End caps. Each bound is one-sided: a full restoring spring past the
	// cap, or an optional magnetizing pull within SnapRadius of it. The
	// two bounds are independent and additive.
	dMax := a.extent.MaxStretch - a.value
	if a.value > a.extent.MaxStretch {
		f += dMax * el.EndK
	} else if a.extent.SnapToEnd {
		f += dMax * el.EndK * (1 - clamp01(math.Abs(dMax/el.SnapRadius)))
	}

	dMin := a.extent.MinStretch - a.value
	if a.value < a.extent.MinStretch {
		f += dMin * el.EndK
	} else if a.extent.SnapToEnd {
		f += dMin * el.EndK * (1 - clamp01(math.Abs(dMin/el.SnapRadius)))
	}

	// Snap points superpose: each contributes its own falloff spring, so
	// a value between two nearby points feels both.
	for _, p := range a.extent.SnapPoints {
		dp := p - a.value
		f += dp * el.SnapK * (1 - clamp01(math.Abs(dp/el.SnapRadius)))
	}

	return f
}
