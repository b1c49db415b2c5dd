package oscillator

import (
	"math"

	"github.com/san-kum/oscsim/internal/space"
)

// Radial generalizes the force model to any vector-space value type.
// Extent bounds apply to the norm of the displacement from the origin, so
// the end caps form spherical shells: the outer cap pushes inward along
// the radial direction, the inner cap pushes outward. Snap points are
// locations in T-space attracting within SnapRadius, exactly as on [Axis].
type Radial[T space.Value[T]] struct {
	value    T
	velocity T
	extent   ExtentConfig[T]
	elastic  ElasticConfig
}

// NewRadial builds an oscillator over any space.Value type. Same
// validation and ownership rules as [NewAxis].
func NewRadial[T space.Value[T]](value, velocity T, extent ExtentConfig[T], elastic ElasticConfig) (*Radial[T], error) {
	if err := elastic.Validate(); err != nil {
		return nil, err
	}
	return &Radial[T]{
		value:    value,
		velocity: velocity,
		extent:   extent.clone(),
		elastic:  elastic,
	}, nil
}

func (r *Radial[T]) Value() T    { return r.value }
func (r *Radial[T]) Velocity() T { return r.velocity }

// Step advances by dt toward forcing; velocity first, then position.
func (r *Radial[T]) Step(forcing T, dt float64) T {
	accel := r.force(forcing).Scale(1 / r.elastic.Mass)
	r.velocity = r.velocity.Add(accel.Scale(dt))
	r.value = r.value.Add(r.velocity.Scale(dt))
	return r.value
}

func (r *Radial[T]) force(forcing T) T {
	el := &r.elastic

	f := forcing.Sub(r.value).Scale(el.HandK).Sub(r.velocity.Scale(el.Drag))

	// Radial end caps need a direction, which is undefined at the origin.
	// A value sitting exactly at the origin inside an annular extent gets
	// no boundary force that step; any hand or snap force moves it off
	// the degenerate point on the next one.
	norm := r.value.Norm()
	if norm > 1e-12 {
		dir := r.value.Scale(1 / norm)

		dMax := r.extent.MaxStretch - norm
		if norm > r.extent.MaxStretch {
			f = f.Add(dir.Scale(dMax * el.EndK))
		} else if r.extent.SnapToEnd {
			f = f.Add(dir.Scale(dMax * el.EndK * (1 - clamp01(math.Abs(dMax)/el.SnapRadius))))
		}

		dMin := r.extent.MinStretch - norm
		if norm < r.extent.MinStretch {
			f = f.Add(dir.Scale(dMin * el.EndK))
		} else if r.extent.SnapToEnd {
			f = f.Add(dir.Scale(dMin * el.EndK * (1 - clamp01(math.Abs(dMin)/el.SnapRadius))))
		}
	}

	for _, p := range r.extent.SnapPoints {
		dp := p.Sub(r.value)
		f = f.Add(dp.Scale(el.SnapK * (1 - clamp01(dp.Norm()/el.SnapRadius))))
	}

	return f
}
