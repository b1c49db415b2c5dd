package oscillator

// Oscillator is the generic contract of a damped-oscillator variant over a
// value type T. Step advances the simulation by dt toward the forcing
// value, mutates the internal state, and returns the new value. Value and
// Velocity return copies of the current state without mutation.
type Oscillator[T any] interface {
	Step(forcing T, dt float64) T
	Value() T
	Velocity() T
}

// clamp01 clamps x to [0, 1]. Ratios beyond the snap radius must
// contribute zero force, never negative.
func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
