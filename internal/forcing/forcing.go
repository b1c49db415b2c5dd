// Package forcing provides scalar forcing signals for driving an
// oscillator: stand-ins for the tracked input a host application would
// supply each frame.
package forcing

import (
	"math"
	"sort"
)

// Signal yields the forcing value at time t. Implementations must be pure
// over t so runs are reproducible.
type Signal interface {
	At(t float64) float64
}

// Constant holds the forcing at a fixed value.
type Constant struct {
	Value float64
}

func (c Constant) At(float64) float64 { return c.Value }

// Step switches from Before to After at time Switch, modeling a target
// that jumps (grab, release, teleport).
type Step struct {
	Before, After float64
	Switch        float64
}

func (s Step) At(t float64) float64 {
	if t < s.Switch {
		return s.Before
	}
	return s.After
}

// Sine oscillates around Offset, modeling a hand waving back and forth.
type Sine struct {
	Amplitude float64
	Frequency float64 // Hz
	Offset    float64
}

func (s Sine) At(t float64) float64 {
	return s.Offset + s.Amplitude*math.Sin(2*math.Pi*s.Frequency*t)
}

// Ramp moves linearly from Start toward End over Duration, then holds.
type Ramp struct {
	Start, End float64
	Duration   float64
}

func (r Ramp) At(t float64) float64 {
	if r.Duration <= 0 || t >= r.Duration {
		return r.End
	}
	if t <= 0 {
		return r.Start
	}
	return r.Start + (r.End-r.Start)*(t/r.Duration)
}

// Sample is one recorded forcing observation.
type Sample struct {
	T     float64
	Value float64
}

// Samples replays a recorded forcing sequence with linear interpolation,
// holding the first and last values outside the recorded range.
type Samples struct {
	points []Sample
}

// NewSamples copies and time-sorts the recording.
func NewSamples(points []Sample) *Samples {
	s := &Samples{points: make([]Sample, len(points))}
	copy(s.points, points)
	sort.Slice(s.points, func(i, j int) bool { return s.points[i].T < s.points[j].T })
	return s
}

func (s *Samples) At(t float64) float64 {
	n := len(s.points)
	if n == 0 {
		return 0
	}
	if t <= s.points[0].T {
		return s.points[0].Value
	}
	if t >= s.points[n-1].T {
		return s.points[n-1].Value
	}

	i := sort.Search(n, func(i int) bool { return s.points[i].T >= t })
	a, b := s.points[i-1], s.points[i]
	if b.T == a.T {
		return b.Value
	}
	frac := (t - a.T) / (b.T - a.T)
	return a.Value + (b.Value-a.Value)*frac
}
