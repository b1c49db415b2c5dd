// Package metrics provides run statistics implementing the driver Metric
// interface: settle time, overshoot, and a spring-energy estimate.
package metrics

import "math"

// SettleTime reports the earliest time after which the value stayed
// within Tolerance of the forcing input for the rest of the run. Returns
// -1 if it never settled.
type SettleTime struct {
	Tolerance float64
	settledAt float64
	settled   bool
	everMoved bool
}

func NewSettleTime(tolerance float64) *SettleTime {
	return &SettleTime{Tolerance: tolerance, settledAt: -1}
}

func (s *SettleTime) Name() string { return "settle_time" }

func (s *SettleTime) Observe(value, velocity, forcing, t float64) {
	s.everMoved = true
	if math.Abs(value-forcing) <= s.Tolerance {
		if !s.settled {
			s.settled = true
			s.settledAt = t
		}
		return
	}
	// Leaving the band invalidates an earlier settle.
	s.settled = false
	s.settledAt = -1
}

func (s *SettleTime) Value() float64 {
	if !s.everMoved || !s.settled {
		return -1
	}
	return s.settledAt
}

func (s *SettleTime) Reset() {
	s.settled = false
	s.settledAt = -1
	s.everMoved = false
}
