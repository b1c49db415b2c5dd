package metrics

// Overshoot tracks the largest excursion of the value past the forcing
// input, measured in the direction of travel relative to the first sample.
type Overshoot struct {
	max       float64
	first     bool
	direction float64
}

func NewOvershoot() *Overshoot {
	return &Overshoot{first: true}
}

func (o *Overshoot) Name() string { return "overshoot" }

func (o *Overshoot) Observe(value, velocity, forcing, t float64) {
	if o.first {
		// Direction of approach: from initial value toward the target.
		if forcing >= value {
			o.direction = 1
		} else {
			o.direction = -1
		}
		o.first = false
	}

	if excess := (value - forcing) * o.direction; excess > o.max {
		o.max = excess
	}
}

func (o *Overshoot) Value() float64 { return o.max }

func (o *Overshoot) Reset() {
	o.max = 0
	o.first = true
	o.direction = 0
}
