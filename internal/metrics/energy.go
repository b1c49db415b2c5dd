package metrics

// Energy estimates the oscillator's mechanical energy at the last sample:
// kinetic energy of the mass plus elastic energy stored in the hand
// spring. Useful for spotting integration schemes that pump energy in.
type Energy struct {
	Mass  float64
	HandK float64
	last  float64
}

func NewEnergy(mass, handK float64) *Energy {
	return &Energy{Mass: mass, HandK: handK}
}

func (e *Energy) Name() string { return "energy" }

func (e *Energy) Observe(value, velocity, forcing, t float64) {
	stretch := forcing - value
	e.last = 0.5*e.Mass*velocity*velocity + 0.5*e.HandK*stretch*stretch
}

func (e *Energy) Value() float64 { return e.last }

func (e *Energy) Reset() { e.last = 0 }
