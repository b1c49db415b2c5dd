package oscillator

import "errors"

// Configuration errors reported at construction time.
var (
	// ErrNonPositiveMass indicates an elastic config whose mass would
	// divide to NaN/Inf during integration.
	ErrNonPositiveMass = errors.New("oscillator: mass must be positive")

	// ErrNonPositiveSnapRadius indicates a snap radius that would divide
	// to NaN/Inf when computing snap falloff.
	ErrNonPositiveSnapRadius = errors.New("oscillator: snap radius must be positive")

	// ErrNegativeDrag indicates a drag coefficient that would inject
	// energy instead of dissipating it.
	ErrNegativeDrag = errors.New("oscillator: drag must be non-negative")
)
