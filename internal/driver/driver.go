// Package driver steps an oscillator against a forcing signal at a fixed
// cadence and records the trajectory. It is the reference per-frame loop a
// host application would otherwise run itself.
package driver

import (
	"context"
	"fmt"

	"github.com/san-kum/oscsim/internal/forcing"
	"github.com/san-kum/oscsim/internal/oscillator"
	"github.com/san-kum/oscsim/internal/space"
)

// Metric aggregates a statistic over a run.
type Metric interface {
	Name() string
	Observe(value, velocity, forcing, t float64)
	Value() float64
	Reset()
}

// Observer is called once per step with the state before integration.
type Observer interface {
	OnStep(value, velocity, forcing, t float64)
}

// Config controls a run. ValidateState stops the run as soon as the
// oscillator state turns non-finite; divergence is recorded, never
// repaired.
type Config struct {
	Dt            float64
	Duration      float64
	ValidateState bool
}

func DefaultConfig() Config {
	return Config{Dt: 1.0 / 60.0, Duration: 10.0, ValidateState: true}
}

// Result is the recorded trajectory of one run.
type Result struct {
	Times      []float64
	Values     []float64
	Velocities []float64
	Forcings   []float64
	Metrics    map[string]float64
	StepsTaken int
	Diverged   bool
}

// StepError reports where a run stopped.
type StepError struct {
	Step    int
	Time    float64
	Message string
}

func (e StepError) Error() string {
	return fmt.Sprintf("step %d (t=%.4f): %s", e.Step, e.Time, e.Message)
}

// Driver owns the oscillator and signal for the duration of a run.
type Driver struct {
	osc       oscillator.Oscillator[float64]
	signal    forcing.Signal
	metrics   []Metric
	observers []Observer
}

func New(osc oscillator.Oscillator[float64], signal forcing.Signal) *Driver {
	return &Driver{osc: osc, signal: signal}
}

func (d *Driver) AddMetric(m Metric)     { d.metrics = append(d.metrics, m) }
func (d *Driver) AddObserver(o Observer) { d.observers = append(d.observers, o) }

// Run steps the oscillator for cfg.Duration at cfg.Dt, recording every
// sample. The initial state is recorded at t=0 before the first step.
func (d *Driver) Run(ctx context.Context, cfg Config) (*Result, error) {
	if err := validate(cfg); err != nil {
		return nil, err
	}

	steps := int(cfg.Duration / cfg.Dt)
	result := &Result{
		Times:      make([]float64, 0, steps+1),
		Values:     make([]float64, 0, steps+1),
		Velocities: make([]float64, 0, steps+1),
		Forcings:   make([]float64, 0, steps+1),
		Metrics:    make(map[string]float64),
	}

	for _, m := range d.metrics {
		m.Reset()
	}

	t := 0.0
	record := func(f float64) {
		result.Times = append(result.Times, t)
		result.Values = append(result.Values, d.osc.Value())
		result.Velocities = append(result.Velocities, d.osc.Velocity())
		result.Forcings = append(result.Forcings, f)
	}
	record(d.signal.At(0))

	for i := 0; i < steps; i++ {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		f := d.signal.At(t)
		for _, m := range d.metrics {
			m.Observe(d.osc.Value(), d.osc.Velocity(), f, t)
		}
		for _, obs := range d.observers {
			obs.OnStep(d.osc.Value(), d.osc.Velocity(), f, t)
		}

		d.osc.Step(f, cfg.Dt)
		t += cfg.Dt
		result.StepsTaken++
		record(f)

		if cfg.ValidateState && !space.Finite(d.osc.Value(), d.osc.Velocity()) {
			result.Diverged = true
			return result, StepError{Step: i, Time: t, Message: "state diverged (NaN/Inf)"}
		}
	}

	for _, m := range d.metrics {
		result.Metrics[m.Name()] = m.Value()
	}

	return result, nil
}

// RunWithCallback steps until the duration elapses or the callback returns
// false. Used by live views that render each frame themselves.
func (d *Driver) RunWithCallback(ctx context.Context, cfg Config, callback func(value, velocity, forcing, t float64) bool) error {
	if err := validate(cfg); err != nil {
		return err
	}

	t := 0.0
	for t < cfg.Duration {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		f := d.signal.At(t)
		if !callback(d.osc.Value(), d.osc.Velocity(), f, t) {
			return nil
		}

		d.osc.Step(f, cfg.Dt)
		t += cfg.Dt

		if cfg.ValidateState && !space.Finite(d.osc.Value(), d.osc.Velocity()) {
			return fmt.Errorf("state diverged at t=%.4f", t)
		}
	}

	return nil
}

func validate(cfg Config) error {
	if cfg.Dt <= 0 {
		return fmt.Errorf("dt must be positive, got %f", cfg.Dt)
	}
	if cfg.Duration <= 0 {
		return fmt.Errorf("duration must be positive, got %f", cfg.Duration)
	}
	return nil
}
