// Package config loads, saves, and defaults the yaml run configuration
// used by the CLI.
package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/oscsim/internal/forcing"
	"github.com/san-kum/oscsim/internal/oscillator"
)

const (
	DefaultDt       = 1.0 / 60.0
	DefaultDuration = 10.0
)

type Config struct {
	Dt       float64       `yaml:"dt"`
	Duration float64       `yaml:"duration"`
	Init     InitConfig    `yaml:"init"`
	Elastic  ElasticConfig `yaml:"elastic"`
	Extent   ExtentConfig  `yaml:"extent"`
	Signal   SignalConfig  `yaml:"signal"`
}

type InitConfig struct {
	Value    float64 `yaml:"value"`
	Velocity float64 `yaml:"velocity"`
}

type ElasticConfig struct {
	Mass       float64 `yaml:"mass"`
	HandK      float64 `yaml:"hand_k"`
	EndK       float64 `yaml:"end_k"`
	SnapK      float64 `yaml:"snap_k"`
	SnapRadius float64 `yaml:"snap_radius"`
	Drag       float64 `yaml:"drag"`
}

type ExtentConfig struct {
	MinStretch float64   `yaml:"min_stretch"`
	MaxStretch float64   `yaml:"max_stretch"`
	SnapToEnd  bool      `yaml:"snap_to_end"`
	SnapPoints []float64 `yaml:"snap_points"`
}

// SignalConfig selects the forcing signal. Type is one of "constant",
// "step", "sine", "ramp".
type SignalConfig struct {
	Type      string  `yaml:"type"`
	Value     float64 `yaml:"value"`
	Before    float64 `yaml:"before"`
	After     float64 `yaml:"after"`
	Switch    float64 `yaml:"switch"`
	Amplitude float64 `yaml:"amplitude"`
	Frequency float64 `yaml:"frequency"`
	Offset    float64 `yaml:"offset"`
	Start     float64 `yaml:"start"`
	End       float64 `yaml:"end"`
	RampTime  float64 `yaml:"ramp_time"`
}

func DefaultConfig() *Config {
	el := oscillator.DefaultElastic()
	return &Config{
		Dt:       DefaultDt,
		Duration: DefaultDuration,
		Elastic: ElasticConfig{
			Mass:       el.Mass,
			HandK:      el.HandK,
			EndK:       el.EndK,
			SnapK:      el.SnapK,
			SnapRadius: el.SnapRadius,
			Drag:       el.Drag,
		},
		Extent: ExtentConfig{MinStretch: -1, MaxStretch: 1},
		Signal: SignalConfig{Type: "constant", Value: 0.5},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// BuildElastic converts the yaml section to kernel config.
func (c *Config) BuildElastic() oscillator.ElasticConfig {
	return oscillator.ElasticConfig{
		Mass:       c.Elastic.Mass,
		HandK:      c.Elastic.HandK,
		EndK:       c.Elastic.EndK,
		SnapK:      c.Elastic.SnapK,
		SnapRadius: c.Elastic.SnapRadius,
		Drag:       c.Elastic.Drag,
	}
}

// BuildExtent converts the yaml section to kernel config.
func (c *Config) BuildExtent() oscillator.ExtentConfig[float64] {
	return oscillator.ExtentConfig[float64]{
		MinStretch: c.Extent.MinStretch,
		MaxStretch: c.Extent.MaxStretch,
		SnapToEnd:  c.Extent.SnapToEnd,
		SnapPoints: c.Extent.SnapPoints,
	}
}

// BuildSignal constructs the forcing signal; unknown types fall back to a
// constant at Value.
func (c *Config) BuildSignal() forcing.Signal {
	s := c.Signal
	switch s.Type {
	case "step":
		return forcing.Step{Before: s.Before, After: s.After, Switch: s.Switch}
	case "sine":
		return forcing.Sine{Amplitude: s.Amplitude, Frequency: s.Frequency, Offset: s.Offset}
	case "ramp":
		return forcing.Ramp{Start: s.Start, End: s.End, Duration: s.RampTime}
	default:
		return forcing.Constant{Value: s.Value}
	}
}
