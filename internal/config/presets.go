package config

import "sort"

// Presets are named feels for the scalar oscillator, keyed by name.
var Presets = map[string]*Config{
	// Loose spring, heavy damping: value trails the hand softly.
	"soft": {
		Dt: DefaultDt, Duration: 10.0,
		Elastic: ElasticConfig{Mass: 1, HandK: 5, EndK: 5, SnapK: 0, SnapRadius: 0.5, Drag: 3},
		Extent:  ExtentConfig{MinStretch: -1, MaxStretch: 1},
		Signal:  SignalConfig{Type: "sine", Amplitude: 0.8, Frequency: 0.3},
	},
	// Tight spring, light damping: snappy with visible ringing.
	"stiff": {
		Dt: DefaultDt, Duration: 10.0,
		Elastic: ElasticConfig{Mass: 1, HandK: 60, EndK: 20, SnapK: 0, SnapRadius: 0.5, Drag: 2},
		Extent:  ExtentConfig{MinStretch: -1, MaxStretch: 1},
		Signal:  SignalConfig{Type: "step", Before: 0, After: 0.8, Switch: 1.0},
	},
	// Evenly spaced detents along the travel, like a notched slider.
	"detent-rail": {
		Dt: DefaultDt, Duration: 12.0,
		Elastic: ElasticConfig{Mass: 1, HandK: 10, EndK: 5, SnapK: 20, SnapRadius: 0.15, Drag: 2},
		Extent: ExtentConfig{
			MinStretch: -1, MaxStretch: 1,
			SnapPoints: []float64{-0.75, -0.5, -0.25, 0, 0.25, 0.5, 0.75},
		},
		Signal: SignalConfig{Type: "ramp", Start: -1, End: 1, RampTime: 10},
	},
	// Magnetized end caps: the value clicks home when released near a cap.
	"end-snap": {
		Dt: DefaultDt, Duration: 8.0,
		Elastic: ElasticConfig{Mass: 1, HandK: 10, EndK: 8, SnapK: 0, SnapRadius: 0.4, Drag: 2},
		Extent:  ExtentConfig{MinStretch: -1, MaxStretch: 1, SnapToEnd: true},
		Signal:  SignalConfig{Type: "step", Before: 0.7, After: 0.7, Switch: 0},
	},
}

func GetPreset(name string) *Config {
	return Presets[name]
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
