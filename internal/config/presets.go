package config

import "sort"

// Presets are named backdrop band sets.
var Presets = map[string][]BandConfig{
	"default": {
		{Baseline: 0.5, Frequency: 0.005, Amplitude: 80, Speed: 0.01, Color: "#22d3ee0d"},
		{Baseline: 0.5, Frequency: 0.008, Amplitude: 60, Speed: 0.02, Color: "#22d3ee1a"},
		{Baseline: 0.55, Frequency: 0.004, Amplitude: 100, Speed: 0.005, Color: "#38bdf80d"},
	},
	"calm": {
		{Baseline: 0.6, Frequency: 0.003, Amplitude: 40, Speed: 0.005, Color: "#38bdf80d"},
		{Baseline: 0.65, Frequency: 0.004, Amplitude: 30, Speed: 0.008, Color: "#22d3ee14"},
	},
	"surge": {
		{Baseline: 0.45, Frequency: 0.007, Amplitude: 120, Speed: 0.02, Color: "#22d3ee14"},
		{Baseline: 0.5, Frequency: 0.011, Amplitude: 90, Speed: 0.035, Color: "#38bdf81a"},
		{Baseline: 0.55, Frequency: 0.005, Amplitude: 140, Speed: 0.01, Color: "#a855f70d"},
		{Baseline: 0.6, Frequency: 0.009, Amplitude: 70, Speed: 0.025, Color: "#22d3ee0d"},
	},
}

// GetPreset returns the bands of a named preset, or nil.
func GetPreset(name string) []BandConfig {
	bands, ok := Presets[name]
	if !ok {
		return nil
	}
	return append([]BandConfig(nil), bands...)
}

// ListPresets returns preset names in sorted order.
func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for n := range Presets {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
