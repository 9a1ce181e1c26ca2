// Package main searches caretaker parameters that keep a headless
// population alive and happy, using CMA-ES.
package main

import "github.com/pthm-cable/gotchi/config"

// ParamSpec defines a single optimizable parameter.
type ParamSpec struct {
	Name    string  // Human-readable name
	Path    string  // Config path for logging
	Min     float64 // Lower bound
	Max     float64 // Upper bound
	Default float64 // Default value
}

// ParamVector holds the set of all optimizable parameters.
type ParamVector struct {
	Specs []ParamSpec
}

// NewParamVector creates the standard set of optimizable parameters.
func NewParamVector() *ParamVector {
	return &ParamVector{
		Specs: []ParamSpec{
			{Name: "feed_below", Path: "caretaker.feed_below", Min: 5, Max: 90, Default: 40},
			{Name: "play_below", Path: "caretaker.play_below", Min: 5, Max: 90, Default: 25},
			{Name: "cooldown_sec", Path: "caretaker.cooldown_sec", Min: 1, Max: 300, Default: 30},
			{Name: "increment", Path: "input.increment", Min: 1, Max: 20, Default: 5},
		},
	}
}

// Dim returns the number of parameters.
func (pv *ParamVector) Dim() int {
	return len(pv.Specs)
}

// Normalize converts raw parameter values to [0,1] range.
func (pv *ParamVector) Normalize(raw []float64) []float64 {
	normalized := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		normalized[i] = (raw[i] - spec.Min) / (spec.Max - spec.Min)
	}
	return normalized
}

// Denormalize converts [0,1] values back to raw parameter values.
func (pv *ParamVector) Denormalize(normalized []float64) []float64 {
	raw := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		raw[i] = spec.Min + normalized[i]*(spec.Max-spec.Min)
	}
	return raw
}

// Clamp ensures all values are within bounds.
func (pv *ParamVector) Clamp(v []float64) []float64 {
	clamped := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		clamped[i] = min(max(v[i], spec.Min), spec.Max)
	}
	return clamped
}

// ApplyToConfig applies parameter values to a Config and recomputes
// derived values. Order must match Specs order.
func (pv *ParamVector) ApplyToConfig(cfg *config.Config, values []float64) error {
	clamped := pv.Clamp(values)

	cfg.Caretaker.Enabled = true
	cfg.Caretaker.FeedBelow = int(clamped[0])
	cfg.Caretaker.PlayBelow = int(clamped[1])
	cfg.Caretaker.CooldownSec = clamped[2]
	cfg.Input.Increment = int(clamped[3])

	return cfg.Finalize()
}

// ExtractFromConfig extracts current parameter values from a Config.
func (pv *ParamVector) ExtractFromConfig(cfg *config.Config) []float64 {
	return []float64{
		float64(cfg.Caretaker.FeedBelow),
		float64(cfg.Caretaker.PlayBelow),
		cfg.Caretaker.CooldownSec,
		float64(cfg.Input.Increment),
	}
}
