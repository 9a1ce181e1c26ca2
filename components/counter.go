package components

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidMax is returned when a counter is built with a non-positive max.
	ErrInvalidMax = errors.New("counter max must be positive")
	// ErrInvalidTimebase is returned when a counter is built with a timebase below one tick.
	ErrInvalidTimebase = errors.New("counter timebase must be at least 1")
)

// Counter is a bounded integer attribute with its own decay cadence.
// Value stays within [0, Max]; with Wrap set, reaching Max resets it to 0.
type Counter struct {
	Value       int  `inspect:"bar,maxfield:Max"`
	Max         int  `inspect:"label"`
	Wrap        bool `inspect:"skip"`
	Timebase    int  `inspect:"label"` // ticks between decay events
	ManualInput bool `inspect:"bool"`  // button input may change the value
}

// NewCounter builds a counter, rejecting a non-positive max or a timebase below 1.
func NewCounter(def, max int, wrap bool, timebase int, manualInput bool) (Counter, error) {
	if max <= 0 {
		return Counter{}, fmt.Errorf("%w: got %d", ErrInvalidMax, max)
	}
	if timebase < 1 {
		return Counter{}, fmt.Errorf("%w: got %d", ErrInvalidTimebase, timebase)
	}
	return Counter{
		Value:       def,
		Max:         max,
		Wrap:        wrap,
		Timebase:    timebase,
		ManualInput: manualInput,
	}, nil
}

// Add adds delta and applies the boundary policy.
// Returns false when the boundary was hit (value reached max or went below 0).
func (c *Counter) Add(delta int) bool {
	c.Value += delta
	if c.Value >= c.Max {
		if c.Wrap {
			c.Value = 0
		} else {
			c.Value = c.Max
		}
		return false
	}
	if c.Value < 0 {
		c.Value = 0
		return false
	}
	return true
}

// Set overwrites the value without clamping.
func (c *Counter) Set(v int) {
	c.Value = v
}

// Scaled maps the value onto [0, scale] with integer truncation.
func (c Counter) Scaled(scale int) int {
	return scale * c.Value / c.Max
}

// IsDecayTick reports whether the counter decays on tick t.
// Tick 0 always fires.
func (c Counter) IsDecayTick(t int) bool {
	return t%c.Timebase == 0
}

// ApplyInput adds delta if the counter accepts manual input.
// Reports whether the input was accepted.
func (c *Counter) ApplyInput(delta int) bool {
	if !c.ManualInput {
		return false
	}
	c.Add(delta)
	return true
}
