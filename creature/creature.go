// Package creature aggregates the attribute counters into a living creature
// and advances it one tick at a time.
package creature

import (
	"fmt"

	"github.com/pthm-cable/gotchi/components"
	"github.com/pthm-cable/gotchi/config"
	"github.com/pthm-cable/gotchi/systems"
)

// Creature owns the six attribute counters, the sleep state and the
// environment it currently observes.
//
// A Creature is not safe for concurrent use: ticks, input and environment
// writes are expected to come from one control loop.
type Creature struct {
	attrs [NumAttributes]components.Counter
	sleep components.Sleep
	env   components.Environment

	time  int
	alive bool
	cause Attribute

	// selected indexes order; it wraps and never decays
	selected components.Counter
	order    [NumAttributes]Attribute

	rules config.RulesConfig
}

// Outcome reports the state transitions of a single tick.
type Outcome struct {
	Tick       int
	Died       bool
	Cause      Attribute // valid when Died
	FellAsleep bool
	Woke       bool
}

// New builds a creature from the attribute and rule configuration.
// Misconfigured attributes (non-positive max or timebase) are rejected.
func New(cfg *config.Config) (*Creature, error) {
	specs := [NumAttributes]struct {
		attr     config.AttributeConfig
		timebase int
	}{
		Age:       {cfg.Attributes.Age, cfg.Derived.AgeTimebase},
		Energy:    {cfg.Attributes.Energy, cfg.Derived.EnergyTimebase},
		Happiness: {cfg.Attributes.Happiness, cfg.Derived.HappinessTimebase},
		Arousal:   {cfg.Attributes.Arousal, cfg.Derived.ArousalTimebase},
		Attention: {cfg.Attributes.Attention, cfg.Derived.AttentionTimebase},
		Fatigue:   {cfg.Attributes.Fatigue, cfg.Derived.FatigueTimebase},
	}

	c := &Creature{
		alive: true,
		order: DisplayOrder(),
		rules: cfg.Rules,
	}

	for i, s := range specs {
		counter, err := components.NewCounter(s.attr.Default, s.attr.Max, s.attr.Wrap, s.timebase, s.attr.ManualInput)
		if err != nil {
			return nil, fmt.Errorf("building %s: %w", Attribute(i), err)
		}
		c.attrs[i] = counter
	}

	selected, err := components.NewCounter(0, NumAttributes, true, 1, true)
	if err != nil {
		return nil, fmt.Errorf("building selection: %w", err)
	}
	c.selected = selected

	return c, nil
}

// Tick runs the six attribute rules in order and advances time.
// Once the creature has died Tick does nothing.
func (c *Creature) Tick() Outcome {
	if !c.alive {
		return Outcome{Tick: c.time}
	}

	t := c.time
	a := &c.attrs
	wasAsleep := c.sleep.Asleep

	if !systems.UpdateAge(&a[Age], t) {
		c.die(Age)
	}
	if !systems.UpdateEnergy(&a[Energy], c.sleep.Asleep, t, c.rules) {
		c.die(Energy)
	}
	systems.UpdateHappiness(&a[Happiness], a[Energy].Value, a[Fatigue].Value, c.sleep.Asleep, t, c.rules)
	systems.UpdateArousal(&a[Arousal], c.sleep.Asleep, t)
	systems.UpdateAttention(&a[Attention], &a[Arousal], c.env, c.sleep.Asleep, t, c.rules)
	systems.UpdateFatigue(&a[Fatigue], &c.sleep, c.env, a[Energy].Value, t, c.rules)

	c.time++

	out := Outcome{
		Tick:       t,
		Died:       !c.alive,
		FellAsleep: !wasAsleep && c.sleep.Asleep,
		Woke:       wasAsleep && !c.sleep.Asleep,
	}
	if out.Died {
		out.Cause = c.cause
	}
	return out
}

// die records the first cause of death; later causes are ignored.
func (c *Creature) die(cause Attribute) {
	if !c.alive {
		return
	}
	c.alive = false
	c.cause = cause
}

// SelectNext moves the selection to the next attribute in name order, wrapping.
func (c *Creature) SelectNext() Attribute {
	c.selected.Add(1)
	return c.order[c.selected.Value]
}

// Select moves the selection to a. It reports false for an unknown attribute.
func (c *Creature) Select(a Attribute) bool {
	for i, o := range c.order {
		if o == a {
			c.selected.Value = i
			return true
		}
	}
	return false
}

// Current returns the selected attribute and a copy of its counter.
func (c *Creature) Current() (Attribute, components.Counter) {
	a := c.order[c.selected.Value]
	return a, c.attrs[a]
}

// ApplyInput routes a manual adjustment to an attribute.
// Feeding (energy) also lifts happiness; playing (attention) also lifts arousal.
// Reports whether the input was accepted. Dead creatures accept nothing.
func (c *Creature) ApplyInput(attr Attribute, delta int) bool {
	if !c.alive || int(attr) >= NumAttributes {
		return false
	}
	a := &c.attrs
	switch attr {
	case Energy:
		return systems.InputEnergy(&a[Energy], &a[Happiness], delta)
	case Attention:
		return systems.InputAttention(&a[Attention], &a[Arousal], delta)
	default:
		return a[attr].ApplyInput(delta)
	}
}

// ApplyCurrentInput applies delta to the selected attribute.
func (c *Creature) ApplyCurrentInput(delta int) bool {
	attr, _ := c.Current()
	return c.ApplyInput(attr, delta)
}

// SetEnvironment replaces the observed environment; it is read on the next Tick.
func (c *Creature) SetEnvironment(env components.Environment) {
	c.env = env
}

// Environment returns the observed environment.
func (c *Creature) Environment() components.Environment {
	return c.env
}

// Attribute returns a copy of one attribute's counter, or the zero Counter
// for an attribute outside [0, NumAttributes).
func (c *Creature) Attribute(a Attribute) components.Counter {
	if int(a) >= NumAttributes {
		return components.Counter{}
	}
	return c.attrs[a]
}

// Time returns the number of ticks run so far.
func (c *Creature) Time() int { return c.time }

// Alive reports whether the creature is alive.
func (c *Creature) Alive() bool { return c.alive }

// Asleep reports whether the creature is asleep.
func (c *Creature) Asleep() bool { return c.sleep.Asleep }

// DeathCause returns the attribute that killed the creature.
// The second result is false while the creature lives.
func (c *Creature) DeathCause() (Attribute, bool) {
	return c.cause, !c.alive
}
