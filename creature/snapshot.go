package creature

import "github.com/pthm-cable/gotchi/components"

// Snapshot is a read-only copy of a creature's state for renderers and telemetry.
type Snapshot struct {
	Tick       int
	Alive      bool
	Asleep     bool
	Cause      Attribute
	Env        components.Environment
	Sleep      components.Sleep
	Selected   Attribute
	Attributes [NumAttributes]components.Counter
}

// Snapshot captures the current state.
func (c *Creature) Snapshot() Snapshot {
	selected, _ := c.Current()
	return Snapshot{
		Tick:       c.time,
		Alive:      c.alive,
		Asleep:     c.sleep.Asleep,
		Cause:      c.cause,
		Env:        c.env,
		Sleep:      c.sleep,
		Selected:   selected,
		Attributes: c.attrs,
	}
}

// Get returns one attribute's counter.
func (s Snapshot) Get(a Attribute) components.Counter {
	return s.Attributes[a]
}

// Current returns the selected attribute's counter.
func (s Snapshot) Current() components.Counter {
	return s.Attributes[s.Selected]
}
