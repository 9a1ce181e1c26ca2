package telemetry

import (
	"math"

	"github.com/pthm-cable/gotchi/creature"
	"github.com/pthm-cable/gotchi/mood"
)

// Collector accumulates events within time windows and produces WindowStats.
type Collector struct {
	windowDurationTicks int32
	tickSec             float64

	// Current window tracking
	windowStartTick int32

	// Event counters for current window
	deaths         int
	deathsAge      int
	deathsEnergy   int
	sleepOnsets    int
	wakeUps        int
	inputsAccepted int
	inputsRejected int
}

// NewCollector creates a new stats collector.
// windowDurationSec: how long each stats window lasts in simulation seconds
// tickSec: seconds per tick (used for tick-to-time conversion)
func NewCollector(windowDurationSec, tickSec float64) *Collector {
	ticksPerWindow := int32(math.Round(windowDurationSec / tickSec))
	if ticksPerWindow < 1 {
		ticksPerWindow = 1
	}

	return &Collector{
		windowDurationTicks: ticksPerWindow,
		tickSec:             tickSec,
	}
}

// Record counts an event in the current window.
func (c *Collector) Record(e Event) {
	switch e.Type {
	case EventDeath:
		c.deaths++
		switch e.Attr {
		case creature.Age:
			c.deathsAge++
		case creature.Energy:
			c.deathsEnergy++
		}
	case EventAsleep:
		c.sleepOnsets++
	case EventWake:
		c.wakeUps++
	case EventInput:
		if e.Accepted {
			c.inputsAccepted++
		} else {
			c.inputsRejected++
		}
	}
}

// ShouldFlush returns true if enough ticks have passed to flush the window.
func (c *Collector) ShouldFlush(currentTick int32) bool {
	return currentTick-c.windowStartTick >= c.windowDurationTicks
}

// Flush produces a WindowStats from the window's events and the population
// snapshots, then resets counters for the next window.
func (c *Collector) Flush(currentTick int32, snapshots []creature.Snapshot) WindowStats {
	stats := WindowStats{
		WindowStartTick: c.windowStartTick,
		WindowEndTick:   currentTick,
		SimTimeSec:      float64(currentTick) * c.tickSec,

		Deaths:         c.deaths,
		DeathsAge:      c.deathsAge,
		DeathsEnergy:   c.deathsEnergy,
		SleepOnsets:    c.sleepOnsets,
		WakeUps:        c.wakeUps,
		InputsAccepted: c.inputsAccepted,
		InputsRejected: c.inputsRejected,
	}

	var age, energy, happiness, arousal, attention, fatigue []float64
	for _, s := range snapshots {
		if !s.Alive {
			stats.Dead++
			continue
		}
		stats.Alive++
		if s.Asleep {
			stats.Asleep++
		}

		switch mood.Classify(s.Get(creature.Happiness), s.Get(creature.Arousal), s.Asleep, s.Alive) {
		case mood.Content:
			stats.Content++
		case mood.Excited:
			stats.Excited++
		case mood.Bored:
			stats.Bored++
		case mood.Stressed:
			stats.Stressed++
		}

		age = append(age, float64(s.Get(creature.Age).Value))
		energy = append(energy, float64(s.Get(creature.Energy).Value))
		happiness = append(happiness, float64(s.Get(creature.Happiness).Value))
		arousal = append(arousal, float64(s.Get(creature.Arousal).Value))
		attention = append(attention, float64(s.Get(creature.Attention).Value))
		fatigue = append(fatigue, float64(s.Get(creature.Fatigue).Value))
	}

	stats.AgeMean, _, _, _ = ComputeStats(age)
	stats.EnergyMean, stats.EnergyP10, stats.EnergyP50, stats.EnergyP90 = ComputeStats(energy)
	stats.HappinessMean, stats.HappinessP10, stats.HappinessP50, stats.HappinessP90 = ComputeStats(happiness)
	stats.ArousalMean, _, _, _ = ComputeStats(arousal)
	stats.AttentionMean, _, _, _ = ComputeStats(attention)
	stats.FatigueMean, _, _, stats.FatigueP90 = ComputeStats(fatigue)

	// Reset for next window
	c.windowStartTick = currentTick
	c.deaths = 0
	c.deathsAge = 0
	c.deathsEnergy = 0
	c.sleepOnsets = 0
	c.wakeUps = 0
	c.inputsAccepted = 0
	c.inputsRejected = 0

	return stats
}
