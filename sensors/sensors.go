// Package sensors turns raw or synthetic light and sound readings into the
// environment a creature observes.
package sensors

import (
	"math"
	"math/rand"

	"github.com/pthm-cable/gotchi/components"
	"github.com/pthm-cable/gotchi/config"
)

// Source produces the environment for a tick.
// Sources may keep state between calls and expect ticks in increasing order.
type Source interface {
	Sample(tick int32) components.Environment
}

// Thresholds classify normalized light and sound levels.
type Thresholds struct {
	DarkBelow  float64
	SoundAbove float64
}

// ThresholdsFromConfig builds thresholds from the sensors config section.
func ThresholdsFromConfig(cfg config.SensorsConfig) Thresholds {
	return Thresholds{DarkBelow: cfg.DarkBelow, SoundAbove: cfg.SoundAbove}
}

// Classify maps light and sound levels in [0, 1] to an environment.
func (t Thresholds) Classify(light, sound float64) components.Environment {
	return components.Environment{
		Dark:  light < t.DarkBelow,
		Sound: sound > t.SoundAbove,
	}
}

// Levels produced by the synthetic schedule.
const (
	dayLight   = 1.0
	nightLight = 0.05
	burstSound = 0.9
	quietSound = 0.1
)

// Schedule is a synthetic habitat: a repeating day/night cycle with the night
// at the end of each day, plus random sound bursts.
type Schedule struct {
	thresholds Thresholds
	rng        *rand.Rand

	dayTicks    int32
	nightTicks  int32
	phase       int32
	soundChance float64
	soundTicks  int32

	soundLeft int32
}

// NewSchedule builds a schedule from the habitat config. With phase jitter the
// cycle starts at a random point of the day.
func NewSchedule(h config.HabitatConfig, th Thresholds, tickSec float64, rng *rand.Rand) *Schedule {
	dayTicks := max(int32(math.Round(h.DaySec/tickSec)), 1)
	s := &Schedule{
		thresholds:  th,
		rng:         rng,
		dayTicks:    dayTicks,
		nightTicks:  int32(math.Round(float64(dayTicks) * h.NightFraction)),
		soundChance: h.SoundChance,
		soundTicks:  max(int32(math.Round(h.SoundSec/tickSec)), 1),
	}
	if h.PhaseJitter {
		s.phase = rng.Int31n(dayTicks)
	}
	return s
}

// Levels returns the raw light and sound levels for a tick.
func (s *Schedule) Levels(tick int32) (light, sound float64) {
	pos := (tick + s.phase) % s.dayTicks
	light = dayLight
	if pos >= s.dayTicks-s.nightTicks {
		light = nightLight
	}

	sound = quietSound
	if s.soundLeft > 0 {
		s.soundLeft--
		sound = burstSound
	} else if s.rng.Float64() < s.soundChance {
		s.soundLeft = s.soundTicks - 1
		sound = burstSound
	}
	return light, sound
}

// Sample implements Source.
func (s *Schedule) Sample(tick int32) components.Environment {
	return s.thresholds.Classify(s.Levels(tick))
}

// Manual is a source driven by user toggles.
type Manual struct {
	Env components.Environment
}

// ToggleDark flips the light switch.
func (m *Manual) ToggleDark() { m.Env.Dark = !m.Env.Dark }

// ToggleSound starts or stops a sound.
func (m *Manual) ToggleSound() { m.Env.Sound = !m.Env.Sound }

// Sample implements Source.
func (m *Manual) Sample(int32) components.Environment { return m.Env }
