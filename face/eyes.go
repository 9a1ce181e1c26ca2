// Package face holds the display state of the creature's face: the eye
// animation and the screen layout. It does no drawing itself.
package face

import (
	"math/rand"

	"github.com/pthm-cable/gotchi/config"
)

// EyeState is what the eyes are doing.
type EyeState uint8

const (
	EyesOpen EyeState = iota
	EyesBlink
	EyesSleep
	EyesDead
)

func (s EyeState) String() string {
	switch s {
	case EyesOpen:
		return "open"
	case EyesBlink:
		return "blink"
	case EyesSleep:
		return "sleep"
	case EyesDead:
		return "dead"
	default:
		return "unknown"
	}
}

// maxGaze bounds the random gaze angle in radians.
const maxGaze = 6.0

// Eyes animates blinking and gazing between frames.
type Eyes struct {
	State EyeState `inspect:"label"`
	Gaze  float64  `inspect:"angle"` // radians; pupils sit at (sin, cos) of this angle

	blinkCount    int
	blinkChance   float64
	gazeChance    float64
	blinkDuration int
}

// NewEyes creates open eyes.
func NewEyes(cfg config.EyesConfig) *Eyes {
	return &Eyes{
		Gaze:          1,
		blinkChance:   cfg.BlinkChance,
		gazeChance:    cfg.GazeChance,
		blinkDuration: cfg.BlinkDuration,
	}
}

// Update advances the animation by one frame.
// Death is final; sleep closes the eyes until the creature wakes.
// Returns true when the eyes need redrawing.
func (e *Eyes) Update(alive, asleep bool, rng *rand.Rand) bool {
	switch {
	case e.State == EyesDead:
		return false
	case !alive:
		e.State = EyesDead
		return true
	case asleep:
		if e.State == EyesSleep {
			return false
		}
		e.State = EyesSleep
		return true
	case e.State == EyesSleep:
		e.State = EyesOpen
		return true
	}

	changed := false
	switch e.State {
	case EyesBlink:
		e.blinkCount++
		if e.blinkCount > e.blinkDuration {
			e.State = EyesOpen
			changed = true
		}
	case EyesOpen:
		if rng.Float64() < e.blinkChance {
			e.State = EyesBlink
			e.blinkCount = 0
			changed = true
		}
		if rng.Float64() < e.gazeChance {
			e.Gaze = rng.Float64() * maxGaze
			changed = true
		}
	}
	return changed
}

// Closed reports whether the eyes are drawn as lines.
func (e *Eyes) Closed() bool {
	return e.State == EyesBlink || e.State == EyesSleep
}
