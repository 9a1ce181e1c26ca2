// Package mood derives a displayable mood from the creature's affect counters.
package mood

import "github.com/pthm-cable/gotchi/components"

// Mood is the creature's outward emotional state.
type Mood string

const (
	Content  Mood = "content"  // happy, calm
	Excited  Mood = "excited"  // happy, aroused
	Bored    Mood = "bored"    // unhappy, calm
	Stressed Mood = "stressed" // unhappy, aroused
	Asleep   Mood = "asleep"
	Dead     Mood = "dead"
)

// All lists every mood in display order.
func All() []Mood {
	return []Mood{Content, Excited, Bored, Stressed, Asleep, Dead}
}

// Classify places the creature in a happiness/arousal quadrant split at half
// of each counter's max. Death and sleep take precedence.
func Classify(happiness, arousal components.Counter, asleep, alive bool) Mood {
	switch {
	case !alive:
		return Dead
	case asleep:
		return Asleep
	}

	happy := 2*happiness.Value >= happiness.Max
	aroused := 2*arousal.Value >= arousal.Max

	switch {
	case happy && aroused:
		return Excited
	case happy:
		return Content
	case aroused:
		return Stressed
	default:
		return Bored
	}
}

// Wants reports whether the creature is visibly hungry or lonely, using the
// given thresholds on energy and attention.
func Wants(energy, attention components.Counter, hungryBelow, lonelyBelow int) (hungry, lonely bool) {
	return energy.Value <= hungryBelow, attention.Value <= lonelyBelow
}
