package systems

import (
	"github.com/pthm-cable/gotchi/components"
	"github.com/pthm-cable/gotchi/config"
)

// UpdateHappiness applies hunger, tiredness and natural decay on the
// happiness decay tick. Energy should already be updated for this tick.
func UpdateHappiness(happiness *components.Counter, energy, fatigue int, asleep bool, tick int, rules config.RulesConfig) {
	if !happiness.IsDecayTick(tick) {
		return
	}

	if energy <= rules.HungerThreshold {
		happiness.Add(-rules.HungerPenalty)
	}
	if fatigue >= rules.TiredThreshold {
		happiness.Add(-rules.TiredPenalty)
	}
	if !asleep {
		happiness.Add(-1)
	}
}

// UpdateArousal zeroes arousal while asleep, then decays it on its own tick.
func UpdateArousal(arousal *components.Counter, asleep bool, tick int) {
	if asleep {
		arousal.Set(0)
	}
	if arousal.IsDecayTick(tick) {
		arousal.Add(-1)
	}
}

// UpdateAttention boosts attention and arousal every tick with sound present,
// then decays attention on its own tick while awake.
func UpdateAttention(attention, arousal *components.Counter, env components.Environment, asleep bool, tick int, rules config.RulesConfig) {
	if env.Sound {
		attention.Add(rules.SoundBoost)
		arousal.Add(rules.SoundBoost)
	}
	if attention.IsDecayTick(tick) && !asleep {
		attention.Add(-1)
	}
}

// InputAttention plays with the creature: the amount goes to attention and arousal.
// Nothing changes unless attention accepts manual input.
func InputAttention(attention, arousal *components.Counter, amount int) bool {
	if !attention.ManualInput {
		return false
	}
	arousal.Add(amount)
	attention.Add(amount)
	return true
}
