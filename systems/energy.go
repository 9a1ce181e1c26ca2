package systems

import (
	"github.com/pthm-cable/gotchi/components"
	"github.com/pthm-cable/gotchi/config"
)

// UpdateAge advances age by one on its decay tick.
// Returns false once the maximum age is reached.
func UpdateAge(age *components.Counter, tick int) bool {
	if !age.IsDecayTick(tick) {
		return true
	}
	return age.Add(1)
}

// UpdateEnergy applies metabolic decay on the energy decay tick.
// Sleeping halves the drain. Returns false when energy is exhausted.
func UpdateEnergy(energy *components.Counter, asleep bool, tick int, rules config.RulesConfig) bool {
	if !energy.IsDecayTick(tick) {
		return true
	}

	delta := -rules.EnergyDecayAwake
	if asleep {
		delta = -rules.EnergyDecayAsleep
	}

	ok := energy.Add(delta)
	return ok && energy.Value > 0
}

// InputEnergy feeds the creature: the amount goes to energy and happiness.
// Nothing changes unless energy accepts manual input.
func InputEnergy(energy, happiness *components.Counter, amount int) bool {
	if !energy.ManualInput {
		return false
	}
	happiness.Add(amount)
	energy.Add(amount)
	return true
}
