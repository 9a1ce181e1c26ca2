package systems

import (
	"github.com/pthm-cable/gotchi/components"
	"github.com/pthm-cable/gotchi/config"
)

// UpdateFatigue runs the wake check every tick and the sleep/fatigue
// transition on the fatigue decay tick.
//
// Light, critically low energy, or sound wake the creature. On a decay tick in
// the dark the creature falls asleep once it has seen rules.TicksToSleep dark
// decay events, and rests off one point of fatigue. In the light fatigue builds
// up by one and the dark count resets.
func UpdateFatigue(fatigue *components.Counter, sleep *components.Sleep, env components.Environment, energy int, tick int, rules config.RulesConfig) {
	if env.Light() || energy <= rules.EnergyCritical || env.Sound {
		sleep.Asleep = false
	}

	if !fatigue.IsDecayTick(tick) {
		return
	}

	if env.Dark {
		if sleep.DarkTicks >= rules.TicksToSleep {
			sleep.Asleep = true
			fatigue.Add(-1)
		} else {
			sleep.DarkTicks++
		}
		return
	}

	fatigue.Add(1)
	sleep.Asleep = false
	sleep.DarkTicks = 0
}
