package systems

import (
	"testing"

	"github.com/pthm-cable/gotchi/components"
)

func TestUpdateFatigue_FallsAsleepImmediatelyInDark(t *testing.T) {
	rules := testRules() // ticks_to_sleep: 0
	f := counter(t, 50, 100, 1, false)
	var sleep components.Sleep
	dark := components.Environment{Dark: true}

	UpdateFatigue(&f, &sleep, dark, 80, 0, rules)
	if !sleep.Asleep {
		t.Error("expected to fall asleep on the first dark decay tick")
	}
	if f.Value != 49 {
		t.Errorf("fatigue = %d, want 49", f.Value)
	}
}

func TestUpdateFatigue_ThresholdCountsDarkDecayTicks(t *testing.T) {
	rules := testRules()
	rules.TicksToSleep = 2
	f := counter(t, 50, 100, 5, false)
	var sleep components.Sleep
	dark := components.Environment{Dark: true}

	// Off-ticks never count
	for tick := 1; tick < 5; tick++ {
		UpdateFatigue(&f, &sleep, dark, 80, tick, rules)
	}
	if sleep.DarkTicks != 0 {
		t.Fatalf("off-ticks counted: dark ticks = %d", sleep.DarkTicks)
	}

	UpdateFatigue(&f, &sleep, dark, 80, 5, rules)
	UpdateFatigue(&f, &sleep, dark, 80, 10, rules)
	if sleep.Asleep {
		t.Fatal("fell asleep before threshold")
	}
	if f.Value != 50 {
		t.Errorf("fatigue changed while counting: %d", f.Value)
	}

	UpdateFatigue(&f, &sleep, dark, 80, 15, rules)
	if !sleep.Asleep {
		t.Error("expected asleep once threshold reached")
	}
	if f.Value != 49 {
		t.Errorf("fatigue = %d, want 49", f.Value)
	}
}

func TestUpdateFatigue_LightBuildsFatigueAndWakes(t *testing.T) {
	rules := testRules()
	f := counter(t, 50, 100, 1, false)
	sleep := components.Sleep{Asleep: true, DarkTicks: 4}

	UpdateFatigue(&f, &sleep, components.Environment{}, 80, 0, rules)
	if sleep.Asleep {
		t.Error("light should wake the creature")
	}
	if sleep.DarkTicks != 0 {
		t.Errorf("dark ticks = %d, want reset", sleep.DarkTicks)
	}
	if f.Value != 51 {
		t.Errorf("fatigue = %d, want 51", f.Value)
	}
}

func TestUpdateFatigue_WakeChecksOffTick(t *testing.T) {
	rules := testRules()
	tests := []struct {
		name   string
		env    components.Environment
		energy int
		asleep bool
	}{
		{"dark and quiet stays asleep", components.Environment{Dark: true}, 80, true},
		{"sound wakes", components.Environment{Dark: true, Sound: true}, 80, false},
		{"hunger wakes", components.Environment{Dark: true}, 10, false},
		{"light wakes", components.Environment{}, 80, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := counter(t, 50, 100, 100, false)
			sleep := components.Sleep{Asleep: true}
			UpdateFatigue(&f, &sleep, tt.env, tt.energy, 7, rules)
			if sleep.Asleep != tt.asleep {
				t.Errorf("asleep = %v, want %v", sleep.Asleep, tt.asleep)
			}
			if f.Value != 50 {
				t.Errorf("off-tick fatigue changed to %d", f.Value)
			}
		})
	}
}
