package systems

import (
	"testing"

	"github.com/pthm-cable/gotchi/components"
)

func TestUpdateHappiness_Penalties(t *testing.T) {
	rules := testRules()

	tests := []struct {
		name    string
		energy  int
		fatigue int
		asleep  bool
		want    int
	}{
		{"content awake", 80, 50, false, 69},
		{"content asleep", 80, 50, true, 70},
		{"hungry awake", 30, 50, false, 67},
		{"tired awake", 80, 80, false, 66},
		{"hungry and tired awake", 10, 90, false, 64},
		{"hungry and tired asleep", 10, 90, true, 65},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := counter(t, 70, 100, 1, false)
			UpdateHappiness(&h, tt.energy, tt.fatigue, tt.asleep, 0, rules)
			if h.Value != tt.want {
				t.Errorf("happiness = %d, want %d", h.Value, tt.want)
			}
		})
	}

	off := counter(t, 70, 100, 10, false)
	UpdateHappiness(&off, 0, 100, false, 3, rules)
	if off.Value != 70 {
		t.Errorf("off-tick happiness changed to %d", off.Value)
	}
}

func TestUpdateArousal_SleepResetsEveryTick(t *testing.T) {
	a := counter(t, 50, 100, 10, false)

	UpdateArousal(&a, true, 3)
	if a.Value != 0 {
		t.Errorf("asleep arousal = %d, want 0", a.Value)
	}

	a.Set(40)
	UpdateArousal(&a, false, 3)
	if a.Value != 40 {
		t.Errorf("awake off-tick arousal = %d, want 40", a.Value)
	}
	UpdateArousal(&a, false, 10)
	if a.Value != 39 {
		t.Errorf("awake decay arousal = %d, want 39", a.Value)
	}
}

func TestUpdateAttention_SoundBoost(t *testing.T) {
	rules := testRules()
	loud := components.Environment{Sound: true}
	quiet := components.Environment{}

	att := counter(t, 50, 100, 10, true)
	ar := counter(t, 50, 100, 10, false)

	// Off-tick with sound: boost only
	UpdateAttention(&att, &ar, loud, false, 3, rules)
	if att.Value != 53 || ar.Value != 53 {
		t.Errorf("attention/arousal = %d/%d, want 53/53", att.Value, ar.Value)
	}

	// Decay tick with sound: boost then decay
	UpdateAttention(&att, &ar, loud, false, 10, rules)
	if att.Value != 55 || ar.Value != 56 {
		t.Errorf("attention/arousal = %d/%d, want 55/56", att.Value, ar.Value)
	}

	// Decay tick asleep, quiet: nothing
	UpdateAttention(&att, &ar, quiet, true, 20, rules)
	if att.Value != 55 {
		t.Errorf("asleep attention = %d, want 55", att.Value)
	}
}

func TestInputAttention_RaisesArousal(t *testing.T) {
	att := counter(t, 50, 100, 1, true)
	ar := counter(t, 20, 100, 1, false)

	if !InputAttention(&att, &ar, 5) {
		t.Fatal("play should be accepted")
	}
	if att.Value != 55 || ar.Value != 25 {
		t.Errorf("attention/arousal = %d/%d, want 55/25", att.Value, ar.Value)
	}
}
