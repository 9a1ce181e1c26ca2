package telemetry

import (
	"math"
	"testing"

	"github.com/pthm-cable/gotchi/creature"
)

func TestLifetimeTracker_TracksExtremes(t *testing.T) {
	lt := NewLifetimeTracker()
	lt.Register(1, "ellie", 0, testSnapshot(80, 70, 50, false, true))

	lt.Observe(1, testSnapshot(60, 90, 50, false, true))
	lt.Observe(1, testSnapshot(30, 40, 50, true, true))
	lt.Observe(1, testSnapshot(35, 45, 50, true, true))
	lt.Record(NewAsleepEvent(2, 1))
	lt.Record(NewInputEvent(3, 1, creature.Energy, 5, true))
	lt.Record(NewInputEvent(4, 1, creature.Age, 5, false))
	lt.Record(NewInputEvent(4, 99, creature.Age, 5, false)) // untracked

	s := lt.Get(1)
	if s == nil {
		t.Fatal("creature not tracked")
	}
	if s.PeakHappiness != 90 || s.LowHappiness != 40 || s.LowEnergy != 30 {
		t.Errorf("happiness %d..%d, low energy %d", s.LowHappiness, s.PeakHappiness, s.LowEnergy)
	}
	if s.TicksAsleep != 2 || s.SleepOnsets != 1 {
		t.Errorf("ticks asleep %d, onsets %d", s.TicksAsleep, s.SleepOnsets)
	}
	if s.InputsAccepted != 1 || s.InputsRejected != 1 {
		t.Errorf("inputs %d/%d, want 1/1", s.InputsAccepted, s.InputsRejected)
	}
}

func TestLifetimeTracker_Remove(t *testing.T) {
	lt := NewLifetimeTracker()
	lt.Register(1, "ellie", 0, testSnapshot(80, 70, 50, false, true))

	final := testSnapshot(0, 10, 0, false, false)
	final.Tick = 1500
	final.Cause = creature.Energy

	rec, ok := lt.Remove(1, final, 0.1)
	if !ok {
		t.Fatal("Remove reported untracked creature")
	}
	if !rec.Died || rec.Cause != "energy" || rec.Name != "ellie" {
		t.Errorf("record = %+v", rec)
	}
	if rec.EndTick != 1500 || math.Abs(rec.SurvivalTimeSec-150) > 1e-9 {
		t.Errorf("end %d, survival %v", rec.EndTick, rec.SurvivalTimeSec)
	}
	if _, ok := lt.Remove(1, final, 0.1); ok {
		t.Error("second Remove should report not found")
	}
}

func TestLifetimeTracker_SurvivorHasNoCause(t *testing.T) {
	lt := NewLifetimeTracker()
	lt.Register(4, "pip", 0, testSnapshot(80, 70, 50, false, true))

	rec, _ := lt.Remove(4, testSnapshot(80, 70, 50, false, true), 0.1)
	if rec.Died || rec.Cause != "" {
		t.Errorf("survivor record = %+v", rec)
	}
	if _, ok := lt.Remove(4, testSnapshot(80, 70, 50, false, true), 0.1); ok {
		t.Error("survivor still tracked after Remove")
	}
}
