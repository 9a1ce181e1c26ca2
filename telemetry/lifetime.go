package telemetry

import "github.com/pthm-cable/gotchi/creature"

// LifetimeStats tracks per-creature statistics over its lifetime.
type LifetimeStats struct {
	Name      string
	BirthTick int32

	TicksAsleep    int
	SleepOnsets    int
	InputsAccepted int
	InputsRejected int

	PeakHappiness int
	LowHappiness  int
	LowEnergy     int
}

// LifetimeRecord is the CSV row written when a creature dies or the run ends.
type LifetimeRecord struct {
	EntityID        uint32  `csv:"entity_id"`
	Name            string  `csv:"name"`
	BirthTick       int32   `csv:"birth_tick"`
	EndTick         int32   `csv:"end_tick"`
	SurvivalTimeSec float64 `csv:"survival_sec"`
	Died            bool    `csv:"died"`
	Cause           string  `csv:"cause"`
	TicksAsleep     int     `csv:"ticks_asleep"`
	SleepOnsets     int     `csv:"sleep_onsets"`
	InputsAccepted  int     `csv:"inputs_accepted"`
	InputsRejected  int     `csv:"inputs_rejected"`
	PeakHappiness   int     `csv:"peak_happiness"`
	LowHappiness    int     `csv:"low_happiness"`
	LowEnergy       int     `csv:"low_energy"`
}

// LifetimeTracker manages per-creature lifetime statistics.
type LifetimeTracker struct {
	stats map[uint32]*LifetimeStats
}

// NewLifetimeTracker creates a new lifetime tracker.
func NewLifetimeTracker() *LifetimeTracker {
	return &LifetimeTracker{
		stats: make(map[uint32]*LifetimeStats),
	}
}

// Register starts tracking a creature.
func (lt *LifetimeTracker) Register(entityID uint32, name string, birthTick int32, s creature.Snapshot) {
	lt.stats[entityID] = &LifetimeStats{
		Name:          name,
		BirthTick:     birthTick,
		PeakHappiness: s.Get(creature.Happiness).Value,
		LowHappiness:  s.Get(creature.Happiness).Value,
		LowEnergy:     s.Get(creature.Energy).Value,
	}
}

// Get returns the lifetime stats for a creature, or nil if not found.
func (lt *LifetimeTracker) Get(entityID uint32) *LifetimeStats {
	return lt.stats[entityID]
}

// Record applies an event to the creature it concerns.
func (lt *LifetimeTracker) Record(e Event) {
	s := lt.stats[e.EntityID]
	if s == nil {
		return
	}
	switch e.Type {
	case EventAsleep:
		s.SleepOnsets++
	case EventInput:
		if e.Accepted {
			s.InputsAccepted++
		} else {
			s.InputsRejected++
		}
	}
}

// Observe folds one tick of state into the creature's extremes.
func (lt *LifetimeTracker) Observe(entityID uint32, snap creature.Snapshot) {
	s := lt.stats[entityID]
	if s == nil || !snap.Alive {
		return
	}
	if snap.Asleep {
		s.TicksAsleep++
	}
	h := snap.Get(creature.Happiness).Value
	s.PeakHappiness = max(s.PeakHappiness, h)
	s.LowHappiness = min(s.LowHappiness, h)
	s.LowEnergy = min(s.LowEnergy, snap.Get(creature.Energy).Value)
}

// Remove stops tracking a creature and returns its record.
// ok is false if the creature was not tracked.
func (lt *LifetimeTracker) Remove(entityID uint32, snap creature.Snapshot, tickSec float64) (LifetimeRecord, bool) {
	s := lt.stats[entityID]
	if s == nil {
		return LifetimeRecord{}, false
	}
	delete(lt.stats, entityID)

	endTick := s.BirthTick + int32(snap.Tick)
	rec := LifetimeRecord{
		EntityID:        entityID,
		Name:            s.Name,
		BirthTick:       s.BirthTick,
		EndTick:         endTick,
		SurvivalTimeSec: float64(snap.Tick) * tickSec,
		Died:            !snap.Alive,
		TicksAsleep:     s.TicksAsleep,
		SleepOnsets:     s.SleepOnsets,
		InputsAccepted:  s.InputsAccepted,
		InputsRejected:  s.InputsRejected,
		PeakHappiness:   s.PeakHappiness,
		LowHappiness:    s.LowHappiness,
		LowEnergy:       s.LowEnergy,
	}
	if rec.Died {
		rec.Cause = snap.Cause.String()
	}
	return rec, true
}
