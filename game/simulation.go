package game

import (
	"time"

	"github.com/pthm-cable/gotchi/creature"
	"github.com/pthm-cable/gotchi/telemetry"
)

// simulationStep runs one tick: sensors, care, creatures, telemetry.
func (g *Game) simulationStep() {
	g.perfCollector.StartTick()

	g.perfCollector.StartPhase(telemetry.PhaseSensors)
	g.updateSensors()

	g.perfCollector.StartPhase(telemetry.PhaseCare)
	g.updateCare()

	g.perfCollector.StartPhase(telemetry.PhaseCreatures)
	g.updateCreatures()
	g.retireDead()

	g.tick++

	g.perfCollector.StartPhase(telemetry.PhaseTelemetry)
	g.flushTelemetry()

	g.perfCollector.EndTick()
}

// updateSensors writes each creature's environment for this tick.
func (g *Game) updateSensors() {
	query := g.petFilter.Query()
	for query.Next() {
		_, pet, _ := query.Get()
		if !pet.Creature.Alive() {
			continue
		}
		pet.Creature.SetEnvironment(pet.Source.Sample(g.tick))
	}
}

// updateCare lets the caretaker press buttons. The displayed creature in
// interactive mode is left to the player.
func (g *Game) updateCare() {
	query := g.petFilter.Query()
	for query.Next() {
		ident, pet, care := query.Get()
		if !g.headless && query.Entity() == g.focus {
			continue
		}

		res := g.caretaker.Tend(pet.Creature, care, g.tick)
		target, ok := res.Action.Target()
		if !ok {
			continue
		}
		g.recordEvent(telemetry.NewInputEvent(g.tick, ident.ID, target, g.cfg.Input.Increment, res.Accepted))
	}
}

// updateCreatures ticks every creature and records its transitions.
func (g *Game) updateCreatures() {
	query := g.petFilter.Query()
	for query.Next() {
		ident, pet, _ := query.Get()
		if !pet.Creature.Alive() {
			continue
		}

		start := time.Now()
		out := pet.Creature.Tick()
		g.perfCollector.ObserveCreature(time.Since(start))
		for _, e := range telemetry.EventsFromOutcome(ident.ID, out) {
			e.Tick = g.tick
			g.recordEvent(e)
		}
		if out.Died {
			logDeath(ident.Name, g.tick, out.Cause)
		}

		g.lifetimeTracker.Observe(ident.ID, pet.Creature.Snapshot())
	}
}

// recordEvent feeds an event to the window collector and lifetime tracker.
func (g *Game) recordEvent(e telemetry.Event) {
	g.collector.Record(e)
	g.lifetimeTracker.Record(e)
}

// applyInput presses increment on the displayed creature's current attribute.
func (g *Game) applyInput() bool {
	pet := g.petMap.Get(g.focus)
	ident := g.idMap.Get(g.focus)
	if pet == nil || ident == nil {
		return false
	}
	attr, _ := pet.Creature.Current()
	accepted := pet.Creature.ApplyCurrentInput(g.cfg.Input.Increment)
	g.recordEvent(telemetry.NewInputEvent(g.tick, ident.ID, attr, g.cfg.Input.Increment, accepted))
	logInput(ident.Name, g.tick, attr, accepted)
	return accepted
}

// selectNext advances the displayed creature's selection.
func (g *Game) selectNext() creature.Attribute {
	pet := g.petMap.Get(g.focus)
	if pet == nil {
		return 0
	}
	return pet.Creature.SelectNext()
}
