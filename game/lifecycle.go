package game

import (
	"fmt"
	"log/slog"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/gotchi/components"
	"github.com/pthm-cable/gotchi/creature"
	"github.com/pthm-cable/gotchi/sensors"
)

// Pet is the ECS component carrying a creature and the sensors it reads.
type Pet struct {
	Creature *creature.Creature
	Source   sensors.Source
	Retired  bool // lifetime already written
}

// spawnPopulation creates the starting creatures. The first one is displayed.
func (g *Game) spawnPopulation(n int) error {
	for i := range n {
		e, err := g.spawnCreature()
		if err != nil {
			return err
		}
		if i == 0 {
			g.focus = e
		}
	}
	return nil
}

// spawnCreature builds a creature and adds it to the world.
// In interactive mode the displayed creature reads the keyboard-driven
// environment; every other creature lives in its own synthetic habitat.
func (g *Game) spawnCreature() (ecs.Entity, error) {
	c, err := creature.New(g.cfg)
	if err != nil {
		return ecs.Entity{}, fmt.Errorf("spawning creature: %w", err)
	}

	id := g.nextID
	g.nextID++

	var src sensors.Source
	if g.manual != nil && id == 0 {
		src = g.manual
	} else {
		th := sensors.ThresholdsFromConfig(g.cfg.Sensors)
		src = sensors.NewSchedule(g.cfg.Habitat, th, g.cfg.Sim.TickSeconds, g.rng)
	}

	ident := components.Identity{ID: id, Name: creatureName(id), BirthTick: g.tick}
	pet := Pet{Creature: c, Source: src}
	care := components.Care{}

	e := g.petMapper.NewEntity(&ident, &pet, &care)
	g.aliveCount++
	g.lifetimeTracker.Register(id, ident.Name, g.tick, c.Snapshot())

	return e, nil
}

// retireDead writes lifetime records for creatures that died this tick.
// Dead creatures stay in the world so telemetry keeps counting them.
func (g *Game) retireDead() {
	query := g.petFilter.Query()
	for query.Next() {
		ident, pet, _ := query.Get()
		if pet.Retired || pet.Creature.Alive() {
			continue
		}
		pet.Retired = true
		g.aliveCount--
		g.writeLifetime(ident.ID, pet.Creature.Snapshot())
	}
}

// finishLifetimes writes records for creatures still alive at shutdown.
func (g *Game) finishLifetimes() {
	query := g.petFilter.Query()
	for query.Next() {
		ident, pet, _ := query.Get()
		if pet.Retired {
			continue
		}
		pet.Retired = true
		g.writeLifetime(ident.ID, pet.Creature.Snapshot())
	}
}

func (g *Game) writeLifetime(id uint32, snap creature.Snapshot) {
	rec, ok := g.lifetimeTracker.Remove(id, snap, g.cfg.Sim.TickSeconds)
	if !ok {
		return
	}
	if err := g.outputManager.WriteLifetime(rec); err != nil {
		slog.Error("failed to write lifetime", "error", err)
	}
}

func creatureName(id uint32) string {
	if id == 0 {
		return "ellie"
	}
	return fmt.Sprintf("gotchi-%03d", id)
}
