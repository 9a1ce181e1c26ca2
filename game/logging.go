package game

import (
	"log/slog"

	"github.com/pthm-cable/gotchi/creature"
)

func logDeath(name string, tick int32, cause creature.Attribute) {
	slog.Info("creature died",
		"name", name,
		"tick", tick,
		"cause", cause.String(),
	)
}

func logInput(name string, tick int32, attr creature.Attribute, accepted bool) {
	slog.Debug("input",
		"name", name,
		"tick", tick,
		"attribute", attr.String(),
		"accepted", accepted,
	)
}

// logWorldState logs a population summary.
func (g *Game) logWorldState() {
	var asleep int
	query := g.petFilter.Query()
	for query.Next() {
		_, pet, _ := query.Get()
		if pet.Creature.Alive() && pet.Creature.Asleep() {
			asleep++
		}
	}
	slog.Info("world state",
		"tick", g.tick,
		"alive", g.aliveCount,
		"asleep", asleep,
		"paused", g.paused,
		"steps_per_update", g.stepsPerUpdate,
	)
}
