package game

import (
	"log/slog"

	"github.com/pthm-cable/gotchi/creature"
)

// flushTelemetry checks if the stats window should be flushed and handles bookmarks.
func (g *Game) flushTelemetry() {
	if !g.collector.ShouldFlush(g.tick) {
		return
	}

	stats := g.collector.Flush(g.tick, g.snapshots())
	perfStats := g.perfCollector.Flush()

	if g.statsCallback != nil {
		g.statsCallback(stats)
	}

	if g.logStats {
		stats.LogStats()
		perfStats.LogStats()
	}

	if err := g.outputManager.WriteTelemetry(stats); err != nil {
		slog.Error("failed to write telemetry", "error", err)
	}
	if err := g.outputManager.WritePerf(perfStats, stats.WindowEndTick, g.cfg.Sim.TickSeconds); err != nil {
		slog.Error("failed to write perf", "error", err)
	}

	for _, bm := range g.bookmarkDetector.Check(stats) {
		if g.logStats {
			bm.LogBookmark()
		}
		if err := g.outputManager.WriteBookmark(bm); err != nil {
			slog.Error("failed to write bookmark", "error", err)
		}
	}
}

// snapshots collects the state of every creature, dead or alive.
func (g *Game) snapshots() []creature.Snapshot {
	snaps := make([]creature.Snapshot, 0, g.nextID)
	query := g.petFilter.Query()
	for query.Next() {
		_, pet, _ := query.Get()
		snaps = append(snaps, pet.Creature.Snapshot())
	}
	return snaps
}
