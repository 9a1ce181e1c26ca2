package game

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pthm-cable/gotchi/config"
	"github.com/pthm-cable/gotchi/creature"
	"github.com/pthm-cable/gotchi/telemetry"
)

func newHeadless(t *testing.T, cfg *config.Config, opts Options) *Game {
	t.Helper()
	if err := cfg.Finalize(); err != nil {
		t.Fatalf("Finalize failed: %v", err)
	}
	opts.Headless = true
	opts.Config = cfg
	g, err := NewGameWithOptions(opts)
	if err != nil {
		t.Fatalf("NewGameWithOptions failed: %v", err)
	}
	return g
}

func countLines(t *testing.T, path string) int {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	return len(strings.Split(strings.TrimSpace(string(data)), "\n"))
}

func TestHeadlessRunWritesOutput(t *testing.T) {
	dir := t.TempDir()
	var windows []telemetry.WindowStats

	g := newHeadless(t, config.Default(), Options{
		Seed:           1,
		Population:     4,
		OutputDir:      dir,
		StatsWindowSec: 1, // 10 ticks
		StatsCallback: func(s telemetry.WindowStats) {
			windows = append(windows, s)
		},
	})

	for range 50 {
		g.UpdateHeadless()
	}
	if g.Tick() != 50 {
		t.Errorf("tick = %d, want 50", g.Tick())
	}
	if g.AliveCount() != 4 {
		t.Errorf("alive = %d, want 4", g.AliveCount())
	}
	g.Unload()

	if len(windows) != 5 {
		t.Fatalf("got %d windows, want 5", len(windows))
	}
	if windows[0].Alive != 4 {
		t.Errorf("window alive = %d, want 4", windows[0].Alive)
	}

	// Header plus one row per window / creature
	if n := countLines(t, filepath.Join(dir, "telemetry.csv")); n != 6 {
		t.Errorf("telemetry.csv has %d lines, want 6", n)
	}
	if n := countLines(t, filepath.Join(dir, "lifetimes.csv")); n != 5 {
		t.Errorf("lifetimes.csv has %d lines, want 5", n)
	}
	if _, err := os.Stat(filepath.Join(dir, "config.yaml")); err != nil {
		t.Errorf("config.yaml missing: %v", err)
	}
}

func TestStarvationKillsPopulation(t *testing.T) {
	cfg := config.Default()
	cfg.Caretaker.Enabled = false
	cfg.Attributes.Energy.Default = 2
	cfg.Attributes.Energy.PeriodSec = cfg.Sim.TickSeconds

	var deaths int
	g := newHeadless(t, cfg, Options{
		Seed:           3,
		Population:     3,
		StatsWindowSec: cfg.Sim.TickSeconds,
		StatsCallback: func(s telemetry.WindowStats) {
			deaths += s.DeathsEnergy
		},
	})
	defer g.Unload()

	g.UpdateHeadless()

	if !g.AllDead() {
		t.Fatalf("alive = %d after the first energy decay, want 0", g.AliveCount())
	}
	if deaths != 3 {
		t.Errorf("energy deaths = %d, want 3", deaths)
	}

	// Dead creatures stay dead and time stops for them
	g.UpdateHeadless()
	query := g.petFilter.Query()
	for query.Next() {
		_, pet, _ := query.Get()
		if pet.Creature.Time() != 1 {
			t.Errorf("creature time = %d, want 1", pet.Creature.Time())
		}
		if cause, dead := pet.Creature.DeathCause(); !dead || cause != creature.Energy {
			t.Errorf("cause = %v (dead %v), want energy", cause, dead)
		}
	}
}

func TestCaretakerFeedsHungryCreatures(t *testing.T) {
	cfg := config.Default()
	cfg.Attributes.Energy.Default = 20

	g := newHeadless(t, cfg, Options{Seed: 5, Population: 2})
	defer g.Unload()

	g.UpdateHeadless()

	query := g.petFilter.Query()
	for query.Next() {
		_, pet, care := query.Get()
		if care.Feeds != 1 {
			t.Errorf("feeds = %d, want 1", care.Feeds)
		}
		// +5 from feeding, then -2 on the first decay tick
		if e := pet.Creature.Attribute(creature.Energy).Value; e != 23 {
			t.Errorf("energy = %d, want 23", e)
		}
		if cur, _ := pet.Creature.Current(); cur != creature.Energy {
			t.Errorf("selection = %v, want energy", cur)
		}
	}
}

// binaryTickConfig uses a tick interval that is exact in floating point.
func binaryTickConfig() *config.Config {
	cfg := config.Default()
	cfg.Sim.TickSeconds = 0.125
	return cfg
}

func TestAdvanceRunsOwedTicks(t *testing.T) {
	g := newHeadless(t, binaryTickConfig(), Options{Seed: 2, Population: 2})
	defer g.Unload()

	if n := g.advance(0.4); n != 3 {
		t.Errorf("ran %d ticks, want 3", n)
	}
	// The leftover 0.025 s carries into the next frame
	if n := g.advance(0.11); n != 1 {
		t.Errorf("ran %d ticks, want 1", n)
	}
	if g.Tick() != 4 {
		t.Errorf("tick = %d, want 4", g.Tick())
	}
}

func TestAdvanceCapsCatchUp(t *testing.T) {
	g := newHeadless(t, binaryTickConfig(), Options{Seed: 2, Population: 2, StepsPerUpdate: 2})
	defer g.Unload()

	// A 100 s stall at 2x speed owes 1600 ticks
	if n := g.advance(100); n != 2*maxCatchUp {
		t.Errorf("ran %d ticks, want %d", n, 2*maxCatchUp)
	}
	if g.Tick() != 2*maxCatchUp {
		t.Errorf("tick = %d, want %d", g.Tick(), 2*maxCatchUp)
	}
	if g.tickAccum != 0 {
		t.Errorf("carried %v s into the next frame, want 0", g.tickAccum)
	}

	perf := g.perfCollector.Flush()
	if perf.Frames != 1 || perf.TicksPerFrame != 2*maxCatchUp {
		t.Errorf("frames = %d, ticks per frame = %v", perf.Frames, perf.TicksPerFrame)
	}
	if perf.MaxOwedSec != 200 {
		t.Errorf("owed = %v s, want 200", perf.MaxOwedSec)
	}
	if perf.DroppedSec != 197.5 {
		t.Errorf("dropped = %v s, want 197.5", perf.DroppedSec)
	}
	// Two creatures for each of the 20 ticks
	if perf.CreatureTicks != 40 {
		t.Errorf("creature ticks = %d, want 40", perf.CreatureTicks)
	}

	// The next ordinary frame is not penalised
	if n := g.advance(0.25); n != 4 {
		t.Errorf("ran %d ticks after the stall, want 4", n)
	}
}

func TestSelectOption(t *testing.T) {
	g := newHeadless(t, config.Default(), Options{Seed: 1, Population: 1, Select: "fatigue"})
	defer g.Unload()

	if cur, _ := g.petMap.Get(g.focus).Creature.Current(); cur != creature.Fatigue {
		t.Errorf("selection = %v, want fatigue", cur)
	}

	cfg := config.Default()
	if err := cfg.Finalize(); err != nil {
		t.Fatal(err)
	}
	if _, err := NewGameWithOptions(Options{Headless: true, Config: cfg, Population: 1, Select: "hunger"}); err == nil {
		t.Error("unknown attribute should fail")
	}
}

func TestHUDDataShowsWants(t *testing.T) {
	cfg := config.Default()
	cfg.Attributes.Energy.Default = 30
	cfg.Attributes.Attention.Default = 60

	g := newHeadless(t, cfg, Options{Seed: 1, Population: 2})
	defer g.Unload()

	snap := g.petMap.Get(g.focus).Creature.Snapshot()
	d := g.hudData(snap)
	if !d.Hungry || d.Lonely {
		t.Errorf("hungry = %v, lonely = %v, want hungry only", d.Hungry, d.Lonely)
	}
	if d.Alive != 2 || d.Population != 2 {
		t.Errorf("alive %d of %d, want 2 of 2", d.Alive, d.Population)
	}

	snap.Attributes[creature.Attention].Value = cfg.Caretaker.PlayBelow
	if d := g.hudData(snap); !d.Lonely {
		t.Error("attention at play_below should read as lonely")
	}

	snap.Alive = false
	if d := g.hudData(snap); d.Hungry || d.Lonely {
		t.Error("a dead creature shows no wants")
	}
}
