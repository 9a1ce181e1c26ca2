// Package game runs a population of creatures in an ECS world, feeding them
// sensor samples and input, and drives telemetry and the raylib front end.
package game

import (
	"fmt"
	"log/slog"
	"math/rand"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/gotchi/caretaker"
	"github.com/pthm-cable/gotchi/components"
	"github.com/pthm-cable/gotchi/config"
	"github.com/pthm-cable/gotchi/creature"
	"github.com/pthm-cable/gotchi/face"
	"github.com/pthm-cable/gotchi/inspector"
	"github.com/pthm-cable/gotchi/renderer"
	"github.com/pthm-cable/gotchi/sensors"
	"github.com/pthm-cable/gotchi/telemetry"
	"github.com/pthm-cable/gotchi/ui"
)

// Options configures game initialization.
type Options struct {
	Seed           int64
	LogStats       bool
	StatsWindowSec float64 // 0 = use config
	OutputDir      string
	Headless       bool
	StepsPerUpdate int
	Population     int            // 0 = use config
	Config         *config.Config // nil = global config
	Select         string         // attribute selected on the displayed creature ("" = first)

	// StatsCallback receives every flushed window (used by the tuner).
	StatsCallback func(telemetry.WindowStats)
}

// Game holds the simulation state.
type Game struct {
	cfg *config.Config

	world *ecs.World
	rng   *rand.Rand
	fxRng *rand.Rand // eye animation only, keeps runs reproducible

	// ECS mappers and filters
	petMapper *ecs.Map3[components.Identity, Pet, components.Care]
	petFilter *ecs.Filter3[components.Identity, Pet, components.Care]
	idMap     *ecs.Map1[components.Identity]
	petMap    *ecs.Map1[Pet]
	careMap   *ecs.Map1[components.Care]

	// Displayed creature and its manual sensor source (interactive mode)
	focus  ecs.Entity
	manual *sensors.Manual

	caretaker *caretaker.Caretaker

	// Telemetry
	collector        *telemetry.Collector
	lifetimeTracker  *telemetry.LifetimeTracker
	perfCollector    *telemetry.PerfCollector
	bookmarkDetector *telemetry.BookmarkDetector
	outputManager    *telemetry.OutputManager
	statsCallback    func(telemetry.WindowStats)
	logStats         bool

	// Front end (nil when headless)
	faceRenderer *renderer.FaceRenderer
	inspector    *inspector.Inspector
	eyes         *face.Eyes
	hud          *ui.HUD
	controls     *ui.ControlBar

	tick           int32
	nextID         uint32
	aliveCount     int
	paused         bool
	headless       bool
	stepsPerUpdate int
	tickAccum      float64 // unspent frame time, seconds
}

// NewGameWithOptions creates a game and spawns its population.
func NewGameWithOptions(opts Options) (*Game, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Cfg()
	}

	population := cfg.Habitat.Population
	if opts.Population > 0 {
		population = opts.Population
	}

	statsWindowSec := opts.StatsWindowSec
	if statsWindowSec <= 0 {
		statsWindowSec = cfg.Telemetry.StatsWindow
	}

	stepsPerUpdate := opts.StepsPerUpdate
	if stepsPerUpdate < 1 {
		stepsPerUpdate = 1
	}

	world := ecs.NewWorld()

	g := &Game{
		cfg:   cfg,
		world: world,
		rng:   rand.New(rand.NewSource(opts.Seed)),
		fxRng: rand.New(rand.NewSource(opts.Seed + 1)),

		petMapper: ecs.NewMap3[components.Identity, Pet, components.Care](world),
		petFilter: ecs.NewFilter3[components.Identity, Pet, components.Care](world),
		idMap:     ecs.NewMap1[components.Identity](world),
		petMap:    ecs.NewMap1[Pet](world),
		careMap:   ecs.NewMap1[components.Care](world),

		caretaker: caretaker.New(cfg),

		collector:        telemetry.NewCollector(statsWindowSec, cfg.Sim.TickSeconds),
		lifetimeTracker:  telemetry.NewLifetimeTracker(),
		perfCollector:    telemetry.NewPerfCollector(cfg.Telemetry.PerfCollectorWindow),
		bookmarkDetector: telemetry.NewBookmarkDetector(10),
		statsCallback:    opts.StatsCallback,
		logStats:         opts.LogStats,

		headless:       opts.Headless,
		stepsPerUpdate: stepsPerUpdate,
	}

	om, err := telemetry.NewOutputManager(opts.OutputDir)
	if err != nil {
		return nil, fmt.Errorf("creating output manager: %w", err)
	}
	g.outputManager = om
	if err := g.outputManager.WriteConfig(cfg); err != nil {
		slog.Error("failed to write config", "error", err)
	}

	if !g.headless {
		g.manual = &sensors.Manual{}
	}

	if err := g.spawnPopulation(population); err != nil {
		g.outputManager.Close()
		return nil, err
	}
	if opts.Select != "" {
		attr, err := creature.ParseAttribute(opts.Select)
		if err != nil {
			g.outputManager.Close()
			return nil, err
		}
		g.petMap.Get(g.focus).Creature.Select(attr)
	}

	if !g.headless {
		w, h := int32(cfg.Screen.Width), int32(cfg.Screen.Height)
		g.faceRenderer = renderer.NewFaceRenderer(w, h)
		g.inspector = inspector.NewInspector(w, h)
		g.eyes = face.NewEyes(cfg.Eyes)
		g.hud = ui.NewHUD()
		g.controls = ui.NewControlBar(w, h)
	}

	return g, nil
}

// Update runs one frame in graphical mode.
func (g *Game) Update() {
	g.handleInput()
	if !g.paused {
		g.advance(float64(rl.GetFrameTime()))
	}

	if pet := g.petMap.Get(g.focus); pet != nil {
		g.eyes.Update(pet.Creature.Alive(), pet.Creature.Asleep(), g.fxRng)
	}
}

// maxCatchUp bounds the ticks one frame may run, as a multiple of the speed.
const maxCatchUp = 10

// advance runs the ticks owed for elapsed seconds of wall time. Ticks run at
// the configured interval and speed multiplies wall time. A frame runs at
// most stepsPerUpdate*maxCatchUp ticks; time owed beyond that is dropped so
// a stalled window does not freeze the loop catching up.
func (g *Game) advance(elapsed float64) int {
	tickSec := g.cfg.Sim.TickSeconds
	g.tickAccum += elapsed * float64(g.stepsPerUpdate)

	owed := int(g.tickAccum / tickSec)
	g.tickAccum -= float64(owed) * tickSec

	n, dropped := owed, 0.0
	if limit := g.stepsPerUpdate * maxCatchUp; n > limit {
		dropped = float64(n-limit) * tickSec
		n = limit
	}
	for range n {
		g.simulationStep()
	}
	g.perfCollector.RecordFrame(n, float64(owed)*tickSec, dropped)
	return n
}

// UpdateHeadless runs simulation steps without any raylib calls.
func (g *Game) UpdateHeadless() {
	for range g.stepsPerUpdate {
		g.simulationStep()
	}
}

// Tick returns the number of simulation steps run.
func (g *Game) Tick() int32 {
	return g.tick
}

// AliveCount returns the number of living creatures.
func (g *Game) AliveCount() int {
	return g.aliveCount
}

// AllDead reports whether every creature has died.
func (g *Game) AllDead() bool {
	return g.aliveCount == 0
}

// Config returns the configuration the game was built with.
func (g *Game) Config() *config.Config {
	return g.cfg
}

// Unload writes the lifetimes of surviving creatures and closes output files.
func (g *Game) Unload() {
	g.finishLifetimes()
	if err := g.outputManager.Close(); err != nil {
		slog.Error("failed to close output", "error", err)
	}
}
