package main

import (
	"math"
	"sync"

	"github.com/pthm-cable/gotchi/config"
	"github.com/pthm-cable/gotchi/game"
	"github.com/pthm-cable/gotchi/telemetry"
)

// FitnessEvaluator runs headless simulations and computes fitness.
type FitnessEvaluator struct {
	params      *ParamVector
	maxTicks    int32
	seeds       []int64
	population  int
	baseConfig  *config.Config
	statsWindow float64

	mu          sync.Mutex
	lastQuality float64 // quality from most recent Evaluate call
}

// NewFitnessEvaluator creates a new evaluator.
func NewFitnessEvaluator(params *ParamVector, maxTicks int32, seeds []int64, population int, baseCfg *config.Config) *FitnessEvaluator {
	return &FitnessEvaluator{
		params:      params,
		maxTicks:    maxTicks,
		seeds:       seeds,
		population:  population,
		baseConfig:  baseCfg,
		statsWindow: 60.0,
	}
}

// LastQuality returns the quality score from the most recent evaluation.
func (fe *FitnessEvaluator) LastQuality() float64 {
	fe.mu.Lock()
	defer fe.mu.Unlock()
	return fe.lastQuality
}

// runResult holds the results from a single simulation run.
type runResult struct {
	survivalTicks int32                   // ticks until the last death (or maxTicks)
	windowStats   []telemetry.WindowStats // collected via StatsCallback each window
}

type seedResult struct {
	fitness float64
	quality float64
}

// Evaluate computes fitness for a parameter vector (lower = better).
// Unusable parameter sets score +Inf.
func (fe *FitnessEvaluator) Evaluate(x []float64) float64 {
	cfg := fe.copyConfig()
	if err := fe.params.ApplyToConfig(cfg, x); err != nil {
		return math.Inf(1)
	}

	results := make([]seedResult, len(fe.seeds))
	var wg sync.WaitGroup

	for i, seed := range fe.seeds {
		wg.Add(1)
		go func(idx int, s int64) {
			defer wg.Done()
			// Each run gets its own config copy
			runCfg := *cfg
			result := fe.runSimulation(&runCfg, s)
			quality := computeQuality(result.windowStats, float64(cfg.Attributes.Happiness.Max))
			results[idx] = seedResult{
				fitness: fitness(result.survivalTicks, quality),
				quality: quality,
			}
		}(i, seed)
	}
	wg.Wait()

	var totalFitness, totalQuality float64
	for _, r := range results {
		totalFitness += r.fitness
		totalQuality += r.quality
	}

	n := float64(len(fe.seeds))
	fe.mu.Lock()
	fe.lastQuality = totalQuality / n
	fe.mu.Unlock()

	return totalFitness / n
}

// runSimulation executes a single headless run until every creature has
// died or maxTicks is reached.
func (fe *FitnessEvaluator) runSimulation(cfg *config.Config, seed int64) *runResult {
	result := &runResult{survivalTicks: fe.maxTicks}

	g, err := game.NewGameWithOptions(game.Options{
		Seed:           seed,
		Headless:       true,
		StatsWindowSec: fe.statsWindow,
		StepsPerUpdate: 1,
		Population:     fe.population,
		Config:         cfg,
		StatsCallback: func(stats telemetry.WindowStats) {
			result.windowStats = append(result.windowStats, stats)
		},
	})
	if err != nil {
		result.survivalTicks = 0
		return result
	}
	defer g.Unload()

	for g.Tick() < fe.maxTicks {
		g.UpdateHeadless()
		if g.AllDead() {
			result.survivalTicks = g.Tick()
			break
		}
	}
	return result
}

// copyConfig returns a copy of the base config. Config holds no shared
// references, so a value copy is deep.
func (fe *FitnessEvaluator) copyConfig() *config.Config {
	cfg := *fe.baseConfig
	return &cfg
}

// fitness combines survival and quality (lower = better).
// Survival dominates; quality adds up to 20% to separate configs that
// survive equally long.
func fitness(survivalTicks int32, quality float64) float64 {
	return -(float64(survivalTicks) * (1.0 + 0.2*quality))
}

// Quality component weights.
const (
	qualityWeightHappiness = 0.6
	qualityWeightMood      = 0.4

	qualityWarmupWindows = 1 // skip the first window while defaults settle
)

// computeQuality scores a run in [0, 1] from mean happiness and the share of
// living creatures that are content or excited.
func computeQuality(windows []telemetry.WindowStats, happinessMax float64) float64 {
	if len(windows) <= qualityWarmupWindows || happinessMax <= 0 {
		return 0
	}

	var happySum, moodSum float64
	var n int
	for _, w := range windows[qualityWarmupWindows:] {
		if w.Alive == 0 {
			continue
		}
		happySum += w.HappinessMean / happinessMax
		moodSum += float64(w.Content+w.Excited) / float64(w.Alive)
		n++
	}
	if n == 0 {
		return 0
	}

	quality := qualityWeightHappiness*happySum/float64(n) +
		qualityWeightMood*moodSum/float64(n)
	return clamp01(quality)
}

// clamp01 clamps x to [0, 1].
func clamp01(x float64) float64 {
	return min(max(x, 0), 1)
}
