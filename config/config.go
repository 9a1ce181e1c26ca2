// Package config provides configuration loading and access for the simulation.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all simulation configuration parameters.
type Config struct {
	Sim        SimConfig        `yaml:"sim"`
	Attributes AttributesConfig `yaml:"attributes"`
	Rules      RulesConfig      `yaml:"rules"`
	Input      InputConfig      `yaml:"input"`
	Sensors    SensorsConfig    `yaml:"sensors"`
	Habitat    HabitatConfig    `yaml:"habitat"`
	Caretaker  CaretakerConfig  `yaml:"caretaker"`
	Telemetry  TelemetryConfig  `yaml:"telemetry"`
	Screen     ScreenConfig     `yaml:"screen"`
	Eyes       EyesConfig       `yaml:"eyes"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// SimConfig holds the tick cadence.
// The simulation itself only counts ticks; TickSeconds converts the
// configured attribute periods into tick timebases.
type SimConfig struct {
	TickSeconds float64 `yaml:"tick_seconds"`
}

// AttributeConfig describes one bounded attribute.
type AttributeConfig struct {
	Default     int     `yaml:"default"`
	Max         int     `yaml:"max"`
	Wrap        bool    `yaml:"wrap"`
	PeriodSec   float64 `yaml:"period_sec"`   // Seconds between decay events
	ManualInput bool    `yaml:"manual_input"` // Whether button input may change it
}

// AttributesConfig holds the six creature attributes.
type AttributesConfig struct {
	Age       AttributeConfig `yaml:"age"`
	Energy    AttributeConfig `yaml:"energy"`
	Happiness AttributeConfig `yaml:"happiness"`
	Arousal   AttributeConfig `yaml:"arousal"`
	Attention AttributeConfig `yaml:"attention"`
	Fatigue   AttributeConfig `yaml:"fatigue"`
}

// RulesConfig holds the coupling constants used by the per-attribute rules.
type RulesConfig struct {
	EnergyCritical    int `yaml:"energy_critical"`     // Energy at or below this wakes the creature
	EnergyDecayAwake  int `yaml:"energy_decay_awake"`  // Energy lost per decay event while awake
	EnergyDecayAsleep int `yaml:"energy_decay_asleep"` // Energy lost per decay event while asleep
	HungerThreshold   int `yaml:"hunger_threshold"`    // Energy at or below this makes it unhappy
	HungerPenalty     int `yaml:"hunger_penalty"`
	TiredThreshold    int `yaml:"tired_threshold"` // Fatigue at or above this makes it unhappy
	TiredPenalty      int `yaml:"tired_penalty"`
	SoundBoost        int `yaml:"sound_boost"`    // Attention and arousal gained per tick of sound
	TicksToSleep      int `yaml:"ticks_to_sleep"` // Dark decay events before falling asleep
}

// InputConfig holds button input parameters.
type InputConfig struct {
	Increment int `yaml:"increment"`
}

// SensorsConfig holds raw sensor classification thresholds.
type SensorsConfig struct {
	DarkBelow  float64 `yaml:"dark_below"`  // Light level (0..1) below which it is dark
	SoundAbove float64 `yaml:"sound_above"` // Sound level (0..1) above which there is sound
}

// HabitatConfig holds headless population and synthetic environment parameters.
type HabitatConfig struct {
	Population    int     `yaml:"population"`
	DaySec        float64 `yaml:"day_sec"`        // Length of a full day/night cycle
	NightFraction float64 `yaml:"night_fraction"` // Fraction of the day that is dark
	SoundChance   float64 `yaml:"sound_chance"`   // Probability per tick that a sound burst starts
	SoundSec      float64 `yaml:"sound_sec"`      // Duration of a sound burst
	PhaseJitter   bool    `yaml:"phase_jitter"`   // Randomize each creature's day phase
}

// CaretakerConfig holds the scripted caretaker parameters.
type CaretakerConfig struct {
	Enabled     bool    `yaml:"enabled"`
	FeedBelow   int     `yaml:"feed_below"` // Feed when energy is at or below this
	PlayBelow   int     `yaml:"play_below"` // Play when attention is at or below this
	CooldownSec float64 `yaml:"cooldown_sec"`
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	StatsWindow         float64 `yaml:"stats_window"`
	PerfCollectorWindow int     `yaml:"perf_collector_window"`
}

// ScreenConfig holds display settings.
type ScreenConfig struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	TargetFPS int `yaml:"target_fps"`
}

// EyesConfig holds eye animation parameters.
type EyesConfig struct {
	BlinkChance   float64 `yaml:"blink_chance"`   // Chance per frame of starting a blink
	GazeChance    float64 `yaml:"gaze_chance"`    // Chance per frame of a new gaze direction
	BlinkDuration int     `yaml:"blink_duration"` // Frames the eyes stay shut
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	AgeTimebase       int
	EnergyTimebase    int
	HappinessTimebase int
	ArousalTimebase   int
	AttentionTimebase int
	FatigueTimebase   int

	CaretakerCooldownTicks int
	SoundTicks             int
	DayTicks               int
	StatsWindowTicks       int
}

// ErrInvalidConfig is wrapped by all validation failures.
var ErrInvalidConfig = errors.New("invalid config")

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if path is empty.
// Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Default returns a fresh copy of the embedded defaults.
func Default() *Config {
	cfg, err := Load("")
	if err != nil {
		panic(fmt.Sprintf("config: embedded defaults are broken: %v", err))
	}
	return cfg
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.Finalize(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Finalize recomputes derived values and validates the result.
// Call it again after mutating a loaded config in place.
func (c *Config) Finalize() error {
	if c.Sim.TickSeconds <= 0 {
		return fmt.Errorf("%w: sim.tick_seconds must be positive, got %v", ErrInvalidConfig, c.Sim.TickSeconds)
	}
	c.computeDerived()
	return c.Validate()
}

// Ticks converts a duration in seconds to a whole number of ticks.
func (c *Config) Ticks(sec float64) int {
	return int(math.Round(sec / c.Sim.TickSeconds))
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() {
	a := &c.Attributes
	c.Derived.AgeTimebase = c.Ticks(a.Age.PeriodSec)
	c.Derived.EnergyTimebase = c.Ticks(a.Energy.PeriodSec)
	c.Derived.HappinessTimebase = c.Ticks(a.Happiness.PeriodSec)
	c.Derived.ArousalTimebase = c.Ticks(a.Arousal.PeriodSec)
	c.Derived.AttentionTimebase = c.Ticks(a.Attention.PeriodSec)
	c.Derived.FatigueTimebase = c.Ticks(a.Fatigue.PeriodSec)

	c.Derived.CaretakerCooldownTicks = c.Ticks(c.Caretaker.CooldownSec)
	c.Derived.SoundTicks = max(c.Ticks(c.Habitat.SoundSec), 1)
	c.Derived.DayTicks = max(c.Ticks(c.Habitat.DaySec), 1)
	c.Derived.StatsWindowTicks = max(c.Ticks(c.Telemetry.StatsWindow), 1)
}

// Validate rejects configurations that would build a degenerate creature.
func (c *Config) Validate() error {
	attrs := []struct {
		name     string
		attr     AttributeConfig
		timebase int
	}{
		{"age", c.Attributes.Age, c.Derived.AgeTimebase},
		{"energy", c.Attributes.Energy, c.Derived.EnergyTimebase},
		{"happiness", c.Attributes.Happiness, c.Derived.HappinessTimebase},
		{"arousal", c.Attributes.Arousal, c.Derived.ArousalTimebase},
		{"attention", c.Attributes.Attention, c.Derived.AttentionTimebase},
		{"fatigue", c.Attributes.Fatigue, c.Derived.FatigueTimebase},
	}
	for _, a := range attrs {
		if a.attr.Max <= 0 {
			return fmt.Errorf("%w: attributes.%s.max must be positive, got %d", ErrInvalidConfig, a.name, a.attr.Max)
		}
		if a.timebase < 1 {
			return fmt.Errorf("%w: attributes.%s.period_sec %v is shorter than one tick", ErrInvalidConfig, a.name, a.attr.PeriodSec)
		}
	}
	if c.Rules.TicksToSleep < 0 {
		return fmt.Errorf("%w: rules.ticks_to_sleep must not be negative", ErrInvalidConfig)
	}
	if c.Habitat.Population < 1 {
		return fmt.Errorf("%w: habitat.population must be at least 1", ErrInvalidConfig)
	}
	if c.Habitat.NightFraction < 0 || c.Habitat.NightFraction > 1 {
		return fmt.Errorf("%w: habitat.night_fraction must be within [0, 1]", ErrInvalidConfig)
	}
	return nil
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
