package telemetry

import (
	"log/slog"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// WindowStats holds aggregated statistics for a time window.
type WindowStats struct {
	WindowStartTick int32   `csv:"-"`
	WindowEndTick   int32   `csv:"window_end"`
	SimTimeSec      float64 `csv:"sim_time"`

	// Population at window end
	Alive  int `csv:"alive"`
	Asleep int `csv:"asleep"`
	Dead   int `csv:"dead"`

	// Events during window
	Deaths         int `csv:"deaths"`
	DeathsAge      int `csv:"deaths_age"`
	DeathsEnergy   int `csv:"deaths_energy"`
	SleepOnsets    int `csv:"sleep_onsets"`
	WakeUps        int `csv:"wake_ups"`
	InputsAccepted int `csv:"inputs_accepted"`
	InputsRejected int `csv:"inputs_rejected"`

	// Moods at window end
	Content  int `csv:"content"`
	Excited  int `csv:"excited"`
	Bored    int `csv:"bored"`
	Stressed int `csv:"stressed"`

	// Attribute distributions over living creatures (sampled at window end)
	AgeMean float64 `csv:"age_mean"`

	EnergyMean float64 `csv:"energy_mean"`
	EnergyP10  float64 `csv:"energy_p10"`
	EnergyP50  float64 `csv:"energy_p50"`
	EnergyP90  float64 `csv:"energy_p90"`

	HappinessMean float64 `csv:"happiness_mean"`
	HappinessP10  float64 `csv:"happiness_p10"`
	HappinessP50  float64 `csv:"happiness_p50"`
	HappinessP90  float64 `csv:"happiness_p90"`

	ArousalMean   float64 `csv:"arousal_mean"`
	AttentionMean float64 `csv:"attention_mean"`

	FatigueMean float64 `csv:"fatigue_mean"`
	FatigueP90  float64 `csv:"fatigue_p90"`
}

// Percentile returns the empirical p-quantile of a sorted slice.
// p is clamped to [0, 1]. Returns 0 if the slice is empty.
func Percentile(sorted []float64, p float64) float64 {
	if len(sorted) == 0 {
		return 0
	}
	p = min(max(p, 0), 1)
	return stat.Quantile(p, stat.Empirical, sorted, nil)
}

// ComputeStats calculates mean and percentiles.
func ComputeStats(values []float64) (mean, p10, p50, p90 float64) {
	if len(values) == 0 {
		return 0, 0, 0, 0
	}

	mean = stat.Mean(values, nil)

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	return mean, Percentile(sorted, 0.10), Percentile(sorted, 0.50), Percentile(sorted, 0.90)
}

// LogValue implements slog.LogValuer for structured logging.
func (s WindowStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("window_start", int(s.WindowStartTick)),
		slog.Int("window_end", int(s.WindowEndTick)),
		slog.Float64("sim_time", s.SimTimeSec),
		slog.Int("alive", s.Alive),
		slog.Int("asleep", s.Asleep),
		slog.Int("dead", s.Dead),
		slog.Int("deaths", s.Deaths),
		slog.Int("sleep_onsets", s.SleepOnsets),
		slog.Int("wake_ups", s.WakeUps),
		slog.Int("inputs_accepted", s.InputsAccepted),
		slog.Int("inputs_rejected", s.InputsRejected),
		slog.Float64("energy_mean", s.EnergyMean),
		slog.Float64("happiness_mean", s.HappinessMean),
		slog.Float64("fatigue_mean", s.FatigueMean),
	)
}

// LogStats logs the window stats using slog.
func (s WindowStats) LogStats() {
	slog.Info("stats",
		"window_end", s.WindowEndTick,
		"sim_time", s.SimTimeSec,
		"alive", s.Alive,
		"asleep", s.Asleep,
		"dead", s.Dead,
		"deaths", s.Deaths,
		"deaths_age", s.DeathsAge,
		"deaths_energy", s.DeathsEnergy,
		"sleep_onsets", s.SleepOnsets,
		"wake_ups", s.WakeUps,
		"inputs_accepted", s.InputsAccepted,
		"inputs_rejected", s.InputsRejected,
		"content", s.Content,
		"excited", s.Excited,
		"bored", s.Bored,
		"stressed", s.Stressed,
		"age_mean", s.AgeMean,
		"energy_mean", s.EnergyMean,
		"energy_p10", s.EnergyP10,
		"energy_p50", s.EnergyP50,
		"energy_p90", s.EnergyP90,
		"happiness_mean", s.HappinessMean,
		"happiness_p10", s.HappinessP10,
		"happiness_p50", s.HappinessP50,
		"happiness_p90", s.HappinessP90,
		"arousal_mean", s.ArousalMean,
		"attention_mean", s.AttentionMean,
		"fatigue_mean", s.FatigueMean,
		"fatigue_p90", s.FatigueP90,
	)
}
