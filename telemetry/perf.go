package telemetry

import (
	"log/slog"
	"time"
)

// Phase is one stage of a simulation tick.
type Phase uint8

// Phases of a tick, in execution order.
const (
	PhaseSensors Phase = iota
	PhaseCare
	PhaseCreatures
	PhaseTelemetry

	numPhases = 4
)

var phaseNames = [numPhases]string{"sensors", "care", "creatures", "telemetry"}

func (p Phase) String() string {
	if int(p) < numPhases {
		return phaseNames[p]
	}
	return "unknown"
}

// tickTiming is the cost of one tick split by phase.
type tickTiming struct {
	total  time.Duration
	phases [numPhases]time.Duration
}

// PerfCollector times ticks, phases and individual creature updates, and
// tracks how far the interactive loop falls behind wall-clock time.
//
// Tick timings are kept in a ring of the last n ticks. Creature and frame
// counters cover the span since the previous Flush.
type PerfCollector struct {
	ring   []tickTiming
	next   int
	filled int

	cur     tickTiming
	tickAt  time.Time
	phase   Phase
	phaseAt time.Time
	open    bool

	creatureTicks int
	creatureTotal time.Duration
	creatureMax   time.Duration

	frames      int
	frameTicks  int
	maxOwedSec  float64
	droppedSec  float64
	lastFrameAt time.Time
	frameTotal  time.Duration
}

// NewPerfCollector creates a collector averaging over the last n ticks.
func NewPerfCollector(n int) *PerfCollector {
	if n < 1 {
		n = 60
	}
	return &PerfCollector{ring: make([]tickTiming, n)}
}

// StartTick begins timing a tick.
func (p *PerfCollector) StartTick() {
	p.tickAt = time.Now()
	p.cur = tickTiming{}
	p.open = false
}

// StartPhase closes the running phase, if any, and starts timing ph.
func (p *PerfCollector) StartPhase(ph Phase) {
	now := time.Now()
	p.closePhase(now)
	p.phase, p.phaseAt, p.open = ph, now, true
}

func (p *PerfCollector) closePhase(now time.Time) {
	if p.open {
		p.cur.phases[p.phase] += now.Sub(p.phaseAt)
		p.open = false
	}
}

// EndTick stores the finished tick in the ring.
func (p *PerfCollector) EndTick() {
	now := time.Now()
	p.closePhase(now)
	p.cur.total = now.Sub(p.tickAt)

	p.ring[p.next] = p.cur
	p.next = (p.next + 1) % len(p.ring)
	if p.filled < len(p.ring) {
		p.filled++
	}
}

// ObserveCreature records the time one creature's Tick took.
func (p *PerfCollector) ObserveCreature(d time.Duration) {
	p.creatureTicks++
	p.creatureTotal += d
	if d > p.creatureMax {
		p.creatureMax = d
	}
}

// RecordFrame records one interactive frame: the ticks it ran, the
// simulated seconds it owed before capping, and the seconds it discarded.
func (p *PerfCollector) RecordFrame(ticks int, owedSec, droppedSec float64) {
	now := time.Now()
	if !p.lastFrameAt.IsZero() {
		p.frameTotal += now.Sub(p.lastFrameAt)
	}
	p.lastFrameAt = now

	p.frames++
	p.frameTicks += ticks
	p.droppedSec += droppedSec
	if owedSec > p.maxOwedSec {
		p.maxOwedSec = owedSec
	}
}

// PerfStats summarizes tick cost and frame pacing.
type PerfStats struct {
	Ticks    int // ticks in the ring
	AvgTick  time.Duration
	MaxTick  time.Duration
	PhaseAvg [numPhases]time.Duration

	CreatureTicks   int
	AvgCreatureTick time.Duration
	MaxCreatureTick time.Duration

	Frames        int
	TicksPerFrame float64
	MaxOwedSec    float64 // largest simulated backlog a single frame had to cover
	DroppedSec    float64 // simulated time discarded by the catch-up cap
	FPS           float64
}

// Flush returns the current stats and resets the creature and frame
// counters. The tick ring keeps rolling.
func (p *PerfCollector) Flush() PerfStats {
	var s PerfStats
	s.Ticks = p.filled
	if p.filled > 0 {
		var total time.Duration
		var phases [numPhases]time.Duration
		for _, t := range p.ring[:p.filled] {
			total += t.total
			if t.total > s.MaxTick {
				s.MaxTick = t.total
			}
			for i, d := range t.phases {
				phases[i] += d
			}
		}
		n := time.Duration(p.filled)
		s.AvgTick = total / n
		for i := range phases {
			s.PhaseAvg[i] = phases[i] / n
		}
	}

	s.CreatureTicks = p.creatureTicks
	s.MaxCreatureTick = p.creatureMax
	if p.creatureTicks > 0 {
		s.AvgCreatureTick = p.creatureTotal / time.Duration(p.creatureTicks)
	}

	s.Frames = p.frames
	s.MaxOwedSec = p.maxOwedSec
	s.DroppedSec = p.droppedSec
	if p.frames > 0 {
		s.TicksPerFrame = float64(p.frameTicks) / float64(p.frames)
	}
	if p.frameTotal > 0 && p.frames > 1 {
		s.FPS = float64(p.frames-1) / p.frameTotal.Seconds()
	}

	p.creatureTicks, p.creatureTotal, p.creatureMax = 0, 0, 0
	p.frames, p.frameTicks, p.maxOwedSec, p.droppedSec = 0, 0, 0, 0
	p.frameTotal = 0
	return s
}

// PhasePct returns the share of the average tick spent in ph, in percent.
func (s PerfStats) PhasePct(ph Phase) float64 {
	if s.AvgTick <= 0 || int(ph) >= numPhases {
		return 0
	}
	return 100 * float64(s.PhaseAvg[ph]) / float64(s.AvgTick)
}

// Headroom returns how many times faster than real time the simulation
// could run at tickSec seconds per tick.
func (s PerfStats) Headroom(tickSec float64) float64 {
	if s.AvgTick <= 0 {
		return 0
	}
	return tickSec / s.AvgTick.Seconds()
}

// LogValue implements slog.LogValuer.
func (s PerfStats) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.Int("ticks", s.Ticks),
		slog.Duration("avg_tick", s.AvgTick),
		slog.Duration("max_tick", s.MaxTick),
		slog.Int("creature_ticks", s.CreatureTicks),
		slog.Duration("avg_creature_tick", s.AvgCreatureTick),
		slog.Duration("max_creature_tick", s.MaxCreatureTick),
	}
	for i := range numPhases {
		ph := Phase(i)
		attrs = append(attrs, slog.Float64(ph.String()+"_pct", s.PhasePct(ph)))
	}
	if s.Frames > 0 {
		attrs = append(attrs,
			slog.Float64("ticks_per_frame", s.TicksPerFrame),
			slog.Float64("max_owed_sec", s.MaxOwedSec),
			slog.Float64("dropped_sec", s.DroppedSec),
			slog.Float64("fps", s.FPS),
		)
	}
	return slog.GroupValue(attrs...)
}

// LogStats logs the stats at info level.
func (s PerfStats) LogStats() {
	slog.Info("perf", "stats", s)
}

// PerfStatsCSV is one row of perf.csv.
type PerfStatsCSV struct {
	WindowEnd         int32   `csv:"window_end"`
	AvgTickUS         int64   `csv:"avg_tick_us"`
	MaxTickUS         int64   `csv:"max_tick_us"`
	SensorsPct        float64 `csv:"sensors_pct"`
	CarePct           float64 `csv:"care_pct"`
	CreaturesPct      float64 `csv:"creatures_pct"`
	TelemetryPct      float64 `csv:"telemetry_pct"`
	CreatureTicks     int     `csv:"creature_ticks"`
	AvgCreatureTickNS int64   `csv:"avg_creature_tick_ns"`
	MaxCreatureTickNS int64   `csv:"max_creature_tick_ns"`
	Headroom          float64 `csv:"headroom"`
	TicksPerFrame     float64 `csv:"ticks_per_frame"`
	MaxOwedSec        float64 `csv:"max_owed_sec"`
	DroppedSec        float64 `csv:"dropped_sec"`
	FPS               float64 `csv:"fps"`
}

// ToCSV converts the stats to a perf.csv row for a window ending at
// windowEnd, with headroom measured against tickSec.
func (s PerfStats) ToCSV(windowEnd int32, tickSec float64) PerfStatsCSV {
	return PerfStatsCSV{
		WindowEnd:         windowEnd,
		AvgTickUS:         s.AvgTick.Microseconds(),
		MaxTickUS:         s.MaxTick.Microseconds(),
		SensorsPct:        s.PhasePct(PhaseSensors),
		CarePct:           s.PhasePct(PhaseCare),
		CreaturesPct:      s.PhasePct(PhaseCreatures),
		TelemetryPct:      s.PhasePct(PhaseTelemetry),
		CreatureTicks:     s.CreatureTicks,
		AvgCreatureTickNS: s.AvgCreatureTick.Nanoseconds(),
		MaxCreatureTickNS: s.MaxCreatureTick.Nanoseconds(),
		Headroom:          s.Headroom(tickSec),
		TicksPerFrame:     s.TicksPerFrame,
		MaxOwedSec:        s.MaxOwedSec,
		DroppedSec:        s.DroppedSec,
		FPS:               s.FPS,
	}
}
