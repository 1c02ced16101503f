package telemetry

import (
	"log/slog"
	"math"
	"slices"
	"time"

	"gonum.org/v1/gonum/stat"

	"github.com/pthm-cable/vfh/systems"
)

// Phases a game tick spends time in around the navigator pipeline.
const (
	PhaseScene     systems.Phase = "scene"
	PhaseTelemetry systems.Phase = "telemetry"
)

// TickPhases is the full game tick: scene snapshot, the navigator pipeline,
// then telemetry.
func TickPhases() []systems.Phase {
	phases := []systems.Phase{PhaseScene}
	phases = append(phases, systems.PipelinePhases()...)
	return append(phases, PhaseTelemetry)
}

// tickSample is the timing of one tick. phases is indexed like
// PerfCollector.phases.
type tickSample struct {
	total  time.Duration
	phases []time.Duration
}

// PerfCollector times ticks phase by phase over a rolling window of ticks.
type PerfCollector struct {
	phases []systems.Phase
	index  map[systems.Phase]int
	rays   int // rays cast per tick, for the per-ray scan cost

	ring   []tickSample
	next   int
	filled int

	tickStart  time.Time
	phaseStart time.Time
	active     int // index of the running phase, -1 for none

	lastFrame time.Time
	frame     time.Duration
}

// NewPerfCollector creates a collector over the last window ticks that
// attributes time to phases. StartPhase with any other phase stops the
// clock until the next known phase begins.
func NewPerfCollector(window int, phases []systems.Phase, raysPerTick int) *PerfCollector {
	if window < 1 {
		window = 60
	}
	p := &PerfCollector{
		phases: slices.Clone(phases),
		index:  make(map[systems.Phase]int, len(phases)),
		rays:   raysPerTick,
		ring:   make([]tickSample, window),
		active: -1,
	}
	for i, ph := range p.phases {
		p.index[ph] = i
	}
	for i := range p.ring {
		p.ring[i].phases = make([]time.Duration, len(p.phases))
	}
	return p
}

// StartTick begins timing a new tick in the oldest ring slot.
func (p *PerfCollector) StartTick() {
	cur := &p.ring[p.next]
	cur.total = 0
	clear(cur.phases)
	p.tickStart = time.Now()
	p.active = -1
}

// StartPhase closes the running phase and starts phase.
func (p *PerfCollector) StartPhase(phase systems.Phase) {
	now := time.Now()
	p.closePhase(now)
	p.phaseStart = now
	if i, ok := p.index[phase]; ok {
		p.active = i
	} else {
		p.active = -1
	}
}

func (p *PerfCollector) closePhase(now time.Time) {
	if p.active >= 0 {
		p.ring[p.next].phases[p.active] += now.Sub(p.phaseStart)
	}
}

// EndTick closes the running phase and commits the tick.
func (p *PerfCollector) EndTick() {
	now := time.Now()
	p.closePhase(now)
	p.active = -1
	p.ring[p.next].total = now.Sub(p.tickStart)

	p.next = (p.next + 1) % len(p.ring)
	if p.filled < len(p.ring) {
		p.filled++
	}
}

// RecordFrame records frame timing for graphics mode.
func (p *PerfCollector) RecordFrame() {
	now := time.Now()
	if !p.lastFrame.IsZero() {
		p.frame = now.Sub(p.lastFrame)
	}
	p.lastFrame = now
}

// PhaseStat is one phase's average cost over the window.
type PhaseStat struct {
	Phase systems.Phase
	Avg   time.Duration
	Share float64 // fraction of the average tick
}

// PerfStats summarizes the window.
type PerfStats struct {
	Ticks   int // ticks in the window
	AvgTick time.Duration
	P95Tick time.Duration
	MaxTick time.Duration

	Phases     []PhaseStat // collector order
	ScanPerRay time.Duration

	TicksPerSecond float64
	FPS            float64 // graphics mode only
}

// Phase returns the stat for phase, zero if it was not tracked.
func (s PerfStats) Phase(phase systems.Phase) PhaseStat {
	for _, ps := range s.Phases {
		if ps.Phase == phase {
			return ps
		}
	}
	return PhaseStat{Phase: phase}
}

// Stats aggregates the ticks currently in the window.
func (p *PerfCollector) Stats() PerfStats {
	s := PerfStats{
		Ticks:  p.filled,
		Phases: make([]PhaseStat, len(p.phases)),
	}
	for i, ph := range p.phases {
		s.Phases[i].Phase = ph
	}
	if p.frame > 0 {
		s.FPS = float64(time.Second) / float64(p.frame)
	}
	if p.filled == 0 {
		return s
	}

	totals := make([]float64, p.filled)
	var sum time.Duration
	for i, sample := range p.ring[:p.filled] {
		totals[i] = float64(sample.total)
		sum += sample.total
		s.MaxTick = max(s.MaxTick, sample.total)
		for j, d := range sample.phases {
			s.Phases[j].Avg += d
		}
	}
	n := time.Duration(p.filled)
	s.AvgTick = sum / n

	slices.Sort(totals)
	s.P95Tick = time.Duration(stat.Quantile(0.95, stat.Empirical, totals, nil))

	for j := range s.Phases {
		s.Phases[j].Avg /= n
		if s.AvgTick > 0 {
			s.Phases[j].Share = float64(s.Phases[j].Avg) / float64(s.AvgTick)
		}
	}
	if p.rays > 0 {
		s.ScanPerRay = s.Phase(systems.PhaseScan).Avg / time.Duration(p.rays)
	}
	if s.AvgTick > 0 {
		s.TicksPerSecond = float64(time.Second) / float64(s.AvgTick)
	}
	return s
}

// LogStats logs the window as one structured record.
func (s PerfStats) LogStats() {
	slog.Info("perf", "window", s)
}

// LogValue implements slog.LogValuer. Phase shares are percentages rounded
// to one decimal.
func (s PerfStats) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.Int("ticks", s.Ticks),
		slog.Int64("avg_tick_us", s.AvgTick.Microseconds()),
		slog.Int64("p95_tick_us", s.P95Tick.Microseconds()),
		slog.Int64("max_tick_us", s.MaxTick.Microseconds()),
		slog.Int64("scan_ns_per_ray", s.ScanPerRay.Nanoseconds()),
		slog.Int("ticks_per_sec", int(s.TicksPerSecond)),
	}
	if s.FPS > 0 {
		attrs = append(attrs, slog.Int("fps", int(s.FPS)))
	}

	shares := make([]any, 0, len(s.Phases))
	for _, ps := range s.Phases {
		shares = append(shares, slog.Float64(string(ps.Phase), math.Round(ps.Share*1000)/10))
	}
	attrs = append(attrs, slog.Group("share_pct", shares...))

	return slog.GroupValue(attrs...)
}

// PerfStatsCSV is one perf.csv row.
type PerfStatsCSV struct {
	WindowEnd    int32   `csv:"window_end"`
	Ticks        int     `csv:"ticks"`
	AvgTickUS    int64   `csv:"avg_tick_us"`
	P95TickUS    int64   `csv:"p95_tick_us"`
	MaxTickUS    int64   `csv:"max_tick_us"`
	ScanNSPerRay int64   `csv:"scan_ns_per_ray"`
	TicksPerSec  float64 `csv:"ticks_per_sec"`
	ScenePct     float64 `csv:"scene_pct"`
	ScanPct      float64 `csv:"scan_pct"`
	HistogramPct float64 `csv:"histogram_pct"`
	SelectPct    float64 `csv:"select_pct"`
	MotionPct    float64 `csv:"motion_pct"`
	TelemetryPct float64 `csv:"telemetry_pct"`
}

// ToCSV flattens the stats for the window ending at windowEnd.
func (s PerfStats) ToCSV(windowEnd int32) PerfStatsCSV {
	pct := func(p systems.Phase) float64 { return s.Phase(p).Share * 100 }
	return PerfStatsCSV{
		WindowEnd:    windowEnd,
		Ticks:        s.Ticks,
		AvgTickUS:    s.AvgTick.Microseconds(),
		P95TickUS:    s.P95Tick.Microseconds(),
		MaxTickUS:    s.MaxTick.Microseconds(),
		ScanNSPerRay: s.ScanPerRay.Nanoseconds(),
		TicksPerSec:  s.TicksPerSecond,
		ScenePct:     pct(PhaseScene),
		ScanPct:      pct(systems.PhaseScan),
		HistogramPct: pct(systems.PhaseHistogram),
		SelectPct:    pct(systems.PhaseSelect),
		MotionPct:    pct(systems.PhaseMotion),
		TelemetryPct: pct(PhaseTelemetry),
	}
}
