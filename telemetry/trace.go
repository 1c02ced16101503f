package telemetry

import (
	"math"

	"github.com/google/uuid"
	"gonum.org/v1/gonum/floats"
)

// TickRecord is one row of trace.csv.
type TickRecord struct {
	Tick         int32   `csv:"tick"`
	X            float64 `csv:"x"`
	Y            float64 `csv:"y"`
	Heading      float64 `csv:"heading"`
	Speed        float64 `csv:"speed"`
	Sector       int     `csv:"sector"`
	TargetSector int     `csv:"target_sector"`
	MinRange     float64 `csv:"min_range"`
	TargetDist   float64 `csv:"target_dist"`
	Status       string  `csv:"status"`
}

// RunSummary is one row of summary.csv, written when a run ends.
type RunSummary struct {
	RunID        string  `csv:"run_id"`
	Outcome      string  `csv:"outcome"`
	Ticks        int32   `csv:"ticks"`
	PathLength   float64 `csv:"path_length"`
	FinalDist    float64 `csv:"final_dist"`
	MinClearance float64 `csv:"min_clearance"`
	AvgSpeed     float64 `csv:"avg_speed"`
	FullSpeedPct float64 `csv:"full_speed_pct"`
}

// Run accumulates per-tick records into a summary and keeps the path for
// plotting.
type Run struct {
	id       string
	maxSpeed float64

	pathX, pathY []float64
	pathLength   float64
	minRange     float64
	speedSum     float64
	fullSpeed    int
	last         TickRecord
	count        int
}

// NewRun starts a run at the given position. maxSpeed is used to count
// full-speed ticks.
func NewRun(startX, startY, maxSpeed float64) *Run {
	return &Run{
		id:       uuid.NewString(),
		maxSpeed: maxSpeed,
		pathX:    []float64{startX},
		pathY:    []float64{startY},
		minRange: math.Inf(1),
	}
}

// ID returns the run identifier.
func (r *Run) ID() string {
	return r.id
}

// Record adds one tick. ranges are the sonar readings for that tick.
func (r *Run) Record(rec TickRecord, ranges []float64) {
	n := len(r.pathX)
	prev := []float64{r.pathX[n-1], r.pathY[n-1]}
	r.pathLength += floats.Distance(prev, []float64{rec.X, rec.Y}, 2)
	r.pathX = append(r.pathX, rec.X)
	r.pathY = append(r.pathY, rec.Y)

	if len(ranges) > 0 {
		r.minRange = math.Min(r.minRange, floats.Min(ranges))
	}
	r.speedSum += rec.Speed
	if rec.Speed == r.maxSpeed {
		r.fullSpeed++
	}
	r.last = rec
	r.count++
}

// Path returns the recorded positions, start included.
func (r *Run) Path() (xs, ys []float64) {
	return r.pathX, r.pathY
}

// Summary computes the run summary so far.
func (r *Run) Summary() RunSummary {
	s := RunSummary{
		RunID:      r.id,
		Outcome:    r.last.Status,
		Ticks:      r.last.Tick,
		PathLength: r.pathLength,
		FinalDist:  r.last.TargetDist,
	}
	if r.count > 0 {
		s.AvgSpeed = r.speedSum / float64(r.count)
		s.FullSpeedPct = float64(r.fullSpeed) / float64(r.count) * 100
	}
	if !math.IsInf(r.minRange, 1) {
		s.MinClearance = r.minRange
	}
	return s
}
