package game

import (
	"log/slog"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/pthm-cable/vfh/systems"
	"github.com/pthm-cable/vfh/telemetry"
)

// recordTick feeds the run summary, trace.csv and the periodic tick log.
func (g *Game) recordTick(res systems.TickResult, world systems.World) {
	s := res.State
	rec := telemetry.TickRecord{
		Tick:         s.Tick,
		X:            s.Pose.X,
		Y:            s.Pose.Y,
		Heading:      s.Pose.Heading,
		Speed:        s.Speed,
		Sector:       s.Sector,
		TargetSector: res.TargetSector,
		MinRange:     minReading(res.Scan.Distances),
		TargetDist:   math.Hypot(world.Target.X-s.Pose.X, world.Target.Y-s.Pose.Y),
		Status:       s.Status.String(),
	}
	g.run.Record(rec, res.Scan.Distances)

	every := g.cfg.Telemetry.TraceEvery
	if g.output != nil && (every <= 1 || s.Tick%int32(every) == 0 || s.Status.Terminal()) {
		if err := g.output.WriteTick(rec); err != nil {
			slog.Error("failed to write trace", "error", err)
		}
	}

	if g.opts.LogStats {
		logTick(g.cfg.Telemetry.LogEvery, rec)
	}
}

// flushPerf writes and logs perf stats once per perf window.
func (g *Game) flushPerf() {
	window := int32(g.cfg.Telemetry.PerfWindow)
	if window <= 0 || g.state.Tick%window != 0 {
		return
	}
	stats := g.perf.Stats()
	if g.opts.LogStats {
		stats.LogStats()
	}
	if err := g.output.WritePerf(stats, g.state.Tick); err != nil {
		slog.Error("failed to write perf", "error", err)
	}
}

// finishRun writes the summary and trajectory once per run.
func (g *Game) finishRun(world systems.World) {
	if g.finished {
		return
	}
	g.finished = true

	summary := g.run.Summary()
	logRunFinished(summary)

	if err := g.output.WriteSummary(summary); err != nil {
		slog.Error("failed to write summary", "error", err)
	}

	scene := telemetry.PlotScene{
		Title:   "VFH run " + summary.RunID + " (" + summary.Outcome + ")",
		Width:   world.Width,
		Height:  world.Height,
		TargetX: world.Target.X,
		TargetY: world.Target.Y,
	}
	for _, o := range world.Obstacles {
		scene.Obstacles = append(scene.Obstacles, [4]float64{o.X, o.Y, o.W, o.H})
	}
	xs, ys := g.run.Path()
	if err := g.output.WritePlot(scene, xs, ys); err != nil {
		slog.Error("failed to write trajectory plot", "error", err)
	}
}

func minReading(ds []float64) float64 {
	if len(ds) == 0 {
		return 0
	}
	return floats.Min(ds)
}
