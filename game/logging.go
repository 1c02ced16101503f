package game

import (
	"context"
	"log/slog"

	"github.com/pthm-cable/vfh/systems"
	"github.com/pthm-cable/vfh/telemetry"
)

// logRunStarted logs the start of a run.
func logRunStarted(g *Game) {
	start := g.cfg.StartPose()
	slog.Info("run started",
		"run_id", g.run.ID(),
		"start_x", start.X,
		"start_y", start.Y,
		"target_x", g.cfg.Goal.X,
		"target_y", g.cfg.Goal.Y,
		"obstacles", len(g.cfg.Obstacles),
		"sectors", g.cfg.Sensor.NumSectors,
	)
}

// logTick logs a tick record every `every` ticks. Terminal ticks are always
// logged by logRunFinished instead.
func logTick(every int, rec telemetry.TickRecord) {
	if every <= 0 || rec.Tick%int32(every) != 0 {
		return
	}
	slog.Info("tick",
		"tick", rec.Tick,
		"x", rec.X,
		"y", rec.Y,
		"sector", rec.Sector,
		"target_sector", rec.TargetSector,
		"speed", rec.Speed,
		"target_dist", rec.TargetDist,
	)
}

// logRunFinished logs the run outcome.
func logRunFinished(s telemetry.RunSummary) {
	level := slog.LevelInfo
	if s.Outcome == systems.StatusCollided.String() {
		level = slog.LevelWarn
	}
	slog.Log(context.Background(), level, "run finished",
		"run_id", s.RunID,
		"outcome", s.Outcome,
		"ticks", s.Ticks,
		"path_length", s.PathLength,
		"final_dist", s.FinalDist,
		"min_clearance", s.MinClearance,
		"full_speed_pct", s.FullSpeedPct,
	)
}
