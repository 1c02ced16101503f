package game

import (
	"github.com/pthm-cable/vfh/telemetry"
)

// Step runs one full tick (scan, histogram, select, move, terminal check).
// It returns false without doing anything once the run is terminal.
func (g *Game) Step() bool {
	if g.Done() {
		return false
	}

	g.perf.StartTick()
	g.perf.StartPhase(telemetry.PhaseScene)
	world := g.snapshotWorld()

	res := g.nav.StepObserved(g.state, world, g.perf.StartPhase)
	g.state = res.State
	g.last = res
	g.syncRobot()

	g.perf.StartPhase(telemetry.PhaseTelemetry)
	g.recordTick(res, world)
	g.perf.EndTick()

	g.flushPerf()
	if g.Done() {
		g.finishRun(world)
	}
	return true
}
