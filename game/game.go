// Package game drives the navigation core: it owns the ECS scene, advances
// ticks, records telemetry and renders the field.
package game

import (
	"fmt"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/vfh/camera"
	"github.com/pthm-cable/vfh/components"
	"github.com/pthm-cable/vfh/config"
	"github.com/pthm-cable/vfh/systems"
	"github.com/pthm-cable/vfh/telemetry"
	"github.com/pthm-cable/vfh/ui"
)

// Options configures a Game beyond the YAML config.
type Options struct {
	LogStats       bool   // periodic tick and perf records via slog
	OutputDir      string // empty disables CSV and plot output
	Headless       bool   // no raylib calls at all
	StepsPerUpdate int    // ticks per Update/UpdateHeadless call
}

// Game holds the complete simulation state.
type Game struct {
	cfg  *config.Config
	opts Options
	nav  *systems.Navigator

	world          *ecs.World
	obstacleMap    *ecs.Map2[components.Position, components.Extent]
	obstacleFilter *ecs.Filter2[components.Position, components.Extent]
	robotMap       *ecs.Map3[components.Position, components.Rotation, components.Robot]
	goalMap        *ecs.Map2[components.Position, components.Goal]
	robot          ecs.Entity
	goal           ecs.Entity

	state    systems.SimulationState
	last     systems.TickResult
	finished bool

	run    *telemetry.Run
	perf   *telemetry.PerfCollector
	output *telemetry.OutputManager

	// Interactive mode only
	paused         bool
	stepOnce       bool
	stepsPerUpdate int
	camera         *camera.Camera
	hud            *ui.HUD
}

// NewGame builds the scene from cfg. The config must already be validated;
// navigator construction re-checks the navigation parameters.
func NewGame(cfg *config.Config, opts Options) (*Game, error) {
	nav, err := systems.NewNavigator(cfg.NavParams())
	if err != nil {
		return nil, err
	}

	output, err := telemetry.NewOutputManager(opts.OutputDir)
	if err != nil {
		return nil, fmt.Errorf("initializing output: %w", err)
	}
	if err := output.WriteConfig(cfg); err != nil {
		output.Close()
		return nil, fmt.Errorf("writing config snapshot: %w", err)
	}

	if opts.StepsPerUpdate < 1 {
		opts.StepsPerUpdate = 1
	}

	world := ecs.NewWorld()
	g := &Game{
		cfg:            cfg,
		opts:           opts,
		nav:            nav,
		world:          world,
		obstacleMap:    ecs.NewMap2[components.Position, components.Extent](world),
		obstacleFilter: ecs.NewFilter2[components.Position, components.Extent](world),
		robotMap:       ecs.NewMap3[components.Position, components.Rotation, components.Robot](world),
		goalMap:        ecs.NewMap2[components.Position, components.Goal](world),
		perf:           telemetry.NewPerfCollector(cfg.Telemetry.PerfWindow, telemetry.TickPhases(), nav.Params().Sensor.NumSectors),
		output:         output,
		stepsPerUpdate: opts.StepsPerUpdate,
	}
	g.spawnScene()
	g.Reset()

	if !opts.Headless {
		g.camera = camera.New(
			float32(cfg.Screen.Width), float32(cfg.Screen.Height),
			float32(cfg.Derived.WorldW), float32(cfg.Derived.WorldH),
		)
		g.hud = ui.NewHUD()
	}
	return g, nil
}

// resetRun puts the robot back at the start pose with a fresh run record.
func (g *Game) resetRun() {
	start := g.cfg.StartPose()
	g.state = systems.NewSimulationState(start)
	g.last = systems.TickResult{State: g.state, TargetSector: -1}
	g.finished = false
	g.run = telemetry.NewRun(start.X, start.Y, g.cfg.Robot.MaxSpeed)
	g.syncRobot()
}

// Reset restarts the run from the configured start pose. Output files keep
// accumulating; each run gets its own summary row, including runs cut short
// by the reset.
func (g *Game) Reset() {
	g.finishOpenRun()
	g.resetRun()
	logRunStarted(g)
}

// Tick returns the current simulation tick.
func (g *Game) Tick() int32 {
	return g.state.Tick
}

// State returns a copy of the current simulation state.
func (g *Game) State() systems.SimulationState {
	return g.state
}

// LastResult returns the most recent tick's scan, histogram and state.
func (g *Game) LastResult() systems.TickResult {
	return g.last
}

// Done reports whether the run has reached a terminal state.
func (g *Game) Done() bool {
	return g.state.Status.Terminal()
}

// RunID returns the identifier of the current run.
func (g *Game) RunID() string {
	return g.run.ID()
}

// UpdateHeadless advances StepsPerUpdate ticks without any rendering.
func (g *Game) UpdateHeadless() {
	for i := 0; i < g.stepsPerUpdate && !g.Done(); i++ {
		g.Step()
	}
}

// Unload records a run that was stopped before a terminal state, then
// closes output files. Safe to call more than once.
func (g *Game) Unload() error {
	g.finishOpenRun()
	err := g.output.Close()
	g.output = nil
	return err
}

// finishOpenRun writes the summary and plot for a run that has ticked but
// not yet finished. Its outcome is recorded as running.
func (g *Game) finishOpenRun() {
	if g.finished || g.state.Tick == 0 {
		return
	}
	g.finishRun(g.snapshotWorld())
}
