package main

import (
	"fmt"
	"math"

	"github.com/pthm-cable/vfh/config"
	"github.com/pthm-cable/vfh/game"
	"github.com/pthm-cable/vfh/systems"
)

// Penalties added on top of the tick budget so any run that reaches the goal
// beats any run that does not, and a timeout beats a collision.
const (
	timeoutPenalty   = 1.0
	collisionPenalty = 2.0
)

// RunOutcome is the result of one headless run.
type RunOutcome struct {
	Status    systems.Status
	Ticks     int32
	FinalDist float64
}

// FitnessEvaluator runs headless simulations and computes fitness.
type FitnessEvaluator struct {
	params     *ParamVector
	maxTicks   int32
	baseConfig *config.Config

	last RunOutcome
}

// NewFitnessEvaluator creates a new evaluator.
func NewFitnessEvaluator(params *ParamVector, maxTicks int32, baseCfg *config.Config) *FitnessEvaluator {
	return &FitnessEvaluator{
		params:     params,
		maxTicks:   maxTicks,
		baseConfig: baseCfg,
	}
}

// LastOutcome returns the outcome of the most recent evaluation.
func (fe *FitnessEvaluator) LastOutcome() RunOutcome {
	return fe.last
}

// Evaluate computes fitness for a raw parameter vector (lower = better).
func (fe *FitnessEvaluator) Evaluate(x []float64) float64 {
	cfg := fe.baseConfig.Clone()
	fe.params.ApplyToConfig(cfg, x)

	outcome, err := fe.run(cfg)
	if err != nil {
		// Invalid configs score worst.
		fe.last = RunOutcome{Status: systems.StatusCollided, Ticks: 0, FinalDist: math.Inf(1)}
		return math.Inf(1)
	}
	fe.last = outcome
	return fe.fitness(outcome)
}

// run executes a single headless run until a terminal state or maxTicks.
func (fe *FitnessEvaluator) run(cfg *config.Config) (RunOutcome, error) {
	g, err := game.NewGame(cfg, game.Options{Headless: true, StepsPerUpdate: 1})
	if err != nil {
		return RunOutcome{}, err
	}

	for !g.Done() && g.Tick() < fe.maxTicks {
		g.UpdateHeadless()
	}

	s := g.State()
	if err := g.Unload(); err != nil {
		return RunOutcome{}, fmt.Errorf("closing run: %w", err)
	}
	return RunOutcome{
		Status:    s.Status,
		Ticks:     s.Tick,
		FinalDist: math.Hypot(cfg.Goal.X-s.Pose.X, cfg.Goal.Y-s.Pose.Y),
	}, nil
}

// fitness is ticks-to-goal for successful runs. Failed runs score the whole
// tick budget times a penalty factor plus the remaining distance, so the
// search is still pulled toward the goal.
func (fe *FitnessEvaluator) fitness(o RunOutcome) float64 {
	budget := float64(fe.maxTicks)
	switch o.Status {
	case systems.StatusGoalReached:
		return float64(o.Ticks)
	case systems.StatusCollided:
		return budget*(1+collisionPenalty) + o.FinalDist
	default:
		return budget*(1+timeoutPenalty) + o.FinalDist
	}
}
