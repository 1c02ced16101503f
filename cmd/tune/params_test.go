package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pthm-cable/vfh/config"
	"github.com/pthm-cable/vfh/systems"
)

func TestParamVectorDefaultsMatchConfig(t *testing.T) {
	pv := NewParamVector()
	cfg := config.MustLoad("")

	assert.Equal(t, pv.DefaultVector(), pv.ExtractFromConfig(cfg))
}

func TestNormalizeRoundTrip(t *testing.T) {
	pv := NewParamVector()
	raw := []float64{0.3, 1.5, 4}

	got := pv.Denormalize(pv.Normalize(raw))

	assert.InDeltaSlice(t, raw, got, 1e-12)
}

func TestApplyToConfigClampsAndOrdersSpeeds(t *testing.T) {
	pv := NewParamVector()
	cfg := config.MustLoad("")

	pv.ApplyToConfig(cfg, []float64{5, 2.8, 2})

	assert.Equal(t, 1.0, cfg.Selector.SafetyThreshold)
	assert.Equal(t, 2.0, cfg.Robot.MaxSpeed)
	assert.Equal(t, 2.0, cfg.Robot.MinSpeed)
	require.NoError(t, cfg.Validate())
}

func TestEvaluateDefaultsReachesGoal(t *testing.T) {
	pv := NewParamVector()
	cfg := config.MustLoad("")
	fe := NewFitnessEvaluator(pv, 2000, cfg)

	fitness := fe.Evaluate(pv.DefaultVector())

	out := fe.LastOutcome()
	assert.Equal(t, systems.StatusGoalReached, out.Status)
	assert.Equal(t, float64(out.Ticks), fitness)
	assert.Less(t, out.FinalDist, cfg.Goal.Radius)
	assert.Equal(t, 0.4, cfg.Selector.SafetyThreshold, "base config must not be mutated")
}

func TestFitnessOrdersOutcomes(t *testing.T) {
	fe := NewFitnessEvaluator(NewParamVector(), 1000, config.MustLoad(""))

	goal := fe.fitness(RunOutcome{Status: systems.StatusGoalReached, Ticks: 999})
	timeout := fe.fitness(RunOutcome{Status: systems.StatusRunning, Ticks: 1000, FinalDist: 5})
	collided := fe.fitness(RunOutcome{Status: systems.StatusCollided, Ticks: 10, FinalDist: 5})

	assert.Less(t, goal, timeout)
	assert.Less(t, timeout, collided)
}

func TestQuietLoggerDropsRunRecords(t *testing.T) {
	var buf bytes.Buffer
	logger := quietLogger(&buf)

	logger.Info("run started", "run_id", "x")
	logger.Warn("run finished", "outcome", "collided")
	assert.Empty(t, buf.String())

	logger.Error("failed to write summary")
	assert.Contains(t, buf.String(), "failed to write summary")
}
