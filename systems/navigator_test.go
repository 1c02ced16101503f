package systems

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// referenceObstacles is the walled maze the simulator ships with.
var referenceObstacles = []Rect{
	{X: 50, Y: 50, W: 800, H: 20},
	{X: 50, Y: 530, W: 700, H: 20},
	{X: 50, Y: 50, W: 20, H: 500},
	{X: 150, Y: 50, W: 20, H: 20},
	{X: 730, Y: 50, W: 20, H: 500},
	{X: 200, Y: 50, W: 20, H: 200},
	{X: 300, Y: 50, W: 20, H: 200},
	{X: 400, Y: 300, W: 20, H: 230},
	{X: 400, Y: 300, W: 200, H: 20},
	{X: 350, Y: 350, W: 340, H: 40},
	{X: 600, Y: 300, W: 20, H: 100},
	{X: 500, Y: 300, W: 20, H: 100},
	{X: 650, Y: 300, W: 20, H: 100},
}

func newTestNavigator(t *testing.T) *Navigator {
	t.Helper()
	nav, err := NewNavigator(DefaultParams())
	require.NoError(t, err)
	return nav
}

func TestNavigatorKeepsParams(t *testing.T) {
	assert.Equal(t, DefaultParams(), newTestNavigator(t).Params())
}

func TestNewNavigatorRejectsInvalidParams(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(p *Params)
	}{
		{"zero sectors", func(p *Params) { p.Sensor.NumSectors = 0 }},
		{"negative sectors", func(p *Params) { p.Sensor.NumSectors = -4 }},
		{"zero range", func(p *Params) { p.Sensor.MaxRange = 0 }},
		{"zero step", func(p *Params) { p.Sensor.StepLength = 0 }},
		{"negative radius", func(p *Params) { p.Robot.Radius = -1 }},
		{"min above max speed", func(p *Params) { p.Robot.MinSpeed = 5 }},
		{"empty window", func(p *Params) { p.Selector.WindowBefore = 3; p.Selector.WindowAfter = 2 }},
		{"zero goal radius", func(p *Params) { p.GoalRadius = 0 }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := DefaultParams()
			tc.mutate(&p)
			nav, err := NewNavigator(p)
			assert.Nil(t, nav)
			assert.ErrorIs(t, err, ErrInvalidParams)
		})
	}
}

func TestNavigatorApproachesTargetInOpenField(t *testing.T) {
	nav := newTestNavigator(t)
	world := World{Width: 800, Height: 600, Target: Vec2{X: 700, Y: 500}}
	state := NewSimulationState(Pose{X: 100, Y: 100})

	prev := distance(state.Pose.Position(), world.Target)
	for i := 0; i < 2000 && !state.Status.Terminal(); i++ {
		res := nav.Step(state, world)
		state = res.State

		require.Len(t, res.Histogram, 36)
		for _, d := range res.Histogram {
			require.Positive(t, d)
		}

		d := distance(state.Pose.Position(), world.Target)
		require.Less(t, d, prev, "distance must shrink every tick (tick %d)", state.Tick)
		prev = d
	}

	assert.Equal(t, StatusGoalReached, state.Status)
	assert.Less(t, prev, 10.0)
}

func TestNavigatorReachesGoalInReferenceScene(t *testing.T) {
	nav := newTestNavigator(t)
	world := World{
		Width:     800,
		Height:    600,
		Target:    Vec2{X: 700, Y: 500},
		Obstacles: referenceObstacles,
	}
	state := NewSimulationState(Pose{X: 100, Y: 100})

	for i := 0; i < 2000 && !state.Status.Terminal(); i++ {
		state = nav.Step(state, world).State
	}

	assert.Equal(t, StatusGoalReached, state.Status)
}

func TestNavigatorTerminalStateIsAbsorbing(t *testing.T) {
	nav := newTestNavigator(t)
	world := World{Width: 800, Height: 600, Target: Vec2{X: 700, Y: 500}}

	for _, status := range []Status{StatusCollided, StatusGoalReached} {
		state := SimulationState{Pose: Pose{X: 300, Y: 300}, Status: status, Sector: 4, Tick: 17}
		res := nav.Step(state, world)
		assert.Equal(t, state, res.State)
		assert.Nil(t, res.Histogram)
	}
}

func TestNavigatorDetectsCollision(t *testing.T) {
	nav := newTestNavigator(t)
	// Robot already overlapping an obstacle: every reading is one step, the
	// fallback still moves it and the collision check fires.
	world := World{
		Width:     800,
		Height:    600,
		Target:    Vec2{X: 700, Y: 500},
		Obstacles: []Rect{{X: 280, Y: 280, W: 40, H: 40}},
	}

	res := nav.Step(NewSimulationState(Pose{X: 300, Y: 300}), world)

	assert.Equal(t, StatusCollided, res.State.Status)
	assert.Equal(t, int32(1), res.State.Tick)
	for _, d := range res.Scan.Distances {
		assert.Equal(t, 1.0, d)
	}
}

func TestNavigatorStepObservedPhaseOrder(t *testing.T) {
	nav := newTestNavigator(t)
	world := World{Width: 800, Height: 600, Target: Vec2{X: 700, Y: 500}}

	var phases []Phase
	res := nav.StepObserved(NewSimulationState(Pose{X: 100, Y: 100}), world, func(p Phase) {
		phases = append(phases, p)
	})

	assert.Equal(t, []Phase{PhaseScan, PhaseHistogram, PhaseSelect, PhaseMotion}, phases)
	assert.Equal(t, 3, res.TargetSector)
	assert.Equal(t, 34, res.State.Sector, "open field ties resolve to the first window sector")
	assert.Equal(t, 1.0, res.State.Speed)
}
