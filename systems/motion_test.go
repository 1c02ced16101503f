package systems

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestMotion() *Motion {
	p := DefaultParams()
	return NewMotion(p.Robot, p.Sensor, p.GoalRadius)
}

func openWorld() World {
	return World{Width: 800, Height: 600, Target: Vec2{X: 700, Y: 500}}
}

func TestMotionFullSpeedWhenAligned(t *testing.T) {
	m := newTestMotion()

	pose, speed := m.Step(0, true, Pose{X: 100, Y: 100, Heading: 0}, openWorld())

	assert.Equal(t, 3.0, speed)
	assert.Equal(t, Pose{X: 103, Y: 100, Heading: 0}, pose)
}

func TestMotionMinSpeedWhileTurning(t *testing.T) {
	m := newTestMotion()
	sensor := testSensor()

	pose, speed := m.Step(9, true, Pose{X: 100, Y: 100, Heading: 0}, openWorld())

	assert.Equal(t, 1.0, speed)
	assert.Equal(t, sensor.RayAngle(9), pose.Heading)
	assert.InDelta(t, 100.0, pose.X, 1e-9)
	assert.InDelta(t, 101.0, pose.Y, 1e-9)
}

func TestMotionAlignedAfterOneTick(t *testing.T) {
	m := newTestMotion()
	world := openWorld()

	pose, _ := m.Step(4, true, Pose{X: 100, Y: 100}, world)
	_, speed := m.Step(4, true, pose, world)

	assert.Equal(t, 3.0, speed, "same sector again must be bit-exact equal")
}

func TestMotionNoSectorHolds(t *testing.T) {
	m := newTestMotion()
	start := Pose{X: 250, Y: 250, Heading: 1.2}

	pose, speed := m.Step(0, false, start, openWorld())

	assert.Equal(t, start, pose)
	assert.Zero(t, speed)
}

func TestMotionClampsToWorldBounds(t *testing.T) {
	m := newTestMotion()
	world := openWorld()

	tests := []struct {
		name   string
		sector int
		start  Pose
		check  func(t *testing.T, p Pose)
	}{
		{"left edge", 18, Pose{X: 15.5, Y: 300}, func(t *testing.T, p Pose) {
			assert.Equal(t, 15.0, p.X)
		}},
		{"top edge", 27, Pose{X: 300, Y: 15.2}, func(t *testing.T, p Pose) {
			assert.Equal(t, 15.0, p.Y)
		}},
		{"right edge", 0, Pose{X: 784.5, Y: 300}, func(t *testing.T, p Pose) {
			assert.Equal(t, 785.0, p.X)
		}},
		{"bottom edge", 9, Pose{X: 300, Y: 584.9}, func(t *testing.T, p Pose) {
			assert.Equal(t, 585.0, p.Y)
		}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			pose, _ := m.Step(tc.sector, true, tc.start, world)
			tc.check(t, pose)
		})
	}
}

func TestEvaluateCollisionBoundaryInclusive(t *testing.T) {
	m := newTestMotion()
	world := openWorld()
	world.Obstacles = []Rect{{X: 100, Y: 100, W: 50, H: 50}}

	// Inflated box spans [85, 165] on both axes.
	assert.Equal(t, StatusCollided, m.Evaluate(Pose{X: 85, Y: 120}, world))
	assert.Equal(t, StatusCollided, m.Evaluate(Pose{X: 165, Y: 165}, world))
	assert.Equal(t, StatusCollided, m.Evaluate(Pose{X: 120, Y: 120}, world))
	assert.Equal(t, StatusRunning, m.Evaluate(Pose{X: 84.99, Y: 120}, world))
	assert.Equal(t, StatusRunning, m.Evaluate(Pose{X: 120, Y: 165.01}, world))
}

func TestEvaluateGoalRadiusStrict(t *testing.T) {
	m := newTestMotion()
	world := World{Width: 800, Height: 600, Target: Vec2{X: 500, Y: 300}}

	assert.Equal(t, StatusGoalReached, m.Evaluate(Pose{X: 509.99, Y: 300}, world))
	assert.Equal(t, StatusRunning, m.Evaluate(Pose{X: 510, Y: 300}, world))
	assert.Equal(t, StatusRunning, m.Evaluate(Pose{X: 500, Y: 290}, world))
	assert.Equal(t, StatusGoalReached, m.Evaluate(Pose{X: 500, Y: 300}, world))
}

func TestEvaluateCollisionWinsOverGoal(t *testing.T) {
	m := newTestMotion()
	world := World{
		Width:     800,
		Height:    600,
		Target:    Vec2{X: 500, Y: 300},
		Obstacles: []Rect{{X: 495, Y: 295, W: 10, H: 10}},
	}

	assert.Equal(t, StatusCollided, m.Evaluate(Pose{X: 500, Y: 300}, world))
}

func TestStatusTerminal(t *testing.T) {
	assert.False(t, StatusRunning.Terminal())
	assert.True(t, StatusCollided.Terminal())
	assert.True(t, StatusGoalReached.Terminal())
	assert.Equal(t, "goal_reached", StatusGoalReached.String())
	assert.Equal(t, "collided", StatusCollided.String())
}

func TestMotionHeadingMatchesSectorAngle(t *testing.T) {
	m := newTestMotion()
	for sector := 0; sector < 36; sector++ {
		pose, _ := m.Step(sector, true, Pose{X: 400, Y: 300}, openWorld())
		assert.InDelta(t, float64(sector)*2*math.Pi/36, pose.Heading, 1e-12, "sector %d", sector)
	}
}
