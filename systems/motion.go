package systems

import "math"

// Status is the simulation's lifecycle state.
type Status uint8

const (
	StatusRunning     Status = iota
	StatusCollided           // terminal
	StatusGoalReached        // terminal
)

// String returns the status name used in logs and CSV output.
func (s Status) String() string {
	switch s {
	case StatusRunning:
		return "running"
	case StatusCollided:
		return "collided"
	case StatusGoalReached:
		return "goal_reached"
	default:
		return "unknown"
	}
}

// Terminal reports whether no further tick can change the state.
func (s Status) Terminal() bool {
	return s == StatusCollided || s == StatusGoalReached
}

// Motion turns a selected sector into a pose update and checks the
// terminal conditions.
type Motion struct {
	robot      RobotParams
	sensor     SensorParams
	goalRadius float64
}

// NewMotion creates a motion controller.
func NewMotion(robot RobotParams, sensor SensorParams, goalRadius float64) *Motion {
	return &Motion{robot: robot, sensor: sensor, goalRadius: goalRadius}
}

// Step integrates one tick toward the selected sector and returns the new
// pose and the commanded speed. ok=false means no sector was selected: the
// pose is returned unchanged with zero speed.
//
// Full speed is commanded only when the sector angle equals the current
// heading exactly; any heading change moves at minimum speed.
func (m *Motion) Step(sector int, ok bool, pose Pose, world World) (Pose, float64) {
	if !ok {
		return pose, 0
	}

	desired := m.sensor.RayAngle(sector)
	speed := m.robot.MinSpeed
	if desired == pose.Heading {
		speed = m.robot.MaxSpeed
	}

	r := m.robot.Radius
	next := Pose{
		X:       pose.X + math.Cos(desired)*speed,
		Y:       pose.Y + math.Sin(desired)*speed,
		Heading: desired,
	}
	next.X = clampFloat(next.X, r, world.Width-r)
	next.Y = clampFloat(next.Y, r, world.Height-r)
	return next, speed
}

// Evaluate checks the terminal conditions at pose. Collision is checked
// first and wins if both hold.
func (m *Motion) Evaluate(pose Pose, world World) Status {
	p := pose.Position()
	if world.hitsObstacle(p, m.robot.Radius) {
		return StatusCollided
	}
	if distance(p, world.Target) < m.goalRadius {
		return StatusGoalReached
	}
	return StatusRunning
}
