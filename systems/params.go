package systems

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidParams is wrapped by every parameter validation failure.
var ErrInvalidParams = errors.New("invalid navigation parameters")

// RobotParams holds the robot's fixed physical parameters.
type RobotParams struct {
	Radius   float64
	MinSpeed float64
	MaxSpeed float64
}

// SensorParams configures the range scanner.
type SensorParams struct {
	NumSectors int
	MaxRange   float64
	StepLength float64 // ray march increment in world units
}

// SectorAngle is the angular width of one sector.
func (s SensorParams) SectorAngle() float64 {
	return 2 * math.Pi / float64(s.NumSectors)
}

// RayAngle returns the angle of sector i's ray. Computed by multiplication so
// the last sector never drifts.
func (s SensorParams) RayAngle(i int) float64 {
	return float64(i) * s.SectorAngle()
}

// maxSteps is the number of ray march steps that fit within MaxRange.
func (s SensorParams) maxSteps() int {
	n := int(s.MaxRange / s.StepLength)
	if n < 1 {
		n = 1
	}
	return n
}

// SelectorParams holds the empirically chosen sector selection heuristics.
// The defaults (threshold 0.4, offsets -5..+4) were tuned by hand against
// the reference scene, not derived.
type SelectorParams struct {
	SafetyThreshold float64
	WindowBefore    int // first offset from the target sector, usually negative
	WindowAfter     int // last offset from the target sector, inclusive
}

// Params is the full navigation configuration.
type Params struct {
	Robot      RobotParams
	Sensor     SensorParams
	Selector   SelectorParams
	GoalRadius float64
}

// DefaultParams returns the parameters of the reference simulation.
func DefaultParams() Params {
	return Params{
		Robot:  RobotParams{Radius: 15, MinSpeed: 1, MaxSpeed: 3},
		Sensor: SensorParams{NumSectors: 36, MaxRange: 150, StepLength: 1},
		Selector: SelectorParams{
			SafetyThreshold: 0.4,
			WindowBefore:    -5,
			WindowAfter:     4,
		},
		GoalRadius: 10,
	}
}

// Validate reports the first parameter that would make navigation undefined.
func (p Params) Validate() error {
	switch {
	case p.Sensor.NumSectors <= 0:
		return fmt.Errorf("num_sectors must be positive, got %d: %w", p.Sensor.NumSectors, ErrInvalidParams)
	case p.Sensor.MaxRange <= 0:
		return fmt.Errorf("max_range must be positive, got %g: %w", p.Sensor.MaxRange, ErrInvalidParams)
	case p.Sensor.StepLength <= 0:
		return fmt.Errorf("step_length must be positive, got %g: %w", p.Sensor.StepLength, ErrInvalidParams)
	case p.Robot.Radius < 0:
		return fmt.Errorf("robot radius must not be negative, got %g: %w", p.Robot.Radius, ErrInvalidParams)
	case p.Robot.MinSpeed < 0 || p.Robot.MinSpeed > p.Robot.MaxSpeed:
		return fmt.Errorf("speeds must satisfy 0 <= min (%g) <= max (%g): %w",
			p.Robot.MinSpeed, p.Robot.MaxSpeed, ErrInvalidParams)
	case p.Selector.WindowBefore > p.Selector.WindowAfter:
		return fmt.Errorf("selector window [%d, %d] is empty: %w",
			p.Selector.WindowBefore, p.Selector.WindowAfter, ErrInvalidParams)
	case p.GoalRadius <= 0:
		return fmt.Errorf("goal radius must be positive, got %g: %w", p.GoalRadius, ErrInvalidParams)
	}
	return nil
}
