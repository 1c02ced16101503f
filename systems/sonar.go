package systems

import "math"

// Ray is one cast sonar ray, kept for display only.
type Ray struct {
	From, To Vec2
}

// Scan holds one sweep of the sonar: a distance per sector, index-aligned
// with the sector ids, and the ray endpoints that produced them.
type Scan struct {
	Distances []float64
	Rays      []Ray
}

// Sonar casts fixed-step rays against obstacles inflated by the robot radius.
type Sonar struct {
	sensor SensorParams
	radius float64
}

// NewSonar creates a range scanner. Parameters are assumed validated.
func NewSonar(sensor SensorParams, robotRadius float64) *Sonar {
	return &Sonar{sensor: sensor, radius: robotRadius}
}

// Scan casts one ray per sector from pose's position.
func (s *Sonar) Scan(pose Pose, world World) Scan {
	n := s.sensor.NumSectors
	scan := Scan{
		Distances: make([]float64, n),
		Rays:      make([]Ray, n),
	}
	origin := pose.Position()
	for i := 0; i < n; i++ {
		d, end := s.cast(origin, s.sensor.RayAngle(i), world)
		scan.Distances[i] = d
		scan.Rays[i] = Ray{From: origin, To: end}
	}
	return scan
}

// cast marches a single ray and returns its range reading and end point.
//
// Three outcomes:
//   - the ray point enters an inflated obstacle: distance traveled to it
//   - the ray point leaves the world: distance traveled so far, not MaxRange
//   - neither within MaxRange: MaxRange exactly
//
// Marching starts at one step, so a reading is never below StepLength.
func (s *Sonar) cast(origin Vec2, angle float64, world World) (float64, Vec2) {
	dirX, dirY := math.Cos(angle), math.Sin(angle)
	steps := s.sensor.maxSteps()
	end := origin
	for k := 1; k <= steps; k++ {
		traveled := float64(k) * s.sensor.StepLength
		p := Vec2{X: origin.X + dirX*traveled, Y: origin.Y + dirY*traveled}
		if !world.inBounds(p) {
			return traveled, p
		}
		end = p
		if world.hitsObstacle(p, s.radius) {
			return traveled, p
		}
	}
	return s.sensor.MaxRange, end
}
