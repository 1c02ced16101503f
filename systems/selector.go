package systems

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Selector picks the heading sector from a density histogram.
type Selector struct {
	sensor SensorParams
	params SelectorParams
}

// NewSelector creates a sector selector.
func NewSelector(sensor SensorParams, params SelectorParams) *Selector {
	return &Selector{sensor: sensor, params: params}
}

// TargetSector returns the sector containing the bearing from robot to target.
func (s *Selector) TargetSector(robot, target Vec2) int {
	bearing := math.Atan2(target.Y-robot.Y, target.X-robot.X)
	return floorMod(int(math.Floor(bearing/s.sensor.SectorAngle())), s.sensor.NumSectors)
}

// Select returns the chosen sector and true, or false when there are no
// sectors at all. A histogram shorter than the sector count is a caller
// error and also reports false; Navigator always builds full histograms.
//
// Sectors within the window around the target sector are preferred: the
// lowest density strictly below the safety threshold wins, first in scan
// order on ties. When none qualifies the global minimum is taken with no
// threshold, so the robot always moves somewhere.
func (s *Selector) Select(h Histogram, robot, target Vec2) (int, bool) {
	n := s.sensor.NumSectors
	if n <= 0 || len(h) < n {
		return 0, false
	}

	targetSector := s.TargetSector(robot, target)
	best := -1
	lowest := math.Inf(1)
	for off := s.params.WindowBefore; off <= s.params.WindowAfter; off++ {
		idx := floorMod(targetSector+off, n)
		if d := h[idx]; d < lowest && d < s.params.SafetyThreshold {
			lowest = d
			best = idx
		}
	}
	if best >= 0 {
		return best, true
	}

	// MinIdx returns the first index on ties.
	return floats.MinIdx(h[:n]), true
}
