package systems

import "math"

// Vec2 is a point or displacement in world coordinates.
type Vec2 struct {
	X, Y float64
}

// Pose is the robot center and heading (radians).
type Pose struct {
	X, Y    float64
	Heading float64
}

// Position returns the pose's center point.
func (p Pose) Position() Vec2 {
	return Vec2{X: p.X, Y: p.Y}
}

// Rect is an axis-aligned rectangle with its origin at the top-left corner.
type Rect struct {
	X, Y, W, H float64
}

// Inflate returns r grown by d on all four sides.
func (r Rect) Inflate(d float64) Rect {
	return Rect{X: r.X - d, Y: r.Y - d, W: r.W + 2*d, H: r.H + 2*d}
}

// Contains reports whether p lies inside r. All four edges are inclusive.
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.X && p.X <= r.X+r.W && p.Y >= r.Y && p.Y <= r.Y+r.H
}

// World is the read-only snapshot of the field the core navigates in.
type World struct {
	Width, Height float64
	Obstacles     []Rect
	Target        Vec2
}

// inBounds reports whether p lies within [0,Width] x [0,Height].
func (w World) inBounds(p Vec2) bool {
	return p.X >= 0 && p.X <= w.Width && p.Y >= 0 && p.Y <= w.Height
}

// hitsObstacle reports whether p falls inside any obstacle inflated by radius.
func (w World) hitsObstacle(p Vec2, radius float64) bool {
	for _, o := range w.Obstacles {
		if o.Inflate(radius).Contains(p) {
			return true
		}
	}
	return false
}

// clampFloat clamps v between minVal and maxVal.
func clampFloat(v, minVal, maxVal float64) float64 {
	if v < minVal {
		return minVal
	}
	if v > maxVal {
		return maxVal
	}
	return v
}

// floorMod returns a mod n in [0, n) for n > 0.
func floorMod(a, n int) int {
	m := a % n
	if m < 0 {
		m += n
	}
	return m
}

// distance returns the Euclidean distance between a and b.
func distance(a, b Vec2) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}
