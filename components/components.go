// Package components defines ECS components for the simulation scene.
package components

// Position represents an entity's world position. For obstacles this is the
// top-left corner, for the robot its center.
type Position struct {
	X, Y float64
}

// Rotation holds the robot's heading.
type Rotation struct {
	Heading float64 // radians
}

// Extent is the size of an axis-aligned obstacle.
type Extent struct {
	W, H float64
}

// Robot holds the navigation state the core reports back each tick.
type Robot struct {
	Radius float64
	Speed  float64
	Sector int // last selected sector, -1 before the first tick
}

// Goal marks the target entity.
type Goal struct {
	Radius float64
}
