package systems

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSensor() SensorParams {
	return SensorParams{NumSectors: 36, MaxRange: 150, StepLength: 1}
}

func TestSonarClearFieldReturnsMaxRange(t *testing.T) {
	sonar := NewSonar(testSensor(), 15)
	world := World{Width: 1000, Height: 1000}

	scan := sonar.Scan(Pose{X: 500, Y: 500}, world)

	require.Len(t, scan.Distances, 36)
	require.Len(t, scan.Rays, 36)
	for i, d := range scan.Distances {
		assert.Equal(t, 150.0, d, "sector %d", i)
		assert.Equal(t, Vec2{X: 500, Y: 500}, scan.Rays[i].From, "sector %d", i)
	}
}

func TestSonarOriginInsideInflatedObstacle(t *testing.T) {
	sonar := NewSonar(testSensor(), 15)
	world := World{
		Width:     800,
		Height:    600,
		Obstacles: []Rect{{X: 490, Y: 490, W: 20, H: 20}},
	}

	scan := sonar.Scan(Pose{X: 500, Y: 500}, world)

	for i, d := range scan.Distances {
		assert.Equal(t, 1.0, d, "sector %d should read one step", i)
		assert.Positive(t, d)
	}
}

func TestSonarHitsInflatedObstacle(t *testing.T) {
	sonar := NewSonar(testSensor(), 5)
	// Inflated left edge sits at x=145, 45 units ahead of the robot.
	world := World{
		Width:     800,
		Height:    600,
		Obstacles: []Rect{{X: 150, Y: 90, W: 10, H: 20}},
	}

	scan := sonar.Scan(Pose{X: 100, Y: 100}, world)

	assert.Equal(t, 45.0, scan.Distances[0])
	assert.InDelta(t, 145.0, scan.Rays[0].To.X, 1e-9)
	assert.InDelta(t, 100.0, scan.Rays[0].To.Y, 1e-9)
	// Sector 9 points along +Y, clear of the obstacle and the world edge.
	assert.Equal(t, 150.0, scan.Distances[9])
}

func TestSonarWorldExitReturnsDistanceTraveled(t *testing.T) {
	sonar := NewSonar(testSensor(), 15)
	world := World{Width: 800, Height: 600}

	scan := sonar.Scan(Pose{X: 20, Y: 300}, world)

	// Sector 18 points along -X; x=0 is still inside, the first step past it is not.
	assert.InDelta(t, 21.0, scan.Distances[18], 1e-9)
	assert.Less(t, scan.Distances[18], 150.0)
	assert.Equal(t, 150.0, scan.Distances[0])
}

func TestSonarRayAnglesByIndex(t *testing.T) {
	s := testSensor()
	for i := 0; i < s.NumSectors; i++ {
		assert.Equal(t, float64(i)*s.SectorAngle(), s.RayAngle(i))
	}
	assert.InDelta(t, 2*3.141592653589793, s.SectorAngle()*float64(s.NumSectors), 1e-12)
}
