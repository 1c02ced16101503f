package game

import (
	"github.com/pthm-cable/vfh/components"
	"github.com/pthm-cable/vfh/systems"
)

// spawnScene creates the obstacle, goal and robot entities.
func (g *Game) spawnScene() {
	scene := g.cfg.Scene()
	for _, o := range scene.Obstacles {
		g.obstacleMap.NewEntity(
			&components.Position{X: o.X, Y: o.Y},
			&components.Extent{W: o.W, H: o.H},
		)
	}

	g.goal = g.goalMap.NewEntity(
		&components.Position{X: scene.Target.X, Y: scene.Target.Y},
		&components.Goal{Radius: g.cfg.Goal.Radius},
	)

	start := g.cfg.StartPose()
	g.robot = g.robotMap.NewEntity(
		&components.Position{X: start.X, Y: start.Y},
		&components.Rotation{Heading: start.Heading},
		&components.Robot{Radius: g.cfg.Robot.Radius, Sector: -1},
	)
}

// snapshotWorld collects the read-only world the core sees this tick.
func (g *Game) snapshotWorld() systems.World {
	world := systems.World{
		Width:  g.cfg.Derived.WorldW,
		Height: g.cfg.Derived.WorldH,
	}

	query := g.obstacleFilter.Query()
	for query.Next() {
		pos, ext := query.Get()
		world.Obstacles = append(world.Obstacles, systems.Rect{X: pos.X, Y: pos.Y, W: ext.W, H: ext.H})
	}

	goalPos, _ := g.goalMap.Get(g.goal)
	world.Target = systems.Vec2{X: goalPos.X, Y: goalPos.Y}
	return world
}

// syncRobot writes the simulation state back onto the robot entity.
func (g *Game) syncRobot() {
	pos, rot, robot := g.robotMap.Get(g.robot)
	pos.X, pos.Y = g.state.Pose.X, g.state.Pose.Y
	rot.Heading = g.state.Pose.Heading
	robot.Speed = g.state.Speed
	robot.Sector = g.state.Sector
}
