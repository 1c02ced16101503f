package game

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/vfh/ui"
)

var (
	obstacleColor = rl.Red
	rayColor      = rl.Color{R: 100, G: 100, B: 100, A: 160}
	robotColor    = rl.Blue
	headingColor  = rl.Green
	targetColor   = rl.Yellow
)

// Draw renders the field, the last scan and the HUD.
func (g *Game) Draw() {
	rl.BeginDrawing()
	defer rl.EndDrawing()
	rl.ClearBackground(rl.White)

	g.drawObstacles()
	g.drawTarget()
	g.drawRays()
	g.drawRobot()
	g.drawHUD()
}

func (g *Game) screen(x, y float64) rl.Vector2 {
	sx, sy := g.camera.WorldToScreen(float32(x), float32(y))
	return rl.Vector2{X: sx, Y: sy}
}

func (g *Game) drawObstacles() {
	query := g.obstacleFilter.Query()
	for query.Next() {
		pos, ext := query.Get()
		tl := g.screen(pos.X, pos.Y)
		rl.DrawRectangleRec(rl.Rectangle{
			X:      tl.X,
			Y:      tl.Y,
			Width:  g.camera.WorldLength(float32(ext.W)),
			Height: g.camera.WorldLength(float32(ext.H)),
		}, obstacleColor)
	}
}

func (g *Game) drawTarget() {
	pos, goal := g.goalMap.Get(g.goal)
	rl.DrawCircleV(g.screen(pos.X, pos.Y), g.camera.WorldLength(float32(goal.Radius)), targetColor)
}

func (g *Game) drawRays() {
	for _, ray := range g.last.Scan.Rays {
		rl.DrawLineV(g.screen(ray.From.X, ray.From.Y), g.screen(ray.To.X, ray.To.Y), rayColor)
	}
}

func (g *Game) drawRobot() {
	pos, rot, robot := g.robotMap.Get(g.robot)
	center := g.screen(pos.X, pos.Y)
	rl.DrawCircleV(center, g.camera.WorldLength(float32(robot.Radius)), robotColor)

	tip := g.screen(
		pos.X+math.Cos(rot.Heading)*robot.Radius,
		pos.Y+math.Sin(rot.Heading)*robot.Radius,
	)
	rl.DrawLineEx(center, tip, 3, headingColor)
}

func (g *Game) drawHUD() {
	sw, sh := int32(rl.GetScreenWidth()), int32(rl.GetScreenHeight())
	s := g.state
	target := g.cfg.Goal

	actions := g.hud.Draw(ui.HUDData{
		Title:          "VFH navigation",
		Tick:           s.Tick,
		Status:         s.Status.String(),
		Speed:          s.Speed,
		Sector:         s.Sector,
		TargetSector:   g.last.TargetSector,
		TargetDist:     math.Hypot(target.X-s.Pose.X, target.Y-s.Pose.Y),
		StepsPerUpdate: g.stepsPerUpdate,
		FPS:            rl.GetFPS(),
		Paused:         g.paused,
		ScreenWidth:    sw,
		ScreenHeight:   sh,
	})
	if actions.TogglePause {
		g.paused = !g.paused
	}
	if actions.StepOnce {
		g.stepOnce = true
	}
	if actions.Reset {
		g.Reset()
	}

	g.hud.DrawHistogram(ui.HistogramData{
		Densities:    g.last.Histogram,
		Threshold:    g.cfg.Selector.SafetyThreshold,
		Selected:     s.Sector,
		TargetSector: g.last.TargetSector,
	}, 10, sh-150, 360, 115)

	g.hud.DrawControls(sh, controlsText)
}
