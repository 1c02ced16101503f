package game

import rl "github.com/gen2brain/raylib-go/raylib"

const controlsText = "SPACE pause | N step | R reset | , . speed | wheel zoom | RMB pan | C recenter"

// handleInput processes keyboard and mouse input.
func (g *Game) handleInput() {
	if rl.IsWindowResized() {
		g.camera.Resize(float32(rl.GetScreenWidth()), float32(rl.GetScreenHeight()))
	}

	if rl.IsKeyPressed(rl.KeySpace) {
		g.paused = !g.paused
	}
	if rl.IsKeyPressed(rl.KeyN) {
		g.stepOnce = true
	}
	if rl.IsKeyPressed(rl.KeyR) {
		g.Reset()
	}

	// Steps-per-update control with < > keys (comma and period)
	if rl.IsKeyPressed(rl.KeyComma) && g.stepsPerUpdate > 1 {
		g.stepsPerUpdate--
	}
	if rl.IsKeyPressed(rl.KeyPeriod) && g.stepsPerUpdate < 10 {
		g.stepsPerUpdate++
	}

	g.handleCameraInput()
}

// handleCameraInput handles zoom and pan.
func (g *Game) handleCameraInput() {
	if wheel := rl.GetMouseWheelMove(); wheel != 0 {
		g.camera.SetZoom(g.camera.Zoom * (1 + 0.1*wheel))
	}
	if rl.IsMouseButtonDown(rl.MouseButtonRight) {
		d := rl.GetMouseDelta()
		g.camera.Pan(-d.X, -d.Y)
	}
	if rl.IsKeyPressed(rl.KeyC) {
		g.camera.Reset()
	}
}

// Update handles input and advances the simulation for one frame.
func (g *Game) Update() {
	g.perf.RecordFrame()
	g.handleInput()

	switch {
	case g.stepOnce:
		g.stepOnce = false
		g.Step()
	case !g.paused:
		for i := 0; i < g.stepsPerUpdate && !g.Done(); i++ {
			g.Step()
		}
	}
}
