package ui

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// HUDData holds all the data needed to render the main HUD.
type HUDData struct {
	Title          string
	Tick           int32
	Status         string
	Speed          float64
	Sector         int
	TargetSector   int
	TargetDist     float64
	StepsPerUpdate int
	FPS            int32
	Paused         bool
	ScreenWidth    int32
	ScreenHeight   int32
}

// HUDActions reports which HUD buttons were clicked this frame.
type HUDActions struct {
	TogglePause bool
	StepOnce    bool
	Reset       bool
}

// HUD renders the main heads-up display.
type HUD struct {
	theme Theme
}

// NewHUD creates a new HUD renderer.
func NewHUD() *HUD {
	return &HUD{theme: DefaultTheme()}
}

// Draw renders the HUD and its buttons.
func (h *HUD) Draw(data HUDData) HUDActions {
	t := h.theme
	const panelW, panelH = 260, 150
	x := data.ScreenWidth - panelW - t.Padding
	y := t.Padding
	drawPanel(t, x, y, panelW, panelH)

	tx := x + t.Padding
	ty := y + t.Padding
	rl.DrawText(data.Title, tx, ty, t.HeaderFontSize, t.ValueColor)
	ty += t.LineHeight + 4

	rl.DrawText(fmt.Sprintf("Tick: %d | %dx | FPS: %d", data.Tick, data.StepsPerUpdate, data.FPS),
		tx, ty, t.FontSize, t.LabelColor)
	ty += t.LineHeight
	rl.DrawText(fmt.Sprintf("Sector: %d (target %d)", data.Sector, data.TargetSector),
		tx, ty, t.FontSize, t.LabelColor)
	ty += t.LineHeight
	rl.DrawText(fmt.Sprintf("Speed: %.1f | Dist: %.1f", data.Speed, data.TargetDist),
		tx, ty, t.FontSize, t.LabelColor)
	ty += t.LineHeight

	statusText := data.Status
	statusColor := rl.Green
	switch {
	case data.Status == "collided":
		statusColor = rl.Red
	case data.Status == "goal_reached":
		statusColor = rl.Yellow
	case data.Paused:
		statusText = "PAUSED"
		statusColor = rl.Orange
	}
	rl.DrawText(statusText, tx, ty, t.FontSize, statusColor)
	ty += t.LineHeight + 4

	var actions HUDActions
	pauseText := "Pause"
	if data.Paused {
		pauseText = "Resume"
	}
	if gui.Button(rl.Rectangle{X: float32(tx), Y: float32(ty), Width: 70, Height: 24}, pauseText) {
		actions.TogglePause = true
	}
	if gui.Button(rl.Rectangle{X: float32(tx + 80), Y: float32(ty), Width: 70, Height: 24}, "Step") {
		actions.StepOnce = true
	}
	if gui.Button(rl.Rectangle{X: float32(tx + 160), Y: float32(ty), Width: 70, Height: 24}, "Reset") {
		actions.Reset = true
	}
	return actions
}

// DrawControls renders the control legend at the bottom of the screen.
func (h *HUD) DrawControls(screenHeight int32, controls string) {
	rl.DrawText(controls, 10, screenHeight-25, 14, rl.Gray)
}
