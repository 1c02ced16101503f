package ui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// HistogramData is the polar density histogram for one tick.
type HistogramData struct {
	Densities    []float64
	Threshold    float64
	Selected     int
	TargetSector int
}

// DrawHistogram renders densities as a bar chart inside the given rectangle.
// Bars are scaled against max(threshold*2, max density) so the threshold
// line is always visible.
func (h *HUD) DrawHistogram(data HistogramData, x, y, width, height int32) {
	t := h.theme
	drawPanel(t, x, y, width, height)
	n := len(data.Densities)
	if n == 0 {
		return
	}

	maxVal := data.Threshold * 2
	for _, d := range data.Densities {
		if d > maxVal {
			maxVal = d
		}
	}

	inner := height - 2*t.Padding - t.LineHeight
	barW := float32(width-2*t.Padding) / float32(n)
	baseY := float32(y + t.Padding + t.LineHeight + inner)

	rl.DrawText(fmt.Sprintf("density (threshold %.2f)", data.Threshold),
		x+t.Padding, y+t.Padding/2, t.FontSize, t.LabelColor)

	for i, d := range data.Densities {
		barH := float32(d/maxVal) * float32(inner)
		color := t.BarSafe
		if d >= data.Threshold {
			color = t.BarBlocked
		}
		if i == data.Selected {
			color = t.BarSelected
		}
		bx := float32(x+t.Padding) + float32(i)*barW
		rl.DrawRectangleRec(rl.Rectangle{X: bx, Y: baseY - barH, Width: barW - 1, Height: barH}, color)
		if i == data.TargetSector {
			rl.DrawRectangleLinesEx(rl.Rectangle{X: bx, Y: baseY - float32(inner), Width: barW - 1, Height: float32(inner)}, 1, t.BarTarget)
		}
	}

	thY := baseY - float32(data.Threshold/maxVal)*float32(inner)
	rl.DrawLineV(
		rl.Vector2{X: float32(x + t.Padding), Y: thY},
		rl.Vector2{X: float32(x + width - t.Padding), Y: thY},
		rl.White,
	)
}
