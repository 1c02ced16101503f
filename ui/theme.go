// Package ui draws the heads-up display and histogram panel.
package ui

import rl "github.com/gen2brain/raylib-go/raylib"

// Theme holds UI styling constants.
type Theme struct {
	PanelBg        rl.Color
	PanelBorder    rl.Color
	LabelColor     rl.Color
	ValueColor     rl.Color
	BarBg          rl.Color
	BarSafe        rl.Color // density below the safety threshold
	BarBlocked     rl.Color // density at or above it
	BarSelected    rl.Color
	BarTarget      rl.Color
	Padding        int32
	LineHeight     int32
	FontSize       int32
	HeaderFontSize int32
}

// DefaultTheme returns the default UI theme.
func DefaultTheme() Theme {
	return Theme{
		PanelBg:        rl.Color{R: 20, G: 25, B: 30, A: 220},
		PanelBorder:    rl.Color{R: 60, G: 70, B: 80, A: 255},
		LabelColor:     rl.LightGray,
		ValueColor:     rl.White,
		BarBg:          rl.Color{R: 40, G: 40, B: 40, A: 255},
		BarSafe:        rl.Color{R: 100, G: 200, B: 100, A: 255},
		BarBlocked:     rl.Color{R: 200, G: 100, B: 100, A: 255},
		BarSelected:    rl.Color{R: 100, G: 150, B: 255, A: 255},
		BarTarget:      rl.Yellow,
		Padding:        10,
		LineHeight:     18,
		FontSize:       14,
		HeaderFontSize: 16,
	}
}

// drawPanel draws a panel background with border.
func drawPanel(t Theme, x, y, width, height int32) {
	rl.DrawRectangle(x, y, width, height, t.PanelBg)
	rl.DrawRectangleLines(x, y, width, height, t.PanelBorder)
}
