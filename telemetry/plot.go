package telemetry

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// PlotScene describes what PlotTrajectory draws besides the path. Coordinates
// are world coordinates with Y growing downward.
type PlotScene struct {
	Title            string
	Width, Height    float64
	Obstacles        [][4]float64 // x, y, w, h
	TargetX, TargetY float64
}

// PlotTrajectory renders the robot path over the scene and saves it as a PNG.
func PlotTrajectory(path string, scene PlotScene, xs, ys []float64) error {
	if len(xs) != len(ys) {
		return fmt.Errorf("plotting trajectory: %d xs vs %d ys", len(xs), len(ys))
	}

	p := plot.New()
	p.Title.Text = scene.Title
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y (flipped)"
	p.X.Min, p.X.Max = 0, scene.Width
	p.Y.Min, p.Y.Max = 0, scene.Height

	// Plot space has Y up; world space has Y down.
	flip := func(y float64) float64 { return scene.Height - y }

	for _, o := range scene.Obstacles {
		x, y, w, h := o[0], flip(o[1]), o[2], o[3]
		poly, err := plotter.NewPolygon(plotter.XYs{
			{X: x, Y: y}, {X: x + w, Y: y}, {X: x + w, Y: y - h}, {X: x, Y: y - h},
		})
		if err != nil {
			return fmt.Errorf("creating obstacle polygon: %w", err)
		}
		poly.Color = color.RGBA{R: 200, G: 40, B: 40, A: 255}
		p.Add(poly)
	}

	pts := make(plotter.XYs, len(xs))
	for i := range xs {
		pts[i] = plotter.XY{X: xs[i], Y: flip(ys[i])}
	}
	if len(pts) > 0 {
		line, err := plotter.NewLine(pts)
		if err != nil {
			return fmt.Errorf("creating path line: %w", err)
		}
		line.Width = vg.Points(1)
		line.Color = color.RGBA{B: 255, A: 255}
		p.Add(line)
	}

	target, err := plotter.NewScatter(plotter.XYs{{X: scene.TargetX, Y: flip(scene.TargetY)}})
	if err != nil {
		return fmt.Errorf("creating target marker: %w", err)
	}
	target.GlyphStyle.Shape = draw.CircleGlyph{}
	target.GlyphStyle.Radius = vg.Points(4)
	target.GlyphStyle.Color = color.RGBA{R: 230, G: 200, A: 255}
	p.Add(target)

	if err := p.Save(8*vg.Inch, 6*vg.Inch, path); err != nil {
		return fmt.Errorf("saving trajectory plot: %w", err)
	}
	return nil
}
