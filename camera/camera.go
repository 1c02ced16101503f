// Package camera maps world coordinates onto the window.
package camera

// Camera fits the world into the viewport with uniform scaling, centering
// the world on the axis with spare room (letterboxing). Zoom magnifies
// around the view center.
type Camera struct {
	// Center of the view in world coordinates
	X, Y float32

	// Zoom level on top of the fit scale (1.0 = whole world visible)
	Zoom float32

	// Viewport dimensions (screen size)
	ViewportW, ViewportH float32

	// World dimensions
	WorldW, WorldH float32

	// Zoom constraints
	MinZoom, MaxZoom float32
}

// New creates a camera centered on the world showing all of it.
func New(viewportW, viewportH, worldW, worldH float32) *Camera {
	return &Camera{
		X:         worldW / 2,
		Y:         worldH / 2,
		Zoom:      1.0,
		ViewportW: viewportW,
		ViewportH: viewportH,
		WorldW:    worldW,
		WorldH:    worldH,
		MinZoom:   1.0,
		MaxZoom:   4.0,
	}
}

// FitScale is the pixels-per-world-unit that makes the whole world visible.
func (c *Camera) FitScale() float32 {
	sx := c.ViewportW / c.WorldW
	sy := c.ViewportH / c.WorldH
	if sy < sx {
		return sy
	}
	return sx
}

// Scale is the effective pixels-per-world-unit.
func (c *Camera) Scale() float32 {
	return c.FitScale() * c.Zoom
}

// WorldToScreen converts world coordinates to screen coordinates.
func (c *Camera) WorldToScreen(wx, wy float32) (sx, sy float32) {
	s := c.Scale()
	sx = c.ViewportW/2 + (wx-c.X)*s
	sy = c.ViewportH/2 + (wy-c.Y)*s
	return sx, sy
}

// ScreenToWorld converts screen coordinates to world coordinates.
func (c *Camera) ScreenToWorld(sx, sy float32) (wx, wy float32) {
	s := c.Scale()
	wx = c.X + (sx-c.ViewportW/2)/s
	wy = c.Y + (sy-c.ViewportH/2)/s
	return wx, wy
}

// WorldLength converts a world distance to pixels.
func (c *Camera) WorldLength(d float32) float32 {
	return d * c.Scale()
}

// SetZoom sets the zoom level, clamped to [MinZoom, MaxZoom].
func (c *Camera) SetZoom(z float32) {
	if z < c.MinZoom {
		z = c.MinZoom
	}
	if z > c.MaxZoom {
		z = c.MaxZoom
	}
	c.Zoom = z
	c.clampCenter()
}

// Pan moves the view center by a screen-space delta.
func (c *Camera) Pan(dx, dy float32) {
	s := c.Scale()
	c.X += dx / s
	c.Y += dy / s
	c.clampCenter()
}

// Reset returns to the whole-world view.
func (c *Camera) Reset() {
	c.X, c.Y = c.WorldW/2, c.WorldH/2
	c.Zoom = 1.0
}

// Resize updates the viewport after a window resize.
func (c *Camera) Resize(viewportW, viewportH float32) {
	c.ViewportW, c.ViewportH = viewportW, viewportH
	c.clampCenter()
}

// clampCenter keeps the view center inside the world.
func (c *Camera) clampCenter() {
	c.X = clamp(c.X, 0, c.WorldW)
	c.Y = clamp(c.Y, 0, c.WorldH)
}

func clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
