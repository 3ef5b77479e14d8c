// Package camera follows the player across the disc-shaped world.
package camera

import "math"

// Camera maps world units to screen pixels. At zoom 1 the shorter screen
// side spans 2*ViewRadius world units around (X, Y).
type Camera struct {
	X, Y float32

	Zoom             float32 // Player multiplier on the fitted scale
	MinZoom, MaxZoom float32

	ViewportW, ViewportH float32
	ViewRadius           float32
	WorldRadius          float32 // The center is kept inside this disc

	Smoothing float32 // Exponential follow rate in 1/s; 0 snaps
}

func New(viewportW, viewportH, viewRadius, worldRadius float32) *Camera {
	return &Camera{
		Zoom: 1, MinZoom: 0.5, MaxZoom: 3,
		ViewportW: viewportW, ViewportH: viewportH,
		ViewRadius: viewRadius, WorldRadius: worldRadius,
		Smoothing: 8,
	}
}

// Scale is pixels per world unit.
func (c *Camera) Scale() float32 {
	return c.Zoom * min(c.ViewportW, c.ViewportH) / (2 * c.ViewRadius)
}

// halfExtent is half the visible world width and height.
func (c *Camera) halfExtent() (w, h float32) {
	s := c.Scale()
	return c.ViewportW / (2 * s), c.ViewportH / (2 * s)
}

// Follow eases toward (tx, ty) and pulls the center back inside the world.
func (c *Camera) Follow(tx, ty, dt float32) {
	k := float32(1)
	if c.Smoothing > 0 && dt > 0 {
		k = 1 - float32(math.Exp(float64(-c.Smoothing*dt)))
	}
	c.X += (tx - c.X) * k
	c.Y += (ty - c.Y) * k

	d := float32(math.Hypot(float64(c.X), float64(c.Y)))
	if d > c.WorldRadius {
		c.X *= c.WorldRadius / d
		c.Y *= c.WorldRadius / d
	}
}

func (c *Camera) WorldToScreen(wx, wy float32) (sx, sy float32) {
	s := c.Scale()
	return c.ViewportW/2 + (wx-c.X)*s, c.ViewportH/2 + (wy-c.Y)*s
}

func (c *Camera) ScreenToWorld(sx, sy float32) (wx, wy float32) {
	s := c.Scale()
	return c.X + (sx-c.ViewportW/2)/s, c.Y + (sy-c.ViewportH/2)/s
}

// IsVisible is a conservative culling test for a circle.
func (c *Camera) IsVisible(wx, wy, radius float32) bool {
	hw, hh := c.halfExtent()
	dx, dy := wx-c.X, wy-c.Y
	return dx >= -hw-radius && dx <= hw+radius && dy >= -hh-radius && dy <= hh+radius
}

func (c *Camera) Resize(viewportW, viewportH float32) {
	c.ViewportW, c.ViewportH = viewportW, viewportH
}

func (c *Camera) SetZoom(zoom float32) {
	c.Zoom = max(c.MinZoom, min(c.MaxZoom, zoom))
}

func (c *Camera) ZoomBy(factor float32) {
	c.SetZoom(c.Zoom * factor)
}

// Reset recenters on the origin at zoom 1.
func (c *Camera) Reset() {
	c.X, c.Y, c.Zoom = 0, 0, 1
}
