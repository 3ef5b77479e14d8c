package ui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var gameKeys = []string{
	"WASD / arrows  move",
	"1-3            pick upgrade",
	"P / Esc        pause",
	"R              restart after game over",
}

var (
	toggleOff = rl.Color{R: 80, G: 80, B: 80, A: 255}
	toggleOn  = rl.Color{R: 100, G: 200, B: 100, A: 255}
	keyHint   = rl.Color{R: 150, G: 150, B: 150, A: 255}
)

// ControlsPanel lists the key bindings and overlay toggles.
type ControlsPanel struct {
	renderer *Renderer
	x, y     int32
	width    int32
	visible  bool
}

func NewControlsPanel(x, y, width int32) *ControlsPanel {
	return &ControlsPanel{renderer: NewRenderer(), x: x, y: y, width: width}
}

func (c *ControlsPanel) SetVisible(visible bool) { c.visible = visible }

// Draw renders the panel when visible and returns the y below it.
func (c *ControlsPanel) Draw(overlays *OverlayRegistry) int32 {
	if !c.visible {
		return c.y
	}
	r := c.renderer
	pad, lh := r.Theme.Padding, r.Theme.LineHeight

	groups := []struct {
		title string
		items []Overlay
	}{
		{"Display", overlays.Group(false)},
		{"Debug", overlays.Group(true)},
	}
	rows := len(gameKeys) + 1
	for _, g := range groups {
		rows += len(g.items) + 1
	}
	r.DrawPanel(c.x, c.y, c.width, int32(rows)*lh+pad*3+lh)

	y := c.y + pad
	rl.DrawText("Controls", c.x+pad, y, 16, rl.White)
	y += lh + 4
	for _, line := range gameKeys {
		rl.DrawText(line, c.x+pad, y, r.Theme.FontSize, r.Theme.LabelColor)
		y += lh
	}
	y += 4

	for _, g := range groups {
		rl.DrawText(g.title, c.x+pad, y, r.Theme.HeaderFontSize, r.Theme.SectionHeader)
		y += lh
		for _, o := range g.items {
			c.drawToggle(c.x+pad, y, o, overlays.IsEnabled(o.ID), c.width-pad*2)
			y += lh
		}
		y += 4
	}
	return y
}

func (c *ControlsPanel) drawToggle(x, y int32, o Overlay, on bool, width int32) {
	th := c.renderer.Theme
	dot, text := toggleOff, th.LabelColor
	if on {
		dot, text = toggleOn, rl.White
	}
	rl.DrawRectangle(x, y+2, 8, 8, dot)
	rl.DrawText(o.Name, x+14, y, th.FontSize, text)

	hint := fmt.Sprintf("[%s]", o.Label)
	rl.DrawText(hint, x+width-rl.MeasureText(hint, th.FontSize), y, th.FontSize, keyHint)
}
