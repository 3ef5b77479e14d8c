// Package ui draws the heads-up display, menus and debug panels over the
// rendered world.
package ui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Theme is the shared palette and metrics for every panel.
type Theme struct {
	PanelBg, PanelBorder   rl.Color
	SectionHeader          rl.Color
	LabelColor, ValueColor rl.Color
	BarBg                  rl.Color
	XPFill, ShieldFill     rl.Color

	// HealthFill is indexed low, medium, high.
	HealthFill [3]rl.Color

	Padding, LineHeight, LabelWidth, BarHeight int32
	FontSize, HeaderFontSize                   int32
}

func DefaultTheme() Theme {
	return Theme{
		PanelBg:       rl.NewColor(20, 25, 30, 230),
		PanelBorder:   rl.NewColor(60, 70, 80, 255),
		SectionHeader: rl.Yellow,
		LabelColor:    rl.LightGray,
		ValueColor:    rl.LightGray,
		BarBg:         rl.NewColor(40, 40, 40, 255),
		XPFill:        rl.NewColor(80, 200, 255, 255),
		ShieldFill:    rl.NewColor(120, 200, 255, 255),
		HealthFill: [3]rl.Color{
			rl.NewColor(200, 100, 100, 255),
			rl.NewColor(200, 180, 100, 255),
			rl.NewColor(100, 200, 100, 255),
		},
		Padding:        10,
		LineHeight:     16,
		LabelWidth:     60,
		BarHeight:      12,
		FontSize:       12,
		HeaderFontSize: 14,
	}
}

// Renderer draws themed widgets. Methods that lay out rows return the y
// of the next row.
type Renderer struct {
	Theme Theme
}

func NewRenderer() *Renderer {
	return &Renderer{Theme: DefaultTheme()}
}

func (r *Renderer) DrawPanel(x, y, w, h int32) {
	rl.DrawRectangle(x, y, w, h, r.Theme.PanelBg)
	rl.DrawRectangleLines(x, y, w, h, r.Theme.PanelBorder)
}

func (r *Renderer) DrawSectionHeader(x, y int32, title string) int32 {
	rl.DrawText(title, x, y, r.Theme.HeaderFontSize, r.Theme.SectionHeader)
	return y + r.Theme.LineHeight
}

func (r *Renderer) DrawLabelValue(x, y int32, label, value string) int32 {
	th := &r.Theme
	rl.DrawText(label+":", x, y, th.FontSize, th.LabelColor)
	rl.DrawText(value, x+th.LabelWidth, y, th.FontSize, th.ValueColor)
	return y + th.LineHeight
}

// DrawMeter draws "label: [bar] cur/max" in width pixels.
func (r *Renderer) DrawMeter(x, y int32, label string, cur, maxVal float32, width int32, fill rl.Color) int32 {
	th := &r.Theme
	bx, bw := x+th.LabelWidth, width-th.LabelWidth-80

	rl.DrawText(label+":", x, y, th.FontSize, th.LabelColor)
	rl.DrawRectangle(bx, y+2, bw, th.BarHeight, th.BarBg)
	rl.DrawRectangle(bx, y+2, int32(float32(bw)*fillRatio(cur, maxVal)), th.BarHeight, fill)
	rl.DrawText(fmt.Sprintf("%.0f/%.0f", cur, maxVal), bx+bw+5, y, th.FontSize, th.ValueColor)
	return y + th.LineHeight + 2
}

// DrawHealthBar is a meter that turns yellow below 60% and red below 30%.
func (r *Renderer) DrawHealthBar(x, y int32, label string, cur, maxVal float32, width int32) int32 {
	tier := 2
	switch ratio := fillRatio(cur, maxVal); {
	case ratio < 0.3:
		tier = 0
	case ratio < 0.6:
		tier = 1
	}
	return r.DrawMeter(x, y, label, cur, maxVal, width, r.Theme.HealthFill[tier])
}

func (r *Renderer) DrawCentered(text string, cx, y, size int32, color rl.Color) {
	rl.DrawText(text, cx-rl.MeasureText(text, size)/2, y, size, color)
}

func fillRatio(cur, maxVal float32) float32 {
	if maxVal <= 0 {
		return 0
	}
	return max(0, min(1, cur/maxVal))
}
