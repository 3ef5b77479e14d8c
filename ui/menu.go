package ui

import (
	"fmt"
	"strings"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/ratato/game"
)

// UpgradeMenu shows the level-up offers as buttons.
type UpgradeMenu struct {
	renderer *Renderer
}

// NewUpgradeMenu creates a new upgrade menu.
func NewUpgradeMenu() *UpgradeMenu {
	return &UpgradeMenu{renderer: NewRenderer()}
}

// Draw renders the offers and returns the index of a clicked offer, or -1.
// Chest rewards are already applied, so every card claims them.
func (m *UpgradeMenu) Draw(offers []game.OfferView, chest bool, screenW, screenH int32) int {
	if len(offers) == 0 {
		return -1
	}
	r := m.renderer
	const (
		cardW = 260
		cardH = 150
		gap   = 20
	)
	n := int32(len(offers))
	total := n*cardW + (n-1)*gap
	x0 := (screenW - total) / 2
	y0 := (screenH - cardH) / 2

	rl.DrawRectangle(0, 0, screenW, screenH, rl.Fade(rl.Black, 0.55))
	title, verb := "LEVEL UP!", "Choose"
	if chest {
		title, verb = "TREASURE CHEST!", "Claim"
		if offers[0].Kind == "evolve" {
			title = "EVOLUTION!"
		}
	}
	r.DrawCentered(title, screenW/2, y0-60, 32, rl.Gold)

	picked := -1
	for i, o := range offers {
		x := x0 + int32(i)*(cardW+gap)
		r.DrawPanel(x, y0, cardW, cardH)

		title := fmt.Sprintf("%s %s", o.Icon, o.Name)
		if o.Level > 0 {
			title = fmt.Sprintf("%s Lv%d", title, o.Level)
		}
		rl.DrawText(title, x+r.Theme.Padding, y0+r.Theme.Padding, 16, rl.White)
		rl.DrawText(o.Kind, x+r.Theme.Padding, y0+32, r.Theme.FontSize, r.Theme.SectionHeader)
		drawWrapped(o.Description, x+r.Theme.Padding, y0+52, cardW-2*r.Theme.Padding, r.Theme.FontSize, r.Theme.ValueColor)

		btn := rl.Rectangle{X: float32(x + r.Theme.Padding), Y: float32(y0 + cardH - 40), Width: cardW - 2*float32(r.Theme.Padding), Height: 30}
		if gui.Button(btn, fmt.Sprintf("[%d] %s", i+1, verb)) {
			picked = i
		}
	}
	return picked
}

// drawWrapped draws text broken on spaces to fit width.
func drawWrapped(text string, x, y, width, size int32, color rl.Color) {
	line := ""
	for _, word := range strings.Fields(text) {
		next := word
		if line != "" {
			next = line + " " + word
		}
		if line != "" && rl.MeasureText(next, size) > width {
			rl.DrawText(line, x, y, size, color)
			y += size + 4
			line = word
			continue
		}
		line = next
	}
	if line != "" {
		rl.DrawText(line, x, y, size, color)
	}
}
