package ui

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/ratato/game"
)

// GameOverPanel shows the run result and a restart button.
type GameOverPanel struct {
	renderer *Renderer
}

// NewGameOverPanel creates a new game-over panel.
func NewGameOverPanel() *GameOverPanel {
	return &GameOverPanel{renderer: NewRenderer()}
}

// Draw renders the panel and reports whether restart was clicked.
func (g *GameOverPanel) Draw(s *game.Snapshot, screenW, screenH int32) bool {
	r := g.renderer
	const w, h = 360, 220
	x := (screenW - w) / 2
	y := (screenH - h) / 2
	cx := screenW / 2

	rl.DrawRectangle(0, 0, screenW, screenH, rl.Fade(rl.Black, 0.6))
	r.DrawPanel(x, y, w, h)
	r.DrawCentered("GAME OVER", cx, y+16, 32, rl.Red)
	r.DrawCentered(fmt.Sprintf("Survived %s", s.Clock()), cx, y+60, 18, rl.White)
	r.DrawCentered(fmt.Sprintf("Kills: %d   Level: %d", s.Kills, s.Player.Level), cx, y+86, 18, rl.White)

	best := fmt.Sprintf("Best: %d", s.HighScore)
	color := r.Theme.LabelColor
	if s.NewHighScore {
		best = fmt.Sprintf("New high score: %d!", s.HighScore)
		color = rl.Gold
	}
	r.DrawCentered(best, cx, y+116, 16, color)

	btn := rl.Rectangle{X: float32(cx - 80), Y: float32(y + h - 50), Width: 160, Height: 34}
	return gui.Button(btn, "[R] Restart")
}

// DrawPaused dims the screen under a pause banner.
func DrawPaused(screenW, screenH int32) {
	rl.DrawRectangle(0, 0, screenW, screenH, rl.Fade(rl.Black, 0.4))
	r := NewRenderer()
	r.DrawCentered("PAUSED", screenW/2, screenH/2-20, 40, rl.White)
	r.DrawCentered("press P or Esc to resume", screenW/2, screenH/2+28, 16, rl.LightGray)
}
