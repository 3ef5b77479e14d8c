package main

import (
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/ratato/camera"
	"github.com/pthm-cable/ratato/config"
	"github.com/pthm-cable/ratato/game"
	"github.com/pthm-cable/ratato/renderer"
	"github.com/pthm-cable/ratato/telemetry"
	"github.com/pthm-cable/ratato/ui"
)

const controlsLegend = "WASD/Arrows move   P/Esc pause   1-3 choose   R restart   F1 help"

// readInput samples the keyboard for one frame.
func readInput() game.Input {
	in := game.Input{
		Up:      rl.IsKeyDown(rl.KeyW) || rl.IsKeyDown(rl.KeyUp),
		Down:    rl.IsKeyDown(rl.KeyS) || rl.IsKeyDown(rl.KeyDown),
		Left:    rl.IsKeyDown(rl.KeyA) || rl.IsKeyDown(rl.KeyLeft),
		Right:   rl.IsKeyDown(rl.KeyD) || rl.IsKeyDown(rl.KeyRight),
		Pause:   rl.IsKeyPressed(rl.KeyP) || rl.IsKeyPressed(rl.KeyEscape),
		Restart: rl.IsKeyPressed(rl.KeyR),
		Select:  -1,
	}
	for i, k := range []int32{rl.KeyOne, rl.KeyTwo, rl.KeyThree} {
		if rl.IsKeyPressed(k) {
			in.Select = i
		}
	}
	return in
}

// runWindow plays the session in a raylib window until it is closed.
func runWindow(cfg *config.Config, g *game.Game, seed int64, maxTicks int, onFrame func(*game.Snapshot, []telemetry.Event)) {
	rl.SetConfigFlags(rl.FlagWindowResizable)
	rl.InitWindow(int32(cfg.Screen.Width), int32(cfg.Screen.Height), "Ratato")
	defer rl.CloseWindow()
	rl.SetTargetFPS(int32(cfg.Screen.TargetFPS))
	rl.SetExitKey(0)

	cam := camera.New(float32(cfg.Screen.Width), float32(cfg.Screen.Height),
		float32(cfg.World.ViewportRadius), float32(cfg.World.Radius))
	world := renderer.NewWorldRenderer(seed, float32(cfg.World.Radius))
	defer world.Unload()

	overlays := ui.NewOverlayRegistry()
	hud := ui.NewHUD()
	perf := ui.NewPerfPanel(10, 130)
	controls := ui.NewControlsPanel(10, 130, 300)
	menu := ui.NewUpgradeMenu()
	over := ui.NewGameOverPanel()

	for !rl.WindowShouldClose() {
		if rl.IsWindowResized() {
			cam.Resize(float32(rl.GetScreenWidth()), float32(rl.GetScreenHeight()))
		}
		for _, k := range overlays.Keys() {
			if rl.IsKeyPressed(k) {
				overlays.HandleKeyPress(k)
			}
		}
		if wheel := rl.GetMouseWheelMove(); wheel != 0 {
			cam.ZoomBy(1 + 0.1*wheel)
		}

		g.Apply(readInput())
		g.Frame(time.Now())

		snap := g.Snapshot()
		onFrame(&snap, g.DrainEvents())
		cam.Follow(float32(snap.Player.X), float32(snap.Player.Y), rl.GetFrameTime())

		w, h := int32(rl.GetScreenWidth()), int32(rl.GetScreenHeight())
		world.ShowHitboxes = overlays.IsEnabled(ui.OverlayHitboxes)
		controls.SetVisible(overlays.IsEnabled(ui.OverlayControls))

		rl.BeginDrawing()
		world.Draw(&snap, cam)
		if overlays.IsEnabled(ui.OverlayHUD) {
			hud.Draw(&snap, w)
			hud.DrawControls(h, controlsLegend)
		}
		// The perf panel stacks under the controls panel when both are open.
		below := controls.Draw(overlays)
		if overlays.IsEnabled(ui.OverlayPerf) {
			perf.SetPosition(10, below+10)
			perf.Draw(g.Perf().Stats(), g.Registry())
		}

		switch {
		case snap.GameOver:
			if over.Draw(&snap, w, h) {
				g.Apply(game.Input{Restart: true, Select: -1})
				cam.Reset()
			}
		case snap.Awaiting:
			if i := menu.Draw(snap.Offers, snap.Chest, w, h); i >= 0 {
				g.Select(i)
			}
		case snap.Paused:
			ui.DrawPaused(w, h)
		}
		rl.EndDrawing()

		if maxTicks > 0 && g.Tick() >= maxTicks {
			break
		}
	}
}
