package ui

import (
	"fmt"
	"sort"
	"strings"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/ratato/game"
	"github.com/pthm-cable/ratato/palette"
	"github.com/pthm-cable/ratato/systems"
	"github.com/pthm-cable/ratato/telemetry"
)

// HUD renders the main heads-up display.
type HUD struct {
	renderer *Renderer
}

// NewHUD creates a new HUD renderer.
func NewHUD() *HUD {
	return &HUD{
		renderer: NewRenderer(),
	}
}

// Draw renders player vitals, run counters and the loadout.
func (h *HUD) Draw(s *game.Snapshot, screenW int32) {
	r := h.renderer
	p := &s.Player
	const width = 300

	r.DrawPanel(5, 5, width, 118)
	x, y := int32(15), int32(12)
	y = r.DrawHealthBar(x, y, "HP", float32(p.HP), float32(p.MaxHP), width-10)
	if p.ShieldRatio > 0 {
		y = r.DrawMeter(x, y, "Shield", float32(p.Shield), float32(p.Shield/p.ShieldRatio), width-10, r.Theme.ShieldFill)
	}
	y = r.DrawMeter(x, y, fmt.Sprintf("Lv %d", p.Level), float32(p.XP), float32(p.XPToNext), width-10, r.Theme.XPFill)
	y = r.DrawLabelValue(x, y, "Kills", fmt.Sprintf("%d  (best %d)", s.Kills, s.HighScore))
	y = r.DrawLabelValue(x, y, "Cheese", fmt.Sprintf("%d", p.Currency))
	r.DrawLabelValue(x, y, "Buffs", buffText(p))

	// Clock and environment, top center
	cx := screenW / 2
	r.DrawCentered(s.Clock(), cx, 10, 28, rl.White)
	r.DrawCentered(palette.For(s.Environment).Name, cx, 42, 14, rl.LightGray)

	h.drawLoadout(s, screenW)
}

func (h *HUD) drawLoadout(s *game.Snapshot, screenW int32) {
	r := h.renderer
	x := screenW - 220
	y := int32(10)
	r.DrawPanel(x-10, 5, 220, int32(len(s.Player.Weapons)+len(s.Player.Passives)+2)*r.Theme.LineHeight+10)

	y = r.DrawSectionHeader(x, y, "Weapons")
	for _, w := range s.Player.Weapons {
		label := fmt.Sprintf("%s %s Lv%d", w.Icon, w.Name, w.Level)
		color := r.Theme.ValueColor
		if w.Evolved {
			label = fmt.Sprintf("%s %s", w.Icon, w.Name)
			color = rl.Gold
		}
		rl.DrawText(label, x, y, r.Theme.FontSize, color)
		y += r.Theme.LineHeight
	}
	y = r.DrawSectionHeader(x, y, "Passives")
	for _, pv := range s.Player.Passives {
		rl.DrawText(fmt.Sprintf("%s %s Lv%d", pv.Icon, pv.Name, pv.Level), x, y, r.Theme.FontSize, r.Theme.ValueColor)
		y += r.Theme.LineHeight
	}
}

func buffText(p *game.PlayerView) string {
	var parts []string
	if p.Buffs.Explosive > 0 {
		parts = append(parts, fmt.Sprintf("boom %.0fs", p.Buffs.Explosive))
	}
	if p.Buffs.Ice > 0 {
		parts = append(parts, fmt.Sprintf("ice %.0fs", p.Buffs.Ice))
	}
	if p.Buffs.Speed > 0 {
		parts = append(parts, fmt.Sprintf("speed %.0fs", p.Buffs.Speed))
	}
	if len(parts) == 0 {
		return "-"
	}
	return strings.Join(parts, ", ")
}

// DrawControls renders the control legend at the bottom of the screen.
func (h *HUD) DrawControls(screenHeight int32, controls string) {
	rl.DrawText(controls, 10, screenHeight-25, 14, rl.Gray)
}

// PerfPanel renders the tick stage timing panel.
type PerfPanel struct {
	renderer *Renderer
	x, y     int32
}

// NewPerfPanel creates a new performance panel.
func NewPerfPanel(x, y int32) *PerfPanel {
	return &PerfPanel{
		renderer: NewRenderer(),
		x:        x,
		y:        y,
	}
}

// SetPosition updates the panel position.
func (p *PerfPanel) SetPosition(x, y int32) {
	p.x = x
	p.y = y
}

// Draw renders the slowest stages first, using display names from reg.
func (p *PerfPanel) Draw(stats telemetry.PerfStats, reg *systems.SystemRegistry) {
	x := p.x
	y := p.y

	names := make([]string, 0, len(stats.PhaseAvg))
	for name := range stats.PhaseAvg {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		return stats.PhaseAvg[names[i]] > stats.PhaseAvg[names[j]]
	})

	p.renderer.DrawPanel(x-5, y-5, 250, int32(len(names)+3)*14+10)
	rl.DrawText("Tick Performance", x, y, 16, rl.White)
	y += 20

	rl.DrawText(fmt.Sprintf("Tick: %s | FPS: %.0f", stats.AvgTickDuration.Round(time.Microsecond), stats.FPS), x, y, 14, rl.Yellow)
	y += 16

	for _, name := range names {
		pct := stats.PhasePct[name]

		color := rl.LightGray
		if pct > 20 {
			color = rl.Red
		} else if pct > 10 {
			color = rl.Orange
		}

		displayName := name
		if reg != nil {
			displayName = reg.GetName(name)
		}

		rl.DrawText(
			fmt.Sprintf("%-16s %6s %5.1f%%", displayName, stats.PhaseAvg[name].Round(time.Microsecond), pct),
			x, y, 12, color,
		)
		y += 14
	}
}
