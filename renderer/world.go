// Package renderer draws session snapshots with raylib.
package renderer

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/ratato/camera"
	"github.com/pthm-cable/ratato/components"
	"github.com/pthm-cable/ratato/game"
	"github.com/pthm-cable/ratato/palette"
)

var (
	colorPlayer          = rl.Color{R: 170, G: 170, B: 180, A: 255}
	colorShield          = rl.Color{R: 120, G: 200, B: 255, A: 160}
	colorObstacle        = rl.Color{R: 70, G: 60, B: 55, A: 255}
	colorProjectile      = rl.Color{R: 255, G: 220, B: 90, A: 255}
	colorEnemyProjectile = rl.Color{R: 255, G: 80, B: 80, A: 255}
	colorSatellite       = rl.Color{R: 140, G: 210, B: 255, A: 255}
	colorAura            = rl.Color{R: 150, G: 220, B: 90, A: 50}
	colorZone            = rl.Color{R: 255, G: 120, B: 40, A: 70}
	colorZoneAttract     = rl.Color{R: 200, G: 60, B: 255, A: 80}
	colorSlowed          = rl.Color{R: 140, G: 200, B: 255, A: 255}
	colorHPBack          = rl.Color{R: 40, G: 40, B: 40, A: 200}
	colorHPFill          = rl.Color{R: 220, G: 50, B: 50, A: 255}
)

var pickupColors = map[components.PickupKind]rl.Color{
	components.PickupGem:       {R: 80, G: 200, B: 255, A: 255},
	components.PickupHealth:    {R: 230, G: 60, B: 80, A: 255},
	components.PickupExplosive: {R: 255, G: 140, B: 30, A: 255},
	components.PickupIce:       {R: 190, G: 240, B: 255, A: 255},
	components.PickupSpeed:     {R: 250, G: 240, B: 80, A: 255},
	components.PickupBomb:      {R: 30, G: 30, B: 30, A: 255},
	components.PickupChest:     {R: 230, G: 180, B: 40, A: 255},
}

// WorldRenderer draws everything inside the world disc.
type WorldRenderer struct {
	ground    *GroundRenderer
	particles *ParticleRenderer

	// ShowHitboxes outlines every collider.
	ShowHitboxes bool
}

// NewWorldRenderer creates a renderer for a world of the given radius.
func NewWorldRenderer(seed int64, worldRadius float32) *WorldRenderer {
	return &WorldRenderer{
		ground:    NewGroundRenderer(seed, worldRadius),
		particles: NewParticleRenderer(),
	}
}

// Draw renders one snapshot. Draw order is back to front.
func (r *WorldRenderer) Draw(s *game.Snapshot, cam *camera.Camera) {
	pal := palette.For(s.Environment)
	rl.ClearBackground(palette.Outside)

	r.ground.Draw(s.Environment, cam)
	r.drawRim(s, cam, pal)

	for _, o := range s.Obstacles {
		fill(cam, o, colorObstacle)
	}
	for _, z := range s.Zones {
		c := colorZone
		if z.Attract {
			c = colorZoneAttract
		}
		fill(cam, z.Circle, c)
	}
	for _, au := range s.Auras {
		fill(cam, game.Circle{X: s.Player.X, Y: s.Player.Y, R: au.R}, colorAura)
	}
	for _, p := range s.Pickups {
		fill(cam, p.Circle, pickupColors[p.Kind])
	}
	for _, p := range s.Projectiles {
		fill(cam, p, colorProjectile)
	}
	for _, p := range s.EnemyProjectiles {
		fill(cam, p, colorEnemyProjectile)
	}
	for i := range s.Enemies {
		r.drawEnemy(&s.Enemies[i], cam, pal)
	}
	r.particles.Draw(s.Particles, cam)
	for _, sat := range s.Satellites {
		fill(cam, sat, colorSatellite)
	}
	r.drawSwing(s, cam)
	r.drawPlayer(&s.Player, cam)

	if r.ShowHitboxes {
		r.drawHitboxes(s, cam)
	}
}

// Unload frees GPU resources.
func (r *WorldRenderer) Unload() {
	r.ground.Unload()
}

func (r *WorldRenderer) drawRim(s *game.Snapshot, cam *camera.Camera, pal palette.Palette) {
	sc := cam.Scale()
	cx, cy := cam.WorldToScreen(0, 0)
	rad := float32(s.WorldRadius) * sc
	rl.DrawRing(rl.Vector2{X: cx, Y: cy}, rad-5*sc, rad+5*sc, 0, 360, 180, pal.Border)
}

func (r *WorldRenderer) drawEnemy(e *game.EnemyView, cam *camera.Camera, pal palette.Palette) {
	if !cam.IsVisible(float32(e.X), float32(e.Y), float32(e.R)) {
		return
	}
	c := pal.Enemy(e.Kind)
	if e.Slowed {
		c = palette.Blend(c, colorSlowed, 0.5)
	}
	fill(cam, e.Circle, c)

	if e.FuseLit && int(rl.GetTime()*10)%2 == 0 {
		outline(cam, e.Circle, rl.White)
	}
	if e.Kind == components.KindBoss {
		outline(cam, e.Circle, pal.Border)
		sc := cam.Scale()
		x, y := cam.WorldToScreen(float32(e.X-e.R), float32(e.Y-e.R-12))
		w := float32(2*e.R) * sc
		rl.DrawRectangleV(rl.Vector2{X: x, Y: y}, rl.Vector2{X: w, Y: 5 * sc}, colorHPBack)
		rl.DrawRectangleV(rl.Vector2{X: x, Y: y}, rl.Vector2{X: w * float32(e.HPRatio), Y: 5 * sc}, colorHPFill)
	}
}

func (r *WorldRenderer) drawSwing(s *game.Snapshot, cam *camera.Camera) {
	sw := s.Swing
	if sw == nil {
		return
	}
	x, y := cam.WorldToScreen(float32(s.Player.X), float32(s.Player.Y))
	start := (sw.Angle - sw.Arc/2) * 180 / math.Pi
	end := (sw.Angle + sw.Arc/2) * 180 / math.Pi
	alpha := float32(min(1, sw.Fading*5))
	rl.DrawCircleSector(rl.Vector2{X: x, Y: y}, float32(sw.R)*cam.Scale(),
		float32(start), float32(end), 24, rl.Fade(rl.White, 0.35*alpha))
}

func (r *WorldRenderer) drawPlayer(p *game.PlayerView, cam *camera.Camera) {
	fill(cam, p.Circle, colorPlayer)
	if p.ShieldRatio > 0 {
		ring := p.Circle
		ring.R += 4
		outline(cam, ring, rl.Fade(colorShield, float32(p.ShieldRatio)))
	}

	// Facing marker
	sc := cam.Scale()
	x, y := cam.WorldToScreen(float32(p.X+p.FacingX*p.R*0.6), float32(p.Y))
	rl.DrawCircleV(rl.Vector2{X: x, Y: y}, float32(p.R)*0.3*sc, rl.DarkGray)
}

func (r *WorldRenderer) drawHitboxes(s *game.Snapshot, cam *camera.Camera) {
	for _, o := range s.Obstacles {
		outline(cam, o, rl.Green)
	}
	for _, e := range s.Enemies {
		outline(cam, e.Circle, rl.Red)
	}
	for _, p := range s.Pickups {
		outline(cam, p.Circle, rl.SkyBlue)
	}
	outline(cam, s.Player.Circle, rl.Yellow)
}

func fill(cam *camera.Camera, c game.Circle, color rl.Color) {
	if !cam.IsVisible(float32(c.X), float32(c.Y), float32(c.R)) {
		return
	}
	x, y := cam.WorldToScreen(float32(c.X), float32(c.Y))
	rl.DrawCircleV(rl.Vector2{X: x, Y: y}, max(1, float32(c.R)*cam.Scale()), color)
}

func outline(cam *camera.Camera, c game.Circle, color rl.Color) {
	if !cam.IsVisible(float32(c.X), float32(c.Y), float32(c.R)) {
		return
	}
	x, y := cam.WorldToScreen(float32(c.X), float32(c.Y))
	rl.DrawCircleLinesV(rl.Vector2{X: x, Y: y}, float32(c.R)*cam.Scale(), color)
}
