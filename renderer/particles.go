package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/ratato/camera"
	"github.com/pthm-cable/ratato/game"
	"github.com/pthm-cable/ratato/systems"
)

// ParticleRenderer renders effect particles.
type ParticleRenderer struct{}

// NewParticleRenderer creates a new particle renderer.
func NewParticleRenderer() *ParticleRenderer {
	return &ParticleRenderer{}
}

// Draw renders all particles.
func (r *ParticleRenderer) Draw(particles []game.ParticleView, cam *camera.Camera) {
	s := cam.Scale()
	for i := range particles {
		p := &particles[i]
		if !cam.IsVisible(float32(p.X), float32(p.Y), float32(p.Size)) {
			continue
		}
		a := float32(p.Alpha)

		var color rl.Color
		switch p.Type {
		case systems.ParticleHit:
			color = rl.Color{R: 255, G: 240, B: 200, A: uint8(a * 220)}
		case systems.ParticleDeath:
			color = rl.Color{R: 180, G: 40, B: 40, A: uint8(a * 200)}
		case systems.ParticleBlast:
			color = rl.Color{R: 255, G: 150, B: 50, A: uint8(a * 200)}
		}

		size := max(0.5, float32(p.Size)*a*s)
		x, y := cam.WorldToScreen(float32(p.X), float32(p.Y))
		rl.DrawCircleV(rl.Vector2{X: x, Y: y}, size, color)
	}
}
