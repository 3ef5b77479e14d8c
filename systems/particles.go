package systems

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/ratato/config"
)

// ParticleType identifies the type of effect particle.
type ParticleType uint8

const (
	ParticleHit ParticleType = iota
	ParticleDeath
	ParticleBlast
)

// EffectParticle is a cosmetic particle.
type EffectParticle struct {
	Pos     r2.Vec
	Vel     r2.Vec // Units per reference frame
	Life    float64
	MaxLife float64
	Type    ParticleType
	Size    float64
}

// ParticleSystem manages effect particles for visual feedback.
// Particles never affect the simulation.
type ParticleSystem struct {
	Particles    []EffectParticle
	maxParticles int
	burst        int
	life         float64
	speed        float64
	rng          *rand.Rand
}

// NewParticleSystem creates a particle system sized from cfg.
func NewParticleSystem(cfg *config.ParticlesConfig, rng *rand.Rand) *ParticleSystem {
	return &ParticleSystem{
		Particles:    make([]EffectParticle, 0, cfg.Max),
		maxParticles: cfg.Max,
		burst:        cfg.Burst,
		life:         cfg.Life,
		speed:        cfg.Speed,
		rng:          rng,
	}
}

// Update ages and moves particles, compacting in place.
func (s *ParticleSystem) Update(dt, frames float64) {
	alive := 0
	for i := range s.Particles {
		p := &s.Particles[i]

		p.Life -= dt
		if p.Life <= 0 {
			continue
		}

		switch p.Type {
		case ParticleDeath:
			// Sink
			p.Vel.Y += 0.05 * frames
		case ParticleBlast:
			p.Size += 0.3 * frames
		}

		// Drag
		p.Vel = r2.Scale(math.Pow(0.92, frames), p.Vel)
		p.Pos = r2.Add(p.Pos, r2.Scale(frames, p.Vel))

		s.Particles[alive] = *p
		alive++
	}
	s.Particles = s.Particles[:alive]
}

// EmitHit emits a small spark at a hit location.
func (s *ParticleSystem) EmitHit(pos r2.Vec) {
	s.emit(pos, ParticleHit, s.speed*0.5, s.life*0.5, 1.5)
}

// EmitDeath emits a radial burst where an enemy died.
func (s *ParticleSystem) EmitDeath(pos r2.Vec) {
	for range s.burst {
		s.emit(pos, ParticleDeath, s.speed, s.life, 2+s.rng.Float64()*1.5)
	}
}

// EmitBlast emits an expanding ring particle for explosions.
func (s *ParticleSystem) EmitBlast(pos r2.Vec, radius float64) {
	s.emit(pos, ParticleBlast, 0, s.life, radius*0.3)
}

func (s *ParticleSystem) emit(pos r2.Vec, ptype ParticleType, speed, life, size float64) {
	if len(s.Particles) >= s.maxParticles {
		return
	}
	angle := s.rng.Float64() * 2 * math.Pi
	v := speed * (0.5 + s.rng.Float64()*0.5)
	s.Particles = append(s.Particles, EffectParticle{
		Pos:     pos,
		Vel:     fromAngle(angle, v),
		Life:    life,
		MaxLife: life,
		Type:    ptype,
		Size:    size,
	})
}

// Count returns the current number of active particles.
func (s *ParticleSystem) Count() int {
	return len(s.Particles)
}

// Reset drops every particle.
func (s *ParticleSystem) Reset() {
	s.Particles = s.Particles[:0]
}
