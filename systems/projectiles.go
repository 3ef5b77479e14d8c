package systems

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/ratato/components"
)

// MoveProjectiles advances player and enemy projectiles. Projectiles that
// leave the world or run out of travel are marked dead.
func (a *Arena) MoveProjectiles(dt float64) {
	frames := a.Frames(dt)
	wc := a.Cfg.Weapons
	worldR := a.Cfg.World.Radius

	for _, p := range a.Projectiles {
		if p.Dead {
			continue
		}
		switch p.Path {
		case components.PathGravity:
			p.Vel.Y += wc.Gravity * dt
		case components.PathSpiral:
			p.Vel = rotate(p.Vel, wc.SpiralCurl*dt)
		}

		step := r2.Scale(frames, p.Vel)
		p.Pos = r2.Add(p.Pos, step)
		p.Travel -= r2.Norm(step)
		if p.Travel <= 0 || r2.Norm(p.Pos) > worldR {
			p.Dead = true
		}
	}

	for _, p := range a.EnemyProjectiles {
		if p.Dead {
			continue
		}
		p.Pos = r2.Add(p.Pos, r2.Scale(frames, p.Vel))
		if r2.Norm(p.Pos) > worldR || a.ObstacleHit(p.Pos, p.Radius) != nil {
			p.Dead = true
		}
	}
}

// CollideProjectiles resolves projectile hits against obstacles and enemies.
// Each projectile damages at most one enemy per tick; candidates are tried
// in spawn order.
func (a *Arena) CollideProjectiles() {
	cb := a.Cfg.Combat
	for _, p := range a.Projectiles {
		if p.Dead {
			continue
		}
		if a.ObstacleHit(p.Pos, p.Radius) != nil {
			p.Dead = true
			continue
		}

		var target *components.Enemy
		for _, e := range a.EnemiesNear(p.Pos, p.Radius) {
			if !p.HasHit(e) && components.Overlaps(p.Pos, p.Radius, e.Pos, e.Radius) {
				target = e
				break
			}
		}
		if target == nil {
			continue
		}

		a.HitEnemy(target, Strike{
			Weapon:    p.Weapon,
			Damage:    p.Damage,
			Knockback: p.Knockback,
			Lifesteal: p.Lifesteal,
			Origin:    p.Pos,
		})
		p.MarkHit(target)
		if p.Explosive {
			a.Explode(target.Pos, cb.ExplosiveRadius, p.Damage*cb.ExplosiveFraction, p.Weapon, target)
		}

		switch {
		case p.Pierce > 0:
			p.Pierce--
		case p.Bounce > 0:
			p.Bounce--
			a.bounce(p)
		default:
			p.Dead = true
		}
	}
}

// bounce retargets p at the nearest enemy it has not hit yet.
// Bounced projectiles fly straight at their original speed.
func (a *Arena) bounce(p *components.Projectile) {
	next := a.nearestUnhit(p)
	if next == nil {
		p.Dead = true
		return
	}
	speed := r2.Norm(p.Vel)
	p.Vel = fromAngle(angleTo(p.Pos, next.Pos), speed)
	p.Path = components.PathLinear
	p.Travel = p.TravelBudget
}

func rotate(v r2.Vec, angle float64) r2.Vec {
	sin, cos := math.Sincos(angle)
	return r2.Vec{X: v.X*cos - v.Y*sin, Y: v.X*sin + v.Y*cos}
}
