package systems

import (
	"fmt"

	"github.com/pthm-cable/ratato/catalog"
	"github.com/pthm-cable/ratato/components"
)

// activateOrbit replaces the weapon's orbit group, keeping its angle.
func (a *Arena) activateOrbit(w *components.WeaponInstance, s catalog.LevelStats) {
	p := a.Player
	wc := a.Cfg.Weapons
	key := w.Key()

	g := &components.OrbitGroup{
		Weapon:       key,
		AngularSpeed: s.Speed,
		Radius:       wc.OrbitRadius * s.Area,
		SatRadius:    wc.SatelliteRadius * s.Area,
		Remaining:    s.Duration,
		Unbounded:    s.Duration >= wc.UnboundedDuration,
		Damage:       s.Damage,
		Knockback:    s.Knockback,
		Lifesteal:    s.Lifesteal,
	}

	if old := p.Orbit(key); old != nil {
		g.Angle = old.Angle
		if len(old.SatKeys) == s.Amount {
			g.SatKeys = old.SatKeys
		}
		a.dropOrbit(old)
	}
	if g.SatKeys == nil {
		g.SatKeys = make([]string, s.Amount)
		for i := range g.SatKeys {
			g.SatKeys[i] = fmt.Sprintf("%s#%d", key, i)
		}
	}
	p.Orbits = append(p.Orbits, g)
}

func (a *Arena) dropOrbit(g *components.OrbitGroup) {
	p := a.Player
	for i, o := range p.Orbits {
		if o == g {
			p.Orbits = append(p.Orbits[:i], p.Orbits[i+1:]...)
			return
		}
	}
}

// UpdateOrbits expires, rotates and resolves hits for every orbit group.
func (a *Arena) UpdateOrbits(dt float64) {
	p := a.Player
	cooldown := a.Cfg.Weapons.OrbitHitCooldown

	alive := 0
	for _, g := range p.Orbits {
		if !g.Unbounded {
			g.Remaining -= dt
			if g.Remaining <= 0 {
				continue
			}
		}
		p.Orbits[alive] = g
		alive++

		g.Angle += g.AngularSpeed * dt
		strike := Strike{
			Weapon:    g.Weapon,
			Damage:    g.Damage,
			Knockback: g.Knockback,
			Lifesteal: g.Lifesteal,
			Origin:    p.Pos,
		}
		for i, hitKey := range g.SatKeys {
			pos := g.Satellite(p.Pos, i)
			for _, e := range a.EnemiesNear(pos, g.SatRadius) {
				if !e.CanHit(hitKey) || !components.Overlaps(pos, g.SatRadius, e.Pos, e.Radius) {
					continue
				}
				a.HitEnemy(e, strike)
				e.ArmHit(hitKey, cooldown)
			}
		}
	}
	clear(p.Orbits[alive:])
	p.Orbits = p.Orbits[:alive]
}
