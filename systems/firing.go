package systems

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/ratato/catalog"
	"github.com/pthm-cable/ratato/components"
)

// Swing records a melee activation for display.
type Swing struct {
	Angle     float64
	Radius    float64
	Arc       float64
	Remaining float64 // Seconds the swing stays visible
}

// Fire activates w once using its archetype's strategy.
func (a *Arena) Fire(w *components.WeaponInstance) {
	p := a.Player
	s := EffectiveStats(p, w)
	wc := a.Cfg.Weapons

	switch w.Def.Archetype {
	case catalog.ArchetypeNearest:
		for _, t := range a.NearestN(p.Pos, s.Amount) {
			a.spawnProjectile(w, s, angleTo(p.Pos, t.Pos), components.PathLinear)
		}

	case catalog.ArchetypeFacing:
		start := a.facingAngle() - wc.FacingSpread*float64(s.Amount-1)/2
		for i := 0; i < s.Amount; i++ {
			a.spawnProjectile(w, s, start+float64(i)*wc.FacingSpread, components.PathLinear)
		}

	case catalog.ArchetypeMelee:
		a.melee(w, s)

	case catalog.ArchetypeUpward:
		for i := 0; i < s.Amount; i++ {
			angle := -math.Pi/2 + (a.Rng.Float64()-0.5)*wc.UpwardSpread
			a.spawnProjectile(w, s, angle, components.PathGravity)
		}

	case catalog.ArchetypeSpiral:
		base := a.Elapsed / wc.SpiralPeriod
		for i := 0; i < s.Amount; i++ {
			angle := base + float64(i)*2*math.Pi/float64(s.Amount)
			a.spawnProjectile(w, s, angle, components.PathSpiral)
		}

	case catalog.ArchetypeOrbit:
		a.activateOrbit(w, s)

	case catalog.ArchetypeZoneRandom, catalog.ArchetypeZoneAttract:
		a.spawnZones(w, s)

	default:
		return
	}

	if a.Hooks.Fired != nil {
		a.Hooks.Fired(w.Key())
	}
}

// facingAngle returns 0 when facing right and Pi when facing left.
func (a *Arena) facingAngle() float64 {
	if a.Player.FacingX < 0 {
		return math.Pi
	}
	return 0
}

func (a *Arena) spawnProjectile(w *components.WeaponInstance, s catalog.LevelStats, angle float64, path components.PathKind) {
	p := a.Player
	budget := a.Cfg.Weapons.ProjectileTravel * (1 + s.Duration)
	a.Projectiles = append(a.Projectiles, &components.Projectile{
		Pos:          p.Pos,
		Vel:          fromAngle(angle, s.Speed),
		Path:         path,
		Radius:       6 + 2*s.Area,
		Weapon:       w.Key(),
		Damage:       s.Damage,
		Knockback:    s.Knockback,
		Lifesteal:    s.Lifesteal,
		Explosive:    p.Buffs.Explosive > 0,
		Travel:       budget,
		TravelBudget: budget,
		Pierce:       s.Pierce,
		Bounce:       p.Bounce,
	})
}

// melee hits every live enemy inside the arc once.
func (a *Arena) melee(w *components.WeaponInstance, s catalog.LevelStats) {
	p := a.Player
	wc := a.Cfg.Weapons
	radius := wc.MeleeRadius * s.Area * p.MeleeRange

	aim := a.facingAngle()
	if !w.Def.Directional {
		if t := a.Nearest(p.Pos); t != nil {
			aim = angleTo(p.Pos, t.Pos)
		}
	}
	half := wc.MeleeArc / 2

	strike := Strike{
		Weapon:    w.Key(),
		Damage:    s.Damage,
		Knockback: s.Knockback * a.Cfg.Combat.MeleeKnockbackFactor,
		Lifesteal: s.Lifesteal,
		Origin:    p.Pos,
	}
	for _, e := range a.EnemiesNear(p.Pos, radius) {
		if !components.Overlaps(p.Pos, radius, e.Pos, e.Radius) {
			continue
		}
		if math.Abs(normalizeAngle(angleTo(p.Pos, e.Pos)-aim)) > half {
			continue
		}
		a.HitEnemy(e, strike)
	}

	a.Swing = Swing{Angle: aim, Radius: radius, Arc: wc.MeleeArc, Remaining: max(s.Duration, 0.1)}
}

func (a *Arena) spawnZones(w *components.WeaponInstance, s catalog.LevelStats) {
	p := a.Player
	wc := a.Cfg.Weapons
	radius := wc.ZoneRadius * s.Area

	z := components.Zone{
		Variant:      components.ZoneRandom,
		Weapon:       w.Key(),
		Damage:       s.Damage,
		Remaining:    s.Duration,
		TickInterval: a.Cfg.Zones.TickInterval,
		BaseRadius:   radius,
		MaxRadius:    radius,
		Lifesteal:    s.Lifesteal,
	}
	if w.Def.Archetype == catalog.ArchetypeZoneAttract {
		z.Variant = components.ZoneAttract
		z.Speed = s.Speed
		z.Growth = wc.ZoneAttractGrowth * radius
		z.MaxRadius = wc.ZoneAttractMaxGrowth * radius
	}

	for i := 0; i < s.Amount; i++ {
		offset := fromAngle(a.Rng.Float64()*2*math.Pi, a.Rng.Float64()*wc.ZoneOffset)
		z.HitKey = fmt.Sprintf("%s#%d", z.Weapon, a.Zones.nextID())
		a.Zones.Spawn(r2.Add(p.Pos, offset), radius, z)
	}
}
