package systems

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/ratato/components"
	"github.com/pthm-cable/ratato/config"
)

// kindProfile holds per-kind multipliers applied on top of the factor curves.
type kindProfile struct {
	radius   float64
	hp       float64
	damage   float64
	xp       float64
	speed    func(f float64) float64
	noDamage bool // Contact damage is zero
}

var kindProfiles = [...]kindProfile{
	components.KindDefault: {radius: 10, hp: 1, damage: 1, xp: 1,
		speed: func(f float64) float64 { return 2.0 + (f-1)*0.3 }},
	components.KindFast: {radius: 8, hp: 0.4, damage: 0.6, xp: 1.5,
		speed: func(float64) float64 { return 4.5 }},
	components.KindTank: {radius: 20, hp: 3.5, damage: 2.5, xp: 3,
		speed: func(f float64) float64 { return 0.8 + (f-1)*0.05 }},
	components.KindDetonator: {radius: 15, hp: 0.7, damage: 1, xp: 2, noDamage: true,
		speed: func(f float64) float64 { return 3.5 + (f-1)*0.1 }},
	components.KindRanged: {radius: 12, hp: 0.8, damage: 0.8, xp: 2,
		speed: func(float64) float64 { return 2.0 }},
}

const bossRadius = 40

// NewEnemy builds a regular enemy of kind at difficulty factor.
// Bosses are built with NewBoss.
func NewEnemy(kind components.Kind, factor int, pos r2.Vec, cfg *config.EnemiesConfig) *components.Enemy {
	if int(kind) >= len(kindProfiles) {
		kind = components.KindDefault
	}
	prof := kindProfiles[kind]
	f := float64(factor)

	hp := math.Floor(EnemyHP(factor) * prof.hp)
	hp = max(1, math.Floor(hp*cfg.HPScale))

	e := &components.Enemy{
		Kind:   kind,
		Pos:    pos,
		Radius: prof.radius,
		HP:     hp,
		MaxHP:  hp,
		Damage: math.Floor((5 + (f-1)*7) * prof.damage),
		Speed:  prof.speed(f),
		XP:     math.Floor((5 + (f-1)*3) * prof.xp),
	}
	if prof.noDamage {
		e.Damage = 0
	}

	switch kind {
	case components.KindDetonator:
		e.Blast = cfg.Detonator.DamageBase + (f-1)*cfg.Detonator.DamagePerFactor
	case components.KindRanged:
		e.FireTimer = cfg.Ranged.FireInterval
	}
	return e
}

// NewBoss builds a boss scaled by mult.
func NewBoss(mult float64, pos r2.Vec, cfg *config.EnemiesConfig) *components.Enemy {
	hp := max(1, math.Floor(cfg.Boss.BaseHP*mult*cfg.HPScale))
	return &components.Enemy{
		Kind:   components.KindBoss,
		Pos:    pos,
		Radius: bossRadius,
		HP:     hp,
		MaxHP:  hp,
		Damage: math.Floor(10*mult) * 0.5,
		Speed:  1.5,
		XP:     math.Floor(cfg.Boss.BaseXP * mult),
	}
}

// UpdateEnemies advances every live enemy's behavior.
func (a *Arena) UpdateEnemies(dt float64) {
	frames := a.Frames(dt)
	slow := a.Cfg.Combat.SlowFactor

	// Detonations append nothing, so ranging over the slice is safe.
	for _, e := range a.Enemies {
		if !e.Alive() {
			continue
		}
		e.TickCooldowns(dt)
		e.Blocked = false

		step := e.Speed * frames
		if e.Slowed {
			step *= slow
		}

		switch e.Kind {
		case components.KindDetonator:
			a.updateDetonator(e, step, dt)
		case components.KindRanged:
			a.updateRanged(e, step, dt)
		case components.KindBoss:
			a.updateBoss(e, step)
		default:
			a.advance(e, r2.Sub(a.Player.Pos, e.Pos), step)
		}
	}
}

// advance moves e by step along dir unless the next position overlaps an
// obstacle, in which case e stays put and the obstacle is returned.
func (a *Arena) advance(e *components.Enemy, dir r2.Vec, step float64) *components.Obstacle {
	d := r2.Norm(dir)
	if d == 0 || step <= 0 {
		return nil
	}
	next := r2.Add(e.Pos, r2.Scale(step/d, dir))
	if o := a.ObstacleHit(next, e.Radius); o != nil {
		e.Blocked = true
		return o
	}
	e.Pos = ClampToWorld(next, e.Radius, a.Cfg.World.Radius)
	return nil
}

func (a *Arena) updateDetonator(e *components.Enemy, step, dt float64) {
	if e.FuseLit {
		e.Fuse -= dt
		if e.Fuse <= 0 {
			a.detonate(e)
		}
		return
	}

	dc := a.Cfg.Enemies.Detonator
	to := r2.Sub(a.Player.Pos, e.Pos)
	if r2.Norm(to) <= dc.TriggerRange+a.Player.Radius {
		a.lightFuse(e)
		return
	}
	if a.advance(e, to, step) != nil {
		a.lightFuse(e)
	}
}

func (a *Arena) lightFuse(e *components.Enemy) {
	e.FuseLit = true
	e.Fuse = a.Cfg.Enemies.Detonator.Fuse
}

// detonate damages the player and nearby enemies, then removes e without
// granting a kill.
func (a *Arena) detonate(e *components.Enemy) {
	dc := a.Cfg.Enemies.Detonator
	if components.Overlaps(e.Pos, dc.Radius, a.Player.Pos, a.Player.Radius) {
		a.DamagePlayer(e.Blast, SourceDetonation)
	}
	a.Tombstone(e)
	a.Explode(e.Pos, dc.Radius, e.Blast*dc.Collateral, "detonation", e)
	if a.Hooks.Detonated != nil {
		a.Hooks.Detonated(e.Pos, dc.Radius)
	}
}

func (a *Arena) updateRanged(e *components.Enemy, step, dt float64) {
	rc := a.Cfg.Enemies.Ranged
	to := r2.Sub(a.Player.Pos, e.Pos)
	dist := r2.Norm(to)

	switch {
	case dist > rc.PreferredDistance:
		a.advance(e, to, step)
	case dist < 0.8*rc.PreferredDistance:
		a.advance(e, r2.Scale(-1, to), step)
	}

	e.FireTimer -= dt
	if e.FireTimer <= 0 && dist <= rc.FireRange && dist > 0 {
		a.EnemyProjectiles = append(a.EnemyProjectiles, &components.EnemyProjectile{
			Pos:    e.Pos,
			Vel:    r2.Scale(rc.ProjectileSpeed/dist, to),
			Radius: rc.ProjectileRadius,
			Damage: e.Damage,
		})
		e.FireTimer = rc.FireInterval
	}
}

// updateBoss chases the player and slides along obstacles at half speed.
func (a *Arena) updateBoss(e *components.Enemy, step float64) {
	to := r2.Sub(a.Player.Pos, e.Pos)
	o := a.advance(e, to, step)
	if o == nil {
		return
	}
	away := r2.Sub(e.Pos, o.Pos)
	tangent := r2.Vec{X: -away.Y, Y: away.X}
	if r2.Dot(tangent, to) < 0 {
		tangent = r2.Scale(-1, tangent)
	}
	if n := r2.Norm(tangent); n > 0 {
		next := r2.Add(e.Pos, r2.Scale(step*0.5/n, tangent))
		e.Pos = ClampToWorld(next, e.Radius, a.Cfg.World.Radius)
	}
}

// CollideContact applies contact damage from overlapping enemies and pushes
// them back.
func (a *Arena) CollideContact() {
	p := a.Player
	push := a.Cfg.Player.ContactPush
	for _, e := range a.Enemies {
		if p.HP <= 0 {
			return
		}
		if !e.Alive() || !components.Overlaps(p.Pos, p.Radius, e.Pos, e.Radius) {
			continue
		}
		if e.Damage > 0 {
			a.DamagePlayer(e.Damage, SourceContact)
		}
		e.Pos = ClampToWorld(pushAway(e.Pos, p.Pos, push), e.Radius, a.Cfg.World.Radius)
	}
}

// CollideEnemyProjectiles damages the player with every touching enemy projectile.
func (a *Arena) CollideEnemyProjectiles() {
	p := a.Player
	for _, ep := range a.EnemyProjectiles {
		if ep.Dead || !components.Overlaps(p.Pos, p.Radius, ep.Pos, ep.Radius) {
			continue
		}
		ep.Dead = true
		a.DamagePlayer(ep.Damage, SourceEnemyProjectile)
	}
}
