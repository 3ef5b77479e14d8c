package systems

import (
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/ratato/components"
)

// DamageSource identifies what hit the player.
type DamageSource uint8

const (
	SourceContact DamageSource = iota
	SourceEnemyProjectile
	SourceDetonation
)

var damageSourceNames = [...]string{
	SourceContact:         "contact",
	SourceEnemyProjectile: "enemy_projectile",
	SourceDetonation:      "detonation",
}

// String returns the config name used for evasion scaling.
func (s DamageSource) String() string {
	if int(s) < len(damageSourceNames) {
		return damageSourceNames[s]
	}
	return "unknown"
}

// Defense is the defender side of the damage pipeline.
// Enemies defend with the zero value.
type Defense struct {
	Evasion float64
	Shield  float64
	Armor   float64
}

// DamageResult is the outcome of one resolved hit.
type DamageResult struct {
	Raw        float64
	Absorbed   float64 // Taken by shield
	Applied    float64 // Taken by HP
	ShieldLeft float64
	Evaded     bool
}

// ResolveDamage runs the evasion, shield, armor, floor pipeline.
// roll is a uniform sample in [0, 1); the hit is evaded when roll < Evasion.
func ResolveDamage(raw float64, d Defense, roll float64) DamageResult {
	res := DamageResult{Raw: raw, ShieldLeft: d.Shield}
	if raw <= 0 {
		return res
	}
	if roll < d.Evasion {
		res.Evaded = true
		return res
	}

	remaining := raw
	if d.Shield > 0 {
		res.Absorbed = min(d.Shield, remaining)
		res.ShieldLeft = d.Shield - res.Absorbed
		remaining -= res.Absorbed
	}
	res.Applied = max(1, remaining-d.Armor)
	return res
}

// DamagePlayer resolves a hit on the player from src.
func (a *Arena) DamagePlayer(raw float64, src DamageSource) DamageResult {
	p := a.Player
	def := Defense{
		Evasion: p.Evasion * a.Cfg.EvasionScaleFor(src.String()),
		Shield:  p.Shield,
		Armor:   p.Armor,
	}
	res := ResolveDamage(raw, def, a.Rng.Float64())
	p.Shield = res.ShieldLeft
	p.HP = max(0, p.HP-res.Applied)
	if a.Hooks.PlayerHit != nil {
		a.Hooks.PlayerHit(src, res)
	}
	return res
}

// Strike is one player-origin hit on an enemy.
type Strike struct {
	Weapon    string
	Damage    float64
	Knockback float64
	Lifesteal float64 // Weapon lifesteal; the player's own fraction is added
	Origin    r2.Vec  // Knockback pushes away from here
}

// HitEnemy applies s to e and returns the damage taken.
// Dead enemies are ignored.
func (a *Arena) HitEnemy(e *components.Enemy, s Strike) float64 {
	if !e.Alive() {
		return 0
	}
	res := ResolveDamage(s.Damage, Defense{}, 0)
	e.HP = max(0, e.HP-res.Applied)
	a.Lifesteal(s.Lifesteal, res.Applied)

	if s.Knockback > 0 {
		e.Pos = ClampToWorld(pushAway(e.Pos, s.Origin, s.Knockback), e.Radius, a.Cfg.World.Radius)
	}
	if a.Hooks.EnemyHit != nil {
		a.Hooks.EnemyHit(e, res.Applied, s.Weapon)
	}
	if e.HP <= 0 {
		a.Kill(e)
	}
	return res.Applied
}

// Lifesteal heals the player by (player + weapon lifesteal) of applied damage.
func (a *Arena) Lifesteal(weapon, applied float64) {
	frac := a.Player.Lifesteal + weapon
	if frac > 0 && applied > 0 {
		a.Player.Heal(frac * applied)
	}
}

// Kill tombstones e and grants the kill through Hooks.Killed.
// It reports whether this call flipped the dead flag.
func (a *Arena) Kill(e *components.Enemy) bool {
	if e.Dead {
		return false
	}
	e.Dead = true
	if a.Hooks.Killed != nil {
		a.Hooks.Killed(e)
	}
	return true
}

// Tombstone removes e without a kill reward.
func (a *Arena) Tombstone(e *components.Enemy) {
	e.Dead = true
}

// Explode deals damage to every live enemy within radius of center except skip.
func (a *Arena) Explode(center r2.Vec, radius, damage float64, weapon string, skip *components.Enemy) {
	for _, e := range a.Enemies {
		if e == skip || !e.Alive() {
			continue
		}
		if components.Overlaps(center, radius, e.Pos, e.Radius) {
			a.HitEnemy(e, Strike{Weapon: weapon, Damage: damage, Origin: center})
		}
	}
}

// Bomb damages every live enemy and pushes it away from the world center.
// Bosses take a reduced share.
func (a *Arena) Bomb() {
	d := a.Cfg.Drops
	for _, e := range a.Enemies {
		if !e.Alive() {
			continue
		}
		dmg := d.BombDamage
		if e.Kind == components.KindBoss {
			dmg *= d.BombBossFraction
		}
		a.HitEnemy(e, Strike{Weapon: "bomb", Damage: dmg, Knockback: d.BombPush})
	}
}

// ApplyIce starts the ice buff and slows every live enemy.
func (a *Arena) ApplyIce() {
	a.Player.Buffs.Ice = a.Cfg.Buffs.Ice
	a.setSlow(true)
}

func (a *Arena) setSlow(on bool) {
	for _, e := range a.Enemies {
		e.Slowed = on
	}
}
