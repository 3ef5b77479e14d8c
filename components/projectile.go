package components

import "gonum.org/v1/gonum/spatial/r2"

// PathKind selects how a projectile's velocity evolves.
type PathKind uint8

const (
	PathLinear  PathKind = iota
	PathGravity          // Velocity gains downward acceleration
	PathSpiral           // Velocity curls at a constant angular rate
)

// Projectile is a player-origin projectile.
type Projectile struct {
	Pos    r2.Vec
	Vel    r2.Vec // Units per reference frame
	Path   PathKind
	Radius float64

	Weapon    string
	Damage    float64
	Knockback float64
	Lifesteal float64
	Explosive bool

	Travel       float64 // Distance left before expiry
	TravelBudget float64 // Restored on bounce
	Pierce       int
	Bounce       int

	hit  map[uint64]struct{}
	Dead bool
}

// HasHit reports whether the projectile already damaged e.
func (p *Projectile) HasHit(e *Enemy) bool {
	_, ok := p.hit[e.Seq]
	return ok
}

// MarkHit records e as damaged by this projectile.
func (p *Projectile) MarkHit(e *Enemy) {
	if p.hit == nil {
		p.hit = make(map[uint64]struct{}, 2)
	}
	p.hit[e.Seq] = struct{}{}
}

// HitCount returns the number of distinct enemies damaged.
func (p *Projectile) HitCount() int {
	return len(p.hit)
}

// EnemyProjectile is fired by ranged enemies and only damages the player.
type EnemyProjectile struct {
	Pos    r2.Vec
	Vel    r2.Vec
	Radius float64
	Damage float64
	Dead   bool
}
