// Package components defines the entity records and ECS components for the simulation.
package components

import "gonum.org/v1/gonum/spatial/r2"

// Kind tags an enemy variant. Behavior dispatches on it.
type Kind uint8

const (
	KindDefault Kind = iota
	KindFast
	KindTank
	KindDetonator
	KindRanged
	KindBoss
)

// Collider is anything with a circular footprint.
type Collider interface {
	Bounds() (pos r2.Vec, radius float64)
}

// Enemy is a hostile unit. Enemies live in an ordered slice on the game;
// Seq is the spawn sequence number used for stable ordering.
type Enemy struct {
	Seq    uint64
	Kind   Kind
	Pos    r2.Vec
	Radius float64

	HP     float64
	MaxHP  float64
	Damage float64 // Contact damage
	Speed  float64 // Units per reference frame
	XP     float64

	Slowed bool
	Dead   bool // Tombstone; set exactly once

	// Per-source re-hit timers in seconds, keyed by hit key.
	HitCooldowns map[string]float64

	FuseLit   bool
	Fuse      float64 // Seconds remaining once lit
	Blast     float64 // Detonation damage
	FireTimer float64 // Ranged only
	Blocked   bool    // Movement blocked by an obstacle this tick
}

// Bounds implements Collider.
func (e *Enemy) Bounds() (r2.Vec, float64) {
	return e.Pos, e.Radius
}

// Alive reports whether the enemy can still be targeted and damaged.
func (e *Enemy) Alive() bool {
	return !e.Dead
}

// CanHit reports whether the hit key is off cooldown for this enemy.
func (e *Enemy) CanHit(key string) bool {
	return e.HitCooldowns[key] <= 0
}

// ArmHit starts a re-hit cooldown for key.
func (e *Enemy) ArmHit(key string, seconds float64) {
	if e.HitCooldowns == nil {
		e.HitCooldowns = make(map[string]float64, 2)
	}
	e.HitCooldowns[key] = seconds
}

// TickCooldowns decrements every hit cooldown by dt and drops expired ones.
func (e *Enemy) TickCooldowns(dt float64) {
	for k, v := range e.HitCooldowns {
		v -= dt
		if v <= 0 {
			delete(e.HitCooldowns, k)
			continue
		}
		e.HitCooldowns[k] = v
	}
}

// Obstacle is a static circular blocker. It never changes after creation.
type Obstacle struct {
	Pos    r2.Vec
	Radius float64
}

// Bounds implements Collider.
func (o *Obstacle) Bounds() (r2.Vec, float64) {
	return o.Pos, o.Radius
}

// Overlaps reports whether two circles intersect.
func Overlaps(a r2.Vec, ar float64, b r2.Vec, br float64) bool {
	d := r2.Sub(a, b)
	rr := ar + br
	return d.X*d.X+d.Y*d.Y < rr*rr
}
