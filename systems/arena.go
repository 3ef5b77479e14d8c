package systems

import (
	"math/rand"

	"github.com/mlange-42/ark/ecs"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/ratato/components"
	"github.com/pthm-cable/ratato/config"
)

// Hooks receive combat outcomes. Nil hooks are skipped.
type Hooks struct {
	// Killed fires exactly once per enemy, on the dead false->true transition.
	Killed func(e *components.Enemy)
	// EnemyHit fires for every applied hit on an enemy.
	EnemyHit func(e *components.Enemy, applied float64, weapon string)
	// PlayerHit fires for every resolved hit on the player, evaded or not.
	PlayerHit func(src DamageSource, res DamageResult)
	// Detonated fires when a detonator explodes.
	Detonated func(pos r2.Vec, radius float64)
	// Fired fires once per weapon activation.
	Fired func(weapon string)
}

// Arena is the mutable per-session state the systems operate on.
// The game owns it; systems mutate it in place within a tick.
type Arena struct {
	Cfg *config.Config
	Rng *rand.Rand

	Player           *components.Player
	Enemies          []*components.Enemy // Spawn order
	Obstacles        []*components.Obstacle
	Projectiles      []*components.Projectile
	EnemyProjectiles []*components.EnemyProjectile
	Grid             *Grid[components.Collider]
	Zones            *ZoneSystem
	Pickups          *PickupSystem
	Swing            Swing // Most recent melee activation

	Elapsed float64 // Session seconds
	Hooks   Hooks

	nextSeq uint64

	// Scratch buffers reused across calls.
	near    []*components.Enemy
	nearby  []components.Collider
	ranked  []rankedEnemy
	targets []*components.Enemy
}

// NewArena creates an empty arena for a player. Zones and pickups are
// stored in world.
func NewArena(cfg *config.Config, rng *rand.Rand, player *components.Player, world *ecs.World) *Arena {
	return &Arena{
		Cfg:     cfg,
		Rng:     rng,
		Player:  player,
		Grid:    NewGrid[components.Collider](cfg.World.Radius, cfg.World.GridCellSize),
		Zones:   NewZoneSystem(world),
		Pickups: NewPickupSystem(world),
	}
}

// AddEnemy appends e in spawn order and assigns its sequence number.
// New enemies inherit the slow flag while the ice buff runs.
func (a *Arena) AddEnemy(e *components.Enemy) {
	a.nextSeq++
	e.Seq = a.nextSeq
	e.Slowed = a.Player.Buffs.Ice > 0
	a.Enemies = append(a.Enemies, e)
}

// LiveEnemies returns the number of enemies not yet tombstoned.
func (a *Arena) LiveEnemies() int {
	n := 0
	for _, e := range a.Enemies {
		if e.Alive() {
			n++
		}
	}
	return n
}

// RebuildGrid clears the index and inserts obstacles and live enemies.
func (a *Arena) RebuildGrid() {
	a.Grid.Clear()
	for _, o := range a.Obstacles {
		a.Grid.Insert(o)
	}
	for _, e := range a.Enemies {
		if e.Alive() {
			a.Grid.Insert(e)
		}
	}
}

// EnemiesNear returns live enemies sharing a grid cell with the circle.
// The result is reused by the next call.
func (a *Arena) EnemiesNear(pos r2.Vec, radius float64) []*components.Enemy {
	a.nearby = a.Grid.RetrieveInto(a.nearby[:0], pos, radius)
	a.near = a.near[:0]
	for _, c := range a.nearby {
		if e, ok := c.(*components.Enemy); ok && e.Alive() {
			a.near = append(a.near, e)
		}
	}
	sortBySeq(a.near)
	return a.near
}

// ObstacleHit returns the first obstacle overlapping the circle, if any.
func (a *Arena) ObstacleHit(pos r2.Vec, radius float64) *components.Obstacle {
	for _, o := range a.Obstacles {
		if components.Overlaps(pos, radius, o.Pos, o.Radius) {
			return o
		}
	}
	return nil
}

// Purge drops tombstoned enemies and dead projectiles, compacting in place.
func (a *Arena) Purge() {
	alive := 0
	for _, e := range a.Enemies {
		if e.Alive() {
			a.Enemies[alive] = e
			alive++
		}
	}
	clear(a.Enemies[alive:])
	a.Enemies = a.Enemies[:alive]

	alive = 0
	for _, p := range a.Projectiles {
		if !p.Dead {
			a.Projectiles[alive] = p
			alive++
		}
	}
	clear(a.Projectiles[alive:])
	a.Projectiles = a.Projectiles[:alive]

	alive = 0
	for _, p := range a.EnemyProjectiles {
		if !p.Dead {
			a.EnemyProjectiles[alive] = p
			alive++
		}
	}
	clear(a.EnemyProjectiles[alive:])
	a.EnemyProjectiles = a.EnemyProjectiles[:alive]
}

// Frames converts seconds to reference frames.
func (a *Arena) Frames(dt float64) float64 {
	return dt / a.Cfg.Derived.FrameTime
}
