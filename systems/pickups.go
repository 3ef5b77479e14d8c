package systems

import (
	"github.com/mlange-42/ark/ecs"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/ratato/components"
)

// Collected is a pickup consumed by the player this tick.
type Collected struct {
	Kind  components.PickupKind
	Value float64
	Pos   r2.Vec
}

// PickupSystem stores collectibles as Body+Pickup entities.
type PickupSystem struct {
	world  *ecs.World
	mapper *ecs.Map2[components.Body, components.Pickup]
	filter *ecs.Filter2[components.Body, components.Pickup]

	toRemove  []ecs.Entity
	collected []Collected
}

// NewPickupSystem creates a pickup system backed by world.
func NewPickupSystem(world *ecs.World) *PickupSystem {
	return &PickupSystem{
		world:  world,
		mapper: ecs.NewMap2[components.Body, components.Pickup](world),
		filter: ecs.NewFilter2[components.Body, components.Pickup](world),
	}
}

// Spawn drops a pickup at pos.
func (ps *PickupSystem) Spawn(kind components.PickupKind, pos r2.Vec, radius, value float64) ecs.Entity {
	body := components.Body{Pos: pos, Radius: radius}
	pk := components.Pickup{Kind: kind, Value: value}
	return ps.mapper.NewEntity(&body, &pk)
}

// Count returns the number of pickups on the ground.
func (ps *PickupSystem) Count() int {
	n := 0
	query := ps.filter.Query()
	for query.Next() {
		n++
	}
	return n
}

// Each calls fn for every pickup on the ground.
func (ps *PickupSystem) Each(fn func(b *components.Body, pk *components.Pickup)) {
	query := ps.filter.Query()
	for query.Next() {
		b, pk := query.Get()
		fn(b, pk)
	}
}

// Update pulls gems inside the magnet radius toward the player and
// collects every pickup touching the player. Effects are applied by the
// caller; the returned slice is reused by the next call.
func (ps *PickupSystem) Update(a *Arena, dt float64) []Collected {
	ps.toRemove = ps.toRemove[:0]
	ps.collected = ps.collected[:0]

	p := a.Player
	pull := a.Cfg.Drops.GemPull * a.Frames(dt)
	magnetSq := p.Magnet * p.Magnet

	query := ps.filter.Query()
	for query.Next() {
		b, pk := query.Get()

		if pk.Kind == components.PickupGem {
			to := r2.Sub(p.Pos, b.Pos)
			if dSq := to.X*to.X + to.Y*to.Y; dSq < magnetSq && dSq > 0 {
				d := r2.Norm(to)
				b.Pos = r2.Add(b.Pos, r2.Scale(min(pull, d)/d, to))
			}
		}

		if components.Overlaps(p.Pos, p.Radius, b.Pos, b.Radius) {
			ps.collected = append(ps.collected, Collected{Kind: pk.Kind, Value: pk.Value, Pos: b.Pos})
			ps.toRemove = append(ps.toRemove, query.Entity())
		}
	}

	for _, e := range ps.toRemove {
		ps.world.RemoveEntity(e)
	}
	return ps.collected
}
