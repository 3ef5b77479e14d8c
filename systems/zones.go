package systems

import (
	"github.com/mlange-42/ark/ecs"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/ratato/components"
)

// ZoneSystem stores ground zones as Body+Zone entities.
type ZoneSystem struct {
	world  *ecs.World
	mapper *ecs.Map2[components.Body, components.Zone]
	filter *ecs.Filter2[components.Body, components.Zone]

	seq     uint64
	expired []ecs.Entity
	active  []zoneSnapshot
}

// zoneSnapshot is a copy taken so damage can run with the query closed.
type zoneSnapshot struct {
	body components.Body
	zone components.Zone
}

// NewZoneSystem creates a zone system backed by world.
func NewZoneSystem(world *ecs.World) *ZoneSystem {
	return &ZoneSystem{
		world:  world,
		mapper: ecs.NewMap2[components.Body, components.Zone](world),
		filter: ecs.NewFilter2[components.Body, components.Zone](world),
	}
}

func (zs *ZoneSystem) nextID() uint64 {
	zs.seq++
	return zs.seq
}

// Spawn creates a zone entity.
func (zs *ZoneSystem) Spawn(pos r2.Vec, radius float64, z components.Zone) ecs.Entity {
	body := components.Body{Pos: pos, Radius: radius}
	return zs.mapper.NewEntity(&body, &z)
}

// Count returns the number of live zones.
func (zs *ZoneSystem) Count() int {
	n := 0
	query := zs.filter.Query()
	for query.Next() {
		n++
	}
	return n
}

// Each calls fn for every live zone.
func (zs *ZoneSystem) Each(fn func(b *components.Body, z *components.Zone)) {
	query := zs.filter.Query()
	for query.Next() {
		b, z := query.Get()
		fn(b, z)
	}
}

// Update ages, moves and grows zones, removes expired ones, then damages
// enemies inside the rest. Each zone re-hits an enemy every TickInterval.
func (zs *ZoneSystem) Update(a *Arena, dt float64) {
	zs.expired = zs.expired[:0]
	zs.active = zs.active[:0]
	frames := a.Frames(dt)

	query := zs.filter.Query()
	for query.Next() {
		b, z := query.Get()
		z.Remaining -= dt
		if z.Remaining <= 0 {
			zs.expired = append(zs.expired, query.Entity())
			continue
		}
		if z.Variant == components.ZoneAttract {
			to := r2.Sub(a.Player.Pos, b.Pos)
			if d := r2.Norm(to); d > 0 {
				step := min(z.Speed*frames, d)
				b.Pos = r2.Add(b.Pos, r2.Scale(step/d, to))
			}
			b.Radius = min(z.MaxRadius, b.Radius+z.Growth*dt)
		}
		zs.active = append(zs.active, zoneSnapshot{body: *b, zone: *z})
	}

	// Structural changes only after the query is exhausted.
	for _, e := range zs.expired {
		zs.world.RemoveEntity(e)
	}

	for i := range zs.active {
		s := &zs.active[i]
		strike := Strike{
			Weapon:    s.zone.Weapon,
			Damage:    s.zone.Damage,
			Lifesteal: s.zone.Lifesteal,
			Origin:    s.body.Pos,
		}
		for _, e := range a.EnemiesNear(s.body.Pos, s.body.Radius) {
			if !e.CanHit(s.zone.HitKey) || !components.Overlaps(s.body.Pos, s.body.Radius, e.Pos, e.Radius) {
				continue
			}
			a.HitEnemy(e, strike)
			e.ArmHit(s.zone.HitKey, s.zone.TickInterval)
		}
	}
}
