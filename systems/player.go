package systems

import (
	"gonum.org/v1/gonum/spatial/r2"
)

// MovePlayer moves the player along dir, a direction with magnitude at
// most 1, then resolves world and obstacle overlap.
func (a *Arena) MovePlayer(dir r2.Vec, dt float64) {
	p := a.Player
	if n := r2.Norm(dir); n > 1 {
		dir = r2.Scale(1/n, dir)
	}
	if dir.X > 0 {
		p.FacingX = 1
	} else if dir.X < 0 {
		p.FacingX = -1
	}

	worldR := a.Cfg.World.Radius
	p.Pos = r2.Add(p.Pos, r2.Scale(p.Speed*a.Frames(dt), dir))
	p.Pos = ClampToWorld(p.Pos, p.Radius, worldR)

	for _, o := range a.Obstacles {
		d := r2.Sub(p.Pos, o.Pos)
		dist := r2.Norm(d)
		overlap := p.Radius + o.Radius - dist
		if overlap <= 0 || dist == 0 {
			continue
		}
		p.Pos = r2.Add(p.Pos, r2.Scale(overlap/dist, d))
		p.Pos = ClampToWorld(p.Pos, p.Radius, worldR)
	}
}

// TickPlayer applies regen and counts down buffs. Slowed enemies are
// released only when the ice buff runs out.
func (a *Arena) TickPlayer(dt float64) {
	p := a.Player
	if p.Regen > 0 && p.HP > 0 {
		p.Heal(p.Regen * dt)
	}

	b := &p.Buffs
	b.Explosive = max(0, b.Explosive-dt)
	b.Speed = max(0, b.Speed-dt)
	if b.Ice > 0 {
		b.Ice -= dt
		if b.Ice <= 0 {
			b.Ice = 0
			a.setSlow(false)
		}
	}
}
