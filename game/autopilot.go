package game

import (
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/ratato/components"
)

// Autopilot steers the player without input: it flees the weighted
// centroid of nearby enemies, drifts toward gems, and always takes the
// first offer.
type Autopilot struct {
	Threat     float64 // Enemies inside this radius repel
	GemWeight  float64
	EdgeWeight float64
}

// NewAutopilot returns a policy scaled to the viewport.
func NewAutopilot(g *Game) *Autopilot {
	return &Autopilot{
		Threat:     g.cfg.World.ViewportRadius * 0.6,
		GemWeight:  0.35,
		EdgeWeight: 1.5,
	}
}

// Drive applies one frame of autopilot input.
func (ap *Autopilot) Drive(g *Game) {
	if g.AwaitingSelection() {
		g.Select(0)
		return
	}
	g.SetMoveDirection(ap.Steer(g))
}

// Steer returns the movement direction for the current state.
func (ap *Autopilot) Steer(g *Game) r2.Vec {
	a := g.arena
	pos := a.Player.Pos

	var flee r2.Vec
	for _, e := range a.Enemies {
		if !e.Alive() {
			continue
		}
		d := r2.Sub(pos, e.Pos)
		dist := r2.Norm(d)
		if dist >= ap.Threat || dist == 0 {
			continue
		}
		// Closer and harder-hitting enemies weigh more.
		w := (ap.Threat - dist) / ap.Threat * (1 + e.Damage/10)
		flee = r2.Add(flee, r2.Scale(w/dist, d))
	}

	var toGem r2.Vec
	best := -1.0
	a.Pickups.Each(func(b *components.Body, pk *components.Pickup) {
		if pk.Kind == components.PickupBomb {
			return
		}
		dist := r2.Norm(r2.Sub(b.Pos, pos))
		if best < 0 || dist < best {
			best = dist
			toGem = r2.Sub(b.Pos, pos)
		}
	})

	dir := flee
	if best > 0 {
		dir = r2.Add(dir, r2.Scale(ap.GemWeight/best, toGem))
	}

	// Keep away from the rim where enemies corner the player.
	if r := r2.Norm(pos); r > g.cfg.World.Radius*0.7 {
		dir = r2.Add(dir, r2.Scale(-ap.EdgeWeight/r, pos))
	}

	if r2.Norm(dir) < 1e-9 {
		return r2.Vec{}
	}
	return r2.Unit(dir)
}
