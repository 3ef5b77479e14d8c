package systems

import (
	"cmp"
	"slices"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/ratato/components"
)

type rankedEnemy struct {
	e      *components.Enemy
	distSq float64
}

// NearestN returns up to n live enemies nearest to from. Equal distances
// keep spawn order. The result is reused by the next call.
func (a *Arena) NearestN(from r2.Vec, n int) []*components.Enemy {
	a.targets = a.targets[:0]
	if n <= 0 {
		return a.targets
	}

	a.ranked = a.ranked[:0]
	for _, e := range a.Enemies {
		if e.Alive() {
			a.ranked = append(a.ranked, rankedEnemy{e: e, distSq: distanceSq(from, e.Pos)})
		}
	}
	slices.SortStableFunc(a.ranked, func(x, y rankedEnemy) int {
		return cmp.Compare(x.distSq, y.distSq)
	})

	for i := 0; i < len(a.ranked) && i < n; i++ {
		a.targets = append(a.targets, a.ranked[i].e)
	}
	return a.targets
}

// Nearest returns the nearest live enemy, or nil when there is none.
func (a *Arena) Nearest(from r2.Vec) *components.Enemy {
	var best *components.Enemy
	bestSq := 0.0
	for _, e := range a.Enemies {
		if !e.Alive() {
			continue
		}
		d := distanceSq(from, e.Pos)
		if best == nil || d < bestSq {
			best, bestSq = e, d
		}
	}
	return best
}

// nearestUnhit returns the nearest live enemy p has not damaged yet.
func (a *Arena) nearestUnhit(p *components.Projectile) *components.Enemy {
	var best *components.Enemy
	bestSq := 0.0
	for _, e := range a.Enemies {
		if !e.Alive() || p.HasHit(e) {
			continue
		}
		d := distanceSq(p.Pos, e.Pos)
		if best == nil || d < bestSq {
			best, bestSq = e, d
		}
	}
	return best
}

func sortBySeq(list []*components.Enemy) {
	slices.SortFunc(list, func(x, y *components.Enemy) int {
		return cmp.Compare(x.Seq, y.Seq)
	})
}
