package systems

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/ratato/components"
)

// SafePlacement finds a random point for a circle of radius that is away
// from the player and clear of obstacles. It falls back to the world center.
func (a *Arena) SafePlacement(radius float64) r2.Vec {
	sp := a.Cfg.World.SafePlacement
	minPlayer := a.Cfg.World.ViewportRadius / 2

	for range sp.Attempts {
		pos := fromAngle(a.Rng.Float64()*2*math.Pi, a.Rng.Float64()*(a.Cfg.World.Radius-radius))
		if r2.Norm(r2.Sub(pos, a.Player.Pos)) <= minPlayer {
			continue
		}
		if a.ObstacleHit(pos, radius+sp.ObstacleMargin) == nil {
			return pos
		}
	}
	return r2.Vec{}
}

// PlaceObstacles scatters the configured obstacles.
func (a *Arena) PlaceObstacles() {
	oc := a.Cfg.World.Obstacles
	for range oc.Count {
		r := oc.MinRadius + a.Rng.Float64()*(oc.MaxRadius-oc.MinRadius)
		a.Obstacles = append(a.Obstacles, &components.Obstacle{
			Pos:    a.SafePlacement(r + oc.Clearance),
			Radius: r,
		})
	}
}

// enemySpawnPoint picks a point just outside the viewport on a random
// bearing. After the attempts run out the last candidate is used.
func (a *Arena) enemySpawnPoint(radius float64) r2.Vec {
	ec := a.Cfg.Enemies
	dist := a.Cfg.World.ViewportRadius + ec.SpawnMargin
	limit := a.Cfg.World.Radius

	var pos r2.Vec
	for range max(1, ec.SpawnAttempts) {
		pos = r2.Add(a.Player.Pos, fromAngle(a.Rng.Float64()*2*math.Pi, dist))
		pos = ClampToWorld(pos, ec.WorldMargin, limit)
		if a.ObstacleHit(pos, radius) == nil {
			break
		}
	}
	return pos
}

// bossSpawnPoint returns a random point on the world's outer ring.
func (a *Arena) bossSpawnPoint() r2.Vec {
	return fromAngle(a.Rng.Float64()*2*math.Pi, a.Cfg.World.Radius-a.Cfg.Enemies.Boss.Margin)
}
