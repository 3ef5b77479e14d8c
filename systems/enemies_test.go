package systems

import (
	"testing"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/ratato/components"
)

func TestChaseMovesTowardPlayerAndRespectsSlow(t *testing.T) {
	a := newTestArena(t)
	e := addTestEnemy(a, r2.Vec{X: 200}, 10)
	slowed := addTestEnemy(a, r2.Vec{X: -200}, 10)
	slowed.Slowed = true

	a.UpdateEnemies(a.Cfg.Derived.FrameTime)

	if !approxEqual(e.Pos.X, 198, 1e-9) {
		t.Errorf("enemy x = %v, want 198", e.Pos.X)
	}
	if !approxEqual(slowed.Pos.X, -199, 1e-9) {
		t.Errorf("slowed x = %v, want -199", slowed.Pos.X)
	}
}

func TestObstacleBlocksChase(t *testing.T) {
	a := newTestArena(t)
	a.Obstacles = append(a.Obstacles, &components.Obstacle{Pos: r2.Vec{X: 100}, Radius: 30})
	e := addTestEnemy(a, r2.Vec{X: 141}, 10)

	a.UpdateEnemies(a.Cfg.Derived.FrameTime)

	if e.Pos.X != 141 || !e.Blocked {
		t.Errorf("enemy at %v blocked %v, want stopped", e.Pos, e.Blocked)
	}
}

func TestDetonatorFuseAndBlast(t *testing.T) {
	a := newTestArena(t)
	dc := a.Cfg.Enemies.Detonator
	kills, blasts := 0, 0
	a.Hooks.Killed = func(*components.Enemy) { kills++ }
	a.Hooks.Detonated = func(r2.Vec, float64) { blasts++ }

	det := NewEnemy(components.KindDetonator, 1, r2.Vec{X: 30}, &a.Cfg.Enemies)
	a.AddEnemy(det)
	bystander := addTestEnemy(a, r2.Vec{X: 60}, 1000)

	dt := a.Cfg.Derived.FrameTime
	a.UpdateEnemies(dt)
	if !det.FuseLit {
		t.Fatal("fuse should light inside trigger range")
	}
	pos := det.Pos
	hp := a.Player.HP

	// Well past the fuse.
	for range int(dc.Fuse/dt) + 30 {
		a.UpdateEnemies(dt)
	}

	if det.Pos != pos {
		t.Error("detonator moved while fusing")
	}
	if det.Alive() || kills != 0 || blasts != 1 {
		t.Errorf("alive %v kills %d blasts %d; want tombstoned without reward", det.Alive(), kills, blasts)
	}
	if want := hp - det.Blast; !approxEqual(a.Player.HP, want, 1e-9) {
		t.Errorf("player HP = %v, want %v", a.Player.HP, want)
	}
	if want := 1000 - det.Blast*dc.Collateral; !approxEqual(bystander.HP, want, 1e-9) {
		t.Errorf("bystander HP = %v, want %v", bystander.HP, want)
	}
}

func TestRangedKeepsDistanceAndFires(t *testing.T) {
	a := newTestArena(t)
	rc := a.Cfg.Enemies.Ranged
	e := NewEnemy(components.KindRanged, 1, r2.Vec{X: rc.PreferredDistance * 0.5}, &a.Cfg.Enemies)
	a.AddEnemy(e)
	start := e.Pos.X

	a.UpdateEnemies(a.Cfg.Derived.FrameTime)
	if e.Pos.X <= start {
		t.Errorf("ranged enemy too close should back off, x %v -> %v", start, e.Pos.X)
	}

	e.FireTimer = 0
	a.UpdateEnemies(a.Cfg.Derived.FrameTime)
	if len(a.EnemyProjectiles) != 1 {
		t.Fatalf("enemy projectiles = %d, want 1", len(a.EnemyProjectiles))
	}
	if a.EnemyProjectiles[0].Vel.X >= 0 {
		t.Error("enemy projectile should head toward the player")
	}
}

func TestBossSlidesAroundObstacle(t *testing.T) {
	a := newTestArena(t)
	a.Obstacles = append(a.Obstacles, &components.Obstacle{Pos: r2.Vec{X: 200}, Radius: 50})
	boss := NewBoss(1, r2.Vec{X: 291, Y: 5}, &a.Cfg.Enemies)
	a.AddEnemy(boss)

	a.UpdateEnemies(a.Cfg.Derived.FrameTime)

	if boss.Pos == (r2.Vec{X: 291, Y: 5}) {
		t.Fatal("boss should sidestep instead of stopping")
	}
	if a.ObstacleHit(boss.Pos, boss.Radius) != nil {
		t.Errorf("boss slid into the obstacle at %v", boss.Pos)
	}
}

func TestContactDamageAndPush(t *testing.T) {
	a := newTestArena(t)
	e := addTestEnemy(a, r2.Vec{X: 20}, 100)
	e.Damage = 12
	hp := a.Player.HP

	a.CollideContact()

	if !approxEqual(a.Player.HP, hp-12, 1e-9) {
		t.Errorf("player HP = %v, want %v", a.Player.HP, hp-12)
	}
	if !approxEqual(e.Pos.X, 20+a.Cfg.Player.ContactPush, 1e-9) {
		t.Errorf("enemy x = %v after push", e.Pos.X)
	}
}

func TestEnemyProjectileHitsPlayerOnce(t *testing.T) {
	a := newTestArena(t)
	a.EnemyProjectiles = append(a.EnemyProjectiles, &components.EnemyProjectile{Pos: r2.Vec{X: 5}, Radius: 5, Damage: 7})
	hp := a.Player.HP

	a.CollideEnemyProjectiles()
	a.CollideEnemyProjectiles()

	if !approxEqual(a.Player.HP, hp-7, 1e-9) {
		t.Errorf("player HP = %v, want %v", a.Player.HP, hp-7)
	}
}

func TestMovePlayerFacingAndObstaclePushOut(t *testing.T) {
	a := newTestArena(t)
	p := a.Player
	a.MovePlayer(r2.Vec{X: -1}, a.Cfg.Derived.FrameTime)
	if p.FacingX != -1 {
		t.Errorf("facing = %v, want -1", p.FacingX)
	}
	a.MovePlayer(r2.Vec{Y: 1}, a.Cfg.Derived.FrameTime)
	if p.FacingX != -1 {
		t.Error("vertical movement must keep horizontal facing")
	}

	a.Obstacles = append(a.Obstacles, &components.Obstacle{Pos: r2.Vec{X: 40}, Radius: 30})
	p.Pos = r2.Vec{X: 0}
	a.MovePlayer(r2.Vec{X: 1}, a.Cfg.Derived.FrameTime)
	if d := r2.Norm(r2.Sub(p.Pos, r2.Vec{X: 40})); d < p.Radius+30-1e-9 {
		t.Errorf("player overlaps obstacle, distance %v", d)
	}
}
