package systems

import (
	"math"
	"math/rand"
	"testing"

	"github.com/mlange-42/ark/ecs"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/ratato/catalog"
	"github.com/pthm-cable/ratato/components"
	"github.com/pthm-cable/ratato/config"
)

// newTestArena returns an empty arena with a neutral player at the origin:
// no weapons, no defenses and unit multipliers.
func newTestArena(t testing.TB) *Arena {
	t.Helper()
	cfg, err := config.Load("")
	if err != nil {
		t.Fatalf("loading defaults: %v", err)
	}
	ch, ok := catalog.LookupCharacter("marksman")
	if !ok {
		t.Fatal("marksman missing from catalog")
	}
	p := components.NewPlayer(ch, &cfg.Player)
	p.Weapons = nil
	p.Evasion, p.Armor, p.Shield, p.Lifesteal = 0, 0, 0, 0
	p.DamageMult, p.AttackRange, p.MeleeRange, p.FireRate = 1, 1, 1, 1
	p.ProjectileBonus, p.Bounce = 0, 0
	return NewArena(cfg, rand.New(rand.NewSource(1)), p, ecs.NewWorld())
}

// addTestEnemy adds a default-kind enemy with the given HP at pos.
func addTestEnemy(a *Arena, pos r2.Vec, hp float64) *components.Enemy {
	e := &components.Enemy{Kind: components.KindDefault, Pos: pos, Radius: 10, HP: hp, MaxHP: hp, Speed: 2, XP: 5}
	a.AddEnemy(e)
	return e
}

func approxEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func TestPurgeCompactsInOrder(t *testing.T) {
	a := newTestArena(t)
	e1 := addTestEnemy(a, r2.Vec{X: 100}, 10)
	e2 := addTestEnemy(a, r2.Vec{X: 200}, 10)
	e3 := addTestEnemy(a, r2.Vec{X: 300}, 10)
	a.Tombstone(e2)
	a.Projectiles = append(a.Projectiles, &components.Projectile{Dead: true}, &components.Projectile{})

	a.Purge()

	if len(a.Enemies) != 2 || a.Enemies[0] != e1 || a.Enemies[1] != e3 {
		t.Errorf("enemies after purge = %v, want [e1 e3]", a.Enemies)
	}
	if len(a.Projectiles) != 1 || a.Projectiles[0].Dead {
		t.Errorf("projectiles after purge = %d", len(a.Projectiles))
	}
}

func TestAddEnemyInheritsSlowDuringIce(t *testing.T) {
	a := newTestArena(t)
	before := addTestEnemy(a, r2.Vec{X: 100}, 10)
	a.ApplyIce()
	after := addTestEnemy(a, r2.Vec{X: 200}, 10)

	if !before.Slowed || !after.Slowed {
		t.Fatalf("slowed = %v/%v, want both true", before.Slowed, after.Slowed)
	}

	// Still running: flags stay set.
	a.TickPlayer(a.Cfg.Buffs.Ice / 2)
	if !before.Slowed {
		t.Fatal("slow cleared before ice expired")
	}

	a.TickPlayer(a.Cfg.Buffs.Ice)
	if before.Slowed || after.Slowed {
		t.Error("slow should clear when ice expires")
	}
	if a.Player.Buffs.Ice != 0 {
		t.Errorf("ice = %v, want 0", a.Player.Buffs.Ice)
	}
}
