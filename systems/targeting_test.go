package systems

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/ratato/catalog"
	"github.com/pthm-cable/ratato/components"
)

func TestNearestNTieBreaksBySpawnOrder(t *testing.T) {
	a := newTestArena(t)
	// Four enemies at the same distance, spawned in this order.
	east := addTestEnemy(a, r2.Vec{X: 100}, 10)
	north := addTestEnemy(a, r2.Vec{Y: 100}, 10)
	west := addTestEnemy(a, r2.Vec{X: -100}, 10)
	nearest := addTestEnemy(a, r2.Vec{X: 50}, 10)
	addTestEnemy(a, r2.Vec{Y: -100}, 10)

	got := a.NearestN(r2.Vec{}, 4)
	want := []*components.Enemy{nearest, east, north, west}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("NearestN[%d] = seq %d, want seq %d", i, got[i].Seq, want[i].Seq)
		}
	}
}

func TestNearestNSkipsDeadAndHandlesEmpty(t *testing.T) {
	a := newTestArena(t)
	if got := a.NearestN(r2.Vec{}, 3); len(got) != 0 {
		t.Fatalf("empty arena returned %d targets", len(got))
	}
	dead := addTestEnemy(a, r2.Vec{X: 10}, 10)
	live := addTestEnemy(a, r2.Vec{X: 500}, 10)
	a.Tombstone(dead)

	got := a.NearestN(r2.Vec{}, 3)
	if len(got) != 1 || got[0] != live {
		t.Errorf("NearestN = %v, want only the live enemy", got)
	}
	if a.Nearest(r2.Vec{}) != live {
		t.Error("Nearest should skip dead enemies")
	}
}

func TestMeleeArcFiltering(t *testing.T) {
	a := newTestArena(t)
	a.Player.FacingX = 1
	if !AddWeapon(a.Player, "tailWhip") {
		t.Fatal("AddWeapon(tailWhip) failed")
	}
	w := a.Player.Weapon("tailWhip")
	s := EffectiveStats(a.Player, w)
	radius := a.Cfg.Weapons.MeleeRadius * s.Area

	front := addTestEnemy(a, r2.Vec{X: radius / 2}, 1000)
	side := addTestEnemy(a, fromAngle(math.Pi/2-0.2, radius/2), 1000)
	behind := addTestEnemy(a, r2.Vec{X: -radius / 2}, 1000)
	far := addTestEnemy(a, r2.Vec{X: radius * 3}, 1000)
	a.RebuildGrid()

	a.Fire(w)

	for _, tc := range []struct {
		name string
		e    *components.Enemy
		hit  bool
	}{
		{"front", front, true},
		{"inside arc edge", side, true},
		{"behind", behind, false},
		{"out of range", far, false},
	} {
		if got := tc.e.HP < 1000; got != tc.hit {
			t.Errorf("%s: hit = %v, want %v", tc.name, got, tc.hit)
		}
	}
	if a.Swing.Remaining <= 0 || a.Swing.Angle != 0 {
		t.Errorf("swing = %+v, want facing right", a.Swing)
	}
}

func TestFacingVolleyFan(t *testing.T) {
	a := newTestArena(t)
	a.Player.FacingX = -1
	AddWeapon(a.Player, "dagger")
	w := a.Player.Weapon("dagger")
	w.Level = 3
	n := EffectiveStats(a.Player, w).Amount

	a.Fire(w)

	if len(a.Projectiles) != n {
		t.Fatalf("projectiles = %d, want %d", len(a.Projectiles), n)
	}
	for _, p := range a.Projectiles {
		if p.Vel.X >= 0 {
			t.Errorf("projectile vel %v should point left", p.Vel)
		}
	}
	// Angles near Pi wrap, so compare the normalized span.
	first := a.Projectiles[0]
	last := a.Projectiles[n-1]
	span := math.Abs(normalizeAngle(angleTo(r2.Vec{}, first.Vel) - angleTo(r2.Vec{}, last.Vel)))
	want := a.Cfg.Weapons.FacingSpread * float64(n-1)
	if !approxEqual(span, want, 1e-9) {
		t.Errorf("fan span = %v, want %v", span, want)
	}
}

func TestNearestVolleyFiresAtMostOnePerEnemy(t *testing.T) {
	a := newTestArena(t)
	AddWeapon(a.Player, "magicCheese")
	w := a.Player.Weapon("magicCheese")
	w.Level = catalog.MaxLevel

	a.Fire(w)
	if len(a.Projectiles) != 0 {
		t.Fatalf("fired %d projectiles with no enemies", len(a.Projectiles))
	}

	addTestEnemy(a, r2.Vec{X: 200}, 10)
	a.Fire(w)
	if len(a.Projectiles) != 1 {
		t.Errorf("fired %d projectiles at one enemy, want 1", len(a.Projectiles))
	}
}
