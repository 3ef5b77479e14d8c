package systems

import (
	"math/rand"
	"testing"

	"gonum.org/v1/gonum/spatial/r2"
)

// fillArena scatters n enemies over the late-game spawn ring.
func fillArena(b *testing.B, n int) *Arena {
	a := newTestArena(b)
	rng := rand.New(rand.NewSource(7))
	for range n {
		pos := r2.Vec{X: (rng.Float64()*2 - 1) * 1400, Y: (rng.Float64()*2 - 1) * 1400}
		addTestEnemy(a, pos, 100)
	}
	a.RebuildGrid()
	return a
}

func BenchmarkRebuildGrid(b *testing.B) {
	a := fillArena(b, 1500)
	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		a.RebuildGrid()
	}
}

func BenchmarkEnemiesNear(b *testing.B) {
	a := fillArena(b, 1500)
	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		_ = a.EnemiesNear(r2.Vec{}, 200)
	}
}

func BenchmarkNearestN(b *testing.B) {
	a := fillArena(b, 1500)
	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		_ = a.NearestN(r2.Vec{}, 5)
	}
}

func BenchmarkCollideProjectiles(b *testing.B) {
	a := fillArena(b, 800)
	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		b.StopTimer()
		a.Projectiles = a.Projectiles[:0]
		for i := range 100 {
			p := testProjectile(r2.Vec{X: 1}, 0)
			p.Pos = a.Enemies[i].Pos
			a.Projectiles = append(a.Projectiles, p)
		}
		b.StartTimer()
		a.CollideProjectiles()
	}
}
