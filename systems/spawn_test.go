package systems

import (
	"testing"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/ratato/components"
	"github.com/pthm-cable/ratato/config"
)

func TestPhaseAt(t *testing.T) {
	phases := []config.PhaseConfig{
		{Start: 0, End: 60},
		{Start: 60, End: 180},
		{Start: 180, End: 300},
	}
	tests := []struct {
		t    float64
		want int
	}{
		{0, 0},
		{59.99, 0},
		{60, 1},
		{179.5, 1},
		{180, 2},
		{299.9, 2},
		{300, 2},
		{5000, 2},
	}
	for _, tt := range tests {
		if got := PhaseAt(phases, tt.t); got != tt.want {
			t.Errorf("PhaseAt(%v) = %d, want %d", tt.t, got, tt.want)
		}
	}
}

func TestEnemyHPCurve(t *testing.T) {
	tests := []struct {
		factor int
		want   float64
	}{
		{1, 50},
		{2, 130},
		{4, 290},
		{5, 370 * 2},
		{6, 450 * 2},
		{7, 530 * 4},
		{8, 610 * 4},
		{9, 690 * 8},
	}
	for _, tt := range tests {
		if got := EnemyHP(tt.factor); got != tt.want {
			t.Errorf("EnemyHP(%d) = %v, want %v", tt.factor, got, tt.want)
		}
	}
}

func TestFactor(t *testing.T) {
	for _, tc := range []struct {
		elapsed float64
		want    int
	}{{0, 1}, {59.9, 1}, {60, 2}, {299, 5}} {
		if got := Factor(tc.elapsed); got != tc.want {
			t.Errorf("Factor(%v) = %d, want %d", tc.elapsed, got, tc.want)
		}
	}
}

func TestNewEnemyKinds(t *testing.T) {
	cfg, err := config.Load("")
	if err != nil {
		t.Fatal(err)
	}
	ec := &cfg.Enemies

	def := NewEnemy(components.KindDefault, 1, r2.Vec{}, ec)
	if def.HP != 50 || def.Damage != 5 || def.XP != 5 || def.Radius != 10 {
		t.Errorf("default = %+v", def)
	}
	fast := NewEnemy(components.KindFast, 1, r2.Vec{}, ec)
	if fast.HP != 20 || fast.Damage != 3 || fast.XP != 7 || fast.Speed != 4.5 {
		t.Errorf("fast = %+v", fast)
	}
	tank := NewEnemy(components.KindTank, 1, r2.Vec{}, ec)
	if tank.HP != 175 || tank.Damage != 12 || tank.XP != 15 {
		t.Errorf("tank = %+v", tank)
	}
	det := NewEnemy(components.KindDetonator, 2, r2.Vec{}, ec)
	if det.Damage != 0 || det.Blast != 45 || det.HP != 91 {
		t.Errorf("detonator = %+v", det)
	}
	ranged := NewEnemy(components.KindRanged, 1, r2.Vec{}, ec)
	if ranged.FireTimer != ec.Ranged.FireInterval || ranged.HP != 40 {
		t.Errorf("ranged = %+v", ranged)
	}

	boss := NewBoss(6, r2.Vec{}, ec)
	if boss.HP != 30000 || boss.Damage != 30 || boss.XP != 1200 || boss.Kind != components.KindBoss {
		t.Errorf("boss = %+v", boss)
	}
}

func TestNewSpawnDirectorRejectsUnknownKind(t *testing.T) {
	cfg, err := config.Load("")
	if err != nil {
		t.Fatal(err)
	}
	cfg.Spawn.Phases[0].Kinds = []string{"default", "dragon"}
	if _, err := NewSpawnDirector(cfg); err == nil {
		t.Error("expected error for unknown kind")
	}
}

func TestSpawnDirectorRespectsIntervalAndCap(t *testing.T) {
	a := newTestArena(t)
	a.Cfg.Spawn.Phases = []config.PhaseConfig{{Start: 0, End: 1000, Interval: 0.5, Cap: 3, Kinds: []string{"fast"}}}
	d, err := NewSpawnDirector(a.Cfg)
	if err != nil {
		t.Fatal(err)
	}

	dt := 0.1
	for range 100 {
		a.Elapsed += dt
		rep := d.Update(a, dt)
		if rep.Spawned != nil && rep.Spawned.Kind != components.KindFast {
			t.Fatalf("spawned kind %v outside the phase set", rep.Spawned.Kind)
		}
	}
	if got := a.LiveEnemies(); got != 3 {
		t.Errorf("live enemies = %d, want cap 3", got)
	}

	minDist := a.Cfg.World.ViewportRadius
	for _, e := range a.Enemies {
		if r2.Norm(r2.Sub(e.Pos, a.Player.Pos)) < minDist {
			t.Errorf("enemy spawned inside the viewport at %v", e.Pos)
		}
	}
}

func TestSpawnDirectorBossAndEnvironment(t *testing.T) {
	a := newTestArena(t)
	a.Cfg.Spawn.Phases[0].Cap = 0
	d, err := NewSpawnDirector(a.Cfg)
	if err != nil {
		t.Fatal(err)
	}

	bosses, changes := 0, 0
	dt := 0.5
	for a.Elapsed < 610 {
		a.Elapsed += dt
		rep := d.Update(a, dt)
		if rep.Boss != nil {
			bosses++
			if r := r2.Norm(rep.Boss.Pos); !approxEqual(r, a.Cfg.World.Radius-a.Cfg.Enemies.Boss.Margin, 1e-6) {
				t.Errorf("boss at radius %v", r)
			}
		}
		if rep.EnvironmentChanged {
			changes++
			if want := int(a.Elapsed/60) % 4; rep.Environment != want {
				t.Errorf("environment at %v = %d, want %d", a.Elapsed, rep.Environment, want)
			}
		}
	}
	if bosses != 2 {
		t.Errorf("bosses = %d, want 2 (300s and 600s)", bosses)
	}
	if changes != 10 {
		t.Errorf("environment changes = %d, want 10", changes)
	}
}
