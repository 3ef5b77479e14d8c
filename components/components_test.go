package components

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/ratato/catalog"
	"github.com/pthm-cable/ratato/config"
)

func TestParseKind(t *testing.T) {
	for i, name := range KindNames() {
		k, ok := ParseKind(name)
		if !ok || int(k) != i {
			t.Errorf("ParseKind(%q) = %v, %v", name, k, ok)
		}
		if k.String() != name {
			t.Errorf("Kind(%d).String() = %q, want %q", i, k.String(), name)
		}
	}
	if _, ok := ParseKind("dragon"); ok {
		t.Error("unknown kind should not parse")
	}
}

func TestEnemyHitCooldowns(t *testing.T) {
	e := &Enemy{}
	if !e.CanHit("aura") {
		t.Fatal("fresh enemy should be hittable")
	}
	e.ArmHit("aura", 0.2)
	if e.CanHit("aura") {
		t.Fatal("armed key should block")
	}
	e.TickCooldowns(0.1)
	if e.CanHit("aura") {
		t.Fatal("cooldown should still be running")
	}
	e.TickCooldowns(0.1)
	if !e.CanHit("aura") {
		t.Fatal("cooldown should have expired")
	}
	if len(e.HitCooldowns) != 0 {
		t.Errorf("expired keys should be dropped, got %v", e.HitCooldowns)
	}
}

func TestOrbitSatellitesEquallySpaced(t *testing.T) {
	o := &OrbitGroup{Angle: 0.3, Radius: 100, SatKeys: []string{"a", "b", "c", "d"}}
	center := r2.Vec{X: 10, Y: -5}
	step := 2 * math.Pi / 4
	for i := range o.SatKeys {
		s := o.Satellite(center, i)
		d := r2.Sub(s, center)
		if math.Abs(r2.Norm(d)-100) > 1e-9 {
			t.Errorf("satellite %d radius = %v", i, r2.Norm(d))
		}
		want := o.Angle + float64(i)*step
		got := math.Atan2(d.Y, d.X)
		diff := math.Remainder(got-want, 2*math.Pi)
		if math.Abs(diff) > 1e-9 {
			t.Errorf("satellite %d angle = %v, want %v", i, got, want)
		}
	}
}

func TestNewPlayerFromCharacter(t *testing.T) {
	cfg, err := config.Load("")
	if err != nil {
		t.Fatal(err)
	}
	ch, _ := catalog.LookupCharacter("brawler")
	p := NewPlayer(ch, &cfg.Player)

	if p.HP != 500 || p.MaxHP != 500 {
		t.Errorf("hp = %v/%v, want 500/500", p.HP, p.MaxHP)
	}
	if p.Level != 1 || p.XPToNext != 10 {
		t.Errorf("level %d, threshold %v", p.Level, p.XPToNext)
	}
	if w := p.Weapon("tailWhip"); w == nil || w.Level != 1 {
		t.Fatalf("starter weapon missing: %+v", p.Weapons)
	}

	p.HP = 450
	p.Heal(100)
	if p.HP != 500 {
		t.Errorf("heal should cap at max, got %v", p.HP)
	}
}
