package telemetry

import (
	"math"
	"testing"

	"github.com/pthm-cable/ratato/components"
)

func TestCollectorWindowFlush(t *testing.T) {
	c := NewCollector(60)

	if c.ShouldFlush(59.9) {
		t.Fatal("flush before the window ends")
	}

	c.Record(Event{Type: EventKill, Kind: components.KindFast})
	c.Record(Event{Type: EventKill, Kind: components.KindBoss})
	c.Record(Event{Type: EventEnemyHit, Amount: 30})
	c.Record(Event{Type: EventEnemyHit, Amount: 90})
	c.Record(Event{Type: EventPlayerHit, Amount: 12})
	c.Record(Event{Type: EventEvade})
	c.Record(Event{Type: EventPlayerHit, Amount: 8})
	c.Record(Event{Type: EventEvade})
	c.Record(NewPickupEvent(0, components.PickupGem, 7))
	c.Record(NewPickupEvent(0, components.PickupHealth, 0))
	c.Record(Event{Type: EventLevelUp})
	c.ObserveHP(0.4)
	c.ObserveHP(0.7)

	if !c.ShouldFlush(60) {
		t.Fatal("window should flush at 60s")
	}
	s := c.Flush(60, Sample{Tick: 3600, Level: 2, LiveEnemies: 3, HPRatio: 0.7, EnemyHP: []float64{50, 20, 175}})

	if s.Kills != 2 || s.KillsFast != 1 || s.KillsBoss != 1 {
		t.Errorf("kills = %d fast %d boss %d", s.Kills, s.KillsFast, s.KillsBoss)
	}
	if s.Hits != 2 || s.DamageDealt != 120 || math.Abs(s.DPS-2) > 1e-9 {
		t.Errorf("hits %d dealt %v dps %v", s.Hits, s.DamageDealt, s.DPS)
	}
	if s.DamageTaken != 20 || s.EvadeRate != 0.5 {
		t.Errorf("taken %v evade rate %v", s.DamageTaken, s.EvadeRate)
	}
	if s.XPGained != 7 || s.Pickups != 2 || s.LevelUps != 1 {
		t.Errorf("xp %v pickups %d level-ups %d", s.XPGained, s.Pickups, s.LevelUps)
	}
	if s.MinHPRatio != 0.4 || s.EnemyHPP50 != 50 {
		t.Errorf("min hp %v enemy p50 %v", s.MinHPRatio, s.EnemyHPP50)
	}

	// Counters reset for the next window
	if c.ShouldFlush(100) {
		t.Error("new window should start at the flush time")
	}
	next := c.Flush(120, Sample{Tick: 7200, HPRatio: 1})
	if next.Kills != 0 || next.Hits != 0 || next.MinHPRatio != 1 || next.WindowStartTick != 3600 {
		t.Errorf("window not reset: %+v", next)
	}
}
