package systems

import (
	"fmt"
	"math"

	"github.com/pthm-cable/ratato/components"
	"github.com/pthm-cable/ratato/config"
)

// PhaseAt returns the index of the phase whose [Start, End) window holds t.
// Times past the table use the last phase; times before it use the first.
func PhaseAt(phases []config.PhaseConfig, t float64) int {
	for i, p := range phases {
		if t >= p.Start && t < p.End {
			return i
		}
	}
	if len(phases) > 0 && t < phases[0].Start {
		return 0
	}
	return len(phases) - 1
}

// Factor returns the difficulty factor: elapsed whole minutes plus one.
func Factor(elapsed float64) int {
	return int(elapsed/60) + 1
}

// EnemyHP returns the base HP curve for a difficulty factor. From factor 5
// the linear curve doubles every two factors.
func EnemyHP(factor int) float64 {
	hp := 50 + float64(factor-1)*80
	if factor >= 5 {
		hp *= math.Pow(2, float64((factor-5)/2+1))
	}
	return math.Floor(hp)
}

type phase struct {
	config.PhaseConfig
	kinds []components.Kind
}

// SpawnReport summarizes what the director did this tick.
type SpawnReport struct {
	Phase              int
	EnvironmentChanged bool
	Environment        int
	Boss               *components.Enemy
	Spawned            *components.Enemy
}

// SpawnDirector selects the active phase, spawns regular enemies, and
// schedules bosses and environment changes.
type SpawnDirector struct {
	cfg    *config.Config
	phases []phase

	sinceSpawn  float64
	nextBoss    float64
	envIndex    int
	environment int
}

// NewSpawnDirector resolves the phase kind names from cfg.
func NewSpawnDirector(cfg *config.Config) (*SpawnDirector, error) {
	d := &SpawnDirector{
		cfg:      cfg,
		nextBoss: cfg.Enemies.Boss.First,
	}
	for i, p := range cfg.Spawn.Phases {
		ph := phase{PhaseConfig: p}
		for _, name := range p.Kinds {
			k, ok := components.ParseKind(name)
			if !ok || k == components.KindBoss {
				return nil, fmt.Errorf("spawn.phases[%d]: unknown enemy kind %q", i, name)
			}
			ph.kinds = append(ph.kinds, k)
		}
		d.phases = append(d.phases, ph)
	}
	if d.nextBoss <= 0 {
		d.nextBoss = cfg.Derived.BossEvery
	}
	return d, nil
}

// Environment returns the current palette index.
func (d *SpawnDirector) Environment() int {
	return d.environment
}

// Update runs the director for one tick of dt seconds. a.Elapsed must
// already include dt.
func (d *SpawnDirector) Update(a *Arena, dt float64) SpawnReport {
	t := a.Elapsed
	sc := d.cfg.Spawn

	var rep SpawnReport
	if sc.EnvironmentInterval > 0 {
		if idx := int(t / sc.EnvironmentInterval); idx != d.envIndex {
			d.envIndex = idx
			d.environment = idx % max(1, sc.Environments)
			rep.EnvironmentChanged = true
		}
	}
	rep.Environment = d.environment

	if t >= d.nextBoss {
		d.nextBoss += d.cfg.Derived.BossEvery
		boss := NewBoss(float64(Factor(t)), a.bossSpawnPoint(), &d.cfg.Enemies)
		a.AddEnemy(boss)
		rep.Boss = boss
	}

	rep.Phase = PhaseAt(d.cfg.Spawn.Phases, t)
	ph := d.phases[rep.Phase]

	d.sinceSpawn += dt
	if a.LiveEnemies() < ph.Cap && d.sinceSpawn >= ph.Interval {
		d.sinceSpawn = 0
		kind := ph.kinds[a.Rng.Intn(len(ph.kinds))]
		radius := kindProfiles[kind].radius
		e := NewEnemy(kind, Factor(t), a.enemySpawnPoint(radius), &d.cfg.Enemies)
		a.AddEnemy(e)
		rep.Spawned = e
	}
	return rep
}
