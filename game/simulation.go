package game

import (
	"log/slog"

	"github.com/pthm-cable/ratato/systems"
	"github.com/pthm-cable/ratato/telemetry"
)

// simulationStep runs every tick stage once.
func (g *Game) simulationStep(dt float64) {
	a := g.arena

	g.perf.StartPhase(telemetry.PhasePlayer)
	a.TickPlayer(dt)
	a.MovePlayer(g.move, dt)
	a.Elapsed += dt

	g.perf.StartPhase(telemetry.PhaseSpawn)
	g.handleSpawn(g.director.Update(a, dt))

	g.perf.StartPhase(telemetry.PhaseEnemies)
	a.UpdateEnemies(dt)

	g.perf.StartPhase(telemetry.PhaseSpatialGrid)
	a.RebuildGrid()

	g.perf.StartPhase(telemetry.PhaseWeapons)
	a.UpdateWeapons(dt)

	g.perf.StartPhase(telemetry.PhasePersistent)
	a.UpdatePersistent(dt)

	g.perf.StartPhase(telemetry.PhaseProjectiles)
	a.MoveProjectiles(dt)

	g.perf.StartPhase(telemetry.PhaseZones)
	a.Zones.Update(a, dt)

	g.perf.StartPhase(telemetry.PhaseParticles)
	g.particles.Update(dt, a.Frames(dt))

	g.perf.StartPhase(telemetry.PhaseCollision)
	a.CollideProjectiles()
	a.CollideEnemyProjectiles()
	a.CollideContact()

	g.perf.StartPhase(telemetry.PhasePickups)
	for _, c := range a.Pickups.Update(a, dt) {
		g.applyPickup(c)
	}
	g.openOffers()

	g.perf.StartPhase(telemetry.PhaseCleanup)
	a.Purge()

	g.perf.StartPhase(telemetry.PhaseTelemetry)
	g.collector.ObserveHP(a.Player.HP / a.Player.MaxHP)
	g.flushTelemetry()
}

// handleSpawn reacts to bosses and environment changes.
func (g *Game) handleSpawn(rep systems.SpawnReport) {
	if rep.Phase != g.phase {
		g.phase = rep.Phase
		slog.Info("phase_changed", "phase", rep.Phase, "elapsed", g.arena.Elapsed)
	}
	if rep.EnvironmentChanged {
		slog.Info("environment_changed", "environment", rep.Environment, "elapsed", g.arena.Elapsed)
		g.emit(telemetry.Event{Type: telemetry.EventEnvironment, Time: g.arena.Elapsed, Amount: float64(rep.Environment)})
	}
	if rep.Boss != nil {
		slog.Info("boss_spawned",
			"hp", rep.Boss.HP,
			"damage", rep.Boss.Damage,
			"elapsed", g.arena.Elapsed,
		)
		g.emit(telemetry.Event{Type: telemetry.EventBoss, Time: g.arena.Elapsed, Kind: rep.Boss.Kind, Amount: rep.Boss.HP})
	}
}
